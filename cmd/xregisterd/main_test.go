package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iov-one/xregister"
	xapp "github.com/iov-one/xregister/cmd/xregisterd/app"
	"github.com/iov-one/xregister/errors"
	"github.com/iov-one/xregister/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func testOptions() xapp.Options {
	return xapp.Options{
		ClientChain:     1000,
		ServerChain:     2000,
		ServerIndex:     xregister.NewCallIndex(7, 3),
		MaxRemoteWeight: 1_000_000,
	}
}

func TestRunInMemory(t *testing.T) {
	var out bytes.Buffer
	alice := weavetest.NewAccount()

	err := run(context.Background(), &out, log.NewNopLogger(), "", testOptions(), alice, []byte("shipname"))
	require.NoError(t, err)
	assert.Equal(t, "para:2000\t"+alice.String()+"\t\"shipname\"\n", out.String())
}

func TestRunPersistent(t *testing.T) {
	dir, err := os.MkdirTemp("", "xregisterd")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	alice := weavetest.NewAccount()
	for _, name := range []string{"first", "second"} {
		var out bytes.Buffer
		err := run(context.Background(), &out, log.NewNopLogger(), dir, testOptions(), alice, []byte(name))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out.String(), "\t\""+name+"\"\n"), out.String())
	}
}

func TestLoadOptions(t *testing.T) {
	dir, err := os.MkdirTemp("", "xregisterd")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "genesis.json")
	genesis := `{
		"chain_id": 1000,
		"app_options": {
			"conf": {
				"xclient": {
					"server_chain_id": 2000,
					"server_module_id": 7,
					"server_method_id": 3,
					"max_remote_weight": 1000000
				}
			}
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(genesis), 0o600))

	opts, err := loadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, testOptions(), opts)

	_, err = loadOptions(filepath.Join(dir, "missing.json"))
	assert.True(t, errors.ErrInput.Is(err), "got %+v", err)
}

func TestRunRemoteFailure(t *testing.T) {
	opts := testOptions()
	opts.MaxRemoteWeight = 1

	var out bytes.Buffer
	err := run(context.Background(), &out, log.NewNopLogger(), "", opts, weavetest.NewAccount(), []byte("shipname"))
	assert.True(t, errors.ErrState.Is(err), "got %+v", err)
	assert.Equal(t, "", out.String())
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "error", "none"} {
		_, err := newLogger(&bytes.Buffer{}, level)
		assert.NoError(t, err, level)
	}
	_, err := newLogger(&bytes.Buffer{}, "loud")
	assert.Error(t, err)
}
