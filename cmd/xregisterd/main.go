package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/iov-one/xregister"
	"github.com/iov-one/xregister/app"
	xapp "github.com/iov-one/xregister/cmd/xregisterd/app"
	"github.com/iov-one/xregister/errors"
	"github.com/iov-one/xregister/store"
	"github.com/iov-one/xregister/store/sqlite"
	"github.com/tendermint/tendermint/libs/log"
)

// defaultAccount is a well known development account.
const defaultAccount = "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"

func main() {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	dbFl := fl.String("db", "", "Directory to store the state of both chains in. In memory if empty.")
	genesisFl := fl.String("genesis", "", "Genesis file of the client chain. Replaces the chain, module, method and weight flags.")
	clientFl := fl.Uint64("client-chain", 1000, "Parachain ID of the client chain.")
	serverFl := fl.Uint64("server-chain", 2000, "Parachain ID of the server chain.")
	moduleFl := fl.Uint("module", 7, "Index of the register module on the server chain.")
	methodFl := fl.Uint("method", 3, "Index of the register method within the module.")
	weightFl := fl.Uint64("max-weight", 1_000_000, "Weight the server chain may use to execute a registration.")
	accountFl := fl.String("account", defaultAccount, "Hex encoded account that signs the registration.")
	nameFl := fl.String("name", "shipname", "Name to register.")
	levelFl := fl.String("log-level", "info", "Log level: debug, info, error or none.")
	fl.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage:
	%s [options]

Boot a client and a server chain connected by an in-memory transport, submit
a single name registration to the client chain, execute the resulting
cross-chain message on the server chain and print the name the server chain
recorded.

`, os.Args[0])
		fl.PrintDefaults()
	}
	fl.Parse(os.Args[1:])

	var opts xapp.Options
	if *genesisFl != "" {
		o, err := loadOptions(*genesisFl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid genesis: %s\n", err)
			os.Exit(2)
		}
		opts = o
	} else {
		if *moduleFl > 255 || *methodFl > 255 {
			fmt.Fprintln(os.Stderr, "Module and method index must fit a byte.")
			os.Exit(2)
		}
		if *clientFl > math.MaxUint32 || *serverFl > math.MaxUint32 {
			fmt.Fprintln(os.Stderr, "Chain ID must fit 32 bits.")
			os.Exit(2)
		}
		opts = xapp.Options{
			ClientChain:     xregister.ChainID(*clientFl),
			ServerChain:     xregister.ChainID(*serverFl),
			ServerIndex:     xregister.NewCallIndex(uint8(*moduleFl), uint8(*methodFl)),
			MaxRemoteWeight: *weightFl,
		}
	}
	account, err := xregister.ParseAccountID(*accountFl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid account: %s\n", err)
		os.Exit(2)
	}
	logger, err := newLogger(os.Stdout, *levelFl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %s\n", err)
		os.Exit(2)
	}

	if err := run(context.Background(), os.Stdout, logger, *dbFl, opts, account, []byte(*nameFl)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

// loadOptions reads the network topology from the client chain genesis file.
func loadOptions(path string) (xapp.Options, error) {
	gen, err := app.LoadGenesis(path)
	if err != nil {
		return xapp.Options{}, err
	}
	return xapp.OptionsFromGenesis(gen)
}

func newLogger(out io.Writer, level string) (log.Logger, error) {
	logger := log.NewTMLogger(log.NewSyncWriter(out)).With("module", "xregisterd")
	if level == "none" {
		return log.NewFilter(logger, log.AllowNone()), nil
	}
	allow, err := log.AllowLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewFilter(logger, allow), nil
}

func run(ctx context.Context, out io.Writer, logger log.Logger, dir string, opts xapp.Options, account xregister.AccountID, name []byte) error {
	clientDB, serverDB, closeFn, err := openStores(dir)
	if err != nil {
		return err
	}
	defer closeFn()

	n, err := xapp.NewNetwork(opts, clientDB, serverDB, logger)
	if err != nil {
		return err
	}
	if err := n.Register(ctx, account, name); err != nil {
		return errors.Wrap(err, "register")
	}
	if _, failed := n.Relay(ctx); failed != 0 {
		return errors.Wrapf(errors.ErrState, "%d messages failed on the server chain", failed)
	}

	stored, err := n.NameOf(account)
	if err != nil {
		return errors.Wrap(err, "query")
	}
	fmt.Fprintf(out, "%s\t%s\t%q\n", opts.ServerChain, account, stored)
	return nil
}

// openStores returns the stores of both chains. Without a directory both
// stores are kept in memory.
func openStores(dir string) (client, server xregister.CacheableKVStore, closeFn func(), err error) {
	if dir == "" {
		return store.MemStore(), store.MemStore(), func() {}, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	c, err := sqlite.Open(filepath.Join(dir, "client.db"))
	if err != nil {
		return nil, nil, nil, err
	}
	s, err := sqlite.Open(filepath.Join(dir, "server.db"))
	if err != nil {
		c.Close()
		return nil, nil, nil, err
	}
	return c, s, func() {
		c.Close()
		s.Close()
	}, nil
}
