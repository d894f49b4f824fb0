package xregister

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/iov-one/xregister/errors"
	"github.com/iov-one/xregister/weavetest/assert"
)

func TestParseAccountID(t *testing.T) {
	hex := strings.Repeat("ab", AccountIDLength)
	var want AccountID
	for i := range want {
		want[i] = 0xab
	}

	cases := map[string]struct {
		in      string
		want    AccountID
		wantErr *errors.Error
	}{
		"prefixed":   {in: "0x" + hex, want: want},
		"no prefix":  {in: hex, want: want},
		"too short":  {in: "0xabab", wantErr: errors.ErrInput},
		"not hex":    {in: "0x" + strings.Repeat("zz", AccountIDLength), wantErr: errors.ErrInput},
		"odd length": {in: hex[1:], wantErr: errors.ErrInput},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ParseAccountID(tc.in)
			assert.IsErr(t, tc.wantErr, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAccountIDJSON(t *testing.T) {
	var a AccountID
	a[0], a[31] = 1, 2

	raw, err := json.Marshal(a)
	assert.Nil(t, err)
	assert.Equal(t, `"0x0100000000000000000000000000000000000000000000000000000000000002"`, string(raw))

	var got AccountID
	assert.Nil(t, json.Unmarshal(raw, &got))
	assert.Equal(t, a, got)

	assert.IsErr(t, errors.ErrInput, json.Unmarshal([]byte(`"0x01"`), &got))
}

func TestAccountIDValidate(t *testing.T) {
	var zero AccountID
	assert.IsErr(t, errors.ErrEmpty, zero.Validate())

	a, err := NewAccountID(append(make([]byte, AccountIDLength-1), 1))
	assert.Nil(t, err)
	assert.Nil(t, a.Validate())
	assert.Equal(t, false, a.IsZero())

	_, err = NewAccountID([]byte{1, 2, 3})
	assert.IsErr(t, errors.ErrInput, err)
}
