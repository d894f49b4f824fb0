package xregister

import (
	"testing"

	"github.com/iov-one/xregister/errors"
	"github.com/iov-one/xregister/weavetest/assert"
)

func TestEnsureSigned(t *testing.T) {
	var alice AccountID
	alice[0] = 7

	cases := map[string]struct {
		origin  Origin
		want    AccountID
		wantErr *errors.Error
	}{
		"signed":          {origin: SignedOrigin{Account: alice}, want: alice},
		"zero signer":     {origin: SignedOrigin{}, wantErr: errors.ErrUnauthorizedOrigin},
		"unsigned":        {origin: NoneOrigin{}, wantErr: errors.ErrUnauthorizedOrigin},
		"sibling chain":   {origin: SiblingChainOrigin{Chain: 2000}, wantErr: errors.ErrUnauthorizedOrigin},
		"parent chain":    {origin: ParentChainOrigin{}, wantErr: errors.ErrUnauthorizedOrigin},
		"missing origin":  {origin: nil, wantErr: errors.ErrUnauthorizedOrigin},
		"embedded signed": {origin: embeddedOrigin{SignedOrigin{Account: alice}}, wantErr: errors.ErrUnauthorizedOrigin},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := EnsureSigned(tc.origin)
			assert.IsErr(t, tc.wantErr, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEnsureSiblingChain(t *testing.T) {
	var alice AccountID
	alice[0] = 7

	cases := map[string]struct {
		origin  Origin
		want    ChainID
		wantErr *errors.Error
	}{
		"sibling chain":    {origin: SiblingChainOrigin{Chain: 2000}, want: 2000},
		"signed":           {origin: SignedOrigin{Account: alice}, wantErr: errors.ErrOriginNotSiblingChain},
		"unsigned":         {origin: NoneOrigin{}, wantErr: errors.ErrOriginNotSiblingChain},
		"parent chain":     {origin: ParentChainOrigin{}, wantErr: errors.ErrOriginNotSiblingChain},
		"missing origin":   {origin: nil, wantErr: errors.ErrOriginNotSiblingChain},
		"embedded sibling": {origin: embeddedOrigin{SiblingChainOrigin{Chain: 2000}}, wantErr: errors.ErrOriginNotSiblingChain},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := EnsureSiblingChain(tc.origin)
			assert.IsErr(t, tc.wantErr, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// embeddedOrigin satisfies Origin only through the origin it embeds.
type embeddedOrigin struct {
	Origin
}
