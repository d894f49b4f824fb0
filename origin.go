package xregister

import (
	"fmt"

	"github.com/iov-one/xregister/errors"
)

// Origin describes who requested a call. It is a closed set of variants:
// NoneOrigin, SignedOrigin, SiblingChainOrigin and ParentChainOrigin.
// Authorization checks must switch over all of them.
type Origin interface {
	fmt.Stringer
	isOrigin()
}

// NoneOrigin is an unsigned call, for example an inherent.
type NoneOrigin struct{}

// SignedOrigin is a call signed by a local account.
type SignedOrigin struct {
	Account AccountID
}

// SiblingChainOrigin is a call executed on behalf of a parachain at the
// same level of the topology, delivered by the cross-chain transport.
type SiblingChainOrigin struct {
	Chain ChainID
}

// ParentChainOrigin is a call executed on behalf of the relay chain.
type ParentChainOrigin struct{}

func (NoneOrigin) isOrigin()         {}
func (SignedOrigin) isOrigin()       {}
func (SiblingChainOrigin) isOrigin() {}
func (ParentChainOrigin) isOrigin()  {}

func (NoneOrigin) String() string {
	return "none"
}

func (o SignedOrigin) String() string {
	return "signed:" + o.Account.String()
}

func (o SiblingChainOrigin) String() string {
	return "sibling:" + o.Chain.String()
}

func (ParentChainOrigin) String() string {
	return "parent"
}

// EnsureSigned returns the account that signed the call. Any other origin
// is rejected with ErrUnauthorizedOrigin.
func EnsureSigned(o Origin) (AccountID, error) {
	switch o := o.(type) {
	case SignedOrigin:
		if err := o.Account.Validate(); err != nil {
			return AccountID{}, errors.Wrap(errors.ErrUnauthorizedOrigin, "invalid signer")
		}
		return o.Account, nil
	case NoneOrigin, SiblingChainOrigin, ParentChainOrigin:
		return AccountID{}, errors.Wrapf(errors.ErrUnauthorizedOrigin, "%s origin is not a signed account", o)
	case nil:
		return AccountID{}, errors.Wrap(errors.ErrUnauthorizedOrigin, "missing origin")
	default:
		return AccountID{}, errors.Wrapf(errors.ErrUnauthorizedOrigin, "unknown origin type %T", o)
	}
}

// EnsureSiblingChain returns the id of the sibling parachain that sent the
// call. Any other origin, including a local signed account, is rejected with
// ErrOriginNotSiblingChain.
func EnsureSiblingChain(o Origin) (ChainID, error) {
	switch o := o.(type) {
	case SiblingChainOrigin:
		return o.Chain, nil
	case NoneOrigin, SignedOrigin, ParentChainOrigin:
		return 0, errors.Wrapf(errors.ErrOriginNotSiblingChain, "%s origin", o)
	case nil:
		return 0, errors.Wrap(errors.ErrOriginNotSiblingChain, "missing origin")
	default:
		return 0, errors.Wrapf(errors.ErrOriginNotSiblingChain, "unknown origin type %T", o)
	}
}
