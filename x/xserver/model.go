package xserver

import (
	"github.com/iov-one/xregister"
	"github.com/iov-one/xregister/errors"
	"github.com/iov-one/xregister/orm"
)

var _ orm.Model = (*Registration)(nil)

// Validate accepts any name, including an empty one.
func (m *Registration) Validate() error {
	return nil
}

// NewRegistrationBucket returns a bucket keyed by account that holds the
// registration of each account.
func NewRegistrationBucket() orm.ModelBucket {
	return orm.NewModelBucket("registry", &Registration{})
}

// NameOf returns the name registered for given account. An account that
// never registered has an empty name.
func NameOf(db xregister.ReadOnlyKVStore, account xregister.AccountID) ([]byte, error) {
	var r Registration
	switch err := NewRegistrationBucket().One(db, account.Bytes(), &r); {
	case err == nil:
		if r.Name == nil {
			return []byte{}, nil
		}
		return r.Name, nil
	case errors.ErrNotFound.Is(err):
		return []byte{}, nil
	default:
		return nil, errors.Wrap(err, "cannot load registration")
	}
}

// RegisterQuery registers the registry bucket with the query router. The
// query data is the account.
func RegisterQuery(qr xregister.QueryRouter) {
	NewRegistrationBucket().Register("registrations", qr)
}
