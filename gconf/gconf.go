package gconf

import (
	"encoding/json"
	"strings"

	"github.com/iov-one/xregister"
	"github.com/iov-one/xregister/errors"
)

// ReadStore is the part of a store configuration is loaded from.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is the part of a store configuration is saved to.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// ValidMarshaler is a configuration that can be checked and serialized.
type ValidMarshaler interface {
	Marshal() ([]byte, error)
	Validate() error
}

// Unmarshaler is a configuration that can be loaded from its serialized
// form.
type Unmarshaler interface {
	Unmarshal([]byte) error
}

// Configuration is a configuration that can be both saved and loaded.
type Configuration interface {
	ValidMarshaler
	Unmarshaler
}

// key returns the database key of the configuration of pkg. Package names
// must not contain a colon, so that no key is a prefix of another.
func key(pkg string) ([]byte, error) {
	if pkg == "" || strings.Contains(pkg, ":") {
		return nil, errors.Wrapf(errors.ErrInput, "invalid package name %q", pkg)
	}
	return []byte("_c:" + pkg), nil
}

// Save writes the configuration of pkg. An invalid configuration is never
// written.
func Save(db Store, pkg string, src ValidMarshaler) error {
	k, err := key(pkg)
	if err != nil {
		return err
	}
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "%s configuration", pkg)
	}
	raw, err := src.Marshal()
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "marshal %s configuration: %s", pkg, err)
	}
	return db.Set(k, raw)
}

// Load reads the configuration of pkg into dst. It returns ErrNotFound if
// the package was never configured.
func Load(db ReadStore, pkg string, dst Unmarshaler) error {
	k, err := key(pkg)
	if err != nil {
		return err
	}
	raw, err := db.Get(k)
	switch {
	case err != nil:
		return errors.Wrapf(err, "load %s configuration", pkg)
	case raw == nil:
		return errors.Wrapf(errors.ErrNotFound, "%s configuration", pkg)
	}
	if err := dst.Unmarshal(raw); err != nil {
		return errors.Wrapf(errors.ErrModel, "unmarshal %s configuration: %s", pkg, err)
	}
	return nil
}

// InitConfig saves the configuration of pkg found in the genesis under
// conf.<pkg>. The configuration is decoded from JSON into conf and
// validated before it is written.
func InitConfig(db Store, opts xregister.Options, pkg string, conf Configuration) error {
	var section map[string]json.RawMessage
	if err := opts.ReadOptions("conf", &section); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis conf section: %s", err)
	}
	raw, ok := section[pkg]
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "no %s configuration in genesis", pkg)
	}
	if err := json.Unmarshal(raw, conf); err != nil {
		return errors.Wrapf(errors.ErrInput, "decode %s configuration: %s", pkg, err)
	}
	return Save(db, pkg, conf)
}
