package app

import (
	"encoding/binary"
	"encoding/json"
	"os"

	"github.com/iov-one/xregister"
	"github.com/iov-one/xregister/errors"
)

// Genesis file format. AppOptions is passed to every registered
// Initializer, configuration lives under its "conf" key.
type Genesis struct {
	ChainID    xregister.ChainID `json:"chain_id"`
	AppOptions xregister.Options `json:"app_options"`
}

// LoadGenesis tries to load a given file into a Genesis struct
func LoadGenesis(filePath string) (Genesis, error) {
	var gen Genesis

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return gen, errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := json.Unmarshal(raw, &gen); err != nil {
		return gen, errors.Wrapf(errors.ErrInput, "unmarshaling genesis file: %s", err)
	}
	return gen, nil
}

//------ init state -----

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...xregister.Initializer) xregister.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []xregister.Initializer
}

// FromGenesis will pass opts to all Initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts xregister.Options, db xregister.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, db); err != nil {
			return err
		}
	}
	return nil
}

//------- storing chainID ---------

var chainIDKey = []byte("_i:chain_id")

// loadChainID returns the chain id stored if any
func loadChainID(db xregister.ReadOnlyKVStore) (xregister.ChainID, bool, error) {
	raw, err := db.Get(chainIDKey)
	if err != nil {
		return 0, false, errors.Wrap(err, "chain id")
	}
	if len(raw) != 4 {
		return 0, false, nil
	}
	return xregister.ChainID(binary.BigEndian.Uint32(raw)), true, nil
}

// saveChainID stores a chain id in the kv store.
// Returns error if already set, or invalid id.
func saveChainID(db xregister.KVStore, id xregister.ChainID) error {
	if id == 0 {
		return errors.Wrap(errors.ErrInput, "chain id must not be zero")
	}
	if ok, err := db.Has(chainIDKey); err != nil {
		return errors.Wrap(err, "chain id")
	} else if ok {
		return errors.Wrap(errors.ErrState, "chain id already set")
	}
	raw := make([]byte, 4)
	binary.BigEndian.PutUint32(raw, uint32(id))
	return db.Set(chainIDKey, raw)
}
