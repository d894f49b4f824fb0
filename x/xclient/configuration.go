package xclient

import (
	"math"

	"github.com/iov-one/xregister"
	"github.com/iov-one/xregister/errors"
	"github.com/iov-one/xregister/gconf"
)

// packageName is the key the configuration is stored under, both in the
// database and in the genesis "conf" section.
const packageName = "xclient"

// Validate ensures the configuration addresses a server chain and lets the
// remote execution use some weight.
func (c *Configuration) Validate() error {
	if c.ServerChainID == 0 {
		return errors.Wrap(errors.ErrEmpty, "server chain id")
	}
	if c.ServerModuleID > math.MaxUint8 {
		return errors.Wrapf(errors.ErrInput, "server module id %d does not fit a byte", c.ServerModuleID)
	}
	if c.ServerMethodID > math.MaxUint8 {
		return errors.Wrapf(errors.ErrInput, "server method id %d does not fit a byte", c.ServerMethodID)
	}
	if c.MaxRemoteWeight == 0 {
		return errors.Wrap(errors.ErrEmpty, "max remote weight")
	}
	return nil
}

// ServerIndex returns the call index of the register method on the server
// chain.
func (c *Configuration) ServerIndex() xregister.CallIndex {
	return xregister.NewCallIndex(uint8(c.ServerModuleID), uint8(c.ServerMethodID))
}

// LoadConfiguration reads the package configuration from the database.
func LoadConfiguration(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, packageName, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

// SaveConfiguration validates and stores the package configuration.
func SaveConfiguration(db gconf.Store, conf *Configuration) error {
	return gconf.Save(db, packageName, conf)
}

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ xregister.Initializer = (*Initializer)(nil)

// FromGenesis will parse the package configuration from genesis and save it
// to the database
func (*Initializer) FromGenesis(opts xregister.Options, db xregister.KVStore) error {
	return gconf.InitConfig(db, opts, packageName, &Configuration{})
}
