/*
Package app links together all the various components
to construct a client and a server chain connected by one
in-memory transport.
*/
package app

import (
	"context"
	"encoding/json"

	"github.com/iov-one/xregister"
	"github.com/iov-one/xregister/app"
	"github.com/iov-one/xregister/errors"
	"github.com/iov-one/xregister/x/xclient"
	"github.com/iov-one/xregister/x/xserver"
	"github.com/iov-one/xregister/xcm"
	"github.com/tendermint/tendermint/libs/log"
)

// ClientIndex is the call index of the register method on the client chain.
var ClientIndex = xregister.NewCallIndex(42, 0)

// Options describe the topology of the network.
type Options struct {
	ClientChain xregister.ChainID
	ServerChain xregister.ChainID
	// ServerIndex is the call index the server chain routes registrations
	// at. The client chain addresses its envelopes to it.
	ServerIndex     xregister.CallIndex
	MaxRemoteWeight uint64
}

// Validate returns an error if the options cannot describe a network.
func (o Options) Validate() error {
	if o.ClientChain == 0 || o.ServerChain == 0 {
		return errors.Wrap(errors.ErrEmpty, "chain id")
	}
	if o.ClientChain == o.ServerChain {
		return errors.Wrap(errors.ErrInput, "client and server must be different chains")
	}
	if o.MaxRemoteWeight == 0 {
		return errors.Wrap(errors.ErrEmpty, "max remote weight")
	}
	return nil
}

// ClientRouter returns the router of the client chain, sending
// registrations with given transport.
func ClientRouter(sender xcm.Sender) *app.Router {
	r := app.NewRouter()
	xclient.RegisterRoutes(r, ClientIndex, sender)
	return r
}

// ServerRouter returns the router of the server chain, accepting
// registrations at given call index.
func ServerRouter(index xregister.CallIndex) *app.Router {
	r := app.NewRouter()
	xserver.RegisterRoutes(r, index)
	return r
}

// ClientGenesis returns the genesis options of the client chain.
func ClientGenesis(o Options) (xregister.Options, error) {
	conf := xclient.Configuration{
		ServerChainID:   uint32(o.ServerChain),
		ServerModuleID:  uint32(o.ServerIndex.Module()),
		ServerMethodID:  uint32(o.ServerIndex.Method()),
		MaxRemoteWeight: o.MaxRemoteWeight,
	}
	raw, err := json.Marshal(map[string]interface{}{"xclient": conf})
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return xregister.Options{"conf": raw}, nil
}

// OptionsFromGenesis reads the topology of the network from the genesis of
// the client chain: its chain id and the xclient configuration.
func OptionsFromGenesis(gen app.Genesis) (Options, error) {
	var conf struct {
		XClient *xclient.Configuration `json:"xclient"`
	}
	if err := gen.AppOptions.ReadOptions("conf", &conf); err != nil {
		return Options{}, errors.Wrapf(errors.ErrInput, "conf: %s", err)
	}
	if conf.XClient == nil {
		return Options{}, errors.Wrap(errors.ErrEmpty, "xclient configuration")
	}
	if err := conf.XClient.Validate(); err != nil {
		return Options{}, errors.Wrap(err, "xclient configuration")
	}
	o := Options{
		ClientChain:     gen.ChainID,
		ServerChain:     xregister.ChainID(conf.XClient.ServerChainID),
		ServerIndex:     conf.XClient.ServerIndex(),
		MaxRemoteWeight: conf.XClient.MaxRemoteWeight,
	}
	return o, o.Validate()
}

// Network is a client and a server chain connected by a bus.
type Network struct {
	Bus          *xcm.Bus
	Client       *app.Runtime
	Server       *app.Runtime
	ClientEvents *app.EventLog
	ServerEvents *app.EventLog
}

// NewNetwork connects a client chain using clientDB with a server chain
// using serverDB. Stores that were not initialized yet get their genesis
// loaded, initialized stores keep their configuration.
func NewNetwork(o Options, clientDB, serverDB xregister.CacheableKVStore, logger log.Logger) (*Network, error) {
	if err := o.Validate(); err != nil {
		return nil, errors.Wrap(err, "options")
	}

	bus := xcm.NewBus(xcm.DefaultQueueCapacity, xcm.DefaultMaxMessageSize).WithLogger(logger)
	bus.Connect(o.ClientChain)
	bus.Connect(o.ServerChain)

	n := &Network{
		Bus:          bus,
		ClientEvents: app.NewEventLog(),
		ServerEvents: app.NewEventLog(),
	}
	n.Client = app.NewRuntime(o.ClientChain, clientDB, ClientRouter(bus.Sender(o.ClientChain)), n.ClientEvents).
		WithLogger(logger.With("module", "xclient"))
	n.Server = app.NewRuntime(o.ServerChain, serverDB, ServerRouter(o.ServerIndex), n.ServerEvents).
		WithLogger(logger.With("module", "xserver")).
		WithQueries(xserver.RegisterQuery)

	genesis, err := ClientGenesis(o)
	if err != nil {
		return nil, err
	}
	if err := initOnce(n.Client, genesis, &xclient.Initializer{}); err != nil {
		return nil, errors.Wrap(err, "client genesis")
	}
	if err := initOnce(n.Server, xregister.Options{}); err != nil {
		return nil, errors.Wrap(err, "server genesis")
	}
	return n, nil
}

func initOnce(rt *app.Runtime, opts xregister.Options, inits ...xregister.Initializer) error {
	ok, err := rt.Initialized()
	if err != nil || ok {
		return err
	}
	return rt.InitGenesis(opts, inits...)
}

// Register submits a signed registration of given name to the client
// chain.
func (n *Network) Register(ctx context.Context, account xregister.AccountID, name []byte) error {
	call := xclient.NewXRegisterCall(ClientIndex, name)
	return n.Client.SubmitExtrinsic(ctx, xregister.SignedOrigin{Account: account}, call)
}

// Relay executes on the server chain all messages waiting for it.
func (n *Network) Relay(ctx context.Context) (executed, failed int) {
	return n.Server.ProcessInbound(ctx, n.Bus)
}

// NameOf returns the name the server chain recorded for given account.
func (n *Network) NameOf(account xregister.AccountID) ([]byte, error) {
	models, err := n.Server.Query("/registrations", account.Bytes())
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return []byte{}, nil
	}
	var r xserver.Registration
	if err := r.Unmarshal(models[0].Value); err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	if r.Name == nil {
		return []byte{}, nil
	}
	return r.Name, nil
}
