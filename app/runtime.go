package app

import (
	"context"
	"sync"

	"github.com/iov-one/xregister"
	"github.com/iov-one/xregister/errors"
	"github.com/iov-one/xregister/xcm"
	"github.com/tendermint/tendermint/libs/log"
)

// Inbox provides messages sent to a chain. It is implemented by xcm.Bus.
type Inbox interface {
	Drain(id xregister.ChainID) []xcm.Inbound
}

var _ Inbox = (*xcm.Bus)(nil)

// Runtime executes calls of a single chain. Every call runs against a
// cache wrap of the store that is written only if the call succeeds. Calls
// are executed one at a time.
type Runtime struct {
	chainID xregister.ChainID
	db      xregister.CacheableKVStore
	router  *Router
	queries xregister.QueryRouter
	stack   Decorators
	sink    xregister.EventSink
	logger  log.Logger

	mu sync.Mutex
}

// NewRuntime returns a runtime of given chain. Events of successful calls
// are passed to the sink. A nil sink selects a new EventLog.
func NewRuntime(chainID xregister.ChainID, db xregister.CacheableKVStore, router *Router, sink xregister.EventSink) *Runtime {
	if sink == nil {
		sink = NewEventLog()
	}
	return &Runtime{
		chainID: chainID,
		db:      db,
		router:  router,
		queries: xregister.NewQueryRouter(),
		stack:   ChainDecorators(NewLogging(), NewRecovery()),
		sink:    sink,
		logger:  xregister.DefaultLogger,
	}
}

// WithLogger sets the logger used by the runtime and passed to handlers.
func (r *Runtime) WithLogger(logger log.Logger) *Runtime {
	r.logger = logger.With("chain", r.chainID)
	return r
}

// WithDecorators appends decorators executed around every call, after the
// default logging and panic recovery.
func (r *Runtime) WithDecorators(ds ...xregister.Decorator) *Runtime {
	r.stack = r.stack.Chain(ds...)
	return r
}

// WithQueries registers query handlers available through Query.
func (r *Runtime) WithQueries(qr ...xregister.QueryRegister) *Runtime {
	r.queries.RegisterAll(qr...)
	return r
}

// ChainID returns the id of the chain this runtime executes.
func (r *Runtime) ChainID() xregister.ChainID {
	return r.chainID
}

// InitGenesis records the chain id and runs all initializers with given
// options. It fails if the store was already initialized. Nothing is
// written if any initializer fails.
func (r *Runtime) InitGenesis(opts xregister.Options, inits ...xregister.Initializer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cache := r.db.CacheWrap()
	if err := saveChainID(cache, r.chainID); err != nil {
		cache.Discard()
		return err
	}
	if err := ChainInitializers(inits...).FromGenesis(opts, cache); err != nil {
		cache.Discard()
		return errors.Wrap(err, "genesis")
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	r.logger.Info("genesis loaded", "initializers", len(inits))
	return nil
}

// Initialized returns true if InitGenesis was successfully executed on the
// store of this runtime. It fails if the store belongs to another chain.
func (r *Runtime) Initialized() (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok, err := loadChainID(r.db)
	if err != nil || !ok {
		return false, err
	}
	if id != r.chainID {
		return false, errors.Wrapf(errors.ErrState, "store belongs to %s", id)
	}
	return true, nil
}

// SubmitExtrinsic executes a call submitted to this chain by a local
// origin.
func (r *Runtime) SubmitExtrinsic(ctx context.Context, origin xregister.Origin, call xregister.Call) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	index, err := call.Index()
	if err != nil {
		return err
	}
	_, err = r.deliver(ctx, origin, index, call, r.router.Handler(index))
	return err
}

// ExecuteXcm executes a cross-consensus message sent to this chain from
// given location.
//
// Only the native origin kind is supported: a message from a sibling
// parachain executes with the SiblingChainOrigin of that parachain, a
// message from the relay chain with the ParentChainOrigin. The weight
// declared by the addressed handler must not exceed the weight the
// message allows.
func (r *Runtime) ExecuteXcm(ctx context.Context, from xcm.Location, raw []byte) error {
	var msg xcm.Message
	if err := msg.Unmarshal(raw); err != nil {
		return err
	}

	var t *xcm.Transact
	switch ins := msg.Instruction.(type) {
	case *xcm.Transact:
		t = ins
	default:
		return errors.Wrapf(xcm.ErrMalformedMessage, "cannot execute %T", ins)
	}

	if t.OriginKind != xcm.OriginKindNative {
		return errors.Wrapf(errors.ErrUnauthorizedOrigin, "origin kind %d not supported", t.OriginKind)
	}
	origin, err := convertOrigin(from)
	if err != nil {
		return err
	}

	call := xregister.Call(t.Call)
	index, err := call.Index()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	h := r.router.Handler(index)
	if w := h.Weight(); w > t.RequireWeightAtMost {
		return errors.Wrapf(errors.ErrWeightLimit, "call %s requires %d, message allows %d", index, w, t.RequireWeightAtMost)
	}
	_, err = r.deliver(ctx, origin, index, call, h)
	return err
}

// convertOrigin translates the location a message was sent from into the
// origin the call executes with.
func convertOrigin(from xcm.Location) (xregister.Origin, error) {
	if id, ok := from.SiblingChain(); ok {
		return xregister.SiblingChainOrigin{Chain: id}, nil
	}
	if from.IsParent() {
		return xregister.ParentChainOrigin{}, nil
	}
	return nil, errors.Wrapf(errors.ErrUnauthorizedOrigin, "cannot convert %s location", from)
}

// ProcessInbound executes all messages the inbox holds for this chain.
// A failing message is logged and does not prevent the execution of the
// following ones. The number of successfully executed and failed messages
// is returned.
func (r *Runtime) ProcessInbound(ctx context.Context, inbox Inbox) (executed, failed int) {
	for _, in := range inbox.Drain(r.chainID) {
		if err := r.ExecuteXcm(ctx, in.From, in.Payload); err != nil {
			failed++
			r.logger.Error("inbound message failed", "from", in.From, "err", err)
			continue
		}
		executed++
	}
	return executed, failed
}

// Query runs the query handler registered for given path against the
// committed state.
func (r *Runtime) Query(path string, data []byte) ([]xregister.Model, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.queries.Query(r.db, path, data)
}

// deliver runs the handler within a cache wrap, writes it on success and
// only then forwards the events. Caller must hold the lock.
func (r *Runtime) deliver(ctx context.Context, origin xregister.Origin, index xregister.CallIndex, call xregister.Call, h xregister.Handler) (*xregister.DeliverResult, error) {
	if _, ok := xregister.GetChainID(ctx); !ok {
		ctx = xregister.WithChainID(ctx, r.chainID)
	}
	ctx = xregister.WithLogger(ctx, r.logger)
	ctx = xregister.WithLogInfo(ctx, "call", index, "origin", origin)

	cache := r.db.CacheWrap()
	res, err := r.stack.WithHandler(h).Deliver(ctx, cache, origin, call)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if res == nil {
		return &xregister.DeliverResult{}, nil
	}
	for _, ev := range res.Events {
		r.sink.Emit(ctx, ev)
	}
	return res, nil
}
