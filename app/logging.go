package app

import (
	"time"

	"github.com/iov-one/xregister"
)

// Logging logs the outcome of every call with the logger of the context,
// which carries the chain, call index and origin.
type Logging struct{}

var _ xregister.Decorator = Logging{}

// NewLogging returns a Logging decorator.
func NewLogging() Logging {
	return Logging{}
}

// Deliver logs failed calls at error level and executed calls at info
// level, together with the execution time.
func (Logging) Deliver(ctx xregister.Context, db xregister.KVStore, origin xregister.Origin, call xregister.Call, next xregister.Handler) (*xregister.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, origin, call)
	logger := xregister.GetLogger(ctx).With(
		"weight", next.Weight(),
		"took", time.Since(start),
	)
	if err != nil {
		logger.Error("call failed", "err", err)
		return res, err
	}
	var events int
	if res != nil {
		events = len(res.Events)
		if res.Log != "" {
			logger = logger.With("log", res.Log)
		}
	}
	logger.Info("call executed", "events", events)
	return res, nil
}
