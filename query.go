package xregister

import (
	"fmt"
	"strings"

	"github.com/iov-one/xregister/errors"
)

// Model is a key and the raw value stored under it, as returned by queries.
type Model struct {
	Key   []byte
	Value []byte
}

// Pair returns the model of a stored key and value.
func Pair(key, value []byte) Model {
	return Model{Key: key, Value: value}
}

// QueryHandler reads models from the committed state.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, data []byte) ([]Model, error)
}

// QueryRegister adds the query handlers of a package to a router.
type QueryRegister func(QueryRouter)

// QueryRouter dispatches state queries by path. Paths start with a slash,
// ie. "/registrations".
type QueryRouter struct {
	routes map[string]QueryHandler
}

// NewQueryRouter returns a router without routes.
func NewQueryRouter() QueryRouter {
	return QueryRouter{routes: make(map[string]QueryHandler)}
}

// RegisterAll runs all given registers against this router.
func (r QueryRouter) RegisterAll(qr ...QueryRegister) {
	for _, q := range qr {
		q(r)
	}
}

// Register adds a handler at path. It panics if the path is taken or does
// not start with a slash.
func (r QueryRouter) Register(path string, h QueryHandler) {
	if !strings.HasPrefix(path, "/") {
		panic(fmt.Sprintf("query path must start with a slash: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering query path: %s", path))
	}
	r.routes[path] = h
}

// Query runs the handler registered at path. It returns ErrNotFound if no
// handler is registered there.
func (r QueryRouter) Query(db ReadOnlyKVStore, path string, data []byte) ([]Model, error) {
	h, ok := r.routes[path]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "no query handler for %q", path)
	}
	return h.Query(db, data)
}
