/*
Package xregister defines the interfaces shared by the cross-chain name
registration modules: accounts and chain identifiers, call origins,
storage, handlers, events and context helpers.

A call travels between chains as an encoded envelope whose first two bytes
are the call index (module, method). The host runtime routes every call,
local or remote, through the same dispatch table keyed by that index. The
origin of a call tells the handler who is asking: a local signed account, a
sibling parachain, the relay chain, or nobody.

We pass context through context.Context between the runtime and handlers.
There should exist two functions for every XYZ of type T that we want to
support in Context:

	WithXYZ(Context, T) Context
	GetXYZ(Context) (val T, ok bool)

WithXYZ panics if the value was previously set to avoid lower-level modules
overwriting the value (eg. chain id).
*/
package xregister
