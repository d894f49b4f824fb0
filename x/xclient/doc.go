/*
Package xclient lets local accounts register a name on a remote server chain.

A signed XRegisterMsg is turned into an envelope addressed to the register
method of the server chain and handed to the cross-chain transport inside a
Transact message. The server chain, the call index of its register method and
the weight the remote execution may use are read from the package
configuration.

Success only means that the transport accepted the message. No confirmation
of the remote execution is ever received.
*/
package xclient
