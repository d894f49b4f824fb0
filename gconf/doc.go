/*
Package gconf provides a toolset for managing an extension configuration.

Each extension keeps a single configuration object, stored under a key built
from the extension name. The configuration is loaded from the genesis file
at chain start and read by handlers whenever they need it, so that chain
operators never have to recompile to point a module at another chain.

Configuration must be a protobuf message (or anything implementing the same
Marshal/Unmarshal pair) with a Validate method. Invalid configuration is
never written.
*/
package gconf
