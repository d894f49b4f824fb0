/*
Package errors implements custom error interfaces for xregister.

The idea is to reuse as many errors from this package as possible and define
custom package errors when absolutely necessary. Every error returned by a
handler should wrap one of the registered root errors, so that callers can
test the kind of a failure with the Is method, no matter how many times it was
wrapped on the way up.

Packages declare their own root errors with Register(code, description) and
add context with Wrap and Wrapf. The innermost wrap records a stack trace.

Once you have an error, you can use `fmt.Printf/Sprintf` to get more context for the error

	%s is just the error message
	%+v is the message followed by the full stack trace
*/
package errors
