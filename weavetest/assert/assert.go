/*
Package assert holds the assertions used by xregister tests. Every assertion
stops the test on failure.
*/
package assert

import (
	"reflect"

	"github.com/iov-one/xregister/errors"
	"github.com/stretchr/testify/require"
)

// Tester is the part of testing.TB the assertions need.
type Tester interface {
	require.TestingT
	Helper()
}

// Nil fails unless value is nil. Errors are printed with their stack trace.
func Nil(t Tester, value interface{}) {
	t.Helper()
	require.Nil(t, value, "%+v", value)
}

// Equal fails unless both values are deeply equal. Unlike require.Equal, a
// nil and an empty byte slice differ, since a stored empty name is not a
// missing one.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	require.Equal(t, want, got)
	require.True(t, reflect.DeepEqual(want, got), "want %#v, got %#v", want, got)
}

// Panics fails unless fn panics.
func Panics(t Tester, fn func()) {
	t.Helper()
	require.Panics(t, fn)
}

// IsErr fails unless got is, or wraps, the want root error. A nil want
// expects no error.
func IsErr(t Tester, want *errors.Error, got error) {
	t.Helper()
	require.True(t, want.Is(got), "want %v, got %+v", want, got)
}
