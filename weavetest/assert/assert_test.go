package assert

import (
	"testing"

	"github.com/iov-one/xregister/errors"
)

func TestIsErr(t *testing.T) {
	cases := map[string]struct {
		ErrWant  *errors.Error
		ErrGot   error
		WantFail bool
	}{
		"same error": {
			ErrWant:  errors.ErrEmpty,
			ErrGot:   errors.ErrEmpty,
			WantFail: false,
		},
		"compared to nil": {
			ErrWant:  nil,
			ErrGot:   errors.ErrEmpty,
			WantFail: true,
		},
		"both nil": {
			ErrWant:  nil,
			ErrGot:   nil,
			WantFail: false,
		},
		"wrapped": {
			ErrWant:  errors.ErrMalformedEnvelope,
			ErrGot:   errors.Wrap(errors.ErrMalformedEnvelope, "test"),
			WantFail: false,
		},
		"different kind": {
			ErrWant:  errors.ErrOriginNotSiblingChain,
			ErrGot:   errors.Wrap(errors.ErrUnauthorizedOrigin, "test"),
			WantFail: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			mock := &tmock{TB: t}
			IsErr(mock, tc.ErrWant, tc.ErrGot)
			failed := mock.failcalls > 0
			if tc.WantFail != failed {
				t.Fatalf("unlexpected failed call state: %d failures", mock.failcalls)
			}
		})
	}
}

func TestNil(t *testing.T) {
	var nilSlice []byte

	mock := &tmock{TB: t}
	Nil(mock, nil)
	Nil(mock, nilSlice)
	if mock.failcalls != 0 {
		t.Fatalf("unexpected failures: %d", mock.failcalls)
	}
	Nil(mock, 42)
	if mock.failcalls != 1 {
		t.Fatalf("want one failure, got %d", mock.failcalls)
	}
}

func TestEqual(t *testing.T) {
	cases := map[string]struct {
		Want     interface{}
		Got      interface{}
		WantFail bool
	}{
		"same bytes":       {Want: []byte("a"), Got: []byte("a")},
		"different bytes":  {Want: []byte("a"), Got: []byte("b"), WantFail: true},
		"empty is not nil": {Want: []byte{}, Got: []byte(nil), WantFail: true},
		"different type":   {Want: uint32(1), Got: uint64(1), WantFail: true},
		"equal structs":    {Want: struct{ A int }{1}, Got: struct{ A int }{1}},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			mock := &tmock{TB: t}
			Equal(mock, tc.Want, tc.Got)
			if failed := mock.failcalls > 0; failed != tc.WantFail {
				t.Fatalf("unexpected failed call state: %d failures", mock.failcalls)
			}
		})
	}
}

func TestPanics(t *testing.T) {
	mock := &tmock{TB: t}
	Panics(mock, func() { panic("boom") })
	if mock.failcalls != 0 {
		t.Fatalf("unexpected failures: %d", mock.failcalls)
	}
	Panics(mock, func() {})
	if mock.failcalls != 1 {
		t.Fatalf("want one failure, got %d", mock.failcalls)
	}
}

// tmock mocks testing.TB and only counts failures. It ignores all other
// input and never stops the test.
type tmock struct {
	testing.TB
	failcalls int
}

func (t *tmock) Errorf(s string, args ...interface{}) {
	t.TB.Logf(s, args...)
	t.failcalls++
}

func (t *tmock) FailNow() {}
