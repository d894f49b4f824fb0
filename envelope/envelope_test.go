package envelope

import (
	"bytes"
	"testing"

	"github.com/iov-one/xregister"
	"github.com/iov-one/xregister/errors"
	"github.com/iov-one/xregister/weavetest"
	"github.com/iov-one/xregister/weavetest/assert"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	alice := weavetest.NewAccount()

	cases := map[string]Envelope{
		"short name":    New(7, 3, alice, []byte("shipname")),
		"empty name":    New(0, 0, alice, []byte{}),
		"max indexes":   New(255, 255, alice, []byte("x")),
		"binary name":   New(1, 2, alice, []byte{0, 0xff, 0x10}),
		"two byte len":  New(9, 1, alice, bytes.Repeat([]byte("a"), 64)),
		"four byte len": New(9, 1, alice, bytes.Repeat([]byte("b"), 1<<14)),
	}

	for testName, want := range cases {
		t.Run(testName, func(t *testing.T) {
			raw, err := want.Marshal()
			assert.Nil(t, err)

			got, err := Decode(raw)
			assert.Nil(t, err)
			if !want.Equals(got) {
				t.Fatalf("want %+v, got %+v", want, got)
			}

			var viaUnmarshal Envelope
			assert.Nil(t, viaUnmarshal.Unmarshal(raw))
			if !want.Equals(viaUnmarshal) {
				t.Fatalf("want %+v, got %+v", want, viaUnmarshal)
			}

			index, err := ReadIndex(raw)
			assert.Nil(t, err)
			assert.Equal(t, want.Index(), index)
		})
	}
}

func TestEncodeLayout(t *testing.T) {
	var account xregister.AccountID
	for i := range account {
		account[i] = byte(i)
	}

	raw := Encode(7, 3, account, []byte("shipname"))

	want := []byte{7, 3}
	want = append(want, account[:]...)
	// compact single byte mode: length << 2
	want = append(want, 8<<2)
	want = append(want, "shipname"...)
	assert.Equal(t, want, raw)

	// deterministic
	assert.Equal(t, raw, Encode(7, 3, account, []byte("shipname")))
}

func TestAppendName(t *testing.T) {
	cases := map[string]struct {
		dst  []byte
		name []byte
		want []byte
	}{
		"empty name": {
			dst:  []byte{42, 0},
			name: nil,
			want: []byte{42, 0, 0},
		},
		"single byte length": {
			dst:  []byte{42, 0},
			name: []byte("ab"),
			want: []byte{42, 0, 2 << 2, 'a', 'b'},
		},
		"two byte length": {
			dst:  nil,
			name: bytes.Repeat([]byte("a"), 64),
			want: append([]byte{0x01, 0x01}, bytes.Repeat([]byte("a"), 64)...),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, AppendName(tc.dst, tc.name))
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	valid := Encode(7, 3, weavetest.NewAccount(), []byte("shipname"))

	cases := map[string][]byte{
		"nil":                 nil,
		"only call index":     valid[:2],
		"truncated account":   valid[:20],
		"missing name length": valid[:34],
		"truncated name":      valid[:len(valid)-1],
		"trailing bytes":      append(append([]byte{}, valid...), 0x00),
		"huge name length":    append(append([]byte{}, valid[:34]...), 0x03, 0xff, 0xff, 0xff, 0xff),
	}

	for testName, raw := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := Decode(raw)
			assert.IsErr(t, errors.ErrMalformedEnvelope, err)
		})
	}
}

func TestReadIndexTooShort(t *testing.T) {
	_, err := ReadIndex([]byte{7})
	assert.IsErr(t, errors.ErrMalformedEnvelope, err)
}

func TestEqualsIsStructural(t *testing.T) {
	alice := weavetest.NewAccount()
	bobby := weavetest.NewAccount()

	base := New(7, 3, alice, []byte("shipname"))
	if !base.Equals(New(7, 3, alice, []byte("shipname"))) {
		t.Fatal("identical envelopes must be equal")
	}
	for name, other := range map[string]Envelope{
		"module":  New(8, 3, alice, []byte("shipname")),
		"method":  New(7, 4, alice, []byte("shipname")),
		"account": New(7, 3, bobby, []byte("shipname")),
		"name":    New(7, 3, alice, []byte("boatname")),
	} {
		if base.Equals(other) {
			t.Fatalf("envelopes with different %s must not be equal", name)
		}
	}
}
