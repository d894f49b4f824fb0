package xclient

import (
	"context"
	"testing"

	"github.com/iov-one/xregister"
	"github.com/iov-one/xregister/envelope"
	"github.com/iov-one/xregister/errors"
	"github.com/iov-one/xregister/store"
	"github.com/iov-one/xregister/weavetest"
	"github.com/iov-one/xregister/weavetest/assert"
	"github.com/iov-one/xregister/xcm"
)

var clientIndex = xregister.NewCallIndex(42, 0)

func TestRegisterName(t *testing.T) {
	alice := weavetest.NewAccount()
	conf := Configuration{
		ServerChainID:   2000,
		ServerModuleID:  7,
		ServerMethodID:  3,
		MaxRemoteWeight: 1_000_000,
	}

	cases := map[string]struct {
		Conf         *Configuration
		Origin       xregister.Origin
		Call         xregister.Call
		TransportErr error
		WantErr      *errors.Error
		WantSent     bool
	}{
		"signed account registers a name": {
			Conf:     &conf,
			Origin:   xregister.SignedOrigin{Account: alice},
			Call:     NewXRegisterCall(clientIndex, []byte("shipname")),
			WantSent: true,
		},
		"empty name is accepted": {
			Conf:     &conf,
			Origin:   xregister.SignedOrigin{Account: alice},
			Call:     NewXRegisterCall(clientIndex, nil),
			WantSent: true,
		},
		"unsigned origin": {
			Conf:    &conf,
			Origin:  xregister.NoneOrigin{},
			Call:    NewXRegisterCall(clientIndex, []byte("shipname")),
			WantErr: errors.ErrUnauthorizedOrigin,
		},
		"sibling chain origin": {
			Conf:    &conf,
			Origin:  xregister.SiblingChainOrigin{Chain: 2000},
			Call:    NewXRegisterCall(clientIndex, []byte("shipname")),
			WantErr: errors.ErrUnauthorizedOrigin,
		},
		"zero account signer": {
			Conf:    &conf,
			Origin:  xregister.SignedOrigin{},
			Call:    NewXRegisterCall(clientIndex, []byte("shipname")),
			WantErr: errors.ErrUnauthorizedOrigin,
		},
		"transport failure": {
			Conf:         &conf,
			Origin:       xregister.SignedOrigin{Account: alice},
			Call:         NewXRegisterCall(clientIndex, []byte("shipname")),
			TransportErr: xcm.ErrUnroutable,
			WantErr:      errors.ErrTransportSend,
		},
		"malformed call": {
			Conf:    &conf,
			Origin:  xregister.SignedOrigin{Account: alice},
			Call:    xregister.Call{42, 0, 8 << 2, 'a'},
			WantErr: errors.ErrMalformedEnvelope,
		},
		"not configured": {
			Origin:  xregister.SignedOrigin{Account: alice},
			Call:    NewXRegisterCall(clientIndex, []byte("shipname")),
			WantErr: errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if tc.Conf != nil {
				assert.Nil(t, SaveConfiguration(db, tc.Conf))
			}
			transport := &weavetest.Transport{Err: tc.TransportErr}
			h := NewRegisterNameHandler(transport)

			res, err := h.Deliver(context.Background(), db, tc.Origin, tc.Call)
			assert.IsErr(t, tc.WantErr, err)

			if !tc.WantSent {
				assert.Equal(t, 0, len(transport.Sent()))
				if res != nil {
					t.Fatalf("want no result, got %+v", res)
				}
				return
			}

			var msg XRegisterMsg
			assert.Nil(t, msg.Unmarshal(tc.Call))

			sent := transport.Sent()
			assert.Equal(t, 1, len(sent))
			assert.Equal(t, xcm.Sibling(2000), sent[0].Dest)
			tr, ok := sent[0].Msg.Instruction.(*xcm.Transact)
			if !ok {
				t.Fatalf("want transact, got %T", sent[0].Msg.Instruction)
			}
			assert.Equal(t, xcm.OriginKindNative, tr.OriginKind)
			assert.Equal(t, uint64(1_000_000), tr.RequireWeightAtMost)

			env, err := envelope.Decode(tr.Call)
			assert.Nil(t, err)
			want := envelope.New(7, 3, alice, msg.Name)
			if !want.Equals(env) {
				t.Fatalf("want %+v envelope, got %+v", want, env)
			}
			assert.Equal(t, tr.Call, res.Data)
			assert.Equal(t, []xregister.Event{NameRegistrationRequested{Account: alice, Name: msg.Name}}, res.Events)
		})
	}
}

func TestRegisterNameWithRouter(t *testing.T) {
	routes := make(registry)
	transport := &weavetest.Transport{}
	RegisterRoutes(routes, clientIndex, transport)

	h, ok := routes[clientIndex]
	if !ok {
		t.Fatal("handler not registered")
	}
	assert.Equal(t, uint64(registerNameWeight), h.Weight())
}

type registry map[xregister.CallIndex]xregister.Handler

func (r registry) Handle(index xregister.CallIndex, h xregister.Handler) {
	r[index] = h
}
