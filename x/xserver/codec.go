package xserver

import (
	"github.com/gogo/protobuf/proto"
)

// Registration is the name recorded for an account.
type Registration struct {
	Name []byte `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

// Marshal returns the protobuf representation of the registration.
func (m *Registration) Marshal() ([]byte, error) {
	return proto.Marshal((*wireRegistration)(m))
}

// Unmarshal loads the registration from its protobuf representation.
func (m *Registration) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireRegistration)(m))
}

// wireRegistration is the message the protobuf library serializes. It must
// not implement Marshal or Unmarshal itself.
type wireRegistration Registration

func (m *wireRegistration) Reset()         { *m = wireRegistration{} }
func (m *wireRegistration) String() string { return proto.CompactTextString(m) }
func (*wireRegistration) ProtoMessage()    {}
