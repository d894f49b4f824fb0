package xclient

import (
	"github.com/gogo/protobuf/proto"
)

// Configuration is the xclient package configuration. It is stored in the
// database as a protobuf message and loaded from the genesis as JSON.
type Configuration struct {
	// ServerChainID is the parachain id of the server chain.
	ServerChainID uint32 `protobuf:"varint,1,opt,name=server_chain_id,json=serverChainId,proto3" json:"server_chain_id"`
	// ServerModuleID is the index of the server module on the server chain.
	ServerModuleID uint32 `protobuf:"varint,2,opt,name=server_module_id,json=serverModuleId,proto3" json:"server_module_id"`
	// ServerMethodID is the index of the register method within the server
	// module.
	ServerMethodID uint32 `protobuf:"varint,3,opt,name=server_method_id,json=serverMethodId,proto3" json:"server_method_id"`
	// MaxRemoteWeight is the upper bound of the execution cost the server
	// chain may charge for a registration.
	MaxRemoteWeight uint64 `protobuf:"varint,4,opt,name=max_remote_weight,json=maxRemoteWeight,proto3" json:"max_remote_weight"`
}

// Marshal returns the protobuf representation of the configuration.
func (m *Configuration) Marshal() ([]byte, error) {
	return proto.Marshal((*wireConfiguration)(m))
}

// Unmarshal loads the configuration from its protobuf representation.
func (m *Configuration) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireConfiguration)(m))
}

// wireConfiguration is the message the protobuf library serializes. It
// must not implement Marshal or Unmarshal itself.
type wireConfiguration Configuration

func (m *wireConfiguration) Reset()         { *m = wireConfiguration{} }
func (m *wireConfiguration) String() string { return proto.CompactTextString(m) }
func (*wireConfiguration) ProtoMessage()    {}
