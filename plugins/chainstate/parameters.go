package chainstate

import (
	"github.com/iotaledger/hive.go/configuration"
)

// Parameters contains the configuration parameters of the chainstate plugin.
var Parameters = struct {
	// ChainIdentifier is the identifier of the chain whose state this node serves.
	ChainIdentifier string `default:"amber-devnet" usage:"identifier of the chain whose state this node serves"`

	// Epoch is the epoch the chain state starts in.
	Epoch uint64 `default:"0" usage:"epoch the chain state starts in"`

	// ProtocolVersion is the protocol version the chain state starts with.
	ProtocolVersion uint32 `default:"3" usage:"protocol version the chain state starts with"`

	// ReferenceGasPrice is the reference gas price of the current epoch.
	ReferenceGasPrice uint64 `default:"1000" usage:"reference gas price of the current epoch"`

	// Snapshot is the path to the object snapshot that seeds the chain state. No snapshot is loaded when empty.
	Snapshot string `default:"" usage:"path to the object snapshot that seeds the chain state"`
}{}

func init() {
	configuration.BindParameters(&Parameters, "chainstate")
}
