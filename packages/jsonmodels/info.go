package jsonmodels

// InfoResponse holds the response of the GET request.
type InfoResponse struct {
	// Version is the version of the node software.
	Version string `json:"version"`
	// ChainIdentifier is the identifier of the chain the node serves.
	ChainIdentifier string `json:"chainIdentifier"`
	// Epoch is the current epoch of the chain.
	Epoch string `json:"epoch"`
	// ProtocolVersion is the protocol version the chain currently runs.
	ProtocolVersion uint32 `json:"protocolVersion"`
	// ReferenceGasPrice is the reference gas price of the current epoch.
	ReferenceGasPrice string `json:"referenceGasPrice"`
	// ResolvedTransactions is the number of transactions resolved since startup.
	ResolvedTransactions uint64 `json:"resolvedTransactions"`
	// Error contains the error message if the request failed.
	Error string `json:"error,omitempty"`
}
