package shutdown

const (
	// PriorityDatabase is the shutdown priority of the database.
	PriorityDatabase = iota

	// PriorityChainState is the shutdown priority of the chain state.
	PriorityChainState

	// PriorityWebAPI is the shutdown priority of the web API.
	PriorityWebAPI
)
