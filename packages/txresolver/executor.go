package txresolver

import (
	"github.com/iotaledger/hive.go/stringify"

	"github.com/amberledger/goamber/packages/ledgerstate"
)

// region Executor /////////////////////////////////////////////////////////////////////////////////////////////////////

// Executor simulates fully resolved transactions against the current chain state without committing their effects.
type Executor interface {
	// SimulateTransaction executes the given transaction as a dry run and returns its effects.
	SimulateTransaction(transaction *ledgerstate.TransactionData) (*SimulationResult, error)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region GasCostSummary ///////////////////////////////////////////////////////////////////////////////////////////////

// GasCostSummary breaks down the gas that a simulated transaction consumed.
type GasCostSummary struct {
	ComputationCost         uint64
	StorageCost             uint64
	StorageRebate           uint64
	NonRefundableStorageFee uint64
}

// GasUsed returns the total gas charged before rebates.
func (g GasCostSummary) GasUsed() uint64 {
	return g.ComputationCost + g.StorageCost
}

// NetGasUsage returns the gas charged after rebates. It is negative when the rebate exceeds the charges.
func (g GasCostSummary) NetGasUsage() int64 {
	return int64(g.GasUsed()) - int64(g.StorageRebate)
}

// String returns a human readable version of the GasCostSummary.
func (g GasCostSummary) String() string {
	return stringify.Struct("GasCostSummary",
		stringify.StructField("computationCost", g.ComputationCost),
		stringify.StructField("storageCost", g.StorageCost),
		stringify.StructField("storageRebate", g.StorageRebate),
		stringify.StructField("nonRefundableStorageFee", g.NonRefundableStorageFee),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Effects //////////////////////////////////////////////////////////////////////////////////////////////////////

// Effects is the outcome of a simulated transaction.
type Effects struct {
	Success        bool
	GasCostSummary GasCostSummary
}

// String returns a human readable version of the Effects.
func (e Effects) String() string {
	return stringify.Struct("Effects",
		stringify.StructField("success", e.Success),
		stringify.StructField("gasCostSummary", e.GasCostSummary),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region SimulationResult /////////////////////////////////////////////////////////////////////////////////////////////

// SimulationResult is what the Executor returns for a simulated transaction.
type SimulationResult struct {
	Effects Effects
}

// String returns a human readable version of the SimulationResult.
func (s *SimulationResult) String() string {
	return stringify.Struct("SimulationResult",
		stringify.StructField("effects", s.Effects),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
