// Package txresolver turns partially specified transactions into fully concrete, executable ones. It completes
// object references against the latest chain state, infers the mutability of shared object inputs from the compiled
// signatures of the called packages and fills in gas price, budget and payment where the submitter left them open.
package txresolver

import (
	"github.com/cockroachdb/errors"

	"github.com/amberledger/goamber/packages/chainstate"
	"github.com/amberledger/goamber/packages/ledgerstate"
	"github.com/amberledger/goamber/packages/protocol"
)

// region Result ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Result is the outcome of a resolution: the fully concrete transaction and, when requested, the result of
// simulating it.
type Result struct {
	Transaction *ledgerstate.TransactionData
	Simulation  *SimulationResult
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Resolver /////////////////////////////////////////////////////////////////////////////////////////////////////

// Resolver resolves partially specified transactions against a chain state Reader, using an Executor for the dry
// runs that the budget estimation needs.
type Resolver struct {
	reader   chainstate.Reader
	executor Executor
}

// NewResolver returns a new Resolver that reads the chain state through the given Reader and simulates through the
// given Executor.
func NewResolver(reader chainstate.Reader, executor Executor) *Resolver {
	return &Resolver{
		reader:   reader,
		executor: executor,
	}
}

// ResolveTransaction resolves the given UnresolvedTransaction against the latest chain state. When the submitter
// did not provide a budget it is estimated from a dry run, when no gas payment was provided the owner's gas coins
// are selected to cover the budget. With simulate set, the fully resolved transaction is additionally simulated and
// the result attached.
func (r *Resolver) ResolveTransaction(unresolvedTransaction *ledgerstate.UnresolvedTransaction, simulate bool) (result *Result, err error) {
	if r.executor == nil {
		return nil, errors.Wrap(ErrInternal, "no transaction executor")
	}

	systemState := r.reader.SystemStateSummary()
	config, err := protocol.ConfigForVersion(systemState.ProtocolVersion)
	if err != nil {
		return nil, errors.Wrapf(ErrInternal, "unable to get current protocol config: %v", err)
	}

	calledPackages, err := resolveCalledPackages(r.reader, config, unresolvedTransaction)
	if err != nil {
		return nil, err
	}

	userProvidedBudget := unresolvedTransaction.GasPayment.Budget

	gasData, err := resolveGasData(r.reader, unresolvedTransaction.GasPayment, unresolvedTransaction.Sender, systemState.ReferenceGasPrice, config.MaxTxGas())
	if err != nil {
		return nil, err
	}
	ptb, err := resolvePTB(r.reader, calledPackages, unresolvedTransaction.PTB)
	if err != nil {
		return nil, err
	}

	transaction := &ledgerstate.TransactionData{
		Sender:      unresolvedTransaction.Sender,
		GasData:     gasData,
		Expiration:  unresolvedTransaction.Expiration,
		Transaction: ptb,
	}

	// without an explicit budget a dry run with the placeholder budget yields the costs to estimate one from
	budget := transaction.GasData.Budget
	if userProvidedBudget == nil {
		simulationResult, simulationErr := r.executor.SimulateTransaction(transaction)
		if simulationErr != nil {
			return nil, errors.Wrapf(ErrInternal, "failed to simulate transaction: %v", simulationErr)
		}

		budget = estimateGasBudget(simulationResult.Effects.GasCostSummary, systemState.ReferenceGasPrice)
		transaction.GasData.Budget = budget
	}

	if len(transaction.GasData.Payment) == 0 {
		if transaction.GasData.Payment, err = selectGasCoins(r.reader, transaction.GasData.Owner, budget, config.MaxGasPaymentObjects(), transaction.InputObjectIDs()); err != nil {
			return nil, err
		}
	}

	result = &Result{Transaction: transaction}
	if simulate {
		if result.Simulation, err = r.executor.SimulateTransaction(transaction); err != nil {
			return nil, errors.Wrapf(ErrInternal, "failed to simulate transaction: %v", err)
		}
	}

	return result, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
