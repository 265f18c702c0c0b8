package txresolver

import (
	"github.com/cockroachdb/errors"

	"github.com/amberledger/goamber/packages/chainstate"
	"github.com/amberledger/goamber/packages/ledgerstate"
)

// gasSafeOverhead is the fixed safety margin (in gas units) that the budget estimate adds on top of the simulated
// costs. The value matches the estimator of the client libraries so both sides arrive at the same budget.
const gasSafeOverhead = 1000

// region resolveGasData ///////////////////////////////////////////////////////////////////////////////////////////////

// resolveGasData assembles the gas section of the resolved transaction. Provided payment references are completed
// against the chain state, absent fields fall back to their defaults: the sender as owner, the reference gas price
// and the protocol maximum as a placeholder budget.
func resolveGasData(reader chainstate.Reader, gasPayment ledgerstate.UnresolvedGasPayment, sender ledgerstate.Address, referenceGasPrice uint64, maxGasBudget uint64) (gasData ledgerstate.GasData, err error) {
	gasData.Payment = make([]ledgerstate.ObjectReference, len(gasPayment.Objects))
	for i, unresolvedReference := range gasPayment.Objects {
		if gasData.Payment[i], err = resolveObjectReference(reader, unresolvedReference); err != nil {
			return gasData, err
		}
	}

	gasData.Owner = gasPayment.Owner
	if gasData.Owner == (ledgerstate.Address{}) {
		gasData.Owner = sender
	}

	gasData.Price = referenceGasPrice
	if gasPayment.Price != nil {
		gasData.Price = *gasPayment.Price
	}

	gasData.Budget = maxGasBudget
	if gasPayment.Budget != nil {
		gasData.Budget = *gasPayment.Budget
	}

	return gasData, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region estimateGasBudget ////////////////////////////////////////////////////////////////////////////////////////////

// estimateGasBudget derives a gas budget from the cost summary of a dry run. The estimate is the maximum of the
// computation cost and the net gas usage, each padded with a safety overhead of gasSafeOverhead gas units at the
// reference gas price. It never returns less than the padded computation cost.
func estimateGasBudget(gasCostSummary GasCostSummary, referenceGasPrice uint64) uint64 {
	safeOverhead := gasSafeOverhead * referenceGasPrice
	computationCostWithOverhead := gasCostSummary.ComputationCost + safeOverhead

	gasUsage := gasCostSummary.NetGasUsage() + int64(safeOverhead)
	if gasUsage < 0 {
		gasUsage = 0
	}

	if computationCostWithOverhead > uint64(gasUsage) {
		return computationCostWithOverhead
	}

	return uint64(gasUsage)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region selectGasCoins ///////////////////////////////////////////////////////////////////////////////////////////////

// selectGasCoins greedily picks gas coins of the given owner until their combined value covers the budget. Coins are
// considered in the order of the ownership listing, objects that the transaction already uses as inputs are skipped
// and at most maxGasPaymentObjects loadable coins are examined. There is no optimization towards a minimal coin
// count.
func selectGasCoins(reader chainstate.Reader, owner ledgerstate.Address, budget uint64, maxGasPaymentObjects uint16, excludedObjects []ledgerstate.ObjectID) (selectedCoins []ledgerstate.ObjectReference, err error) {
	excluded := make(map[ledgerstate.ObjectID]bool, len(excludedObjects))
	for _, objectID := range excludedObjects {
		excluded[objectID] = true
	}

	var selectedValue uint64
	examinedCoins := uint16(0)

	reader.ForEachOwnedObject(owner, func(ownedObject chainstate.OwnedObjectInfo) bool {
		if !ownedObject.Type.IsGasCoin() || excluded[ownedObject.ObjectID] {
			return true
		}
		if examinedCoins == maxGasPaymentObjects {
			return false
		}

		object, objectErr := reader.Object(ownedObject.ObjectID)
		if objectErr != nil || object == nil {
			return true
		}
		value, valueErr := ledgerstate.GasCoinValue(object)
		if valueErr != nil {
			return true
		}
		examinedCoins++

		selectedCoins = append(selectedCoins, object.ComputeObjectReference())
		selectedValue += value

		return selectedValue < budget
	})

	if selectedValue < budget {
		return nil, errors.Wrapf(ErrInsufficientFunds, "unable to select sufficient gas coins from account %s to satisfy required budget %d", owner, budget)
	}

	return selectedCoins, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
