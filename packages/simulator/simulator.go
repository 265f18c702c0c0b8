// Package simulator provides a deterministic dry-run implementation of the txresolver.Executor boundary. It does not
// execute module bytecode, it validates the transaction inputs against the chain state and charges costs from a flat
// cost model, which is all that budget estimation needs.
package simulator

import (
	"github.com/cockroachdb/errors"

	"github.com/amberledger/goamber/packages/chainstate"
	"github.com/amberledger/goamber/packages/ledgerstate"
	"github.com/amberledger/goamber/packages/txresolver"
)

const (
	// computationUnitsPerCommand is the flat amount of computation units charged per command.
	computationUnitsPerCommand = 1000

	// storagePricePerByte is the flat storage price charged per byte of the marshaled transaction.
	storagePricePerByte = 76
)

// region Simulator ////////////////////////////////////////////////////////////////////////////////////////////////////

// Simulator is a dry-run Executor over a chain state Reader.
type Simulator struct {
	reader chainstate.Reader
}

// New returns a new Simulator that validates transactions against the given Reader.
func New(reader chainstate.Reader) *Simulator {
	return &Simulator{reader: reader}
}

// SimulateTransaction validates the inputs of the given transaction against the chain state and returns the effects
// of a dry run under the flat cost model. Input validation failures make the dry run unsuccessful, they do not
// return an error.
func (s *Simulator) SimulateTransaction(transaction *ledgerstate.TransactionData) (*txresolver.SimulationResult, error) {
	if transaction == nil {
		return nil, errors.New("no transaction to simulate")
	}

	success := true
	for _, input := range transaction.Transaction.Inputs {
		if inputErr := s.validateInput(input); inputErr != nil {
			success = false
			break
		}
	}

	computationCost := transaction.GasData.Price * computationUnitsPerCommand * uint64(len(transaction.Transaction.Commands)+1)
	storageCost := storagePricePerByte * uint64(len(transaction.Bytes()))

	return &txresolver.SimulationResult{
		Effects: txresolver.Effects{
			Success: success,
			GasCostSummary: txresolver.GasCostSummary{
				ComputationCost: computationCost,
				StorageCost:     storageCost,
			},
		},
	}, nil
}

func (s *Simulator) validateInput(input ledgerstate.CallArg) error {
	switch typedInput := input.(type) {
	case *ledgerstate.ImmOrOwnedObjectCallArg:
		object, err := s.reader.ObjectByKey(typedInput.Reference.ID(), typedInput.Reference.Version())
		if err != nil {
			return err
		}
		if object == nil {
			return errors.Errorf("object %s not found", typedInput.Reference.ID())
		}
		if object.ComputeDigest() != typedInput.Reference.Digest() {
			return errors.Errorf("object %s digest mismatch", typedInput.Reference.ID())
		}
	case *ledgerstate.SharedObjectCallArg:
		object, err := s.reader.Object(typedInput.ID)
		if err != nil {
			return err
		}
		if object == nil {
			return errors.Errorf("object %s not found", typedInput.ID)
		}
		if _, isShared := object.Owner().(*ledgerstate.SharedOwner); !isShared {
			return errors.Errorf("object %s is not shared", typedInput.ID)
		}
	case *ledgerstate.ReceivingObjectCallArg:
		object, err := s.reader.ObjectByKey(typedInput.Reference.ID(), typedInput.Reference.Version())
		if err != nil {
			return err
		}
		if object == nil {
			return errors.Errorf("object %s not found", typedInput.Reference.ID())
		}
	}

	return nil
}

// code contract (make sure the type implements all required methods)
var _ txresolver.Executor = &Simulator{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
