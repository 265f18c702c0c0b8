package txresolver

import (
	"github.com/amberledger/goamber/packages/chainstate"
	"github.com/amberledger/goamber/packages/ledgerstate"
)

// region resolvePTB ///////////////////////////////////////////////////////////////////////////////////////////////////

// resolvePTB completes the command section of an unresolved transaction. The inputs are resolved in declaration
// order and the first failing input aborts the resolution. The commands are carried over unchanged.
func resolvePTB(reader chainstate.Reader, calledPackages map[ledgerstate.ObjectID]*NormalizedPackage, unresolvedPTB ledgerstate.UnresolvedProgrammableTransaction) (transaction ledgerstate.ProgrammableTransaction, err error) {
	transaction.Inputs = make([]ledgerstate.CallArg, len(unresolvedPTB.Inputs))
	for inputIndex, input := range unresolvedPTB.Inputs {
		if transaction.Inputs[inputIndex], err = resolveArgument(reader, calledPackages, unresolvedPTB.Commands, input, uint16(inputIndex)); err != nil {
			return transaction, err
		}
	}

	transaction.Commands = make([]ledgerstate.Command, len(unresolvedPTB.Commands))
	copy(transaction.Commands, unresolvedPTB.Commands)

	return transaction, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
