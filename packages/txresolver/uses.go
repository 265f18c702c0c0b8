package txresolver

import (
	"github.com/amberledger/goamber/packages/ledgerstate"
)

// region input uses ///////////////////////////////////////////////////////////////////////////////////////////////////

// inputUse is a single use of a transaction input by a Command. The ParameterIndex is only meaningful for commands
// that bind their arguments positionally (MoveCall, TransferObjects, the merged coins of MergeCoins and the elements
// of MakeMoveVector).
type inputUse struct {
	Command           ledgerstate.Command
	ParameterIndex    int
	HasParameterIndex bool
}

// forEachInputUse iterates over the uses of the input with the given index across the given commands, in command
// order. The iteration aborts when the consumer returns false. Each command contributes its first matching position
// only, which is sufficient because resolution treats every use of an input the same way.
func forEachInputUse(inputIndex uint16, commands []ledgerstate.Command, consumer func(use inputUse) bool) {
	for _, command := range commands {
		use, used := inputUseOfCommand(inputIndex, command)
		if !used {
			continue
		}
		if !consumer(use) {
			return
		}
	}
}

func inputUseOfCommand(inputIndex uint16, command ledgerstate.Command) (use inputUse, used bool) {
	use.Command = command

	switch typedCommand := command.(type) {
	case *ledgerstate.MoveCall:
		if position := positionOfInput(inputIndex, typedCommand.Arguments); position >= 0 {
			use.ParameterIndex, use.HasParameterIndex = position, true
			return use, true
		}
	case *ledgerstate.TransferObjects:
		if position := positionOfInput(inputIndex, typedCommand.Objects); position >= 0 {
			use.ParameterIndex, use.HasParameterIndex = position, true
			return use, true
		}
	case *ledgerstate.SplitCoins:
		if typedCommand.Coin.ReferencesInput(inputIndex) {
			return use, true
		}
	case *ledgerstate.MergeCoins:
		if typedCommand.Coin.ReferencesInput(inputIndex) {
			return use, true
		}
		if position := positionOfInput(inputIndex, typedCommand.CoinsToMerge); position >= 0 {
			use.ParameterIndex, use.HasParameterIndex = position, true
			return use, true
		}
	case *ledgerstate.MakeMoveVector:
		if position := positionOfInput(inputIndex, typedCommand.Elements); position >= 0 {
			use.ParameterIndex, use.HasParameterIndex = position, true
			return use, true
		}
	case *ledgerstate.Upgrade:
		if typedCommand.Ticket.ReferencesInput(inputIndex) {
			return use, true
		}
	}

	return use, false
}

func positionOfInput(inputIndex uint16, arguments []ledgerstate.Argument) int {
	for position, argument := range arguments {
		if argument.ReferencesInput(inputIndex) {
			return position
		}
	}

	return -1
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
