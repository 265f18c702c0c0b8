package txresolver

import (
	"github.com/cockroachdb/errors"

	"github.com/amberledger/goamber/packages/chainstate"
	"github.com/amberledger/goamber/packages/ledgerstate"
	"github.com/amberledger/goamber/packages/moveformat"
)

// region resolveArgument //////////////////////////////////////////////////////////////////////////////////////////////

// resolveArgument completes a single UnresolvedInputArgument against the chain state. Pure inputs pass through
// unchanged, object inputs have their references completed and shared inputs additionally get their mutability
// recomputed from how the commands use them.
func resolveArgument(reader chainstate.Reader, calledPackages map[ledgerstate.ObjectID]*NormalizedPackage, commands []ledgerstate.Command, input ledgerstate.UnresolvedInputArgument, inputIndex uint16) (callArg ledgerstate.CallArg, err error) {
	switch typedInput := input.(type) {
	case *ledgerstate.UnresolvedPureArgument:
		return &ledgerstate.PureCallArg{Value: typedInput.Value}, nil
	case *ledgerstate.UnresolvedImmOrOwnedArgument:
		reference, referenceErr := resolveObjectReference(reader, typedInput.Reference)
		if referenceErr != nil {
			return nil, referenceErr
		}

		return &ledgerstate.ImmOrOwnedObjectCallArg{Reference: reference}, nil
	case *ledgerstate.UnresolvedSharedArgument:
		return resolveSharedArgument(reader, calledPackages, commands, typedInput, inputIndex)
	case *ledgerstate.UnresolvedReceivingArgument:
		reference, referenceErr := resolveObjectReference(reader, typedInput.Reference)
		if referenceErr != nil {
			return nil, referenceErr
		}

		return &ledgerstate.ReceivingObjectCallArg{Reference: reference}, nil
	default:
		return nil, errors.Wrapf(ErrInternal, "unknown input type %s", input.Type())
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region resolveSharedArgument ////////////////////////////////////////////////////////////////////////////////////////

// resolveSharedArgument completes a shared object input. The InitialSharedVersion is always taken from the chain
// state and the Mutable flag is recomputed from the uses of the input: a MoveCall mutates the object when the bound
// parameter is a mutable reference or an owned struct, SplitCoins, MergeCoins and MakeMoveVector always mutate it.
// Caller-provided values for either field are ignored.
func resolveSharedArgument(reader chainstate.Reader, calledPackages map[ledgerstate.ObjectID]*NormalizedPackage, commands []ledgerstate.Command, input *ledgerstate.UnresolvedSharedArgument, inputIndex uint16) (callArg ledgerstate.CallArg, err error) {
	object, objectErr := reader.Object(input.ID)
	if objectErr != nil {
		return nil, errors.Wrapf(ErrInternal, "failed to load object %s: %v", input.ID, objectErr)
	}
	if object == nil {
		return nil, NewObjectNotFoundError(input.ID)
	}

	sharedOwner, isShared := object.Owner().(*ledgerstate.SharedOwner)
	if !isShared {
		return nil, errors.Wrapf(ErrInvalidInput, "object %s is not a shared object", input.ID)
	}

	mutable := false
	forEachInputUse(inputIndex, commands, func(use inputUse) bool {
		switch typedCommand := use.Command.(type) {
		case *ledgerstate.MoveCall:
			if !use.HasParameterIndex {
				return true
			}

			calledPackage, packageKnown := calledPackages[typedCommand.Package]
			var function *moveformat.NormalizedFunction
			if packageKnown {
				function = calledPackage.Function(typedCommand.Module, typedCommand.Function)
			}
			if function == nil {
				err = errors.Wrapf(ErrInvalidInput, "unable to find function %s::%s::%s", typedCommand.Package, typedCommand.Module, typedCommand.Function)
				return false
			}

			if use.ParameterIndex >= len(function.Parameters) {
				err = errors.Wrap(ErrInvalidInput, "invalid input parameter")
				return false
			}

			if function.Parameters[use.ParameterIndex].RequiresMutableObject() {
				mutable = true
			}
		case *ledgerstate.SplitCoins, *ledgerstate.MergeCoins, *ledgerstate.MakeMoveVector:
			mutable = true
		}

		// once the object is known to be mutable the remaining uses cannot change the outcome
		return !mutable
	})
	if err != nil {
		return nil, err
	}

	return &ledgerstate.SharedObjectCallArg{
		ID:                   input.ID,
		InitialSharedVersion: sharedOwner.InitialSharedVersion,
		Mutable:              mutable,
	}, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
