package txresolver

import (
	"github.com/cockroachdb/errors"

	"github.com/amberledger/goamber/packages/chainstate"
	"github.com/amberledger/goamber/packages/ledgerstate"
	"github.com/amberledger/goamber/packages/moveformat"
	"github.com/amberledger/goamber/packages/protocol"
)

// region NormalizedPackage ////////////////////////////////////////////////////////////////////////////////////////////

// NormalizedPackage is a package referenced by a MoveCall command together with the signature view of its modules.
type NormalizedPackage struct {
	Package *ledgerstate.MovePackage
	Modules map[string]*moveformat.NormalizedModule
}

// Function returns the NormalizedFunction with the given module and function name or nil if the package does not
// contain it.
func (n *NormalizedPackage) Function(moduleName, functionName string) *moveformat.NormalizedFunction {
	module, exists := n.Modules[moduleName]
	if !exists {
		return nil
	}

	return module.Function(functionName)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region resolveCalledPackages ////////////////////////////////////////////////////////////////////////////////////////

// resolveCalledPackages loads and normalizes every package that a MoveCall command of the given transaction
// references. The result is built fresh for every transaction so it always reflects the latest chain state.
//
// Normalization does not take upgrade linkage into account. That is fine here because resolution only inspects the
// reference kinds of the signatures, never the package IDs of the parameter types.
func resolveCalledPackages(reader chainstate.Reader, config protocol.Config, unresolvedTransaction *ledgerstate.UnresolvedTransaction) (calledPackages map[ledgerstate.ObjectID]*NormalizedPackage, err error) {
	binaryConfig := config.BinaryConfig()
	calledPackages = make(map[ledgerstate.ObjectID]*NormalizedPackage)

	for _, command := range unresolvedTransaction.PTB.Commands {
		moveCall, isMoveCall := command.(*ledgerstate.MoveCall)
		if !isMoveCall {
			continue
		}
		if _, alreadyResolved := calledPackages[moveCall.Package]; alreadyResolved {
			continue
		}

		object, objectErr := reader.Object(moveCall.Package)
		if objectErr != nil {
			return nil, errors.Wrapf(ErrInternal, "failed to load package %s: %v", moveCall.Package, objectErr)
		}
		if object == nil {
			return nil, NewObjectNotFoundError(moveCall.Package)
		}

		movePackage, isPackage := object.AsPackage()
		if !isPackage {
			return nil, errors.Wrapf(ErrInvalidInput, "object %s is not a package", moveCall.Package)
		}

		normalizedModules, normalizeErr := moveformat.NormalizeModules(movePackage.Modules, binaryConfig)
		if normalizeErr != nil {
			return nil, errors.Wrapf(ErrInternal, "unable to normalize package %s: %v", moveCall.Package, normalizeErr)
		}

		calledPackages[moveCall.Package] = &NormalizedPackage{
			Package: movePackage,
			Modules: normalizedModules,
		}
	}

	return calledPackages, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
