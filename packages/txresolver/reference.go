package txresolver

import (
	"github.com/cockroachdb/errors"

	"github.com/amberledger/goamber/packages/chainstate"
	"github.com/amberledger/goamber/packages/ledgerstate"
)

// region resolveObjectReference ///////////////////////////////////////////////////////////////////////////////////////

// resolveObjectReference completes an UnresolvedObjectReference against the chain state. When a Version is given the
// Object is looked up at exactly that Version, otherwise the latest version is used. A caller-provided Digest must
// match the digest of the loaded Object.
func resolveObjectReference(reader chainstate.Reader, unresolvedReference ledgerstate.UnresolvedObjectReference) (objectReference ledgerstate.ObjectReference, err error) {
	var object *ledgerstate.Object
	if unresolvedReference.Version != nil {
		if object, err = reader.ObjectByKey(unresolvedReference.ID, *unresolvedReference.Version); err != nil {
			return objectReference, errors.Wrapf(ErrInternal, "failed to load object %s: %v", unresolvedReference.ID, err)
		}
		if object == nil {
			return objectReference, NewObjectNotFoundErrorWithVersion(unresolvedReference.ID, *unresolvedReference.Version)
		}
	} else {
		if object, err = reader.Object(unresolvedReference.ID); err != nil {
			return objectReference, errors.Wrapf(ErrInternal, "failed to load object %s: %v", unresolvedReference.ID, err)
		}
		if object == nil {
			return objectReference, NewObjectNotFoundError(unresolvedReference.ID)
		}
	}

	digest := object.ComputeDigest()
	if unresolvedReference.Digest != nil && *unresolvedReference.Digest != digest {
		return objectReference, errors.Wrapf(ErrInvalidInput, "provided digest doesn't match, provided: %s actual: %s", unresolvedReference.Digest, digest)
	}

	return ledgerstate.NewObjectReference(object.ID(), object.Version(), digest), nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
