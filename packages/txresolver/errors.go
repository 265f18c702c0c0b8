package txresolver

import (
	"github.com/cockroachdb/errors"

	"github.com/amberledger/goamber/packages/ledgerstate"
)

// region error sentinels //////////////////////////////////////////////////////////////////////////////////////////////

var (
	// ErrObjectNotFound is returned when a referenced Object does not exist in the chain state.
	ErrObjectNotFound = errors.New("object not found")

	// ErrInvalidInput is returned when the submitted transaction contradicts the chain state or is malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientFunds is returned when the owned gas coins cannot cover the required budget.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInternal is returned when resolution fails for reasons that are not caused by the submitted transaction.
	ErrInternal = errors.New("internal resolution failure")
)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ObjectNotFoundError //////////////////////////////////////////////////////////////////////////////////////////

// ObjectNotFoundError is the error that is returned when a referenced Object (optionally at an exact Version) does
// not exist in the chain state. It unwraps to ErrObjectNotFound.
type ObjectNotFoundError struct {
	ObjectID ledgerstate.ObjectID
	Version  *ledgerstate.Version
}

// NewObjectNotFoundError returns a new ObjectNotFoundError for the latest version of the given Object.
func NewObjectNotFoundError(objectID ledgerstate.ObjectID) *ObjectNotFoundError {
	return &ObjectNotFoundError{ObjectID: objectID}
}

// NewObjectNotFoundErrorWithVersion returns a new ObjectNotFoundError for an exact version of the given Object.
func NewObjectNotFoundErrorWithVersion(objectID ledgerstate.ObjectID, version ledgerstate.Version) *ObjectNotFoundError {
	return &ObjectNotFoundError{ObjectID: objectID, Version: &version}
}

// Error returns a human readable version of the ObjectNotFoundError.
func (o *ObjectNotFoundError) Error() string {
	if o.Version != nil {
		return "object " + o.ObjectID.Base58() + " with version " + o.Version.String() + " not found"
	}

	return "object " + o.ObjectID.Base58() + " not found"
}

// Unwrap returns the sentinel that the ObjectNotFoundError wraps.
func (o *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
