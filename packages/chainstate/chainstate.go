// Package chainstate provides read access to the latest state of the object ledger: objects by identifier or by
// exact version, ownership listings and the current system parameters.
package chainstate

import (
	"github.com/iotaledger/hive.go/stringify"

	"github.com/amberledger/goamber/packages/ledgerstate"
)

// region SystemStateSummary ///////////////////////////////////////////////////////////////////////////////////////////

// SystemStateSummary is a snapshot of the chain-wide parameters that transaction resolution depends on.
type SystemStateSummary struct {
	Epoch             uint64
	ProtocolVersion   uint32
	ReferenceGasPrice uint64
}

// String returns a human readable version of the SystemStateSummary.
func (s SystemStateSummary) String() string {
	return stringify.Struct("SystemStateSummary",
		stringify.StructField("epoch", s.Epoch),
		stringify.StructField("protocolVersion", uint64(s.ProtocolVersion)),
		stringify.StructField("referenceGasPrice", s.ReferenceGasPrice),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region OwnedObjectInfo //////////////////////////////////////////////////////////////////////////////////////////////

// OwnedObjectInfo is a single entry of an ownership listing: the ObjectID of an owned Object together with its type.
type OwnedObjectInfo struct {
	ObjectID ledgerstate.ObjectID
	Type     ledgerstate.TypeTag
}

// String returns a human readable version of the OwnedObjectInfo.
func (o OwnedObjectInfo) String() string {
	return stringify.Struct("OwnedObjectInfo",
		stringify.StructField("objectID", o.ObjectID),
		stringify.StructField("type", string(o.Type)),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Reader ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Reader is the interface through which transaction resolution reads the chain state.
type Reader interface {
	// Object returns the latest version of the Object with the given ObjectID or nil if no such Object exists.
	Object(objectID ledgerstate.ObjectID) (*ledgerstate.Object, error)

	// ObjectByKey returns the Object with the given ObjectID at the given Version or nil if no such Object exists.
	ObjectByKey(objectID ledgerstate.ObjectID, version ledgerstate.Version) (*ledgerstate.Object, error)

	// ChainIdentifier returns the identifier of the chain whose state is exposed.
	ChainIdentifier() string

	// SystemStateSummary returns the current chain-wide parameters.
	SystemStateSummary() SystemStateSummary

	// ForEachOwnedObject iterates over the Objects owned by the given Address in the order they entered the
	// ownership listing. The iteration aborts when the consumer returns false.
	ForEachOwnedObject(owner ledgerstate.Address, consumer func(OwnedObjectInfo) bool)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
