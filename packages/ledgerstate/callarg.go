package ledgerstate

import (
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"
)

// region CallArgType //////////////////////////////////////////////////////////////////////////////////////////////////

// CallArgType represents the type of a resolved transaction input.
type CallArgType uint8

const (
	// PureCallArgType represents an input that carries raw bytes which are consumed as-is.
	PureCallArgType CallArgType = iota

	// ImmOrOwnedObjectCallArgType represents an input that references an immutable or address-owned Object.
	ImmOrOwnedObjectCallArgType

	// SharedObjectCallArgType represents an input that references a shared Object together with its computed
	// mutability.
	SharedObjectCallArgType

	// ReceivingObjectCallArgType represents an input that references an Object that is being received by another
	// Object.
	ReceivingObjectCallArgType
)

// String returns a human readable representation of the CallArgType.
func (c CallArgType) String() string {
	return [...]string{
		"PureCallArgType",
		"ImmOrOwnedObjectCallArgType",
		"SharedObjectCallArgType",
		"ReceivingObjectCallArgType",
	}[c]
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region CallArg //////////////////////////////////////////////////////////////////////////////////////////////////////

// CallArg is a generic interface for the resolved inputs of a programmable transaction. The set of CallArgs is closed:
// every consumer is expected to dispatch exhaustively on the CallArgType.
type CallArg interface {
	// Type returns the CallArgType which allows us to generically handle CallArgs of different types.
	Type() CallArgType

	// Bytes returns a marshaled version of the CallArg.
	Bytes() []byte

	// String returns a human readable version of the CallArg.
	String() string
}

// CallArgFromBytes unmarshals a CallArg from a sequence of bytes.
func CallArgFromBytes(data []byte) (callArg CallArg, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(data)
	if callArg, err = CallArgFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse CallArg from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// CallArgFromMarshalUtil unmarshals a CallArg using a MarshalUtil (for easier unmarshaling).
func CallArgFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (callArg CallArg, err error) {
	callArgType, err := marshalUtil.ReadByte()
	if err != nil {
		err = xerrors.Errorf("failed to parse CallArgType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	switch CallArgType(callArgType) {
	case PureCallArgType:
		callArg, err = PureCallArgFromMarshalUtil(marshalUtil)
	case ImmOrOwnedObjectCallArgType:
		callArg, err = ImmOrOwnedObjectCallArgFromMarshalUtil(marshalUtil)
	case SharedObjectCallArgType:
		callArg, err = SharedObjectCallArgFromMarshalUtil(marshalUtil)
	case ReceivingObjectCallArgType:
		callArg, err = ReceivingObjectCallArgFromMarshalUtil(marshalUtil)
	default:
		err = xerrors.Errorf("unsupported CallArgType (%X): %w", callArgType, cerrors.ErrParseBytesFailed)
		return
	}
	if err != nil {
		err = xerrors.Errorf("failed to parse %s: %w", CallArgType(callArgType), err)
		return
	}

	return
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region PureCallArg //////////////////////////////////////////////////////////////////////////////////////////////////

// PureCallArg is a resolved input that carries raw bytes. The bytes are never validated against the type of the
// consuming parameter.
type PureCallArg struct {
	Value []byte
}

// PureCallArgFromMarshalUtil unmarshals a PureCallArg using a MarshalUtil. The type byte is expected to have already
// been consumed by the caller.
func PureCallArgFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (pureCallArg *PureCallArg, err error) {
	valueLength, err := marshalUtil.ReadUint32()
	if err != nil {
		err = xerrors.Errorf("failed to parse value length (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	pureCallArg = &PureCallArg{}
	if pureCallArg.Value, err = marshalUtil.ReadBytes(int(valueLength)); err != nil {
		err = xerrors.Errorf("failed to parse value (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	return
}

// Type returns the CallArgType of the CallArg.
func (p *PureCallArg) Type() CallArgType {
	return PureCallArgType
}

// Bytes returns a marshaled version of the CallArg.
func (p *PureCallArg) Bytes() []byte {
	return marshalutil.New().
		WriteByte(byte(PureCallArgType)).
		WriteUint32(uint32(len(p.Value))).
		WriteBytes(p.Value).
		Bytes()
}

// String returns a human readable version of the CallArg.
func (p *PureCallArg) String() string {
	return stringify.Struct("PureCallArg",
		stringify.StructField("value", p.Value),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ImmOrOwnedObjectCallArg //////////////////////////////////////////////////////////////////////////////////////

// ImmOrOwnedObjectCallArg is a resolved input that references an immutable or address-owned Object.
type ImmOrOwnedObjectCallArg struct {
	Reference ObjectReference
}

// ImmOrOwnedObjectCallArgFromMarshalUtil unmarshals an ImmOrOwnedObjectCallArg using a MarshalUtil. The type byte is
// expected to have already been consumed by the caller.
func ImmOrOwnedObjectCallArgFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (callArg *ImmOrOwnedObjectCallArg, err error) {
	callArg = &ImmOrOwnedObjectCallArg{}
	if callArg.Reference, err = ObjectReferenceFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse ObjectReference: %w", err)
		return
	}

	return
}

// Type returns the CallArgType of the CallArg.
func (i *ImmOrOwnedObjectCallArg) Type() CallArgType {
	return ImmOrOwnedObjectCallArgType
}

// Bytes returns a marshaled version of the CallArg.
func (i *ImmOrOwnedObjectCallArg) Bytes() []byte {
	return marshalutil.New().
		WriteByte(byte(ImmOrOwnedObjectCallArgType)).
		WriteBytes(i.Reference.Bytes()).
		Bytes()
}

// String returns a human readable version of the CallArg.
func (i *ImmOrOwnedObjectCallArg) String() string {
	return stringify.Struct("ImmOrOwnedObjectCallArg",
		stringify.StructField("reference", i.Reference),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region SharedObjectCallArg //////////////////////////////////////////////////////////////////////////////////////////

// SharedObjectCallArg is a resolved input that references a shared Object. The Mutable flag is computed from the use
// sites of the input during resolution and is never taken from the caller.
type SharedObjectCallArg struct {
	ID                   ObjectID
	InitialSharedVersion Version
	Mutable              bool
}

// SharedObjectCallArgFromMarshalUtil unmarshals a SharedObjectCallArg using a MarshalUtil. The type byte is expected
// to have already been consumed by the caller.
func SharedObjectCallArgFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (callArg *SharedObjectCallArg, err error) {
	callArg = &SharedObjectCallArg{}
	if callArg.ID, err = ObjectIDFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse ObjectID: %w", err)
		return
	}
	if callArg.InitialSharedVersion, err = VersionFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse initial shared Version: %w", err)
		return
	}
	if callArg.Mutable, err = marshalUtil.ReadBool(); err != nil {
		err = xerrors.Errorf("failed to parse mutable flag (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	return
}

// Type returns the CallArgType of the CallArg.
func (s *SharedObjectCallArg) Type() CallArgType {
	return SharedObjectCallArgType
}

// Bytes returns a marshaled version of the CallArg.
func (s *SharedObjectCallArg) Bytes() []byte {
	return marshalutil.New().
		WriteByte(byte(SharedObjectCallArgType)).
		WriteBytes(s.ID.Bytes()).
		WriteUint64(uint64(s.InitialSharedVersion)).
		WriteBool(s.Mutable).
		Bytes()
}

// String returns a human readable version of the CallArg.
func (s *SharedObjectCallArg) String() string {
	return stringify.Struct("SharedObjectCallArg",
		stringify.StructField("id", s.ID),
		stringify.StructField("initialSharedVersion", s.InitialSharedVersion),
		stringify.StructField("mutable", s.Mutable),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ReceivingObjectCallArg ///////////////////////////////////////////////////////////////////////////////////////

// ReceivingObjectCallArg is a resolved input that references an Object that is being received by another Object.
type ReceivingObjectCallArg struct {
	Reference ObjectReference
}

// ReceivingObjectCallArgFromMarshalUtil unmarshals a ReceivingObjectCallArg using a MarshalUtil. The type byte is
// expected to have already been consumed by the caller.
func ReceivingObjectCallArgFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (callArg *ReceivingObjectCallArg, err error) {
	callArg = &ReceivingObjectCallArg{}
	if callArg.Reference, err = ObjectReferenceFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse ObjectReference: %w", err)
		return
	}

	return
}

// Type returns the CallArgType of the CallArg.
func (r *ReceivingObjectCallArg) Type() CallArgType {
	return ReceivingObjectCallArgType
}

// Bytes returns a marshaled version of the CallArg.
func (r *ReceivingObjectCallArg) Bytes() []byte {
	return marshalutil.New().
		WriteByte(byte(ReceivingObjectCallArgType)).
		WriteBytes(r.Reference.Bytes()).
		Bytes()
}

// String returns a human readable version of the CallArg.
func (r *ReceivingObjectCallArg) String() string {
	return stringify.Struct("ReceivingObjectCallArg",
		stringify.StructField("reference", r.Reference),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
