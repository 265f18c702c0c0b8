package ledgerstate

import (
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"
)

// region UnresolvedObjectReference ////////////////////////////////////////////////////////////////////////////////////

// UnresolvedObjectReference identifies an Object by its ObjectID while the Version and Digest may still be unknown.
// Absent fields are filled in from the latest chain state during resolution, present fields are kept and verified.
type UnresolvedObjectReference struct {
	ID      ObjectID
	Version *Version
	Digest  *Digest
}

// UnresolvedObjectReferenceFromMarshalUtil unmarshals an UnresolvedObjectReference using a MarshalUtil (for easier
// unmarshaling).
func UnresolvedObjectReferenceFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (reference UnresolvedObjectReference, err error) {
	if reference.ID, err = ObjectIDFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse ObjectID: %w", err)
		return
	}
	hasVersion, err := marshalUtil.ReadBool()
	if err != nil {
		err = xerrors.Errorf("failed to parse version flag (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if hasVersion {
		version, versionErr := VersionFromMarshalUtil(marshalUtil)
		if versionErr != nil {
			err = xerrors.Errorf("failed to parse Version: %w", versionErr)
			return
		}
		reference.Version = &version
	}
	hasDigest, err := marshalUtil.ReadBool()
	if err != nil {
		err = xerrors.Errorf("failed to parse digest flag (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if hasDigest {
		digest, digestErr := DigestFromMarshalUtil(marshalUtil)
		if digestErr != nil {
			err = xerrors.Errorf("failed to parse Digest: %w", digestErr)
			return
		}
		reference.Digest = &digest
	}

	return
}

// Bytes returns a marshaled version of the UnresolvedObjectReference.
func (u UnresolvedObjectReference) Bytes() []byte {
	marshalUtil := marshalutil.New().
		WriteBytes(u.ID.Bytes()).
		WriteBool(u.Version != nil)
	if u.Version != nil {
		marshalUtil.WriteUint64(uint64(*u.Version))
	}
	marshalUtil.WriteBool(u.Digest != nil)
	if u.Digest != nil {
		marshalUtil.WriteBytes(u.Digest.Bytes())
	}

	return marshalUtil.Bytes()
}

// String returns a human readable version of the UnresolvedObjectReference.
func (u UnresolvedObjectReference) String() string {
	structBuilder := stringify.StructBuilder("UnresolvedObjectReference",
		stringify.StructField("id", u.ID),
	)
	if u.Version != nil {
		structBuilder.AddField(stringify.StructField("version", uint64(*u.Version)))
	}
	if u.Digest != nil {
		structBuilder.AddField(stringify.StructField("digest", *u.Digest))
	}

	return structBuilder.String()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region UnresolvedInputArgumentType //////////////////////////////////////////////////////////////////////////////////

// UnresolvedInputArgumentType represents the type of an UnresolvedInputArgument.
type UnresolvedInputArgumentType uint8

const (
	// UnresolvedPureArgumentType represents the type of an UnresolvedPureArgument.
	UnresolvedPureArgumentType UnresolvedInputArgumentType = iota

	// UnresolvedImmOrOwnedArgumentType represents the type of an UnresolvedImmOrOwnedArgument.
	UnresolvedImmOrOwnedArgumentType

	// UnresolvedSharedArgumentType represents the type of an UnresolvedSharedArgument.
	UnresolvedSharedArgumentType

	// UnresolvedReceivingArgumentType represents the type of an UnresolvedReceivingArgument.
	UnresolvedReceivingArgumentType
)

// String returns a human readable version of the UnresolvedInputArgumentType.
func (u UnresolvedInputArgumentType) String() string {
	return [...]string{
		"UnresolvedPureArgumentType",
		"UnresolvedImmOrOwnedArgumentType",
		"UnresolvedSharedArgumentType",
		"UnresolvedReceivingArgumentType",
	}[u]
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region UnresolvedInputArgument //////////////////////////////////////////////////////////////////////////////////////

// UnresolvedInputArgument is the interface for transaction inputs whose object metadata may still be partially
// specified.
type UnresolvedInputArgument interface {
	// Type returns the UnresolvedInputArgumentType of the input.
	Type() UnresolvedInputArgumentType

	// Bytes returns a marshaled version of the input.
	Bytes() []byte

	// String returns a human readable version of the input.
	String() string
}

// UnresolvedInputArgumentFromMarshalUtil unmarshals an UnresolvedInputArgument using a MarshalUtil (for easier
// unmarshaling).
func UnresolvedInputArgumentFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (input UnresolvedInputArgument, err error) {
	inputType, err := marshalUtil.ReadByte()
	if err != nil {
		err = xerrors.Errorf("failed to parse UnresolvedInputArgumentType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	marshalUtil.ReadSeek(-1)

	switch UnresolvedInputArgumentType(inputType) {
	case UnresolvedPureArgumentType:
		if input, err = UnresolvedPureArgumentFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse UnresolvedPureArgument: %w", err)
			return
		}
	case UnresolvedImmOrOwnedArgumentType:
		if input, err = UnresolvedImmOrOwnedArgumentFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse UnresolvedImmOrOwnedArgument: %w", err)
			return
		}
	case UnresolvedSharedArgumentType:
		if input, err = UnresolvedSharedArgumentFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse UnresolvedSharedArgument: %w", err)
			return
		}
	case UnresolvedReceivingArgumentType:
		if input, err = UnresolvedReceivingArgumentFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse UnresolvedReceivingArgument: %w", err)
			return
		}
	default:
		err = xerrors.Errorf("unsupported UnresolvedInputArgumentType (%X): %w", inputType, cerrors.ErrParseBytesFailed)
		return
	}

	return
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region UnresolvedPureArgument ///////////////////////////////////////////////////////////////////////////////////////

// UnresolvedPureArgument is a literal value input. It carries no object metadata and passes through resolution
// unchanged.
type UnresolvedPureArgument struct {
	Value []byte
}

// NewUnresolvedPureArgument returns a new UnresolvedPureArgument with the given value.
func NewUnresolvedPureArgument(value []byte) *UnresolvedPureArgument {
	return &UnresolvedPureArgument{Value: value}
}

// UnresolvedPureArgumentFromMarshalUtil unmarshals an UnresolvedPureArgument using a MarshalUtil (for easier
// unmarshaling).
func UnresolvedPureArgumentFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (argument *UnresolvedPureArgument, err error) {
	inputType, err := marshalUtil.ReadByte()
	if err != nil {
		err = xerrors.Errorf("failed to parse UnresolvedInputArgumentType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if UnresolvedInputArgumentType(inputType) != UnresolvedPureArgumentType {
		err = xerrors.Errorf("invalid UnresolvedInputArgumentType (%X): %w", inputType, cerrors.ErrParseBytesFailed)
		return
	}

	argument = &UnresolvedPureArgument{}
	valueSize, err := marshalUtil.ReadUint32()
	if err != nil {
		err = xerrors.Errorf("failed to parse value size (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if argument.Value, err = marshalUtil.ReadBytes(int(valueSize)); err != nil {
		err = xerrors.Errorf("failed to parse value (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	return
}

// Type returns the UnresolvedInputArgumentType of the input.
func (u *UnresolvedPureArgument) Type() UnresolvedInputArgumentType {
	return UnresolvedPureArgumentType
}

// Bytes returns a marshaled version of the UnresolvedPureArgument.
func (u *UnresolvedPureArgument) Bytes() []byte {
	return marshalutil.New().
		WriteByte(byte(UnresolvedPureArgumentType)).
		WriteUint32(uint32(len(u.Value))).
		WriteBytes(u.Value).
		Bytes()
}

// String returns a human readable version of the UnresolvedPureArgument.
func (u *UnresolvedPureArgument) String() string {
	return stringify.Struct("UnresolvedPureArgument",
		stringify.StructField("valueSize", uint64(len(u.Value))),
	)
}

// code contract (make sure the type implements all required methods)
var _ UnresolvedInputArgument = &UnresolvedPureArgument{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region UnresolvedImmOrOwnedArgument /////////////////////////////////////////////////////////////////////////////////

// UnresolvedImmOrOwnedArgument is an input that references an immutable or address-owned Object whose Version and
// Digest may still be absent.
type UnresolvedImmOrOwnedArgument struct {
	Reference UnresolvedObjectReference
}

// NewUnresolvedImmOrOwnedArgument returns a new UnresolvedImmOrOwnedArgument with the given reference.
func NewUnresolvedImmOrOwnedArgument(reference UnresolvedObjectReference) *UnresolvedImmOrOwnedArgument {
	return &UnresolvedImmOrOwnedArgument{Reference: reference}
}

// UnresolvedImmOrOwnedArgumentFromMarshalUtil unmarshals an UnresolvedImmOrOwnedArgument using a MarshalUtil (for
// easier unmarshaling).
func UnresolvedImmOrOwnedArgumentFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (argument *UnresolvedImmOrOwnedArgument, err error) {
	inputType, err := marshalUtil.ReadByte()
	if err != nil {
		err = xerrors.Errorf("failed to parse UnresolvedInputArgumentType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if UnresolvedInputArgumentType(inputType) != UnresolvedImmOrOwnedArgumentType {
		err = xerrors.Errorf("invalid UnresolvedInputArgumentType (%X): %w", inputType, cerrors.ErrParseBytesFailed)
		return
	}

	argument = &UnresolvedImmOrOwnedArgument{}
	if argument.Reference, err = UnresolvedObjectReferenceFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse UnresolvedObjectReference: %w", err)
		return
	}

	return
}

// Type returns the UnresolvedInputArgumentType of the input.
func (u *UnresolvedImmOrOwnedArgument) Type() UnresolvedInputArgumentType {
	return UnresolvedImmOrOwnedArgumentType
}

// Bytes returns a marshaled version of the UnresolvedImmOrOwnedArgument.
func (u *UnresolvedImmOrOwnedArgument) Bytes() []byte {
	return marshalutil.New().
		WriteByte(byte(UnresolvedImmOrOwnedArgumentType)).
		WriteBytes(u.Reference.Bytes()).
		Bytes()
}

// String returns a human readable version of the UnresolvedImmOrOwnedArgument.
func (u *UnresolvedImmOrOwnedArgument) String() string {
	return stringify.Struct("UnresolvedImmOrOwnedArgument",
		stringify.StructField("reference", u.Reference),
	)
}

// code contract (make sure the type implements all required methods)
var _ UnresolvedInputArgument = &UnresolvedImmOrOwnedArgument{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region UnresolvedSharedArgument /////////////////////////////////////////////////////////////////////////////////////

// UnresolvedSharedArgument is an input that references a shared Object. The InitialSharedVersion is filled in from
// the chain state when absent. The Mutable flag is a caller assertion only, resolution recomputes it from the usage
// of the input in the transaction.
type UnresolvedSharedArgument struct {
	ID                   ObjectID
	InitialSharedVersion *Version
	Mutable              *bool
}

// NewUnresolvedSharedArgument returns a new UnresolvedSharedArgument that references the given shared Object.
func NewUnresolvedSharedArgument(id ObjectID) *UnresolvedSharedArgument {
	return &UnresolvedSharedArgument{ID: id}
}

// UnresolvedSharedArgumentFromMarshalUtil unmarshals an UnresolvedSharedArgument using a MarshalUtil (for easier
// unmarshaling).
func UnresolvedSharedArgumentFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (argument *UnresolvedSharedArgument, err error) {
	inputType, err := marshalUtil.ReadByte()
	if err != nil {
		err = xerrors.Errorf("failed to parse UnresolvedInputArgumentType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if UnresolvedInputArgumentType(inputType) != UnresolvedSharedArgumentType {
		err = xerrors.Errorf("invalid UnresolvedInputArgumentType (%X): %w", inputType, cerrors.ErrParseBytesFailed)
		return
	}

	argument = &UnresolvedSharedArgument{}
	if argument.ID, err = ObjectIDFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse ObjectID: %w", err)
		return
	}
	hasVersion, err := marshalUtil.ReadBool()
	if err != nil {
		err = xerrors.Errorf("failed to parse version flag (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if hasVersion {
		version, versionErr := VersionFromMarshalUtil(marshalUtil)
		if versionErr != nil {
			err = xerrors.Errorf("failed to parse Version: %w", versionErr)
			return
		}
		argument.InitialSharedVersion = &version
	}
	hasMutable, err := marshalUtil.ReadBool()
	if err != nil {
		err = xerrors.Errorf("failed to parse mutable flag (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if hasMutable {
		mutable, mutableErr := marshalUtil.ReadBool()
		if mutableErr != nil {
			err = xerrors.Errorf("failed to parse mutable value (%v): %w", mutableErr, cerrors.ErrParseBytesFailed)
			return
		}
		argument.Mutable = &mutable
	}

	return
}

// Type returns the UnresolvedInputArgumentType of the input.
func (u *UnresolvedSharedArgument) Type() UnresolvedInputArgumentType {
	return UnresolvedSharedArgumentType
}

// Bytes returns a marshaled version of the UnresolvedSharedArgument.
func (u *UnresolvedSharedArgument) Bytes() []byte {
	marshalUtil := marshalutil.New().
		WriteByte(byte(UnresolvedSharedArgumentType)).
		WriteBytes(u.ID.Bytes()).
		WriteBool(u.InitialSharedVersion != nil)
	if u.InitialSharedVersion != nil {
		marshalUtil.WriteUint64(uint64(*u.InitialSharedVersion))
	}
	marshalUtil.WriteBool(u.Mutable != nil)
	if u.Mutable != nil {
		marshalUtil.WriteBool(*u.Mutable)
	}

	return marshalUtil.Bytes()
}

// String returns a human readable version of the UnresolvedSharedArgument.
func (u *UnresolvedSharedArgument) String() string {
	structBuilder := stringify.StructBuilder("UnresolvedSharedArgument",
		stringify.StructField("id", u.ID),
	)
	if u.InitialSharedVersion != nil {
		structBuilder.AddField(stringify.StructField("initialSharedVersion", uint64(*u.InitialSharedVersion)))
	}
	if u.Mutable != nil {
		structBuilder.AddField(stringify.StructField("mutable", *u.Mutable))
	}

	return structBuilder.String()
}

// code contract (make sure the type implements all required methods)
var _ UnresolvedInputArgument = &UnresolvedSharedArgument{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region UnresolvedReceivingArgument //////////////////////////////////////////////////////////////////////////////////

// UnresolvedReceivingArgument is an input that references an Object to be received by the transaction. It resolves
// exactly like an UnresolvedImmOrOwnedArgument but keeps its receiving semantics.
type UnresolvedReceivingArgument struct {
	Reference UnresolvedObjectReference
}

// NewUnresolvedReceivingArgument returns a new UnresolvedReceivingArgument with the given reference.
func NewUnresolvedReceivingArgument(reference UnresolvedObjectReference) *UnresolvedReceivingArgument {
	return &UnresolvedReceivingArgument{Reference: reference}
}

// UnresolvedReceivingArgumentFromMarshalUtil unmarshals an UnresolvedReceivingArgument using a MarshalUtil (for
// easier unmarshaling).
func UnresolvedReceivingArgumentFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (argument *UnresolvedReceivingArgument, err error) {
	inputType, err := marshalUtil.ReadByte()
	if err != nil {
		err = xerrors.Errorf("failed to parse UnresolvedInputArgumentType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if UnresolvedInputArgumentType(inputType) != UnresolvedReceivingArgumentType {
		err = xerrors.Errorf("invalid UnresolvedInputArgumentType (%X): %w", inputType, cerrors.ErrParseBytesFailed)
		return
	}

	argument = &UnresolvedReceivingArgument{}
	if argument.Reference, err = UnresolvedObjectReferenceFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse UnresolvedObjectReference: %w", err)
		return
	}

	return
}

// Type returns the UnresolvedInputArgumentType of the input.
func (u *UnresolvedReceivingArgument) Type() UnresolvedInputArgumentType {
	return UnresolvedReceivingArgumentType
}

// Bytes returns a marshaled version of the UnresolvedReceivingArgument.
func (u *UnresolvedReceivingArgument) Bytes() []byte {
	return marshalutil.New().
		WriteByte(byte(UnresolvedReceivingArgumentType)).
		WriteBytes(u.Reference.Bytes()).
		Bytes()
}

// String returns a human readable version of the UnresolvedReceivingArgument.
func (u *UnresolvedReceivingArgument) String() string {
	return stringify.Struct("UnresolvedReceivingArgument",
		stringify.StructField("reference", u.Reference),
	)
}

// code contract (make sure the type implements all required methods)
var _ UnresolvedInputArgument = &UnresolvedReceivingArgument{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region UnresolvedGasPayment /////////////////////////////////////////////////////////////////////////////////////////

// UnresolvedGasPayment is the gas section of an UnresolvedTransaction. Absent fields are filled in from the chain
// state, from a budget estimation or from a gas coin selection during resolution.
type UnresolvedGasPayment struct {
	Objects []UnresolvedObjectReference
	Owner   Address
	Price   *uint64
	Budget  *uint64
}

// UnresolvedGasPaymentFromMarshalUtil unmarshals an UnresolvedGasPayment using a MarshalUtil (for easier
// unmarshaling).
func UnresolvedGasPaymentFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (gasPayment UnresolvedGasPayment, err error) {
	objectCount, err := marshalUtil.ReadUint16()
	if err != nil {
		err = xerrors.Errorf("failed to parse object count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	gasPayment.Objects = make([]UnresolvedObjectReference, objectCount)
	for i := uint16(0); i < objectCount; i++ {
		if gasPayment.Objects[i], err = UnresolvedObjectReferenceFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse UnresolvedObjectReference: %w", err)
			return
		}
	}
	if gasPayment.Owner, err = AddressFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse owner Address: %w", err)
		return
	}
	hasPrice, err := marshalUtil.ReadBool()
	if err != nil {
		err = xerrors.Errorf("failed to parse price flag (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if hasPrice {
		price, priceErr := marshalUtil.ReadUint64()
		if priceErr != nil {
			err = xerrors.Errorf("failed to parse price (%v): %w", priceErr, cerrors.ErrParseBytesFailed)
			return
		}
		gasPayment.Price = &price
	}
	hasBudget, err := marshalUtil.ReadBool()
	if err != nil {
		err = xerrors.Errorf("failed to parse budget flag (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if hasBudget {
		budget, budgetErr := marshalUtil.ReadUint64()
		if budgetErr != nil {
			err = xerrors.Errorf("failed to parse budget (%v): %w", budgetErr, cerrors.ErrParseBytesFailed)
			return
		}
		gasPayment.Budget = &budget
	}

	return
}

// Bytes returns a marshaled version of the UnresolvedGasPayment.
func (u UnresolvedGasPayment) Bytes() []byte {
	marshalUtil := marshalutil.New().WriteUint16(uint16(len(u.Objects)))
	for _, reference := range u.Objects {
		marshalUtil.WriteBytes(reference.Bytes())
	}
	marshalUtil.WriteBytes(u.Owner.Bytes())
	marshalUtil.WriteBool(u.Price != nil)
	if u.Price != nil {
		marshalUtil.WriteUint64(*u.Price)
	}
	marshalUtil.WriteBool(u.Budget != nil)
	if u.Budget != nil {
		marshalUtil.WriteUint64(*u.Budget)
	}

	return marshalUtil.Bytes()
}

// String returns a human readable version of the UnresolvedGasPayment.
func (u UnresolvedGasPayment) String() string {
	structBuilder := stringify.StructBuilder("UnresolvedGasPayment",
		stringify.StructField("objects", uint64(len(u.Objects))),
		stringify.StructField("owner", u.Owner),
	)
	if u.Price != nil {
		structBuilder.AddField(stringify.StructField("price", *u.Price))
	}
	if u.Budget != nil {
		structBuilder.AddField(stringify.StructField("budget", *u.Budget))
	}

	return structBuilder.String()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region UnresolvedProgrammableTransaction ////////////////////////////////////////////////////////////////////////////

// UnresolvedProgrammableTransaction is the command section of an UnresolvedTransaction. The Commands are already
// fully specified, only the Inputs may still carry partial object metadata.
type UnresolvedProgrammableTransaction struct {
	Inputs   []UnresolvedInputArgument
	Commands []Command
}

// UnresolvedProgrammableTransactionFromMarshalUtil unmarshals an UnresolvedProgrammableTransaction using a
// MarshalUtil (for easier unmarshaling).
func UnresolvedProgrammableTransactionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (transaction UnresolvedProgrammableTransaction, err error) {
	inputCount, err := marshalUtil.ReadUint16()
	if err != nil {
		err = xerrors.Errorf("failed to parse input count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	transaction.Inputs = make([]UnresolvedInputArgument, inputCount)
	for i := uint16(0); i < inputCount; i++ {
		if transaction.Inputs[i], err = UnresolvedInputArgumentFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse UnresolvedInputArgument: %w", err)
			return
		}
	}
	commandCount, err := marshalUtil.ReadUint16()
	if err != nil {
		err = xerrors.Errorf("failed to parse command count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	transaction.Commands = make([]Command, commandCount)
	for i := uint16(0); i < commandCount; i++ {
		if transaction.Commands[i], err = CommandFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse Command: %w", err)
			return
		}
	}

	return
}

// Bytes returns a marshaled version of the UnresolvedProgrammableTransaction.
func (u UnresolvedProgrammableTransaction) Bytes() []byte {
	marshalUtil := marshalutil.New().WriteUint16(uint16(len(u.Inputs)))
	for _, input := range u.Inputs {
		marshalUtil.WriteBytes(input.Bytes())
	}
	marshalUtil.WriteUint16(uint16(len(u.Commands)))
	for _, command := range u.Commands {
		marshalUtil.WriteBytes(command.Bytes())
	}

	return marshalUtil.Bytes()
}

// String returns a human readable version of the UnresolvedProgrammableTransaction.
func (u UnresolvedProgrammableTransaction) String() string {
	return stringify.Struct("UnresolvedProgrammableTransaction",
		stringify.StructField("inputs", uint64(len(u.Inputs))),
		stringify.StructField("commands", uint64(len(u.Commands))),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region UnresolvedTransaction ////////////////////////////////////////////////////////////////////////////////////////

// UnresolvedTransaction is a partially specified transaction as submitted by a client. Resolution turns it into a
// fully concrete TransactionData without mutating the original.
type UnresolvedTransaction struct {
	Sender     Address
	GasPayment UnresolvedGasPayment
	Expiration TransactionExpiration
	PTB        UnresolvedProgrammableTransaction
}

// UnresolvedTransactionFromBytes unmarshals an UnresolvedTransaction from a sequence of bytes.
func UnresolvedTransactionFromBytes(data []byte) (transaction *UnresolvedTransaction, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(data)
	if transaction, err = UnresolvedTransactionFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse UnresolvedTransaction from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// UnresolvedTransactionFromMarshalUtil unmarshals an UnresolvedTransaction using a MarshalUtil (for easier
// unmarshaling).
func UnresolvedTransactionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (transaction *UnresolvedTransaction, err error) {
	transaction = &UnresolvedTransaction{}
	if transaction.Sender, err = AddressFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse sender Address: %w", err)
		return
	}
	if transaction.GasPayment, err = UnresolvedGasPaymentFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse UnresolvedGasPayment: %w", err)
		return
	}
	if transaction.Expiration, err = TransactionExpirationFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse TransactionExpiration: %w", err)
		return
	}
	if transaction.PTB, err = UnresolvedProgrammableTransactionFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse UnresolvedProgrammableTransaction: %w", err)
		return
	}

	return
}

// Bytes returns a marshaled version of the UnresolvedTransaction.
func (u *UnresolvedTransaction) Bytes() []byte {
	return marshalutil.New().
		WriteBytes(u.Sender.Bytes()).
		WriteBytes(u.GasPayment.Bytes()).
		WriteBytes(u.Expiration.Bytes()).
		WriteBytes(u.PTB.Bytes()).
		Bytes()
}

// String returns a human readable version of the UnresolvedTransaction.
func (u *UnresolvedTransaction) String() string {
	return stringify.Struct("UnresolvedTransaction",
		stringify.StructField("sender", u.Sender),
		stringify.StructField("gasPayment", u.GasPayment),
		stringify.StructField("expiration", u.Expiration),
		stringify.StructField("ptb", u.PTB),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
