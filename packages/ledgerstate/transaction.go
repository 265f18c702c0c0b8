package ledgerstate

import (
	"strconv"

	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/xerrors"
)

// region TransactionID ////////////////////////////////////////////////////////////////////////////////////////////////

// TransactionIDLength contains the amount of bytes that a marshaled version of the TransactionID contains.
const TransactionIDLength = 32

// TransactionID is the type that represents the identifier of a TransactionData. It is the blake2b hash of the
// marshaled transaction.
type TransactionID [TransactionIDLength]byte

// TransactionIDFromMarshalUtil unmarshals a TransactionID using a MarshalUtil (for easier unmarshaling).
func TransactionIDFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (transactionID TransactionID, err error) {
	transactionIDBytes, err := marshalUtil.ReadBytes(TransactionIDLength)
	if err != nil {
		err = xerrors.Errorf("failed to parse TransactionID (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	copy(transactionID[:], transactionIDBytes)

	return
}

// Bytes returns a marshaled version of the TransactionID.
func (t TransactionID) Bytes() []byte {
	return t[:]
}

// Base58 returns a base58 encoded version of the TransactionID.
func (t TransactionID) Base58() string {
	return base58.Encode(t[:])
}

// String returns a human readable version of the TransactionID.
func (t TransactionID) String() string {
	return "TransactionID(" + t.Base58() + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region TransactionExpiration ////////////////////////////////////////////////////////////////////////////////////////

// TransactionExpiration determines until when a transaction stays executable. A nil Epoch means that the transaction
// never expires.
type TransactionExpiration struct {
	Epoch *uint64
}

// TransactionExpirationFromMarshalUtil unmarshals a TransactionExpiration using a MarshalUtil (for easier
// unmarshaling).
func TransactionExpirationFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (expiration TransactionExpiration, err error) {
	hasEpoch, err := marshalUtil.ReadBool()
	if err != nil {
		err = xerrors.Errorf("failed to parse expiration flag (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if hasEpoch {
		epoch, epochErr := marshalUtil.ReadUint64()
		if epochErr != nil {
			err = xerrors.Errorf("failed to parse expiration epoch (%v): %w", epochErr, cerrors.ErrParseBytesFailed)
			return
		}
		expiration.Epoch = &epoch
	}

	return
}

// IsNone returns true if the transaction never expires.
func (t TransactionExpiration) IsNone() bool {
	return t.Epoch == nil
}

// Bytes returns a marshaled version of the TransactionExpiration.
func (t TransactionExpiration) Bytes() []byte {
	marshalUtil := marshalutil.New().WriteBool(t.Epoch != nil)
	if t.Epoch != nil {
		marshalUtil.WriteUint64(*t.Epoch)
	}

	return marshalUtil.Bytes()
}

// String returns a human readable version of the TransactionExpiration.
func (t TransactionExpiration) String() string {
	if t.Epoch == nil {
		return "TransactionExpiration(None)"
	}

	return "TransactionExpiration(Epoch:" + strconv.FormatUint(*t.Epoch, 10) + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region GasData //////////////////////////////////////////////////////////////////////////////////////////////////////

// GasData bundles everything that is needed to pay for the execution of a transaction: the coins used as payment, the
// account that owns them, the gas unit price and the budget.
type GasData struct {
	Payment []ObjectReference
	Owner   Address
	Price   uint64
	Budget  uint64
}

// GasDataFromMarshalUtil unmarshals a GasData using a MarshalUtil (for easier unmarshaling).
func GasDataFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (gasData GasData, err error) {
	paymentCount, err := marshalUtil.ReadUint16()
	if err != nil {
		err = xerrors.Errorf("failed to parse payment count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	gasData.Payment = make([]ObjectReference, paymentCount)
	for i := uint16(0); i < paymentCount; i++ {
		if gasData.Payment[i], err = ObjectReferenceFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse payment ObjectReference: %w", err)
			return
		}
	}
	if gasData.Owner, err = AddressFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse owner Address: %w", err)
		return
	}
	if gasData.Price, err = marshalUtil.ReadUint64(); err != nil {
		err = xerrors.Errorf("failed to parse gas price (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if gasData.Budget, err = marshalUtil.ReadUint64(); err != nil {
		err = xerrors.Errorf("failed to parse gas budget (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	return
}

// Bytes returns a marshaled version of the GasData.
func (g GasData) Bytes() []byte {
	marshalUtil := marshalutil.New().WriteUint16(uint16(len(g.Payment)))
	for _, reference := range g.Payment {
		marshalUtil.WriteBytes(reference.Bytes())
	}
	marshalUtil.WriteBytes(g.Owner.Bytes())
	marshalUtil.WriteUint64(g.Price)
	marshalUtil.WriteUint64(g.Budget)

	return marshalUtil.Bytes()
}

// String returns a human readable version of the GasData.
func (g GasData) String() string {
	return stringify.Struct("GasData",
		stringify.StructField("payment", uint64(len(g.Payment))),
		stringify.StructField("owner", g.Owner),
		stringify.StructField("price", g.Price),
		stringify.StructField("budget", g.Budget),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ProgrammableTransaction //////////////////////////////////////////////////////////////////////////////////////

// ProgrammableTransaction is an ordered sequence of typed Commands that operate over the declared inputs and over the
// results of prior Commands. Commands reference inputs by positional index, so the input order is significant.
type ProgrammableTransaction struct {
	Inputs   []CallArg
	Commands []Command
}

// ProgrammableTransactionFromMarshalUtil unmarshals a ProgrammableTransaction using a MarshalUtil (for easier
// unmarshaling).
func ProgrammableTransactionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (transaction ProgrammableTransaction, err error) {
	inputCount, err := marshalUtil.ReadUint16()
	if err != nil {
		err = xerrors.Errorf("failed to parse input count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	transaction.Inputs = make([]CallArg, inputCount)
	for i := uint16(0); i < inputCount; i++ {
		if transaction.Inputs[i], err = CallArgFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse CallArg: %w", err)
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

// Bytes returns a marshaled version of the ProgrammableTransaction.
func (p ProgrammableTransaction) Bytes() []byte {
	marshalUtil := marshalutil.New().WriteUint16(uint16(len(p.Inputs)))
	for _, input := range p.Inputs {
		marshalUtil.WriteBytes(input.Bytes())
	}
	marshalUtil.WriteUint16(uint16(len(p.Commands)))
	for _, command := range p.Commands {
		marshalUtil.WriteBytes(command.Bytes())
	}

	return marshalUtil.Bytes()
}

// String returns a human readable version of the ProgrammableTransaction.
func (p ProgrammableTransaction) String() string {
	return stringify.Struct("ProgrammableTransaction",
		stringify.StructField("inputs", uint64(len(p.Inputs))),
		stringify.StructField("commands", uint64(len(p.Commands))),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region TransactionData //////////////////////////////////////////////////////////////////////////////////////////////

// TransactionData is a fully resolved transaction that is ready for signing or execution. It is immutable once
// assembled.
type TransactionData struct {
	Sender      Address
	GasData     GasData
	Expiration  TransactionExpiration
	Transaction ProgrammableTransaction
}

// TransactionDataFromBytes unmarshals a TransactionData from a sequence of bytes.
func TransactionDataFromBytes(data []byte) (transactionData *TransactionData, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(data)
	if transactionData, err = TransactionDataFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse TransactionData from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// TransactionDataFromMarshalUtil unmarshals a TransactionData using a MarshalUtil (for easier unmarshaling).
func TransactionDataFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (transactionData *TransactionData, err error) {
	transactionData = &TransactionData{}
	if transactionData.Sender, err = AddressFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse sender Address: %w", err)
		return
	}
	if transactionData.GasData, err = GasDataFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse GasData: %w", err)
		return
	}
	if transactionData.Expiration, err = TransactionExpirationFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse TransactionExpiration: %w", err)
		return
	}
	if transactionData.Transaction, err = ProgrammableTransactionFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse ProgrammableTransaction: %w", err)
		return
	}

	return
}

// ID computes the TransactionID of the TransactionData.
func (t *TransactionData) ID() TransactionID {
	return blake2b.Sum256(t.Bytes())
}

// InputObjectIDs returns the ObjectIDs of all inputs that reference an immutable or address-owned Object. These are
// the objects that must not be reused as gas payment.
func (t *TransactionData) InputObjectIDs() (objectIDs []ObjectID) {
	for _, input := range t.Transaction.Inputs {
		if immOrOwned, ok := input.(*ImmOrOwnedObjectCallArg); ok {
			objectIDs = append(objectIDs, immOrOwned.Reference.ID())
		}
	}

	return
}

// Bytes returns a marshaled version of the TransactionData.
func (t *TransactionData) Bytes() []byte {
	return marshalutil.New().
		WriteBytes(t.Sender.Bytes()).
		WriteBytes(t.GasData.Bytes()).
		WriteBytes(t.Expiration.Bytes()).
		WriteBytes(t.Transaction.Bytes()).
		Bytes()
}

// String returns a human readable version of the TransactionData.
func (t *TransactionData) String() string {
	return stringify.Struct("TransactionData",
		stringify.StructField("sender", t.Sender),
		stringify.StructField("gasData", t.GasData),
		stringify.StructField("expiration", t.Expiration),
		stringify.StructField("transaction", t.Transaction),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
