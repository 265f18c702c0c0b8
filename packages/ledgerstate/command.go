package ledgerstate

import (
	"strconv"

	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"
)

// region ArgumentType /////////////////////////////////////////////////////////////////////////////////////////////////

// ArgumentType represents the type of an Argument slot inside a Command.
type ArgumentType uint8

const (
	// GasCoinArgumentType represents an Argument that refers to the gas coin of the transaction.
	GasCoinArgumentType ArgumentType = iota

	// InputArgumentType represents an Argument that refers to a transaction input by its positional index.
	InputArgumentType

	// ResultArgumentType represents an Argument that refers to the result of a prior Command.
	ResultArgumentType

	// NestedResultArgumentType represents an Argument that refers to a single value inside the result of a prior
	// Command.
	NestedResultArgumentType
)

// String returns a human readable representation of the ArgumentType.
func (a ArgumentType) String() string {
	return [...]string{
		"GasCoinArgumentType",
		"InputArgumentType",
		"ResultArgumentType",
		"NestedResultArgumentType",
	}[a]
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Argument /////////////////////////////////////////////////////////////////////////////////////////////////////

// Argument is a slot of a Command that refers either to a transaction input (by positional index), to the result of a
// prior Command or to the gas coin.
type Argument struct {
	argumentType ArgumentType
	index        uint16
	resultIndex  uint16
}

// NewGasCoinArgument creates an Argument that refers to the gas coin of the transaction.
func NewGasCoinArgument() Argument {
	return Argument{argumentType: GasCoinArgumentType}
}

// NewInputArgument creates an Argument that refers to the transaction input with the given positional index.
func NewInputArgument(index uint16) Argument {
	return Argument{argumentType: InputArgumentType, index: index}
}

// NewResultArgument creates an Argument that refers to the result of the Command with the given index.
func NewResultArgument(commandIndex uint16) Argument {
	return Argument{argumentType: ResultArgumentType, index: commandIndex}
}

// NewNestedResultArgument creates an Argument that refers to a single value inside the result of the Command with the
// given index.
func NewNestedResultArgument(commandIndex, resultIndex uint16) Argument {
	return Argument{argumentType: NestedResultArgumentType, index: commandIndex, resultIndex: resultIndex}
}

// ArgumentFromMarshalUtil unmarshals an Argument using a MarshalUtil (for easier unmarshaling).
func ArgumentFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (argument Argument, err error) {
	argumentType, err := marshalUtil.ReadByte()
	if err != nil {
		err = xerrors.Errorf("failed to parse ArgumentType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if ArgumentType(argumentType) > NestedResultArgumentType {
		err = xerrors.Errorf("unsupported ArgumentType (%X): %w", argumentType, cerrors.ErrParseBytesFailed)
		return
	}
	argument.argumentType = ArgumentType(argumentType)

	switch argument.argumentType {
	case InputArgumentType, ResultArgumentType:
		if argument.index, err = marshalUtil.ReadUint16(); err != nil {
			err = xerrors.Errorf("failed to parse Argument index (%v): %w", err, cerrors.ErrParseBytesFailed)
			return
		}
	case NestedResultArgumentType:
		if argument.index, err = marshalUtil.ReadUint16(); err != nil {
			err = xerrors.Errorf("failed to parse Argument index (%v): %w", err, cerrors.ErrParseBytesFailed)
			return
		}
		if argument.resultIndex, err = marshalUtil.ReadUint16(); err != nil {
			err = xerrors.Errorf("failed to parse Argument result index (%v): %w", err, cerrors.ErrParseBytesFailed)
			return
		}
	}

	return
}

// Type returns the ArgumentType of the Argument.
func (a Argument) Type() ArgumentType {
	return a.argumentType
}

// Index returns the input index (for InputArgumentType) or the command index (for ResultArgumentType and
// NestedResultArgumentType).
func (a Argument) Index() uint16 {
	return a.index
}

// ResultIndex returns the index inside the result of the referenced Command (only meaningful for
// NestedResultArgumentType).
func (a Argument) ResultIndex() uint16 {
	return a.resultIndex
}

// ReferencesInput returns true if the Argument refers to the transaction input with the given positional index.
func (a Argument) ReferencesInput(inputIndex uint16) bool {
	return a.argumentType == InputArgumentType && a.index == inputIndex
}

// Bytes returns a marshaled version of the Argument.
func (a Argument) Bytes() []byte {
	marshalUtil := marshalutil.New().WriteByte(byte(a.argumentType))
	switch a.argumentType {
	case InputArgumentType, ResultArgumentType:
		marshalUtil.WriteUint16(a.index)
	case NestedResultArgumentType:
		marshalUtil.WriteUint16(a.index)
		marshalUtil.WriteUint16(a.resultIndex)
	}

	return marshalUtil.Bytes()
}

// String returns a human readable version of the Argument.
func (a Argument) String() string {
	switch a.argumentType {
	case GasCoinArgumentType:
		return "Argument(GasCoin)"
	case InputArgumentType:
		return "Argument(Input:" + strconv.Itoa(int(a.index)) + ")"
	case ResultArgumentType:
		return "Argument(Result:" + strconv.Itoa(int(a.index)) + ")"
	default:
		return "Argument(NestedResult:" + strconv.Itoa(int(a.index)) + "," + strconv.Itoa(int(a.resultIndex)) + ")"
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region CommandType //////////////////////////////////////////////////////////////////////////////////////////////////

// CommandType represents the type of a Command. Commands of different types consume their Argument slots with
// different access semantics.
type CommandType uint8

const (
	// MoveCallCommandType represents a Command that calls a function of a published package.
	MoveCallCommandType CommandType = iota

	// TransferObjectsCommandType represents a Command that sends a list of objects to an address.
	TransferObjectsCommandType

	// SplitCoinsCommandType represents a Command that splits amounts off a coin.
	SplitCoinsCommandType

	// MergeCoinsCommandType represents a Command that merges a list of coins into a target coin.
	MergeCoinsCommandType

	// MakeMoveVectorCommandType represents a Command that assembles a vector value from its elements.
	MakeMoveVectorCommandType

	// PublishCommandType represents a Command that publishes a new package.
	PublishCommandType

	// UpgradeCommandType represents a Command that upgrades a published package.
	UpgradeCommandType
)

// String returns a human readable representation of the CommandType.
func (c CommandType) String() string {
	return [...]string{
		"MoveCallCommandType",
		"TransferObjectsCommandType",
		"SplitCoinsCommandType",
		"MergeCoinsCommandType",
		"MakeMoveVectorCommandType",
		"PublishCommandType",
		"UpgradeCommandType",
	}[c]
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Command //////////////////////////////////////////////////////////////////////////////////////////////////////

// Command is a generic interface for the individual steps of a programmable transaction. The set of Commands is
// closed: every consumer is expected to dispatch exhaustively on the CommandType.
type Command interface {
	// Type returns the CommandType which allows us to generically handle Commands of different types.
	Type() CommandType

	// Bytes returns a marshaled version of the Command.
	Bytes() []byte

	// String returns a human readable version of the Command.
	String() string
}

// CommandFromBytes unmarshals a Command from a sequence of bytes.
func CommandFromBytes(data []byte) (command Command, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(data)
	if command, err = CommandFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse Command from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// CommandFromMarshalUtil unmarshals a Command using a MarshalUtil (for easier unmarshaling).
func CommandFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (command Command, err error) {
	commandType, err := marshalUtil.ReadByte()
	if err != nil {
		err = xerrors.Errorf("failed to parse CommandType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	switch CommandType(commandType) {
	case MoveCallCommandType:
		command, err = MoveCallFromMarshalUtil(marshalUtil)
	case TransferObjectsCommandType:
		command, err = TransferObjectsFromMarshalUtil(marshalUtil)
	case SplitCoinsCommandType:
		command, err = SplitCoinsFromMarshalUtil(marshalUtil)
	case MergeCoinsCommandType:
		command, err = MergeCoinsFromMarshalUtil(marshalUtil)
	case MakeMoveVectorCommandType:
		command, err = MakeMoveVectorFromMarshalUtil(marshalUtil)
	case PublishCommandType:
		command, err = PublishFromMarshalUtil(marshalUtil)
	case UpgradeCommandType:
		command, err = UpgradeFromMarshalUtil(marshalUtil)
	default:
		err = xerrors.Errorf("unsupported CommandType (%X): %w", commandType, cerrors.ErrParseBytesFailed)
		return
	}
	if err != nil {
		err = xerrors.Errorf("failed to parse %s: %w", CommandType(commandType), err)
		return
	}

	return
}

// argumentsFromMarshalUtil unmarshals a length-prefixed list of Arguments.
func argumentsFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (arguments []Argument, err error) {
	argumentCount, err := marshalUtil.ReadUint16()
	if err != nil {
		err = xerrors.Errorf("failed to parse Argument count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	arguments = make([]Argument, argumentCount)
	for i := uint16(0); i < argumentCount; i++ {
		if arguments[i], err = ArgumentFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse Argument: %w", err)
			return
		}
	}

	return
}

// writeArguments marshals a length-prefixed list of Arguments.
func writeArguments(marshalUtil *marshalutil.MarshalUtil, arguments []Argument) {
	marshalUtil.WriteUint16(uint16(len(arguments)))
	for _, argument := range arguments {
		marshalUtil.WriteBytes(argument.Bytes())
	}
}

// moduleListFromMarshalUtil unmarshals a length-prefixed list of compiled module byte blobs.
func moduleListFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (modules [][]byte, err error) {
	moduleCount, err := marshalUtil.ReadUint16()
	if err != nil {
		err = xerrors.Errorf("failed to parse module count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	modules = make([][]byte, moduleCount)
	for i := uint16(0); i < moduleCount; i++ {
		moduleLength, moduleLengthErr := marshalUtil.ReadUint32()
		if moduleLengthErr != nil {
			err = xerrors.Errorf("failed to parse module length (%v): %w", moduleLengthErr, cerrors.ErrParseBytesFailed)
			return
		}
		if modules[i], err = marshalUtil.ReadBytes(int(moduleLength)); err != nil {
			err = xerrors.Errorf("failed to parse module bytes (%v): %w", err, cerrors.ErrParseBytesFailed)
			return
		}
	}

	return
}

// writeModuleList marshals a length-prefixed list of compiled module byte blobs.
func writeModuleList(marshalUtil *marshalutil.MarshalUtil, modules [][]byte) {
	marshalUtil.WriteUint16(uint16(len(modules)))
	for _, module := range modules {
		marshalUtil.WriteUint32(uint32(len(module)))
		marshalUtil.WriteBytes(module)
	}
}

// objectIDListFromMarshalUtil unmarshals a length-prefixed list of ObjectIDs.
func objectIDListFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (objectIDs []ObjectID, err error) {
	objectIDCount, err := marshalUtil.ReadUint16()
	if err != nil {
		err = xerrors.Errorf("failed to parse ObjectID count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	objectIDs = make([]ObjectID, objectIDCount)
	for i := uint16(0); i < objectIDCount; i++ {
		if objectIDs[i], err = ObjectIDFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse ObjectID: %w", err)
			return
		}
	}

	return
}

// writeObjectIDList marshals a length-prefixed list of ObjectIDs.
func writeObjectIDList(marshalUtil *marshalutil.MarshalUtil, objectIDs []ObjectID) {
	marshalUtil.WriteUint16(uint16(len(objectIDs)))
	for _, objectID := range objectIDs {
		marshalUtil.WriteBytes(objectID.Bytes())
	}
}

// stringFromMarshalUtil unmarshals a length-prefixed utf8 string.
func stringFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (result string, err error) {
	stringLength, err := marshalUtil.ReadUint16()
	if err != nil {
		err = xerrors.Errorf("failed to parse string length (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	stringBytes, err := marshalUtil.ReadBytes(int(stringLength))
	if err != nil {
		err = xerrors.Errorf("failed to parse string (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	result = string(stringBytes)

	return
}

// writeString marshals a length-prefixed utf8 string.
func writeString(marshalUtil *marshalutil.MarshalUtil, value string) {
	marshalUtil.WriteUint16(uint16(len(value)))
	marshalUtil.WriteBytes([]byte(value))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region MoveCall /////////////////////////////////////////////////////////////////////////////////////////////////////

// MoveCall is a Command that calls a function of a published package.
type MoveCall struct {
	Package       ObjectID
	Module        string
	Function      string
	TypeArguments []TypeTag
	Arguments     []Argument
}

// MoveCallFromMarshalUtil unmarshals a MoveCall using a MarshalUtil. The type byte is expected to have already been
// consumed by the caller.
func MoveCallFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (moveCall *MoveCall, err error) {
	moveCall = &MoveCall{}
	if moveCall.Package, err = ObjectIDFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse package ObjectID: %w", err)
		return
	}
	if moveCall.Module, err = stringFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse module name: %w", err)
		return
	}
	if moveCall.Function, err = stringFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse function name: %w", err)
		return
	}
	typeArgumentCount, err := marshalUtil.ReadUint16()
	if err != nil {
		err = xerrors.Errorf("failed to parse TypeTag count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	moveCall.TypeArguments = make([]TypeTag, typeArgumentCount)
	for i := uint16(0); i < typeArgumentCount; i++ {
		if moveCall.TypeArguments[i], err = TypeTagFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse TypeTag: %w", err)
			return
		}
	}
	if moveCall.Arguments, err = argumentsFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse Arguments: %w", err)
		return
	}

	return
}

// Type returns the CommandType of the Command.
func (m *MoveCall) Type() CommandType {
	return MoveCallCommandType
}

// Bytes returns a marshaled version of the Command.
func (m *MoveCall) Bytes() []byte {
	marshalUtil := marshalutil.New().
		WriteByte(byte(MoveCallCommandType)).
		WriteBytes(m.Package.Bytes())
	writeString(marshalUtil, m.Module)
	writeString(marshalUtil, m.Function)
	marshalUtil.WriteUint16(uint16(len(m.TypeArguments)))
	for _, typeArgument := range m.TypeArguments {
		marshalUtil.WriteBytes(typeArgument.Bytes())
	}
	writeArguments(marshalUtil, m.Arguments)

	return marshalUtil.Bytes()
}

// String returns a human readable version of the Command.
func (m *MoveCall) String() string {
	return stringify.Struct("MoveCall",
		stringify.StructField("package", m.Package),
		stringify.StructField("module", m.Module),
		stringify.StructField("function", m.Function),
		stringify.StructField("arguments", uint64(len(m.Arguments))),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region TransferObjects //////////////////////////////////////////////////////////////////////////////////////////////

// TransferObjects is a Command that sends a list of objects to an address.
type TransferObjects struct {
	Objects []Argument
	Address Argument
}

// TransferObjectsFromMarshalUtil unmarshals a TransferObjects using a MarshalUtil. The type byte is expected to have
// already been consumed by the caller.
func TransferObjectsFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (transferObjects *TransferObjects, err error) {
	transferObjects = &TransferObjects{}
	if transferObjects.Objects, err = argumentsFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse objects: %w", err)
		return
	}
	if transferObjects.Address, err = ArgumentFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse address Argument: %w", err)
		return
	}

	return
}

// Type returns the CommandType of the Command.
func (t *TransferObjects) Type() CommandType {
	return TransferObjectsCommandType
}

// Bytes returns a marshaled version of the Command.
func (t *TransferObjects) Bytes() []byte {
	marshalUtil := marshalutil.New().WriteByte(byte(TransferObjectsCommandType))
	writeArguments(marshalUtil, t.Objects)
	marshalUtil.WriteBytes(t.Address.Bytes())

	return marshalUtil.Bytes()
}

// String returns a human readable version of the Command.
func (t *TransferObjects) String() string {
	return stringify.Struct("TransferObjects",
		stringify.StructField("objects", uint64(len(t.Objects))),
		stringify.StructField("address", t.Address),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region SplitCoins ///////////////////////////////////////////////////////////////////////////////////////////////////

// SplitCoins is a Command that splits amounts off a coin. The coin operand is always accessed mutably.
type SplitCoins struct {
	Coin    Argument
	Amounts []Argument
}

// SplitCoinsFromMarshalUtil unmarshals a SplitCoins using a MarshalUtil. The type byte is expected to have already
// been consumed by the caller.
func SplitCoinsFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (splitCoins *SplitCoins, err error) {
	splitCoins = &SplitCoins{}
	if splitCoins.Coin, err = ArgumentFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse coin Argument: %w", err)
		return
	}
	if splitCoins.Amounts, err = argumentsFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse amounts: %w", err)
		return
	}

	return
}

// Type returns the CommandType of the Command.
func (s *SplitCoins) Type() CommandType {
	return SplitCoinsCommandType
}

// Bytes returns a marshaled version of the Command.
func (s *SplitCoins) Bytes() []byte {
	marshalUtil := marshalutil.New().WriteByte(byte(SplitCoinsCommandType))
	marshalUtil.WriteBytes(s.Coin.Bytes())
	writeArguments(marshalUtil, s.Amounts)

	return marshalUtil.Bytes()
}

// String returns a human readable version of the Command.
func (s *SplitCoins) String() string {
	return stringify.Struct("SplitCoins",
		stringify.StructField("coin", s.Coin),
		stringify.StructField("amounts", uint64(len(s.Amounts))),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region MergeCoins ///////////////////////////////////////////////////////////////////////////////////////////////////

// MergeCoins is a Command that merges a list of coins into a target coin. Both the target and the merged coins are
// accessed mutably.
type MergeCoins struct {
	Coin         Argument
	CoinsToMerge []Argument
}

// MergeCoinsFromMarshalUtil unmarshals a MergeCoins using a MarshalUtil. The type byte is expected to have already
// been consumed by the caller.
func MergeCoinsFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (mergeCoins *MergeCoins, err error) {
	mergeCoins = &MergeCoins{}
	if mergeCoins.Coin, err = ArgumentFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse coin Argument: %w", err)
		return
	}
	if mergeCoins.CoinsToMerge, err = argumentsFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse coins to merge: %w", err)
		return
	}

	return
}

// Type returns the CommandType of the Command.
func (m *MergeCoins) Type() CommandType {
	return MergeCoinsCommandType
}

// Bytes returns a marshaled version of the Command.
func (m *MergeCoins) Bytes() []byte {
	marshalUtil := marshalutil.New().WriteByte(byte(MergeCoinsCommandType))
	marshalUtil.WriteBytes(m.Coin.Bytes())
	writeArguments(marshalUtil, m.CoinsToMerge)

	return marshalUtil.Bytes()
}

// String returns a human readable version of the Command.
func (m *MergeCoins) String() string {
	return stringify.Struct("MergeCoins",
		stringify.StructField("coin", m.Coin),
		stringify.StructField("coinsToMerge", uint64(len(m.CoinsToMerge))),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region MakeMoveVector ///////////////////////////////////////////////////////////////////////////////////////////////

// MakeMoveVector is a Command that assembles a vector value from its elements. The elements are consumed by value and
// are therefore accessed mutably.
type MakeMoveVector struct {
	// ElementType optionally pins the element type of the vector (required for empty vectors).
	ElementType *TypeTag
	Elements    []Argument
}

// MakeMoveVectorFromMarshalUtil unmarshals a MakeMoveVector using a MarshalUtil. The type byte is expected to have
// already been consumed by the caller.
func MakeMoveVectorFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (makeMoveVector *MakeMoveVector, err error) {
	makeMoveVector = &MakeMoveVector{}
	hasElementType, err := marshalUtil.ReadBool()
	if err != nil {
		err = xerrors.Errorf("failed to parse element type flag (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if hasElementType {
		elementType, elementTypeErr := TypeTagFromMarshalUtil(marshalUtil)
		if elementTypeErr != nil {
			err = xerrors.Errorf("failed to parse element TypeTag: %w", elementTypeErr)
			return
		}
		makeMoveVector.ElementType = &elementType
	}
	if makeMoveVector.Elements, err = argumentsFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse elements: %w", err)
		return
	}

	return
}

// Type returns the CommandType of the Command.
func (m *MakeMoveVector) Type() CommandType {
	return MakeMoveVectorCommandType
}

// Bytes returns a marshaled version of the Command.
func (m *MakeMoveVector) Bytes() []byte {
	marshalUtil := marshalutil.New().WriteByte(byte(MakeMoveVectorCommandType))
	marshalUtil.WriteBool(m.ElementType != nil)
	if m.ElementType != nil {
		marshalUtil.WriteBytes(m.ElementType.Bytes())
	}
	writeArguments(marshalUtil, m.Elements)

	return marshalUtil.Bytes()
}

// String returns a human readable version of the Command.
func (m *MakeMoveVector) String() string {
	return stringify.Struct("MakeMoveVector",
		stringify.StructField("elements", uint64(len(m.Elements))),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Publish //////////////////////////////////////////////////////////////////////////////////////////////////////

// Publish is a Command that publishes a new package from the given compiled modules.
type Publish struct {
	Modules      [][]byte
	Dependencies []ObjectID
}

// PublishFromMarshalUtil unmarshals a Publish using a MarshalUtil. The type byte is expected to have already been
// consumed by the caller.
func PublishFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (publish *Publish, err error) {
	publish = &Publish{}
	if publish.Modules, err = moduleListFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse modules: %w", err)
		return
	}
	if publish.Dependencies, err = objectIDListFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse dependencies: %w", err)
		return
	}

	return
}

// Type returns the CommandType of the Command.
func (p *Publish) Type() CommandType {
	return PublishCommandType
}

// Bytes returns a marshaled version of the Command.
func (p *Publish) Bytes() []byte {
	marshalUtil := marshalutil.New().WriteByte(byte(PublishCommandType))
	writeModuleList(marshalUtil, p.Modules)
	writeObjectIDList(marshalUtil, p.Dependencies)

	return marshalUtil.Bytes()
}

// String returns a human readable version of the Command.
func (p *Publish) String() string {
	return stringify.Struct("Publish",
		stringify.StructField("modules", uint64(len(p.Modules))),
		stringify.StructField("dependencies", uint64(len(p.Dependencies))),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Upgrade //////////////////////////////////////////////////////////////////////////////////////////////////////

// Upgrade is a Command that upgrades a published package. The upgrade ticket proves the authority to upgrade.
type Upgrade struct {
	Modules      [][]byte
	Dependencies []ObjectID
	Package      ObjectID
	Ticket       Argument
}

// UpgradeFromMarshalUtil unmarshals an Upgrade using a MarshalUtil. The type byte is expected to have already been
// consumed by the caller.
func UpgradeFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (upgrade *Upgrade, err error) {
	upgrade = &Upgrade{}
	if upgrade.Modules, err = moduleListFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse modules: %w", err)
		return
	}
	if upgrade.Dependencies, err = objectIDListFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse dependencies: %w", err)
		return
	}
	if upgrade.Package, err = ObjectIDFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse package ObjectID: %w", err)
		return
	}
	if upgrade.Ticket, err = ArgumentFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse ticket Argument: %w", err)
		return
	}

	return
}

// Type returns the CommandType of the Command.
func (u *Upgrade) Type() CommandType {
	return UpgradeCommandType
}

// Bytes returns a marshaled version of the Command.
func (u *Upgrade) Bytes() []byte {
	marshalUtil := marshalutil.New().WriteByte(byte(UpgradeCommandType))
	writeModuleList(marshalUtil, u.Modules)
	writeObjectIDList(marshalUtil, u.Dependencies)
	marshalUtil.WriteBytes(u.Package.Bytes())
	marshalUtil.WriteBytes(u.Ticket.Bytes())

	return marshalUtil.Bytes()
}

// String returns a human readable version of the Command.
func (u *Upgrade) String() string {
	return stringify.Struct("Upgrade",
		stringify.StructField("package", u.Package),
		stringify.StructField("ticket", u.Ticket),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
