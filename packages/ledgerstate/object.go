package ledgerstate

import (
	"sort"
	"strconv"

	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/xerrors"
)

// region ObjectID /////////////////////////////////////////////////////////////////////////////////////////////////////

// ObjectIDLength contains the amount of bytes that a marshaled version of the ObjectID contains.
const ObjectIDLength = 32

// ObjectID is the type that represents the identifier of an Object. It stays stable across all versions of the Object.
type ObjectID [ObjectIDLength]byte

// EmptyObjectID represents the zero-value of an ObjectID.
var EmptyObjectID ObjectID

// ObjectIDFromBytes unmarshals an ObjectID from a sequence of bytes.
func ObjectIDFromBytes(data []byte) (objectID ObjectID, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(data)
	if objectID, err = ObjectIDFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse ObjectID from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// ObjectIDFromBase58 creates an ObjectID from a base58 encoded string.
func ObjectIDFromBase58(base58String string) (objectID ObjectID, err error) {
	decodedBytes, err := base58.Decode(base58String)
	if err != nil {
		err = xerrors.Errorf("error while decoding base58 encoded ObjectID (%v): %w", err, cerrors.ErrBase58DecodeFailed)
		return
	}

	if objectID, _, err = ObjectIDFromBytes(decodedBytes); err != nil {
		err = xerrors.Errorf("failed to parse ObjectID from bytes: %w", err)
		return
	}

	return
}

// ObjectIDFromMarshalUtil unmarshals an ObjectID using a MarshalUtil (for easier unmarshaling).
func ObjectIDFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (objectID ObjectID, err error) {
	objectIDBytes, err := marshalUtil.ReadBytes(ObjectIDLength)
	if err != nil {
		err = xerrors.Errorf("failed to parse ObjectID (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	copy(objectID[:], objectIDBytes)

	return
}

// Bytes returns a marshaled version of the ObjectID.
func (o ObjectID) Bytes() []byte {
	return o[:]
}

// Base58 returns a base58 encoded version of the ObjectID.
func (o ObjectID) Base58() string {
	return base58.Encode(o[:])
}

// String returns a human readable version of the ObjectID.
func (o ObjectID) String() string {
	return "ObjectID(" + o.Base58() + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Version //////////////////////////////////////////////////////////////////////////////////////////////////////

// Version is the sequence number of an Object that increases whenever a transaction modifies it.
type Version uint64

// VersionFromMarshalUtil unmarshals a Version using a MarshalUtil (for easier unmarshaling).
func VersionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (version Version, err error) {
	untypedVersion, err := marshalUtil.ReadUint64()
	if err != nil {
		err = xerrors.Errorf("failed to parse Version (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	version = Version(untypedVersion)

	return
}

// Bytes returns a marshaled version of the Version.
func (v Version) Bytes() []byte {
	return marshalutil.New(marshalutil.Uint64Size).WriteUint64(uint64(v)).Bytes()
}

// String returns a human readable version of the Version.
func (v Version) String() string {
	return "Version(" + strconv.FormatUint(uint64(v), 10) + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Digest ///////////////////////////////////////////////////////////////////////////////////////////////////////

// DigestLength contains the amount of bytes that a marshaled version of the Digest contains.
const DigestLength = 32

// Digest is the content hash that identifies the exact immutable state of an Object at a specific Version.
type Digest [DigestLength]byte

// EmptyDigest represents the zero-value of a Digest.
var EmptyDigest Digest

// NewDigest computes the Digest of the given bytes.
func NewDigest(data []byte) (digest Digest) {
	return blake2b.Sum256(data)
}

// DigestFromBytes unmarshals a Digest from a sequence of bytes.
func DigestFromBytes(data []byte) (digest Digest, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(data)
	if digest, err = DigestFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse Digest from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// DigestFromBase58 creates a Digest from a base58 encoded string.
func DigestFromBase58(base58String string) (digest Digest, err error) {
	decodedBytes, err := base58.Decode(base58String)
	if err != nil {
		err = xerrors.Errorf("error while decoding base58 encoded Digest (%v): %w", err, cerrors.ErrBase58DecodeFailed)
		return
	}

	if digest, _, err = DigestFromBytes(decodedBytes); err != nil {
		err = xerrors.Errorf("failed to parse Digest from bytes: %w", err)
		return
	}

	return
}

// DigestFromMarshalUtil unmarshals a Digest using a MarshalUtil (for easier unmarshaling).
func DigestFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (digest Digest, err error) {
	digestBytes, err := marshalUtil.ReadBytes(DigestLength)
	if err != nil {
		err = xerrors.Errorf("failed to parse Digest (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	copy(digest[:], digestBytes)

	return
}

// Bytes returns a marshaled version of the Digest.
func (d Digest) Bytes() []byte {
	return d[:]
}

// Base58 returns a base58 encoded version of the Digest.
func (d Digest) Base58() string {
	return base58.Encode(d[:])
}

// String returns a human readable version of the Digest.
func (d Digest) String() string {
	return "Digest(" + d.Base58() + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region TypeTag //////////////////////////////////////////////////////////////////////////////////////////////////////

// GasCoinTypeTag is the TypeTag of the coin type that is used to pay for gas.
const GasCoinTypeTag TypeTag = "0x2::coin::Coin<0x2::amber::AMBER>"

// TypeTag is the fully qualified on-chain type of a MoveObject.
type TypeTag string

// TypeTagFromMarshalUtil unmarshals a TypeTag using a MarshalUtil (for easier unmarshaling).
func TypeTagFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (typeTag TypeTag, err error) {
	tagLength, err := marshalUtil.ReadUint16()
	if err != nil {
		err = xerrors.Errorf("failed to parse TypeTag length (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	tagBytes, err := marshalUtil.ReadBytes(int(tagLength))
	if err != nil {
		err = xerrors.Errorf("failed to parse TypeTag (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	typeTag = TypeTag(tagBytes)

	return
}

// IsGasCoin returns true if the TypeTag identifies a gas coin.
func (t TypeTag) IsGasCoin() bool {
	return t == GasCoinTypeTag
}

// Bytes returns a marshaled version of the TypeTag.
func (t TypeTag) Bytes() []byte {
	return marshalutil.New(marshalutil.Uint16Size + len(t)).
		WriteUint16(uint16(len(t))).
		WriteBytes([]byte(t)).
		Bytes()
}

// String returns a human readable version of the TypeTag.
func (t TypeTag) String() string {
	return string(t)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Owner ////////////////////////////////////////////////////////////////////////////////////////////////////////

// OwnerType represents the type of an Owner. The OwnerType determines who can use an Object in a transaction and
// whether concurrent access is possible.
type OwnerType uint8

const (
	// AddressOwnerType represents an Object that is exclusively owned by an account address.
	AddressOwnerType OwnerType = iota

	// ObjectOwnerType represents an Object that is owned by another Object (it lives inside a field of its owner).
	ObjectOwnerType

	// SharedOwnerType represents an Object that is accessible by multiple concurrent transactions.
	SharedOwnerType

	// ImmutableOwnerType represents an Object that can never be mutated again (e.g. published packages).
	ImmutableOwnerType
)

// String returns a human readable representation of the OwnerType.
func (o OwnerType) String() string {
	return [...]string{
		"AddressOwnerType",
		"ObjectOwnerType",
		"SharedOwnerType",
		"ImmutableOwnerType",
	}[o]
}

// Owner is a generic interface for the different kinds of ownership that an Object can have.
type Owner interface {
	// Type returns the OwnerType which allows us to generically handle Owners of different types.
	Type() OwnerType

	// Bytes returns a marshaled version of the Owner.
	Bytes() []byte

	// String returns a human readable version of the Owner.
	String() string
}

// OwnerFromMarshalUtil unmarshals an Owner using a MarshalUtil (for easier unmarshaling).
func OwnerFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (owner Owner, err error) {
	ownerType, err := marshalUtil.ReadByte()
	if err != nil {
		err = xerrors.Errorf("failed to parse OwnerType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	switch OwnerType(ownerType) {
	case AddressOwnerType:
		address, addressErr := AddressFromMarshalUtil(marshalUtil)
		if addressErr != nil {
			err = xerrors.Errorf("failed to parse AddressOwner: %w", addressErr)
			return
		}
		owner = &AddressOwner{Address: address}
	case ObjectOwnerType:
		objectID, objectIDErr := ObjectIDFromMarshalUtil(marshalUtil)
		if objectIDErr != nil {
			err = xerrors.Errorf("failed to parse ObjectOwner: %w", objectIDErr)
			return
		}
		owner = &ObjectOwner{ObjectID: objectID}
	case SharedOwnerType:
		initialSharedVersion, versionErr := VersionFromMarshalUtil(marshalUtil)
		if versionErr != nil {
			err = xerrors.Errorf("failed to parse SharedOwner: %w", versionErr)
			return
		}
		owner = &SharedOwner{InitialSharedVersion: initialSharedVersion}
	case ImmutableOwnerType:
		owner = &ImmutableOwner{}
	default:
		err = xerrors.Errorf("unsupported OwnerType (%X): %w", ownerType, cerrors.ErrParseBytesFailed)
		return
	}

	return
}

// AddressOwner represents exclusive ownership of an Object by an account address.
type AddressOwner struct {
	Address Address
}

// Type returns the OwnerType of the Owner.
func (a *AddressOwner) Type() OwnerType {
	return AddressOwnerType
}

// Bytes returns a marshaled version of the Owner.
func (a *AddressOwner) Bytes() []byte {
	return marshalutil.New(marshalutil.Uint8Size + AddressLength).
		WriteByte(byte(AddressOwnerType)).
		WriteBytes(a.Address.Bytes()).
		Bytes()
}

// String returns a human readable version of the Owner.
func (a *AddressOwner) String() string {
	return stringify.Struct("AddressOwner",
		stringify.StructField("address", a.Address),
	)
}

// ObjectOwner represents ownership of an Object by another Object.
type ObjectOwner struct {
	ObjectID ObjectID
}

// Type returns the OwnerType of the Owner.
func (o *ObjectOwner) Type() OwnerType {
	return ObjectOwnerType
}

// Bytes returns a marshaled version of the Owner.
func (o *ObjectOwner) Bytes() []byte {
	return marshalutil.New(marshalutil.Uint8Size + ObjectIDLength).
		WriteByte(byte(ObjectOwnerType)).
		WriteBytes(o.ObjectID.Bytes()).
		Bytes()
}

// String returns a human readable version of the Owner.
func (o *ObjectOwner) String() string {
	return stringify.Struct("ObjectOwner",
		stringify.StructField("objectID", o.ObjectID),
	)
}

// SharedOwner represents an Object that is accessible by multiple concurrent transactions. Every transaction that
// references a shared Object has to declare whether its access is mutable.
type SharedOwner struct {
	InitialSharedVersion Version
}

// Type returns the OwnerType of the Owner.
func (s *SharedOwner) Type() OwnerType {
	return SharedOwnerType
}

// Bytes returns a marshaled version of the Owner.
func (s *SharedOwner) Bytes() []byte {
	return marshalutil.New(marshalutil.Uint8Size + marshalutil.Uint64Size).
		WriteByte(byte(SharedOwnerType)).
		WriteUint64(uint64(s.InitialSharedVersion)).
		Bytes()
}

// String returns a human readable version of the Owner.
func (s *SharedOwner) String() string {
	return stringify.Struct("SharedOwner",
		stringify.StructField("initialSharedVersion", s.InitialSharedVersion),
	)
}

// ImmutableOwner represents an Object that can never be mutated again.
type ImmutableOwner struct{}

// Type returns the OwnerType of the Owner.
func (i *ImmutableOwner) Type() OwnerType {
	return ImmutableOwnerType
}

// Bytes returns a marshaled version of the Owner.
func (i *ImmutableOwner) Bytes() []byte {
	return []byte{byte(ImmutableOwnerType)}
}

// String returns a human readable version of the Owner.
func (i *ImmutableOwner) String() string {
	return "ImmutableOwner()"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ObjectData ///////////////////////////////////////////////////////////////////////////////////////////////////

// ObjectDataType represents the type of the content of an Object.
type ObjectDataType uint8

const (
	// MoveObjectType represents the content of a plain on-chain value with a TypeTag and raw contents.
	MoveObjectType ObjectDataType = iota

	// MovePackageType represents the content of a published package (a set of compiled modules).
	MovePackageType
)

// String returns a human readable representation of the ObjectDataType.
func (o ObjectDataType) String() string {
	return [...]string{
		"MoveObjectType",
		"MovePackageType",
	}[o]
}

// ObjectData is a generic interface for the different kinds of content that an Object can carry.
type ObjectData interface {
	// Type returns the ObjectDataType which allows us to generically handle ObjectData of different types.
	Type() ObjectDataType

	// Bytes returns a marshaled version of the ObjectData.
	Bytes() []byte

	// String returns a human readable version of the ObjectData.
	String() string
}

// ObjectDataFromMarshalUtil unmarshals an ObjectData using a MarshalUtil (for easier unmarshaling).
func ObjectDataFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (objectData ObjectData, err error) {
	objectDataType, err := marshalUtil.ReadByte()
	if err != nil {
		err = xerrors.Errorf("failed to parse ObjectDataType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	switch ObjectDataType(objectDataType) {
	case MoveObjectType:
		if objectData, err = MoveObjectFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse MoveObject: %w", err)
			return
		}
	case MovePackageType:
		if objectData, err = MovePackageFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse MovePackage: %w", err)
			return
		}
	default:
		err = xerrors.Errorf("unsupported ObjectDataType (%X): %w", objectDataType, cerrors.ErrParseBytesFailed)
		return
	}

	return
}

// MoveObject is the content of a plain on-chain value.
type MoveObject struct {
	ObjectType TypeTag
	Contents   []byte
}

// MoveObjectFromMarshalUtil unmarshals a MoveObject using a MarshalUtil (for easier unmarshaling). The type byte is
// expected to have already been consumed by the caller.
func MoveObjectFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (moveObject *MoveObject, err error) {
	moveObject = &MoveObject{}
	if moveObject.ObjectType, err = TypeTagFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse TypeTag: %w", err)
		return
	}
	contentsLength, err := marshalUtil.ReadUint32()
	if err != nil {
		err = xerrors.Errorf("failed to parse contents length (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if moveObject.Contents, err = marshalUtil.ReadBytes(int(contentsLength)); err != nil {
		err = xerrors.Errorf("failed to parse contents (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	return
}

// Type returns the ObjectDataType of the ObjectData.
func (m *MoveObject) Type() ObjectDataType {
	return MoveObjectType
}

// Bytes returns a marshaled version of the ObjectData.
func (m *MoveObject) Bytes() []byte {
	return marshalutil.New().
		WriteByte(byte(MoveObjectType)).
		WriteBytes(m.ObjectType.Bytes()).
		WriteUint32(uint32(len(m.Contents))).
		WriteBytes(m.Contents).
		Bytes()
}

// String returns a human readable version of the ObjectData.
func (m *MoveObject) String() string {
	return stringify.Struct("MoveObject",
		stringify.StructField("objectType", m.ObjectType),
		stringify.StructField("contents", m.Contents),
	)
}

// MovePackage is the content of a published package. It maps module names to the compiled module bytes.
type MovePackage struct {
	Modules map[string][]byte
}

// MovePackageFromMarshalUtil unmarshals a MovePackage using a MarshalUtil (for easier unmarshaling). The type byte is
// expected to have already been consumed by the caller.
func MovePackageFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (movePackage *MovePackage, err error) {
	moduleCount, err := marshalUtil.ReadUint16()
	if err != nil {
		err = xerrors.Errorf("failed to parse module count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	movePackage = &MovePackage{Modules: make(map[string][]byte, moduleCount)}
	for i := uint16(0); i < moduleCount; i++ {
		nameLength, nameLengthErr := marshalUtil.ReadUint16()
		if nameLengthErr != nil {
			err = xerrors.Errorf("failed to parse module name length (%v): %w", nameLengthErr, cerrors.ErrParseBytesFailed)
			return
		}
		nameBytes, nameErr := marshalUtil.ReadBytes(int(nameLength))
		if nameErr != nil {
			err = xerrors.Errorf("failed to parse module name (%v): %w", nameErr, cerrors.ErrParseBytesFailed)
			return
		}
		moduleLength, moduleLengthErr := marshalUtil.ReadUint32()
		if moduleLengthErr != nil {
			err = xerrors.Errorf("failed to parse module length (%v): %w", moduleLengthErr, cerrors.ErrParseBytesFailed)
			return
		}
		moduleBytes, moduleErr := marshalUtil.ReadBytes(int(moduleLength))
		if moduleErr != nil {
			err = xerrors.Errorf("failed to parse module bytes (%v): %w", moduleErr, cerrors.ErrParseBytesFailed)
			return
		}
		movePackage.Modules[string(nameBytes)] = moduleBytes
	}

	return
}

// Type returns the ObjectDataType of the ObjectData.
func (m *MovePackage) Type() ObjectDataType {
	return MovePackageType
}

// Bytes returns a marshaled version of the ObjectData. Modules are marshaled in lexicographic order so that the
// digest of a package Object is deterministic.
func (m *MovePackage) Bytes() []byte {
	moduleNames := make([]string, 0, len(m.Modules))
	for moduleName := range m.Modules {
		moduleNames = append(moduleNames, moduleName)
	}
	sort.Strings(moduleNames)

	marshalUtil := marshalutil.New().
		WriteByte(byte(MovePackageType)).
		WriteUint16(uint16(len(m.Modules)))
	for _, moduleName := range moduleNames {
		marshalUtil.WriteUint16(uint16(len(moduleName)))
		marshalUtil.WriteBytes([]byte(moduleName))
		marshalUtil.WriteUint32(uint32(len(m.Modules[moduleName])))
		marshalUtil.WriteBytes(m.Modules[moduleName])
	}

	return marshalUtil.Bytes()
}

// String returns a human readable version of the ObjectData.
func (m *MovePackage) String() string {
	return stringify.Struct("MovePackage",
		stringify.StructField("moduleCount", uint64(len(m.Modules))),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Object ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Object is the unit of storage of the ledger. Every Object carries a stable identifier, a Version that increases
// with every mutation, an Owner and its content.
type Object struct {
	id      ObjectID
	version Version
	owner   Owner
	data    ObjectData
}

// NewObject creates a new Object with the given properties.
func NewObject(id ObjectID, version Version, owner Owner, data ObjectData) *Object {
	return &Object{
		id:      id,
		version: version,
		owner:   owner,
		data:    data,
	}
}

// ObjectFromBytes unmarshals an Object from a sequence of bytes.
func ObjectFromBytes(data []byte) (object *Object, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(data)
	if object, err = ObjectFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse Object from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// ObjectFromMarshalUtil unmarshals an Object using a MarshalUtil (for easier unmarshaling).
func ObjectFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (object *Object, err error) {
	object = &Object{}
	if object.id, err = ObjectIDFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse ObjectID: %w", err)
		return
	}
	if object.version, err = VersionFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse Version: %w", err)
		return
	}
	if object.owner, err = OwnerFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse Owner: %w", err)
		return
	}
	if object.data, err = ObjectDataFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse ObjectData: %w", err)
		return
	}

	return
}

// ID returns the identifier of the Object.
func (o *Object) ID() ObjectID {
	return o.id
}

// Version returns the Version of the Object.
func (o *Object) Version() Version {
	return o.version
}

// Owner returns the Owner of the Object.
func (o *Object) Owner() Owner {
	return o.owner
}

// Data returns the content of the Object.
func (o *Object) Data() ObjectData {
	return o.data
}

// IsPackage returns true if the Object carries a published package.
func (o *Object) IsPackage() bool {
	return o.data.Type() == MovePackageType
}

// AsPackage returns the content of the Object as a MovePackage. It returns false if the Object is not a package.
func (o *Object) AsPackage() (movePackage *MovePackage, isPackage bool) {
	movePackage, isPackage = o.data.(*MovePackage)

	return
}

// AsMoveObject returns the content of the Object as a MoveObject. It returns false if the Object is a package.
func (o *Object) AsMoveObject() (moveObject *MoveObject, isMoveObject bool) {
	moveObject, isMoveObject = o.data.(*MoveObject)

	return
}

// ComputeDigest computes the Digest of the current state of the Object.
func (o *Object) ComputeDigest() Digest {
	return NewDigest(o.Bytes())
}

// ComputeObjectReference returns the fully qualified reference to the current state of the Object.
func (o *Object) ComputeObjectReference() ObjectReference {
	return NewObjectReference(o.id, o.version, o.ComputeDigest())
}

// Bytes returns a marshaled version of the Object.
func (o *Object) Bytes() []byte {
	return marshalutil.New().
		WriteBytes(o.id.Bytes()).
		WriteUint64(uint64(o.version)).
		WriteBytes(o.owner.Bytes()).
		WriteBytes(o.data.Bytes()).
		Bytes()
}

// String returns a human readable version of the Object.
func (o *Object) String() string {
	return stringify.Struct("Object",
		stringify.StructField("id", o.id),
		stringify.StructField("version", o.version),
		stringify.StructField("owner", o.owner),
		stringify.StructField("data", o.data),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
