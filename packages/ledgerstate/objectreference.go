package ledgerstate

import (
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"
)

// region ObjectReference //////////////////////////////////////////////////////////////////////////////////////////////

// ObjectReferenceLength contains the amount of bytes that a marshaled version of the ObjectReference contains.
const ObjectReferenceLength = ObjectIDLength + marshalutil.Uint64Size + DigestLength

// ObjectReference is the fully qualified reference to the exact state of an Object: its identifier, its Version and
// the Digest stored at that Version.
type ObjectReference struct {
	id      ObjectID
	version Version
	digest  Digest
}

// NewObjectReference creates a new ObjectReference from the given properties.
func NewObjectReference(id ObjectID, version Version, digest Digest) ObjectReference {
	return ObjectReference{
		id:      id,
		version: version,
		digest:  digest,
	}
}

// ObjectReferenceFromBytes unmarshals an ObjectReference from a sequence of bytes.
func ObjectReferenceFromBytes(data []byte) (objectReference ObjectReference, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(data)
	if objectReference, err = ObjectReferenceFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse ObjectReference from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// ObjectReferenceFromMarshalUtil unmarshals an ObjectReference using a MarshalUtil (for easier unmarshaling).
func ObjectReferenceFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (objectReference ObjectReference, err error) {
	if objectReference.id, err = ObjectIDFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse ObjectID: %w", err)
		return
	}
	if objectReference.version, err = VersionFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse Version: %w", err)
		return
	}
	if objectReference.digest, err = DigestFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse Digest: %w", err)
		return
	}

	return
}

// ID returns the identifier of the referenced Object.
func (o ObjectReference) ID() ObjectID {
	return o.id
}

// Version returns the Version of the referenced Object.
func (o ObjectReference) Version() Version {
	return o.version
}

// Digest returns the Digest of the referenced Object at the referenced Version.
func (o ObjectReference) Digest() Digest {
	return o.digest
}

// Bytes returns a marshaled version of the ObjectReference.
func (o ObjectReference) Bytes() []byte {
	return marshalutil.New(ObjectReferenceLength).
		WriteBytes(o.id.Bytes()).
		WriteUint64(uint64(o.version)).
		WriteBytes(o.digest.Bytes()).
		Bytes()
}

// String returns a human readable version of the ObjectReference.
func (o ObjectReference) String() string {
	return stringify.Struct("ObjectReference",
		stringify.StructField("id", o.id),
		stringify.StructField("version", o.version),
		stringify.StructField("digest", o.digest),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
