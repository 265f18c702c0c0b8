package ledgerstate

import (
	"testing"

	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectID(t *testing.T) {
	objectID := randomObjectID(1)

	// ObjectID from bytes
	objectID1, consumedBytes, err := ObjectIDFromBytes(objectID.Bytes())
	require.NoError(t, err)
	assert.Equal(t, ObjectIDLength, consumedBytes)
	assert.Equal(t, objectID, objectID1)

	// ObjectID from base58 string
	objectID2, err := ObjectIDFromBase58(objectID.Base58())
	require.NoError(t, err)
	assert.Equal(t, objectID, objectID2)

	// malformed base58 string
	_, err = ObjectIDFromBase58("not-base58!")
	require.Error(t, err)

	// too short
	_, _, err = ObjectIDFromBytes(objectID.Bytes()[:ObjectIDLength-1])
	require.Error(t, err)
}

func TestAddress(t *testing.T) {
	address := NewAddress([]byte("some public key"))

	addressFromBytes, _, err := AddressFromBytes(address.Bytes())
	require.NoError(t, err)
	assert.Equal(t, address, addressFromBytes)

	addressFromBase58, err := AddressFromBase58(address.Base58())
	require.NoError(t, err)
	assert.Equal(t, address, addressFromBase58)
}

func TestDigest(t *testing.T) {
	digest := NewDigest([]byte("some object contents"))
	assert.NotEqual(t, EmptyDigest, digest)

	digestFromBytes, _, err := DigestFromBytes(digest.Bytes())
	require.NoError(t, err)
	assert.Equal(t, digest, digestFromBytes)

	digestFromBase58, err := DigestFromBase58(digest.Base58())
	require.NoError(t, err)
	assert.Equal(t, digest, digestFromBase58)
}

func TestTypeTagIsGasCoin(t *testing.T) {
	assert.True(t, GasCoinTypeTag.IsGasCoin())
	assert.False(t, TypeTag("0x2::vault::Vault").IsGasCoin())
}

func TestOwnerMarshaling(t *testing.T) {
	owners := []Owner{
		&AddressOwner{Address: NewAddress([]byte("owner"))},
		&ObjectOwner{ObjectID: randomObjectID(7)},
		&SharedOwner{InitialSharedVersion: 42},
		&ImmutableOwner{},
	}

	for _, owner := range owners {
		restored, err := OwnerFromMarshalUtil(marshalutil.New(owner.Bytes()))
		require.NoError(t, err, "failed to restore %s", owner)
		assert.Equal(t, owner.Type(), restored.Type())
		assert.Equal(t, owner.Bytes(), restored.Bytes())
	}
}

func TestObjectMarshaling(t *testing.T) {
	object := NewObject(randomObjectID(3), 7, &AddressOwner{Address: NewAddress([]byte("owner"))}, &MoveObject{
		ObjectType: GasCoinTypeTag,
		Contents:   []byte{1, 2, 3, 4, 5, 6, 7, 8},
	})

	restored, consumedBytes, err := ObjectFromBytes(object.Bytes())
	require.NoError(t, err)
	assert.Equal(t, len(object.Bytes()), consumedBytes)
	assert.Equal(t, object.ID(), restored.ID())
	assert.Equal(t, object.Version(), restored.Version())
	assert.Equal(t, object.Owner().Bytes(), restored.Owner().Bytes())
	assert.Equal(t, object.Data().Bytes(), restored.Data().Bytes())
	assert.False(t, restored.IsPackage())
}

func TestPackageObjectMarshaling(t *testing.T) {
	object := NewObject(randomObjectID(4), 1, &ImmutableOwner{}, &MovePackage{
		Modules: map[string][]byte{
			"vault": {1, 2, 3},
			"coin":  {4, 5},
		},
	})

	restored, _, err := ObjectFromBytes(object.Bytes())
	require.NoError(t, err)
	require.True(t, restored.IsPackage())

	movePackage, isPackage := restored.AsPackage()
	require.True(t, isPackage)
	assert.Equal(t, []byte{1, 2, 3}, movePackage.Modules["vault"])
	assert.Equal(t, []byte{4, 5}, movePackage.Modules["coin"])
}

func TestObjectDigest(t *testing.T) {
	object := NewObject(randomObjectID(5), 1, &ImmutableOwner{}, &MoveObject{ObjectType: GasCoinTypeTag, Contents: []byte{1}})
	modifiedObject := NewObject(randomObjectID(5), 1, &ImmutableOwner{}, &MoveObject{ObjectType: GasCoinTypeTag, Contents: []byte{2}})

	// the digest is deterministic and sensitive to the contents
	assert.Equal(t, object.ComputeDigest(), object.ComputeDigest())
	assert.NotEqual(t, object.ComputeDigest(), modifiedObject.ComputeDigest())

	reference := object.ComputeObjectReference()
	assert.Equal(t, object.ID(), reference.ID())
	assert.Equal(t, object.Version(), reference.Version())
	assert.Equal(t, object.ComputeDigest(), reference.Digest())
}

// randomObjectID returns a deterministic ObjectID derived from the given seed.
func randomObjectID(seed byte) (objectID ObjectID) {
	for i := range objectID {
		objectID[i] = seed + byte(i)
	}

	return
}
