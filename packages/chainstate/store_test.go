package chainstate

import (
	"testing"

	"github.com/iotaledger/hive.go/kvstore/mapdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amberledger/goamber/packages/ledgerstate"
)

func newTestStore() *Store {
	return NewStore(mapdb.NewMapDB(), "amber-testnet", SystemStateSummary{
		Epoch:             1,
		ProtocolVersion:   3,
		ReferenceGasPrice: 1000,
	})
}

func TestStoreObject(t *testing.T) {
	store := newTestStore()
	owner := ledgerstate.NewAddress([]byte("owner"))

	coinV1 := ledgerstate.NewGasCoinObject(objectID(1), 1, owner, 100)
	coinV2 := ledgerstate.NewGasCoinObject(objectID(1), 2, owner, 80)
	require.NoError(t, store.AddObject(coinV1))
	require.NoError(t, store.AddObject(coinV2))

	// the latest version wins
	latest, err := store.Object(objectID(1))
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, ledgerstate.Version(2), latest.Version())
	assert.Equal(t, coinV2.Bytes(), latest.Bytes())

	// older versions stay addressable by key
	byKey, err := store.ObjectByKey(objectID(1), 1)
	require.NoError(t, err)
	require.NotNil(t, byKey)
	assert.Equal(t, coinV1.Bytes(), byKey.Bytes())

	// absent objects yield nil without error
	missing, err := store.Object(objectID(9))
	require.NoError(t, err)
	assert.Nil(t, missing)

	missingVersion, err := store.ObjectByKey(objectID(1), 3)
	require.NoError(t, err)
	assert.Nil(t, missingVersion)
}

func TestStoreOwnershipListing(t *testing.T) {
	store := newTestStore()
	owner := ledgerstate.NewAddress([]byte("owner"))

	require.NoError(t, store.AddObject(ledgerstate.NewGasCoinObject(objectID(1), 1, owner, 100)))
	require.NoError(t, store.AddObject(ledgerstate.NewGasCoinObject(objectID(2), 1, owner, 50)))
	require.NoError(t, store.AddObject(ledgerstate.NewGasCoinObject(objectID(3), 1, owner, 30)))

	// a new version doesn't change the position in the listing
	require.NoError(t, store.AddObject(ledgerstate.NewGasCoinObject(objectID(1), 2, owner, 90)))

	var listed []ledgerstate.ObjectID
	store.ForEachOwnedObject(owner, func(ownedObject OwnedObjectInfo) bool {
		assert.True(t, ownedObject.Type.IsGasCoin())
		listed = append(listed, ownedObject.ObjectID)
		return true
	})
	assert.Equal(t, []ledgerstate.ObjectID{objectID(1), objectID(2), objectID(3)}, listed)

	// the iteration aborts when the consumer returns false
	listed = nil
	store.ForEachOwnedObject(owner, func(ownedObject OwnedObjectInfo) bool {
		listed = append(listed, ownedObject.ObjectID)
		return false
	})
	assert.Len(t, listed, 1)

	// shared and immutable objects don't appear in any listing
	require.NoError(t, store.AddObject(ledgerstate.NewObject(objectID(4), 1, &ledgerstate.SharedOwner{InitialSharedVersion: 1}, &ledgerstate.MoveObject{ObjectType: "0x2::vault::Vault"})))
	otherOwner := ledgerstate.NewAddress([]byte("other"))
	store.ForEachOwnedObject(otherOwner, func(OwnedObjectInfo) bool {
		t.Fatal("unexpected owned object")
		return false
	})
}

func TestStoreOwnershipTransfer(t *testing.T) {
	store := newTestStore()
	owner := ledgerstate.NewAddress([]byte("owner"))
	recipient := ledgerstate.NewAddress([]byte("recipient"))

	require.NoError(t, store.AddObject(ledgerstate.NewGasCoinObject(objectID(1), 1, owner, 100)))
	require.NoError(t, store.AddObject(ledgerstate.NewGasCoinObject(objectID(2), 1, owner, 50)))

	// transferring the coin moves it from the old owner's listing to the recipient's
	require.NoError(t, store.AddObject(ledgerstate.NewGasCoinObject(objectID(1), 2, recipient, 100)))

	assert.Equal(t, []ledgerstate.ObjectID{objectID(2)}, listedObjectIDs(store, owner))
	assert.Equal(t, []ledgerstate.ObjectID{objectID(1)}, listedObjectIDs(store, recipient))

	// a version that becomes shared leaves every listing
	require.NoError(t, store.AddObject(ledgerstate.NewObject(objectID(2), 2, &ledgerstate.SharedOwner{InitialSharedVersion: 2}, &ledgerstate.MoveObject{ObjectType: ledgerstate.GasCoinTypeTag})))

	assert.Empty(t, listedObjectIDs(store, owner))
	assert.Equal(t, []ledgerstate.ObjectID{objectID(1)}, listedObjectIDs(store, recipient))
}

func TestStoreSystemStateSummary(t *testing.T) {
	store := newTestStore()
	assert.Equal(t, "amber-testnet", store.ChainIdentifier())
	assert.Equal(t, uint64(1), store.SystemStateSummary().Epoch)

	store.UpdateSystemStateSummary(SystemStateSummary{Epoch: 2, ProtocolVersion: 3, ReferenceGasPrice: 1100})
	assert.Equal(t, uint64(2), store.SystemStateSummary().Epoch)
	assert.Equal(t, uint64(1100), store.SystemStateSummary().ReferenceGasPrice)
}

// listedObjectIDs collects the ObjectIDs of the given Address' ownership listing.
func listedObjectIDs(store *Store, owner ledgerstate.Address) (objectIDs []ledgerstate.ObjectID) {
	store.ForEachOwnedObject(owner, func(ownedObject OwnedObjectInfo) bool {
		objectIDs = append(objectIDs, ownedObject.ObjectID)
		return true
	})

	return
}

// objectID returns a deterministic ObjectID derived from the given seed.
func objectID(seed byte) (objectID ledgerstate.ObjectID) {
	for i := range objectID {
		objectID[i] = seed
	}

	return
}
