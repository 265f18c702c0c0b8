package chainstate

import (
	"sync"

	"github.com/iotaledger/hive.go/byteutils"
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/marshalutil"
	"golang.org/x/xerrors"

	"github.com/amberledger/goamber/packages/ledgerstate"
)

const (
	// prefixLatestVersion is the key prefix of the entries that map an ObjectID to its latest Version.
	prefixLatestVersion byte = iota

	// prefixObjects is the key prefix of the entries that map an ObjectID and a Version to the marshaled Object.
	prefixObjects
)

// region Store ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Store is the KVStore backed implementation of the Reader interface. It additionally offers a write side that the
// chain sync uses to publish new object versions.
type Store struct {
	store           kvstore.KVStore
	chainIdentifier string

	systemState      SystemStateSummary
	systemStateMutex sync.RWMutex

	ownedObjects      map[ledgerstate.Address][]OwnedObjectInfo
	objectOwners      map[ledgerstate.ObjectID]ledgerstate.Address
	ownedObjectsMutex sync.RWMutex
}

// NewStore returns a new Store that persists objects in the given KVStore.
func NewStore(store kvstore.KVStore, chainIdentifier string, systemState SystemStateSummary) *Store {
	return &Store{
		store:           store,
		chainIdentifier: chainIdentifier,
		systemState:     systemState,
		ownedObjects:    make(map[ledgerstate.Address][]OwnedObjectInfo),
		objectOwners:    make(map[ledgerstate.ObjectID]ledgerstate.Address),
	}
}

// AddObject stores the given Object as the latest version of its ObjectID and updates the ownership listing.
func (s *Store) AddObject(object *ledgerstate.Object) (err error) {
	objectID := object.ID()

	versionedKey := byteutils.ConcatBytes([]byte{prefixObjects}, objectID.Bytes(), marshalutil.New().WriteUint64(uint64(object.Version())).Bytes())
	if err = s.store.Set(versionedKey, object.Bytes()); err != nil {
		return xerrors.Errorf("failed to store Object %s: %w", objectID, err)
	}

	latestKey := byteutils.ConcatBytes([]byte{prefixLatestVersion}, objectID.Bytes())
	if err = s.store.Set(latestKey, marshalutil.New().WriteUint64(uint64(object.Version())).Bytes()); err != nil {
		return xerrors.Errorf("failed to store latest version of Object %s: %w", objectID, err)
	}

	s.updateOwnershipListing(object)

	return nil
}

// Object returns the latest version of the Object with the given ObjectID or nil if no such Object exists.
func (s *Store) Object(objectID ledgerstate.ObjectID) (object *ledgerstate.Object, err error) {
	latestVersionBytes, err := s.store.Get(byteutils.ConcatBytes([]byte{prefixLatestVersion}, objectID.Bytes()))
	if err != nil {
		if xerrors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, nil
		}

		return nil, xerrors.Errorf("failed to load latest version of Object %s: %w", objectID, err)
	}

	latestVersion, err := marshalutil.New(latestVersionBytes).ReadUint64()
	if err != nil {
		return nil, xerrors.Errorf("failed to parse latest version of Object %s: %w", objectID, err)
	}

	return s.ObjectByKey(objectID, ledgerstate.Version(latestVersion))
}

// ObjectByKey returns the Object with the given ObjectID at the given Version or nil if no such Object exists.
func (s *Store) ObjectByKey(objectID ledgerstate.ObjectID, version ledgerstate.Version) (object *ledgerstate.Object, err error) {
	versionedKey := byteutils.ConcatBytes([]byte{prefixObjects}, objectID.Bytes(), marshalutil.New().WriteUint64(uint64(version)).Bytes())
	objectBytes, err := s.store.Get(versionedKey)
	if err != nil {
		if xerrors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, nil
		}

		return nil, xerrors.Errorf("failed to load Object %s: %w", objectID, err)
	}

	if object, _, err = ledgerstate.ObjectFromBytes(objectBytes); err != nil {
		return nil, xerrors.Errorf("failed to parse Object %s: %w", objectID, err)
	}

	return object, nil
}

// ChainIdentifier returns the identifier of the chain whose state is exposed.
func (s *Store) ChainIdentifier() string {
	return s.chainIdentifier
}

// SystemStateSummary returns the current chain-wide parameters.
func (s *Store) SystemStateSummary() SystemStateSummary {
	s.systemStateMutex.RLock()
	defer s.systemStateMutex.RUnlock()

	return s.systemState
}

// UpdateSystemStateSummary replaces the chain-wide parameters (e.g. on an epoch change).
func (s *Store) UpdateSystemStateSummary(systemState SystemStateSummary) {
	s.systemStateMutex.Lock()
	defer s.systemStateMutex.Unlock()

	s.systemState = systemState
}

// ForEachOwnedObject iterates over the Objects owned by the given Address in the order they entered the ownership
// listing. The iteration aborts when the consumer returns false.
func (s *Store) ForEachOwnedObject(owner ledgerstate.Address, consumer func(OwnedObjectInfo) bool) {
	s.ownedObjectsMutex.RLock()
	ownedObjects := make([]OwnedObjectInfo, len(s.ownedObjects[owner]))
	copy(ownedObjects, s.ownedObjects[owner])
	s.ownedObjectsMutex.RUnlock()

	for _, ownedObject := range ownedObjects {
		if !consumer(ownedObject) {
			return
		}
	}
}

// updateOwnershipListing registers the Object in the listing of its owner. Objects that keep their owner also keep
// their position so the iteration order reflects when an Object was first owned; Objects whose owner changed leave
// the previous owner's listing.
func (s *Store) updateOwnershipListing(object *ledgerstate.Object) {
	s.ownedObjectsMutex.Lock()
	defer s.ownedObjectsMutex.Unlock()

	objectID := object.ID()
	addressOwner, isAddressOwned := object.Owner().(*ledgerstate.AddressOwner)

	if previousOwner, wasAddressOwned := s.objectOwners[objectID]; wasAddressOwned && (!isAddressOwned || previousOwner != addressOwner.Address) {
		s.removeFromOwnershipListing(previousOwner, objectID)
		delete(s.objectOwners, objectID)
	}

	if !isAddressOwned {
		return
	}

	objectType := ledgerstate.TypeTag("")
	if moveObject, isMoveObject := object.AsMoveObject(); isMoveObject {
		objectType = moveObject.ObjectType
	}

	s.objectOwners[objectID] = addressOwner.Address
	for i, ownedObject := range s.ownedObjects[addressOwner.Address] {
		if ownedObject.ObjectID == objectID {
			s.ownedObjects[addressOwner.Address][i].Type = objectType
			return
		}
	}
	s.ownedObjects[addressOwner.Address] = append(s.ownedObjects[addressOwner.Address], OwnedObjectInfo{
		ObjectID: objectID,
		Type:     objectType,
	})
}

// removeFromOwnershipListing drops the Object from the listing of the given Address. The caller has to hold the
// ownedObjectsMutex.
func (s *Store) removeFromOwnershipListing(owner ledgerstate.Address, objectID ledgerstate.ObjectID) {
	listing := s.ownedObjects[owner]
	for i, ownedObject := range listing {
		if ownedObject.ObjectID == objectID {
			s.ownedObjects[owner] = append(listing[:i], listing[i+1:]...)
			return
		}
	}
}

// code contract (make sure the type implements all required methods)
var _ Reader = &Store{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
