package ledgerstate

import (
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"golang.org/x/xerrors"
)

// region GasCoin //////////////////////////////////////////////////////////////////////////////////////////////////////

// NewGasCoinObject creates an address-owned Object that holds the given gas coin balance.
func NewGasCoinObject(id ObjectID, version Version, owner Address, balance uint64) *Object {
	return NewObject(id, version, &AddressOwner{Address: owner}, &MoveObject{
		ObjectType: GasCoinTypeTag,
		Contents:   marshalutil.New(marshalutil.Uint64Size).WriteUint64(balance).Bytes(),
	})
}

// GasCoinValue extracts the balance of a gas coin Object. It fails if the Object is not a gas coin.
func GasCoinValue(object *Object) (balance uint64, err error) {
	moveObject, isMoveObject := object.AsMoveObject()
	if !isMoveObject || !moveObject.ObjectType.IsGasCoin() {
		err = xerrors.Errorf("object %s is not a gas coin: %w", object.ID(), cerrors.ErrParseBytesFailed)
		return
	}

	if balance, err = marshalutil.New(moveObject.Contents).ReadUint64(); err != nil {
		err = xerrors.Errorf("failed to parse gas coin balance (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	return
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
