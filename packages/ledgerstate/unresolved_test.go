package ledgerstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnresolvedTransactionMarshaling(t *testing.T) {
	version := Version(7)
	digest := NewDigest([]byte("digest"))
	price := uint64(1000)
	mutable := false

	sharedArgument := NewUnresolvedSharedArgument(randomObjectID(3))
	sharedArgument.Mutable = &mutable

	transaction := &UnresolvedTransaction{
		Sender: NewAddress([]byte("sender")),
		GasPayment: UnresolvedGasPayment{
			Objects: []UnresolvedObjectReference{{ID: randomObjectID(1), Version: &version, Digest: &digest}},
			Price:   &price,
		},
		PTB: UnresolvedProgrammableTransaction{
			Inputs: []UnresolvedInputArgument{
				NewUnresolvedPureArgument([]byte{1, 2, 3}),
				NewUnresolvedImmOrOwnedArgument(UnresolvedObjectReference{ID: randomObjectID(2)}),
				sharedArgument,
				NewUnresolvedReceivingArgument(UnresolvedObjectReference{ID: randomObjectID(4), Version: &version}),
			},
			Commands: []Command{
				&SplitCoins{Coin: NewGasCoinArgument(), Amounts: []Argument{NewInputArgument(0)}},
			},
		},
	}

	restored, consumedBytes, err := UnresolvedTransactionFromBytes(transaction.Bytes())
	require.NoError(t, err)
	assert.Equal(t, len(transaction.Bytes()), consumedBytes)
	assert.Equal(t, transaction.Bytes(), restored.Bytes())

	assert.Equal(t, transaction.Sender, restored.Sender)
	require.Len(t, restored.GasPayment.Objects, 1)
	require.NotNil(t, restored.GasPayment.Objects[0].Version)
	assert.Equal(t, version, *restored.GasPayment.Objects[0].Version)
	require.NotNil(t, restored.GasPayment.Price)
	assert.Equal(t, price, *restored.GasPayment.Price)
	assert.Nil(t, restored.GasPayment.Budget)

	restoredShared, isShared := restored.PTB.Inputs[2].(*UnresolvedSharedArgument)
	require.True(t, isShared)
	assert.Nil(t, restoredShared.InitialSharedVersion)
	require.NotNil(t, restoredShared.Mutable)
	assert.False(t, *restoredShared.Mutable)
}
