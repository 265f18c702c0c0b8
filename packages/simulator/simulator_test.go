package simulator

import (
	"testing"

	"github.com/iotaledger/hive.go/kvstore/mapdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amberledger/goamber/packages/chainstate"
	"github.com/amberledger/goamber/packages/ledgerstate"
)

func newTestStore() *chainstate.Store {
	return chainstate.NewStore(mapdb.NewMapDB(), "amber-testnet", chainstate.SystemStateSummary{
		Epoch:             1,
		ProtocolVersion:   3,
		ReferenceGasPrice: 1000,
	})
}

func TestSimulateTransaction(t *testing.T) {
	store := newTestStore()
	simulator := New(store)

	sender := ledgerstate.NewAddress([]byte("sender"))
	transaction := &ledgerstate.TransactionData{
		Sender: sender,
		GasData: ledgerstate.GasData{
			Owner:  sender,
			Price:  1000,
			Budget: 10_000_000,
		},
		Transaction: ledgerstate.ProgrammableTransaction{
			Inputs: []ledgerstate.CallArg{&ledgerstate.PureCallArg{Value: []byte{1}}},
			Commands: []ledgerstate.Command{
				&ledgerstate.SplitCoins{Coin: ledgerstate.NewGasCoinArgument(), Amounts: []ledgerstate.Argument{ledgerstate.NewInputArgument(0)}},
			},
		},
	}

	result, err := simulator.SimulateTransaction(transaction)
	require.NoError(t, err)
	assert.True(t, result.Effects.Success)

	// one command plus the base charge, at the declared gas price
	assert.Equal(t, uint64(1000*computationUnitsPerCommand*2), result.Effects.GasCostSummary.ComputationCost)
	assert.Equal(t, uint64(storagePricePerByte*len(transaction.Bytes())), result.Effects.GasCostSummary.StorageCost)
}

func TestSimulateTransactionValidatesInputs(t *testing.T) {
	store := newTestStore()
	simulator := New(store)

	owner := ledgerstate.NewAddress([]byte("owner"))
	coin := ledgerstate.NewGasCoinObject(testObjectID(1), 2, owner, 100)
	require.NoError(t, store.AddObject(coin))

	shared := ledgerstate.NewObject(testObjectID(2), 1, &ledgerstate.SharedOwner{InitialSharedVersion: 1}, &ledgerstate.MoveObject{ObjectType: "0x2::vault::Vault", Contents: []byte{1}})
	require.NoError(t, store.AddObject(shared))

	transaction := func(input ledgerstate.CallArg) *ledgerstate.TransactionData {
		return &ledgerstate.TransactionData{
			GasData:     ledgerstate.GasData{Price: 1},
			Transaction: ledgerstate.ProgrammableTransaction{Inputs: []ledgerstate.CallArg{input}},
		}
	}

	// valid inputs succeed
	result, err := simulator.SimulateTransaction(transaction(&ledgerstate.ImmOrOwnedObjectCallArg{Reference: coin.ComputeObjectReference()}))
	require.NoError(t, err)
	assert.True(t, result.Effects.Success)

	result, err = simulator.SimulateTransaction(transaction(&ledgerstate.SharedObjectCallArg{ID: shared.ID(), InitialSharedVersion: 1, Mutable: true}))
	require.NoError(t, err)
	assert.True(t, result.Effects.Success)

	// a stale digest makes the dry run fail without returning an error
	staleReference := ledgerstate.NewObjectReference(coin.ID(), coin.Version(), ledgerstate.NewDigest([]byte("stale")))
	result, err = simulator.SimulateTransaction(transaction(&ledgerstate.ImmOrOwnedObjectCallArg{Reference: staleReference}))
	require.NoError(t, err)
	assert.False(t, result.Effects.Success)

	// same for a missing object
	missingReference := ledgerstate.NewObjectReference(testObjectID(9), 1, ledgerstate.EmptyDigest)
	result, err = simulator.SimulateTransaction(transaction(&ledgerstate.ImmOrOwnedObjectCallArg{Reference: missingReference}))
	require.NoError(t, err)
	assert.False(t, result.Effects.Success)

	// and for a shared input that references a non-shared object
	result, err = simulator.SimulateTransaction(transaction(&ledgerstate.SharedObjectCallArg{ID: coin.ID(), InitialSharedVersion: 1, Mutable: false}))
	require.NoError(t, err)
	assert.False(t, result.Effects.Success)
}

func TestSimulateNilTransaction(t *testing.T) {
	simulator := New(newTestStore())
	_, err := simulator.SimulateTransaction(nil)
	require.Error(t, err)
}

// testObjectID returns a deterministic ObjectID derived from the given seed.
func testObjectID(seed byte) (objectID ledgerstate.ObjectID) {
	for i := range objectID {
		objectID[i] = seed
	}

	return
}
