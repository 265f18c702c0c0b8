package ledgerstate

import (
	"testing"

	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgument(t *testing.T) {
	gasCoin := NewGasCoinArgument()
	assert.Equal(t, GasCoinArgumentType, gasCoin.Type())
	assert.False(t, gasCoin.ReferencesInput(0))

	input := NewInputArgument(3)
	assert.Equal(t, InputArgumentType, input.Type())
	assert.True(t, input.ReferencesInput(3))
	assert.False(t, input.ReferencesInput(4))

	nestedResult := NewNestedResultArgument(1, 2)
	assert.Equal(t, NestedResultArgumentType, nestedResult.Type())
	assert.Equal(t, uint16(1), nestedResult.Index())
	assert.Equal(t, uint16(2), nestedResult.ResultIndex())

	for _, argument := range []Argument{gasCoin, input, NewResultArgument(5), nestedResult} {
		restored, err := ArgumentFromMarshalUtil(marshalutil.New(argument.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, argument, restored)
	}
}

func TestMoveCallMarshaling(t *testing.T) {
	moveCall := &MoveCall{
		Package:       randomObjectID(9),
		Module:        "vault",
		Function:      "deposit",
		TypeArguments: []TypeTag{GasCoinTypeTag},
		Arguments:     []Argument{NewInputArgument(0), NewGasCoinArgument()},
	}

	restored, consumedBytes, err := CommandFromBytes(moveCall.Bytes())
	require.NoError(t, err)
	assert.Equal(t, len(moveCall.Bytes()), consumedBytes)

	restoredMoveCall, isMoveCall := restored.(*MoveCall)
	require.True(t, isMoveCall)
	assert.Equal(t, moveCall.Package, restoredMoveCall.Package)
	assert.Equal(t, moveCall.Module, restoredMoveCall.Module)
	assert.Equal(t, moveCall.Function, restoredMoveCall.Function)
	assert.Equal(t, moveCall.TypeArguments, restoredMoveCall.TypeArguments)
	assert.Equal(t, moveCall.Arguments, restoredMoveCall.Arguments)
}

func TestCommandMarshaling(t *testing.T) {
	elementType := GasCoinTypeTag
	commands := []Command{
		&TransferObjects{Objects: []Argument{NewInputArgument(0)}, Address: NewInputArgument(1)},
		&SplitCoins{Coin: NewGasCoinArgument(), Amounts: []Argument{NewInputArgument(0)}},
		&MergeCoins{Coin: NewInputArgument(0), CoinsToMerge: []Argument{NewInputArgument(1), NewInputArgument(2)}},
		&MakeMoveVector{ElementType: &elementType, Elements: []Argument{NewInputArgument(0)}},
		&MakeMoveVector{Elements: []Argument{NewResultArgument(0)}},
		&Publish{Modules: [][]byte{{1, 2, 3}}, Dependencies: []ObjectID{randomObjectID(2)}},
		&Upgrade{Modules: [][]byte{{4, 5}}, Dependencies: []ObjectID{randomObjectID(2)}, Package: randomObjectID(3), Ticket: NewInputArgument(0)},
	}

	for _, command := range commands {
		restored, _, err := CommandFromBytes(command.Bytes())
		require.NoError(t, err, "failed to restore %s", command)
		assert.Equal(t, command.Type(), restored.Type())
		assert.Equal(t, command.Bytes(), restored.Bytes())
	}
}

func TestCallArgMarshaling(t *testing.T) {
	reference := NewObjectReference(randomObjectID(6), 12, NewDigest([]byte("contents")))
	callArgs := []CallArg{
		&PureCallArg{Value: []byte{1, 2, 3}},
		&ImmOrOwnedObjectCallArg{Reference: reference},
		&SharedObjectCallArg{ID: randomObjectID(8), InitialSharedVersion: 4, Mutable: true},
		&ReceivingObjectCallArg{Reference: reference},
	}

	for _, callArg := range callArgs {
		restored, _, err := CallArgFromBytes(callArg.Bytes())
		require.NoError(t, err, "failed to restore %s", callArg)
		assert.Equal(t, callArg.Type(), restored.Type())
		assert.Equal(t, callArg.Bytes(), restored.Bytes())
	}
}

func TestTransactionDataMarshaling(t *testing.T) {
	epoch := uint64(12)
	reference := NewObjectReference(randomObjectID(1), 3, NewDigest([]byte("gas coin")))

	transaction := &TransactionData{
		Sender: NewAddress([]byte("sender")),
		GasData: GasData{
			Payment: []ObjectReference{reference},
			Owner:   NewAddress([]byte("sender")),
			Price:   1000,
			Budget:  2000000,
		},
		Expiration: TransactionExpiration{Epoch: &epoch},
		Transaction: ProgrammableTransaction{
			Inputs: []CallArg{
				&PureCallArg{Value: []byte{42}},
				&ImmOrOwnedObjectCallArg{Reference: NewObjectReference(randomObjectID(2), 1, NewDigest([]byte("input")))},
			},
			Commands: []Command{
				&TransferObjects{Objects: []Argument{NewInputArgument(1)}, Address: NewInputArgument(0)},
			},
		},
	}

	restored, consumedBytes, err := TransactionDataFromBytes(transaction.Bytes())
	require.NoError(t, err)
	assert.Equal(t, len(transaction.Bytes()), consumedBytes)
	assert.Equal(t, transaction.Bytes(), restored.Bytes())
	assert.Equal(t, transaction.ID(), restored.ID())
}

func TestTransactionDataInputObjectIDs(t *testing.T) {
	ownedID := randomObjectID(2)
	transaction := &TransactionData{
		Transaction: ProgrammableTransaction{
			Inputs: []CallArg{
				&PureCallArg{Value: []byte{1}},
				&ImmOrOwnedObjectCallArg{Reference: NewObjectReference(ownedID, 1, EmptyDigest)},
				&SharedObjectCallArg{ID: randomObjectID(3), InitialSharedVersion: 1, Mutable: true},
			},
		},
	}

	// only directly owned object inputs count, pure and shared inputs don't
	assert.Equal(t, []ObjectID{ownedID}, transaction.InputObjectIDs())
}
