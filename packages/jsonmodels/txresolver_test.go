package jsonmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amberledger/goamber/packages/ledgerstate"
	"github.com/amberledger/goamber/packages/txresolver"
)

func TestArgumentConversion(t *testing.T) {
	arguments := []ledgerstate.Argument{
		ledgerstate.NewGasCoinArgument(),
		ledgerstate.NewInputArgument(3),
		ledgerstate.NewResultArgument(1),
		ledgerstate.NewNestedResultArgument(1, 2),
	}

	for _, argument := range arguments {
		converted, err := NewArgument(argument).ToLedgerstateArgument()
		require.NoError(t, err)
		assert.Equal(t, argument, converted)
	}

	_, err := (&Argument{Type: "bogus"}).ToLedgerstateArgument()
	require.Error(t, err)
}

func TestCommandConversion(t *testing.T) {
	elementType := ledgerstate.GasCoinTypeTag
	commands := []ledgerstate.Command{
		&ledgerstate.MoveCall{
			Package:       testObjectID(1),
			Module:        "vault",
			Function:      "deposit",
			TypeArguments: []ledgerstate.TypeTag{ledgerstate.GasCoinTypeTag},
			Arguments:     []ledgerstate.Argument{ledgerstate.NewInputArgument(0)},
		},
		&ledgerstate.TransferObjects{Objects: []ledgerstate.Argument{ledgerstate.NewInputArgument(0)}, Address: ledgerstate.NewInputArgument(1)},
		&ledgerstate.SplitCoins{Coin: ledgerstate.NewGasCoinArgument(), Amounts: []ledgerstate.Argument{ledgerstate.NewInputArgument(0)}},
		&ledgerstate.MergeCoins{Coin: ledgerstate.NewInputArgument(0), CoinsToMerge: []ledgerstate.Argument{ledgerstate.NewInputArgument(1)}},
		&ledgerstate.MakeMoveVector{ElementType: &elementType, Elements: []ledgerstate.Argument{ledgerstate.NewInputArgument(0)}},
		&ledgerstate.Publish{Modules: [][]byte{{1, 2}}, Dependencies: []ledgerstate.ObjectID{testObjectID(2)}},
		&ledgerstate.Upgrade{Modules: [][]byte{{3}}, Dependencies: []ledgerstate.ObjectID{testObjectID(2)}, Package: testObjectID(3), Ticket: ledgerstate.NewInputArgument(0)},
	}

	for _, command := range commands {
		converted, err := NewCommand(command).ToLedgerstateCommand()
		require.NoError(t, err, "failed to convert %s", command)
		assert.Equal(t, command.Bytes(), converted.Bytes())
	}

	_, err := (&Command{Type: "bogus"}).ToLedgerstateCommand()
	require.Error(t, err)
}

func TestUnresolvedTransactionRequestConversion(t *testing.T) {
	sender := ledgerstate.NewAddress([]byte("sender"))
	objectID := testObjectID(1)
	version := "3"
	budget := "2000000"
	mutable := true

	request := &UnresolvedTransactionRequest{
		Sender: sender.Base58(),
		GasPayment: &UnresolvedGasPayment{
			Objects: []*UnresolvedObjectReference{{ObjectID: testObjectID(2).Base58(), Version: &version}},
			Budget:  &budget,
		},
		Inputs: []*UnresolvedInput{
			{Type: "pure", Value: []byte{1, 2, 3}},
			{Type: "immOrOwned", ObjectID: objectID.Base58()},
			{Type: "shared", ObjectID: objectID.Base58(), Mutable: &mutable},
			{Type: "receiving", ObjectID: objectID.Base58(), Version: &version},
		},
		Commands: []*Command{
			{Type: "splitCoins", Coin: &Argument{Type: "gasCoin"}, Amounts: []*Argument{{Type: "input", Index: 0}}},
		},
	}

	transaction, err := request.ToLedgerstateTransaction()
	require.NoError(t, err)

	assert.Equal(t, sender, transaction.Sender)
	require.NotNil(t, transaction.GasPayment.Budget)
	assert.Equal(t, uint64(2000000), *transaction.GasPayment.Budget)
	assert.Nil(t, transaction.GasPayment.Price)
	require.Len(t, transaction.GasPayment.Objects, 1)
	require.NotNil(t, transaction.GasPayment.Objects[0].Version)
	assert.Equal(t, ledgerstate.Version(3), *transaction.GasPayment.Objects[0].Version)

	require.Len(t, transaction.PTB.Inputs, 4)
	assert.IsType(t, &ledgerstate.UnresolvedPureArgument{}, transaction.PTB.Inputs[0])
	assert.IsType(t, &ledgerstate.UnresolvedImmOrOwnedArgument{}, transaction.PTB.Inputs[1])

	shared, isShared := transaction.PTB.Inputs[2].(*ledgerstate.UnresolvedSharedArgument)
	require.True(t, isShared)
	assert.Equal(t, objectID, shared.ID)
	require.NotNil(t, shared.Mutable)
	assert.True(t, *shared.Mutable)

	require.Len(t, transaction.PTB.Commands, 1)
	assert.IsType(t, &ledgerstate.SplitCoins{}, transaction.PTB.Commands[0])
}

func TestUnresolvedTransactionRequestRejectsMalformedFields(t *testing.T) {
	valid := func() *UnresolvedTransactionRequest {
		return &UnresolvedTransactionRequest{Sender: ledgerstate.NewAddress([]byte("sender")).Base58()}
	}

	request := valid()
	request.Sender = "not-base58!"
	_, err := request.ToLedgerstateTransaction()
	require.Error(t, err)

	request = valid()
	request.Inputs = []*UnresolvedInput{{Type: "bogus"}}
	_, err = request.ToLedgerstateTransaction()
	require.Error(t, err)

	request = valid()
	badBudget := "lots"
	request.GasPayment = &UnresolvedGasPayment{Budget: &badBudget}
	_, err = request.ToLedgerstateTransaction()
	require.Error(t, err)
}

func TestNewResolveTransactionResponse(t *testing.T) {
	sender := ledgerstate.NewAddress([]byte("sender"))
	transaction := &ledgerstate.TransactionData{
		Sender: sender,
		GasData: ledgerstate.GasData{
			Payment: []ledgerstate.ObjectReference{ledgerstate.NewObjectReference(testObjectID(1), 2, ledgerstate.NewDigest([]byte("coin")))},
			Owner:   sender,
			Price:   1000,
			Budget:  2000000,
		},
		Transaction: ledgerstate.ProgrammableTransaction{
			Inputs:   []ledgerstate.CallArg{&ledgerstate.PureCallArg{Value: []byte{1}}},
			Commands: []ledgerstate.Command{&ledgerstate.SplitCoins{Coin: ledgerstate.NewGasCoinArgument(), Amounts: []ledgerstate.Argument{ledgerstate.NewInputArgument(0)}}},
		},
	}

	response := NewResolveTransactionResponse(&txresolver.Result{
		Transaction: transaction,
		Simulation: &txresolver.SimulationResult{Effects: txresolver.Effects{
			Success:        true,
			GasCostSummary: txresolver.GasCostSummary{ComputationCost: 42},
		}},
	})

	require.NotNil(t, response.Transaction)
	assert.Equal(t, transaction.ID().Base58(), response.Transaction.TransactionID)
	assert.Equal(t, sender.Base58(), response.Transaction.Sender)
	assert.Equal(t, "2000000", response.Transaction.GasData.Budget)
	assert.Equal(t, transaction.Bytes(), response.Transaction.Bytes)
	require.Len(t, response.Transaction.Inputs, 1)
	assert.Equal(t, "pure", response.Transaction.Inputs[0].Type)

	require.NotNil(t, response.Simulation)
	assert.True(t, response.Simulation.Success)
	assert.Equal(t, "42", response.Simulation.GasCostSummary.ComputationCost)
}

// testObjectID returns a deterministic ObjectID derived from the given seed.
func testObjectID(seed byte) (objectID ledgerstate.ObjectID) {
	for i := range objectID {
		objectID[i] = seed
	}

	return
}
