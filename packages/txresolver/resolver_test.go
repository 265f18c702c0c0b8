package txresolver

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/kvstore/mapdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amberledger/goamber/packages/chainstate"
	"github.com/amberledger/goamber/packages/ledgerstate"
	"github.com/amberledger/goamber/packages/moveformat"
)

const testReferenceGasPrice = 1000

func TestResolveTransactionNoExecutor(t *testing.T) {
	f := newTestFramework(t)
	resolver := NewResolver(f.store, nil)

	_, err := resolver.ResolveTransaction(f.transactionWithBudget(100), false)
	require.True(t, errors.Is(err, ErrInternal))
}

func TestResolveTransactionUnsupportedProtocolVersion(t *testing.T) {
	f := newTestFramework(t)
	f.store.UpdateSystemStateSummary(chainstate.SystemStateSummary{Epoch: 1, ProtocolVersion: 99, ReferenceGasPrice: testReferenceGasPrice})

	_, err := f.resolver.ResolveTransaction(f.transactionWithBudget(100), false)
	require.True(t, errors.Is(err, ErrInternal))
}

func TestResolveObjectReferenceLatestVersion(t *testing.T) {
	f := newTestFramework(t)
	f.addGasCoin(1, 1, 100)
	f.addGasCoin(9, 1, 1_000_000_000)

	object := f.addOwnedObject(2, 3)
	transaction := f.transactionWithBudget(100)
	transaction.PTB.Inputs = []ledgerstate.UnresolvedInputArgument{
		ledgerstate.NewUnresolvedImmOrOwnedArgument(ledgerstate.UnresolvedObjectReference{ID: object.ID()}),
	}

	result, err := f.resolver.ResolveTransaction(transaction, false)
	require.NoError(t, err)

	resolvedInput, isOwned := result.Transaction.Transaction.Inputs[0].(*ledgerstate.ImmOrOwnedObjectCallArg)
	require.True(t, isOwned)
	assert.Equal(t, object.ID(), resolvedInput.Reference.ID())
	assert.Equal(t, ledgerstate.Version(3), resolvedInput.Reference.Version())
	assert.Equal(t, object.ComputeDigest(), resolvedInput.Reference.Digest())

	// resolving the same transaction twice yields the same result as long as the chain state doesn't change
	secondResult, err := f.resolver.ResolveTransaction(transaction, false)
	require.NoError(t, err)
	assert.Equal(t, result.Transaction.Bytes(), secondResult.Transaction.Bytes())
}

func TestResolveObjectReferenceExactVersion(t *testing.T) {
	f := newTestFramework(t)
	f.addGasCoin(9, 1, 1_000_000_000)

	oldObject := f.addOwnedObject(2, 3)
	f.addOwnedObject(2, 4)

	version := ledgerstate.Version(3)
	transaction := f.transactionWithBudget(100)
	transaction.PTB.Inputs = []ledgerstate.UnresolvedInputArgument{
		ledgerstate.NewUnresolvedImmOrOwnedArgument(ledgerstate.UnresolvedObjectReference{ID: oldObject.ID(), Version: &version}),
	}

	result, err := f.resolver.ResolveTransaction(transaction, false)
	require.NoError(t, err)

	resolvedInput := result.Transaction.Transaction.Inputs[0].(*ledgerstate.ImmOrOwnedObjectCallArg)
	assert.Equal(t, ledgerstate.Version(3), resolvedInput.Reference.Version())
	assert.Equal(t, oldObject.ComputeDigest(), resolvedInput.Reference.Digest())
}

func TestResolveObjectReferenceDigestMismatch(t *testing.T) {
	f := newTestFramework(t)
	f.addGasCoin(9, 1, 1_000_000_000)

	object := f.addOwnedObject(2, 3)
	wrongDigest := ledgerstate.NewDigest([]byte("something else"))

	transaction := f.transactionWithBudget(100)
	transaction.PTB.Inputs = []ledgerstate.UnresolvedInputArgument{
		ledgerstate.NewUnresolvedImmOrOwnedArgument(ledgerstate.UnresolvedObjectReference{ID: object.ID(), Digest: &wrongDigest}),
	}

	_, err := f.resolver.ResolveTransaction(transaction, false)
	require.True(t, errors.Is(err, ErrInvalidInput))
}

func TestResolveObjectReferenceNotFound(t *testing.T) {
	f := newTestFramework(t)
	f.addGasCoin(9, 1, 1_000_000_000)

	transaction := f.transactionWithBudget(100)
	transaction.PTB.Inputs = []ledgerstate.UnresolvedInputArgument{
		ledgerstate.NewUnresolvedImmOrOwnedArgument(ledgerstate.UnresolvedObjectReference{ID: testObjectID(77)}),
	}

	_, err := f.resolver.ResolveTransaction(transaction, false)
	require.True(t, errors.Is(err, ErrObjectNotFound))

	// same for an exact version of an existing object
	object := f.addOwnedObject(2, 3)
	missingVersion := ledgerstate.Version(7)
	transaction.PTB.Inputs = []ledgerstate.UnresolvedInputArgument{
		ledgerstate.NewUnresolvedImmOrOwnedArgument(ledgerstate.UnresolvedObjectReference{ID: object.ID(), Version: &missingVersion}),
	}

	_, err = f.resolver.ResolveTransaction(transaction, false)
	require.True(t, errors.Is(err, ErrObjectNotFound))
}

func TestResolveCalledPackages(t *testing.T) {
	f := newTestFramework(t)
	f.addGasCoin(9, 1, 1_000_000_000)

	// a MoveCall against a missing package
	transaction := f.transactionWithBudget(100)
	transaction.PTB.Commands = []ledgerstate.Command{
		&ledgerstate.MoveCall{Package: testObjectID(50), Module: "vault", Function: "deposit"},
	}
	_, err := f.resolver.ResolveTransaction(transaction, false)
	require.True(t, errors.Is(err, ErrObjectNotFound))

	// a MoveCall against an object that is not a package
	coin := f.addGasCoin(3, 1, 10)
	transaction.PTB.Commands = []ledgerstate.Command{
		&ledgerstate.MoveCall{Package: coin.ID(), Module: "vault", Function: "deposit"},
	}
	_, err = f.resolver.ResolveTransaction(transaction, false)
	require.True(t, errors.Is(err, ErrInvalidInput))

	// a package with undecodable module bytecode
	brokenPackage := ledgerstate.NewObject(testObjectID(51), 1, &ledgerstate.ImmutableOwner{}, &ledgerstate.MovePackage{
		Modules: map[string][]byte{"vault": {0xFF, 0xFF}},
	})
	require.NoError(t, f.store.AddObject(brokenPackage))
	transaction.PTB.Commands = []ledgerstate.Command{
		&ledgerstate.MoveCall{Package: brokenPackage.ID(), Module: "vault", Function: "deposit"},
	}
	_, err = f.resolver.ResolveTransaction(transaction, false)
	require.True(t, errors.Is(err, ErrInternal))
}

func TestResolveSharedArgumentMutability(t *testing.T) {
	f := newTestFramework(t)
	f.addGasCoin(9, 1, 1_000_000_000)
	packageID := f.addVaultPackage(40)

	tests := []struct {
		name     string
		commands func(shared ledgerstate.Argument) []ledgerstate.Command
		mutable  bool
	}{
		{
			name: "read only reference parameter",
			commands: func(shared ledgerstate.Argument) []ledgerstate.Command {
				return []ledgerstate.Command{&ledgerstate.MoveCall{Package: packageID, Module: "vault", Function: "peek", Arguments: []ledgerstate.Argument{shared}}}
			},
			mutable: false,
		},
		{
			name: "mutable reference parameter",
			commands: func(shared ledgerstate.Argument) []ledgerstate.Command {
				return []ledgerstate.Command{&ledgerstate.MoveCall{Package: packageID, Module: "vault", Function: "deposit", Arguments: []ledgerstate.Argument{shared, ledgerstate.NewGasCoinArgument()}}}
			},
			mutable: true,
		},
		{
			name: "owned struct parameter",
			commands: func(shared ledgerstate.Argument) []ledgerstate.Command {
				return []ledgerstate.Command{&ledgerstate.MoveCall{Package: packageID, Module: "vault", Function: "consume", Arguments: []ledgerstate.Argument{shared}}}
			},
			mutable: true,
		},
		{
			name: "split coins always mutates",
			commands: func(shared ledgerstate.Argument) []ledgerstate.Command {
				return []ledgerstate.Command{&ledgerstate.SplitCoins{Coin: shared, Amounts: []ledgerstate.Argument{ledgerstate.NewInputArgument(1)}}}
			},
			mutable: true,
		},
		{
			name: "merge coins always mutates",
			commands: func(shared ledgerstate.Argument) []ledgerstate.Command {
				return []ledgerstate.Command{&ledgerstate.MergeCoins{Coin: ledgerstate.NewGasCoinArgument(), CoinsToMerge: []ledgerstate.Argument{shared}}}
			},
			mutable: true,
		},
		{
			name: "make move vector always mutates",
			commands: func(shared ledgerstate.Argument) []ledgerstate.Command {
				return []ledgerstate.Command{&ledgerstate.MakeMoveVector{Elements: []ledgerstate.Argument{shared}}}
			},
			mutable: true,
		},
		{
			name: "transfer objects doesn't mutate",
			commands: func(shared ledgerstate.Argument) []ledgerstate.Command {
				return []ledgerstate.Command{&ledgerstate.TransferObjects{Objects: []ledgerstate.Argument{shared}, Address: ledgerstate.NewGasCoinArgument()}}
			},
			mutable: false,
		},
		{
			name: "read only use after mutable use stays mutable",
			commands: func(shared ledgerstate.Argument) []ledgerstate.Command {
				return []ledgerstate.Command{
					&ledgerstate.MoveCall{Package: packageID, Module: "vault", Function: "deposit", Arguments: []ledgerstate.Argument{shared, ledgerstate.NewGasCoinArgument()}},
					&ledgerstate.MoveCall{Package: packageID, Module: "vault", Function: "peek", Arguments: []ledgerstate.Argument{shared}},
				}
			},
			mutable: true,
		},
	}

	for i, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sharedObject := f.addSharedObject(byte(100+i), 5)

			transaction := f.transactionWithBudget(100)
			transaction.PTB.Inputs = []ledgerstate.UnresolvedInputArgument{
				ledgerstate.NewUnresolvedSharedArgument(sharedObject.ID()),
			}
			transaction.PTB.Commands = test.commands(ledgerstate.NewInputArgument(0))

			result, err := f.resolver.ResolveTransaction(transaction, false)
			require.NoError(t, err)

			resolvedInput, isShared := result.Transaction.Transaction.Inputs[0].(*ledgerstate.SharedObjectCallArg)
			require.True(t, isShared)
			assert.Equal(t, sharedObject.ID(), resolvedInput.ID)
			assert.Equal(t, ledgerstate.Version(5), resolvedInput.InitialSharedVersion)
			assert.Equal(t, test.mutable, resolvedInput.Mutable)
		})
	}
}

func TestResolveSharedArgumentIgnoresCallerAssertion(t *testing.T) {
	f := newTestFramework(t)
	f.addGasCoin(9, 1, 1_000_000_000)
	packageID := f.addVaultPackage(40)
	sharedObject := f.addSharedObject(41, 5)

	// the caller claims the input is mutable but its only use is read only
	claimedMutable := true
	claimedVersion := ledgerstate.Version(99)
	sharedArgument := ledgerstate.NewUnresolvedSharedArgument(sharedObject.ID())
	sharedArgument.Mutable = &claimedMutable
	sharedArgument.InitialSharedVersion = &claimedVersion

	transaction := f.transactionWithBudget(100)
	transaction.PTB.Inputs = []ledgerstate.UnresolvedInputArgument{sharedArgument}
	transaction.PTB.Commands = []ledgerstate.Command{
		&ledgerstate.MoveCall{Package: packageID, Module: "vault", Function: "peek", Arguments: []ledgerstate.Argument{ledgerstate.NewInputArgument(0)}},
	}

	result, err := f.resolver.ResolveTransaction(transaction, false)
	require.NoError(t, err)

	resolvedInput := result.Transaction.Transaction.Inputs[0].(*ledgerstate.SharedObjectCallArg)
	assert.False(t, resolvedInput.Mutable)
	assert.Equal(t, ledgerstate.Version(5), resolvedInput.InitialSharedVersion)
}

func TestResolveSharedArgumentErrors(t *testing.T) {
	f := newTestFramework(t)
	f.addGasCoin(9, 1, 1_000_000_000)
	packageID := f.addVaultPackage(40)

	// the referenced object is not shared
	coin := f.addGasCoin(3, 1, 10)
	transaction := f.transactionWithBudget(100)
	transaction.PTB.Inputs = []ledgerstate.UnresolvedInputArgument{ledgerstate.NewUnresolvedSharedArgument(coin.ID())}
	_, err := f.resolver.ResolveTransaction(transaction, false)
	require.True(t, errors.Is(err, ErrInvalidInput))

	// the referenced object doesn't exist
	transaction.PTB.Inputs = []ledgerstate.UnresolvedInputArgument{ledgerstate.NewUnresolvedSharedArgument(testObjectID(77))}
	_, err = f.resolver.ResolveTransaction(transaction, false)
	require.True(t, errors.Is(err, ErrObjectNotFound))

	// the called function doesn't exist
	sharedObject := f.addSharedObject(41, 5)
	transaction.PTB.Inputs = []ledgerstate.UnresolvedInputArgument{ledgerstate.NewUnresolvedSharedArgument(sharedObject.ID())}
	transaction.PTB.Commands = []ledgerstate.Command{
		&ledgerstate.MoveCall{Package: packageID, Module: "vault", Function: "withdraw", Arguments: []ledgerstate.Argument{ledgerstate.NewInputArgument(0)}},
	}
	_, err = f.resolver.ResolveTransaction(transaction, false)
	require.True(t, errors.Is(err, ErrInvalidInput))

	// the input is bound to a parameter position the function doesn't have
	transaction.PTB.Commands = []ledgerstate.Command{
		&ledgerstate.MoveCall{Package: packageID, Module: "vault", Function: "peek", Arguments: []ledgerstate.Argument{ledgerstate.NewGasCoinArgument(), ledgerstate.NewInputArgument(0)}},
	}
	_, err = f.resolver.ResolveTransaction(transaction, false)
	require.True(t, errors.Is(err, ErrInvalidInput))
}

func TestResolveGasDataDefaults(t *testing.T) {
	f := newTestFramework(t)
	f.addGasCoin(1, 1, 1_000_000_000)

	result, err := f.resolver.ResolveTransaction(f.transactionWithBudget(100), false)
	require.NoError(t, err)

	// the sender pays with the reference gas price unless specified otherwise
	assert.Equal(t, f.sender, result.Transaction.GasData.Owner)
	assert.Equal(t, uint64(testReferenceGasPrice), result.Transaction.GasData.Price)
	assert.Equal(t, uint64(100), result.Transaction.GasData.Budget)

	// an explicit price and owner are kept
	otherOwner := ledgerstate.NewAddress([]byte("sponsor"))
	f.addGasCoinOwnedBy(2, 1, otherOwner, 1_000_000_000)

	price := uint64(1234)
	transaction := f.transactionWithBudget(100)
	transaction.GasPayment.Price = &price
	transaction.GasPayment.Owner = otherOwner

	result, err = f.resolver.ResolveTransaction(transaction, false)
	require.NoError(t, err)
	assert.Equal(t, otherOwner, result.Transaction.GasData.Owner)
	assert.Equal(t, price, result.Transaction.GasData.Price)
}

func TestResolveGasDataExplicitPayment(t *testing.T) {
	f := newTestFramework(t)
	coin := f.addGasCoin(1, 2, 500)

	transaction := f.transactionWithBudget(100)
	transaction.GasPayment.Objects = []ledgerstate.UnresolvedObjectReference{{ID: coin.ID()}}

	result, err := f.resolver.ResolveTransaction(transaction, false)
	require.NoError(t, err)

	require.Len(t, result.Transaction.GasData.Payment, 1)
	assert.Equal(t, coin.ComputeObjectReference(), result.Transaction.GasData.Payment[0])

	// with an explicit budget and payment there is nothing to estimate or select
	assert.Zero(t, f.executor.calls)
}

func TestEstimateGasBudget(t *testing.T) {
	safeOverhead := uint64(gasSafeOverhead * testReferenceGasPrice)

	// computation dominated: the estimate is the padded computation cost
	budget := estimateGasBudget(GasCostSummary{ComputationCost: 5_000_000, StorageCost: 10}, testReferenceGasPrice)
	assert.Equal(t, 5_000_000+safeOverhead, budget)

	// storage dominated: the estimate is the padded net gas usage
	budget = estimateGasBudget(GasCostSummary{ComputationCost: 100, StorageCost: 9_000_000}, testReferenceGasPrice)
	assert.Equal(t, 100+9_000_000+safeOverhead, budget)

	// a rebate larger than the costs never drives the estimate below the padded computation cost
	budget = estimateGasBudget(GasCostSummary{ComputationCost: 100, StorageCost: 50, StorageRebate: 10_000_000}, testReferenceGasPrice)
	assert.Equal(t, 100+safeOverhead, budget)
}

func TestResolveBudgetEstimation(t *testing.T) {
	f := newTestFramework(t)
	f.addGasCoin(1, 1, 10_000_000_000)
	f.executor.result = &SimulationResult{Effects: Effects{
		Success:        true,
		GasCostSummary: GasCostSummary{ComputationCost: 5_000_000, StorageCost: 10},
	}}

	transaction := f.transaction()
	result, err := f.resolver.ResolveTransaction(transaction, false)
	require.NoError(t, err)

	assert.Equal(t, uint64(5_000_000+gasSafeOverhead*testReferenceGasPrice), result.Transaction.GasData.Budget)
	assert.Equal(t, 1, f.executor.calls)
}

func TestResolveBudgetEstimationFailure(t *testing.T) {
	f := newTestFramework(t)
	f.addGasCoin(1, 1, 10_000_000_000)
	f.executor.err = errors.New("engine unavailable")

	_, err := f.resolver.ResolveTransaction(f.transaction(), false)
	require.True(t, errors.Is(err, ErrInternal))
}

func TestSelectGasCoins(t *testing.T) {
	f := newTestFramework(t)
	coin1 := f.addGasCoin(1, 1, 100)
	coin2 := f.addGasCoin(2, 1, 50)
	f.addGasCoin(3, 1, 30)

	result, err := f.resolver.ResolveTransaction(f.transactionWithBudget(120), false)
	require.NoError(t, err)

	// selection stops as soon as the accumulated value covers the budget
	require.Len(t, result.Transaction.GasData.Payment, 2)
	assert.Equal(t, coin1.ComputeObjectReference(), result.Transaction.GasData.Payment[0])
	assert.Equal(t, coin2.ComputeObjectReference(), result.Transaction.GasData.Payment[1])

	// all coins combined cannot cover this budget
	_, err = f.resolver.ResolveTransaction(f.transactionWithBudget(500), false)
	require.True(t, errors.Is(err, ErrInsufficientFunds))
}

func TestSelectGasCoinsSkipsInputObjects(t *testing.T) {
	f := newTestFramework(t)
	inputCoin := f.addGasCoin(1, 1, 100)
	otherCoin := f.addGasCoin(2, 1, 100)

	// the transaction spends the first coin, so it cannot also pay for gas
	transaction := f.transactionWithBudget(100)
	transaction.PTB.Inputs = []ledgerstate.UnresolvedInputArgument{
		ledgerstate.NewUnresolvedImmOrOwnedArgument(ledgerstate.UnresolvedObjectReference{ID: inputCoin.ID()}),
	}

	result, err := f.resolver.ResolveTransaction(transaction, false)
	require.NoError(t, err)
	require.Len(t, result.Transaction.GasData.Payment, 1)
	assert.Equal(t, otherCoin.ComputeObjectReference(), result.Transaction.GasData.Payment[0])
}

func TestSelectGasCoinsSkipsOtherObjects(t *testing.T) {
	f := newTestFramework(t)
	f.addOwnedObject(1, 1)
	coin := f.addGasCoin(2, 1, 200)

	result, err := f.resolver.ResolveTransaction(f.transactionWithBudget(100), false)
	require.NoError(t, err)
	require.Len(t, result.Transaction.GasData.Payment, 1)
	assert.Equal(t, coin.ComputeObjectReference(), result.Transaction.GasData.Payment[0])
}

func TestSelectGasCoinsExaminedCoinsCap(t *testing.T) {
	f := newTestFramework(t)
	f.addGasCoin(1, 1, 50)
	f.addGasCoin(2, 1, 50)
	f.addGasCoin(3, 1, 50)

	// with only two coins examined the budget of 150 cannot be covered
	_, err := selectGasCoins(f.store, f.sender, 150, 2, nil)
	require.True(t, errors.Is(err, ErrInsufficientFunds))

	coins, err := selectGasCoins(f.store, f.sender, 100, 2, nil)
	require.NoError(t, err)
	assert.Len(t, coins, 2)
}

func TestSelectGasCoinsSkipsTransferredCoins(t *testing.T) {
	f := newTestFramework(t)
	transferredCoin := f.addGasCoin(1, 1, 200)
	keptCoin := f.addGasCoin(2, 1, 200)

	// the first coin left the sender's account, only the second one may pay for gas
	recipient := ledgerstate.NewAddress([]byte("recipient"))
	f.addGasCoinOwnedBy(1, 2, recipient, 200)

	result, err := f.resolver.ResolveTransaction(f.transactionWithBudget(100), false)
	require.NoError(t, err)
	require.Len(t, result.Transaction.GasData.Payment, 1)
	assert.Equal(t, keptCoin.ComputeObjectReference(), result.Transaction.GasData.Payment[0])
	assert.NotEqual(t, transferredCoin.ID(), result.Transaction.GasData.Payment[0].ID())

	_, err = f.resolver.ResolveTransaction(f.transactionWithBudget(300), false)
	require.True(t, errors.Is(err, ErrInsufficientFunds))
}

func TestSelectGasCoinsUnparsableCoinKeepsCapQuota(t *testing.T) {
	f := newTestFramework(t)

	// a listing entry whose balance cannot be parsed is skipped without counting against the cap
	brokenCoin := ledgerstate.NewObject(testObjectID(1), 1, &ledgerstate.AddressOwner{Address: f.sender}, &ledgerstate.MoveObject{
		ObjectType: ledgerstate.GasCoinTypeTag,
		Contents:   []byte{1},
	})
	require.NoError(t, f.store.AddObject(brokenCoin))
	coin := f.addGasCoin(2, 1, 100)

	coins, err := selectGasCoins(f.store, f.sender, 100, 1, nil)
	require.NoError(t, err)
	require.Len(t, coins, 1)
	assert.Equal(t, coin.ComputeObjectReference(), coins[0])
}

func TestResolveTransactionWithSimulation(t *testing.T) {
	f := newTestFramework(t)
	f.addGasCoin(1, 1, 1_000_000_000)
	f.executor.result = &SimulationResult{Effects: Effects{
		Success:        true,
		GasCostSummary: GasCostSummary{ComputationCost: 42},
	}}

	result, err := f.resolver.ResolveTransaction(f.transactionWithBudget(100), true)
	require.NoError(t, err)
	require.NotNil(t, result.Simulation)
	assert.True(t, result.Simulation.Effects.Success)
	assert.Equal(t, uint64(42), result.Simulation.Effects.GasCostSummary.ComputationCost)
	assert.Equal(t, 1, f.executor.calls)

	// without the flag no simulation is attached
	result, err = f.resolver.ResolveTransaction(f.transactionWithBudget(100), false)
	require.NoError(t, err)
	assert.Nil(t, result.Simulation)
}

func TestGasCostSummary(t *testing.T) {
	summary := GasCostSummary{ComputationCost: 100, StorageCost: 50, StorageRebate: 30, NonRefundableStorageFee: 5}
	assert.Equal(t, uint64(150), summary.GasUsed())
	assert.Equal(t, int64(120), summary.NetGasUsage())

	// the net usage can be negative when the rebate exceeds the costs
	summary = GasCostSummary{ComputationCost: 10, StorageCost: 5, StorageRebate: 100}
	assert.Equal(t, int64(-85), summary.NetGasUsage())
}

// region test framework ///////////////////////////////////////////////////////////////////////////////////////////////

type mockExecutor struct {
	result *SimulationResult
	err    error
	calls  int
}

func (m *mockExecutor) SimulateTransaction(*ledgerstate.TransactionData) (*SimulationResult, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}

	return m.result, nil
}

type testFramework struct {
	t        *testing.T
	store    *chainstate.Store
	executor *mockExecutor
	resolver *Resolver
	sender   ledgerstate.Address
}

func newTestFramework(t *testing.T) *testFramework {
	store := chainstate.NewStore(mapdb.NewMapDB(), "amber-testnet", chainstate.SystemStateSummary{
		Epoch:             1,
		ProtocolVersion:   3,
		ReferenceGasPrice: testReferenceGasPrice,
	})
	executor := &mockExecutor{result: &SimulationResult{Effects: Effects{Success: true}}}

	return &testFramework{
		t:        t,
		store:    store,
		executor: executor,
		resolver: NewResolver(store, executor),
		sender:   ledgerstate.NewAddress([]byte("sender")),
	}
}

// transaction returns a minimal unresolved transaction of the framework's sender.
func (f *testFramework) transaction() *ledgerstate.UnresolvedTransaction {
	return &ledgerstate.UnresolvedTransaction{Sender: f.sender}
}

// transactionWithBudget returns a minimal unresolved transaction with an explicit gas budget, which keeps the
// resolution from running a budget estimation.
func (f *testFramework) transactionWithBudget(budget uint64) *ledgerstate.UnresolvedTransaction {
	transaction := f.transaction()
	transaction.GasPayment.Budget = &budget

	return transaction
}

func (f *testFramework) addGasCoin(seed byte, version ledgerstate.Version, value uint64) *ledgerstate.Object {
	return f.addGasCoinOwnedBy(seed, version, f.sender, value)
}

func (f *testFramework) addGasCoinOwnedBy(seed byte, version ledgerstate.Version, owner ledgerstate.Address, value uint64) *ledgerstate.Object {
	coin := ledgerstate.NewGasCoinObject(testObjectID(seed), version, owner, value)
	require.NoError(f.t, f.store.AddObject(coin))

	return coin
}

func (f *testFramework) addOwnedObject(seed byte, version ledgerstate.Version) *ledgerstate.Object {
	object := ledgerstate.NewObject(testObjectID(seed), version, &ledgerstate.AddressOwner{Address: f.sender}, &ledgerstate.MoveObject{
		ObjectType: "0x2::vault::Vault",
		Contents:   []byte{byte(version)},
	})
	require.NoError(f.t, f.store.AddObject(object))

	return object
}

func (f *testFramework) addSharedObject(seed byte, initialSharedVersion ledgerstate.Version) *ledgerstate.Object {
	object := ledgerstate.NewObject(testObjectID(seed), initialSharedVersion, &ledgerstate.SharedOwner{InitialSharedVersion: initialSharedVersion}, &ledgerstate.MoveObject{
		ObjectType: "0x2::vault::Vault",
		Contents:   []byte{1},
	})
	require.NoError(f.t, f.store.AddObject(object))

	return object
}

// addVaultPackage publishes a package with a vault module whose functions cover all parameter kinds that shared
// mutability inference distinguishes.
func (f *testFramework) addVaultPackage(seed byte) ledgerstate.ObjectID {
	vault := &moveformat.NormalizedModule{
		Name: "vault",
		Functions: map[string]*moveformat.NormalizedFunction{
			"peek":    {Parameters: []moveformat.ParameterKind{moveformat.ReferenceParameterKind}},
			"deposit": {Parameters: []moveformat.ParameterKind{moveformat.MutableReferenceParameterKind, moveformat.ValueParameterKind}},
			"consume": {Parameters: []moveformat.ParameterKind{moveformat.StructParameterKind}},
		},
	}

	object := ledgerstate.NewObject(testObjectID(seed), 1, &ledgerstate.ImmutableOwner{}, &ledgerstate.MovePackage{
		Modules: map[string][]byte{"vault": vault.Bytes(1)},
	})
	require.NoError(f.t, f.store.AddObject(object))

	return object.ID()
}

// testObjectID returns a deterministic ObjectID derived from the given seed.
func testObjectID(seed byte) (objectID ledgerstate.ObjectID) {
	for i := range objectID {
		objectID[i] = seed
	}

	return
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
