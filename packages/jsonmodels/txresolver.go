package jsonmodels

import (
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/amberledger/goamber/packages/ledgerstate"
	"github.com/amberledger/goamber/packages/txresolver"
)

// region Argument /////////////////////////////////////////////////////////////////////////////////////////////////////

// Argument represents the JSON model of a ledgerstate.Argument.
type Argument struct {
	Type        string `json:"type"`
	Index       uint16 `json:"index,omitempty"`
	ResultIndex uint16 `json:"resultIndex,omitempty"`
}

// NewArgument returns an Argument from the given ledgerstate.Argument.
func NewArgument(argument ledgerstate.Argument) *Argument {
	return &Argument{
		Type:        argumentTypeNames[argument.Type()],
		Index:       argument.Index(),
		ResultIndex: argument.ResultIndex(),
	}
}

// ToLedgerstateArgument converts the Argument into a ledgerstate.Argument.
func (a *Argument) ToLedgerstateArgument() (argument ledgerstate.Argument, err error) {
	switch a.Type {
	case "gasCoin":
		return ledgerstate.NewGasCoinArgument(), nil
	case "input":
		return ledgerstate.NewInputArgument(a.Index), nil
	case "result":
		return ledgerstate.NewResultArgument(a.Index), nil
	case "nestedResult":
		return ledgerstate.NewNestedResultArgument(a.Index, a.ResultIndex), nil
	default:
		return argument, errors.Errorf("unknown argument type %q", a.Type)
	}
}

var argumentTypeNames = map[ledgerstate.ArgumentType]string{
	ledgerstate.GasCoinArgumentType:      "gasCoin",
	ledgerstate.InputArgumentType:        "input",
	ledgerstate.ResultArgumentType:       "result",
	ledgerstate.NestedResultArgumentType: "nestedResult",
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ObjectReference //////////////////////////////////////////////////////////////////////////////////////////////

// ObjectReference represents the JSON model of a ledgerstate.ObjectReference.
type ObjectReference struct {
	ObjectID string `json:"objectId"`
	Version  string `json:"version"`
	Digest   string `json:"digest"`
}

// NewObjectReference returns an ObjectReference from the given ledgerstate.ObjectReference.
func NewObjectReference(reference ledgerstate.ObjectReference) *ObjectReference {
	return &ObjectReference{
		ObjectID: reference.ID().Base58(),
		Version:  strconv.FormatUint(uint64(reference.Version()), 10),
		Digest:   reference.Digest().Base58(),
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region UnresolvedObjectReference ////////////////////////////////////////////////////////////////////////////////////

// UnresolvedObjectReference represents the JSON model of a ledgerstate.UnresolvedObjectReference.
type UnresolvedObjectReference struct {
	ObjectID string  `json:"objectId"`
	Version  *string `json:"version,omitempty"`
	Digest   *string `json:"digest,omitempty"`
}

// ToLedgerstateReference converts the UnresolvedObjectReference into a ledgerstate.UnresolvedObjectReference.
func (u *UnresolvedObjectReference) ToLedgerstateReference() (reference ledgerstate.UnresolvedObjectReference, err error) {
	if reference.ID, err = ledgerstate.ObjectIDFromBase58(u.ObjectID); err != nil {
		return reference, errors.Errorf("failed to parse objectId: %v", err)
	}
	if u.Version != nil {
		version, versionErr := parseUint64(*u.Version)
		if versionErr != nil {
			return reference, errors.Errorf("failed to parse version: %v", versionErr)
		}
		ledgerVersion := ledgerstate.Version(version)
		reference.Version = &ledgerVersion
	}
	if u.Digest != nil {
		digest, digestErr := ledgerstate.DigestFromBase58(*u.Digest)
		if digestErr != nil {
			return reference, errors.Errorf("failed to parse digest: %v", digestErr)
		}
		reference.Digest = &digest
	}

	return reference, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Command //////////////////////////////////////////////////////////////////////////////////////////////////////

// Command represents the JSON model of a ledgerstate.Command. The fields beyond Type are populated depending on the
// command kind.
type Command struct {
	Type          string      `json:"type"`
	Package       string      `json:"package,omitempty"`
	Module        string      `json:"module,omitempty"`
	Function      string      `json:"function,omitempty"`
	TypeArguments []string    `json:"typeArguments,omitempty"`
	Arguments     []*Argument `json:"arguments,omitempty"`
	Objects       []*Argument `json:"objects,omitempty"`
	Address       *Argument   `json:"address,omitempty"`
	Coin          *Argument   `json:"coin,omitempty"`
	Amounts       []*Argument `json:"amounts,omitempty"`
	CoinsToMerge  []*Argument `json:"coinsToMerge,omitempty"`
	ElementType   *string     `json:"elementType,omitempty"`
	Elements      []*Argument `json:"elements,omitempty"`
	Modules       [][]byte    `json:"modules,omitempty"`
	Dependencies  []string    `json:"dependencies,omitempty"`
	Ticket        *Argument   `json:"ticket,omitempty"`
}

// NewCommand returns a Command from the given ledgerstate.Command.
func NewCommand(command ledgerstate.Command) *Command {
	switch typedCommand := command.(type) {
	case *ledgerstate.MoveCall:
		typeArguments := make([]string, len(typedCommand.TypeArguments))
		for i, typeArgument := range typedCommand.TypeArguments {
			typeArguments[i] = string(typeArgument)
		}
		return &Command{
			Type:          "moveCall",
			Package:       typedCommand.Package.Base58(),
			Module:        typedCommand.Module,
			Function:      typedCommand.Function,
			TypeArguments: typeArguments,
			Arguments:     newArguments(typedCommand.Arguments),
		}
	case *ledgerstate.TransferObjects:
		return &Command{
			Type:    "transferObjects",
			Objects: newArguments(typedCommand.Objects),
			Address: NewArgument(typedCommand.Address),
		}
	case *ledgerstate.SplitCoins:
		return &Command{
			Type:    "splitCoins",
			Coin:    NewArgument(typedCommand.Coin),
			Amounts: newArguments(typedCommand.Amounts),
		}
	case *ledgerstate.MergeCoins:
		return &Command{
			Type:         "mergeCoins",
			Coin:         NewArgument(typedCommand.Coin),
			CoinsToMerge: newArguments(typedCommand.CoinsToMerge),
		}
	case *ledgerstate.MakeMoveVector:
		result := &Command{
			Type:     "makeMoveVector",
			Elements: newArguments(typedCommand.Elements),
		}
		if typedCommand.ElementType != nil {
			elementType := string(*typedCommand.ElementType)
			result.ElementType = &elementType
		}
		return result
	case *ledgerstate.Publish:
		return &Command{
			Type:         "publish",
			Modules:      typedCommand.Modules,
			Dependencies: newObjectIDs(typedCommand.Dependencies),
		}
	case *ledgerstate.Upgrade:
		return &Command{
			Type:         "upgrade",
			Modules:      typedCommand.Modules,
			Dependencies: newObjectIDs(typedCommand.Dependencies),
			Package:      typedCommand.Package.Base58(),
			Ticket:       NewArgument(typedCommand.Ticket),
		}
	default:
		return &Command{Type: "unknown"}
	}
}

// ToLedgerstateCommand converts the Command into a ledgerstate.Command.
func (c *Command) ToLedgerstateCommand() (command ledgerstate.Command, err error) {
	switch c.Type {
	case "moveCall":
		packageID, packageErr := ledgerstate.ObjectIDFromBase58(c.Package)
		if packageErr != nil {
			return nil, errors.Errorf("failed to parse package: %v", packageErr)
		}
		arguments, argumentsErr := toArguments(c.Arguments)
		if argumentsErr != nil {
			return nil, argumentsErr
		}
		typeArguments := make([]ledgerstate.TypeTag, len(c.TypeArguments))
		for i, typeArgument := range c.TypeArguments {
			typeArguments[i] = ledgerstate.TypeTag(typeArgument)
		}
		return &ledgerstate.MoveCall{
			Package:       packageID,
			Module:        c.Module,
			Function:      c.Function,
			TypeArguments: typeArguments,
			Arguments:     arguments,
		}, nil
	case "transferObjects":
		objects, objectsErr := toArguments(c.Objects)
		if objectsErr != nil {
			return nil, objectsErr
		}
		if c.Address == nil {
			return nil, errors.New("transferObjects command requires an address argument")
		}
		address, addressErr := c.Address.ToLedgerstateArgument()
		if addressErr != nil {
			return nil, addressErr
		}
		return &ledgerstate.TransferObjects{Objects: objects, Address: address}, nil
	case "splitCoins":
		if c.Coin == nil {
			return nil, errors.New("splitCoins command requires a coin argument")
		}
		coin, coinErr := c.Coin.ToLedgerstateArgument()
		if coinErr != nil {
			return nil, coinErr
		}
		amounts, amountsErr := toArguments(c.Amounts)
		if amountsErr != nil {
			return nil, amountsErr
		}
		return &ledgerstate.SplitCoins{Coin: coin, Amounts: amounts}, nil
	case "mergeCoins":
		if c.Coin == nil {
			return nil, errors.New("mergeCoins command requires a coin argument")
		}
		coin, coinErr := c.Coin.ToLedgerstateArgument()
		if coinErr != nil {
			return nil, coinErr
		}
		coinsToMerge, coinsErr := toArguments(c.CoinsToMerge)
		if coinsErr != nil {
			return nil, coinsErr
		}
		return &ledgerstate.MergeCoins{Coin: coin, CoinsToMerge: coinsToMerge}, nil
	case "makeMoveVector":
		elements, elementsErr := toArguments(c.Elements)
		if elementsErr != nil {
			return nil, elementsErr
		}
		command := &ledgerstate.MakeMoveVector{Elements: elements}
		if c.ElementType != nil {
			elementType := ledgerstate.TypeTag(*c.ElementType)
			command.ElementType = &elementType
		}
		return command, nil
	case "publish":
		dependencies, dependenciesErr := toObjectIDs(c.Dependencies)
		if dependenciesErr != nil {
			return nil, dependenciesErr
		}
		return &ledgerstate.Publish{Modules: c.Modules, Dependencies: dependencies}, nil
	case "upgrade":
		dependencies, dependenciesErr := toObjectIDs(c.Dependencies)
		if dependenciesErr != nil {
			return nil, dependenciesErr
		}
		packageID, packageErr := ledgerstate.ObjectIDFromBase58(c.Package)
		if packageErr != nil {
			return nil, errors.Errorf("failed to parse package: %v", packageErr)
		}
		if c.Ticket == nil {
			return nil, errors.New("upgrade command requires a ticket argument")
		}
		ticket, ticketErr := c.Ticket.ToLedgerstateArgument()
		if ticketErr != nil {
			return nil, ticketErr
		}
		return &ledgerstate.Upgrade{
			Modules:      c.Modules,
			Dependencies: dependencies,
			Package:      packageID,
			Ticket:       ticket,
		}, nil
	default:
		return nil, errors.Errorf("unknown command type %q", c.Type)
	}
}

func newArguments(arguments []ledgerstate.Argument) (result []*Argument) {
	result = make([]*Argument, len(arguments))
	for i, argument := range arguments {
		result[i] = NewArgument(argument)
	}

	return result
}

func toArguments(arguments []*Argument) (result []ledgerstate.Argument, err error) {
	result = make([]ledgerstate.Argument, len(arguments))
	for i, argument := range arguments {
		if result[i], err = argument.ToLedgerstateArgument(); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func newObjectIDs(objectIDs []ledgerstate.ObjectID) (result []string) {
	result = make([]string, len(objectIDs))
	for i, objectID := range objectIDs {
		result[i] = objectID.Base58()
	}

	return result
}

func toObjectIDs(objectIDs []string) (result []ledgerstate.ObjectID, err error) {
	result = make([]ledgerstate.ObjectID, len(objectIDs))
	for i, objectID := range objectIDs {
		if result[i], err = ledgerstate.ObjectIDFromBase58(objectID); err != nil {
			return nil, errors.Errorf("failed to parse objectId: %v", err)
		}
	}

	return result, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region UnresolvedInput //////////////////////////////////////////////////////////////////////////////////////////////

// UnresolvedInput represents the JSON model of a ledgerstate.UnresolvedInputArgument. The fields beyond Type are
// populated depending on the input kind.
type UnresolvedInput struct {
	Type                 string  `json:"type"`
	Value                []byte  `json:"value,omitempty"`
	ObjectID             string  `json:"objectId,omitempty"`
	Version              *string `json:"version,omitempty"`
	Digest               *string `json:"digest,omitempty"`
	InitialSharedVersion *string `json:"initialSharedVersion,omitempty"`
	Mutable              *bool   `json:"mutable,omitempty"`
}

// ToLedgerstateInput converts the UnresolvedInput into a ledgerstate.UnresolvedInputArgument.
func (u *UnresolvedInput) ToLedgerstateInput() (input ledgerstate.UnresolvedInputArgument, err error) {
	switch u.Type {
	case "pure":
		return ledgerstate.NewUnresolvedPureArgument(u.Value), nil
	case "immOrOwned", "receiving":
		reference, referenceErr := (&UnresolvedObjectReference{ObjectID: u.ObjectID, Version: u.Version, Digest: u.Digest}).ToLedgerstateReference()
		if referenceErr != nil {
			return nil, referenceErr
		}
		if u.Type == "receiving" {
			return ledgerstate.NewUnresolvedReceivingArgument(reference), nil
		}
		return ledgerstate.NewUnresolvedImmOrOwnedArgument(reference), nil
	case "shared":
		objectID, objectIDErr := ledgerstate.ObjectIDFromBase58(u.ObjectID)
		if objectIDErr != nil {
			return nil, errors.Errorf("failed to parse objectId: %v", objectIDErr)
		}
		sharedArgument := ledgerstate.NewUnresolvedSharedArgument(objectID)
		if u.InitialSharedVersion != nil {
			initialSharedVersion, versionErr := parseUint64(*u.InitialSharedVersion)
			if versionErr != nil {
				return nil, errors.Errorf("failed to parse initialSharedVersion: %v", versionErr)
			}
			ledgerVersion := ledgerstate.Version(initialSharedVersion)
			sharedArgument.InitialSharedVersion = &ledgerVersion
		}
		sharedArgument.Mutable = u.Mutable
		return sharedArgument, nil
	default:
		return nil, errors.Errorf("unknown input type %q", u.Type)
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region CallArg //////////////////////////////////////////////////////////////////////////////////////////////////////

// CallArg represents the JSON model of a resolved ledgerstate.CallArg.
type CallArg struct {
	Type                 string           `json:"type"`
	Value                []byte           `json:"value,omitempty"`
	Reference            *ObjectReference `json:"reference,omitempty"`
	ObjectID             string           `json:"objectId,omitempty"`
	InitialSharedVersion string           `json:"initialSharedVersion,omitempty"`
	Mutable              bool             `json:"mutable,omitempty"`
}

// NewCallArg returns a CallArg from the given ledgerstate.CallArg.
func NewCallArg(callArg ledgerstate.CallArg) *CallArg {
	switch typedCallArg := callArg.(type) {
	case *ledgerstate.PureCallArg:
		return &CallArg{Type: "pure", Value: typedCallArg.Value}
	case *ledgerstate.ImmOrOwnedObjectCallArg:
		return &CallArg{Type: "immOrOwned", Reference: NewObjectReference(typedCallArg.Reference)}
	case *ledgerstate.SharedObjectCallArg:
		return &CallArg{
			Type:                 "shared",
			ObjectID:             typedCallArg.ID.Base58(),
			InitialSharedVersion: strconv.FormatUint(uint64(typedCallArg.InitialSharedVersion), 10),
			Mutable:              typedCallArg.Mutable,
		}
	case *ledgerstate.ReceivingObjectCallArg:
		return &CallArg{Type: "receiving", Reference: NewObjectReference(typedCallArg.Reference)}
	default:
		return &CallArg{Type: "unknown"}
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region UnresolvedGasPayment /////////////////////////////////////////////////////////////////////////////////////////

// UnresolvedGasPayment represents the JSON model of a ledgerstate.UnresolvedGasPayment.
type UnresolvedGasPayment struct {
	Objects []*UnresolvedObjectReference `json:"objects,omitempty"`
	Owner   string                       `json:"owner,omitempty"`
	Price   *string                      `json:"price,omitempty"`
	Budget  *string                      `json:"budget,omitempty"`
}

// ToLedgerstateGasPayment converts the UnresolvedGasPayment into a ledgerstate.UnresolvedGasPayment.
func (u *UnresolvedGasPayment) ToLedgerstateGasPayment() (gasPayment ledgerstate.UnresolvedGasPayment, err error) {
	gasPayment.Objects = make([]ledgerstate.UnresolvedObjectReference, len(u.Objects))
	for i, reference := range u.Objects {
		if gasPayment.Objects[i], err = reference.ToLedgerstateReference(); err != nil {
			return gasPayment, err
		}
	}
	if u.Owner != "" {
		if gasPayment.Owner, err = ledgerstate.AddressFromBase58(u.Owner); err != nil {
			return gasPayment, errors.Errorf("failed to parse owner: %v", err)
		}
	}
	if u.Price != nil {
		price, priceErr := parseUint64(*u.Price)
		if priceErr != nil {
			return gasPayment, errors.Errorf("failed to parse price: %v", priceErr)
		}
		gasPayment.Price = &price
	}
	if u.Budget != nil {
		budget, budgetErr := parseUint64(*u.Budget)
		if budgetErr != nil {
			return gasPayment, errors.Errorf("failed to parse budget: %v", budgetErr)
		}
		gasPayment.Budget = &budget
	}

	return gasPayment, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region GasData //////////////////////////////////////////////////////////////////////////////////////////////////////

// GasData represents the JSON model of a resolved ledgerstate.GasData.
type GasData struct {
	Payment []*ObjectReference `json:"payment"`
	Owner   string             `json:"owner"`
	Price   string             `json:"price"`
	Budget  string             `json:"budget"`
}

// NewGasData returns a GasData from the given ledgerstate.GasData.
func NewGasData(gasData ledgerstate.GasData) *GasData {
	payment := make([]*ObjectReference, len(gasData.Payment))
	for i, reference := range gasData.Payment {
		payment[i] = NewObjectReference(reference)
	}

	return &GasData{
		Payment: payment,
		Owner:   gasData.Owner.Base58(),
		Price:   strconv.FormatUint(gasData.Price, 10),
		Budget:  strconv.FormatUint(gasData.Budget, 10),
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region UnresolvedTransactionRequest /////////////////////////////////////////////////////////////////////////////////

// UnresolvedTransactionRequest is the JSON request model of the transaction resolution endpoint.
type UnresolvedTransactionRequest struct {
	Sender     string                `json:"sender"`
	GasPayment *UnresolvedGasPayment `json:"gasPayment,omitempty"`
	Expiration *string               `json:"expiration,omitempty"`
	Inputs     []*UnresolvedInput    `json:"inputs"`
	Commands   []*Command            `json:"commands"`
}

// ToLedgerstateTransaction converts the UnresolvedTransactionRequest into a ledgerstate.UnresolvedTransaction.
func (u *UnresolvedTransactionRequest) ToLedgerstateTransaction() (transaction *ledgerstate.UnresolvedTransaction, err error) {
	transaction = &ledgerstate.UnresolvedTransaction{}
	if transaction.Sender, err = ledgerstate.AddressFromBase58(u.Sender); err != nil {
		return nil, errors.Errorf("failed to parse sender: %v", err)
	}
	if u.GasPayment != nil {
		if transaction.GasPayment, err = u.GasPayment.ToLedgerstateGasPayment(); err != nil {
			return nil, err
		}
	}
	if u.Expiration != nil {
		epoch, epochErr := parseUint64(*u.Expiration)
		if epochErr != nil {
			return nil, errors.Errorf("failed to parse expiration: %v", epochErr)
		}
		transaction.Expiration.Epoch = &epoch
	}
	transaction.PTB.Inputs = make([]ledgerstate.UnresolvedInputArgument, len(u.Inputs))
	for i, input := range u.Inputs {
		if transaction.PTB.Inputs[i], err = input.ToLedgerstateInput(); err != nil {
			return nil, err
		}
	}
	transaction.PTB.Commands = make([]ledgerstate.Command, len(u.Commands))
	for i, command := range u.Commands {
		if transaction.PTB.Commands[i], err = command.ToLedgerstateCommand(); err != nil {
			return nil, err
		}
	}

	return transaction, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ResolveTransactionResponse ///////////////////////////////////////////////////////////////////////////////////

// ResolvedTransaction is the JSON model of a fully resolved transaction: the decoded view plus the raw bytes ready
// for signing.
type ResolvedTransaction struct {
	TransactionID string     `json:"transactionId"`
	Sender        string     `json:"sender"`
	GasData       *GasData   `json:"gasData"`
	Expiration    *string    `json:"expiration,omitempty"`
	Inputs        []*CallArg `json:"inputs"`
	Commands      []*Command `json:"commands"`
	Bytes         []byte     `json:"bytes"`
}

// NewResolvedTransaction returns a ResolvedTransaction from the given ledgerstate.TransactionData.
func NewResolvedTransaction(transaction *ledgerstate.TransactionData) *ResolvedTransaction {
	inputs := make([]*CallArg, len(transaction.Transaction.Inputs))
	for i, input := range transaction.Transaction.Inputs {
		inputs[i] = NewCallArg(input)
	}
	commands := make([]*Command, len(transaction.Transaction.Commands))
	for i, command := range transaction.Transaction.Commands {
		commands[i] = NewCommand(command)
	}

	result := &ResolvedTransaction{
		TransactionID: transaction.ID().Base58(),
		Sender:        transaction.Sender.Base58(),
		GasData:       NewGasData(transaction.GasData),
		Inputs:        inputs,
		Commands:      commands,
		Bytes:         transaction.Bytes(),
	}
	if transaction.Expiration.Epoch != nil {
		epoch := strconv.FormatUint(*transaction.Expiration.Epoch, 10)
		result.Expiration = &epoch
	}

	return result
}

// GasCostSummary represents the JSON model of a txresolver.GasCostSummary.
type GasCostSummary struct {
	ComputationCost         string `json:"computationCost"`
	StorageCost             string `json:"storageCost"`
	StorageRebate           string `json:"storageRebate"`
	NonRefundableStorageFee string `json:"nonRefundableStorageFee"`
}

// Simulation represents the JSON model of a txresolver.SimulationResult.
type Simulation struct {
	Success        bool            `json:"success"`
	GasCostSummary *GasCostSummary `json:"gasCostSummary"`
}

// NewSimulation returns a Simulation from the given txresolver.SimulationResult.
func NewSimulation(simulationResult *txresolver.SimulationResult) *Simulation {
	gasCostSummary := simulationResult.Effects.GasCostSummary

	return &Simulation{
		Success: simulationResult.Effects.Success,
		GasCostSummary: &GasCostSummary{
			ComputationCost:         strconv.FormatUint(gasCostSummary.ComputationCost, 10),
			StorageCost:             strconv.FormatUint(gasCostSummary.StorageCost, 10),
			StorageRebate:           strconv.FormatUint(gasCostSummary.StorageRebate, 10),
			NonRefundableStorageFee: strconv.FormatUint(gasCostSummary.NonRefundableStorageFee, 10),
		},
	}
}

// ResolveTransactionResponse is the JSON response model of the transaction resolution endpoint.
type ResolveTransactionResponse struct {
	Transaction *ResolvedTransaction `json:"transaction"`
	Simulation  *Simulation          `json:"simulation,omitempty"`
	Error       string               `json:"error,omitempty"`
}

// NewResolveTransactionResponse returns a ResolveTransactionResponse from the given txresolver.Result.
func NewResolveTransactionResponse(result *txresolver.Result) *ResolveTransactionResponse {
	response := &ResolveTransactionResponse{
		Transaction: NewResolvedTransaction(result.Transaction),
	}
	if result.Simulation != nil {
		response.Simulation = NewSimulation(result.Simulation)
	}

	return response
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

func parseUint64(value string) (uint64, error) {
	return strconv.ParseUint(value, 10, 64)
}
