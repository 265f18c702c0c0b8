// Package moveformat implements the decoding and normalization of compiled module bytecode into the signature
// information that transaction resolution needs. Only the function signatures are extracted, the body of the
// bytecode is not interpreted.
package moveformat

import (
	"sort"

	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"
)

// region ParameterKind ////////////////////////////////////////////////////////////////////////////////////////////////

// ParameterKind classifies how a function parameter or return value binds to its argument.
type ParameterKind uint8

const (
	// ValueParameterKind represents a parameter that is passed by value.
	ValueParameterKind ParameterKind = iota

	// ReferenceParameterKind represents a parameter that is passed by immutable reference.
	ReferenceParameterKind

	// MutableReferenceParameterKind represents a parameter that is passed by mutable reference.
	MutableReferenceParameterKind

	// StructParameterKind represents a parameter that is passed as an owned struct.
	StructParameterKind
)

// ParameterKindFromMarshalUtil unmarshals a ParameterKind using a MarshalUtil (for easier unmarshaling).
func ParameterKindFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (parameterKind ParameterKind, err error) {
	kindByte, err := marshalUtil.ReadByte()
	if err != nil {
		err = xerrors.Errorf("failed to parse ParameterKind (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if kindByte > uint8(StructParameterKind) {
		err = xerrors.Errorf("unsupported ParameterKind (%X): %w", kindByte, cerrors.ErrParseBytesFailed)
		return
	}
	parameterKind = ParameterKind(kindByte)

	return
}

// RequiresMutableObject returns true if an object bound to a parameter of this kind is mutated by the call.
func (p ParameterKind) RequiresMutableObject() bool {
	return p == MutableReferenceParameterKind || p == StructParameterKind
}

// String returns a human readable version of the ParameterKind.
func (p ParameterKind) String() string {
	return [...]string{
		"ValueParameterKind",
		"ReferenceParameterKind",
		"MutableReferenceParameterKind",
		"StructParameterKind",
	}[p]
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region BinaryConfig /////////////////////////////////////////////////////////////////////////////////////////////////

// BinaryConfig carries the protocol-dependent limits for decoding module bytecode.
type BinaryConfig struct {
	MaxFormatVersion uint8
}

// NewBinaryConfig returns a new BinaryConfig that accepts module bytecode up to the given format version.
func NewBinaryConfig(maxFormatVersion uint8) BinaryConfig {
	return BinaryConfig{MaxFormatVersion: maxFormatVersion}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region NormalizedFunction ///////////////////////////////////////////////////////////////////////////////////////////

// NormalizedFunction is the signature of a single function of a NormalizedModule, reduced to the ParameterKinds that
// transaction resolution inspects.
type NormalizedFunction struct {
	Parameters []ParameterKind
	Returns    []ParameterKind
}

// String returns a human readable version of the NormalizedFunction.
func (n *NormalizedFunction) String() string {
	return stringify.Struct("NormalizedFunction",
		stringify.StructField("parameters", uint64(len(n.Parameters))),
		stringify.StructField("returns", uint64(len(n.Returns))),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region NormalizedModule /////////////////////////////////////////////////////////////////////////////////////////////

// NormalizedModule is the signature view of a single compiled module: its name and the signatures of its functions
// indexed by function name.
type NormalizedModule struct {
	Name      string
	Functions map[string]*NormalizedFunction
}

// Function returns the NormalizedFunction with the given name or nil if the module does not contain it.
func (n *NormalizedModule) Function(name string) *NormalizedFunction {
	return n.Functions[name]
}

// Bytes encodes the NormalizedModule into bytecode of the given format version. Functions are written in
// lexicographic order of their names so the encoding is deterministic.
func (n *NormalizedModule) Bytes(formatVersion uint8) []byte {
	functionNames := make([]string, 0, len(n.Functions))
	for functionName := range n.Functions {
		functionNames = append(functionNames, functionName)
	}
	sort.Strings(functionNames)

	marshalUtil := marshalutil.New().
		WriteByte(formatVersion).
		WriteUint16(uint16(len(n.Name))).
		WriteBytes([]byte(n.Name)).
		WriteUint16(uint16(len(n.Functions)))
	for _, functionName := range functionNames {
		function := n.Functions[functionName]
		marshalUtil.WriteUint16(uint16(len(functionName))).WriteBytes([]byte(functionName))
		writeParameterKinds(marshalUtil, function.Parameters)
		writeParameterKinds(marshalUtil, function.Returns)
	}

	return marshalUtil.Bytes()
}

func writeParameterKinds(marshalUtil *marshalutil.MarshalUtil, parameterKinds []ParameterKind) {
	marshalUtil.WriteByte(uint8(len(parameterKinds)))
	for _, parameterKind := range parameterKinds {
		marshalUtil.WriteByte(byte(parameterKind))
	}
}

// String returns a human readable version of the NormalizedModule.
func (n *NormalizedModule) String() string {
	return stringify.Struct("NormalizedModule",
		stringify.StructField("name", n.Name),
		stringify.StructField("functions", uint64(len(n.Functions))),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ModuleFromBytes //////////////////////////////////////////////////////////////////////////////////////////////

// ModuleFromBytes decodes a single compiled module into its NormalizedModule form. Bytecode with a format version
// above the limit of the given BinaryConfig is rejected.
func ModuleFromBytes(data []byte, config BinaryConfig) (module *NormalizedModule, err error) {
	marshalUtil := marshalutil.New(data)

	formatVersion, err := marshalUtil.ReadByte()
	if err != nil {
		err = xerrors.Errorf("failed to parse format version (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if formatVersion == 0 || formatVersion > config.MaxFormatVersion {
		err = xerrors.Errorf("unsupported module format version (%d, max %d): %w", formatVersion, config.MaxFormatVersion, cerrors.ErrParseBytesFailed)
		return
	}

	module = &NormalizedModule{
		Functions: make(map[string]*NormalizedFunction),
	}
	if module.Name, err = stringFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse module name: %w", err)
		return
	}

	functionCount, err := marshalUtil.ReadUint16()
	if err != nil {
		err = xerrors.Errorf("failed to parse function count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	for i := uint16(0); i < functionCount; i++ {
		var functionName string
		if functionName, err = stringFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse function name: %w", err)
			return
		}

		function := &NormalizedFunction{}
		if function.Parameters, err = parameterKindsFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse parameters of %s: %w", functionName, err)
			return
		}
		if function.Returns, err = parameterKindsFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse returns of %s: %w", functionName, err)
			return
		}
		module.Functions[functionName] = function
	}

	return
}

func parameterKindsFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (parameterKinds []ParameterKind, err error) {
	kindCount, err := marshalUtil.ReadByte()
	if err != nil {
		err = xerrors.Errorf("failed to parse kind count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	parameterKinds = make([]ParameterKind, kindCount)
	for i := uint8(0); i < kindCount; i++ {
		if parameterKinds[i], err = ParameterKindFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse ParameterKind: %w", err)
			return
		}
	}

	return
}

func stringFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (result string, err error) {
	length, err := marshalUtil.ReadUint16()
	if err != nil {
		err = xerrors.Errorf("failed to parse string length (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	resultBytes, err := marshalUtil.ReadBytes(int(length))
	if err != nil {
		err = xerrors.Errorf("failed to parse string (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	result = string(resultBytes)

	return
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region NormalizeModules /////////////////////////////////////////////////////////////////////////////////////////////

// NormalizeModules decodes all modules of a package into their NormalizedModule form, indexed by module name. The
// map key is taken from the package rather than from the decoded bytecode so that lookups stay consistent with the
// package contents.
func NormalizeModules(modules map[string][]byte, config BinaryConfig) (normalizedModules map[string]*NormalizedModule, err error) {
	normalizedModules = make(map[string]*NormalizedModule, len(modules))
	for moduleName, moduleBytes := range modules {
		normalizedModule, moduleErr := ModuleFromBytes(moduleBytes, config)
		if moduleErr != nil {
			err = xerrors.Errorf("failed to normalize module %s: %w", moduleName, moduleErr)
			return
		}
		normalizedModules[moduleName] = normalizedModule
	}

	return
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
