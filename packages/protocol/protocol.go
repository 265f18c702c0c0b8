// Package protocol exposes the versioned protocol parameters that constrain transaction resolution.
package protocol

import (
	"golang.org/x/xerrors"

	"github.com/amberledger/goamber/packages/moveformat"
)

// ErrUnsupportedVersion is returned when a protocol version is requested that this node does not know.
var ErrUnsupportedVersion = xerrors.New("unsupported protocol version")

// region Config ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Config holds the parameters of a single protocol version.
type Config struct {
	version              uint32
	maxTxGas             uint64
	maxGasPaymentObjects uint16
	maxFormatVersion     uint8
}

// Version returns the protocol version of the Config.
func (c Config) Version() uint32 {
	return c.version
}

// MaxTxGas returns the largest gas budget a transaction may declare.
func (c Config) MaxTxGas() uint64 {
	return c.maxTxGas
}

// MaxGasPaymentObjects returns the largest number of coins a gas payment may consist of.
func (c Config) MaxGasPaymentObjects() uint16 {
	return c.maxGasPaymentObjects
}

// BinaryConfig returns the module bytecode limits of the protocol version.
func (c Config) BinaryConfig() moveformat.BinaryConfig {
	return moveformat.NewBinaryConfig(c.maxFormatVersion)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ConfigForVersion /////////////////////////////////////////////////////////////////////////////////////////////

var configs = map[uint32]Config{
	1: {version: 1, maxTxGas: 50_000_000_000, maxGasPaymentObjects: 256, maxFormatVersion: 1},
	2: {version: 2, maxTxGas: 50_000_000_000, maxGasPaymentObjects: 256, maxFormatVersion: 2},
	3: {version: 3, maxTxGas: 50_000_000_000, maxGasPaymentObjects: 256, maxFormatVersion: 3},
}

// ConfigForVersion returns the Config of the given protocol version or an error if the version is unknown.
func ConfigForVersion(version uint32) (config Config, err error) {
	config, exists := configs[version]
	if !exists {
		err = xerrors.Errorf("protocol version %d: %w", version, ErrUnsupportedVersion)
		return
	}

	return
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
