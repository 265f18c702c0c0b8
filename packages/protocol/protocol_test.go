package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func TestConfigForVersion(t *testing.T) {
	for version := uint32(1); version <= 3; version++ {
		config, err := ConfigForVersion(version)
		require.NoError(t, err)
		assert.Equal(t, version, config.Version())
		assert.Equal(t, uint64(50_000_000_000), config.MaxTxGas())
		assert.Equal(t, uint16(256), config.MaxGasPaymentObjects())
		assert.Equal(t, uint8(version), config.BinaryConfig().MaxFormatVersion)
	}
}

func TestConfigForUnknownVersion(t *testing.T) {
	_, err := ConfigForVersion(0)
	require.True(t, xerrors.Is(err, ErrUnsupportedVersion))

	_, err = ConfigForVersion(99)
	require.True(t, xerrors.Is(err, ErrUnsupportedVersion))
}
