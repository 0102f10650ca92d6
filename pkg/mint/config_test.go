package mint

import (
	"testing"

	"github.com/mr-tron/base58/base58"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cm, _ := testKey(t)

	t.Setenv(envRPCEndpoint, "https://api.devnet.solana.com")
	t.Setenv(envCandyMachineID, base58.Encode(cm))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://api.devnet.solana.com", config.Endpoint)
	assert.EqualValues(t, cm, config.CandyMachine)
}

func TestLoadConfig_Missing(t *testing.T) {
	t.Setenv(envRPCEndpoint, "")
	t.Setenv(envCandyMachineID, "")

	_, err := LoadConfig()
	assert.Equal(t, ErrConfigMissing, errors.Cause(err))
}

func TestLoadConfig_InvalidCandyMachine(t *testing.T) {
	t.Setenv(envRPCEndpoint, "https://api.devnet.solana.com")
	t.Setenv(envCandyMachineID, "not-base58-!!!")

	_, err := LoadConfig()
	assert.Error(t, err)
}
