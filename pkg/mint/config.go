package mint

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58/base58"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	envRPCEndpoint    = "SOLANA_RPC_ENDPOINT"
	envCandyMachineID = "CANDY_MACHINE_ID"
)

// ErrConfigMissing indicates a required environment value was not provided.
// Fatal at startup, not attempt scoped.
var ErrConfigMissing = errors.New("missing required configuration")

// Config is the environment supplied deployment configuration.
type Config struct {
	Endpoint     string
	CandyMachine ed25519.PublicKey
}

// LoadConfig reads the deployment configuration from the environment.
func LoadConfig() (*Config, error) {
	v := viper.New()
	if err := v.BindEnv("endpoint", envRPCEndpoint); err != nil {
		return nil, errors.Wrap(err, "failed to bind endpoint env")
	}
	if err := v.BindEnv("candy_machine", envCandyMachineID); err != nil {
		return nil, errors.Wrap(err, "failed to bind candy machine env")
	}

	endpoint := v.GetString("endpoint")
	if endpoint == "" {
		return nil, errors.Wrap(ErrConfigMissing, envRPCEndpoint)
	}

	candyMachineID := v.GetString("candy_machine")
	if candyMachineID == "" {
		return nil, errors.Wrap(ErrConfigMissing, envCandyMachineID)
	}

	candyMachine, err := base58.Decode(candyMachineID)
	if err != nil || len(candyMachine) != ed25519.PublicKeySize {
		return nil, errors.Errorf("invalid candy machine id: %s", candyMachineID)
	}

	return &Config{
		Endpoint:     endpoint,
		CandyMachine: candyMachine,
	}, nil
}
