// Package gateway provides address derivation for the CIVIC gateway program,
// which issues gateway tokens attesting that a wallet passed a bot check.
package gateway

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58/base58"

	"github.com/dropworks/mint-engine/pkg/solana"
)

// ProgramKey is the address of the CIVIC gateway program.
//
// Current key: gatbGF9DvLAw3kWyn1EmH5Nh1Sqp8sTukF7yaQpSc71
var ProgramKey ed25519.PublicKey

func init() {
	decoded, err := base58.Decode("gatbGF9DvLAw3kWyn1EmH5Nh1Sqp8sTukF7yaQpSc71")
	if err != nil {
		panic(err)
	}
	ProgramKey = decoded
}

// GetNetworkTokenAddress returns the gateway token address for a wallet on a
// gatekeeper network. The seed layout includes an eight byte zero region
// reserved by the gateway program.
func GetNetworkTokenAddress(owner, network ed25519.PublicKey) (ed25519.PublicKey, error) {
	return solana.FindProgramAddress(
		ProgramKey,
		owner,
		[]byte("gateway"),
		make([]byte, 8),
		network,
	)
}

// GetNetworkExpireAddress returns the expire feature account for a gatekeeper
// network. Its existence indicates that gateway tokens on the network expire
// when used.
func GetNetworkExpireAddress(network ed25519.PublicKey) (ed25519.PublicKey, error) {
	return solana.FindProgramAddress(
		ProgramKey,
		network,
		[]byte("expire"),
	)
}
