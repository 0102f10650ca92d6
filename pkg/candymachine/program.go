// Package candymachine implements a client for the candy machine v2 program:
// account decoding, address derivation, and instruction construction.
package candymachine

import (
	"crypto/ed25519"
	"crypto/sha256"

	"github.com/mr-tron/base58/base58"

	"github.com/dropworks/mint-engine/pkg/solana"
)

// ProgramKey is the address of the candy machine v2 program.
//
// Current key: cndy3Z4yapfJBmL3ShUp5exZKqR3z33thTzeNMm2gRZ
var ProgramKey ed25519.PublicKey

func init() {
	decoded, err := base58.Decode("cndy3Z4yapfJBmL3ShUp5exZKqR3z33thTzeNMm2gRZ")
	if err != nil {
		panic(err)
	}
	ProgramKey = decoded
}

// Custom program errors surfaced during minting.
//
// Reference: https://github.com/metaplex-foundation/metaplex/blob/master/rust/nft-candy-machine-v2/src/lib.rs
const (
	ErrorNotEnoughTokens     solana.CustomError = 0x135
	ErrorCandyMachineEmpty   solana.CustomError = 0x137
	ErrorCandyMachineNotLive solana.CustomError = 0x138
)

// Anchor prefixes instruction data and account data with an eight byte
// discriminator derived from the item's namespaced name.
func sighash(namespace, name string) []byte {
	h := sha256.Sum256([]byte(namespace + ":" + name))
	return h[:8]
}

func instructionDiscriminator(name string) []byte {
	return sighash("global", name)
}

func accountDiscriminator(name string) []byte {
	return sighash("account", name)
}
