package candymachine

import (
	"crypto/ed25519"

	"github.com/dropworks/mint-engine/pkg/solana"
)

// GetCreatorAddress returns the PDA the candy machine signs metadata creation
// with, along with its bump seed. The bump is passed as the mintNft
// instruction argument.
func GetCreatorAddress(candyMachine ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		ProgramKey,
		[]byte("candy_machine"),
		candyMachine,
	)
}

// GetCollectionAddress returns the collection PDA for a candy machine. The
// account exists only when a collection has been set.
func GetCollectionAddress(candyMachine ed25519.PublicKey) (ed25519.PublicKey, error) {
	return solana.FindProgramAddress(
		ProgramKey,
		[]byte("collection"),
		candyMachine,
	)
}
