package candymachine

import (
	"crypto/ed25519"

	"github.com/dropworks/mint-engine/pkg/solana"
	"github.com/dropworks/mint-engine/pkg/solana/metaplex"
	"github.com/dropworks/mint-engine/pkg/solana/system"
)

// SetCollectionDuringMintAccounts are the accounts of the
// setCollectionDuringMint instruction.
type SetCollectionDuringMintAccounts struct {
	CandyMachine ed25519.PublicKey

	// Metadata is the metadata account of the NFT being minted in the same
	// transaction.
	Metadata ed25519.PublicKey

	Payer ed25519.PublicKey

	// CollectionPDA is the candy machine's collection PDA.
	CollectionPDA ed25519.PublicKey

	CollectionMint          ed25519.PublicKey
	CollectionMetadata      ed25519.PublicKey
	CollectionMasterEdition ed25519.PublicKey

	// Authority is the candy machine authority, and AuthorityRecord the
	// collection authority record delegating collection writes to the
	// collection PDA.
	Authority       ed25519.PublicKey
	AuthorityRecord ed25519.PublicKey
}

// SetCollectionDuringMint constructs the instruction that assigns the minted
// NFT to the candy machine's collection. It must appear in the same
// transaction as the mintNft instruction.
func SetCollectionDuringMint(accounts SetCollectionDuringMintAccounts) solana.Instruction {
	return solana.NewInstruction(
		ProgramKey,
		instructionDiscriminator("set_collection_during_mint"),
		solana.NewAccountMeta(accounts.CandyMachine, false),
		solana.NewAccountMeta(accounts.Metadata, false),
		solana.NewAccountMeta(accounts.Payer, true),
		solana.NewAccountMeta(accounts.CollectionPDA, false),
		solana.NewReadonlyAccountMeta(metaplex.TokenMetadataProgramKey, false),
		solana.NewReadonlyAccountMeta(system.InstructionsSysVar, false),
		solana.NewReadonlyAccountMeta(accounts.CollectionMint, false),
		solana.NewAccountMeta(accounts.CollectionMetadata, false),
		solana.NewReadonlyAccountMeta(accounts.CollectionMasterEdition, false),
		solana.NewReadonlyAccountMeta(accounts.Authority, false),
		solana.NewReadonlyAccountMeta(accounts.AuthorityRecord, false),
	)
}
