package candymachine

import (
	"crypto/ed25519"

	"github.com/dropworks/mint-engine/pkg/solana"
	"github.com/dropworks/mint-engine/pkg/solana/metaplex"
	"github.com/dropworks/mint-engine/pkg/solana/system"
	"github.com/dropworks/mint-engine/pkg/solana/token"
)

// MintNftAccounts are the fixed accounts of the mintNft instruction. Program
// and sysvar accounts are filled in by the builder.
type MintNftAccounts struct {
	CandyMachine ed25519.PublicKey

	// Creator is the candy machine's creator PDA, derived from the candy
	// machine address.
	Creator ed25519.PublicKey

	Payer  ed25519.PublicKey
	Wallet ed25519.PublicKey

	// Metadata and MasterEdition are the metadata program PDAs for Mint.
	Metadata      ed25519.PublicKey
	MasterEdition ed25519.PublicKey

	Mint            ed25519.PublicKey
	MintAuthority   ed25519.PublicKey
	UpdateAuthority ed25519.PublicKey
}

// MintNft constructs the candy machine mintNft instruction. Remaining
// accounts carry the optional gatekeeper, whitelist, and payment accounts in
// the order the program expects, and are appended verbatim.
func MintNft(accounts MintNftAccounts, creatorBump uint8, remaining ...solana.AccountMeta) solana.Instruction {
	data := append(instructionDiscriminator("mint_nft"), creatorBump)

	metas := []solana.AccountMeta{
		solana.NewAccountMeta(accounts.CandyMachine, false),
		solana.NewReadonlyAccountMeta(accounts.Creator, false),
		solana.NewAccountMeta(accounts.Payer, true),
		solana.NewAccountMeta(accounts.Wallet, false),
		solana.NewAccountMeta(accounts.Metadata, false),
		solana.NewAccountMeta(accounts.Mint, false),
		solana.NewReadonlyAccountMeta(accounts.MintAuthority, true),
		solana.NewReadonlyAccountMeta(accounts.UpdateAuthority, true),
		solana.NewAccountMeta(accounts.MasterEdition, false),
		solana.NewReadonlyAccountMeta(metaplex.TokenMetadataProgramKey, false),
		solana.NewReadonlyAccountMeta(token.ProgramKey, false),
		solana.NewReadonlyAccountMeta(system.ProgramKey[:], false),
		solana.NewReadonlyAccountMeta(system.RentSysVar, false),
		solana.NewReadonlyAccountMeta(system.ClockSysVar, false),
		solana.NewReadonlyAccountMeta(system.SlotHashesSysVar, false),
		solana.NewReadonlyAccountMeta(system.InstructionsSysVar, false),
	}
	metas = append(metas, remaining...)

	return solana.NewInstruction(ProgramKey, data, metas...)
}
