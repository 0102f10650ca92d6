package mint

import (
	"crypto/ed25519"
	"crypto/rand"

	"github.com/mr-tron/base58/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dropworks/mint-engine/pkg/candymachine"
	"github.com/dropworks/mint-engine/pkg/solana"
	"github.com/dropworks/mint-engine/pkg/solana/gateway"
	"github.com/dropworks/mint-engine/pkg/solana/metaplex"
	"github.com/dropworks/mint-engine/pkg/solana/system"
	"github.com/dropworks/mint-engine/pkg/solana/token"
)

// ErrUnsupportedConfig indicates the sale configuration references a token
// the planner cannot derive a custody account for. Non-retryable.
var ErrUnsupportedConfig = errors.New("unsupported sale configuration")

// Plan is the full instruction sequence for one mint attempt. It is consumed
// by a single submission and never reused: the asset key is freshly generated
// per plan.
type Plan struct {
	// Instructions, in the order the program requires them to execute.
	Instructions []solana.Instruction

	// Asset is the keypair of the NFT being minted. It signs the account
	// creation but is not an auxiliary signer.
	Asset ed25519.PrivateKey

	// Signers are transient one-time authorities generated during planning.
	Signers []ed25519.PrivateKey

	// Cleanup instructions revoke any approvals granted above. They are
	// submitted best effort after the main batches regardless of outcome.
	Cleanup []solana.Instruction
}

// plannerContext accumulates planner output across policies. Auxiliary
// account metas are appended to the mint instruction's trailing account list
// in policy order.
type plannerContext struct {
	client solana.Client
	log    *logrus.Entry

	snapshot *Snapshot
	payer    ed25519.PublicKey
	asset    ed25519.PublicKey

	instructions []solana.Instruction
	auxiliary    []solana.AccountMeta
	signers      []ed25519.PrivateKey
	cleanup      []solana.Instruction
}

// policy is one optional sub-protocol of the sale. Policies are evaluated in
// a fixed order since the program validates the trailing account list
// positionally.
type policy interface {
	applies(s *Snapshot) bool
	emit(ctx *plannerContext) error
}

// Planner turns a sale snapshot and a paying identity into an ordered
// instruction plan.
type Planner struct {
	client solana.Client
	log    *logrus.Entry

	policies []policy
}

func NewPlanner(client solana.Client) *Planner {
	return &Planner{
		client: client,
		log:    logrus.StandardLogger().WithField("type", "mint/planner"),
		policies: []policy{
			gatekeeperPolicy{},
			whitelistPolicy{},
			tokenPaymentPolicy{},
		},
	}
}

// Plan builds the instruction sequence for one mint attempt by the payer.
func (p *Planner) Plan(snapshot *Snapshot, payer ed25519.PublicKey) (*Plan, error) {
	assetPub, assetPriv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate asset keypair")
	}

	ctx := &plannerContext{
		client:   p.client,
		log:      p.log,
		snapshot: snapshot,
		payer:    payer,
		asset:    assetPub,
	}

	if err := p.emitAssetCreation(ctx); err != nil {
		return nil, err
	}

	for _, pol := range p.policies {
		if !pol.applies(snapshot) {
			continue
		}
		if err := pol.emit(ctx); err != nil {
			return nil, err
		}
	}

	if err := p.emitMint(ctx); err != nil {
		return nil, err
	}

	// Collection linking is an enhancement, not a precondition: failures
	// here are logged and skipped.
	p.emitCollectionLink(ctx)

	return &Plan{
		Instructions: ctx.instructions,
		Asset:        assetPriv,
		Signers:      ctx.signers,
		Cleanup:      ctx.cleanup,
	}, nil
}

// emitAssetCreation emits the four unconditional instructions: create the
// mint account, initialize it as a zero-decimal token, create the payer's
// associated account, and mint the single unit into it.
func (p *Planner) emitAssetCreation(ctx *plannerContext) error {
	rent, err := p.client.GetMinimumBalanceForRentExemption(token.MintSize)
	if err != nil {
		return errors.Wrap(err, "failed to get mint rent exemption")
	}

	createATA, assetATA, err := token.CreateAssociatedTokenAccount(ctx.payer, ctx.payer, ctx.asset)
	if err != nil {
		return errors.Wrap(err, "failed to derive asset custody account")
	}

	ctx.instructions = append(ctx.instructions,
		system.CreateAccount(ctx.payer, ctx.asset, token.ProgramKey, rent, token.MintSize),
		token.InitializeMint(ctx.asset, ctx.payer, ctx.payer, 0),
		createATA,
		token.MintTo(ctx.asset, assetATA, ctx.payer, 1),
	)

	return nil
}

// emitMint derives the mint instruction's PDAs and emits it with the
// accumulated trailing accounts. An empty trailing list is omitted entirely.
func (p *Planner) emitMint(ctx *plannerContext) error {
	metadata, err := metaplex.GetMetadataAddress(ctx.asset)
	if err != nil {
		return errors.Wrap(err, "failed to derive metadata address")
	}

	masterEdition, err := metaplex.GetMasterEditionAddress(ctx.asset)
	if err != nil {
		return errors.Wrap(err, "failed to derive master edition address")
	}

	creator, creatorBump, err := candymachine.GetCreatorAddress(ctx.snapshot.CandyMachine)
	if err != nil {
		return errors.Wrap(err, "failed to derive candy machine creator")
	}

	ctx.instructions = append(ctx.instructions, candymachine.MintNft(
		candymachine.MintNftAccounts{
			CandyMachine:    ctx.snapshot.CandyMachine,
			Creator:         creator,
			Payer:           ctx.payer,
			Wallet:          ctx.snapshot.State.Wallet,
			Metadata:        metadata,
			MasterEdition:   masterEdition,
			Mint:            ctx.asset,
			MintAuthority:   ctx.payer,
			UpdateAuthority: ctx.payer,
		},
		creatorBump,
		ctx.auxiliary...,
	))

	return nil
}

// emitCollectionLink appends the set-collection instruction when the sale has
// a collection and retains authority over minted items. Read and decode
// failures are logged and skipped.
func (p *Planner) emitCollectionLink(ctx *plannerContext) {
	if !ctx.snapshot.State.Data.RetainAuthority {
		return
	}

	log := p.log.WithField("candy_machine", base58.Encode(ctx.snapshot.CandyMachine))

	collectionAddr, err := candymachine.GetCollectionAddress(ctx.snapshot.CandyMachine)
	if err != nil {
		log.WithError(err).Warn("failed to derive collection address, skipping collection link")
		return
	}

	info, err := p.client.GetAccountInfo(collectionAddr, solana.CommitmentConfirmed)
	if err == solana.ErrNoAccountInfo {
		return
	} else if err != nil {
		log.WithError(err).Warn("failed to fetch collection account, skipping collection link")
		return
	}

	var collection candymachine.CollectionPDA
	if err := collection.Unmarshal(info.Data); err != nil {
		log.WithError(err).Warn("failed to decode collection account, skipping collection link")
		return
	}

	metadata, err := metaplex.GetMetadataAddress(ctx.asset)
	if err != nil {
		log.WithError(err).Warn("failed to derive metadata address, skipping collection link")
		return
	}

	collectionMetadata, err := metaplex.GetMetadataAddress(collection.Mint)
	if err != nil {
		log.WithError(err).Warn("failed to derive collection metadata, skipping collection link")
		return
	}

	collectionMasterEdition, err := metaplex.GetMasterEditionAddress(collection.Mint)
	if err != nil {
		log.WithError(err).Warn("failed to derive collection master edition, skipping collection link")
		return
	}

	authorityRecord, err := metaplex.GetCollectionAuthorityRecordAddress(collection.Mint, collectionAddr)
	if err != nil {
		log.WithError(err).Warn("failed to derive collection authority record, skipping collection link")
		return
	}

	ctx.instructions = append(ctx.instructions, candymachine.SetCollectionDuringMint(
		candymachine.SetCollectionDuringMintAccounts{
			CandyMachine:            ctx.snapshot.CandyMachine,
			Metadata:                metadata,
			Payer:                   ctx.payer,
			CollectionPDA:           collectionAddr,
			CollectionMint:          collection.Mint,
			CollectionMetadata:      collectionMetadata,
			CollectionMasterEdition: collectionMasterEdition,
			Authority:               ctx.snapshot.State.Authority,
			AuthorityRecord:         authorityRecord,
		},
	))
}

// gatekeeperPolicy appends the payer's gateway token, and the expiry
// accounts when the network expires tokens on use.
type gatekeeperPolicy struct{}

func (gatekeeperPolicy) applies(s *Snapshot) bool {
	return s.State.Data.Gatekeeper != nil
}

func (gatekeeperPolicy) emit(ctx *plannerContext) error {
	gk := ctx.snapshot.State.Data.Gatekeeper

	networkToken, err := gateway.GetNetworkTokenAddress(ctx.payer, gk.Network)
	if err != nil {
		return errors.Wrap(ErrUnsupportedConfig, "cannot derive gateway token")
	}

	ctx.auxiliary = append(ctx.auxiliary, solana.NewAccountMeta(networkToken, false))

	if gk.ExpireOnUse {
		networkExpire, err := gateway.GetNetworkExpireAddress(gk.Network)
		if err != nil {
			return errors.Wrap(ErrUnsupportedConfig, "cannot derive gateway network expire")
		}

		ctx.auxiliary = append(ctx.auxiliary,
			solana.NewReadonlyAccountMeta(gateway.ProgramKey, false),
			solana.NewReadonlyAccountMeta(networkExpire, false),
		)
	}

	return nil
}

// whitelistPolicy appends the payer's whitelist token account and, in burn
// mode, a transient burn authority. The approve/revoke pair is only emitted
// when the whitelist token account already exists.
type whitelistPolicy struct{}

func (whitelistPolicy) applies(s *Snapshot) bool {
	return s.State.Data.Whitelist != nil
}

func (whitelistPolicy) emit(ctx *plannerContext) error {
	wl := ctx.snapshot.State.Data.Whitelist

	whitelistToken, err := token.GetAssociatedAccount(ctx.payer, wl.Mint)
	if err != nil {
		return errors.Wrap(ErrUnsupportedConfig, "cannot derive whitelist token account")
	}

	ctx.auxiliary = append(ctx.auxiliary, solana.NewAccountMeta(whitelistToken, false))

	if wl.Mode != candymachine.WhitelistBurnEveryTime {
		return nil
	}

	burnAuthorityPub, burnAuthorityPriv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return errors.Wrap(err, "failed to generate burn authority")
	}

	ctx.auxiliary = append(ctx.auxiliary,
		solana.NewAccountMeta(wl.Mint, false),
		solana.NewReadonlyAccountMeta(burnAuthorityPub, true),
	)
	ctx.signers = append(ctx.signers, burnAuthorityPriv)

	// The program burns one whitelist token through the transient
	// authority, so the approval is only needed when the token account
	// exists. A missing account simply means no token to burn.
	_, err = ctx.client.GetAccountInfo(whitelistToken, solana.CommitmentConfirmed)
	if err == solana.ErrNoAccountInfo {
		return nil
	} else if err != nil {
		return errors.Wrap(err, "failed to check whitelist token account")
	}

	ctx.instructions = append(ctx.instructions,
		token.Approve(whitelistToken, burnAuthorityPub, ctx.payer, 1))
	ctx.cleanup = append(ctx.cleanup,
		token.Revoke(whitelistToken, ctx.payer))

	return nil
}

// tokenPaymentPolicy handles sales priced in an SPL token rather than
// lamports: the program pulls the price through a transient transfer
// authority over the payer's token account.
type tokenPaymentPolicy struct{}

func (tokenPaymentPolicy) applies(s *Snapshot) bool {
	return len(s.State.TokenMint) > 0
}

func (tokenPaymentPolicy) emit(ctx *plannerContext) error {
	state := &ctx.snapshot.State

	payingAccount, err := token.GetAssociatedAccount(ctx.payer, state.TokenMint)
	if err != nil {
		return errors.Wrap(ErrUnsupportedConfig, "cannot derive paying token account")
	}

	transferAuthorityPub, transferAuthorityPriv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return errors.Wrap(err, "failed to generate transfer authority")
	}

	ctx.auxiliary = append(ctx.auxiliary,
		solana.NewAccountMeta(payingAccount, false),
		solana.NewReadonlyAccountMeta(transferAuthorityPub, true),
	)
	ctx.signers = append(ctx.signers, transferAuthorityPriv)

	ctx.instructions = append(ctx.instructions,
		token.Approve(payingAccount, transferAuthorityPub, ctx.payer, state.Data.Price))
	ctx.cleanup = append(ctx.cleanup,
		token.Revoke(payingAccount, ctx.payer))

	return nil
}
