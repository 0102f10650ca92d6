package mint

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58/base58"
	"github.com/pkg/errors"

	"github.com/dropworks/mint-engine/pkg/candymachine"
	"github.com/dropworks/mint-engine/pkg/solana/metaplex"
)

// MintedItem is one item already minted from the sale.
type MintedItem struct {
	Metadata ed25519.PublicKey
	Name     string
	Symbol   string
	URI      string
}

// Minted enumerates the metadata accounts of items minted by this candy
// machine, matched by the creator PDA in the first creator slot. Accounts
// that fail to decode are logged and skipped.
func (e *Engine) Minted() ([]MintedItem, error) {
	creator, _, err := candymachine.GetCreatorAddress(e.candyMachine)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive candy machine creator")
	}

	accounts, err := e.client.GetFilteredProgramAccounts(
		metaplex.TokenMetadataProgramKey,
		metaplex.MaxMetadataLen,
		metaplex.CreatorArrayStart,
		creator,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate metadata accounts")
	}

	items := make([]MintedItem, 0, len(accounts))
	for _, account := range accounts {
		var metadata metaplex.Metadata
		if err := metadata.Unmarshal(account.Account.Data); err != nil {
			e.log.WithError(err).
				WithField("account", base58.Encode(account.PublicKey)).
				Warn("skipping undecodable metadata account")
			continue
		}

		items = append(items, MintedItem{
			Metadata: account.PublicKey,
			Name:     metadata.Name,
			Symbol:   metadata.Symbol,
			URI:      metadata.URI,
		})
	}

	return items, nil
}
