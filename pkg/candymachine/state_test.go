package candymachine

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKey(t *testing.T) ed25519.PublicKey {
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return pub
}

func TestState_RoundTrip_Minimal(t *testing.T) {
	state := State{
		Authority:     newTestKey(t),
		Wallet:        newTestKey(t),
		ItemsRedeemed: 3,
		Data: Data{
			UUID:                 "abc123",
			Price:                1000000000,
			Symbol:               "DROP",
			SellerFeeBasisPoints: 500,
			MaxSupply:            0,
			IsMutable:            true,
			RetainAuthority:      false,
			Creators: []Creator{
				{Address: newTestKey(t), Verified: true, Share: 100},
			},
			ItemsAvailable: 10,
		},
	}

	var decoded State
	require.NoError(t, decoded.Unmarshal(state.Marshal()))
	assert.Equal(t, state, decoded)
	assert.EqualValues(t, 7, decoded.ItemsRemaining())
}

func TestState_RoundTrip_AllOptions(t *testing.T) {
	goLive := int64(1700000000)
	discount := uint64(500000000)

	state := State{
		Authority:     newTestKey(t),
		Wallet:        newTestKey(t),
		TokenMint:     newTestKey(t),
		ItemsRedeemed: 10,
		Data: Data{
			UUID:                 "deadbe",
			Price:                2000000,
			Symbol:               "NFT",
			SellerFeeBasisPoints: 250,
			MaxSupply:            1,
			IsMutable:            true,
			RetainAuthority:      true,
			GoLiveDate:           &goLive,
			EndSettings: &EndSettings{
				Type:   EndSettingAmount,
				Number: 100,
			},
			Creators: []Creator{
				{Address: newTestKey(t), Verified: true, Share: 60},
				{Address: newTestKey(t), Verified: false, Share: 40},
			},
			HiddenSettings: &HiddenSettings{
				Name: "Hidden Drop",
				URI:  "https://example.com/hidden.json",
				Hash: [32]byte{9, 9, 9},
			},
			Whitelist: &WhitelistMintSettings{
				Mode:          WhitelistBurnEveryTime,
				Mint:          newTestKey(t),
				Presale:       true,
				DiscountPrice: &discount,
			},
			ItemsAvailable: 100,
			Gatekeeper: &GatekeeperConfig{
				Network:     newTestKey(t),
				ExpireOnUse: true,
			},
		},
	}

	var decoded State
	require.NoError(t, decoded.Unmarshal(state.Marshal()))
	assert.Equal(t, state, decoded)
}

func TestState_InvalidAccounts(t *testing.T) {
	var state State

	assert.Error(t, state.Unmarshal(nil))
	assert.Error(t, state.Unmarshal([]byte{1, 2, 3}))

	// Wrong discriminator.
	collection := CollectionPDA{
		Mint:         newTestKey(t),
		CandyMachine: newTestKey(t),
	}
	assert.Error(t, state.Unmarshal(collection.Marshal()))

	// Truncated account data.
	valid := State{
		Authority: newTestKey(t),
		Wallet:    newTestKey(t),
		Data: Data{
			UUID:           "abc123",
			ItemsAvailable: 1,
		},
	}
	b := valid.Marshal()
	assert.Error(t, state.Unmarshal(b[:len(b)-4]))
}

func TestState_ItemsRemainingClamped(t *testing.T) {
	state := State{
		ItemsRedeemed: 11,
		Data: Data{
			ItemsAvailable: 10,
		},
	}

	assert.EqualValues(t, 0, state.ItemsRemaining())
}

func TestCollectionPDA_RoundTrip(t *testing.T) {
	collection := CollectionPDA{
		Mint:         newTestKey(t),
		CandyMachine: newTestKey(t),
	}

	var decoded CollectionPDA
	require.NoError(t, decoded.Unmarshal(collection.Marshal()))
	assert.Equal(t, collection, decoded)

	assert.Error(t, decoded.Unmarshal([]byte("not an account")))
}
