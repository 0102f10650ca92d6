package candymachine

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/dropworks/mint-engine/pkg/solana/binary"
)

var ErrInvalidAccount = errors.New("invalid candy machine account")

type EndSettingType uint8

const (
	EndSettingDate EndSettingType = iota
	EndSettingAmount
)

type WhitelistMode uint8

const (
	WhitelistBurnEveryTime WhitelistMode = iota
	WhitelistNeverBurn
)

type Creator struct {
	Address  ed25519.PublicKey
	Verified bool
	Share    uint8
}

type EndSettings struct {
	Type   EndSettingType
	Number uint64
}

type HiddenSettings struct {
	Name string
	URI  string
	Hash [32]byte
}

type WhitelistMintSettings struct {
	Mode          WhitelistMode
	Mint          ed25519.PublicKey
	Presale       bool
	DiscountPrice *uint64
}

type GatekeeperConfig struct {
	Network     ed25519.PublicKey
	ExpireOnUse bool
}

type Data struct {
	UUID                 string
	Price                uint64
	Symbol               string
	SellerFeeBasisPoints uint16
	MaxSupply            uint64
	IsMutable            bool
	RetainAuthority      bool
	GoLiveDate           *int64
	EndSettings          *EndSettings
	Creators             []Creator
	HiddenSettings       *HiddenSettings
	Whitelist            *WhitelistMintSettings
	ItemsAvailable       uint64
	Gatekeeper           *GatekeeperConfig
}

// State is the deserialized candy machine account.
type State struct {
	Authority     ed25519.PublicKey
	Wallet        ed25519.PublicKey
	TokenMint     ed25519.PublicKey
	ItemsRedeemed uint64
	Data          Data
}

// ItemsRemaining returns the number of items still available to mint. Redeemed
// counts past the available count clamp to zero.
func (s *State) ItemsRemaining() uint64 {
	if s.ItemsRedeemed >= s.Data.ItemsAvailable {
		return 0
	}
	return s.Data.ItemsAvailable - s.ItemsRedeemed
}

func (s *State) Unmarshal(b []byte) error {
	if len(b) < 8 {
		return ErrInvalidAccount
	}
	if !bytes.Equal(b[:8], accountDiscriminator("CandyMachine")) {
		return ErrInvalidAccount
	}

	r := binary.NewReader(b[8:])

	s.Authority = r.ReadKey32()
	s.Wallet = r.ReadKey32()
	if r.ReadOption() {
		s.TokenMint = r.ReadKey32()
	} else {
		s.TokenMint = nil
	}
	s.ItemsRedeemed = r.ReadUint64()

	d := &s.Data
	d.UUID = r.ReadString()
	d.Price = r.ReadUint64()
	d.Symbol = r.ReadString()
	d.SellerFeeBasisPoints = r.ReadUint16()
	d.MaxSupply = r.ReadUint64()
	d.IsMutable = r.ReadBool()
	d.RetainAuthority = r.ReadBool()

	if r.ReadOption() {
		v := r.ReadInt64()
		d.GoLiveDate = &v
	} else {
		d.GoLiveDate = nil
	}

	if r.ReadOption() {
		d.EndSettings = &EndSettings{
			Type:   EndSettingType(r.ReadUint8()),
			Number: r.ReadUint64(),
		}
	} else {
		d.EndSettings = nil
	}

	creatorCount := r.ReadUint32()
	if r.Err() == nil && int(creatorCount) > r.Remaining() {
		return ErrInvalidAccount
	}
	d.Creators = nil
	for i := uint32(0); i < creatorCount && r.Err() == nil; i++ {
		d.Creators = append(d.Creators, Creator{
			Address:  r.ReadKey32(),
			Verified: r.ReadBool(),
			Share:    r.ReadUint8(),
		})
	}

	if r.ReadOption() {
		hs := &HiddenSettings{
			Name: r.ReadString(),
			URI:  r.ReadString(),
		}
		copy(hs.Hash[:], r.ReadBytes(32))
		d.HiddenSettings = hs
	} else {
		d.HiddenSettings = nil
	}

	if r.ReadOption() {
		wl := &WhitelistMintSettings{
			Mode:    WhitelistMode(r.ReadUint8()),
			Mint:    r.ReadKey32(),
			Presale: r.ReadBool(),
		}
		if r.ReadOption() {
			v := r.ReadUint64()
			wl.DiscountPrice = &v
		}
		d.Whitelist = wl
	} else {
		d.Whitelist = nil
	}

	d.ItemsAvailable = r.ReadUint64()

	if r.ReadOption() {
		d.Gatekeeper = &GatekeeperConfig{
			Network:     r.ReadKey32(),
			ExpireOnUse: r.ReadBool(),
		}
	} else {
		d.Gatekeeper = nil
	}

	if r.Err() != nil {
		return errors.Wrap(ErrInvalidAccount, r.Err().Error())
	}

	return nil
}

// Marshal serializes the state in the on-chain account layout, including the
// discriminator. Primarily used for constructing test fixtures.
func (s *State) Marshal() []byte {
	w := binary.NewWriter()
	w.WriteBytes(accountDiscriminator("CandyMachine"))

	w.WriteKey32(s.Authority)
	w.WriteKey32(s.Wallet)
	w.WriteOption(len(s.TokenMint) > 0)
	if len(s.TokenMint) > 0 {
		w.WriteKey32(s.TokenMint)
	}
	w.WriteUint64(s.ItemsRedeemed)

	d := &s.Data
	w.WriteString(d.UUID)
	w.WriteUint64(d.Price)
	w.WriteString(d.Symbol)
	w.WriteUint16(d.SellerFeeBasisPoints)
	w.WriteUint64(d.MaxSupply)
	w.WriteBool(d.IsMutable)
	w.WriteBool(d.RetainAuthority)

	w.WriteOption(d.GoLiveDate != nil)
	if d.GoLiveDate != nil {
		w.WriteInt64(*d.GoLiveDate)
	}

	w.WriteOption(d.EndSettings != nil)
	if d.EndSettings != nil {
		w.WriteUint8(uint8(d.EndSettings.Type))
		w.WriteUint64(d.EndSettings.Number)
	}

	w.WriteUint32(uint32(len(d.Creators)))
	for _, c := range d.Creators {
		w.WriteKey32(c.Address)
		w.WriteBool(c.Verified)
		w.WriteUint8(c.Share)
	}

	w.WriteOption(d.HiddenSettings != nil)
	if d.HiddenSettings != nil {
		w.WriteString(d.HiddenSettings.Name)
		w.WriteString(d.HiddenSettings.URI)
		w.WriteBytes(d.HiddenSettings.Hash[:])
	}

	w.WriteOption(d.Whitelist != nil)
	if d.Whitelist != nil {
		w.WriteUint8(uint8(d.Whitelist.Mode))
		w.WriteKey32(d.Whitelist.Mint)
		w.WriteBool(d.Whitelist.Presale)
		w.WriteOption(d.Whitelist.DiscountPrice != nil)
		if d.Whitelist.DiscountPrice != nil {
			w.WriteUint64(*d.Whitelist.DiscountPrice)
		}
	}

	w.WriteUint64(d.ItemsAvailable)

	w.WriteOption(d.Gatekeeper != nil)
	if d.Gatekeeper != nil {
		w.WriteKey32(d.Gatekeeper.Network)
		w.WriteBool(d.Gatekeeper.ExpireOnUse)
	}

	return w.Bytes()
}
