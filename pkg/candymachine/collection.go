package candymachine

import (
	"bytes"
	"crypto/ed25519"

	"github.com/dropworks/mint-engine/pkg/solana/binary"
)

// CollectionPDA is the account the candy machine stores its collection
// assignment in.
type CollectionPDA struct {
	Mint         ed25519.PublicKey
	CandyMachine ed25519.PublicKey
}

func (c *CollectionPDA) Unmarshal(b []byte) error {
	if len(b) < 8 {
		return ErrInvalidAccount
	}
	if !bytes.Equal(b[:8], accountDiscriminator("CollectionPDA")) {
		return ErrInvalidAccount
	}

	r := binary.NewReader(b[8:])
	c.Mint = r.ReadKey32()
	c.CandyMachine = r.ReadKey32()
	if r.Err() != nil {
		return ErrInvalidAccount
	}

	return nil
}

// Marshal serializes the account in the on-chain layout, including the
// discriminator.
func (c *CollectionPDA) Marshal() []byte {
	w := binary.NewWriter()
	w.WriteBytes(accountDiscriminator("CollectionPDA"))
	w.WriteKey32(c.Mint)
	w.WriteKey32(c.CandyMachine)
	return w.Bytes()
}
