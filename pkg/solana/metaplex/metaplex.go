// Package metaplex provides address derivation and account decoding for the
// Metaplex token metadata program.
package metaplex

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58/base58"
	"github.com/pkg/errors"

	"github.com/dropworks/mint-engine/pkg/solana"
	"github.com/dropworks/mint-engine/pkg/solana/binary"
)

// TokenMetadataProgramKey is the address of the token metadata program.
//
// Current key: metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s
var TokenMetadataProgramKey ed25519.PublicKey

func init() {
	decoded, err := base58.Decode("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")
	if err != nil {
		panic(err)
	}
	TokenMetadataProgramKey = decoded
}

const (
	maxNameLength   = 32
	maxSymbolLength = 10
	maxURILength    = 200
	maxCreatorLen   = 32 + 1 + 1

	// MaxMetadataLen is the allocated size of a metadata account.
	MaxMetadataLen = 1 + 32 + 32 + 4 + maxNameLength + 4 + maxSymbolLength + 4 + maxURILength + 2 + 1 + 4 + 5*maxCreatorLen + 1 + 1 + 9 + 172

	// CreatorArrayStart is the byte offset of the creators vector within a
	// metadata account, used for memcmp filters on getProgramAccounts.
	CreatorArrayStart = 1 + 32 + 32 + 4 + maxNameLength + 4 + maxSymbolLength + 4 + maxURILength + 2 + 1 + 4
)

// GetMetadataAddress returns the metadata account address for a mint.
func GetMetadataAddress(mint ed25519.PublicKey) (ed25519.PublicKey, error) {
	return solana.FindProgramAddress(
		TokenMetadataProgramKey,
		[]byte("metadata"),
		TokenMetadataProgramKey,
		mint,
	)
}

// GetMasterEditionAddress returns the master edition account address for a
// mint.
func GetMasterEditionAddress(mint ed25519.PublicKey) (ed25519.PublicKey, error) {
	return solana.FindProgramAddress(
		TokenMetadataProgramKey,
		[]byte("metadata"),
		TokenMetadataProgramKey,
		mint,
		[]byte("edition"),
	)
}

// GetCollectionAuthorityRecordAddress returns the record account that marks
// the authority as a delegated collection authority for the collection mint.
func GetCollectionAuthorityRecordAddress(collectionMint, authority ed25519.PublicKey) (ed25519.PublicKey, error) {
	return solana.FindProgramAddress(
		TokenMetadataProgramKey,
		[]byte("metadata"),
		TokenMetadataProgramKey,
		collectionMint,
		[]byte("collection_authority"),
		authority,
	)
}

type Creator struct {
	Address  ed25519.PublicKey
	Verified bool
	Share    uint8
}

// Metadata is a partial decoding of a token metadata account. Only the fields
// needed for displaying minted items are retained.
type Metadata struct {
	UpdateAuthority      ed25519.PublicKey
	Mint                 ed25519.PublicKey
	Name                 string
	Symbol               string
	URI                  string
	SellerFeeBasisPoints uint16
	Creators             []Creator
}

func (m *Metadata) Unmarshal(b []byte) error {
	r := binary.NewReader(b)

	r.ReadUint8() // account key
	m.UpdateAuthority = r.ReadKey32()
	m.Mint = r.ReadKey32()
	m.Name = trimPadding(r.ReadString())
	m.Symbol = trimPadding(r.ReadString())
	m.URI = trimPadding(r.ReadString())
	m.SellerFeeBasisPoints = r.ReadUint16()

	if r.ReadOption() {
		count := r.ReadUint32()
		if count > 5 {
			return errors.Errorf("invalid creator count: %d", count)
		}
		for i := uint32(0); i < count && r.Err() == nil; i++ {
			m.Creators = append(m.Creators, Creator{
				Address:  r.ReadKey32(),
				Verified: r.ReadBool(),
				Share:    r.ReadUint8(),
			})
		}
	}

	return errors.Wrap(r.Err(), "invalid metadata account")
}

// Metadata string fields are stored at fixed capacity and padded with NULs.
func trimPadding(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return s[:i]
		}
	}
	return s
}
