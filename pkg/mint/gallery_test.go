package mint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropworks/mint-engine/pkg/solana"
	"github.com/dropworks/mint-engine/pkg/solana/binary"
)

func metadataAccount(t *testing.T, name, symbol, uri string) []byte {
	updateAuthority, _ := testKey(t)
	mint, _ := testKey(t)

	w := binary.NewWriter()
	w.WriteUint8(4)
	w.WriteKey32(updateAuthority)
	w.WriteKey32(mint)
	w.WriteString(name + "\x00\x00\x00")
	w.WriteString(symbol)
	w.WriteString(uri)
	w.WriteUint16(500)
	w.WriteOption(false)

	return w.Bytes()
}

func TestEngine_Minted(t *testing.T) {
	cm, _ := testKey(t)
	_, payer := testKey(t)
	first, _ := testKey(t)
	second, _ := testKey(t)
	third, _ := testKey(t)

	client := newFakeClient()
	client.programAccounts = []solana.ProgramAccount{
		{
			PublicKey: first,
			Account:   solana.AccountInfo{Data: metadataAccount(t, "Item #1", "DROP", "https://example.com/1.json")},
		},
		{
			PublicKey: second,
			Account:   solana.AccountInfo{Data: []byte("garbage")},
		},
		{
			PublicKey: third,
			Account:   solana.AccountInfo{Data: metadataAccount(t, "Item #2", "DROP", "https://example.com/2.json")},
		},
	}

	engine := NewEngine(client, cm, payer)
	items, err := engine.Minted()
	require.NoError(t, err)

	// The undecodable account is skipped, not fatal.
	require.Len(t, items, 2)
	assert.Equal(t, "Item #1", items[0].Name)
	assert.Equal(t, "DROP", items[0].Symbol)
	assert.Equal(t, "https://example.com/1.json", items[0].URI)
	assert.Equal(t, "Item #2", items[1].Name)
}
