package token

import (
	"crypto/ed25519"
	"testing"

	"github.com/mr-tron/base58/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) ed25519.PublicKey {
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return pub
}

func TestProgramKeys(t *testing.T) {
	assert.Equal(t, "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA", base58.Encode(ProgramKey))
	assert.Equal(t, "ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL", base58.Encode(AssociatedTokenAccountProgramKey))
}

func TestInitializeMint(t *testing.T) {
	mint := testKey(t)
	authority := testKey(t)

	instruction := InitializeMint(mint, authority, authority, 0)
	assert.EqualValues(t, ProgramKey, instruction.Program)
	require.Len(t, instruction.Data, 2+32+1+32)
	assert.EqualValues(t, byte(CommandInitializeMint), instruction.Data[0])
	assert.EqualValues(t, 0, instruction.Data[1])
	assert.EqualValues(t, 1, instruction.Data[34])

	// No freeze authority.
	instruction = InitializeMint(mint, authority, nil, 9)
	require.Len(t, instruction.Data, 2+32+1)
	assert.EqualValues(t, 9, instruction.Data[1])
	assert.EqualValues(t, 0, instruction.Data[34])
}

func TestApproveRevoke(t *testing.T) {
	source := testKey(t)
	delegate := testKey(t)
	owner := testKey(t)

	approve := Approve(source, delegate, owner, 1)
	assert.Equal(t, []byte{byte(CommandApprove), 1, 0, 0, 0, 0, 0, 0, 0}, approve.Data)
	require.Len(t, approve.Accounts, 3)
	assert.True(t, approve.Accounts[0].IsWritable)
	assert.True(t, approve.Accounts[2].IsSigner)

	revoke := Revoke(source, owner)
	assert.Equal(t, []byte{byte(CommandRevoke)}, revoke.Data)
	require.Len(t, revoke.Accounts, 2)
	assert.EqualValues(t, source, revoke.Accounts[0].PublicKey)
	assert.True(t, revoke.Accounts[1].IsSigner)
}

func TestGetAssociatedAccount(t *testing.T) {
	wallet := testKey(t)
	mint := testKey(t)

	addr, err := GetAssociatedAccount(wallet, mint)
	require.NoError(t, err)

	again, err := GetAssociatedAccount(wallet, mint)
	require.NoError(t, err)
	assert.EqualValues(t, addr, again)

	// Swapping the wallet and mint changes the derivation.
	swapped, err := GetAssociatedAccount(mint, wallet)
	require.NoError(t, err)
	assert.NotEqual(t, addr, swapped)

	instruction, createAddr, err := CreateAssociatedTokenAccount(wallet, wallet, mint)
	require.NoError(t, err)
	assert.EqualValues(t, addr, createAddr)
	assert.EqualValues(t, addr, instruction.Accounts[1].PublicKey)
	assert.Empty(t, instruction.Data)
}

func TestAccount_Unmarshal(t *testing.T) {
	var account Account
	assert.False(t, account.Unmarshal([]byte{1, 2, 3}))

	data := make([]byte, AccountSize)
	mint := testKey(t)
	owner := testKey(t)
	delegate := testKey(t)

	copy(data[0:], mint)
	copy(data[32:], owner)
	data[64] = 5 // amount
	data[72] = 1 // delegate tag
	copy(data[76:], delegate)
	data[108] = byte(AccountStateInitialized)
	data[121] = 2 // delegated amount

	require.True(t, account.Unmarshal(data))
	assert.EqualValues(t, mint, account.Mint)
	assert.EqualValues(t, owner, account.Owner)
	assert.EqualValues(t, 5, account.Amount)
	assert.EqualValues(t, delegate, account.Delegate)
	assert.Equal(t, AccountStateInitialized, account.State)
	assert.EqualValues(t, 2, account.DelegatedAmount)
}
