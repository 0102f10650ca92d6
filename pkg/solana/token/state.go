package token

import (
	"crypto/ed25519"
	"encoding/binary"
)

// AccountSize is the serialized size of a token account.
//
// Reference: https://github.com/solana-labs/solana-program-library/blob/8944f428fe693c3a4226bf766a79be9c75e8e520/token/program/src/state.rs#L129
const AccountSize = 165

type AccountState byte

const (
	// nolint:varcheck,deadcode,unused
	AccountStateUninitialized AccountState = iota
	AccountStateInitialized
	// nolint:varcheck,deadcode,unused
	AccountStateFrozen
)

// Account is an SPL token account.
//
// Reference: https://github.com/solana-labs/solana-program-library/blob/8944f428fe693c3a4226bf766a79be9c75e8e520/token/program/src/state.rs#L86-L106
type Account struct {
	// The mint associated with this account
	Mint ed25519.PublicKey

	// The owner of this account.
	Owner ed25519.PublicKey

	// The amount of tokens this account holds.
	Amount uint64

	// If set, an authority that can transfer up to DelegatedAmount tokens
	// from this account.
	Delegate ed25519.PublicKey

	// The account's state
	State AccountState

	// The amount delegated
	DelegatedAmount uint64
}

func (a *Account) Unmarshal(b []byte) bool {
	if len(b) != AccountSize {
		return false
	}

	var offset int
	a.Mint = make([]byte, ed25519.PublicKeySize)
	copy(a.Mint, b[offset:])
	offset += ed25519.PublicKeySize

	a.Owner = make([]byte, ed25519.PublicKeySize)
	copy(a.Owner, b[offset:])
	offset += ed25519.PublicKeySize

	a.Amount = binary.LittleEndian.Uint64(b[offset:])
	offset += 8

	// COption<Pubkey>: 4 byte tag in the account layout
	if binary.LittleEndian.Uint32(b[offset:]) == 1 {
		a.Delegate = make([]byte, ed25519.PublicKeySize)
		copy(a.Delegate, b[offset+4:])
	}
	offset += 4 + ed25519.PublicKeySize

	a.State = AccountState(b[offset])
	offset++

	// COption<u64> is_native
	offset += 4 + 8

	a.DelegatedAmount = binary.LittleEndian.Uint64(b[offset:])

	return true
}
