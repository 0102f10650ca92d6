package mint

import (
	"crypto/ed25519"
	"time"

	"github.com/pkg/errors"

	"github.com/dropworks/mint-engine/pkg/candymachine"
	"github.com/dropworks/mint-engine/pkg/solana"
)

var (
	// ErrNotFound indicates the candy machine account does not exist.
	ErrNotFound = errors.New("candy machine account not found")
)

// ReadSnapshot fetches and decodes the candy machine account, then projects
// it into a snapshot using the provided wall clock time.
//
// A missing account maps to ErrNotFound, a malformed account to
// candymachine.ErrInvalidAccount, and everything else is a transport failure
// safe to retry from scratch.
func ReadSnapshot(client solana.Client, candyMachineID ed25519.PublicKey, now time.Time) (*Snapshot, error) {
	info, err := client.GetAccountInfo(candyMachineID, solana.CommitmentConfirmed)
	if err == solana.ErrNoAccountInfo {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to fetch candy machine account")
	}

	var state candymachine.State
	if err := state.Unmarshal(info.Data); err != nil {
		return nil, err
	}

	return NewSnapshot(candyMachineID, state, now), nil
}
