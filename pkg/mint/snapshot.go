// Package mint implements the client side of a candy machine sale: reading
// the sale configuration, planning the instruction sequence for one mint
// attempt, submitting it in signed batches, and classifying failures into
// user facing outcomes.
package mint

import (
	"crypto/ed25519"
	"time"

	"github.com/dropworks/mint-engine/pkg/candymachine"
)

// Snapshot is a point-in-time projection of a candy machine account. Derived
// fields are computed with the caller's wall clock at read time, and a
// snapshot is never reused across mint attempts since the redeemed count
// changes externally.
type Snapshot struct {
	CandyMachine ed25519.PublicKey
	State        candymachine.State

	ItemsRemaining uint64
	IsSoldOut      bool
	IsPresale      bool
	IsActive       bool

	FetchedAt time.Time
}

// NewSnapshot computes the derived sale flags from the decoded state.
//
// The sale is in presale when a whitelist policy grants presale access and
// the public go-live date has not passed. The sale is active when either the
// presale or the public window is open and any configured end condition has
// not been reached.
func NewSnapshot(candyMachine ed25519.PublicKey, state candymachine.State, now time.Time) *Snapshot {
	s := &Snapshot{
		CandyMachine: candyMachine,
		State:        state,
		FetchedAt:    now,
	}

	s.ItemsRemaining = state.ItemsRemaining()
	s.IsSoldOut = s.ItemsRemaining == 0

	ts := now.Unix()

	goLive := state.Data.GoLiveDate
	if wl := state.Data.Whitelist; wl != nil && wl.Presale {
		s.IsPresale = goLive == nil || *goLive > ts
	}

	open := s.IsPresale || (goLive != nil && ts >= *goLive)

	ended := false
	if es := state.Data.EndSettings; es != nil {
		switch es.Type {
		case candymachine.EndSettingDate:
			ended = ts >= int64(es.Number)
		case candymachine.EndSettingAmount:
			ended = state.ItemsRedeemed >= es.Number
		}
	}

	s.IsActive = open && !ended

	return s
}
