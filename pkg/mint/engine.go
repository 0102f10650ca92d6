package mint

import (
	"crypto/ed25519"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dropworks/mint-engine/pkg/solana"
)

// State is the engine's lifecycle state, exposed for UI binding.
type State int

const (
	StateIdle State = iota
	StateFetchingConfig
	StateReady
	StateMinting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetchingConfig:
		return "fetching_config"
	case StateReady:
		return "ready"
	case StateMinting:
		return "minting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrMintInProgress indicates a mint attempt is already in flight for this
// engine. A second attempt must not begin until the first reaches a terminal
// state.
var ErrMintInProgress = errors.New("mint already in progress")

// Engine drives one candy machine sale for one payer: reading configuration,
// and running single-shot mint attempts.
type Engine struct {
	log          *logrus.Entry
	client       solana.Client
	candyMachine ed25519.PublicKey
	payer        ed25519.PrivateKey

	planner   *Planner
	submitter *Submitter

	mu    sync.Mutex
	state State
}

func NewEngine(client solana.Client, candyMachine ed25519.PublicKey, payer ed25519.PrivateKey) *Engine {
	return &Engine{
		log:          logrus.StandardLogger().WithField("type", "mint/engine"),
		client:       client,
		candyMachine: candyMachine,
		payer:        payer,
		planner:      NewPlanner(client),
		submitter:    NewSubmitter(client, solana.CommitmentConfirmed),
		state:        StateIdle,
	}
}

// State returns the engine's current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) setState(s State) {
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
}

// ReadConfig fetches a fresh sale snapshot. It is side effect free from the
// caller's perspective and may be polled to drive countdown or sold-out
// display.
func (e *Engine) ReadConfig() (*Snapshot, error) {
	e.mu.Lock()
	if e.state == StateMinting {
		e.mu.Unlock()
		return nil, ErrMintInProgress
	}
	e.state = StateFetchingConfig
	e.mu.Unlock()

	snapshot, err := ReadSnapshot(e.client, e.candyMachine, time.Now())
	if err != nil {
		e.setState(StateIdle)
		return nil, err
	}

	e.setState(StateReady)
	return snapshot, nil
}

// Mint runs one complete mint attempt: a fresh configuration read, planning,
// and submission. The returned outcome is always safe to display; the
// submission result carries any confirmed batch signatures.
//
// Mint returns ErrMintInProgress when called while a previous attempt has not
// reached a terminal state.
func (e *Engine) Mint() (SubmissionResult, Outcome, error) {
	e.mu.Lock()
	if e.state == StateMinting {
		e.mu.Unlock()
		return SubmissionResult{}, OutcomeFailed, ErrMintInProgress
	}
	e.state = StateMinting
	e.mu.Unlock()

	// The snapshot is always re-read at mint time since the redeemed count
	// changes externally.
	snapshot, err := ReadSnapshot(e.client, e.candyMachine, time.Now())
	if err != nil {
		e.log.WithError(err).Warn("failed to read sale configuration")
		e.setState(StateFailed)
		return SubmissionResult{}, OutcomeFailed, nil
	}

	if snapshot.IsSoldOut {
		e.setState(StateFailed)
		return SubmissionResult{}, OutcomeSoldOut, nil
	}

	plan, err := e.planner.Plan(snapshot, e.payer.Public().(ed25519.PublicKey))
	if err != nil {
		e.log.WithError(err).Warn("failed to plan mint attempt")
		e.setState(StateFailed)
		return SubmissionResult{}, OutcomeFailed, nil
	}

	result := e.submitter.Submit(plan, e.payer)
	if result.Err != nil {
		e.setState(StateFailed)
		return result, Classify(result.Err), nil
	}

	e.setState(StateSucceeded)
	return result, OutcomeSucceeded, nil
}
