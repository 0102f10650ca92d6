package mint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropworks/mint-engine/pkg/candymachine"
	"github.com/dropworks/mint-engine/pkg/solana"
)

func testState(wallet []byte) *candymachine.State {
	return &candymachine.State{
		Wallet: wallet,
		Data: candymachine.Data{
			Price:          1_000_000,
			ItemsAvailable: 10,
		},
	}
}

func TestEngine_ReadConfig(t *testing.T) {
	cm, _ := testKey(t)
	wallet, _ := testKey(t)
	_, payer := testKey(t)

	client := newFakeClient()
	client.setAccount(cm, testState(wallet).Marshal())

	engine := NewEngine(client, cm, payer)
	assert.Equal(t, StateIdle, engine.State())

	snapshot, err := engine.ReadConfig()
	require.NoError(t, err)
	assert.EqualValues(t, 10, snapshot.ItemsRemaining)
	assert.Equal(t, StateReady, engine.State())
}

func TestEngine_MintSucceeds(t *testing.T) {
	cm, _ := testKey(t)
	wallet, _ := testKey(t)
	_, payer := testKey(t)

	client := newFakeClient()
	client.setAccount(cm, testState(wallet).Marshal())

	engine := NewEngine(client, cm, payer)
	result, outcome, err := engine.Mint()
	require.NoError(t, err)

	assert.Equal(t, OutcomeSucceeded, outcome)
	require.Len(t, result.Confirmations, 1)
	assert.Equal(t, StateSucceeded, engine.State())
	assert.Len(t, client.submitted, 1)
}

func TestEngine_SoldOutShortCircuit(t *testing.T) {
	cm, _ := testKey(t)
	wallet, _ := testKey(t)
	_, payer := testKey(t)

	state := testState(wallet)
	state.ItemsRedeemed = 10

	client := newFakeClient()
	client.setAccount(cm, state.Marshal())

	engine := NewEngine(client, cm, payer)

	snapshot, err := engine.ReadConfig()
	require.NoError(t, err)
	assert.True(t, snapshot.IsSoldOut)

	result, outcome, err := engine.Mint()
	require.NoError(t, err)

	// No planning or submission happens for a sold out sale.
	assert.Equal(t, OutcomeSoldOut, outcome)
	assert.Empty(t, result.Confirmations)
	assert.Equal(t, 0, client.rentCalls)
	assert.Empty(t, client.submitted)
	assert.Equal(t, StateFailed, engine.State())
}

func TestEngine_MintFailureClassified(t *testing.T) {
	cm, _ := testKey(t)
	wallet, _ := testKey(t)
	_, payer := testKey(t)

	client := newFakeClient()
	client.setAccount(cm, testState(wallet).Marshal())
	client.submitErrs = []error{
		&solana.InstructionError{
			Index: 0,
			Err:   solana.CustomError(0x138),
		},
	}

	engine := NewEngine(client, cm, payer)
	result, outcome, err := engine.Mint()
	require.NoError(t, err)

	assert.Equal(t, OutcomeNotLive, outcome)
	assert.Empty(t, result.Confirmations)
	assert.Equal(t, StateFailed, engine.State())
}

func TestEngine_MintInProgress(t *testing.T) {
	cm, _ := testKey(t)
	_, payer := testKey(t)

	engine := NewEngine(newFakeClient(), cm, payer)
	engine.setState(StateMinting)

	_, _, err := engine.Mint()
	assert.Equal(t, ErrMintInProgress, err)

	_, err = engine.ReadConfig()
	assert.Equal(t, ErrMintInProgress, err)
}

func TestEngine_MissingCandyMachine(t *testing.T) {
	cm, _ := testKey(t)
	_, payer := testKey(t)

	engine := NewEngine(newFakeClient(), cm, payer)

	_, err := engine.ReadConfig()
	assert.Equal(t, ErrNotFound, err)

	// A mint attempt against a missing sale resolves to the generic
	// outcome rather than an error.
	result, outcome, err := engine.Mint()
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, outcome)
	assert.Empty(t, result.Confirmations)
	assert.Equal(t, StateFailed, engine.State())
}
