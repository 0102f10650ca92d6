package mint

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/dropworks/mint-engine/pkg/solana"
)

func TestClassify_CustomErrors(t *testing.T) {
	for _, tc := range []struct {
		code     solana.CustomError
		expected Outcome
	}{
		{0x137, OutcomeSoldOut},
		{0x138, OutcomeNotLive},
		{0x135, OutcomeInsufficientFunds},
		{0x999, OutcomeFailed},
	} {
		err := &solana.InstructionError{
			Index: 0,
			Err:   tc.code,
		}
		assert.Equal(t, tc.expected, Classify(err))

		// Wrapping must not hide the code.
		assert.Equal(t, tc.expected, Classify(errors.Wrap(err, "submission failed")))
	}
}

func TestClassify_TextFallback(t *testing.T) {
	for _, tc := range []struct {
		message  string
		expected Outcome
	}{
		{"Transaction simulation failed: custom program error: 0x137", OutcomeSoldOut},
		{"Transaction simulation failed: custom program error: 0x138", OutcomeNotLive},
		{"failed to send transaction: custom program error: 0x135", OutcomeInsufficientFunds},
		{"connection refused", OutcomeFailed},
		{"", OutcomeFailed},
	} {
		assert.Equal(t, tc.expected, Classify(errors.New(tc.message)))
	}
}

func TestClassify_Nil(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Equal(t, OutcomeFailed, Classify(nil))
	})
}

func TestOutcome_Messages(t *testing.T) {
	outcomes := []Outcome{
		OutcomeSucceeded,
		OutcomeSoldOut,
		OutcomeNotLive,
		OutcomeInsufficientFunds,
		OutcomeFailed,
	}

	for _, outcome := range outcomes {
		assert.NotEmpty(t, outcome.Message())
		assert.NotEmpty(t, outcome.String())
	}
}
