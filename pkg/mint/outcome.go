package mint

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/dropworks/mint-engine/pkg/candymachine"
	"github.com/dropworks/mint-engine/pkg/solana"
)

// Outcome is the closed set of user facing mint results. The caller can
// always render Message and reset its state; raw remote errors never reach
// the user.
type Outcome int

const (
	OutcomeSucceeded Outcome = iota
	OutcomeSoldOut
	OutcomeNotLive
	OutcomeInsufficientFunds
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeSoldOut:
		return "sold_out"
	case OutcomeNotLive:
		return "not_live"
	case OutcomeInsufficientFunds:
		return "insufficient_funds"
	default:
		return "failed"
	}
}

// Message returns the text to display to the user.
func (o Outcome) Message() string {
	switch o {
	case OutcomeSucceeded:
		return "Congratulations! Mint succeeded!"
	case OutcomeSoldOut:
		return "SOLD OUT!"
	case OutcomeNotLive:
		return "Mint is not live yet!"
	case OutcomeInsufficientFunds:
		return "Insufficient funds to mint. Please fund your wallet."
	default:
		return "Mint failed! Please try again!"
	}
}

// Classify maps a submission failure to an outcome. It inspects structured
// program error codes first and falls back to substring matching on the
// error text. It never fails itself.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeFailed
	}

	if code := customErrorCode(err); code != nil {
		switch *code {
		case candymachine.ErrorCandyMachineEmpty:
			return OutcomeSoldOut
		case candymachine.ErrorCandyMachineNotLive:
			return OutcomeNotLive
		case candymachine.ErrorNotEnoughTokens:
			return OutcomeInsufficientFunds
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "0x137"):
		return OutcomeSoldOut
	case strings.Contains(msg, "0x138"):
		return OutcomeNotLive
	case strings.Contains(msg, "0x135"):
		return OutcomeInsufficientFunds
	default:
		return OutcomeFailed
	}
}

func customErrorCode(err error) *solana.CustomError {
	switch t := errors.Cause(err).(type) {
	case *solana.InstructionError:
		return t.CustomError()
	case solana.InstructionError:
		return t.CustomError()
	case *solana.TransactionError:
		if ie := t.InstructionError(); ie != nil {
			return ie.CustomError()
		}
	case solana.CustomError:
		return &t
	}

	return nil
}
