package mint

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dropworks/mint-engine/pkg/solana"
)

// Confirmation records one confirmed batch.
type Confirmation struct {
	Batch     int
	Signature solana.Signature
}

// SubmissionResult reports, per batch, the confirmed signature, and the first
// failure if one occurred. Partial success is reported, not discarded.
type SubmissionResult struct {
	Confirmations []Confirmation
	Err           error
}

// Submitter partitions a plan into signed transaction batches and submits
// them sequentially, stopping at the first failure. Cleanup instructions are
// always attempted afterwards, regardless of the main outcome, so that any
// granted approvals are revoked.
type Submitter struct {
	client     solana.Client
	commitment solana.Commitment
	log        *logrus.Entry
}

func NewSubmitter(client solana.Client, commitment solana.Commitment) *Submitter {
	return &Submitter{
		client:     client,
		commitment: commitment,
		log:        logrus.StandardLogger().WithField("type", "mint/submitter"),
	}
}

// Submit signs and submits the plan's batches on behalf of the payer.
func (s *Submitter) Submit(plan *Plan, payer ed25519.PrivateKey) SubmissionResult {
	var result SubmissionResult

	payerPub := payer.Public().(ed25519.PublicKey)

	signers := append([]ed25519.PrivateKey{payer, plan.Asset}, plan.Signers...)

	batches := partition(payerPub, plan.Instructions)
	for i, txn := range batches {
		sig, err := s.submitBatch(txn, signers)
		if err != nil {
			s.log.WithError(err).WithField("batch", i).Warn("batch submission failed")
			result.Err = err
			break
		}

		s.log.WithFields(logrus.Fields{
			"batch":     i,
			"signature": base58.Encode(sig[:]),
		}).Debug("batch confirmed")

		result.Confirmations = append(result.Confirmations, Confirmation{
			Batch:     i,
			Signature: sig,
		})
	}

	for i, txn := range partition(payerPub, plan.Cleanup) {
		if _, err := s.submitBatch(txn, signers); err != nil {
			s.log.WithError(err).WithField("batch", i).Warn("cleanup submission failed")
		}
	}

	return result
}

// submitBatch signs the transaction with the required subset of signers,
// submits it, and waits for the requested commitment.
func (s *Submitter) submitBatch(txn solana.Transaction, signers []ed25519.PrivateKey) (sig solana.Signature, err error) {
	blockhash, err := s.client.GetLatestBlockhash()
	if err != nil {
		return sig, errors.Wrap(err, "failed to get latest blockhash")
	}
	txn.SetBlockhash(blockhash)

	required := make([]ed25519.PrivateKey, 0, len(signers))
	for _, signer := range signers {
		if txn.HasSigner(signer.Public().(ed25519.PublicKey)) {
			required = append(required, signer)
		}
	}
	if err := txn.Sign(required...); err != nil {
		return sig, errors.Wrap(err, "failed to sign transaction")
	}

	sig, err = s.client.SubmitTransaction(txn, s.commitment)
	if err != nil {
		return sig, err
	}

	if _, err := s.client.GetSignatureStatus(sig, s.commitment); err != nil {
		return sig, err
	}

	return sig, nil
}

// partition greedily packs instructions into transactions under the
// transport's size limit. The planner's output normally fits one batch.
func partition(payer ed25519.PublicKey, instructions []solana.Instruction) []solana.Transaction {
	if len(instructions) == 0 {
		return nil
	}

	var batches []solana.Transaction
	var current []solana.Instruction

	for _, instruction := range instructions {
		candidate := make([]solana.Instruction, len(current), len(current)+1)
		copy(candidate, current)
		candidate = append(candidate, instruction)

		txn := solana.NewTransaction(payer, candidate...)
		if len(txn.Marshal()) > solana.MaxTransactionSize && len(current) > 0 {
			batches = append(batches, solana.NewTransaction(payer, current...))
			current = []solana.Instruction{instruction}
			continue
		}

		current = candidate
	}

	return append(batches, solana.NewTransaction(payer, current...))
}
