package mint

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58/base58"

	"github.com/dropworks/mint-engine/pkg/solana"
)

// fakeClient is an in-memory solana.Client for engine level tests.
type fakeClient struct {
	accounts map[string]solana.AccountInfo
	rent     uint64

	rentCalls int

	submitted  []solana.Transaction
	submitErrs []error

	statusErr       error
	programAccounts []solana.ProgramAccount
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		accounts: make(map[string]solana.AccountInfo),
		rent:     1_000_000,
	}
}

func (f *fakeClient) setAccount(key ed25519.PublicKey, data []byte) {
	f.accounts[base58.Encode(key)] = solana.AccountInfo{Data: data}
}

func (f *fakeClient) GetAccountInfo(key ed25519.PublicKey, _ solana.Commitment) (solana.AccountInfo, error) {
	info, ok := f.accounts[base58.Encode(key)]
	if !ok {
		return solana.AccountInfo{}, solana.ErrNoAccountInfo
	}
	return info, nil
}

func (f *fakeClient) GetLatestBlockhash() (solana.Blockhash, error) {
	return solana.Blockhash{1}, nil
}

func (f *fakeClient) GetMinimumBalanceForRentExemption(uint64) (uint64, error) {
	f.rentCalls++
	return f.rent, nil
}

func (f *fakeClient) GetFilteredProgramAccounts(ed25519.PublicKey, uint64, uint, []byte) ([]solana.ProgramAccount, error) {
	return f.programAccounts, nil
}

func (f *fakeClient) GetSignatureStatus(solana.Signature, solana.Commitment) (*solana.SignatureStatus, error) {
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return &solana.SignatureStatus{ConfirmationStatus: "finalized"}, nil
}

func (f *fakeClient) GetSignatureStatuses(sigs []solana.Signature) ([]*solana.SignatureStatus, error) {
	statuses := make([]*solana.SignatureStatus, len(sigs))
	for i := range sigs {
		statuses[i] = &solana.SignatureStatus{ConfirmationStatus: "finalized"}
	}
	return statuses, nil
}

func (f *fakeClient) SubmitTransaction(txn solana.Transaction, _ solana.Commitment) (solana.Signature, error) {
	call := len(f.submitted)
	f.submitted = append(f.submitted, txn)

	if call < len(f.submitErrs) && f.submitErrs[call] != nil {
		return solana.Signature{}, f.submitErrs[call]
	}

	var sig solana.Signature
	sig[0] = byte(call + 1)
	return sig, nil
}
