package main

import (
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mr-tron/base58/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dropworks/mint-engine/pkg/mint"
	"github.com/dropworks/mint-engine/pkg/solana"
)

const envKeypairPath = "SOLANA_KEYPAIR"

func main() {
	logrus.SetLevel(logrus.InfoLevel)
	log := logrus.StandardLogger().WithField("type", "main")

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <status|mint|minted>\n", os.Args[0])
		os.Exit(1)
	}

	if err := run(os.Args[1]); err != nil {
		log.WithError(err).Fatal("command failed")
	}
}

func run(command string) error {
	config, err := mint.LoadConfig()
	if err != nil {
		return err
	}

	client := solana.New(config.Endpoint)

	payer, err := loadKeypair(os.Getenv(envKeypairPath))
	if err != nil {
		return err
	}

	engine := mint.NewEngine(client, config.CandyMachine, payer)

	switch command {
	case "status":
		return showStatus(engine)
	case "mint":
		return runMint(engine)
	case "minted":
		return showMinted(engine)
	default:
		return errors.Errorf("unknown command: %s", command)
	}
}

func showStatus(engine *mint.Engine) error {
	snapshot, err := engine.ReadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("Available: %d\n", snapshot.State.Data.ItemsAvailable)
	fmt.Printf("Redeemed:  %d\n", snapshot.State.ItemsRedeemed)
	fmt.Printf("Remaining: %d\n", snapshot.ItemsRemaining)
	fmt.Printf("Price:     %d\n", snapshot.State.Data.Price)
	fmt.Printf("Active:    %t\n", snapshot.IsActive)
	fmt.Printf("Presale:   %t\n", snapshot.IsPresale)
	fmt.Printf("Sold out:  %t\n", snapshot.IsSoldOut)
	if goLive := snapshot.State.Data.GoLiveDate; goLive != nil {
		fmt.Printf("Go live:   %s\n", time.Unix(*goLive, 0).UTC().Format(time.RFC3339))
	}

	return nil
}

func runMint(engine *mint.Engine) error {
	result, outcome, err := engine.Mint()
	if err != nil {
		return err
	}

	for _, confirmation := range result.Confirmations {
		fmt.Printf("Batch %d: %s\n", confirmation.Batch, base58.Encode(confirmation.Signature[:]))
	}
	fmt.Println(outcome.Message())

	return nil
}

func showMinted(engine *mint.Engine) error {
	items, err := engine.Minted()
	if err != nil {
		return err
	}

	for _, item := range items {
		fmt.Printf("%s (%s): %s\n", item.Name, item.Symbol, item.URI)
	}

	return nil
}

// loadKeypair reads an ed25519 keypair in the Solana CLI's id.json format,
// a JSON array of the 64 private key bytes.
func loadKeypair(path string) (ed25519.PrivateKey, error) {
	if path == "" {
		return nil, errors.Errorf("%s must point to a keypair file", envKeypairPath)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read keypair file")
	}

	var keyBytes []byte
	if err := json.Unmarshal(raw, &keyBytes); err != nil {
		return nil, errors.Wrap(err, "invalid keypair file")
	}
	if len(keyBytes) != ed25519.PrivateKeySize {
		return nil, errors.Errorf("invalid keypair length: %d", len(keyBytes))
	}

	return ed25519.PrivateKey(keyBytes), nil
}
