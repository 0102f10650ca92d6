package system

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58/base58"
)

// RentSysVar points to the system variable "Rent"
var RentSysVar ed25519.PublicKey

// ClockSysVar points to the system variable "Clock"
var ClockSysVar ed25519.PublicKey

// SlotHashesSysVar points to the system variable "SlotHashes"
var SlotHashesSysVar ed25519.PublicKey

// InstructionsSysVar points to the system variable "Instructions", which
// allows programs to introspect the other instructions in the transaction.
var InstructionsSysVar ed25519.PublicKey

func init() {
	for _, v := range []struct {
		address string
		dst     *ed25519.PublicKey
	}{
		{"SysvarRent111111111111111111111111111111111", &RentSysVar},
		{"SysvarC1ock11111111111111111111111111111111", &ClockSysVar},
		{"SysvarS1otHashes111111111111111111111111111", &SlotHashesSysVar},
		{"Sysvar1nstructions1111111111111111111111111", &InstructionsSysVar},
	} {
		decoded, err := base58.Decode(v.address)
		if err != nil {
			panic(err)
		}
		*v.dst = decoded
	}
}
