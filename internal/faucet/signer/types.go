package signer

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
)

// Identity is a resolved signing identity: the ECDSA key and its derived
// account address.
type Identity struct {
	PrivateKey *ecdsa.PrivateKey
	Address    common.Address
}

// Manager holds the process-wide signing key material. It is initialized
// once at startup and read concurrently by request handlers afterwards.
type Manager interface {
	// Initialize stores the raw key material. The material is not validated
	// here; parsing happens on Resolve so a malformed key surfaces as a
	// per-request failure instead of crashing startup.
	Initialize(material string)

	// Resolve parses the stored material into an Identity.
	Resolve() (*Identity, error)

	// IsInitialized checks if key material has been loaded.
	IsInitialized() bool

	// Clear zeroes the key material in memory.
	Clear()
}
