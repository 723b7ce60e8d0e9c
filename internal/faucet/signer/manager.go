package signer

import (
	"crypto/ecdsa"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// manager implements key management with thread-safe access
type manager struct {
	material    []byte
	mu          sync.RWMutex
	initialized bool
}

// NewManager creates a new signing key Manager
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewManager() Manager {
	return &manager{
		material:    nil,
		initialized: false,
	}
}

// Initialize stores the raw key material
func (m *manager) Initialize(material string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.material = []byte(material)
	m.initialized = true
}

// Resolve parses the stored hex key material into an ECDSA key and its
// derived account address. An optional 0x prefix is tolerated.
func (m *manager) Resolve() (*Identity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized || len(m.material) == 0 {
		return nil, errors.New("signing key not initialized")
	}

	material := strings.TrimPrefix(string(m.material), "0x")

	privateKey, err := crypto.HexToECDSA(material)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse private key")
	}

	publicKey := privateKey.Public()
	publicKeyECDSA, ok := publicKey.(*ecdsa.PublicKey)
	if !ok {
		return nil, errors.New("failed to cast public key to ECDSA")
	}

	return &Identity{
		PrivateKey: privateKey,
		Address:    crypto.PubkeyToAddress(*publicKeyECDSA),
	}, nil
}

// IsInitialized checks if key material is loaded
func (m *manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.initialized
}

// Clear clears the key material from memory
func (m *manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.material != nil {
		for i := range m.material {
			m.material[i] = 0
		}
		m.material = nil
	}
	m.initialized = false
}
