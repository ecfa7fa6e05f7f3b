// Package keychain provides thread-safe access to the OS credential store.
//
// It is the last link in the token discovery chain: a Logfire token written
// here (for example by `logfire auth set-token`) is found by queries that
// were given no explicit token, no environment variable, and no credentials
// file. Only the token itself is stored; non-secret settings live in the
// config file.
package keychain

import (
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
)

// ServiceName identifies the keychain/credential store namespace.
const ServiceName = "logfire"

// KeyToken is the keychain key under which the Logfire token is stored.
const KeyToken = "token"

// ErrNotFound is returned when no token is stored in the keychain.
var ErrNotFound = errors.New("keychain: token not found")

// Manager provides thread-safe operations on the OS keychain.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

var (
	globalMu      sync.Mutex
	globalManager *Manager
)

// GetManager returns the process-wide keychain manager, opening the OS
// keyring on first call. A failed open is retried on subsequent calls.
func GetManager() (*Manager, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	globalManager = &Manager{ring: ring}
	return globalManager, nil
}

// openRing opens the OS keyring using native platform backends only.
// No plaintext file fallback: a token either lands in a real secret store or
// the caller hears about it.
func openRing() (keyring.Keyring, error) {
	var allowedBackends []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		allowedBackends = []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend}
	case "windows":
		allowedBackends = []keyring.BackendType{keyring.WinCredBackend}
	case "linux":
		allowedBackends = []keyring.BackendType{keyring.SecretServiceBackend, keyring.KWalletBackend, keyring.PassBackend}
	default:
		return nil, errors.New("secure token storage not supported on this OS")
	}

	return keyring.Open(keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowedBackends,
		PassPrefix:      ServiceName,
		WinCredPrefix:   ServiceName,
	})
}

// SaveToken stores the Logfire token in the OS keychain.
func (m *Manager) SaveToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ring.Set(keyring.Item{Key: KeyToken, Data: []byte(token)})
}

// LoadToken retrieves the Logfire token from the OS keychain.
// Returns ErrNotFound when no token is stored.
func (m *Manager) LoadToken() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, err := m.ring.Get(KeyToken)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	if len(it.Data) == 0 {
		return "", ErrNotFound
	}
	return string(it.Data), nil
}

// ClearToken removes the stored Logfire token. Clearing a token that was
// never stored is not an error.
func (m *Manager) ClearToken() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ring.Remove(KeyToken); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}
