// Package credentials resolves the Logfire token used to authorize queries.
//
// Resolution consumes an explicit token plus a discovery path and walks a
// fixed chain of locations. Absence of a token is not an error here; the
// caller decides how to report it to the user.
package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/WillDaSilva/logfire/internal/keychain"
)

// EnvVar is the environment variable consulted when no explicit token is given.
const EnvVar = "LOGFIRE_TOKEN"

// FileName is the credentials file looked up inside the discovery path.
const FileName = "credentials.json"

// Source resolves a token from an explicit value and a discovery path.
// Implementations return ("", nil) when no token can be found.
type Source interface {
	Resolve(ctx context.Context, explicit string, dataDir string) (string, error)
}

// DefaultSource resolves tokens in order: explicit value, the LOGFIRE_TOKEN
// environment variable, the credentials file in the discovery path, and
// finally the OS keychain.
type DefaultSource struct{}

// Resolve walks the discovery chain and returns the first token found.
func (DefaultSource) Resolve(ctx context.Context, explicit string, dataDir string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if tok := strings.TrimSpace(os.Getenv(EnvVar)); tok != "" {
		return tok, nil
	}
	if tok, err := fileToken(dataDir); err != nil {
		return "", err
	} else if tok != "" {
		return tok, nil
	}
	return keychainToken()
}

// credentialsFile is the on-disk shape of the persisted token.
type credentialsFile struct {
	Token string `json:"token"`
}

// fileToken reads the credentials file from the discovery path.
// A missing path or file yields no token; a malformed file is an error so a
// corrupted credential is not silently ignored.
func fileToken(dataDir string) (string, error) {
	if dataDir == "" {
		return "", nil
	}
	data, err := os.ReadFile(filepath.Join(dataDir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	var c credentialsFile
	if err := json.Unmarshal(data, &c); err != nil {
		return "", err
	}
	return strings.TrimSpace(c.Token), nil
}

// keychainToken consults the OS keychain. Hosts without a usable secret
// store simply contribute nothing to the chain.
func keychainToken() (string, error) {
	km, err := keychain.GetManager()
	if err != nil {
		return "", nil
	}
	tok, err := km.LoadToken()
	if err != nil {
		if errors.Is(err, keychain.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return tok, nil
}

// WriteFile persists a token as the credentials file inside dataDir,
// creating the directory if needed. Written with 0600 permissions.
func WriteFile(dataDir string, token string) error {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(credentialsFile{Token: token}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dataDir, FileName), b, 0o600)
}
