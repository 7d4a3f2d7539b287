package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piresc/wellnest/internal/pkg/models"
)

const devKeyBits = 2048

// EnsureDevKeyPair writes a fresh unencrypted RSA key pair to the configured paths
// when the private key file does not exist yet. It reports whether keys were created.
// Only meant for local runs; both binaries read the same files afterwards.
func EnsureDevKeyPair(cfg models.JWTConfig) (bool, error) {
	if cfg.PrivateKeyPath == "" || cfg.PrivateKeyPassphrase != "" {
		return false, nil
	}
	if _, err := os.Stat(cfg.PrivateKeyPath); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to stat private key: %w", err)
	}

	key, err := rsa.GenerateKey(rand.Reader, devKeyBits)
	if err != nil {
		return false, fmt.Errorf("failed to generate key pair: %w", err)
	}

	// public half first, so a verifier never sees a private key without it
	if cfg.PublicKeyPath != "" {
		pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
		if err != nil {
			return false, fmt.Errorf("failed to encode public key: %w", err)
		}
		if err := writePEM(cfg.PublicKeyPath, "PUBLIC KEY", pubDER, 0644); err != nil {
			return false, err
		}
	}

	if err := writePEM(cfg.PrivateKeyPath, "RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(key), 0600); err != nil {
		return false, err
	}
	return true, nil
}

func writePEM(path, blockType string, der []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create key directory: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der}), perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
