package jwt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDevKeyPair(t *testing.T) {
	dir := t.TempDir()
	cfg := models.JWTConfig{
		PrivateKeyPath: filepath.Join(dir, "keys", "jwt.pem"),
		PublicKeyPath:  filepath.Join(dir, "keys", "jwt.pub"),
		Expiration:     60,
		Issuer:         "wellnest-test",
	}

	created, err := EnsureDevKeyPair(cfg)
	require.NoError(t, err)
	assert.True(t, created)

	info, err := os.Stat(cfg.PrivateKeyPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	signer, err := NewTokenServiceFromConfig(models.JWTConfig{PrivateKeyPath: cfg.PrivateKeyPath, Expiration: 60})
	require.NoError(t, err)
	tokenString, _, err := signer.IssueToken(uuid.NewString(), models.RoleUser)
	require.NoError(t, err)

	verifier, err := NewTokenServiceFromConfig(models.JWTConfig{PublicKeyPath: cfg.PublicKeyPath})
	require.NoError(t, err)
	_, err = verifier.VerifyToken(tokenString)
	assert.NoError(t, err)

	t.Run("existing keys are kept", func(t *testing.T) {
		before, err := os.ReadFile(cfg.PrivateKeyPath)
		require.NoError(t, err)

		created, err := EnsureDevKeyPair(cfg)
		require.NoError(t, err)
		assert.False(t, created)

		after, err := os.ReadFile(cfg.PrivateKeyPath)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("passphrase configured", func(t *testing.T) {
		created, err := EnsureDevKeyPair(models.JWTConfig{
			PrivateKeyPath:       filepath.Join(dir, "other.pem"),
			PrivateKeyPassphrase: "s3cret",
		})
		require.NoError(t, err)
		assert.False(t, created)
		assert.NoFileExists(t, filepath.Join(dir, "other.pem"))
	})

	t.Run("no paths", func(t *testing.T) {
		created, err := EnsureDevKeyPair(models.JWTConfig{})
		require.NoError(t, err)
		assert.False(t, created)
	})
}

