package jwt

import (
	"crypto/rsa"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/models"
)

// Claims represents standard JWT claims plus custom fields
type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies RS256 session tokens.
// A service built without a private key can only verify.
type TokenService struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	ttl        time.Duration
	issuer     string
	now        func() time.Time
}

// Option configures a TokenService
type Option func(*TokenService)

// WithClock replaces the clock used for iat/exp and for expiry checks
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) {
		s.now = now
	}
}

// NewTokenService creates a token service from parsed keys.
// publicKey may be nil when privateKey is set; the private key's public half is used.
func NewTokenService(privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey, ttl time.Duration, issuer string, opts ...Option) *TokenService {
	if publicKey == nil && privateKey != nil {
		publicKey = &privateKey.PublicKey
	}

	s := &TokenService{
		privateKey: privateKey,
		publicKey:  publicKey,
		ttl:        ttl,
		issuer:     issuer,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTokenServiceFromConfig loads PEM keys from the configured paths
func NewTokenServiceFromConfig(cfg models.JWTConfig, opts ...Option) (*TokenService, error) {
	var (
		privateKey *rsa.PrivateKey
		publicKey  *rsa.PublicKey
	)

	if cfg.PrivateKeyPath != "" {
		pemBytes, err := os.ReadFile(cfg.PrivateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read private key: %w", err)
		}
		privateKey, err = ParsePrivateKey(pemBytes, cfg.PrivateKeyPassphrase)
		if err != nil {
			return nil, err
		}
	}

	if cfg.PublicKeyPath != "" {
		pemBytes, err := os.ReadFile(cfg.PublicKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read public key: %w", err)
		}
		publicKey, err = ParsePublicKey(pemBytes)
		if err != nil {
			return nil, err
		}
	}

	if privateKey == nil && publicKey == nil {
		return nil, fmt.Errorf("no signing or verification key configured")
	}

	ttl := time.Duration(cfg.Expiration) * time.Minute
	return NewTokenService(privateKey, publicKey, ttl, cfg.Issuer, opts...), nil
}

// ParsePrivateKey decodes a PEM RSA private key, decrypting it when a passphrase is given
func ParsePrivateKey(pemBytes []byte, passphrase string) (*rsa.PrivateKey, error) {
	var (
		key *rsa.PrivateKey
		err error
	)
	if passphrase != "" {
		key, err = jwt.ParseRSAPrivateKeyFromPEMWithPassword(pemBytes, passphrase)
	} else {
		key, err = jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return key, nil
}

// ParsePublicKey decodes a PEM RSA public key
func ParsePublicKey(pemBytes []byte) (*rsa.PublicKey, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	return key, nil
}

// TTL returns the configured token lifetime
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// IssueToken signs a token for subject with the given role.
// It returns the token and its expiry.
func (s *TokenService) IssueToken(subject string, role models.Role) (string, time.Time, error) {
	if s.privateKey == nil {
		return "", time.Time{}, apperror.Internal("token signing is not configured", nil)
	}

	now := s.now().Truncate(time.Second)
	expiresAt := now.Add(s.ttl)

	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tokenString, err := token.SignedString(s.privateKey)
	if err != nil {
		return "", time.Time{}, apperror.Internal("failed to sign token", err)
	}

	return tokenString, expiresAt, nil
}

// VerifyToken checks the signature and expiry of tokenString and returns the caller identity
func (s *TokenService) VerifyToken(tokenString string) (*models.Identity, error) {
	claims := &Claims{}

	// expiry is checked below against the injected clock
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInvalid, "invalid token", err)
	}

	if claims.Subject == "" || !claims.Role.Valid() || claims.ExpiresAt == nil {
		return nil, apperror.Invalid("invalid token claims")
	}

	if !claims.VerifyExpiresAt(s.now(), true) {
		return nil, apperror.Expired("token has expired")
	}

	identity := &models.Identity{
		Subject:   claims.Subject,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		identity.IssuedAt = claims.IssuedAt.Time
	}
	return identity, nil
}
