package usecase

import (
	"crypto/rand"
	"io"
	"time"

	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/services/auth"
	"golang.org/x/crypto/bcrypt"
)

// AuthUC implements OTP challenges and the sign-up/sign-in flows built on them
type AuthUC struct {
	authRepo auth.AuthRepo
	authGW   auth.AuthGW
	tokens   auth.TokenIssuer
	cfg      *models.Config

	random   io.Reader
	now      func() time.Time
	otpTTL   time.Duration
	hashCost int
}

// Option customizes an AuthUC
type Option func(*AuthUC)

// WithRandom replaces the source OTP codes are drawn from
func WithRandom(r io.Reader) Option {
	return func(u *AuthUC) {
		u.random = r
	}
}

// WithClock replaces the clock used for OTP timestamps
func WithClock(now func() time.Time) Option {
	return func(u *AuthUC) {
		u.now = now
	}
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	authRepo auth.AuthRepo,
	authGW auth.AuthGW,
	tokens auth.TokenIssuer,
	cfg *models.Config,
	opts ...Option,
) *AuthUC {
	u := &AuthUC{
		authRepo: authRepo,
		authGW:   authGW,
		tokens:   tokens,
		cfg:      cfg,
		random:   rand.Reader,
		now:      models.Now,
		otpTTL:   time.Duration(cfg.OTP.TTLSeconds) * time.Second,
		hashCost: cfg.OTP.HashCost,
	}
	if u.otpTTL <= 0 {
		u.otpTTL = 24 * time.Hour
	}
	if u.hashCost < bcrypt.MinCost || u.hashCost > bcrypt.MaxCost {
		u.hashCost = bcrypt.DefaultCost
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}
