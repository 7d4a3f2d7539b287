package usecase

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/database"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/services/auth/repository"
)

var fourDigits = regexp.MustCompile(`^[0-9]{4}$`)

func testConfig() *models.Config {
	return &models.Config{
		OTP: models.OTPConfig{TTLSeconds: 300, HashCost: bcrypt.MinCost},
	}
}

// setupOTPStore wires the usecase to a real repository backed by miniredis
func setupOTPStore(t *testing.T, opts ...Option) (*AuthUC, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	redisClient := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	repo := repository.NewAuthRepo(testConfig(), nil, redisClient)

	return NewAuthUC(repo, nil, nil, testConfig(), opts...), mr
}

func otherCode(code string) string {
	n, _ := strconv.Atoi(code)
	return fmt.Sprintf("%04d", (n+1)%10000)
}

func TestOTP_SignupRoundTrip(t *testing.T) {
	// Arrange
	uc, mr := setupOTPStore(t)
	ctx := context.Background()
	profile := &models.OTPProfile{Name: "Alice", Username: "alice99", DOB: "2000-01-01"}

	// Act
	code, err := uc.IssueOTP(ctx, models.OTPFlowSignup, "+1555", profile)

	// Assert
	require.NoError(t, err)
	assert.Regexp(t, fourDigits, code)
	assert.True(t, mr.Exists("otp:signup:+1555"))

	result, err := uc.VerifyOTP(ctx, models.OTPFlowSignup, "+1555", code)
	require.NoError(t, err)
	assert.Equal(t, "+1555", result.Subject)
	assert.Equal(t, profile, result.Profile)
	assert.False(t, mr.Exists("otp:signup:+1555"))

	_, err = uc.VerifyOTP(ctx, models.OTPFlowSignup, "+1555", code)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestOTP_SigninReturnsSubjectOnly(t *testing.T) {
	uc, _ := setupOTPStore(t)
	ctx := context.Background()

	code, err := uc.IssueOTP(ctx, models.OTPFlowSignin, "alice@example.com", nil)
	require.NoError(t, err)

	result, err := uc.VerifyOTP(ctx, models.OTPFlowSignin, "alice@example.com", code)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", result.Subject)
	assert.Nil(t, result.Profile)
}

func TestOTP_MismatchKeepsRecord(t *testing.T) {
	uc, mr := setupOTPStore(t)
	ctx := context.Background()

	code, err := uc.IssueOTP(ctx, models.OTPFlowSignin, "+1555", nil)
	require.NoError(t, err)

	_, err = uc.VerifyOTP(ctx, models.OTPFlowSignin, "+1555", otherCode(code))
	assert.ErrorIs(t, err, apperror.ErrMismatch)
	assert.True(t, mr.Exists("otp:signin:+1555"))

	_, err = uc.VerifyOTP(ctx, models.OTPFlowSignin, "+1555", code)
	assert.NoError(t, err)
}

func TestOTP_NeverIssued(t *testing.T) {
	uc, _ := setupOTPStore(t)

	_, err := uc.VerifyOTP(context.Background(), models.OTPFlowSignin, "+1555", "1234")

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestOTP_Expires(t *testing.T) {
	uc, mr := setupOTPStore(t)
	ctx := context.Background()

	code, err := uc.IssueOTP(ctx, models.OTPFlowSignin, "+1555", nil)
	require.NoError(t, err)
	assert.Equal(t, 300*time.Second, mr.TTL("otp:signin:+1555"))

	mr.FastForward(301 * time.Second)

	_, err = uc.VerifyOTP(ctx, models.OTPFlowSignin, "+1555", code)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestOTP_ReissueReplacesPreviousCode(t *testing.T) {
	// rand.Int reads two bytes per draw for a bound of 10000: 0x002A = 42, 0x0100 = 256
	uc, _ := setupOTPStore(t, WithRandom(bytes.NewReader([]byte{0x00, 0x2A, 0x01, 0x00})))
	ctx := context.Background()

	first, err := uc.IssueOTP(ctx, models.OTPFlowSignin, "+1555", nil)
	require.NoError(t, err)
	assert.Equal(t, "0042", first)

	second, err := uc.IssueOTP(ctx, models.OTPFlowSignin, "+1555", nil)
	require.NoError(t, err)
	assert.Equal(t, "0256", second)

	_, err = uc.VerifyOTP(ctx, models.OTPFlowSignin, "+1555", first)
	assert.ErrorIs(t, err, apperror.ErrMismatch)

	_, err = uc.VerifyOTP(ctx, models.OTPFlowSignin, "+1555", second)
	assert.NoError(t, err)
}

func TestOTP_FlowsDoNotShareRecords(t *testing.T) {
	uc, _ := setupOTPStore(t)
	ctx := context.Background()

	code, err := uc.IssueOTP(ctx, models.OTPFlowSignup, "+1555", &models.OTPProfile{Name: "Alice"})
	require.NoError(t, err)

	_, err = uc.VerifyOTP(ctx, models.OTPFlowSignin, "+1555", code)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestOTP_ConcurrentVerifySucceedsOnce(t *testing.T) {
	uc, _ := setupOTPStore(t)
	ctx := context.Background()

	code, err := uc.IssueOTP(ctx, models.OTPFlowSignin, "+1555", nil)
	require.NoError(t, err)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.VerifyOTP(ctx, models.OTPFlowSignin, "+1555", code)
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, apperror.ErrNotFound)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}

func TestOTP_StoresOnlyHash(t *testing.T) {
	uc, mr := setupOTPStore(t, WithRandom(bytes.NewReader([]byte{0x00, 0x00})))

	code, err := uc.IssueOTP(context.Background(), models.OTPFlowSignin, "+1555", nil)
	require.NoError(t, err)
	assert.Equal(t, "0000", code)

	stored, err := mr.Get("otp:signin:+1555")
	require.NoError(t, err)
	assert.NotContains(t, stored, `"0000"`)
	assert.Contains(t, stored, "code_hash")
}

func TestOTP_RandomSourceFailure(t *testing.T) {
	uc, mr := setupOTPStore(t, WithRandom(bytes.NewReader(nil)))

	_, err := uc.IssueOTP(context.Background(), models.OTPFlowSignin, "+1555", nil)

	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
	assert.False(t, mr.Exists("otp:signin:+1555"))
}

func TestOTP_StoreUnavailable(t *testing.T) {
	uc, mr := setupOTPStore(t)
	mr.SetError("LOADING")

	_, err := uc.IssueOTP(context.Background(), models.OTPFlowSignin, "+1555", nil)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))

	_, err = uc.VerifyOTP(context.Background(), models.OTPFlowSignin, "+1555", "1234")
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
}
