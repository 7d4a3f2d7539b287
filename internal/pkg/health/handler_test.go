package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/wellnest/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAllHealth(t *testing.T) {
	h := NewHealthService("wellnest-test")
	h.AddChecker("ok", CheckerFunc(func(ctx context.Context) error { return nil }))
	h.AddChecker("broken", CheckerFunc(func(ctx context.Context) error { return errors.New("down") }))

	response := h.CheckAllHealth(context.Background())

	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, "healthy", response.Dependencies["ok"].Status)
	assert.Equal(t, "down", response.Dependencies["broken"].Error)
}

func TestRegisterHealthEndpoints_Ready(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	h := NewHealthService("wellnest-test")
	h.AddChecker("redis", NewRedisHealthChecker(&database.RedisClient{Client: client}))
	h.AddChecker("postgres", NewPostgresHealthChecker(nil))
	h.AddChecker("nats", NewNATSHealthChecker(nil))

	e := echo.New()
	RegisterHealthEndpoints(e, h)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	mr.SetError("LOADING")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "unhealthy", response.Dependencies["redis"].Status)
}

func TestRegisterGinHealthEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterGinHealthEndpoints(r, NewHealthService("wellnest-admin"))

	for _, path := range []string{"/ping", "/health", "/ready"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "wellnest-admin", info.ServiceName)
}

type pingFunc func() error

func (f pingFunc) Ping() error { return f() }

func TestNewPingHealthChecker(t *testing.T) {
	assert.NoError(t, NewPingHealthChecker(nil).CheckHealth(context.Background()))
	assert.NoError(t, NewPingHealthChecker(pingFunc(func() error { return nil })).CheckHealth(context.Background()))

	err := NewPingHealthChecker(pingFunc(func() error { return errors.New("nsqd unreachable") })).CheckHealth(context.Background())
	assert.EqualError(t, err, "nsqd unreachable")
}
