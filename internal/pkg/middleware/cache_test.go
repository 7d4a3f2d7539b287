package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/wellnest/internal/pkg/cache"
	"github.com/piresc/wellnest/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, &database.RedisClient{Client: client}
}

func TestReadThroughCache(t *testing.T) {
	mr, redisClient := setupMiniredis(t)
	rt := cache.NewReadThrough(redisClient, time.Minute)

	calls := 0
	status := http.StatusOK
	e := echo.New()
	e.GET("/listing", func(c echo.Context) error {
		calls++
		return c.JSON(status, map[string]int{"calls": calls})
	}, ReadThroughCache(rt, "services-listing:"))

	get := func(target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		return rec
	}

	first := get("/listing?page=1&category=yoga")
	assert.Equal(t, "MISS", first.Header().Get(CacheStatusHeader))
	assert.JSONEq(t, `{"calls":1}`, first.Body.String())

	second := get("/listing?category=yoga&page=1")
	assert.Equal(t, "HIT", second.Header().Get(CacheStatusHeader))
	assert.JSONEq(t, `{"calls":1}`, second.Body.String())
	assert.Equal(t, 1, calls)
	require.True(t, mr.Exists("services-listing:/listing:category=yoga&page=1"))

	_, err := rt.InvalidatePrefix(context.Background(), "services-listing:")
	require.NoError(t, err)

	third := get("/listing?page=1&category=yoga")
	assert.Equal(t, "MISS", third.Header().Get(CacheStatusHeader))
	assert.Equal(t, 2, calls)
}

func TestReadThroughCache_DoesNotStoreErrors(t *testing.T) {
	mr, redisClient := setupMiniredis(t)
	rt := cache.NewReadThrough(redisClient, time.Minute)

	e := echo.New()
	e.GET("/listing/:id", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}, ReadThroughCache(rt, "services-listing:"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/listing/abc", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, mr.Keys())
}

func TestReadThroughCache_RedisDownFallsThrough(t *testing.T) {
	mr, redisClient := setupMiniredis(t)
	rt := cache.NewReadThrough(redisClient, time.Minute)
	mr.SetError("LOADING")

	e := echo.New()
	e.GET("/listing", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"ok": true})
	}, ReadThroughCache(rt, "services-listing:"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/listing", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestReadThroughCache_WriteDuringReadIsNotCached(t *testing.T) {
	mr, redisClient := setupMiniredis(t)
	rt := cache.NewReadThrough(redisClient, time.Minute)

	calls := 0
	e := echo.New()
	e.GET("/listing", func(c echo.Context) error {
		calls++
		if calls == 1 {
			_, err := rt.InvalidatePrefix(c.Request().Context(), "services-listing:")
			require.NoError(t, err)
		}
		return c.JSON(http.StatusOK, map[string]int{"calls": calls})
	}, ReadThroughCache(rt, "services-listing:"))

	get := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/listing?page=1", nil))
		return rec
	}

	first := get()
	assert.JSONEq(t, `{"calls":1}`, first.Body.String())
	assert.False(t, mr.Exists("services-listing:/listing:page=1"))

	second := get()
	assert.Equal(t, "MISS", second.Header().Get(CacheStatusHeader))
	assert.JSONEq(t, `{"calls":2}`, second.Body.String())

	third := get()
	assert.Equal(t, "HIT", third.Header().Get(CacheStatusHeader))
	assert.JSONEq(t, `{"calls":2}`, third.Body.String())
}
