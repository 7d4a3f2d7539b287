package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/wellnest/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testLogger() *logger.ZapLogger {
	return logger.NewFromZap(zap.NewNop())
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestGracefulServer_RunStopsOnContextCancel(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	gs := NewGracefulServer(e, testLogger(), freePort(t)).WithShutdownTimeout(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, 2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestGracefulHTTPServer_ListenFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv := &http.Server{Addr: l.Addr().String(), Handler: http.NotFoundHandler()}
	gs := NewGracefulHTTPServer(srv, testLogger())

	err = gs.Run(context.Background())
	assert.Error(t, err)
}

func TestShutdownManager(t *testing.T) {
	sm := NewShutdownManager(testLogger())

	var order []string
	sm.Register("redis", func(ctx context.Context) error {
		order = append(order, "redis")
		return nil
	})
	sm.Register("nats", func(ctx context.Context) error {
		order = append(order, "nats")
		return errors.New("drain timeout")
	})
	sm.Register("logger", func(ctx context.Context) error {
		order = append(order, "logger")
		return nil
	})

	err := sm.Shutdown(context.Background())

	assert.Equal(t, []string{"logger", "nats", "redis"}, order)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nats: drain timeout")
}
