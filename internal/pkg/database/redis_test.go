package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "127.0.0.1",
		Port:     1,
		PoolSize: 1,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestNewRedisClient_Miniredis(t *testing.T) {
	mr := miniredis.RunT(t)

	var port int
	_, err := fmt.Sscanf(mr.Port(), "%d", &port)
	require.NoError(t, err)

	client, err := NewRedisClient(models.RedisConfig{Host: mr.Host(), Port: port})
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()))
}

func TestRedisClient_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectSet("test:key", "test-value", time.Hour).SetVal("OK")

	err := client.Set(context.Background(), "test:key", "test-value", time.Hour)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Get(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		setup     func(mock redismock.ClientMock)
		expected  string
		expectNil bool
	}{
		{
			name: "existing key",
			key:  "test:key",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("test:key").SetVal("value")
			},
			expected: "value",
		},
		{
			name: "missing key",
			key:  "test:missing",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("test:missing").RedisNil()
			},
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			client := &RedisClient{Client: db}
			tt.setup(mock)

			val, err := client.Get(context.Background(), tt.key)

			if tt.expectNil {
				assert.True(t, errors.Is(err, redis.Nil))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, val)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisClient_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectDel("a", "b").SetVal(1)

	n, err := client.Delete(context.Background(), "a", "b")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_ScanDelete_FollowsCursor(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectScan(0, "services-listing:*", scanBatchSize).SetVal([]string{"services-listing:a", "services-listing:b"}, 42)
	mock.ExpectDel("services-listing:a", "services-listing:b").SetVal(2)
	mock.ExpectScan(42, "services-listing:*", scanBatchSize).SetVal([]string{}, 7)
	mock.ExpectScan(7, "services-listing:*", scanBatchSize).SetVal([]string{"services-listing:c"}, 0)
	mock.ExpectDel("services-listing:c").SetVal(1)

	deleted, err := client.ScanDelete(context.Background(), "services-listing:*")

	assert.NoError(t, err)
	assert.Equal(t, 3, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_ScanDelete_ScanError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectScan(0, "x:*", scanBatchSize).SetErr(errors.New("connection reset"))

	deleted, err := client.ScanDelete(context.Background(), "x:*")

	assert.Error(t, err)
	assert.Equal(t, 0, deleted)
	assert.Contains(t, err.Error(), "failed to scan keys")
}

func TestRedisClient_ScanDelete_OnlyMatchingKeys(t *testing.T) {
	mr := miniredis.RunT(t)
	client := &RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	ctx := context.Background()

	for i := 0; i < 250; i++ {
		require.NoError(t, mr.Set(fmt.Sprintf("services-listing:/api/v1/services:%d", i), "{}"))
	}
	require.NoError(t, mr.Set("otp:signin:+15550001", "{}"))

	deleted, err := client.ScanDelete(ctx, "services-listing:*")

	require.NoError(t, err)
	assert.Equal(t, 250, deleted)
	assert.Len(t, mr.Keys(), 1)
	assert.True(t, mr.Exists("otp:signin:+15550001"))
}
