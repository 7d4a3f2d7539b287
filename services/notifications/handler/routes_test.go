package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/constants"
	"github.com/piresc/wellnest/internal/pkg/middleware"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/internal/pkg/websocket"
	notifhttp "github.com/piresc/wellnest/services/notifications/handler/http"
	"github.com/piresc/wellnest/services/notifications/mocks"
	"github.com/piresc/wellnest/services/notifications/usecase"
)

type staticVerifier map[string]*models.Identity

func (v staticVerifier) VerifyToken(token string) (*models.Identity, error) {
	if identity, ok := v[token]; ok {
		return identity, nil
	}
	return nil, apperror.Invalid("invalid token")
}

func TestNotificationPushedOverWebsocket(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockNotificationsRepo(ctrl)
	manager := websocket.NewManager()
	t.Cleanup(manager.CloseAll)

	uc := usecase.NewNotificationsUC(repo, manager, &models.Config{})
	h := NewHandler(notifhttp.NewNotificationHandler(uc), notifhttp.NewWebSocketHandler(manager))

	userID := uuid.New()
	verifier := staticVerifier{"good-token": {Subject: userID.String(), Role: models.RoleUser}}

	e := echo.New()
	auth := middleware.JWTAuth(verifier)
	h.RegisterRoutes(e.Group("/api/v1", auth), e.Group("/ws", auth))
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/notifications?token=good-token"
	conn, _, err := gorilla.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.Eventually(t, func() bool { return manager.IsConnected(userID.String()) }, 2*time.Second, 10*time.Millisecond)

	repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	err = uc.HandleBookingEvent(context.Background(), &models.BookingEvent{
		Type:        constants.SubjectBookingStatusChanged,
		UserID:      userID,
		ServiceName: "Thai massage",
		Status:      models.BookingStatusConfirmed,
		ScheduledAt: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	// Assert
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg models.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, constants.EventNotification, msg.Event)

	var pushed models.Notification
	require.NoError(t, json.Unmarshal(msg.Data, &pushed))
	assert.Equal(t, "Booking confirmed", pushed.Title)
}

func TestWebsocketRejectsBadToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := websocket.NewManager()
	uc := usecase.NewNotificationsUC(mocks.NewMockNotificationsRepo(ctrl), manager, &models.Config{})
	h := NewHandler(notifhttp.NewNotificationHandler(uc), notifhttp.NewWebSocketHandler(manager))

	e := echo.New()
	auth := middleware.JWTAuth(staticVerifier{})
	h.RegisterRoutes(e.Group("/api/v1", auth), e.Group("/ws", auth))

	req := httptest.NewRequest(http.MethodGet, "/ws/notifications?token=forged", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
