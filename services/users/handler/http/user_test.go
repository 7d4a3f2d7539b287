package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/middleware"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/internal/pkg/validator"
	"github.com/piresc/wellnest/services/users/mocks"
)

func authedContext(method, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, "/api/v1/users/me", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.IdentityKey, &models.Identity{Subject: userID.String(), Role: models.RoleUser})
	return c, rec
}

func TestGetMe(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	mockUsersUC := mocks.NewMockUsersUC(ctrl)
	h := NewUserHandler(mockUsersUC)
	userID := uuid.New()
	c, rec := authedContext(http.MethodGet, "", userID)

	mockUsersUC.EXPECT().GetProfile(gomock.Any(), userID).
		Return(&models.User{ID: userID, Name: "Alice", Username: "alice99", Role: models.RoleUser}, nil)

	// Act
	err := h.GetMe(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "alice99", data["username"])
}

func TestGetMe_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewUserHandler(mocks.NewMockUsersUC(ctrl))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil), rec)

	require.NoError(t, h.GetMe(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateMe(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		setup      func(m *mocks.MockUsersUC, userID uuid.UUID)
		wantStatus int
	}{
		{
			name: "updated",
			body: `{"name":"Alice Smith","email":"alice@example.com"}`,
			setup: func(m *mocks.MockUsersUC, userID uuid.UUID) {
				m.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).
					DoAndReturn(func(_ interface{}, _ uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error) {
						assert.Equal(t, "Alice Smith", req.Name)
						assert.Equal(t, "alice@example.com", *req.Email)
						return &models.User{ID: userID, Name: req.Name}, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid email",
			body:       `{"email":"nope"}`,
			setup:      func(m *mocks.MockUsersUC, userID uuid.UUID) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "username taken",
			body: `{"username":"bob"}`,
			setup: func(m *mocks.MockUsersUC, userID uuid.UUID) {
				m.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).
					Return(nil, apperror.Conflict("username is already taken"))
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUsersUC := mocks.NewMockUsersUC(ctrl)
			h := NewUserHandler(mockUsersUC)
			userID := uuid.New()
			tc.setup(mockUsersUC, userID)
			c, rec := authedContext(http.MethodPut, tc.body, userID)

			require.NoError(t, h.UpdateMe(c))
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestDeleteMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUsersUC := mocks.NewMockUsersUC(ctrl)
	h := NewUserHandler(mockUsersUC)
	userID := uuid.New()
	c, rec := authedContext(http.MethodDelete, "", userID)

	mockUsersUC.EXPECT().DeleteAccount(gomock.Any(), userID).Return(nil)

	require.NoError(t, h.DeleteMe(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
