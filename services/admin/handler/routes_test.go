package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/internal/pkg/validator"
	adminhttp "github.com/piresc/wellnest/services/admin/handler/http"
	bookingsmocks "github.com/piresc/wellnest/services/bookings/mocks"
	listingsmocks "github.com/piresc/wellnest/services/listings/mocks"
	reviewsmocks "github.com/piresc/wellnest/services/reviews/mocks"
	usersmocks "github.com/piresc/wellnest/services/users/mocks"
)

const (
	adminToken = "admin-token"
	userToken  = "user-token"
)

type tokenTable map[string]*models.Identity

func (t tokenTable) VerifyToken(token string) (*models.Identity, error) {
	if identity, ok := t[token]; ok {
		return identity, nil
	}
	return nil, apperror.Invalid("invalid token")
}

type adminMocks struct {
	listings *listingsmocks.MockListingsUC
	users    *usersmocks.MockUsersUC
	bookings *bookingsmocks.MockBookingsUC
	reviews  *reviewsmocks.MockReviewsUC
}

func setupRouter(t *testing.T) (*gin.Engine, adminMocks) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	m := adminMocks{
		listings: listingsmocks.NewMockListingsUC(ctrl),
		users:    usersmocks.NewMockUsersUC(ctrl),
		bookings: bookingsmocks.NewMockBookingsUC(ctrl),
		reviews:  reviewsmocks.NewMockReviewsUC(ctrl),
	}

	verifier := tokenTable{
		adminToken: {Subject: uuid.NewString(), Role: models.RoleAdmin},
		userToken:  {Subject: uuid.NewString(), Role: models.RoleUser},
	}
	h := NewHandler(adminhttp.NewAdminHandler(m.listings, m.users, m.bookings, m.reviews, validator.New()), verifier)

	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"))
	return r, m
}

func do(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAdminRoutes_Authorization(t *testing.T) {
	r, _ := setupRouter(t)

	testCases := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{name: "no token", wantStatus: http.StatusUnauthorized},
		{name: "forged token", token: "forged", wantStatus: http.StatusUnauthorized},
		{name: "regular user", token: userToken, wantStatus: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(r, http.MethodGet, "/api/v1/admin/users", tc.token, "")
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestAdminRoutes_Services(t *testing.T) {
	r, m := setupRouter(t)
	serviceID := uuid.New()

	m.listings.EXPECT().CreateService(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.ServiceRequest) (*models.WellnessService, error) {
			assert.Equal(t, "Aromatherapy", req.Name)
			return &models.WellnessService{ID: serviceID, Name: req.Name, IsActive: true}, nil
		})
	rec := do(r, http.MethodPost, "/api/v1/admin/services", adminToken,
		`{"name":"Aromatherapy","category":"massage","duration_minutes":60,"latitude":-6.2,"longitude":106.84}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = do(r, http.MethodPost, "/api/v1/admin/services", adminToken, `{"category":"massage"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	m.listings.EXPECT().DeleteService(gomock.Any(), serviceID).Return(apperror.Conflict("service has bookings"))
	rec = do(r, http.MethodDelete, "/api/v1/admin/services/"+serviceID.String(), adminToken, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	m.listings.EXPECT().ListAllServices(gomock.Any(), 2, 10).Return(&models.ServicePage{Total: 11, Page: 2, Limit: 10}, nil)
	rec = do(r, http.MethodGet, "/api/v1/admin/services?page=2&limit=10", adminToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRoutes_Users(t *testing.T) {
	r, m := setupRouter(t)
	userID := uuid.New()

	m.users.EXPECT().ListUsers(gomock.Any(), 1, 20).
		Return(&models.UserPage{Users: []*models.User{{ID: userID}}, Total: 1, Page: 1, Limit: 20}, nil)
	rec := do(r, http.MethodGet, "/api/v1/admin/users?page=1&limit=20", adminToken, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])

	m.users.EXPECT().UpdateRole(gomock.Any(), userID, models.RoleAdmin).Return(&models.User{ID: userID, Role: models.RoleAdmin}, nil)
	rec = do(r, http.MethodPut, "/api/v1/admin/users/"+userID.String()+"/role", adminToken, `{"role":"ADMIN"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(r, http.MethodPut, "/api/v1/admin/users/"+userID.String()+"/role", adminToken, `{"role":"ROOT"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	m.users.EXPECT().DeleteUser(gomock.Any(), userID).Return(nil)
	rec = do(r, http.MethodDelete, "/api/v1/admin/users/"+userID.String(), adminToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(r, http.MethodGet, "/api/v1/admin/users/not-a-uuid", adminToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminRoutes_Bookings(t *testing.T) {
	r, m := setupRouter(t)
	bookingID := uuid.New()

	m.bookings.EXPECT().ListBookings(gomock.Any(), &models.BookingFilter{Status: models.BookingStatusPending}).
		Return(&models.BookingPage{Page: 1, Limit: 20}, nil)
	rec := do(r, http.MethodGet, "/api/v1/admin/bookings?status=PENDING", adminToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	m.bookings.EXPECT().UpdateStatus(gomock.Any(), bookingID, models.BookingStatusCompleted).
		Return(nil, apperror.Conflict("cannot move booking from PENDING to COMPLETED"))
	rec = do(r, http.MethodPut, "/api/v1/admin/bookings/"+bookingID.String()+"/status", adminToken, `{"status":"COMPLETED"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(r, http.MethodPut, "/api/v1/admin/bookings/"+bookingID.String()+"/status", adminToken, `{"status":"PENDING"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminRoutes_DeleteReview(t *testing.T) {
	r, m := setupRouter(t)
	reviewID := uuid.New()

	m.reviews.EXPECT().DeleteReview(gomock.Any(), reviewID).Return(apperror.NotFound("review not found"))

	rec := do(r, http.MethodDelete, "/api/v1/admin/reviews/"+reviewID.String(), adminToken, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
