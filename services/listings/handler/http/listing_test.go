package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/services/listings/mocks"
)

func TestFetchServices(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	mockListingsUC := mocks.NewMockListingsUC(ctrl)
	h := NewListingHandler(mockListingsUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/services/services-listing/fetch-services?category=yoga&page=2&limit=5&lat=-6.2&lng=106.8&radius_km=3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockListingsUC.EXPECT().ListServices(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, f *models.ServiceFilter) (*models.ServicePage, error) {
			assert.Equal(t, "yoga", f.Category)
			assert.Equal(t, 2, f.Page)
			assert.Equal(t, 5, f.Limit)
			require.NotNil(t, f.Latitude)
			assert.Equal(t, -6.2, *f.Latitude)
			assert.Equal(t, 106.8, *f.Longitude)
			assert.Equal(t, 3.0, f.RadiusKm)
			return &models.ServicePage{Services: []*models.WellnessService{}, Page: 2, Limit: 5}, nil
		})

	// Act
	err := h.FetchServices(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFetchServices_InvalidCoordinates(t *testing.T) {
	for _, query := range []string{"lat=95&lng=10", "lat=NaN&lng=10", "lat=10&lng=-180.5", "lat=10&lng=NaN"} {
		t.Run(query, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := NewListingHandler(mocks.NewMockListingsUC(ctrl))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet,
				"/api/v1/services/services-listing/fetch-services?"+query, nil), rec)

			require.NoError(t, h.FetchServices(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestFetchServices_WithoutLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockListingsUC := mocks.NewMockListingsUC(ctrl)
	h := NewListingHandler(mockListingsUC)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/services/services-listing/fetch-services", nil), rec)

	mockListingsUC.EXPECT().ListServices(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, f *models.ServiceFilter) (*models.ServicePage, error) {
			assert.Nil(t, f.Latitude)
			assert.Nil(t, f.Longitude)
			return &models.ServicePage{}, nil
		})

	require.NoError(t, h.FetchServices(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFetchServices_BadQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewListingHandler(mocks.NewMockListingsUC(ctrl))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/services/services-listing/fetch-services?page=two", nil), rec)

	require.NoError(t, h.FetchServices(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetService(t *testing.T) {
	testCases := []struct {
		name       string
		id         string
		setup      func(m *mocks.MockListingsUC)
		wantStatus int
	}{
		{
			name:       "invalid id",
			id:         "not-a-uuid",
			setup:      func(m *mocks.MockListingsUC) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "found",
			id:   "6f1c9b7e-3a0f-4c55-9a55-4df1f3c1c0aa",
			setup: func(m *mocks.MockListingsUC) {
				m.EXPECT().GetService(gomock.Any(), uuid.MustParse("6f1c9b7e-3a0f-4c55-9a55-4df1f3c1c0aa")).
					Return(&models.WellnessService{Name: "Yoga"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing",
			id:   "6f1c9b7e-3a0f-4c55-9a55-4df1f3c1c0aa",
			setup: func(m *mocks.MockListingsUC) {
				m.EXPECT().GetService(gomock.Any(), gomock.Any()).Return(nil, apperror.NotFound("service not found"))
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockListingsUC := mocks.NewMockListingsUC(ctrl)
			tc.setup(mockListingsUC)
			h := NewListingHandler(mockListingsUC)

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			c.SetParamNames("id")
			c.SetParamValues(tc.id)

			require.NoError(t, h.GetService(c))
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
