package http

import (
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
	"github.com/piresc/wellnest/services/reviews/mocks"
)

func TestCreateReview(t *testing.T) {
	serviceID := uuid.New()

	testCases := []struct {
		name       string
		body       string
		setup      func(m *mocks.MockReviewsUC)
		wantStatus int
	}{
		{
			name: "created",
			body: `{"rating":5,"comment":"wonderful"}`,
			setup: func(m *mocks.MockReviewsUC) {
				m.EXPECT().CreateReview(gomock.Any(), gomock.Any(), serviceID, &models.CreateReviewRequest{Rating: 5, Comment: "wonderful"}).
					Return(&models.Review{ID: uuid.New(), Rating: 5}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "rating too high",
			body:       `{"rating":9}`,
			setup:      func(m *mocks.MockReviewsUC) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "no completed booking",
			body: `{"rating":3}`,
			setup: func(m *mocks.MockReviewsUC) {
				m.EXPECT().CreateReview(gomock.Any(), gomock.Any(), serviceID, gomock.Any()).
					Return(nil, apperror.Forbidden("a completed booking is required to review this service"))
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "second review",
			body: `{"rating":3}`,
			setup: func(m *mocks.MockReviewsUC) {
				m.EXPECT().CreateReview(gomock.Any(), gomock.Any(), serviceID, gomock.Any()).
					Return(nil, apperror.Conflict("service already reviewed"))
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUC := mocks.NewMockReviewsUC(ctrl)
			tc.setup(mockUC)
			h := NewReviewHandler(mockUC)

			e := echo.New()
			e.Validator = validator.New()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Set(middleware.IdentityKey, &models.Identity{Subject: uuid.NewString(), Role: models.RoleUser})
			c.SetParamNames("id")
			c.SetParamValues(serviceID.String())

			require.NoError(t, h.CreateReview(c))
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestListReviews(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockReviewsUC(ctrl)
	h := NewReviewHandler(mockUC)
	serviceID := uuid.New()

	mockUC.EXPECT().ListReviews(gomock.Any(), serviceID).Return(nil, apperror.NotFound("service not found"))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues(serviceID.String())

	require.NoError(t, h.ListReviews(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
