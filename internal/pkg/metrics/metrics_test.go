package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalPath(t *testing.T) {
	tests := map[string]string{
		"":  "/",
		"/": "/",
		"/api/v1/bookings/2b1c3d4e-5f60-4a7b-8c9d-0e1f2a3b4c5d/cancel": "/api/v1/bookings/:id/cancel",
		"/api/v1/services/services-listing/fetch-services":             "/api/v1/services/services-listing/fetch-services",
	}
	for in, want := range tests {
		assert.Equal(t, want, canonicalPath(in), in)
	}
}

func TestInstrumentHandler_RecordsStatus(t *testing.T) {
	h := InstrumentHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/teapot", "418"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/teapot", nil))
	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/teapot", "418"))

	assert.Equal(t, before+1, after)
}

func TestRecordCacheLookup(t *testing.T) {
	RecordCacheLookup("test-family", true)
	RecordCacheLookup("test-family", false)
	RecordCacheLookup("test-family", false)

	assert.Equal(t, float64(1), testutil.ToFloat64(cacheLookups.WithLabelValues("test-family", "hit")))
	assert.Equal(t, float64(2), testutil.ToFloat64(cacheLookups.WithLabelValues("test-family", "miss")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	RecordOTPEvent("signup", "issued")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "wellnest_otp_events_total"))
}
