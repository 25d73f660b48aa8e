package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditgo/creditgo/internal/appstate"
	"github.com/creditgo/creditgo/internal/modules/profile"
	"github.com/creditgo/creditgo/pkg/metrics"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	logger := zerolog.New(nil).Level(zerolog.Disabled)
	db := newTestDB(t)
	collector := metrics.NewCollector()
	repo := appstate.NewRepository(db.Conn(), "creditgo-storage", logger)
	service := profile.NewService(repo, nil, collector, profile.ServiceConfig{}, logger)

	return New(Config{
		Log:            logger,
		AppStateDB:     db,
		Metrics:        collector,
		ProfileService: service,
		Jobs:           fixedJobs(1),
		Port:           0,
		DevMode:        true,
	})
}

func serve(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	w := serve(srv, "GET", "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response["status"])
	assert.Equal(t, "creditgo", response["service"])
}

func TestHealth_ClosedDatabase(t *testing.T) {
	srv := newTestServer(t)
	require.NoError(t, srv.appStateDB.Close())

	w := serve(srv, "GET", "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "unhealthy")
}

func TestRoutesAreMounted(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{"GET", "/api/sms/demo", "", http.StatusOK},
		{"POST", "/api/sms/parse", `{"messages": []}`, http.StatusOK},
		{"POST", "/api/validation/nin", `{"nin": "12345678901"}`, http.StatusOK},
		{"GET", "/api/marketplace/options?safe_amount=45000", "", http.StatusOK},
		{"GET", "/api/marketplace/partners", "", http.StatusOK},
		{"POST", "/api/profile/build", `{"monthly_income": 300000}`, http.StatusOK},
		{"GET", "/api/profile/nobody", "", http.StatusNotFound},
		{"GET", "/api/system/database/stats", "", http.StatusOK},
		{"GET", "/api/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := serve(srv, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestMetricsEndpointReflectsActivity(t *testing.T) {
	srv := newTestServer(t)

	w := serve(srv, "PUT", "/api/profile/user-1", `{"user": {"monthly_income": 300000}, "use_demo_messages": true}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = serve(srv, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "creditgo_profiles_built_total 1")
	assert.Contains(t, body, "creditgo_sms_messages_parsed_total 11")
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("OPTIONS", "/api/sms/parse", nil)
	req.Header.Set("Origin", "http://localhost:8081")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
