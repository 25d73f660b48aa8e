package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditgo/creditgo/internal/appstate"
	"github.com/creditgo/creditgo/internal/database"
	"github.com/creditgo/creditgo/internal/domain"
	"github.com/creditgo/creditgo/internal/modules/profile"
	"github.com/creditgo/creditgo/internal/modules/sms"
)

func setupRouter(t *testing.T) chi.Router {
	t.Helper()

	db, err := database.New(database.Config{
		Path: filepath.Join(t.TempDir(), "app_state.db"),
		Name: database.NameAppState,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	logger := zerolog.New(nil).Level(zerolog.Disabled)
	repo := appstate.NewRepository(db.Conn(), "creditgo-storage", logger)
	service := profile.NewService(repo, nil, nil, profile.ServiceConfig{}, logger)

	router := chi.NewRouter()
	NewHandler(service, nil, logger).RegisterRoutes(router)
	return router
}

func do(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(t, response["metadata"])
	data, ok := response["data"].(map[string]interface{})
	require.True(t, ok, "response must carry a data object")
	return data
}

func TestHandleBuild(t *testing.T) {
	router := setupRouter(t)

	w := do(t, router, http.MethodPost, "/profile/build", map[string]interface{}{
		"monthly_income": 300000,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	data := decodeData(t, w)
	p := data["profile"].(map[string]interface{})
	assert.Equal(t, 45000.0, p["safe_monthly_repayment"])
	assert.Equal(t, 60000.0, p["max_monthly_repayment"])
	assert.Equal(t, "bronze", p["tier"])
	assert.Equal(t, "Bronze", data["tier"].(map[string]interface{})["name"])
}

func TestHandleBuild_BadRequests(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name string
		body interface{}
	}{
		{"malformed json", "{not json"},
		{"negative income", map[string]interface{}{"monthly_income": -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodPost, "/profile/build", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.NotEmpty(t, response["error"])
		})
	}
}

func TestHandleCompute_DemoMessages(t *testing.T) {
	router := setupRouter(t)

	w := do(t, router, http.MethodPost, "/profile/compute", map[string]interface{}{
		"user": map[string]interface{}{
			"employment_type":        "salaried",
			"monthly_income":         300000,
			"is_identity_verified":   true,
			"is_employment_verified": true,
		},
		"use_demo_messages": true,
	})

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, 100.0, data["profile"].(map[string]interface{})["credit_score"])
	assert.Equal(t, "platinum", data["tier"].(map[string]interface{})["tier"])
	assert.Len(t, data["analysis"].(map[string]interface{})["transactions"], 11)
}

func TestHandleCompute_NegativeExpenses(t *testing.T) {
	router := setupRouter(t)

	w := do(t, router, http.MethodPost, "/profile/compute", map[string]interface{}{
		"user": map[string]interface{}{"monthly_income": 100000, "monthly_expenses": -5},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStoredProfileLifecycle(t *testing.T) {
	router := setupRouter(t)

	w := do(t, router, http.MethodGet, "/profile/user-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, router, http.MethodPut, "/profile/user-1", map[string]interface{}{
		"user": map[string]interface{}{
			"first_name":           "Ada",
			"monthly_income":       250000,
			"is_identity_verified": true,
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	state := decodeData(t, w)["state"].(map[string]interface{})
	assert.Equal(t, "user-1", state["user"].(map[string]interface{})["id"])
	assert.Equal(t, true, state["is_onboarding_complete"])

	w = do(t, router, http.MethodGet, "/profile/user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	stored := data["state"].(map[string]interface{})
	assert.Equal(t, "Ada", stored["user"].(map[string]interface{})["first_name"])
	assert.NotNil(t, stored["financial_profile"])
	assert.NotNil(t, data["tier"])

	// POST is accepted as well and replaces the state
	w = do(t, router, http.MethodPost, "/profile/user-1", map[string]interface{}{
		"user": map[string]interface{}{"first_name": "Ada", "monthly_income": 400000},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodDelete, "/profile/user-1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, router, http.MethodGet, "/profile/user-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleRecompute_BadBody(t *testing.T) {
	router := setupRouter(t)

	w := do(t, router, http.MethodPut, "/profile/user-1", "[]")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestLimits(t *testing.T) {
	router := setupRouter(t)

	tooMany := profile.Request{
		User:     domain.User{MonthlyIncome: 300000},
		Messages: make([]domain.RawMessage, sms.MaxMessagesPerRequest+1),
	}
	oversized := `{"user":{"first_name":"` + strings.Repeat("a", sms.MaxRequestBytes) + `"}}`

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
	}{
		{name: "compute with too many messages", method: http.MethodPost, path: "/profile/compute", body: tooMany},
		{name: "recompute with too many messages", method: http.MethodPut, path: "/profile/user-1", body: tooMany},
		{name: "oversized compute body", method: http.MethodPost, path: "/profile/compute", body: oversized},
		{name: "oversized recompute body", method: http.MethodPost, path: "/profile/user-1", body: oversized},
		{name: "oversized build body", method: http.MethodPost, path: "/profile/build", body: oversized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		})
	}

	// Rejected recomputes store nothing
	w := do(t, router, http.MethodGet, "/profile/user-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleCompute_MessageLimitIsInclusive(t *testing.T) {
	router := setupRouter(t)

	w := do(t, router, http.MethodPost, "/profile/compute", profile.Request{
		User:     domain.User{MonthlyIncome: 300000},
		Messages: make([]domain.RawMessage, sms.MaxMessagesPerRequest),
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Empty messages yield no transactions and leave the stated income as the base
	p := decodeData(t, w)["profile"].(map[string]interface{})
	assert.Equal(t, 300000.0, p["total_income"])
	assert.Equal(t, 45000.0, p["safe_monthly_repayment"])
}
