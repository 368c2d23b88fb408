package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/204g1a3204/sleep-disorder-app/internal"
	"github.com/204g1a3204/sleep-disorder-app/internal/auth"
	"github.com/204g1a3204/sleep-disorder-app/internal/storage"
)

type envelope struct {
	Data  json.RawMessage    `json:"data"`
	Meta  map[string]any     `json:"meta"`
	Error *internal.AppError `json:"error"`
}

func setupRouter(t *testing.T) (*gin.Engine, *storage.MemoryStorage) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := storage.NewMemoryStorage()
	logger := internal.NewZapLogger(zap.NewNop().Sugar())
	gate := auth.NewAdminGate("admin@hospital.com", "admin-secret", "recovery-key")
	r := gin.New()
	RegisterRoutes(r, NewApp(logger, store, store, gate))
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

const registerBody = `{"name":"Asha Rao","email":"asha@example.com","phone":"9876543210","password":"Sleep#2025"}`

func TestRegisterEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	w, env := doJSON(t, r, "POST", "/register", registerBody)
	assert.Equal(t, 200, w.Code)
	assert.Nil(t, env.Error)

	// Same email again conflicts.
	w, env = doJSON(t, r, "POST", "/register", registerBody)
	assert.Equal(t, 409, w.Code)
	require.NotNil(t, env.Error)

	// Weak password rejected.
	w, _ = doJSON(t, r, "POST", "/register", `{"name":"B","email":"b@example.com","phone":"9876543210","password":"weak"}`)
	assert.Equal(t, 400, w.Code)

	// Bad phone rejected.
	w, _ = doJSON(t, r, "POST", "/register", `{"name":"B","email":"b@example.com","phone":"12","password":"Sleep#2025"}`)
	assert.Equal(t, 400, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	r, _ := setupRouter(t)
	w, _ := doJSON(t, r, "POST", "/register", registerBody)
	require.Equal(t, 200, w.Code)

	w, env := doJSON(t, r, "POST", "/login", `{"email":"asha@example.com","password":"Sleep#2025"}`)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "/dashboard?user=asha%40example.com", env.Meta["redirect"])

	w, _ = doJSON(t, r, "POST", "/login", `{"email":"asha@example.com","password":"Wrong#999"}`)
	assert.Equal(t, 401, w.Code)

	w, _ = doJSON(t, r, "POST", "/login", `{"email":"nobody@example.com","password":"Sleep#2025"}`)
	assert.Equal(t, 401, w.Code)
}

const predictBody = `{"email":"asha@example.com","phone_number":"9876543210","age":"34","gender":"Female",
"occupation":"Nurse","stress":"8","bp":"120/80","heart_rate":"72","sleep_duration":"6",
"tea_coffee":"2","bmi":"Normal (18.5 - 24.9)","snoring":"Sometimes","work_hours":"48"}`

func TestPredictAndViewReport(t *testing.T) {
	r, _ := setupRouter(t)

	w, env := doJSON(t, r, "POST", "/predict", predictBody)
	require.Equal(t, 200, w.Code)

	var created internal.Report
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "High Risk: Insomnia Indicators", created.Result)
	assert.Equal(t, internal.RiskHigh, created.RiskLevel)
	assert.Equal(t, "/view-report?id="+created.ID, env.Meta["redirect"])

	w, env = doJSON(t, r, "GET", "/view-report?id="+created.ID, "")
	require.Equal(t, 200, w.Code)
	var fetched internal.Report
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, created, fetched)

	w, _ = doJSON(t, r, "GET", "/view-report?id=0", "")
	assert.Equal(t, 404, w.Code)

	w, _ = doJSON(t, r, "GET", "/view-report", "")
	assert.Equal(t, 400, w.Code)
}

func TestDashboardEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	w, _ := doJSON(t, r, "POST", "/predict", predictBody)
	require.Equal(t, 200, w.Code)

	w, env := doJSON(t, r, "GET", "/dashboard?user=asha%40example.com", "")
	require.Equal(t, 200, w.Code)
	var reports []internal.Report
	require.NoError(t, json.Unmarshal(env.Data, &reports))
	assert.Len(t, reports, 1)

	w, env = doJSON(t, r, "GET", "/dashboard?user=other%40example.com", "")
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &reports))
	assert.Empty(t, reports)

	w, _ = doJSON(t, r, "GET", "/dashboard", "")
	assert.Equal(t, 400, w.Code)
}

func TestAdminPortalEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	w, _ := doJSON(t, r, "POST", "/predict", predictBody)
	require.Equal(t, 200, w.Code)

	w, _ = doJSON(t, r, "POST", "/admin-portal", `{"adminEmail":"admin@hospital.com","adminKey":"wrong"}`)
	assert.Equal(t, 401, w.Code)

	w, env := doJSON(t, r, "POST", "/admin-portal", `{"adminEmail":"admin@hospital.com","adminKey":"admin-secret"}`)
	require.Equal(t, 200, w.Code)

	summary, ok := env.Meta["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), summary["highRiskCount"])
	assert.Equal(t, float64(0), summary["lowRiskCount"])

	var reports []internal.Report
	require.NoError(t, json.Unmarshal(env.Data, &reports))
	assert.Len(t, reports, 1)

	// Recovery key works without the admin email.
	w, _ = doJSON(t, r, "POST", "/admin-portal", `{"adminEmail":"MASTER-RECOVERY","adminKey":"recovery-key"}`)
	assert.Equal(t, 200, w.Code)
}

func TestRequestIDHeader(t *testing.T) {
	r, _ := setupRouter(t)
	w, _ := doJSON(t, r, "GET", "/dashboard?user=x%40y.com", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
