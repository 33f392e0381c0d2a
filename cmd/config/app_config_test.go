package config

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parth-agrotech/domain"
	"parth-agrotech/internal/testutil"
	"parth-agrotech/internal/utils"
	"parth-agrotech/pkg/session"
)

type testApp struct {
	t   *testing.T
	app *fiber.App
}

func newTestApp(t *testing.T) *testApp {
	cfg := utils.DefaultConfig()
	cfg.SessionSecret = "test-secret"
	cfg.RateLimitMax = 0

	app, err := NewApp(AppOptions{
		Config:    cfg,
		DB:        testutil.NewTestDB(t),
		Sessions:  session.NewMemoryStore(cfg.SessionMaxItems, cfg.SessionTTL()),
		AccessLog: io.Discard,
	})
	require.NoError(t, err)
	return &testApp{t: t, app: app}
}

func (a *testApp) do(method, path string, body any, cookies ...*http.Cookie) (*http.Response, []byte) {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			encoded, err := json.Marshal(body)
			require.NoError(a.t, err)
			raw = string(encoded)
		}
		reader = bytes.NewBufferString(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := a.app.Test(req, -1)
	require.NoError(a.t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	return resp, data
}

func (a *testApp) decode(data []byte, v any) {
	a.t.Helper()
	require.NoError(a.t, json.Unmarshal(data, v), string(data))
}

// login creates the first admin and returns its session cookie.
func (a *testApp) login() *http.Cookie {
	a.t.Helper()
	creds := domain.LoginRequest{Username: "parthagro", Password: "secret"}
	resp, body := a.do(http.MethodPost, "/api/auth/setup", creds)
	require.Equal(a.t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = a.do(http.MethodPost, "/api/auth/login", creds)
	require.Equal(a.t, http.StatusOK, resp.StatusCode, string(body))
	for _, c := range resp.Cookies() {
		if c.Name == domain.SessionCookieName {
			return c
		}
	}
	a.t.Fatal("login did not set a session cookie")
	return nil
}

func TestLoginScenario(t *testing.T) {
	a := newTestApp(t)
	cookie := a.login()
	assert.True(t, cookie.HttpOnly)

	resp, body := a.do(http.MethodPost, "/api/auth/login", domain.LoginRequest{Username: "parthagro", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"invalid credentials"}`, string(body))

	resp, body = a.do(http.MethodPost, "/api/auth/login", domain.LoginRequest{Username: "nouser", Password: "x"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"unknown user"}`, string(body))

	resp, body = a.do(http.MethodGet, "/api/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me struct {
		Authenticated bool                `json:"authenticated"`
		User          domain.UserResponse `json:"user"`
	}
	a.decode(body, &me)
	assert.True(t, me.Authenticated)
	assert.Equal(t, "parthagro", me.User.Username)
	assert.NotContains(t, string(body), "password")

	resp, _ = a.do(http.MethodPost, "/api/auth/logout", nil, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = a.do(http.MethodGet, "/api/auth/me", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"authenticated":false}`, string(body))
}

func TestSetupRefusedOnceAdminExists(t *testing.T) {
	a := newTestApp(t)
	a.login()

	resp, _ := a.do(http.MethodPost, "/api/auth/setup", domain.SetupRequest{Username: "other", Password: "pw"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestColdStorageAndStatsScenario(t *testing.T) {
	a := newTestApp(t)
	cookie := a.login()

	resp, body := a.do(http.MethodPost, "/api/farmers", map[string]any{
		"name":          "Ramesh Patel",
		"phone":         "9876543210",
		"village":       "Kheda",
		"district":      "Anand",
		"farmSize":      4.5,
		"potatoVariety": "Atlantic",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var farmer struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	a.decode(body, &farmer)
	assert.Equal(t, "pending", farmer.Status)

	resp, body = a.do(http.MethodPost, "/api/cold-storages", map[string]any{
		"name":     "Unit A",
		"location": "Deesa",
		"capacity": 5000,
	}, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var storage struct {
		ID           string `json:"id"`
		CurrentStock int    `json:"currentStock"`
		Status       string `json:"status"`
		Temperature  string `json:"temperature"`
		Humidity     string `json:"humidity"`
	}
	a.decode(body, &storage)
	assert.Equal(t, 0, storage.CurrentStock)
	assert.Equal(t, "online", storage.Status)
	assert.Equal(t, "3.2", storage.Temperature)
	assert.Equal(t, "88", storage.Humidity)

	resp, body = a.do(http.MethodPost, "/api/inventory", map[string]any{
		"farmerId":  farmer.ID,
		"storageId": storage.ID,
		"quantity":  200,
		"variety":   "Atlantic",
		"grade":     "A",
		"entryDate": "2025-01-10",
	}, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var lot struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	a.decode(body, &lot)
	assert.Equal(t, "stored", lot.Status)

	resp, body = a.do(http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats domain.StatsResponse
	a.decode(body, &stats)
	assert.Equal(t, 1, stats.TotalColdStorages)
	assert.Equal(t, 1, stats.OnlineStorages)
	assert.Equal(t, 5000, stats.TotalCapacity)
	assert.Equal(t, 200, stats.TotalStock)
	assert.Equal(t, 200, stats.TotalInventory)
	assert.Equal(t, 4, stats.UtilizationPercent)

	resp, _ = a.do(http.MethodPost, "/api/inventory", map[string]any{
		"farmerId":  farmer.ID,
		"storageId": storage.ID,
		"quantity":  4801,
		"variety":   "Atlantic",
		"grade":     "B",
		"entryDate": "2025-01-11",
	}, cookie)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = a.do(http.MethodDelete, "/api/cold-storages/"+storage.ID, nil, cookie)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = a.do(http.MethodPatch, "/api/inventory/"+lot.ID, map[string]any{"status": "dispatched"}, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, _ = a.do(http.MethodPatch, "/api/inventory/"+lot.ID, map[string]any{"status": "stored"}, cookie)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = a.do(http.MethodGet, "/api/cold-storages/"+storage.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	a.decode(body, &storage)
	assert.Equal(t, 0, storage.CurrentStock)
}

func TestPublicAndAdminRoutes(t *testing.T) {
	a := newTestApp(t)

	for _, path := range []string{"/api/farmers", "/api/factories", "/api/contact", "/api/users", "/api/inventory/export"} {
		resp, _ := a.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
	for _, path := range []string{"/api/cold-storages", "/api/inventory", "/api/stats", "/api/health"} {
		resp, _ := a.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}

	resp, body := a.do(http.MethodGet, "/api/inventory", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))
}

func TestRoutingErrors(t *testing.T) {
	a := newTestApp(t)

	resp, body := a.do(http.MethodGet, "/api/nothing-here", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"route not found"}`, string(body))

	resp, body = a.do(http.MethodPut, "/api/stats", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.JSONEq(t, `{"error":"method not allowed"}`, string(body))

	resp, body = a.do(http.MethodGet, "/api/cold-storages/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"cold storage not found"}`, string(body))

	resp, _ = a.do(http.MethodGet, "/api/inventory/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = a.do(http.MethodGet, "/api/inventory?storageId="+uuid.NewString()+"&farmerId="+uuid.NewString(), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestValidationErrors(t *testing.T) {
	a := newTestApp(t)
	cookie := a.login()

	resp, body := a.do(http.MethodPost, "/api/farmers", "{not json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"invalid request body"}`, string(body))

	resp, body = a.do(http.MethodPost, "/api/farmers", map[string]any{"name": "Only a name", "farmSize": -2})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var issues struct {
		Error []domain.Issue `json:"error"`
	}
	a.decode(body, &issues)
	fields := map[string]string{}
	for _, issue := range issues.Error {
		fields[issue.Field] = issue.Rule
	}
	assert.Equal(t, "required", fields["phone"])
	assert.Equal(t, "gt", fields["farmSize"])
	assert.NotContains(t, fields, "name")

	resp, _ = a.do(http.MethodPost, "/api/contact", map[string]any{
		"name": "Priya", "phone": "9", "type": "spam", "message": "hi",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = a.do(http.MethodPost, "/api/cold-storages", map[string]any{
		"name": "Unit B", "location": "Deesa", "capacity": 100,
	}, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var storage struct {
		ID string `json:"id"`
	}
	a.decode(body, &storage)

	resp, body = a.do(http.MethodPatch, "/api/cold-storages/"+storage.ID, map[string]any{"currentStock": 50}, cookie)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "currentStock")

	resp, _ = a.do(http.MethodPatch, "/api/cold-storages/"+storage.ID, map[string]any{"status": "broken"}, cookie)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = a.do(http.MethodPost, "/api/inventory", map[string]any{
		"farmerId": uuid.NewString(), "storageId": storage.ID, "quantity": 1,
		"variety": "Atlantic", "grade": "A", "entryDate": "10/01/2025",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInventoryExport(t *testing.T) {
	a := newTestApp(t)
	cookie := a.login()

	resp, body := a.do(http.MethodGet, "/api/inventory/export", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), time.Now().Format("2006-01-02"))
	assert.NotEmpty(t, body)
}

func TestUserAdministration(t *testing.T) {
	a := newTestApp(t)
	cookie := a.login()

	resp, body := a.do(http.MethodGet, "/api/users", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var users []domain.UserResponse
	a.decode(body, &users)
	require.Len(t, users, 1)
	assert.NotContains(t, string(body), "password")

	resp, _ = a.do(http.MethodDelete, "/api/users/"+users[0].ID, nil, cookie)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = a.do(http.MethodDelete, "/api/users/"+uuid.NewString(), nil, cookie)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
