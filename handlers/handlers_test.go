package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"focusos/storage"
)

// newTestMux wires the full route table against in-memory stores, the
// same shape the serve command builds.
func newTestMux(t *testing.T) (*Deps, *http.ServeMux) {
	t.Helper()

	deps := &Deps{
		Entries: storage.NewMemoryEntryStore(),
		Users:   storage.NewMemoryUserStore(),
		Tokens:  storage.NewTokenStore(),
		Zone:    time.UTC,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/register", deps.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", deps.HandleLogin)
	mux.HandleFunc("GET /api/auth/user", deps.RequireAuth(deps.HandleCurrentUser))
	mux.HandleFunc("PUT /api/auth/tracks", deps.RequireAuth(deps.HandleUpdateTracks))
	mux.HandleFunc("PUT /api/auth/todos", deps.RequireAuth(deps.HandleUpdateTodos))
	mux.HandleFunc("POST /api/focus", deps.RequireAuth(deps.HandleLogFocus))
	mux.HandleFunc("GET /api/focus", deps.RequireAuth(deps.HandleListFocus))
	mux.HandleFunc("PUT /api/focus/{entryId}", deps.RequireAuth(deps.HandleReplaceFocus))
	mux.HandleFunc("DELETE /api/focus/{entryId}", deps.RequireAuth(deps.HandleDeleteFocus))
	mux.HandleFunc("GET /api/analytics", deps.RequireAuth(deps.HandleAnalytics))
	mux.HandleFunc("POST /api/ai/analyze", deps.RequireAuth(deps.HandleAnalyzeWeek))
	return deps, mux
}

// do sends a JSON request through the mux and decodes the reply into out.
func do(t *testing.T, mux *http.ServeMux, method, path, token string, body, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("X-Auth-Token", token)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if out != nil && rec.Code < 300 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

// registerUser creates an account and returns its session token.
func registerUser(t *testing.T, mux *http.ServeMux, username string) string {
	t.Helper()

	var resp map[string]string
	rec := do(t, mux, "POST", "/api/auth/register", "", map[string]string{
		"username": username,
		"password": "hunter22",
	}, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}
