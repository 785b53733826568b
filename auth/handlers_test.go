package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) http.Handler {
	t.Helper()
	store := newMemStore()
	svc := newTestService(store)
	r := chi.NewRouter()
	r.Route("/api/auth", func(r chi.Router) {
		NewHandlers(svc).RegisterRoutes(r, Guard(svc.tokens, store))
	})
	return r
}

func do(t *testing.T, h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRegisterLoginMeFlow(t *testing.T) {
	h := newAuthRouter(t)

	rec := do(t, h, http.MethodPost, "/api/auth/register", `{"username":"moviebuff","email":"buff@example.com","password":"popcorn123"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var reg RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reg))
	assert.Equal(t, "User created successfully.", reg.Message)

	rec = do(t, h, http.MethodPost, "/api/auth/login", `{"username":"moviebuff","password":"popcorn123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var login map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	assert.Contains(t, login, "_id")
	token, _ := login["token"].(string)
	require.NotEmpty(t, token)

	rec = do(t, h, http.MethodGet, "/api/auth/me", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	var me map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "moviebuff", me["username"])
	assert.Equal(t, "buff@example.com", me["email"])
	assert.NotContains(t, me, "password")
	assert.NotContains(t, rec.Body.String(), "$2a$")
}

func TestHandlerErrors(t *testing.T) {
	h := newAuthRouter(t)

	rec := do(t, h, http.MethodPost, "/api/auth/login", ``, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "All fields are required", messageOf(t, rec))

	rec = do(t, h, http.MethodPost, "/api/auth/register", `{"username":`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", messageOf(t, rec))

	rec = do(t, h, http.MethodGet, "/api/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized, no token.", messageOf(t, rec))
}
