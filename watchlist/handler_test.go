package watchlist

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/cinelog-go/auth"
	"github.com/user/cinelog-go/users"
	"github.com/user/cinelog-go/validation"
)

// asUser stands in for auth.Guard and attaches a fixed user.
func asUser(id int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := auth.NewContextWithUser(r.Context(), &users.User{ID: id, Username: "u"})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newRouter(svc *Service) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/watchlist", func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				if req.Header.Get("X-Test-User") == "2" {
					asUser(2)(next).ServeHTTP(w, req)
					return
				}
				asUser(1)(next).ServeHTTP(w, req)
			})
		})
		NewHandler(svc).RegisterRoutes(r)
	})
	return r
}

func call(h http.Handler, method, path, body, user string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if user != "" {
		req.Header.Set("X-Test-User", user)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestWatchlistRoutes(t *testing.T) {
	h := newRouter(NewService(newMemStore(), validation.New()))

	rec := call(h, http.MethodGet, "/api/watchlist/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = call(h, http.MethodPost, "/api/watchlist/", `{"tmdbId":129,"title":"Spirited Away","posterPath":"/spirited.jpg","releaseDate":"2001-07-20"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, float64(129), created["tmdbId"])
	assert.Equal(t, false, created["watched"])
	id := "1"

	rec = call(h, http.MethodPost, "/api/watchlist/", `{"tmdbId":"129","title":"Spirited Away","posterPath":"/spirited.jpg","releaseDate":"2001-07-20"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"Movie already in watchlist"}`, rec.Body.String())

	rec = call(h, http.MethodPatch, "/api/watchlist/"+id, `{"watched":true}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"watched":true`)

	rec = call(h, http.MethodPatch, "/api/watchlist/"+id, `{"watched":false}`, "2")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Movie not found"}`, rec.Body.String())

	rec = call(h, http.MethodPatch, "/api/watchlist/abc", `{"watched":true}`, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(h, http.MethodDelete, "/api/watchlist/"+id, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var deleted map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deleted))
	assert.Equal(t, "item deleted successfully", deleted["message"])
	assert.NotNil(t, deleted["item"])

	rec = call(h, http.MethodDelete, "/api/watchlist/"+id, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWatchlistAddMissingField(t *testing.T) {
	h := newRouter(NewService(newMemStore(), validation.New()))

	rec := call(h, http.MethodPost, "/api/watchlist/", `{"tmdbId":129,"title":"Spirited Away"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"posterPath is required"}`, rec.Body.String())
}

func TestWatchlistAddRejectsNegativeMovieID(t *testing.T) {
	h := newRouter(NewService(newMemStore(), validation.New()))

	rec := call(h, http.MethodPost, "/api/watchlist/", `{"tmdbId":-5,"title":"Spirited Away","posterPath":"/spirited.jpg","releaseDate":"2001-07-20"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(h, http.MethodGet, "/api/watchlist/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
