package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"techhive-users/internal/domain/user"
	"techhive-users/internal/repository"
	"techhive-users/internal/services"
	"techhive-users/internal/transport/httpdto"
	apperrors "techhive-users/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// staleIDRepo hands out an Id that is already in use, as a racing writer would.
type staleIDRepo struct {
	repository.UserRepository
}

func (staleIDRepo) NextID(context.Context) int { return 1 }

// brokenRepo fails lookups with an error no handler maps.
type brokenRepo struct {
	repository.UserRepository
}

var errStoreDown = errors.New("store down")

func (brokenRepo) GetByID(context.Context, int) (user.User, error) {
	return user.User{}, errStoreDown
}

func seedRepo() repository.UserRepository {
	return repository.NewUserRepository(
		user.User{ID: 1, Name: "Alice", Email: "alice@techhive.com"},
		user.User{ID: 2, Name: "Bob", Email: "bob@techhive.com"},
	)
}

func newRouter(repo repository.UserRepository) (*gin.Engine, *[]error) {
	h := NewUserHandler(services.NewUserService(repo, nil, nil))
	recorded := &[]error{}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Next()
		for _, e := range c.Errors {
			*recorded = append(*recorded, e.Err)
		}
	})
	r.GET("/users", h.List)
	r.POST("/users", h.Create)
	r.GET("/users/:id", h.Get)
	r.PUT("/users/:id", h.Update)
	r.DELETE("/users/:id", h.Delete)
	return r, recorded
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserHandler_Get(t *testing.T) {
	r, _ := newRouter(seedRepo())

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantBody string
	}{
		{name: "found", path: "/users/2", wantCode: http.StatusOK, wantBody: `{"Id":2,"Name":"Bob","Email":"bob@techhive.com"}`},
		{name: "missing", path: "/users/9", wantCode: http.StatusNotFound, wantBody: `{"Message":"User with ID 9 not found."}`},
		{name: "negative", path: "/users/-1", wantCode: http.StatusNotFound, wantBody: `{"Message":"User with ID -1 not found."}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestUserHandler_NonIntegerID(t *testing.T) {
	r, _ := newRouter(seedRepo())

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := serve(r, method, "/users/1.5", `{"Name":"X","Email":"x@y.io"}`)
		assert.Equal(t, http.StatusNotFound, w.Code, method)
		assert.Empty(t, w.Body.String(), method)
	}
}

func TestUserHandler_CreateSetsLocation(t *testing.T) {
	r, _ := newRouter(seedRepo())

	w := serve(r, http.MethodPost, "/users", `{"Id":50,"Name":"Carol","Email":"carol@techhive.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/users/3", w.Header().Get("Location"))
	assert.JSONEq(t, `{"Id":3,"Name":"Carol","Email":"carol@techhive.com"}`, w.Body.String())
}

func TestUserHandler_CreateConflict(t *testing.T) {
	r, recorded := newRouter(staleIDRepo{seedRepo()})

	w := serve(r, http.MethodPost, "/users", `{"Name":"Carol","Email":"carol@techhive.com"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, httpdto.ProblemContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"detail":"Failed to add user due to a concurrency issue."`)
	assert.Contains(t, w.Body.String(), `"status":500`)

	require.Len(t, *recorded, 1)
	assert.ErrorIs(t, (*recorded)[0], apperrors.ErrConflict)
}

func TestUserHandler_UnmappedErrorIsDeferred(t *testing.T) {
	r, recorded := newRouter(brokenRepo{seedRepo()})

	w := serve(r, http.MethodGet, "/users/1", "")
	assert.Empty(t, w.Body.String(), "the error boundary writes the response")
	require.Len(t, *recorded, 1)
	assert.ErrorIs(t, (*recorded)[0], errStoreDown)
}

func TestUserHandler_List(t *testing.T) {
	r, _ := newRouter(seedRepo())

	w := serve(r, http.MethodGet, "/users?page=2&pageSize=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"Id":2,"Name":"Bob","Email":"bob@techhive.com"}]`, w.Body.String())

	w = serve(r, http.MethodGet, "/users?page=5&pageSize=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestUserHandler_ListIgnoresOutOfRangePaging(t *testing.T) {
	repo := repository.NewUserRepository()
	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Insert(context.Background(), &user.User{Name: "u", Email: "u@techhive.com"}))
	}
	r, _ := newRouter(repo)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		// (2^32+1 - 1) * 2 wraps to a small offset if accepted as a 64-bit int
		{name: "page above int32", query: "?page=4294967297&pageSize=2", want: 5},
		{name: "page size above int32", query: "?page=1&pageSize=2147483648", want: 5},
		{name: "int32 max page", query: "?page=2147483647&pageSize=2", want: 0},
		{name: "int32 max page size", query: "?page=1&pageSize=2147483647", want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, http.MethodGet, "/users"+tt.query, "")
			require.Equal(t, http.StatusOK, w.Code)

			var got []user.User
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Len(t, got, tt.want)
		})
	}
}

func TestUserHandler_Delete(t *testing.T) {
	r, _ := newRouter(seedRepo())

	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodDelete, "/users/1", "").Code)

	w := serve(r, http.MethodDelete, "/users/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"Message":"User with ID 1 not found."}`, w.Body.String())
}

func TestReadUser(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantNil bool
	}{
		{name: "object", body: `{"Name":"A","Email":"a@b.co"}`},
		{name: "empty", body: "", wantNil: true},
		{name: "null", body: "null", wantNil: true},
		{name: "garbage", body: "{not json", wantNil: true},
		{name: "wrong type", body: `{"Name":5}`, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tt.body))

			got, err := readUser(c)
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, "A", got.Name)
		})
	}
}
