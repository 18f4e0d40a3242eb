package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"pdv/src/auth/domain/entity"
)

type fakeTokenStore struct {
	token string
	err   error
}

func (s *fakeTokenStore) Save(result *entity.LoginResult) error { return nil }
func (s *fakeTokenStore) Token() (string, error)                { return s.token, s.err }
func (s *fakeTokenStore) User() (*entity.User, error)           { return nil, entity.ErrNotAuthenticated }
func (s *fakeTokenStore) Clear() error                          { return nil }

func setupRouter(store *fakeTokenStore) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var seen string
	router.GET("/guarded", RequireSession(store), func(ctx *gin.Context) {
		seen = ctx.GetString("authToken")
		ctx.Status(http.StatusOK)
	})
	return router, &seen
}

func TestRequireSessionInjectsToken(t *testing.T) {
	router, seen := setupRouter(&fakeTokenStore{token: "abc123"})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/guarded", nil)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Bearer abc123", *seen)
}

func TestRequireSessionRejectsMissingSession(t *testing.T) {
	router, _ := setupRouter(&fakeTokenStore{err: entity.ErrNotAuthenticated})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/guarded", nil)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireSessionRejectsExpiredSession(t *testing.T) {
	router, _ := setupRouter(&fakeTokenStore{err: entity.ErrSessionExpired})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/guarded", nil)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
