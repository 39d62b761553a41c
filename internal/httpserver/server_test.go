package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cipherstack/cipher-auth/internal/cache"
	"github.com/cipherstack/cipher-auth/internal/middleware"
	"github.com/cipherstack/cipher-auth/internal/models"
	"github.com/cipherstack/cipher-auth/internal/repo"
	"github.com/cipherstack/cipher-auth/internal/service"
	"github.com/cipherstack/cipher-auth/internal/tokens"
)

type testServer struct {
	e      *echo.Echo
	rp     repo.GormRepo
	mem    *cache.Memory
	tokens *service.TokenService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(models.All()...))

	rp := repo.GormRepo{DB: gdb}
	mem := cache.NewMemory()

	tokenSvc := &service.TokenService{
		Signer:     tokens.NewHS256Signer([]byte("test-jwt-secret")),
		Cache:      mem,
		Repo:       rp,
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	}
	authzSvc := &service.AuthzService{Tokens: tokenSvc, Repo: rp}
	keySvc := &service.APIKeyService{Repo: rp}

	e := echo.New()
	Register(e, &Deps{
		Auth: &AuthHTTP{
			Auth:   &service.AuthService{Repo: rp, Tokens: tokenSvc},
			Tokens: tokenSvc,
			Reset:  &service.ResetService{Repo: rp, Cache: mem},
		},
		Users:       &UserHTTP{Repo: rp},
		Roles:       &RoleHTTP{Roles: &service.RoleService{Repo: rp}},
		Permissions: &PermissionHTTP{Permissions: &service.PermissionService{Repo: rp}},
		APIKeys:     &APIKeyHTTP{Keys: keySvc},
		Service:     &ServiceHTTP{Authz: authzSvc, Repo: rp},
		AuthMW:      middleware.NewAuth(authzSvc),
		KeyMW:       middleware.NewAPIKeys(keySvc),
	})

	return &testServer{e: e, rp: rp, mem: mem, tokens: tokenSvc}
}

func (s *testServer) request(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func bearer(token string) map[string]string {
	return map[string]string{echo.HeaderAuthorization: "Bearer " + token}
}

// signupUser registers a user through the API and returns its token and id.
func (s *testServer) signupUser(t *testing.T, email, password string) (token, userID string) {
	t.Helper()

	rec := s.request(t, "POST", "/auth/signup", map[string]string{"email": email, "password": password}, nil)
	require.Equal(t, 200, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decode(t, rec, &resp)
	return resp.Token, resp.User.ID
}

// adminToken seeds the super admin and signs it in.
func (s *testServer) adminToken(t *testing.T) string {
	t.Helper()

	ctx := httptest.NewRequest("GET", "/", nil).Context()
	require.NoError(t, s.rp.EnsureSuperAdmin(ctx, "admin@test.com", "admin"))

	rec := s.request(t, "POST", "/auth/signin", map[string]string{"email": "admin@test.com", "password": "admin"}, nil)
	require.Equal(t, 200, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	decode(t, rec, &resp)
	return resp.Token
}
