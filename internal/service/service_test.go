package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cipherstack/cipher-auth/internal/cache"
	"github.com/cipherstack/cipher-auth/internal/models"
	"github.com/cipherstack/cipher-auth/internal/repo"
	"github.com/cipherstack/cipher-auth/internal/tokens"
)

type testEnv struct {
	rp     repo.GormRepo
	mem    *cache.Memory
	tokens *TokenService
	auth   *AuthService
	authz  *AuthzService
	reset  *ResetService
	roles  *RoleService
	perms  *PermissionService
	keys   *APIKeyService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(models.All()...))

	rp := repo.GormRepo{DB: gdb}
	mem := cache.NewMemory()

	tok := &TokenService{
		Signer:     tokens.NewHS256Signer([]byte("test-jwt-secret")),
		Cache:      mem,
		Repo:       rp,
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	}

	return &testEnv{
		rp:     rp,
		mem:    mem,
		tokens: tok,
		auth:   &AuthService{Repo: rp, Tokens: tok},
		authz:  &AuthzService{Tokens: tok, Repo: rp},
		reset:  &ResetService{Repo: rp, Cache: mem},
		roles:  &RoleService{Repo: rp},
		perms:  &PermissionService{Repo: rp},
		keys:   &APIKeyService{Repo: rp},
	}
}
