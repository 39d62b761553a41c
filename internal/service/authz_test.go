package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherstack/cipher-auth/internal/models"
)

func TestAuthzService_AuthorizeAdmin_SuperAdmin(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.rp.EnsureSuperAdmin(ctx, "admin@test.com", "admin"))

	session, err := env.auth.Signin(ctx, "admin@test.com", "admin")
	require.NoError(t, err)

	userID, err := env.authz.AuthorizeAdmin(ctx, session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, userID)
}

func TestAuthzService_AuthorizeAdmin_RegularUserForbidden(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	session, err := env.auth.Signup(ctx, "a@x.com", "password1")
	require.NoError(t, err)

	_, err = env.authz.AuthorizeAdmin(ctx, session.AccessToken)
	require.Error(t, err)
	var authzErr *AuthorizationError
	require.ErrorAs(t, err, &authzErr)
	assert.Equal(t, "admin privileges required", authzErr.Reason)
}

func TestAuthzService_AuthorizeAdmin_NonAdminRoleForbidden(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	session, err := env.auth.Signup(ctx, "a@x.com", "password1")
	require.NoError(t, err)

	role, err := env.roles.Create(ctx, "editor", "Editor", "")
	require.NoError(t, err)
	require.NoError(t, env.rp.AssignUserRole(ctx, session.UserID, role.ID))

	_, err = env.authz.AuthorizeAdmin(ctx, session.AccessToken)
	require.Error(t, err)
	var authzErr *AuthorizationError
	assert.ErrorAs(t, err, &authzErr)
}

func TestAuthzService_AuthorizeAdmin_BadToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	_, err := env.authz.AuthorizeAdmin(context.Background(), "garbage")
	require.Error(t, err)
	var authnErr *AuthenticationError
	assert.ErrorAs(t, err, &authnErr)
}

func TestAuthzService_PermissionsOf(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	session, err := env.auth.Signup(ctx, "a@x.com", "password1")
	require.NoError(t, err)

	permissions, err := env.authz.PermissionsOf(ctx, session.UserID)
	require.NoError(t, err)
	assert.Empty(t, permissions, "user without a role has no permissions")

	role, err := env.roles.Create(ctx, "editor", "Editor", "")
	require.NoError(t, err)
	permission, err := env.perms.Create(ctx, "articles:write", "")
	require.NoError(t, err)
	_, err = env.roles.AssignPermission(ctx, role.ID, permission.ID)
	require.NoError(t, err)
	require.NoError(t, env.rp.AssignUserRole(ctx, session.UserID, role.ID))

	permissions, err = env.authz.PermissionsOf(ctx, session.UserID)
	require.NoError(t, err)
	require.Len(t, permissions, 1)
	assert.Equal(t, "articles:write", permissions[0].Name)
}

func TestEnsureSuperAdmin_Idempotent(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.rp.EnsureSuperAdmin(ctx, "admin@test.com", "admin"))
	require.NoError(t, env.rp.EnsureSuperAdmin(ctx, "admin@test.com", "admin"))

	role, err := env.rp.RoleByIdentifier(ctx, models.SuperAdminIdentifier)
	require.NoError(t, err)
	assert.True(t, role.IsDefault)

	admin, err := env.rp.UserByEmail(ctx, "admin@test.com")
	require.NoError(t, err)
	require.NotNil(t, admin.RoleID)
	assert.Equal(t, role.ID, *admin.RoleID)
}

// A user who signed up before the seed ran gets adopted as the super admin.
func TestEnsureSuperAdmin_AttachesExistingUser(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	session, err := env.auth.Signup(ctx, "admin@test.com", "password1")
	require.NoError(t, err)

	require.NoError(t, env.rp.EnsureSuperAdmin(ctx, "admin@test.com", "admin"))

	identifier, err := env.rp.UserRoleIdentifier(ctx, session.UserID)
	require.NoError(t, err)
	assert.Equal(t, models.SuperAdminIdentifier, identifier)
}
