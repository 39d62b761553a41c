package repo

import (
	"context"
	"fmt"

	"github.com/cipherstack/cipher-auth/internal/models"
	"github.com/cipherstack/cipher-auth/pkg/hash"
	"github.com/cipherstack/cipher-auth/pkg/logging"
)

// EnsureSuperAdmin guarantees the reserved super-admin role and its seed
// account exist. Safe to run on every startup: present state is left alone.
func (r *GormRepo) EnsureSuperAdmin(ctx context.Context, email, password string) error {
	l := logging.FromContext(ctx).With("svc", "repo.setup")

	existing, err := r.UserByEmail(ctx, email)
	if err != nil && !NotFound(err) {
		return fmt.Errorf("lookup seed admin: %w", err)
	}
	if existing != nil && existing.RoleID != nil {
		return nil
	}

	role, err := r.RoleByIdentifier(ctx, models.SuperAdminIdentifier)
	if err != nil {
		if !NotFound(err) {
			return fmt.Errorf("lookup super-admin role: %w", err)
		}
		role = &models.Role{
			Identifier:  models.SuperAdminIdentifier,
			Name:        "Cipher Super Admin",
			Description: "Super admin with all permissions",
			IsDefault:   true,
		}
		if err := r.CreateRole(ctx, role); err != nil {
			return fmt.Errorf("create super-admin role: %w", err)
		}
		l.Info("super_admin_role_created", "role_id", role.ID)
	}

	if existing != nil {
		return r.AssignUserRole(ctx, existing.ID, role.ID)
	}

	hashed, err := hash.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash seed admin password: %w", err)
	}

	admin := models.User{
		Email:          email,
		HashedPassword: hashed,
		RoleID:         &role.ID,
	}
	if err := r.CreateUser(ctx, &admin); err != nil {
		return fmt.Errorf("create seed admin: %w", err)
	}
	l.Info("super_admin_created", "user_id", admin.ID)
	return nil
}
