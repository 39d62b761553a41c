package service

import (
	"context"

	"github.com/cipherstack/cipher-auth/internal/models"
	"github.com/cipherstack/cipher-auth/internal/repo"
)

// AuthzService resolves a verified identity to its role. The only enforced
// gate is the super-admin check; permissions stay assignable metadata under
// roles.
type AuthzService struct {
	Tokens *TokenService
	Repo   repo.GormRepo
}

// Authenticate is the baseline gate every protected operation passes
// through.
func (s *AuthzService) Authenticate(ctx context.Context, accessToken string) (string, error) {
	return s.Tokens.Verify(ctx, accessToken)
}

// AuthorizeAdmin authenticates and then requires the reserved super-admin
// role slug.
func (s *AuthzService) AuthorizeAdmin(ctx context.Context, accessToken string) (string, error) {
	userID, err := s.Authenticate(ctx, accessToken)
	if err != nil {
		return "", err
	}

	identifier, err := s.Repo.UserRoleIdentifier(ctx, userID)
	if err != nil {
		if repo.NotFound(err) {
			return "", &AuthorizationError{Reason: "admin privileges required"}
		}
		return "", err
	}
	if identifier != models.SuperAdminIdentifier {
		return "", &AuthorizationError{Reason: "admin privileges required"}
	}
	return userID, nil
}

// PermissionsOf lists the permissions of the user's role. Users without a
// role have none.
func (s *AuthzService) PermissionsOf(ctx context.Context, userID string) ([]models.Permission, error) {
	user, err := s.Repo.UserByID(ctx, userID)
	if err != nil {
		if repo.NotFound(err) {
			return nil, &NotFoundError{Entity: "user"}
		}
		return nil, err
	}
	if user.RoleID == nil {
		return nil, nil
	}
	return s.Repo.PermissionsOfRole(ctx, *user.RoleID)
}
