package repo

import (
	"context"

	"github.com/cipherstack/cipher-auth/internal/models"
)

func (r *GormRepo) CreateRole(ctx context.Context, role *models.Role) error {
	return r.DB.WithContext(ctx).Create(role).Error
}

func (r *GormRepo) RoleByID(ctx context.Context, id string) (*models.Role, error) {
	var role models.Role
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *GormRepo) RoleByIdentifier(ctx context.Context, identifier string) (*models.Role, error) {
	var role models.Role
	if err := r.DB.WithContext(ctx).Where("identifier = ?", identifier).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// Roles lists non-default roles only; system roles stay invisible to the
// generic admin operations.
func (r *GormRepo) Roles(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	if err := r.DB.WithContext(ctx).Where("is_default = ?", false).Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *GormRepo) UpdateRole(ctx context.Context, id string, updates map[string]any) error {
	return r.DB.WithContext(ctx).Model(&models.Role{}).Where("id = ?", id).Updates(updates).Error
}

func (r *GormRepo) DeleteRole(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Delete(&models.Role{}, "id = ?", id).Error
}
