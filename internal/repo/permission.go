package repo

import (
	"context"

	"github.com/cipherstack/cipher-auth/internal/models"
)

func (r *GormRepo) CreatePermission(ctx context.Context, p *models.Permission) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *GormRepo) PermissionByID(ctx context.Context, id string) (*models.Permission, error) {
	var p models.Permission
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormRepo) DeletePermission(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Delete(&models.Permission{}, "id = ?", id).Error
}

func (r *GormRepo) HasRolePermission(ctx context.Context, roleID, permissionID string) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.RolePermission{}).
		Where("role_id = ? AND permission_id = ?", roleID, permissionID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) AddRolePermission(ctx context.Context, roleID, permissionID string) error {
	link := models.RolePermission{RoleID: roleID, PermissionID: permissionID}
	return r.DB.WithContext(ctx).Create(&link).Error
}

func (r *GormRepo) PermissionsOfRole(ctx context.Context, roleID string) ([]models.Permission, error) {
	var permissions []models.Permission
	err := r.DB.WithContext(ctx).
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Where("role_permissions.role_id = ?", roleID).
		Find(&permissions).Error
	if err != nil {
		return nil, err
	}
	return permissions, nil
}
