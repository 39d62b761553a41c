package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/cipherstack/cipher-auth/internal/models"
)

func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	tx := r.DB.WithContext(ctx).Where("email = ?", u.Email).FirstOrCreate(u)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrUserExists
	}
	return nil
}

func (r *GormRepo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) UserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) UpdatePassword(ctx context.Context, userID, hashedPassword string) error {
	tx := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("hashed_password", hashedPassword)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) AssignUserRole(ctx context.Context, userID, roleID string) error {
	return r.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("role_id", roleID).Error
}

// UserRoleIdentifier returns the slug of the user's role, or "" when the
// user holds no role.
func (r *GormRepo) UserRoleIdentifier(ctx context.Context, userID string) (string, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Preload("Role").Where("id = ?", userID).First(&user).Error; err != nil {
		return "", err
	}
	if user.Role == nil {
		return "", nil
	}
	return user.Role.Identifier, nil
}
