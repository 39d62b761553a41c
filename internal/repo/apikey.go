package repo

import (
	"context"

	"github.com/cipherstack/cipher-auth/internal/models"
)

func (r *GormRepo) CreateAPIKey(ctx context.Context, k *models.APIKey) error {
	return r.DB.WithContext(ctx).Create(k).Error
}

func (r *GormRepo) APIKeysOfUser(ctx context.Context, userID string) ([]models.APIKey, error) {
	var keys []models.APIKey
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *GormRepo) HasAPIKeyWithKey(ctx context.Context, key string) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.APIKey{}).
		Where("key = ?", key).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) HasAPIKeyWithSecret(ctx context.Context, secret string) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.APIKey{}).
		Where("secret = ?", secret).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
