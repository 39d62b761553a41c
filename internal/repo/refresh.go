package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/cipherstack/cipher-auth/internal/models"
)

func (r *GormRepo) SaveRefreshToken(ctx context.Context, token, userID string, expiresAt time.Time) error {
	record := models.RefreshToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt.Unix(),
	}
	return r.DB.WithContext(ctx).Create(&record).Error
}

func (r *GormRepo) RefreshTokenByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	var record models.RefreshToken
	if err := r.DB.WithContext(ctx).Where("token = ?", token).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ConsumeRefreshToken validates and deletes the token in one transaction,
// so a token can be exchanged at most once.
func (r *GormRepo) ConsumeRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	var record models.RefreshToken
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("token = ?", token).First(&record).Error; err != nil {
			return err
		}
		if record.ExpiresAt < time.Now().Unix() {
			return ErrRefreshExpired
		}
		return tx.Delete(&models.RefreshToken{}, "token = ?", token).Error
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}
