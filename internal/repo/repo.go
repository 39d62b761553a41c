package repo

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrUserExists     = errors.New("user already exists")
	ErrRefreshExpired = errors.New("refresh token expired")
)

type GormRepo struct {
	DB *gorm.DB
}

func NotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
