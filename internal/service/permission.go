package service

import (
	"context"

	"github.com/cipherstack/cipher-auth/internal/models"
	"github.com/cipherstack/cipher-auth/internal/repo"
)

type PermissionService struct {
	Repo repo.GormRepo
}

func (s *PermissionService) Create(ctx context.Context, name, description string) (*models.Permission, error) {
	if name == "" {
		return nil, &ValidationError{Reason: "name is required"}
	}
	permission := models.Permission{
		Name:        name,
		Description: description,
	}
	if err := s.Repo.CreatePermission(ctx, &permission); err != nil {
		return nil, err
	}
	return &permission, nil
}

func (s *PermissionService) Delete(ctx context.Context, id string) error {
	if _, err := s.Repo.PermissionByID(ctx, id); err != nil {
		if repo.NotFound(err) {
			return &NotFoundError{Entity: "permission"}
		}
		return err
	}
	return s.Repo.DeletePermission(ctx, id)
}
