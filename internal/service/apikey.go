package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cipherstack/cipher-auth/internal/models"
	"github.com/cipherstack/cipher-auth/internal/repo"
)

// APIKeyService is the secondary access surface for service-to-service
// calls: presence checks only, no expiry or scoping.
type APIKeyService struct {
	Repo repo.GormRepo
}

func (s *APIKeyService) Create(ctx context.Context, userID, name string) (*models.APIKey, error) {
	if name == "" {
		name = "Default name"
	}
	key := models.APIKey{
		UserID: userID,
		Name:   name,
		Key:    uuid.NewString(),
		Secret: uuid.NewString(),
	}
	if err := s.Repo.CreateAPIKey(ctx, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

func (s *APIKeyService) List(ctx context.Context, userID string) ([]models.APIKey, error) {
	return s.Repo.APIKeysOfUser(ctx, userID)
}

// ValidatePublic checks the presented value against stored public keys.
func (s *APIKeyService) ValidatePublic(ctx context.Context, key string) error {
	if key == "" {
		return &APIKeyError{Reason: "API key is missing"}
	}
	ok, err := s.Repo.HasAPIKeyWithKey(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return &APIKeyError{Reason: "invalid API key"}
	}
	return nil
}

// ValidatePrivate checks the presented value against stored secrets.
func (s *APIKeyService) ValidatePrivate(ctx context.Context, secret string) error {
	if secret == "" {
		return &APIKeyError{Reason: "API key is missing"}
	}
	ok, err := s.Repo.HasAPIKeyWithSecret(ctx, secret)
	if err != nil {
		return err
	}
	if !ok {
		return &APIKeyError{Reason: "invalid API key"}
	}
	return nil
}
