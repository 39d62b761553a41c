package service

import (
	"context"

	"github.com/cipherstack/cipher-auth/internal/models"
	"github.com/cipherstack/cipher-auth/internal/repo"
	"github.com/cipherstack/cipher-auth/pkg/logging"
)

const (
	MsgPermissionAssigned        = "Permission assigned to role successfully"
	MsgPermissionAlreadyAssigned = "Permission already assigned to role"
)

// RoleService implements the admin-side role management policy: the
// reserved slug cannot be created, default roles cannot be mutated, and
// permission assignment is idempotent.
type RoleService struct {
	Repo repo.GormRepo
}

type RoleDetail struct {
	models.Role
	Permissions []models.Permission `json:"permissions"`
}

func (s *RoleService) Create(ctx context.Context, identifier, name, description string) (*models.Role, error) {
	if identifier == "" {
		return nil, &ValidationError{Reason: "identifier is required"}
	}
	if identifier == models.SuperAdminIdentifier {
		return nil, &ConflictError{Reason: "cannot create role with reserved identifier"}
	}
	if name == "" {
		name = identifier
	}

	role := models.Role{
		Identifier:  identifier,
		Name:        name,
		Description: description,
	}
	if err := s.Repo.CreateRole(ctx, &role); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("role_created", "role_id", role.ID, "identifier", identifier)
	return &role, nil
}

func (s *RoleService) List(ctx context.Context) ([]models.Role, error) {
	return s.Repo.Roles(ctx)
}

// Get returns a non-default role with its permission set. Default roles are
// invisible here, same as in List.
func (s *RoleService) Get(ctx context.Context, id string) (*RoleDetail, error) {
	role, err := s.Repo.RoleByID(ctx, id)
	if err != nil {
		if repo.NotFound(err) {
			return nil, &NotFoundError{Entity: "role"}
		}
		return nil, err
	}
	if role.IsDefault {
		return nil, &NotFoundError{Entity: "role"}
	}

	permissions, err := s.Repo.PermissionsOfRole(ctx, role.ID)
	if err != nil {
		return nil, err
	}
	return &RoleDetail{Role: *role, Permissions: permissions}, nil
}

func (s *RoleService) Update(ctx context.Context, id, name, description string) (*models.Role, error) {
	role, err := s.guardedRole(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if name != "" {
		updates["name"] = name
	}
	if description != "" {
		updates["description"] = description
	}
	if len(updates) > 0 {
		if err := s.Repo.UpdateRole(ctx, role.ID, updates); err != nil {
			return nil, err
		}
	}
	return s.Repo.RoleByID(ctx, id)
}

func (s *RoleService) Delete(ctx context.Context, id string) error {
	role, err := s.guardedRole(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteRole(ctx, role.ID); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("role_deleted", "role_id", role.ID)
	return nil
}

// AssignPermission links a permission to a role. An existing pair is an
// informational success, never an error.
func (s *RoleService) AssignPermission(ctx context.Context, roleID, permissionID string) (string, error) {
	assigned, err := s.Repo.HasRolePermission(ctx, roleID, permissionID)
	if err != nil {
		return "", err
	}
	if assigned {
		return MsgPermissionAlreadyAssigned, nil
	}

	if _, err := s.Repo.RoleByID(ctx, roleID); err != nil {
		if repo.NotFound(err) {
			return "", &NotFoundError{Entity: "role"}
		}
		return "", err
	}
	if _, err := s.Repo.PermissionByID(ctx, permissionID); err != nil {
		if repo.NotFound(err) {
			return "", &NotFoundError{Entity: "permission"}
		}
		return "", err
	}

	if err := s.Repo.AddRolePermission(ctx, roleID, permissionID); err != nil {
		return "", err
	}
	return MsgPermissionAssigned, nil
}

// guardedRole loads a role for mutation, rejecting default (system) roles.
func (s *RoleService) guardedRole(ctx context.Context, id string) (*models.Role, error) {
	role, err := s.Repo.RoleByID(ctx, id)
	if err != nil {
		if repo.NotFound(err) {
			return nil, &NotFoundError{Entity: "role"}
		}
		return nil, err
	}
	if role.IsDefault {
		return nil, &ConflictError{Reason: "cannot modify a default role"}
	}
	return role, nil
}
