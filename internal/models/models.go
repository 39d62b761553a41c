package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SuperAdminIdentifier is the reserved role slug. The role carrying it is
// seeded at startup and cannot be created or mutated through the generic
// role-management operations.
const SuperAdminIdentifier = "super-admin"

type User struct {
	ID             string    `gorm:"primaryKey;size:36"   json:"id"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string    `gorm:"not null"             json:"-"`
	RoleID         *string   `gorm:"size:36;index"        json:"role_id,omitempty"`
	Role           *Role     `gorm:"foreignKey:RoleID"    json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type Role struct {
	ID          string    `gorm:"primaryKey;size:36"   json:"id"`
	Identifier  string    `gorm:"uniqueIndex;not null" json:"identifier"`
	Name        string    `gorm:"not null"             json:"name"`
	Description string    `json:"description,omitempty"`
	IsDefault   bool      `gorm:"default:false"        json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type Permission struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"not null"           json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *Permission) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// RolePermission links a role to a permission. The composite primary key
// keeps the pair unique.
type RolePermission struct {
	RoleID       string     `gorm:"primaryKey;size:36" json:"role_id"`
	PermissionID string     `gorm:"primaryKey;size:36" json:"permission_id"`
	Role         Role       `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"       json:"-"`
	Permission   Permission `gorm:"foreignKey:PermissionID;constraint:OnDelete:CASCADE" json:"-"`
}

type RefreshToken struct {
	ID        uint   `gorm:"primaryKey"            json:"id"`
	Token     string `gorm:"uniqueIndex;not null"  json:"token"`
	UserID    string `gorm:"size:36;index;not null" json:"user_id"`
	ExpiresAt int64  `gorm:"not null"              json:"expires_at"`
}

type APIKey struct {
	ID        string    `gorm:"primaryKey;size:36"   json:"id"`
	UserID    string    `gorm:"size:36;index;not null" json:"user_id"`
	Name      string    `gorm:"not null"             json:"name"`
	Key       string    `gorm:"uniqueIndex;not null" json:"key"`
	Secret    string    `gorm:"uniqueIndex;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (k *APIKey) BeforeCreate(tx *gorm.DB) error {
	if k.ID == "" {
		k.ID = uuid.NewString()
	}
	return nil
}

// All returns every model the credential store migrates at startup.
func All() []any {
	return []any{
		&User{},
		&Role{},
		&Permission{},
		&RolePermission{},
		&RefreshToken{},
		&APIKey{},
	}
}
