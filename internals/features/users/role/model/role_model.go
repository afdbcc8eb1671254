package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RoleModel maps a role name to the permission strings checked by the
// permission middleware (view_attendance, toggle_attendance, ...).
type RoleModel struct {
	RoleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:role_id" json:"role_id"`

	RoleName        string         `gorm:"type:varchar(50);not null;uniqueIndex;column:role_name" json:"role_name"`
	RolePermissions datatypes.JSON `gorm:"type:jsonb;not null;default:'[]';column:role_permissions" json:"role_permissions"`

	RoleCreatedAt time.Time  `gorm:"column:role_created_at;autoCreateTime" json:"role_created_at"`
	RoleUpdatedAt *time.Time `gorm:"column:role_updated_at;autoUpdateTime" json:"role_updated_at,omitempty"`
}

func (RoleModel) TableName() string { return "roles" }

func (m *RoleModel) PermissionList() ([]string, error) {
	var perms []string
	if len(m.RolePermissions) == 0 {
		return perms, nil
	}
	if err := json.Unmarshal(m.RolePermissions, &perms); err != nil {
		return nil, err
	}
	return perms, nil
}

func (m *RoleModel) SetPermissions(perms []string) error {
	if perms == nil {
		perms = []string{}
	}
	raw, err := json.Marshal(perms)
	if err != nil {
		return err
	}
	m.RolePermissions = datatypes.JSON(raw)
	return nil
}
