package dto

import (
	"time"

	"github.com/google/uuid"

	rModel "yuvasabha_backend/internals/features/users/role/model"
)

type CreateRoleRequest struct {
	RoleName        string   `json:"role_name" validate:"required,min=2,max=50"`
	RolePermissions []string `json:"role_permissions" validate:"required,dive,min=1"`
}

type UpdateRoleRequest struct {
	RoleName        *string   `json:"role_name" validate:"omitempty,min=2,max=50"`
	RolePermissions *[]string `json:"role_permissions" validate:"omitempty,dive,min=1"`
}

type RoleResponse struct {
	RoleID          uuid.UUID  `json:"role_id"`
	RoleName        string     `json:"role_name"`
	RolePermissions []string   `json:"role_permissions"`
	RoleCreatedAt   time.Time  `json:"role_created_at"`
	RoleUpdatedAt   *time.Time `json:"role_updated_at,omitempty"`
}

func NewRoleResponse(m *rModel.RoleModel) *RoleResponse {
	if m == nil {
		return nil
	}
	perms, err := m.PermissionList()
	if err != nil || perms == nil {
		perms = []string{}
	}
	return &RoleResponse{
		RoleID:          m.RoleID,
		RoleName:        m.RoleName,
		RolePermissions: perms,
		RoleCreatedAt:   m.RoleCreatedAt,
		RoleUpdatedAt:   m.RoleUpdatedAt,
	}
}
