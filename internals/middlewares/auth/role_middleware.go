package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	RoleModel "yuvasabha_backend/internals/features/users/role/model"
)

// RequirePermissions loads the caller's role and requires every listed
// permission. The role lookup is by the role_id claim set at login, mirroring
// the dynamic role/permission store the frontend manages.
func RequirePermissions(db *gorm.DB, required ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := c.Locals(LocRoleID).(string)
		if !ok || raw == "" {
			return fiber.NewError(fiber.StatusForbidden, "Role not found.")
		}
		roleID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusForbidden, "Role not found.")
		}

		var role RoleModel.RoleModel
		if err := db.Where("role_id = ?", roleID).First(&role).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusForbidden, "Role not found.")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Authorization error.")
		}

		perms, err := role.PermissionList()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Authorization error.")
		}

		permSet := make(map[string]struct{}, len(perms))
		for _, p := range perms {
			permSet[p] = struct{}{}
		}
		for _, want := range required {
			if _, ok := permSet[want]; !ok {
				return fiber.NewError(fiber.StatusForbidden, "Access denied.")
			}
		}

		return c.Next()
	}
}

// OnlyRoles gates a route to a fixed set of role names.
func OnlyRoles(message string, allowed []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleName, _ := c.Locals(LocRoleName).(string)
		for _, r := range allowed {
			if roleName == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, message)
	}
}
