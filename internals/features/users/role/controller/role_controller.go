package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	rDTO "yuvasabha_backend/internals/features/users/role/dto"
	rModel "yuvasabha_backend/internals/features/users/role/model"
	uModel "yuvasabha_backend/internals/features/users/user/model"
	helper "yuvasabha_backend/internals/helpers"
)

type RoleController struct {
	DB *gorm.DB
}

func NewRoleController(db *gorm.DB) *RoleController {
	return &RoleController{DB: db}
}

// POST /role
func (h *RoleController) Create(c *fiber.Ctx) error {
	var req rDTO.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing rModel.RoleModel
	if err := h.DB.Where("role_name = ?", req.RoleName).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusConflict, "Role with the same name already exists.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing roles")
	}

	m := &rModel.RoleModel{RoleName: req.RoleName}
	if err := m.SetPermissions(req.RolePermissions); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid permissions")
	}
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create role")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Role created successfully.", rDTO.NewRoleResponse(m))
}

// GET /role
func (h *RoleController) List(c *fiber.Ctx) error {
	var rows []rModel.RoleModel
	if err := h.DB.Order("role_created_at DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch roles")
	}

	items := make([]*rDTO.RoleResponse, 0, len(rows))
	for i := range rows {
		items = append(items, rDTO.NewRoleResponse(&rows[i]))
	}
	return helper.Success(c, "Roles retrieved successfully.", items)
}

// PATCH /role/:id
func (h *RoleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid role ID")
	}

	var req rDTO.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.findByID(id)
	if err != nil {
		return err
	}

	if req.RoleName != nil {
		var existing rModel.RoleModel
		if err := h.DB.Where("role_name = ? AND role_id <> ?", *req.RoleName, id).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusConflict, "Role with the same name already exists.")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing roles")
		}
		m.RoleName = *req.RoleName
	}
	if req.RolePermissions != nil {
		if err := m.SetPermissions(*req.RolePermissions); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid permissions")
		}
	}

	if err := h.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update role")
	}
	return helper.Success(c, "Role updated successfully.", rDTO.NewRoleResponse(m))
}

// DELETE /role/:id
// Refused while any user account still holds the role.
func (h *RoleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid role ID")
	}

	m, err := h.findByID(id)
	if err != nil {
		return err
	}

	var userCount int64
	if err := h.DB.Model(&uModel.UserModel{}).Where("user_role_id = ?", id).Count(&userCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check role references")
	}
	if userCount > 0 {
		return fiber.NewError(fiber.StatusConflict, "Role is still assigned to users and cannot be deleted.")
	}

	if err := h.DB.Delete(&rModel.RoleModel{}, "role_id = ?", m.RoleID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete role")
	}
	return helper.Success(c, "Role deleted successfully.", fiber.Map{"role_id": m.RoleID})
}

func (h *RoleController) findByID(id uuid.UUID) (*rModel.RoleModel, error) {
	var m rModel.RoleModel
	if err := h.DB.Where("role_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Role not found.")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch role")
	}
	return &m, nil
}
