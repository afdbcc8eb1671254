package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dDTO "yuvasabha_backend/internals/features/organization/designations/dto"
	dModel "yuvasabha_backend/internals/features/organization/designations/model"
	helper "yuvasabha_backend/internals/helpers"
	authmw "yuvasabha_backend/internals/middlewares/auth"
)

type DesignationController struct {
	DB *gorm.DB
}

func NewDesignationController(db *gorm.DB) *DesignationController {
	return &DesignationController{DB: db}
}

// POST /designation
func (h *DesignationController) Create(c *fiber.Ctx) error {
	var req dDTO.CreateDesignationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var existing dModel.DesignationModel
	if err := h.DB.Where("designation_name = ?", req.DesignationName).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusConflict, "Designation with the same name already exists.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing designations")
	}

	m := req.ToModel(callerID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create designation")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Designation created successfully.", dDTO.NewDesignationResponse(m))
}

// GET /designation
func (h *DesignationController) List(c *fiber.Ctx) error {
	var rows []dModel.DesignationModel
	if err := h.DB.Order("designation_created_at DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch designations")
	}

	items := make([]*dDTO.DesignationResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dDTO.NewDesignationResponse(&rows[i]))
	}
	return helper.Success(c, "Designations retrieved successfully.", items)
}

// PATCH /designation/:id
func (h *DesignationController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid designation ID")
	}

	var req dDTO.UpdateDesignationRequest
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

	if req.DesignationName != nil {
		var existing dModel.DesignationModel
		if err := h.DB.Where("designation_name = ? AND designation_id <> ?", *req.DesignationName, id).
			First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusConflict, "Designation with the same name already exists.")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing designations")
		}
	}

	req.ApplyToModel(m)
	if err := h.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update designation")
	}
	return helper.Success(c, "Designation updated successfully.", dDTO.NewDesignationResponse(m))
}

// DELETE /designation/:id
func (h *DesignationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid designation ID")
	}

	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(&dModel.DesignationModel{}, "designation_id = ?", m.DesignationID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete designation")
	}
	return helper.Success(c, "Designation deleted successfully.", fiber.Map{"designation_id": m.DesignationID})
}

func (h *DesignationController) findByID(id uuid.UUID) (*dModel.DesignationModel, error) {
	var m dModel.DesignationModel
	if err := h.DB.Where("designation_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Designation not found.")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch designation")
	}
	return &m, nil
}
