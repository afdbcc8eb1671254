package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	mModel "yuvasabha_backend/internals/features/organization/mandals/model"
	zDTO "yuvasabha_backend/internals/features/organization/zones/dto"
	zModel "yuvasabha_backend/internals/features/organization/zones/model"
	helper "yuvasabha_backend/internals/helpers"
	authmw "yuvasabha_backend/internals/middlewares/auth"
)

type ZoneController struct {
	DB *gorm.DB
}

func NewZoneController(db *gorm.DB) *ZoneController {
	return &ZoneController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /zones
func (h *ZoneController) Create(c *fiber.Ctx) error {
	var req zDTO.CreateZoneRequest
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

	var existing zModel.ZoneModel
	if err := h.DB.Where("zone_name = ?", req.ZoneName).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusConflict, "Zone with the same name already exists.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing zones")
	}

	m := req.ToModel(callerID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create zone")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Zone created successfully.", zDTO.NewZoneResponse(m))
}

// GET /zones
func (h *ZoneController) List(c *fiber.Ctx) error {
	var rows []zModel.ZoneModel
	if err := h.DB.Order("zone_created_at DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch zones")
	}

	items := make([]*zDTO.ZoneResponse, 0, len(rows))
	for i := range rows {
		items = append(items, zDTO.NewZoneResponse(&rows[i]))
	}
	return helper.Success(c, "Zones retrieved successfully.", items)
}

// GET /zones/:id
func (h *ZoneController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid zone ID")
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	return helper.Success(c, "Zone retrieved successfully.", zDTO.NewZoneResponse(m))
}

// PATCH /zones/:id
func (h *ZoneController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid zone ID")
	}

	var req zDTO.UpdateZoneRequest
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

	if req.ZoneName != nil {
		var existing zModel.ZoneModel
		if err := h.DB.Where("zone_name = ? AND zone_id <> ?", *req.ZoneName, id).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusConflict, "Zone with the same name already exists.")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing zones")
		}
	}

	req.ApplyToModel(m)
	if err := h.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update zone")
	}
	return helper.Success(c, "Zone updated successfully.", zDTO.NewZoneResponse(m))
}

// DELETE /zones/:id
// A zone that still has mandals cannot be removed; it would orphan them.
func (h *ZoneController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid zone ID")
	}

	m, err := h.findByID(id)
	if err != nil {
		return err
	}

	var mandalCount int64
	if err := h.DB.Model(&mModel.MandalModel{}).Where("mandal_zone_id = ?", id).Count(&mandalCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check zone references")
	}
	if mandalCount > 0 {
		return fiber.NewError(fiber.StatusConflict, "Zone still has mandals and cannot be deleted.")
	}

	if err := h.DB.Delete(&zModel.ZoneModel{}, "zone_id = ?", m.ZoneID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete zone")
	}
	return helper.Success(c, "Zone deleted successfully.", fiber.Map{"zone_id": m.ZoneID})
}

/* ===================== HELPERS ===================== */

func (h *ZoneController) findByID(id uuid.UUID) (*zModel.ZoneModel, error) {
	var m zModel.ZoneModel
	if err := h.DB.Where("zone_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Zone not found.")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch zone")
	}
	return &m, nil
}
