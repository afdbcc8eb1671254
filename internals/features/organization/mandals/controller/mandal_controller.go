package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	suModel "yuvasabha_backend/internals/features/members/sabha_users/model"
	mDTO "yuvasabha_backend/internals/features/organization/mandals/dto"
	mModel "yuvasabha_backend/internals/features/organization/mandals/model"
	zModel "yuvasabha_backend/internals/features/organization/zones/model"
	uModel "yuvasabha_backend/internals/features/users/user/model"
	helper "yuvasabha_backend/internals/helpers"
	authmw "yuvasabha_backend/internals/middlewares/auth"
)

type MandalController struct {
	DB *gorm.DB
}

func NewMandalController(db *gorm.DB) *MandalController {
	return &MandalController{DB: db}
}

/* ===================== HANDLERS ===================== */

// GET /mandal
func (h *MandalController) List(c *fiber.Ctx) error {
	var rows []mModel.MandalModel
	if err := h.DB.Order("mandal_created_at DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch mandals")
	}

	items := make([]*mDTO.MandalResponse, 0, len(rows))
	for i := range rows {
		items = append(items, mDTO.NewMandalResponse(&rows[i]))
	}
	return helper.Success(c, "Mandals retrieved successfully.", items)
}

// POST /mandal/by-zone
// Returns only the mandals in the zone the caller has been granted access to.
func (h *MandalController) ListByZone(c *fiber.Ctx) error {
	var req mDTO.MandalsByZoneRequest
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

	var accessible []uuid.UUID
	if err := h.DB.Model(&uModel.UserAccessibleMandal{}).
		Where("user_id = ?", callerID).
		Pluck("mandal_id", &accessible).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch accessible mandals")
	}

	var rows []mModel.MandalModel
	if err := h.DB.
		Where("mandal_zone_id = ? AND mandal_id IN ?", req.ZoneID, accessible).
		Order("mandal_created_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch mandals")
	}
	if len(rows) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No mandals found for the specified zone.")
	}

	items := make([]*mDTO.MandalResponse, 0, len(rows))
	for i := range rows {
		items = append(items, mDTO.NewMandalResponse(&rows[i]))
	}
	return helper.Success(c, "Mandals retrieved by zone successfully.", items)
}

// GET /mandal/:id
func (h *MandalController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid mandal ID")
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	return helper.Success(c, "Mandal retrieved successfully.", mDTO.NewMandalResponse(m))
}

// POST /mandal
func (h *MandalController) Create(c *fiber.Ctx) error {
	var req mDTO.CreateMandalRequest
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

	var zone zModel.ZoneModel
	if err := h.DB.Where("zone_id = ?", req.MandalZoneID).First(&zone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Zone not found.")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch zone")
	}

	if err := h.ensureNameAndInitialsFree(req.MandalName, req.MandalInitials, uuid.Nil); err != nil {
		return err
	}

	m := req.ToModel(callerID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create mandal")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Mandal created successfully.", mDTO.NewMandalResponse(m))
}

// PATCH /mandal/:id
func (h *MandalController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid mandal ID")
	}

	var req mDTO.UpdateMandalRequest
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

	name := m.MandalName
	initials := m.MandalInitials
	if req.MandalName != nil {
		name = *req.MandalName
	}
	if req.MandalInitials != nil {
		initials = *req.MandalInitials
	}
	if err := h.ensureNameAndInitialsFree(name, initials, id); err != nil {
		return err
	}

	if req.MandalZoneID != nil {
		var zone zModel.ZoneModel
		if err := h.DB.Where("zone_id = ?", *req.MandalZoneID).First(&zone).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Zone not found.")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch zone")
		}
	}

	req.ApplyToModel(m)
	if err := h.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update mandal")
	}
	return helper.Success(c, "Mandal updated successfully.", mDTO.NewMandalResponse(m))
}

// DELETE /mandal/:id
// A mandal that still has sabha users cannot be removed; their mandal reference
// would dangle.
func (h *MandalController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid mandal ID")
	}

	m, err := h.findByID(id)
	if err != nil {
		return err
	}

	var memberCount int64
	if err := h.DB.Model(&suModel.SabhaUserModel{}).Where("sabha_user_mandal_id = ?", id).Count(&memberCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check mandal references")
	}
	if memberCount > 0 {
		return fiber.NewError(fiber.StatusConflict, "Mandal still has sabha users and cannot be deleted.")
	}

	if err := h.DB.Delete(&mModel.MandalModel{}, "mandal_id = ?", m.MandalID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete mandal")
	}
	return helper.Success(c, "Mandal deleted successfully.", fiber.Map{"mandal_id": m.MandalID})
}

/* ===================== HELPERS ===================== */

func (h *MandalController) findByID(id uuid.UUID) (*mModel.MandalModel, error) {
	var m mModel.MandalModel
	if err := h.DB.Where("mandal_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Mandal not found.")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch mandal")
	}
	return &m, nil
}

func (h *MandalController) ensureNameAndInitialsFree(name, initials string, excludeID uuid.UUID) error {
	q := h.DB.Model(&mModel.MandalModel{}).
		Where("mandal_name = ? OR mandal_initials = ?", name, initials)
	if excludeID != uuid.Nil {
		q = q.Where("mandal_id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing mandals")
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "Mandal with the same name or initials already exists.")
	}
	return nil
}
