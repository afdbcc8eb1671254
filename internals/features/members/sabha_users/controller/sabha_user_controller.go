package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	attModel "yuvasabha_backend/internals/features/attendance/attendance/model"
	suDTO "yuvasabha_backend/internals/features/members/sabha_users/dto"
	suModel "yuvasabha_backend/internals/features/members/sabha_users/model"
	"yuvasabha_backend/internals/features/members/sabha_users/service"
	mModel "yuvasabha_backend/internals/features/organization/mandals/model"
	helper "yuvasabha_backend/internals/helpers"
	authmw "yuvasabha_backend/internals/middlewares/auth"
)

// How many times a create retries after losing the custom-ID race to a
// concurrent insert in the same mandal.
const customIDRetries = 3

type SabhaUserController struct {
	DB *gorm.DB
}

func NewSabhaUserController(db *gorm.DB) *SabhaUserController {
	return &SabhaUserController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /sabha-users
func (h *SabhaUserController) Add(c *fiber.Ctx) error {
	var req suDTO.CreateSabhaUserRequest
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

	m, err := h.createWithCustomID(h.DB, &req, callerID)
	if err != nil {
		return err
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sabha user added successfully.", suDTO.NewSabhaUserResponse(m))
}

// POST /sabha-users/bulk-add
// The batch is atomic: each entry gets its own custom ID inside one
// transaction, and a failure on any entry rolls back the whole batch, so the
// caller can always resubmit it unchanged.
func (h *SabhaUserController) BulkAdd(c *fiber.Ctx) error {
	var req suDTO.BulkAddSabhaUsersRequest
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

	created := make([]*suDTO.SabhaUserResponse, 0, len(req.Users))
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		for i := range req.Users {
			m, err := h.createWithCustomID(tx, &req.Users[i], callerID)
			if err != nil {
				return err
			}
			created = append(created, suDTO.NewSabhaUserResponse(m))
		}
		return nil
	}); err != nil {
		return err
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sabha users added successfully.", created)
}

// POST /sabha-users/by-mandal
func (h *SabhaUserController) List(c *fiber.Ctx) error {
	var req suDTO.ListSabhaUsersRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	q := h.DB.Model(&suModel.SabhaUserModel{})
	if req.MandalID != nil {
		q = q.Where("sabha_user_mandal_id = ?", *req.MandalID)
	}

	var rows []suModel.SabhaUserModel
	if err := q.Order("sabha_user_custom_id ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch sabha users")
	}

	items := make([]*suDTO.SabhaUserResponse, 0, len(rows))
	for i := range rows {
		items = append(items, suDTO.NewSabhaUserResponse(&rows[i]))
	}
	return helper.Success(c, "Sabha users retrieved successfully.", items)
}

// GET /sabha-users/:id
func (h *SabhaUserController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sabha user ID")
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	return helper.Success(c, "Sabha user retrieved successfully.", suDTO.NewSabhaUserResponse(m))
}

// PATCH /sabha-users/:id
// Partial update: only the keys present in the body are applied, and an
// explicit false on the boolean flags is honored. The custom ID never changes,
// even when the member moves to another mandal.
func (h *SabhaUserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sabha user ID")
	}

	var req suDTO.UpdateSabhaUserRequest
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

	m, err := h.findByID(id)
	if err != nil {
		return err
	}

	if req.SabhaUserMandalID != nil && *req.SabhaUserMandalID != m.SabhaUserMandalID {
		mandal, err := h.findMandal(*req.SabhaUserMandalID)
		if err != nil {
			return err
		}
		m.SabhaUserZoneID = mandal.MandalZoneID
	}

	req.ApplyToModel(m, callerID)
	if err := h.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update sabha user")
	}
	return helper.Success(c, "Sabha user updated successfully.", suDTO.NewSabhaUserResponse(m))
}

// DELETE /sabha-users/:id
// Members with attendance history are deactivated instead of deleted, so
// past reports stay intact.
func (h *SabhaUserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sabha user ID")
	}

	m, err := h.findByID(id)
	if err != nil {
		return err
	}

	var attCount int64
	if err := h.DB.Model(&attModel.AttendanceModel{}).
		Where("attendance_sabha_user_id = ?", id).
		Count(&attCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check attendance references")
	}
	if attCount > 0 {
		return fiber.NewError(fiber.StatusConflict, "Sabha user has attendance records; deactivate instead of deleting.")
	}

	if err := h.DB.Delete(&suModel.SabhaUserModel{}, "sabha_user_id = ?", m.SabhaUserID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete sabha user")
	}
	return helper.Success(c, "Sabha user deleted successfully.", fiber.Map{"sabha_user_id": m.SabhaUserID})
}

// POST /sabha-users/:id/photo (multipart field "photo")
func (h *SabhaUserController) UploadPhoto(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sabha user ID")
	}

	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	m, err := h.findByID(id)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Photo file is required")
	}

	url, err := helper.SaveMemberPhoto(fileHeader)
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Failed to process photo")
	}

	m.SabhaUserImageURL = &url
	m.SabhaUserUpdatedBy = &callerID
	if err := h.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save photo URL")
	}
	return helper.Success(c, "Photo uploaded successfully.", fiber.Map{"sabha_user_image_url": url})
}

/* ===================== HELPERS ===================== */

// createWithCustomID allocates the next per-mandal custom ID and inserts the
// member, using the given db handle so bulk adds run inside one transaction.
// Two staff adding to the same mandal at once can compute the same ID; the
// loser hits the unique index and re-reads the sequence. The insert runs in
// its own nested transaction so a violation inside a batch rolls back to a
// savepoint instead of aborting the whole batch before the retry.
func (h *SabhaUserController) createWithCustomID(db *gorm.DB, req *suDTO.CreateSabhaUserRequest, createdBy uuid.UUID) (*suModel.SabhaUserModel, error) {
	mandal, err := h.findMandal(req.SabhaUserMandalID)
	if err != nil {
		return nil, err
	}

	m := req.ToModel(createdBy)
	m.SabhaUserZoneID = mandal.MandalZoneID

	for attempt := 0; attempt < customIDRetries; attempt++ {
		var existing []string
		if err := db.Model(&suModel.SabhaUserModel{}).
			Where("sabha_user_mandal_id = ?", mandal.MandalID).
			Pluck("sabha_user_custom_id", &existing).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to allocate custom ID")
		}

		m.SabhaUserID = uuid.Nil
		m.SabhaUserCustomID = service.NextCustomID(mandal.MandalInitials, existing)

		err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(m).Error
		})
		if err == nil {
			return m, nil
		}
		if isUniqueViolation(err) {
			continue
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to add sabha user")
	}
	return nil, fiber.NewError(fiber.StatusConflict, "Could not allocate a custom ID; please retry.")
}

func (h *SabhaUserController) findByID(id uuid.UUID) (*suModel.SabhaUserModel, error) {
	var m suModel.SabhaUserModel
	if err := h.DB.Where("sabha_user_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Sabha user not found.")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch sabha user")
	}
	return &m, nil
}

func (h *SabhaUserController) findMandal(id uuid.UUID) (*mModel.MandalModel, error) {
	var m mModel.MandalModel
	if err := h.DB.Where("mandal_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Mandal not found.")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch mandal")
	}
	return &m, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
