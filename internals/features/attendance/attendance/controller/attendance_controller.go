package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attDTO "yuvasabha_backend/internals/features/attendance/attendance/dto"
	attModel "yuvasabha_backend/internals/features/attendance/attendance/model"
	"yuvasabha_backend/internals/features/attendance/attendance/service"
	suModel "yuvasabha_backend/internals/features/members/sabha_users/model"
	mModel "yuvasabha_backend/internals/features/organization/mandals/model"
	helper "yuvasabha_backend/internals/helpers"
	"yuvasabha_backend/internals/helpers/sabhadate"
	authmw "yuvasabha_backend/internals/middlewares/auth"
)

type AttendanceController struct {
	DB    *gorm.DB
	Store service.RecordStore
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Store: service.NewGormRecordStore(db)}
}

/* ===================== HANDLERS ===================== */

// POST /attendance/toggle
// First toggle of a day creates the record as Present; every later toggle of
// the same (member, day, context) flips it. Marking and unmarking are the
// same endpoint.
func (h *AttendanceController) Toggle(c *fiber.Ctx) error {
	var req attDTO.ToggleAttendanceRequest
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

	day, err := sabhadate.Parse(req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid date")
	}

	attCtx := attModel.ContextMandal
	if req.Context != "" {
		attCtx = attModel.AttendanceContext(req.Context)
	}

	person, err := h.findPerson(req.SabhaUserID)
	if err != nil {
		return err
	}
	if !attCtx.EligibleMember(person.SabhaUserIsRaviSabha, person.SabhaUserIsYST) {
		return fiber.NewError(fiber.StatusBadRequest, "Sabha user is not part of this gathering.")
	}

	var mandalID *uuid.UUID
	if attCtx.NeedsMandal() {
		id := person.SabhaUserMandalID
		if req.MandalID != nil {
			id = *req.MandalID
		}
		if err := h.ensureMandalExists(id); err != nil {
			return err
		}
		mandalID = &id
	}

	key := service.TupleKey{
		SabhaUserID: person.SabhaUserID,
		Day:         day,
		Context:     attCtx,
		MandalID:    mandalID,
	}
	rec, err := service.Toggle(h.Store, key, callerID)
	if err != nil {
		if errors.Is(err, service.ErrToggleContention) {
			return fiber.NewError(fiber.StatusConflict, "Attendance is being updated concurrently; please retry.")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to toggle attendance")
	}

	return helper.Success(c, "Attendance toggled successfully.", attDTO.NewAttendanceResponse(rec))
}

// POST /attendance
// Fetches every record of one canonical day. A day nobody toggled is not an
// error: the response is still 200 with an empty list.
func (h *AttendanceController) GetAttendance(c *fiber.Ctx) error {
	var req attDTO.FetchAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	day, err := sabhadate.Parse(req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid date")
	}
	start, end := sabhadate.DayRange(day)

	q := h.DB.Model(&attModel.AttendanceModel{}).
		Where("attendance_day >= ? AND attendance_day < ?", start, end)
	if req.Context != nil {
		q = q.Where("attendance_context = ?", *req.Context)
	}
	if req.MandalID != nil {
		q = q.Where("attendance_mandal_id = ?", *req.MandalID)
	}

	var rows []attModel.AttendanceModel
	if err := q.Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	items := make([]*attDTO.AttendanceResponse, 0, len(rows))
	for i := range rows {
		items = append(items, attDTO.NewAttendanceResponse(&rows[i]))
	}

	message := "Attendance retrieved successfully."
	if len(items) == 0 {
		message = "No attendance records found for this date."
	}
	return helper.Success(c, message, items)
}

// POST /attendance/report
// Per-member Sunday percentages over every month that has any Present record
// in the requested scope. No Present records at all is a 404.
func (h *AttendanceController) MonthlyReport(c *fiber.Ctx) error {
	var req attDTO.MonthlyReportRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	attCtx := attModel.ContextMandal
	if req.Context != "" {
		attCtx = attModel.AttendanceContext(req.Context)
	}
	if attCtx.NeedsMandal() {
		if req.MandalID == nil {
			return fiber.NewError(fiber.StatusBadRequest, "mandal_id is required for the mandal context")
		}
		if err := h.ensureMandalExists(*req.MandalID); err != nil {
			return err
		}
	}

	persons, err := h.scopePersons(attCtx, req.MandalID)
	if err != nil {
		return err
	}
	records, err := h.scopePresentRecords(attCtx, req.MandalID)
	if err != nil {
		return err
	}

	// Members who left the scope (moved mandal, flag cleared) keep their
	// records in it; they still get a report row.
	if missing := service.MissingPersonIDs(records, persons); len(missing) > 0 {
		former, err := h.personsByID(missing)
		if err != nil {
			return err
		}
		persons = append(persons, former...)
	}

	report, err := service.BuildMonthlyReport(records, persons, time.Sunday)
	if err != nil {
		if errors.Is(err, service.ErrNoAttendanceData) {
			return fiber.NewError(fiber.StatusNotFound, "No attendance data found.")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build report")
	}

	return helper.Success(c, "Attendance report generated successfully.", report)
}

/* ===================== HELPERS ===================== */

func (h *AttendanceController) findPerson(id uuid.UUID) (*suModel.SabhaUserModel, error) {
	var m suModel.SabhaUserModel
	if err := h.DB.Where("sabha_user_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Sabha user not found.")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch sabha user")
	}
	return &m, nil
}

func (h *AttendanceController) ensureMandalExists(id uuid.UUID) error {
	var m mModel.MandalModel
	if err := h.DB.Select("mandal_id").Where("mandal_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Mandal not found.")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch mandal")
	}
	return nil
}

// scopePersons selects the member directory of a report scope: the mandal's
// members for mandal context, flagged members for the shared contexts.
func (h *AttendanceController) scopePersons(attCtx attModel.AttendanceContext, mandalID *uuid.UUID) ([]service.PersonInfo, error) {
	q := h.DB.Model(&suModel.SabhaUserModel{})
	switch attCtx {
	case attModel.ContextMandal:
		q = q.Where("sabha_user_mandal_id = ?", *mandalID)
	case attModel.ContextRaviSabha:
		q = q.Where("sabha_user_is_ravi_sabha = TRUE")
	case attModel.ContextYST:
		q = q.Where("sabha_user_is_yst = TRUE")
	}

	var rows []suModel.SabhaUserModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch sabha users")
	}
	return toPersonInfos(rows), nil
}

func (h *AttendanceController) personsByID(ids []uuid.UUID) ([]service.PersonInfo, error) {
	var rows []suModel.SabhaUserModel
	if err := h.DB.Where("sabha_user_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch sabha users")
	}
	return toPersonInfos(rows), nil
}

func toPersonInfos(rows []suModel.SabhaUserModel) []service.PersonInfo {
	persons := make([]service.PersonInfo, 0, len(rows))
	for i := range rows {
		persons = append(persons, service.PersonInfo{
			SabhaUserID: rows[i].SabhaUserID,
			CustomID:    rows[i].SabhaUserCustomID,
			Name:        rows[i].SabhaUserName,
		})
	}
	return persons
}

func (h *AttendanceController) scopePresentRecords(attCtx attModel.AttendanceContext, mandalID *uuid.UUID) ([]service.PresentRecord, error) {
	q := h.DB.Model(&attModel.AttendanceModel{}).
		Where("attendance_context = ?", attCtx).
		Where("attendance_status = ?", attModel.StatusPresent)
	if attCtx.NeedsMandal() {
		q = q.Where("attendance_mandal_id = ?", *mandalID)
	}

	var rows []attModel.AttendanceModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendance records")
	}

	records := make([]service.PresentRecord, 0, len(rows))
	for i := range rows {
		records = append(records, service.PresentRecord{
			SabhaUserID: rows[i].AttendanceSabhaUserID,
			Day:         rows[i].AttendanceDay,
		})
	}
	return records, nil
}
