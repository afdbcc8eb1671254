package dto

import (
	"time"

	"github.com/google/uuid"

	attModel "yuvasabha_backend/internals/features/attendance/attendance/model"
)

/* ===================== REQUESTS ===================== */

// ToggleAttendanceRequest flips one member's state for one day. Date accepts
// RFC3339 or plain YYYY-MM-DD; any time-of-day collapses to the UTC day.
// Context defaults to mandal; mandal_id defaults to the member's own mandal.
type ToggleAttendanceRequest struct {
	SabhaUserID uuid.UUID  `json:"sabha_user_id" validate:"required"`
	Date        string     `json:"date" validate:"required"`
	Context     string     `json:"context" validate:"omitempty,oneof=mandal ravi_sabha yst"`
	MandalID    *uuid.UUID `json:"mandal_id" validate:"omitempty"`
}

// FetchAttendanceRequest returns every record of one canonical day, optionally
// narrowed to a context or a mandal.
type FetchAttendanceRequest struct {
	Date     string     `json:"date" validate:"required"`
	Context  *string    `json:"context" validate:"omitempty,oneof=mandal ravi_sabha yst"`
	MandalID *uuid.UUID `json:"mandal_id" validate:"omitempty"`
}

// MonthlyReportRequest scopes the Sunday-percentage report. Mandal context
// requires mandal_id; the shared contexts ignore it.
type MonthlyReportRequest struct {
	Context  string     `json:"context" validate:"omitempty,oneof=mandal ravi_sabha yst"`
	MandalID *uuid.UUID `json:"mandal_id" validate:"omitempty"`
}

/* ===================== RESPONSES ===================== */

type AttendanceResponse struct {
	AttendanceID          uuid.UUID                  `json:"attendance_id"`
	AttendanceSabhaUserID uuid.UUID                  `json:"attendance_sabha_user_id"`
	AttendanceDay         time.Time                  `json:"attendance_day"`
	AttendanceContext     attModel.AttendanceContext `json:"attendance_context"`
	AttendanceMandalID    *uuid.UUID                 `json:"attendance_mandal_id,omitempty"`
	AttendanceStatus      attModel.AttendanceStatus  `json:"attendance_status"`
	AttendanceMarkedBy    uuid.UUID                  `json:"attendance_marked_by"`
}

func NewAttendanceResponse(m *attModel.AttendanceModel) *AttendanceResponse {
	if m == nil {
		return nil
	}
	return &AttendanceResponse{
		AttendanceID:          m.AttendanceID,
		AttendanceSabhaUserID: m.AttendanceSabhaUserID,
		AttendanceDay:         m.AttendanceDay,
		AttendanceContext:     m.AttendanceContext,
		AttendanceMandalID:    m.AttendanceMandalID,
		AttendanceStatus:      m.AttendanceStatus,
		AttendanceMarkedBy:    m.AttendanceMarkedBy,
	}
}
