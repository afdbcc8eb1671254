package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceContext tags which gathering a record belongs to. Mandal sabha
// records carry the mandal ID; the shared gatherings (ravi sabha, YST) do not.
type AttendanceContext string

const (
	ContextMandal    AttendanceContext = "mandal"
	ContextRaviSabha AttendanceContext = "ravi_sabha"
	ContextYST       AttendanceContext = "yst"
)

func (ctx AttendanceContext) Valid() bool {
	switch ctx {
	case ContextMandal, ContextRaviSabha, ContextYST:
		return true
	}
	return false
}

// NeedsMandal reports whether records in this context must carry a mandal ID.
func (ctx AttendanceContext) NeedsMandal() bool { return ctx == ContextMandal }

// EligibleMember reports whether a member with the given flags may hold
// records in this context. Every member belongs to a mandal, so the mandal
// context is always eligible; the shared gatherings require the matching flag.
func (ctx AttendanceContext) EligibleMember(isRaviSabha, isYST bool) bool {
	switch ctx {
	case ContextRaviSabha:
		return isRaviSabha
	case ContextYST:
		return isYST
	}
	return true
}

// AttendanceStatus is a two-state machine: every toggle moves a record from
// one state to the other, never anywhere else.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

func (s AttendanceStatus) Flip() AttendanceStatus {
	if s == StatusPresent {
		return StatusAbsent
	}
	return StatusPresent
}

// AttendanceModel holds one member's state for one canonical day in one
// context. attendance_day is always midnight UTC; lookups use a half-open
// day range, never timestamp equality. At most one row may exist per
// (member, day, context, mandal) tuple; the backing unique index uses
// COALESCE on the nullable mandal column (see database.Migrate).
type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceSabhaUserID uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_sabha_user_id" json:"attendance_sabha_user_id"`

	AttendanceDay     time.Time         `gorm:"type:timestamptz;not null;index;column:attendance_day" json:"attendance_day"`
	AttendanceContext AttendanceContext `gorm:"type:varchar(20);not null;column:attendance_context" json:"attendance_context"`

	// Set iff the context is mandal.
	AttendanceMandalID *uuid.UUID `gorm:"type:uuid;column:attendance_mandal_id" json:"attendance_mandal_id,omitempty"`

	AttendanceStatus AttendanceStatus `gorm:"type:varchar(10);not null;column:attendance_status" json:"attendance_status"`

	// Last staff account that toggled this record.
	AttendanceMarkedBy uuid.UUID `gorm:"type:uuid;not null;column:attendance_marked_by" json:"attendance_marked_by"`

	AttendanceCreatedAt time.Time  `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }
