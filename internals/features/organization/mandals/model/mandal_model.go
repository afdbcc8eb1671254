package model

import (
	"time"

	"github.com/google/uuid"
)

// MandalModel is an administrative sub-group of a zone. The initials feed the
// per-mandal custom IDs of sabha users (e.g. "AB" -> AB1, AB2, ...).
type MandalModel struct {
	MandalID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:mandal_id" json:"mandal_id"`

	MandalName     string    `gorm:"type:varchar(100);not null;uniqueIndex;column:mandal_name" json:"mandal_name"`
	MandalInitials string    `gorm:"type:varchar(10);not null;uniqueIndex;column:mandal_initials" json:"mandal_initials"`
	MandalZoneID   uuid.UUID `gorm:"type:uuid;not null;column:mandal_zone_id" json:"mandal_zone_id"`

	// Audit
	MandalCreatedBy uuid.UUID  `gorm:"type:uuid;not null;column:mandal_created_by" json:"mandal_created_by"`
	MandalCreatedAt time.Time  `gorm:"column:mandal_created_at;autoCreateTime" json:"mandal_created_at"`
	MandalUpdatedAt *time.Time `gorm:"column:mandal_updated_at;autoUpdateTime" json:"mandal_updated_at,omitempty"`
}

func (MandalModel) TableName() string { return "mandals" }
