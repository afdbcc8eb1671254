package model

import (
	"time"

	"github.com/google/uuid"
)

type ZoneModel struct {
	ZoneID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:zone_id" json:"zone_id"`

	ZoneName string `gorm:"type:varchar(100);not null;uniqueIndex;column:zone_name" json:"zone_name"`
	ZoneCity string `gorm:"type:varchar(100);not null;column:zone_city" json:"zone_city"`

	// Audit
	ZoneCreatedBy uuid.UUID  `gorm:"type:uuid;not null;column:zone_created_by" json:"zone_created_by"`
	ZoneCreatedAt time.Time  `gorm:"column:zone_created_at;autoCreateTime" json:"zone_created_at"`
	ZoneUpdatedAt *time.Time `gorm:"column:zone_updated_at;autoUpdateTime" json:"zone_updated_at,omitempty"`
}

func (ZoneModel) TableName() string { return "zones" }
