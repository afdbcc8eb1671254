package model

import (
	"time"

	"github.com/google/uuid"
)

type DesignationModel struct {
	DesignationID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:designation_id" json:"designation_id"`

	DesignationName string `gorm:"type:varchar(100);not null;uniqueIndex;column:designation_name" json:"designation_name"`

	// Audit
	DesignationCreatedBy uuid.UUID  `gorm:"type:uuid;not null;column:designation_created_by" json:"designation_created_by"`
	DesignationCreatedAt time.Time  `gorm:"column:designation_created_at;autoCreateTime" json:"designation_created_at"`
	DesignationUpdatedAt *time.Time `gorm:"column:designation_updated_at;autoUpdateTime" json:"designation_updated_at,omitempty"`
}

func (DesignationModel) TableName() string { return "designations" }
