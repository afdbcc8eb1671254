package dto

import (
	"time"

	"github.com/google/uuid"

	zModel "yuvasabha_backend/internals/features/organization/zones/model"
)

/* ===================== REQUESTS ===================== */

type CreateZoneRequest struct {
	ZoneName string `json:"zone_name" validate:"required,min=2,max=100"`
	ZoneCity string `json:"zone_city" validate:"required,min=2,max=100"`
}

func (r *CreateZoneRequest) ToModel(createdBy uuid.UUID) *zModel.ZoneModel {
	return &zModel.ZoneModel{
		ZoneName:      r.ZoneName,
		ZoneCity:      r.ZoneCity,
		ZoneCreatedBy: createdBy,
	}
}

type UpdateZoneRequest struct {
	ZoneName *string `json:"zone_name" validate:"omitempty,min=2,max=100"`
	ZoneCity *string `json:"zone_city" validate:"omitempty,min=2,max=100"`
}

func (r *UpdateZoneRequest) ApplyToModel(m *zModel.ZoneModel) {
	if r.ZoneName != nil {
		m.ZoneName = *r.ZoneName
	}
	if r.ZoneCity != nil {
		m.ZoneCity = *r.ZoneCity
	}
}

/* ===================== RESPONSES ===================== */

type ZoneResponse struct {
	ZoneID        uuid.UUID  `json:"zone_id"`
	ZoneName      string     `json:"zone_name"`
	ZoneCity      string     `json:"zone_city"`
	ZoneCreatedAt time.Time  `json:"zone_created_at"`
	ZoneUpdatedAt *time.Time `json:"zone_updated_at,omitempty"`
}

func NewZoneResponse(m *zModel.ZoneModel) *ZoneResponse {
	if m == nil {
		return nil
	}
	return &ZoneResponse{
		ZoneID:        m.ZoneID,
		ZoneName:      m.ZoneName,
		ZoneCity:      m.ZoneCity,
		ZoneCreatedAt: m.ZoneCreatedAt,
		ZoneUpdatedAt: m.ZoneUpdatedAt,
	}
}
