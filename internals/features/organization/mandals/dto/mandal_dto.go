package dto

import (
	"time"

	"github.com/google/uuid"

	mModel "yuvasabha_backend/internals/features/organization/mandals/model"
)

/* ===================== REQUESTS ===================== */

type CreateMandalRequest struct {
	MandalName     string    `json:"mandal_name" validate:"required,min=2,max=100"`
	MandalInitials string    `json:"mandal_initials" validate:"required,alpha,min=1,max=10"`
	MandalZoneID   uuid.UUID `json:"mandal_zone_id" validate:"required"`
}

func (r *CreateMandalRequest) ToModel(createdBy uuid.UUID) *mModel.MandalModel {
	return &mModel.MandalModel{
		MandalName:      r.MandalName,
		MandalInitials:  r.MandalInitials,
		MandalZoneID:    r.MandalZoneID,
		MandalCreatedBy: createdBy,
	}
}

type UpdateMandalRequest struct {
	MandalName     *string    `json:"mandal_name" validate:"omitempty,min=2,max=100"`
	MandalInitials *string    `json:"mandal_initials" validate:"omitempty,alpha,min=1,max=10"`
	MandalZoneID   *uuid.UUID `json:"mandal_zone_id" validate:"omitempty"`
}

func (r *UpdateMandalRequest) ApplyToModel(m *mModel.MandalModel) {
	if r.MandalName != nil {
		m.MandalName = *r.MandalName
	}
	if r.MandalInitials != nil {
		m.MandalInitials = *r.MandalInitials
	}
	if r.MandalZoneID != nil {
		m.MandalZoneID = *r.MandalZoneID
	}
}

type MandalsByZoneRequest struct {
	ZoneID uuid.UUID `json:"zone_id" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type MandalResponse struct {
	MandalID       uuid.UUID  `json:"mandal_id"`
	MandalName     string     `json:"mandal_name"`
	MandalInitials string     `json:"mandal_initials"`
	MandalZoneID   uuid.UUID  `json:"mandal_zone_id"`
	MandalCreatedAt time.Time `json:"mandal_created_at"`
	MandalUpdatedAt *time.Time `json:"mandal_updated_at,omitempty"`
}

func NewMandalResponse(m *mModel.MandalModel) *MandalResponse {
	if m == nil {
		return nil
	}
	return &MandalResponse{
		MandalID:        m.MandalID,
		MandalName:      m.MandalName,
		MandalInitials:  m.MandalInitials,
		MandalZoneID:    m.MandalZoneID,
		MandalCreatedAt: m.MandalCreatedAt,
		MandalUpdatedAt: m.MandalUpdatedAt,
	}
}
