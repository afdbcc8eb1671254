package dto

import (
	"time"

	"github.com/google/uuid"

	dModel "yuvasabha_backend/internals/features/organization/designations/model"
)

type CreateDesignationRequest struct {
	DesignationName string `json:"designation_name" validate:"required,min=2,max=100"`
}

func (r *CreateDesignationRequest) ToModel(createdBy uuid.UUID) *dModel.DesignationModel {
	return &dModel.DesignationModel{
		DesignationName:      r.DesignationName,
		DesignationCreatedBy: createdBy,
	}
}

type UpdateDesignationRequest struct {
	DesignationName *string `json:"designation_name" validate:"omitempty,min=2,max=100"`
}

func (r *UpdateDesignationRequest) ApplyToModel(m *dModel.DesignationModel) {
	if r.DesignationName != nil {
		m.DesignationName = *r.DesignationName
	}
}

type DesignationResponse struct {
	DesignationID        uuid.UUID  `json:"designation_id"`
	DesignationName      string     `json:"designation_name"`
	DesignationCreatedAt time.Time  `json:"designation_created_at"`
	DesignationUpdatedAt *time.Time `json:"designation_updated_at,omitempty"`
}

func NewDesignationResponse(m *dModel.DesignationModel) *DesignationResponse {
	if m == nil {
		return nil
	}
	return &DesignationResponse{
		DesignationID:        m.DesignationID,
		DesignationName:      m.DesignationName,
		DesignationCreatedAt: m.DesignationCreatedAt,
		DesignationUpdatedAt: m.DesignationUpdatedAt,
	}
}
