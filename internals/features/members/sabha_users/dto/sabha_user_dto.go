package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	suModel "yuvasabha_backend/internals/features/members/sabha_users/model"
)

/* ===================== REQUESTS ===================== */

type CreateSabhaUserRequest struct {
	SabhaUserName       string  `json:"sabha_user_name" validate:"required,min=2,max=100"`
	SabhaUserFatherName *string `json:"sabha_user_father_name" validate:"omitempty,max=100"`
	SabhaUserSurname    *string `json:"sabha_user_surname" validate:"omitempty,max=100"`

	SabhaUserMobileNumber  string  `json:"sabha_user_mobile_number" validate:"required,min=7,max=20"`
	SabhaUserMobileNumber2 *string `json:"sabha_user_mobile_number2" validate:"omitempty,min=7,max=20"`

	SabhaUserDOB     *time.Time `json:"sabha_user_dob" validate:"omitempty"`
	SabhaUserAddress *string    `json:"sabha_user_address" validate:"omitempty"`

	SabhaUserDesignationID *uuid.UUID `json:"sabha_user_designation_id" validate:"omitempty"`
	SabhaUserMandalID      uuid.UUID  `json:"sabha_user_mandal_id" validate:"required"`

	SabhaUserActiveStatus        *bool    `json:"sabha_user_active_status" validate:"omitempty"`
	SabhaUserLastAcademicDetails *string  `json:"sabha_user_last_academic_details" validate:"omitempty"`
	SabhaUserBapsID              *string  `json:"sabha_user_baps_id" validate:"omitempty,max=50"`
	SabhaUserSkills              []string `json:"sabha_user_skills" validate:"omitempty,dive,min=1"`
	SabhaUserRemarks             *string  `json:"sabha_user_remarks" validate:"omitempty"`

	SabhaUserIsYST       *bool `json:"sabha_user_is_yst" validate:"omitempty"`
	SabhaUserIsRaviSabha *bool `json:"sabha_user_is_ravi_sabha" validate:"omitempty"`

	SabhaUserImageURL *string `json:"sabha_user_image_url" validate:"omitempty,uri"`
}

// ToModel builds the member record. The custom ID, zone and audit fields are
// filled by the controller; defaults follow the member being active.
func (r *CreateSabhaUserRequest) ToModel(createdBy uuid.UUID) *suModel.SabhaUserModel {
	m := &suModel.SabhaUserModel{
		SabhaUserName:       r.SabhaUserName,
		SabhaUserFatherName: r.SabhaUserFatherName,
		SabhaUserSurname:    r.SabhaUserSurname,

		SabhaUserMobileNumber:  r.SabhaUserMobileNumber,
		SabhaUserMobileNumber2: r.SabhaUserMobileNumber2,

		SabhaUserDOB:     r.SabhaUserDOB,
		SabhaUserAddress: r.SabhaUserAddress,

		SabhaUserDesignationID: r.SabhaUserDesignationID,
		SabhaUserMandalID:      r.SabhaUserMandalID,

		SabhaUserActiveStatus:        true,
		SabhaUserLastAcademicDetails: r.SabhaUserLastAcademicDetails,
		SabhaUserBapsID:              r.SabhaUserBapsID,
		SabhaUserSkills:              pq.StringArray(r.SabhaUserSkills),
		SabhaUserRemarks:             r.SabhaUserRemarks,

		SabhaUserImageURL: r.SabhaUserImageURL,

		SabhaUserCreatedBy: createdBy,
	}
	if r.SabhaUserActiveStatus != nil {
		m.SabhaUserActiveStatus = *r.SabhaUserActiveStatus
	}
	if r.SabhaUserIsYST != nil {
		m.SabhaUserIsYST = *r.SabhaUserIsYST
	}
	if r.SabhaUserIsRaviSabha != nil {
		m.SabhaUserIsRaviSabha = *r.SabhaUserIsRaviSabha
	}
	return m
}

// UpdateSabhaUserRequest is a partial update: only present keys overwrite.
// Booleans are pointers so an explicit false is applied instead of being
// mistaken for "absent" and silently dropped.
type UpdateSabhaUserRequest struct {
	SabhaUserName       *string `json:"sabha_user_name" validate:"omitempty,min=2,max=100"`
	SabhaUserFatherName *string `json:"sabha_user_father_name" validate:"omitempty,max=100"`
	SabhaUserSurname    *string `json:"sabha_user_surname" validate:"omitempty,max=100"`

	SabhaUserMobileNumber  *string `json:"sabha_user_mobile_number" validate:"omitempty,min=7,max=20"`
	SabhaUserMobileNumber2 *string `json:"sabha_user_mobile_number2" validate:"omitempty,min=7,max=20"`

	SabhaUserDOB     *time.Time `json:"sabha_user_dob" validate:"omitempty"`
	SabhaUserAddress *string    `json:"sabha_user_address" validate:"omitempty"`

	SabhaUserDesignationID *uuid.UUID `json:"sabha_user_designation_id" validate:"omitempty"`
	SabhaUserMandalID      *uuid.UUID `json:"sabha_user_mandal_id" validate:"omitempty"`

	SabhaUserActiveStatus        *bool     `json:"sabha_user_active_status" validate:"omitempty"`
	SabhaUserLastAcademicDetails *string   `json:"sabha_user_last_academic_details" validate:"omitempty"`
	SabhaUserBapsID              *string   `json:"sabha_user_baps_id" validate:"omitempty,max=50"`
	SabhaUserSkills              *[]string `json:"sabha_user_skills" validate:"omitempty,dive,min=1"`
	SabhaUserRemarks             *string   `json:"sabha_user_remarks" validate:"omitempty"`

	SabhaUserIsYST       *bool `json:"sabha_user_is_yst" validate:"omitempty"`
	SabhaUserIsRaviSabha *bool `json:"sabha_user_is_ravi_sabha" validate:"omitempty"`

	SabhaUserImageURL *string `json:"sabha_user_image_url" validate:"omitempty,uri"`
}

func (r *UpdateSabhaUserRequest) ApplyToModel(m *suModel.SabhaUserModel, updatedBy uuid.UUID) {
	if r.SabhaUserName != nil {
		m.SabhaUserName = *r.SabhaUserName
	}
	if r.SabhaUserFatherName != nil {
		m.SabhaUserFatherName = r.SabhaUserFatherName
	}
	if r.SabhaUserSurname != nil {
		m.SabhaUserSurname = r.SabhaUserSurname
	}
	if r.SabhaUserMobileNumber != nil {
		m.SabhaUserMobileNumber = *r.SabhaUserMobileNumber
	}
	if r.SabhaUserMobileNumber2 != nil {
		m.SabhaUserMobileNumber2 = r.SabhaUserMobileNumber2
	}
	if r.SabhaUserDOB != nil {
		m.SabhaUserDOB = r.SabhaUserDOB
	}
	if r.SabhaUserAddress != nil {
		m.SabhaUserAddress = r.SabhaUserAddress
	}
	if r.SabhaUserDesignationID != nil {
		m.SabhaUserDesignationID = r.SabhaUserDesignationID
	}
	if r.SabhaUserMandalID != nil {
		m.SabhaUserMandalID = *r.SabhaUserMandalID
	}
	if r.SabhaUserActiveStatus != nil {
		m.SabhaUserActiveStatus = *r.SabhaUserActiveStatus
	}
	if r.SabhaUserLastAcademicDetails != nil {
		m.SabhaUserLastAcademicDetails = r.SabhaUserLastAcademicDetails
	}
	if r.SabhaUserBapsID != nil {
		m.SabhaUserBapsID = r.SabhaUserBapsID
	}
	if r.SabhaUserSkills != nil {
		m.SabhaUserSkills = pq.StringArray(*r.SabhaUserSkills)
	}
	if r.SabhaUserRemarks != nil {
		m.SabhaUserRemarks = r.SabhaUserRemarks
	}
	if r.SabhaUserIsYST != nil {
		m.SabhaUserIsYST = *r.SabhaUserIsYST
	}
	if r.SabhaUserIsRaviSabha != nil {
		m.SabhaUserIsRaviSabha = *r.SabhaUserIsRaviSabha
	}
	if r.SabhaUserImageURL != nil {
		m.SabhaUserImageURL = r.SabhaUserImageURL
	}
	m.SabhaUserUpdatedBy = &updatedBy
}

type ListSabhaUsersRequest struct {
	MandalID *uuid.UUID `json:"mandal_id" validate:"omitempty"`
}

type BulkAddSabhaUsersRequest struct {
	Users []CreateSabhaUserRequest `json:"users" validate:"required,min=1,dive"`
}

/* ===================== RESPONSES ===================== */

type SabhaUserResponse struct {
	SabhaUserID       uuid.UUID `json:"sabha_user_id"`
	SabhaUserCustomID string    `json:"sabha_user_custom_id"`

	SabhaUserName       string  `json:"sabha_user_name"`
	SabhaUserFatherName *string `json:"sabha_user_father_name,omitempty"`
	SabhaUserSurname    *string `json:"sabha_user_surname,omitempty"`

	SabhaUserMobileNumber  string  `json:"sabha_user_mobile_number"`
	SabhaUserMobileNumber2 *string `json:"sabha_user_mobile_number2,omitempty"`

	SabhaUserDOB     *time.Time `json:"sabha_user_dob,omitempty"`
	SabhaUserAddress *string    `json:"sabha_user_address,omitempty"`

	SabhaUserDesignationID *uuid.UUID `json:"sabha_user_designation_id,omitempty"`
	SabhaUserMandalID      uuid.UUID  `json:"sabha_user_mandal_id"`
	SabhaUserZoneID        uuid.UUID  `json:"sabha_user_zone_id"`

	SabhaUserActiveStatus        bool     `json:"sabha_user_active_status"`
	SabhaUserLastAcademicDetails *string  `json:"sabha_user_last_academic_details,omitempty"`
	SabhaUserBapsID              *string  `json:"sabha_user_baps_id,omitempty"`
	SabhaUserSkills              []string `json:"sabha_user_skills,omitempty"`
	SabhaUserRemarks             *string  `json:"sabha_user_remarks,omitempty"`

	SabhaUserIsYST       bool `json:"sabha_user_is_yst"`
	SabhaUserIsRaviSabha bool `json:"sabha_user_is_ravi_sabha"`

	SabhaUserImageURL *string `json:"sabha_user_image_url,omitempty"`

	SabhaUserCreatedAt  time.Time  `json:"sabha_user_created_at"`
	SabhaUserModifiedAt *time.Time `json:"sabha_user_modified_at,omitempty"`
}

func NewSabhaUserResponse(m *suModel.SabhaUserModel) *SabhaUserResponse {
	if m == nil {
		return nil
	}
	return &SabhaUserResponse{
		SabhaUserID:       m.SabhaUserID,
		SabhaUserCustomID: m.SabhaUserCustomID,

		SabhaUserName:       m.SabhaUserName,
		SabhaUserFatherName: m.SabhaUserFatherName,
		SabhaUserSurname:    m.SabhaUserSurname,

		SabhaUserMobileNumber:  m.SabhaUserMobileNumber,
		SabhaUserMobileNumber2: m.SabhaUserMobileNumber2,

		SabhaUserDOB:     m.SabhaUserDOB,
		SabhaUserAddress: m.SabhaUserAddress,

		SabhaUserDesignationID: m.SabhaUserDesignationID,
		SabhaUserMandalID:      m.SabhaUserMandalID,
		SabhaUserZoneID:        m.SabhaUserZoneID,

		SabhaUserActiveStatus:        m.SabhaUserActiveStatus,
		SabhaUserLastAcademicDetails: m.SabhaUserLastAcademicDetails,
		SabhaUserBapsID:              m.SabhaUserBapsID,
		SabhaUserSkills:              []string(m.SabhaUserSkills),
		SabhaUserRemarks:             m.SabhaUserRemarks,

		SabhaUserIsYST:       m.SabhaUserIsYST,
		SabhaUserIsRaviSabha: m.SabhaUserIsRaviSabha,

		SabhaUserImageURL: m.SabhaUserImageURL,

		SabhaUserCreatedAt:  m.SabhaUserCreatedAt,
		SabhaUserModifiedAt: m.SabhaUserModifiedAt,
	}
}
