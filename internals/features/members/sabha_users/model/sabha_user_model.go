package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SabhaUserModel is a tracked member of the sabha. Members never log in;
// staff accounts (users) manage them and mark their attendance.
type SabhaUserModel struct {
	SabhaUserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:sabha_user_id" json:"sabha_user_id"`

	// Human-readable per-mandal sequential ID, e.g. "AB12". Allocated from the
	// mandal initials; the unique index backs the allocator's retry loop.
	SabhaUserCustomID string `gorm:"type:varchar(20);not null;uniqueIndex;column:sabha_user_custom_id" json:"sabha_user_custom_id"`

	SabhaUserName       string  `gorm:"type:varchar(100);not null;column:sabha_user_name" json:"sabha_user_name"`
	SabhaUserFatherName *string `gorm:"type:varchar(100);column:sabha_user_father_name" json:"sabha_user_father_name,omitempty"`
	SabhaUserSurname    *string `gorm:"type:varchar(100);column:sabha_user_surname" json:"sabha_user_surname,omitempty"`

	SabhaUserMobileNumber  string  `gorm:"type:varchar(20);not null;column:sabha_user_mobile_number" json:"sabha_user_mobile_number"`
	SabhaUserMobileNumber2 *string `gorm:"type:varchar(20);column:sabha_user_mobile_number2" json:"sabha_user_mobile_number2,omitempty"`

	SabhaUserDOB     *time.Time `gorm:"type:date;column:sabha_user_dob" json:"sabha_user_dob,omitempty"`
	SabhaUserAddress *string    `gorm:"column:sabha_user_address" json:"sabha_user_address,omitempty"`

	SabhaUserDesignationID *uuid.UUID `gorm:"type:uuid;column:sabha_user_designation_id" json:"sabha_user_designation_id,omitempty"`
	SabhaUserMandalID      uuid.UUID  `gorm:"type:uuid;not null;column:sabha_user_mandal_id" json:"sabha_user_mandal_id"`
	SabhaUserZoneID        uuid.UUID  `gorm:"type:uuid;not null;column:sabha_user_zone_id" json:"sabha_user_zone_id"`

	SabhaUserActiveStatus        bool           `gorm:"not null;default:true;column:sabha_user_active_status" json:"sabha_user_active_status"`
	SabhaUserLastAcademicDetails *string        `gorm:"column:sabha_user_last_academic_details" json:"sabha_user_last_academic_details,omitempty"`
	SabhaUserBapsID              *string        `gorm:"type:varchar(50);column:sabha_user_baps_id" json:"sabha_user_baps_id,omitempty"`
	SabhaUserSkills              pq.StringArray `gorm:"type:text[];column:sabha_user_skills" json:"sabha_user_skills,omitempty"`
	SabhaUserRemarks             *string        `gorm:"column:sabha_user_remarks" json:"sabha_user_remarks,omitempty"`

	// Secondary attendance contexts, orthogonal to the mandal membership.
	SabhaUserIsYST       bool `gorm:"not null;default:false;column:sabha_user_is_yst" json:"sabha_user_is_yst"`
	SabhaUserIsRaviSabha bool `gorm:"not null;default:false;column:sabha_user_is_ravi_sabha" json:"sabha_user_is_ravi_sabha"`

	SabhaUserImageURL *string `gorm:"column:sabha_user_image_url" json:"sabha_user_image_url,omitempty"`

	// Audit
	SabhaUserCreatedBy  uuid.UUID  `gorm:"type:uuid;not null;column:sabha_user_created_by" json:"sabha_user_created_by"`
	SabhaUserUpdatedBy  *uuid.UUID `gorm:"type:uuid;column:sabha_user_updated_by" json:"sabha_user_updated_by,omitempty"`
	SabhaUserCreatedAt  time.Time  `gorm:"column:sabha_user_created_at;autoCreateTime" json:"sabha_user_created_at"`
	SabhaUserModifiedAt *time.Time `gorm:"column:sabha_user_modified_at;autoUpdateTime" json:"sabha_user_modified_at,omitempty"`
}

func (SabhaUserModel) TableName() string { return "sabha_users" }
