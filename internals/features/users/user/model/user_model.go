package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is a staff login account (admin / sanchalak), not a tracked member.
type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	UserUserName string `gorm:"type:varchar(50);not null;uniqueIndex;column:user_user_name" json:"user_user_name"`
	UserName     string `gorm:"type:varchar(100);not null;column:user_name" json:"user_name"`
	UserEmail    string `gorm:"type:varchar(255);not null;uniqueIndex;column:user_email" json:"user_email"`
	UserPassword string `gorm:"type:varchar(255);not null;column:user_password" json:"-"`

	UserRoleID   *uuid.UUID `gorm:"type:uuid;column:user_role_id" json:"user_role_id,omitempty"`
	UserIsActive bool       `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserRefreshToken *string `gorm:"column:user_refresh_token" json:"-"`

	UserCreatedAt time.Time  `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

// UserAccessibleMandal grants a staff account access to one mandal. The
// by-zone mandal listing and attendance marking are scoped by these rows.
type UserAccessibleMandal struct {
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`
	MandalID uuid.UUID `gorm:"type:uuid;primaryKey;column:mandal_id" json:"mandal_id"`

	GrantedAt time.Time `gorm:"column:granted_at;autoCreateTime" json:"granted_at"`
}

func (UserAccessibleMandal) TableName() string { return "user_accessible_mandals" }
