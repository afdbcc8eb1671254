package constants

import "fmt"

// Login-account roles. SabhaUsers (tracked members) never log in; these are the
// staff accounts that mark attendance and manage the directory.
const (
	RoleAdmin        = "admin"
	RoleSahSanchalak = "sahSanchalak"
	RoleSanchalak    = "sanchalak"
	RoleViewer       = "viewer"
)

// Permission names checked by the role middleware.
const (
	PermViewAttendance   = "view_attendance"
	PermToggleAttendance = "toggle_attendance"
	PermViewReports      = "view_reports"
	PermManageSabhaUsers = "manage_sabha_users"
	PermManageOrg        = "manage_org"
	PermManageUsers      = "manage_users"
)

const (
	ErrOnlyAdminsCanAccess    = "Only admins may access %s."
	ErrOnlySanchalakCanAccess = "Only sanchalak roles may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSanchalak(feature string) string {
	return fmt.Sprintf(ErrOnlySanchalakCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleSahSanchalak,
		RoleSanchalak,
		RoleViewer,
	}

	SanchalakAndAbove = []string{
		RoleSanchalak,
		RoleSahSanchalak,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
