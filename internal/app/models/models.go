package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent       RoleType = "student"
	RoleMentor        RoleType = "mentor"
	RolePlacementCell RoleType = "placement_cell"
	RoleEmployer      RoleType = "employer"
)

// ValidRole reports whether the given value is one of the known role tags.
func ValidRole(role RoleType) bool {
	switch role {
	case RoleStudent, RoleMentor, RolePlacementCell, RoleEmployer:
		return true
	}
	return false
}

// InternshipMode defines how an internship is conducted
type InternshipMode string

const (
	ModeOnline  InternshipMode = "online"
	ModeOffline InternshipMode = "offline"
	ModeHybrid  InternshipMode = "hybrid"
)

// ValidInternshipMode reports whether the given value is a known mode.
func ValidInternshipMode(mode InternshipMode) bool {
	switch mode {
	case ModeOnline, ModeOffline, ModeHybrid:
		return true
	}
	return false
}
