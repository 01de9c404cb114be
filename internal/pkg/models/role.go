package models

// Operator roles carried in the JWT role claim
const (
	RoleAdmin      = "admin"
	RoleDispatcher = "dispatcher"
	RoleViewer     = "viewer"
)

// RoleCanModifyTrips reports whether the role may confirm trips or request
// lifecycle transitions. Viewers get read access only.
func RoleCanModifyTrips(role string) bool {
	switch role {
	case RoleAdmin, RoleDispatcher:
		return true
	default:
		return false
	}
}
