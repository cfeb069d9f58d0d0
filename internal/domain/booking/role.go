package booking

import "github.com/styleon-app/stylist-scheduler/internal/faults"

// Role is the closed set of actor roles the scheduler recognises.
type Role string

const (
	RoleClient  Role = "client"
	RoleStylist Role = "stylist"
	RoleAdmin   Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleClient, RoleStylist, RoleAdmin:
		return Role(s), nil
	}
	return "", faults.Authorization("unknown_role", "Unknown actor role.")
}
