package types

// Role is the access role resolved for an authenticated principal.
// Any profile role string other than the recognized ones maps to RoleViewer,
// the lowest privilege.
type Role string

const (
	RoleMaster  Role = "MASTER"
	RolePlanner Role = "Planificadora"
	RoleAuditor Role = "Auditor"
	RoleViewer  Role = "Viewer"
)

// ParseRole maps a profile role string to a Role. Unknown strings are
// treated as lowest privilege rather than rejected.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleMaster:
		return RoleMaster
	case RolePlanner:
		return RolePlanner
	case RoleAuditor:
		return RoleAuditor
	default:
		return RoleViewer
	}
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}
