package authorization

// Role is the three-tier access level attached to a user profile.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
	RoleViewer Role = "VIEWER"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// CanEdit reports whether the role may perform mutations. Viewers are
// read-only; everything destructive requires ADMIN or EDITOR.
func (r Role) CanEdit() bool {
	return r == RoleAdmin || r == RoleEditor
}

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEditor || r == RoleViewer
}

// ParseRole maps a stored string onto a Role, defaulting to VIEWER for
// anything unrecognized so a corrupt row can never grant privileges.
func ParseRole(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}
	return RoleViewer
}
