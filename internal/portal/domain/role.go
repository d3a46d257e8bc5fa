package domain

// Role is the user's position in the care relationship. There are exactly
// two; anything else is treated as unknown and denied everywhere.
type Role string

const (
	RolePatient      Role = "patient"
	RolePsychologist Role = "psychologist"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RolePatient || r == RolePsychologist
}

func (r Role) String() string { return string(r) }

// ParseRole maps a string to a Role, returning "" for anything unknown.
func ParseRole(s string) Role {
	switch Role(s) {
	case RolePatient:
		return RolePatient
	case RolePsychologist:
		return RolePsychologist
	default:
		return ""
	}
}
