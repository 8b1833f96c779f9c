package user

type Role string

const (
	RoleLearner    Role = "learner"
	RoleOwner      Role = "owner"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleLearner, RoleOwner, RoleInstructor, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsSignupRole reports whether the role may be chosen at signup.
// Instructor is granted through application approval, admin is seeded.
func (r Role) IsSignupRole() bool {
	return r == RoleLearner || r == RoleOwner
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
