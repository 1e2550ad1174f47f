package identity

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role mirrors the roles assigned by the external identity provider.
// Users themselves are not managed here; only the claims we trust.
type Role string

const (
	RoleGuest Role = "guest"
	RoleHost  Role = "host"
	RoleAdmin Role = "admin"
)

func NewRole(value string) (Role, error) {
	role := Role(value)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func (r Role) String() string {
	return string(r)
}

// Level orders roles for at-least checks: guest < host < admin.
func (r Role) Level() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleHost:
		return 2
	case RoleGuest:
		return 1
	default:
		return 0
	}
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleHost, RoleAdmin:
		return true
	default:
		return false
	}
}
