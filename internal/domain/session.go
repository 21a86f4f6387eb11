package domain

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleMechanic Role = "mechanic"
)

type Permission string

const (
	PermRead   Permission = "read"
	PermWrite  Permission = "write"
	PermDelete Permission = "delete"
)

// Session is the singleton logged-in state. There is no expiry and no
// refresh; it lives until logout.
type Session struct {
	Username    string       `json:"username"`
	Role        Role         `json:"role"`
	Permissions []Permission `json:"permissions"`
}

// Has reports whether the session grants the given permission.
func (s *Session) Has(p Permission) bool {
	if s == nil {
		return false
	}
	for _, perm := range s.Permissions {
		if perm == p {
			return true
		}
	}
	return false
}
