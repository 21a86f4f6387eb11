package auth

import "vishnu-auto/internal/domain"

// CredentialVerifier checks a username/password/role triple and, on a match,
// returns the session to install. Injectable so tests can substitute
// fixtures for the demo table.
type CredentialVerifier interface {
	Verify(username, password string, role domain.Role) (*domain.Session, bool)
}

type fixedEntry struct {
	password    string
	role        domain.Role
	permissions []domain.Permission
}

type fixedCredentials map[string]fixedEntry

// FixedCredentials is the built-in demo table: admin gets read/write/delete,
// the mechanic is read-only.
func FixedCredentials() CredentialVerifier {
	return fixedCredentials{
		"admin": {
			password:    "admin123",
			role:        domain.RoleAdmin,
			permissions: []domain.Permission{domain.PermRead, domain.PermWrite, domain.PermDelete},
		},
		"mechanic": {
			password:    "mech123",
			role:        domain.RoleMechanic,
			permissions: []domain.Permission{domain.PermRead},
		},
	}
}

func (c fixedCredentials) Verify(username, password string, role domain.Role) (*domain.Session, bool) {
	entry, ok := c[username]
	if !ok || entry.password != password || entry.role != role {
		return nil, false
	}
	perms := make([]domain.Permission, len(entry.permissions))
	copy(perms, entry.permissions)
	return &domain.Session{Username: username, Role: entry.role, Permissions: perms}, true
}
