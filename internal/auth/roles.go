package auth

import "strings"

// Canonical role strings. The ROLE_ prefixed form is canonical everywhere;
// NormalizeRole is the single place unprefixed or empty roles are repaired.
const (
	RoleUser   = "ROLE_USER"
	RoleAdmin  = "ROLE_ADMIN"
	rolePrefix = "ROLE_"
)

// NormalizeRole maps a raw role claim to its canonical authority string.
//
//	""           -> ROLE_USER
//	"USER"       -> ROLE_USER
//	"ADMIN"      -> ROLE_ADMIN
//	"ROLE_ADMIN" -> ROLE_ADMIN
func NormalizeRole(role string) string {
	role = strings.TrimSpace(role)
	if role == "" {
		return RoleUser
	}
	if !strings.HasPrefix(role, rolePrefix) {
		return rolePrefix + role
	}
	return role
}

// IsAdmin reports whether the raw role resolves to the administrator authority.
func IsAdmin(role string) bool {
	return NormalizeRole(role) == RoleAdmin
}
