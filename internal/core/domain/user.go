package domain

import "strings"

// Role classifies a staff user and drives every access-policy decision.
type Role string

const (
	RoleAdmin     Role = "ADMIN"     // full system and user administration
	RoleMedico    Role = "MEDICO"    // create, modify, delete and read patients
	RoleEnfermero Role = "ENFERMERO" // read-only access to patients
	RoleTecnico   Role = "TECNICO"   // read-only access to patients
)

// authorityPrefix is the marker carried inside token role claims. It exists
// only for compatibility with tokens issued by earlier deployments; nothing
// outside the token codec should ever depend on it.
const authorityPrefix = "ROLE_"

// ParseRole validates a role string. Returns false for unknown values.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleMedico, RoleEnfermero, RoleTecnico:
		return Role(s), true
	}
	return "", false
}

// Authority returns the role claim value embedded in issued tokens.
func (r Role) Authority() string {
	return authorityPrefix + string(r)
}

// RoleFromAuthority reverses Authority, accepting both prefixed and plain
// claim values.
func RoleFromAuthority(s string) (Role, bool) {
	return ParseRole(strings.TrimPrefix(s, authorityPrefix))
}

// User models a staff account stored in PostgreSQL. The email doubles as the
// login name and must be unique; the password is always a bcrypt hash.
type User struct {
	ID           int64  `json:"id"`
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Rol          Role   `json:"rol"`
}
