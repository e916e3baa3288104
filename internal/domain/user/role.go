package user

import "strings"

type Role string

const (
	RoleAdministrador Role = "ADMINISTRADOR"
	RoleEncarregado   Role = "ENCARREGADO"
)

var AllRoles = []Role{RoleAdministrador, RoleEncarregado}

func (r Role) Valid() bool {
	return r == RoleAdministrador || r == RoleEncarregado
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID    uint
	Login string
	Role  Role
}

func (a Actor) Is(r Role) bool {
	return a.Role == r
}

// NormalizeLogin is applied on every write and lookup of a login
// identifier.
func NormalizeLogin(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
