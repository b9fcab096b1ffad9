package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin       = "admin"
	RoleProjectUser = "project_user"
	RoleEmployee    = "employee"
)

// ValidRole indica si r es un rol conocido.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleProjectUser || r == RoleEmployee
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, project_user, employee
	IsActive     bool
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
