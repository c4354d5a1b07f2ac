package entity

import "time"

// Roles válidos para User. RoleUnset es el estado inicial: el usuario todavía
// no eligió panel y ninguna ruta de dashboard le es accesible.
const (
	RoleOwner   = "owner"
	RoleCashier = "cashier"
	RoleUnset   = ""
)

// ValidRole indica si s es un rol asignable (owner o cashier).
func ValidRole(s string) bool {
	return s == RoleOwner || s == RoleCashier
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // owner, cashier o vacío (sin asignar)
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
