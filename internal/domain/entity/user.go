package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "administrador"
	RoleStaff  = "laboral"
	RoleClient = "cliente"
)

// User representa un operador o cliente con acceso al sistema.
type User struct {
	ID           string
	Username     string // único
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Phone        string
	Address      string
	Role         string // administrador, laboral, cliente
	Active       bool
	CreatedAt    time.Time
}

// IsAdmin indica si el usuario tiene rol administrador.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
