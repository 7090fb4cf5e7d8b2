package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Estados válidos para User.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User representa un usuario del sistema (operador de la tienda).
// Password se almacena y compara en texto plano: debilidad heredada del
// sistema original, documentada y conservada a propósito.
type User struct {
	ID        int64
	Username  string // único a nivel de base de datos
	Password  string // texto plano (INSEGURO)
	FullName  string
	Email     string
	Phone     string
	Role      string // admin, staff
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive indica si el usuario puede iniciar sesión.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
