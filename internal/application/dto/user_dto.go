package dto

import (
	"time"

	"github.com/jhoicas/Minimarket-api/internal/domain/entity"
)

// CreateUserRequest datos para crear un usuario.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// UpdateUserRequest datos para actualizar un usuario (reemplazo completo,
// como en el sistema original).
type UpdateUserRequest = CreateUserRequest

// BatchDeleteRequest IDs a eliminar en lote.
type BatchDeleteRequest struct {
	IDs []int64 `json:"ids"`
}

// UserResponse representación pública de un usuario. No expone la contraseña.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token emitido tras un login exitoso.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserFromEntity convierte la entidad a su representación pública.
func UserFromEntity(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UsersFromEntities convierte una lista de entidades.
func UsersFromEntities(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserFromEntity(u))
	}
	return out
}

// ToEntity materializa la petición como entidad de dominio.
func (r CreateUserRequest) ToEntity() *entity.User {
	return &entity.User{
		Username: r.Username,
		Password: r.Password,
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		Role:     r.Role,
		Status:   r.Status,
	}
}
