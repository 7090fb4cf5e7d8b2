package repository

import "github.com/jhoicas/Minimarket-api/internal/domain/entity"

// UserFilter criterios de búsqueda dispersos: campo vacío = sin filtro.
type UserFilter struct {
	Username string
	Role     string
	Status   string
}

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// GetAll devuelve todos los usuarios, más recientes primero.
	GetAll() ([]*entity.User, error)
	Create(user *entity.User) error
	Update(user *entity.User) error
	Delete(id int64) error
	// BatchDelete devuelve cuántas filas se eliminaron.
	BatchDelete(ids []int64) (int64, error)
	Search(filter UserFilter) ([]*entity.User, error)
	// Ping lectura de diagnóstico contra la tabla de usuarios.
	Ping() error
}
