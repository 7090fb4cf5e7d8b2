package usecase

import (
	"time"

	"github.com/jhoicas/Minimarket-api/internal/domain/entity"
	"github.com/jhoicas/Minimarket-api/internal/domain/repository"
	"github.com/jhoicas/Minimarket-api/pkg/logger"
)

// UserUseCase directorio de usuarios: CRUD, búsqueda y verificación de login.
// Contrato en el borde: las escrituras devuelven booleano y se tragan el error
// de persistencia (queda en el log); las lecturas devuelven nil/lista vacía.
type UserUseCase struct {
	repo repository.UserRepository
	log  *logger.Logger
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, log *logger.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, log: log}
}

// GetByID obtiene un usuario por ID; nil si no existe o si la lectura falló.
func (uc *UserUseCase) GetByID(id int64) *entity.User {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		uc.log.Error().Err(err).Int64("user_id", id).Msg("consultar usuario por id")
		return nil
	}
	return user
}

// GetByUsername obtiene un usuario por username; nil si no existe.
func (uc *UserUseCase) GetByUsername(username string) *entity.User {
	user, err := uc.repo.GetByUsername(username)
	if err != nil {
		uc.log.Error().Err(err).Str("username", username).Msg("consultar usuario por username")
		return nil
	}
	return user
}

// GetAll lista todos los usuarios, más recientes primero; vacía si la lectura
// falló.
func (uc *UserUseCase) GetAll() []*entity.User {
	users, err := uc.repo.GetAll()
	if err != nil {
		uc.log.Error().Err(err).Msg("listar usuarios")
		return []*entity.User{}
	}
	return users
}

// Insert crea un usuario. Username duplicado o cualquier error de persistencia
// se reporta como false; en éxito user.ID queda con el ID generado.
func (uc *UserUseCase) Insert(user *entity.User) bool {
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	if err := uc.repo.Create(user); err != nil {
		uc.log.Error().Err(err).Str("username", user.Username).Msg("crear usuario")
		return false
	}
	return true
}

// Update actualiza un usuario por ID; false si no existe o la escritura falló.
func (uc *UserUseCase) Update(user *entity.User) bool {
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		uc.log.Error().Err(err).Int64("user_id", user.ID).Msg("actualizar usuario")
		return false
	}
	return true
}

// Delete elimina un usuario; false si el ID no existía.
func (uc *UserUseCase) Delete(id int64) bool {
	if err := uc.repo.Delete(id); err != nil {
		uc.log.Error().Err(err).Int64("user_id", id).Msg("eliminar usuario")
		return false
	}
	return true
}

// BatchDelete elimina un lote de usuarios; true si se eliminó al menos una
// fila.
func (uc *UserUseCase) BatchDelete(ids []int64) bool {
	if len(ids) == 0 {
		return false
	}
	deleted, err := uc.repo.BatchDelete(ids)
	if err != nil {
		uc.log.Error().Err(err).Ints64("user_ids", ids).Msg("eliminar usuarios en lote")
		return false
	}
	return deleted > 0
}

// Search busca usuarios por criterios dispersos; vacía si la lectura falló.
func (uc *UserUseCase) Search(filter repository.UserFilter) []*entity.User {
	users, err := uc.repo.Search(filter)
	if err != nil {
		uc.log.Error().Err(err).Str("username", filter.Username).Msg("buscar usuarios")
		return []*entity.User{}
	}
	return users
}

// Login verifica credenciales: el usuario debe existir, la contraseña debe
// coincidir por igualdad exacta y el estado debe ser active. La comparación es
// en texto plano, igual que el sistema original (debilidad documentada, sin
// hashing ni límite de intentos).
func (uc *UserUseCase) Login(username, password string) bool {
	user := uc.GetByUsername(username)
	if user == nil {
		uc.log.Warn().Str("username", username).Msg("login: usuario no encontrado")
		return false
	}
	if user.Password != password {
		uc.log.Warn().Str("username", username).Msg("login: contraseña incorrecta")
		return false
	}
	if !user.IsActive() {
		uc.log.Warn().Str("username", username).Str("status", user.Status).Msg("login: usuario inactivo")
		return false
	}
	return true
}

// TestConnection sondeo de diagnóstico: ejecuta una lectura contra el almacén
// y reporta si respondió. Se usa en el arranque antes de exponer la API.
func (uc *UserUseCase) TestConnection() bool {
	if err := uc.repo.Ping(); err != nil {
		uc.log.Error().Err(err).Msg("sondeo de conexión al almacén")
		return false
	}
	return true
}
