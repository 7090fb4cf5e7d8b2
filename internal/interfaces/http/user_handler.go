package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Minimarket-api/internal/application/dto"
	"github.com/jhoicas/Minimarket-api/internal/application/usecase"
	"github.com/jhoicas/Minimarket-api/internal/domain/entity"
	"github.com/jhoicas/Minimarket-api/internal/domain/repository"
)

// UserHandler maneja las peticiones HTTP del directorio de usuarios
// (protegido, solo admin).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios (más recientes primero)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.UsersFromEntities(h.uc.GetAll()))
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	user := h.uc.GetByID(int64(id))
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(dto.UserFromEntity(user))
}

// Search godoc
// @Summary      Buscar usuarios por criterios dispersos
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        username  query  string  false  "Filtro por username (LIKE)"
// @Success      200  {array}  dto.UserResponse
// @Router       /api/users/search [get]
func (h *UserHandler) Search(c *fiber.Ctx) error {
	filter := repository.UserFilter{
		Username: c.Query("username"),
		Role:     c.Query("role"),
		Status:   c.Query("status"),
	}
	return c.JSON(dto.UsersFromEntities(h.uc.Search(filter)))
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	if in.Role == "" {
		in.Role = entity.RoleStaff
	}
	if in.Status == "" {
		in.Status = entity.StatusActive
	}
	user := in.ToEntity()
	if !h.uc.Insert(user) {
		// El contrato booleano no distingue causa (duplicado, caída, etc.)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "OPERATION_FAILED", Message: "no se pudo crear el usuario"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UserFromEntity(user))
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "Datos actualizados"
// @Success      200   {object}  dto.UserResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user := in.ToEntity()
	user.ID = int64(id)
	if !h.uc.Update(user) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "OPERATION_FAILED", Message: "no se pudo actualizar el usuario"})
	}
	return c.JSON(dto.UserFromEntity(user))
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.OperationResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	if !h.uc.Delete(int64(id)) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "OPERATION_FAILED", Message: "no se pudo eliminar el usuario"})
	}
	return c.JSON(dto.OperationResponse{Success: true})
}

// BatchDelete godoc
// @Summary      Eliminar usuarios en lote
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchDeleteRequest  true  "IDs a eliminar"
// @Success      200   {object}  dto.OperationResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/users/batch-delete [post]
func (h *UserHandler) BatchDelete(c *fiber.Ctx) error {
	var in dto.BatchDeleteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !h.uc.BatchDelete(in.IDs) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "OPERATION_FAILED", Message: "ninguna fila eliminada"})
	}
	return c.JSON(dto.OperationResponse{Success: true})
}
