package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Minimarket-api/internal/application/dto"
	"github.com/jhoicas/Minimarket-api/internal/application/usecase"
)

// InventoryHandler maneja las peticiones HTTP del libro de inventario
// (protegido).
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List devuelve todo el inventario con producto y bodega resueltos.
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.InventoriesFromEntities(h.uc.GetAll()))
}

// GetByID devuelve un registro por ID, 404 si no existe.
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	inv := h.uc.GetByID(int64(id))
	if inv == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro de inventario no encontrado"})
	}
	return c.JSON(dto.InventoryFromEntity(inv))
}

// ListByProduct devuelve el inventario de un producto (reconciliación).
func (h *InventoryHandler) ListByProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "productId numérico requerido"})
	}
	return c.JSON(dto.InventoriesFromEntities(h.uc.GetByProductID(int64(productID))))
}

// Create registra un nivel de inventario. Una referencia a producto o bodega
// inexistente falla en el FK y se reporta como operación fallida.
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == 0 || in.WarehouseID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y warehouse_id son requeridos"})
	}
	inv := in.ToEntity()
	if !h.uc.Insert(inv) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "OPERATION_FAILED", Message: "no se pudo crear el registro de inventario"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InventoryFromEntity(inv))
}

// Update actualiza un registro por ID; sin token de concurrencia, la última
// escritura gana.
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv := in.ToEntity()
	inv.ID = int64(id)
	if !h.uc.Update(inv) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "OPERATION_FAILED", Message: "no se pudo actualizar el registro de inventario"})
	}
	return c.JSON(dto.InventoryFromEntity(inv))
}

// Delete elimina un registro por ID.
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	if !h.uc.Delete(int64(id)) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "OPERATION_FAILED", Message: "no se pudo eliminar el registro de inventario"})
	}
	return c.JSON(dto.OperationResponse{Success: true})
}
