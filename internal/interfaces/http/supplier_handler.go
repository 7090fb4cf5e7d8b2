package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Minimarket-api/internal/application/dto"
	"github.com/jhoicas/Minimarket-api/internal/application/usecase"
	"github.com/jhoicas/Minimarket-api/internal/domain/entity"
)

// SupplierHandler maneja las peticiones HTTP del directorio de proveedores y
// de la asociación producto-proveedor (protegido).
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// List devuelve todos los proveedores.
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.SuppliersFromEntities(h.uc.GetAll()))
}

// GetByID devuelve un proveedor por ID, 404 si no existe.
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	supplier := h.uc.GetByID(int64(id))
	if supplier == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
	}
	return c.JSON(dto.SupplierFromEntity(supplier))
}

// Create crea un proveedor.
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	supplier := &entity.Supplier{Name: in.Name}
	if !h.uc.Insert(supplier) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "OPERATION_FAILED", Message: "no se pudo crear el proveedor"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SupplierFromEntity(supplier))
}

// Update actualiza un proveedor por ID.
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	var in dto.SupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	supplier := &entity.Supplier{ID: int64(id), Name: in.Name}
	if !h.uc.Update(supplier) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "OPERATION_FAILED", Message: "no se pudo actualizar el proveedor"})
	}
	return c.JSON(dto.SupplierFromEntity(supplier))
}

// Delete elimina un proveedor por ID.
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	if !h.uc.Delete(int64(id)) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "OPERATION_FAILED", Message: "no se pudo eliminar el proveedor"})
	}
	return c.JSON(dto.OperationResponse{Success: true})
}

// ListLinks devuelve todas las asociaciones producto-proveedor, con filtros
// opcionales por producto o proveedor.
func (h *SupplierHandler) ListLinks(c *fiber.Ctx) error {
	if productID := c.QueryInt("product_id", 0); productID > 0 {
		return c.JSON(dto.LinksFromEntities(h.uc.GetSuppliersByProduct(int64(productID))))
	}
	if supplierID := c.QueryInt("supplier_id", 0); supplierID > 0 {
		return c.JSON(dto.LinksFromEntities(h.uc.GetProductsBySupplier(int64(supplierID))))
	}
	return c.JSON(dto.LinksFromEntities(h.uc.GetAllLinks()))
}

// CreateLink asocia un producto con un proveedor. La colisión de la clave
// compuesta la detecta la base de datos, sin pre-consulta.
func (h *SupplierHandler) CreateLink(c *fiber.Ctx) error {
	var in dto.LinkSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == 0 || in.SupplierID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y supplier_id son requeridos"})
	}
	link := &entity.ProductSupplier{
		ProductID:   in.ProductID,
		SupplierID:  in.SupplierID,
		SupplyPrice: in.SupplyPrice,
	}
	if !h.uc.LinkSupplier(link) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "OPERATION_FAILED", Message: "no se pudo crear la asociación"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.LinkFromEntity(link))
}

// DeleteLink elimina la asociación (productId, supplierId).
func (h *SupplierHandler) DeleteLink(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "productId numérico requerido"})
	}
	supplierID, err := c.ParamsInt("supplierId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "supplierId numérico requerido"})
	}
	if !h.uc.UnlinkSupplier(int64(productID), int64(supplierID)) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "OPERATION_FAILED", Message: "no se pudo eliminar la asociación"})
	}
	return c.JSON(dto.OperationResponse{Success: true})
}
