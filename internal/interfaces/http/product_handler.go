package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Minimarket-api/internal/application/dto"
	"github.com/jhoicas/Minimarket-api/internal/application/usecase"
	"github.com/jhoicas/Minimarket-api/internal/domain/repository"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos
// (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.ProductsFromEntities(h.uc.GetAll()))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	product := h.uc.GetByID(int64(id))
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(dto.ProductFromEntity(product))
}

// Search godoc
// @Summary      Buscar productos por criterios dispersos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        name      query  string  false  "Filtro por nombre (LIKE)"
// @Param        category  query  string  false  "Filtro por categoría exacta"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/search [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	filter := repository.ProductFilter{
		Name:     c.Query("name"),
		Category: c.Query("category"),
	}
	return c.JSON(dto.ProductsFromEntities(h.uc.Search(filter)))
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	if in.Price.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price no puede ser negativo"})
	}
	product := in.ToEntity()
	if !h.uc.Insert(product) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "OPERATION_FAILED", Message: "no se pudo crear el producto"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductFromEntity(product))
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos actualizados"
// @Success      200   {object}  dto.ProductResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Price.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price no puede ser negativo"})
	}
	product := in.ToEntity()
	product.ID = int64(id)
	if !h.uc.Update(product) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "OPERATION_FAILED", Message: "no se pudo actualizar el producto"})
	}
	return c.JSON(dto.ProductFromEntity(product))
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.OperationResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	// El borrado se rechaza si el producto sigue referenciado por inventario
	// o proveedores; el llamador debe depurar esas filas primero.
	if !h.uc.Delete(int64(id)) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "OPERATION_FAILED", Message: "no se pudo eliminar el producto"})
	}
	return c.JSON(dto.OperationResponse{Success: true})
}
