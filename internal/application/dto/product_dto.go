package dto

import (
	"github.com/jhoicas/Minimarket-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateProductRequest datos para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// UpdateProductRequest datos para actualizar un producto (reemplazo completo).
type UpdateProductRequest = CreateProductRequest

// ProductResponse representación pública de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// ProductFromEntity convierte la entidad a su representación pública.
func ProductFromEntity(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Unit:        p.Unit,
		Price:       p.Price,
		Description: p.Description,
	}
}

// ProductsFromEntities convierte una lista de entidades.
func ProductsFromEntities(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductFromEntity(p))
	}
	return out
}

// ToEntity materializa la petición como entidad de dominio.
func (r CreateProductRequest) ToEntity() *entity.Product {
	return &entity.Product{
		Name:        r.Name,
		Category:    r.Category,
		Unit:        r.Unit,
		Price:       r.Price,
		Description: r.Description,
	}
}
