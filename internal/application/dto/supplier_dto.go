package dto

import (
	"time"

	"github.com/jhoicas/Minimarket-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SupplierRequest datos para crear o actualizar un proveedor.
type SupplierRequest struct {
	Name string `json:"name"`
}

// SupplierResponse representación pública de un proveedor.
type SupplierResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LinkSupplierRequest datos para asociar un producto con un proveedor.
type LinkSupplierRequest struct {
	ProductID   int64           `json:"product_id"`
	SupplierID  int64           `json:"supplier_id"`
	SupplyPrice decimal.Decimal `json:"supply_price"`
}

// ProductSupplierResponse representación pública de la asociación, con los
// nombres del producto y del proveedor resueltos.
type ProductSupplierResponse struct {
	ProductID      int64           `json:"product_id"`
	SupplierID     int64           `json:"supplier_id"`
	SupplyPrice    decimal.Decimal `json:"supply_price"`
	LastSupplyDate time.Time       `json:"last_supply_date"`
	ProductName    string          `json:"product_name,omitempty"`
	SupplierName   string          `json:"supplier_name,omitempty"`
}

// SupplierFromEntity convierte la entidad a su representación pública.
func SupplierFromEntity(s *entity.Supplier) SupplierResponse {
	return SupplierResponse{ID: s.ID, Name: s.Name}
}

// SuppliersFromEntities convierte una lista de entidades.
func SuppliersFromEntities(list []*entity.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, SupplierFromEntity(s))
	}
	return out
}

// LinkFromEntity convierte la asociación a su representación pública.
func LinkFromEntity(link *entity.ProductSupplier) ProductSupplierResponse {
	out := ProductSupplierResponse{
		ProductID:      link.ProductID,
		SupplierID:     link.SupplierID,
		SupplyPrice:    link.SupplyPrice,
		LastSupplyDate: link.LastSupplyDate,
	}
	if link.Product != nil {
		out.ProductName = link.Product.Name
	}
	if link.Supplier != nil {
		out.SupplierName = link.Supplier.Name
	}
	return out
}

// LinksFromEntities convierte una lista de asociaciones.
func LinksFromEntities(list []*entity.ProductSupplier) []ProductSupplierResponse {
	out := make([]ProductSupplierResponse, 0, len(list))
	for _, link := range list {
		out = append(out, LinkFromEntity(link))
	}
	return out
}
