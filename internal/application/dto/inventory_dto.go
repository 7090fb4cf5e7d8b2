package dto

import (
	"time"

	"github.com/jhoicas/Minimarket-api/internal/domain/entity"
)

// CreateInventoryRequest datos para crear un registro de inventario.
type CreateInventoryRequest struct {
	ProductID   int64 `json:"product_id"`
	WarehouseID int64 `json:"warehouse_id"`
	Quantity    int   `json:"quantity"`
	MinStock    int   `json:"min_stock"`
}

// UpdateInventoryRequest datos para actualizar un registro (reemplazo completo).
type UpdateInventoryRequest = CreateInventoryRequest

// InventoryResponse representación pública de un nivel de inventario con el
// producto y la bodega resueltos cuando la consulta los trajo.
type InventoryResponse struct {
	ID          int64              `json:"id"`
	ProductID   int64              `json:"product_id"`
	WarehouseID int64              `json:"warehouse_id"`
	Quantity    int                `json:"quantity"`
	MinStock    int                `json:"min_stock"`
	LastUpdated time.Time          `json:"last_updated"`
	Product     *ProductResponse   `json:"product,omitempty"`
	Warehouse   *WarehouseResponse `json:"warehouse,omitempty"`
}

// InventoryFromEntity convierte la entidad a su representación pública.
func InventoryFromEntity(inv *entity.Inventory) InventoryResponse {
	out := InventoryResponse{
		ID:          inv.ID,
		ProductID:   inv.ProductID,
		WarehouseID: inv.WarehouseID,
		Quantity:    inv.Quantity,
		MinStock:    inv.MinStock,
		LastUpdated: inv.LastUpdated,
	}
	if inv.Product != nil {
		p := ProductFromEntity(inv.Product)
		out.Product = &p
	}
	if inv.Warehouse != nil {
		w := WarehouseFromEntity(inv.Warehouse)
		out.Warehouse = &w
	}
	return out
}

// InventoriesFromEntities convierte una lista de entidades.
func InventoriesFromEntities(list []*entity.Inventory) []InventoryResponse {
	out := make([]InventoryResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, InventoryFromEntity(inv))
	}
	return out
}

// ToEntity materializa la petición como entidad de dominio.
func (r CreateInventoryRequest) ToEntity() *entity.Inventory {
	return &entity.Inventory{
		ProductID:   r.ProductID,
		WarehouseID: r.WarehouseID,
		Quantity:    r.Quantity,
		MinStock:    r.MinStock,
	}
}
