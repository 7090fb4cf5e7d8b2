package dto

import "github.com/jhoicas/Minimarket-api/internal/domain/entity"

// WarehouseResponse representación pública de una bodega (solo lectura en la
// API).
type WarehouseResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// WarehouseFromEntity convierte la entidad a su representación pública.
func WarehouseFromEntity(w *entity.Warehouse) WarehouseResponse {
	return WarehouseResponse{ID: w.ID, Name: w.Name}
}

// WarehousesFromEntities convierte una lista de entidades.
func WarehousesFromEntities(list []*entity.Warehouse) []WarehouseResponse {
	out := make([]WarehouseResponse, 0, len(list))
	for _, w := range list {
		out = append(out, WarehouseFromEntity(w))
	}
	return out
}
