package repository

import "github.com/jhoicas/Minimarket-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
// El contrato es CRUD completo aunque la capa de servicio solo expone lectura.
type WarehouseRepository interface {
	GetByID(id int64) (*entity.Warehouse, error)
	GetAll() ([]*entity.Warehouse, error)
	Create(warehouse *entity.Warehouse) error
	Update(warehouse *entity.Warehouse) error
	Delete(id int64) error
}
