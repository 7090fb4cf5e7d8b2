package repository

import "github.com/jhoicas/Minimarket-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para Inventory (DIP).
// Las lecturas resuelven Product y Warehouse en la misma consulta (JOIN).
type InventoryRepository interface {
	GetByID(id int64) (*entity.Inventory, error)
	GetAll() ([]*entity.Inventory, error)
	GetByProductID(productID int64) ([]*entity.Inventory, error)
	Create(inventory *entity.Inventory) error
	Update(inventory *entity.Inventory) error
	Delete(id int64) error
}
