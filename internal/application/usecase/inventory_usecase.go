package usecase

import (
	"errors"
	"time"

	"github.com/jhoicas/Minimarket-api/internal/domain"
	"github.com/jhoicas/Minimarket-api/internal/domain/entity"
	"github.com/jhoicas/Minimarket-api/internal/domain/repository"
	"github.com/jhoicas/Minimarket-api/pkg/logger"
)

// InventoryUseCase libro de inventario: niveles de stock por producto y
// bodega. Sin validación de cantidad y sin control de concurrencia en
// actualizaciones: la última escritura gana.
type InventoryUseCase struct {
	repo repository.InventoryRepository
	log  *logger.Logger
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository, log *logger.Logger) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, log: log}
}

// GetByID obtiene un registro por ID con producto y bodega resueltos; nil si
// no existe o la lectura falló.
func (uc *InventoryUseCase) GetByID(id int64) *entity.Inventory {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		uc.log.Error().Err(err).Int64("inventory_id", id).Msg("consultar inventario")
		return nil
	}
	return inv
}

// GetAll lista todo el inventario con producto y bodega resueltos; vacía si
// la lectura falló.
func (uc *InventoryUseCase) GetAll() []*entity.Inventory {
	list, err := uc.repo.GetAll()
	if err != nil {
		uc.log.Error().Err(err).Msg("listar inventario")
		return []*entity.Inventory{}
	}
	return list
}

// GetByProductID lista el inventario de un producto; lo usan los llamadores
// para reconciliar tras borrar productos.
func (uc *InventoryUseCase) GetByProductID(productID int64) []*entity.Inventory {
	list, err := uc.repo.GetByProductID(productID)
	if err != nil {
		uc.log.Error().Err(err).Int64("product_id", productID).Msg("listar inventario por producto")
		return []*entity.Inventory{}
	}
	return list
}

// Insert crea un registro de inventario. Una referencia a producto o bodega
// inexistente falla en el límite de persistencia (FK) y se reporta false.
func (uc *InventoryUseCase) Insert(inv *entity.Inventory) bool {
	if inv.LastUpdated.IsZero() {
		inv.LastUpdated = time.Now()
	}
	if err := uc.repo.Create(inv); err != nil {
		if errors.Is(err, domain.ErrForeignKey) {
			uc.log.Warn().Int64("product_id", inv.ProductID).Int64("warehouse_id", inv.WarehouseID).
				Msg("crear inventario: referencia inexistente")
		} else {
			uc.log.Error().Err(err).Msg("crear inventario")
		}
		return false
	}
	return true
}

// Update actualiza un registro por ID y sella LastUpdated; false si no existe.
func (uc *InventoryUseCase) Update(inv *entity.Inventory) bool {
	inv.LastUpdated = time.Now()
	if err := uc.repo.Update(inv); err != nil {
		uc.log.Error().Err(err).Int64("inventory_id", inv.ID).Msg("actualizar inventario")
		return false
	}
	return true
}

// Delete elimina un registro; false si el ID no existía.
func (uc *InventoryUseCase) Delete(id int64) bool {
	if err := uc.repo.Delete(id); err != nil {
		uc.log.Error().Err(err).Int64("inventory_id", id).Msg("eliminar inventario")
		return false
	}
	return true
}
