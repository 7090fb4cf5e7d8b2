package usecase

import (
	"github.com/jhoicas/Minimarket-api/internal/domain/entity"
	"github.com/jhoicas/Minimarket-api/internal/domain/repository"
	"github.com/jhoicas/Minimarket-api/pkg/logger"
)

// WarehouseUseCase bodegas en solo lectura: el inventario las referencia pero
// el núcleo no expone su CRUD (el contrato completo vive en el repositorio).
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
	log  *logger.Logger
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, log *logger.Logger) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, log: log}
}

// GetByID obtiene una bodega por ID; nil si no existe o la lectura falló.
func (uc *WarehouseUseCase) GetByID(id int64) *entity.Warehouse {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		uc.log.Error().Err(err).Int64("warehouse_id", id).Msg("consultar bodega")
		return nil
	}
	return warehouse
}

// GetAll lista todas las bodegas; vacía si la lectura falló.
func (uc *WarehouseUseCase) GetAll() []*entity.Warehouse {
	list, err := uc.repo.GetAll()
	if err != nil {
		uc.log.Error().Err(err).Msg("listar bodegas")
		return []*entity.Warehouse{}
	}
	return list
}
