package usecase

import (
	"errors"

	"github.com/jhoicas/Minimarket-api/internal/domain"
	"github.com/jhoicas/Minimarket-api/internal/domain/entity"
	"github.com/jhoicas/Minimarket-api/internal/domain/repository"
	"github.com/jhoicas/Minimarket-api/pkg/logger"
)

// ProductUseCase catálogo de productos: CRUD y búsqueda con el mismo contrato
// booleano del directorio de usuarios.
type ProductUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, log: log}
}

// GetByID obtiene un producto por ID; nil si no existe o la lectura falló.
func (uc *ProductUseCase) GetByID(id int64) *entity.Product {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		uc.log.Error().Err(err).Int64("product_id", id).Msg("consultar producto")
		return nil
	}
	return product
}

// GetAll lista todos los productos; vacía si la lectura falló.
func (uc *ProductUseCase) GetAll() []*entity.Product {
	products, err := uc.repo.GetAll()
	if err != nil {
		uc.log.Error().Err(err).Msg("listar productos")
		return []*entity.Product{}
	}
	return products
}

// Insert crea un producto; en éxito product.ID queda con el ID generado.
func (uc *ProductUseCase) Insert(product *entity.Product) bool {
	if err := uc.repo.Create(product); err != nil {
		uc.log.Error().Err(err).Str("name", product.Name).Msg("crear producto")
		return false
	}
	return true
}

// Update actualiza un producto por ID; false si no existe.
func (uc *ProductUseCase) Update(product *entity.Product) bool {
	if err := uc.repo.Update(product); err != nil {
		uc.log.Error().Err(err).Int64("product_id", product.ID).Msg("actualizar producto")
		return false
	}
	return true
}

// Delete elimina un producto. Si el inventario o la tabla de proveedores aún
// lo referencian, el borrado se rechaza (FK) y se reporta false: el llamador
// debe depurar esas filas primero. No hay cascada.
func (uc *ProductUseCase) Delete(id int64) bool {
	if err := uc.repo.Delete(id); err != nil {
		if errors.Is(err, domain.ErrForeignKey) {
			uc.log.Warn().Int64("product_id", id).Msg("eliminar producto: aún referenciado")
		} else {
			uc.log.Error().Err(err).Int64("product_id", id).Msg("eliminar producto")
		}
		return false
	}
	return true
}

// Search busca productos por criterios dispersos; vacía si la lectura falló.
func (uc *ProductUseCase) Search(filter repository.ProductFilter) []*entity.Product {
	products, err := uc.repo.Search(filter)
	if err != nil {
		uc.log.Error().Err(err).Str("name", filter.Name).Msg("buscar productos")
		return []*entity.Product{}
	}
	return products
}
