package usecase

import (
	"errors"
	"time"

	"github.com/jhoicas/Minimarket-api/internal/domain"
	"github.com/jhoicas/Minimarket-api/internal/domain/entity"
	"github.com/jhoicas/Minimarket-api/internal/domain/repository"
	"github.com/jhoicas/Minimarket-api/pkg/logger"
)

// SupplierUseCase directorio de proveedores: CRUD de Supplier y gestión de la
// asociación muchos-a-muchos ProductSupplier.
type SupplierUseCase struct {
	repo repository.SupplierRepository
	log  *logger.Logger
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, log *logger.Logger) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, log: log}
}

// GetByID obtiene un proveedor por ID; nil si no existe o la lectura falló.
func (uc *SupplierUseCase) GetByID(id int64) *entity.Supplier {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		uc.log.Error().Err(err).Int64("supplier_id", id).Msg("consultar proveedor")
		return nil
	}
	return supplier
}

// GetAll lista todos los proveedores; vacía si la lectura falló.
func (uc *SupplierUseCase) GetAll() []*entity.Supplier {
	list, err := uc.repo.GetAll()
	if err != nil {
		uc.log.Error().Err(err).Msg("listar proveedores")
		return []*entity.Supplier{}
	}
	return list
}

// Insert crea un proveedor; en éxito supplier.ID queda con el ID generado.
func (uc *SupplierUseCase) Insert(supplier *entity.Supplier) bool {
	if err := uc.repo.Create(supplier); err != nil {
		uc.log.Error().Err(err).Str("name", supplier.Name).Msg("crear proveedor")
		return false
	}
	return true
}

// Update actualiza un proveedor por ID; false si no existe.
func (uc *SupplierUseCase) Update(supplier *entity.Supplier) bool {
	if err := uc.repo.Update(supplier); err != nil {
		uc.log.Error().Err(err).Int64("supplier_id", supplier.ID).Msg("actualizar proveedor")
		return false
	}
	return true
}

// Delete elimina un proveedor; false si no existía o sigue enlazado a
// productos.
func (uc *SupplierUseCase) Delete(id int64) bool {
	if err := uc.repo.Delete(id); err != nil {
		uc.log.Error().Err(err).Int64("supplier_id", id).Msg("eliminar proveedor")
		return false
	}
	return true
}

// GetAllLinks lista todas las asociaciones producto-proveedor.
func (uc *SupplierUseCase) GetAllLinks() []*entity.ProductSupplier {
	list, err := uc.repo.GetAllLinks()
	if err != nil {
		uc.log.Error().Err(err).Msg("listar asociaciones producto-proveedor")
		return []*entity.ProductSupplier{}
	}
	return list
}

// GetSuppliersByProduct lista los proveedores enlazados a un producto.
func (uc *SupplierUseCase) GetSuppliersByProduct(productID int64) []*entity.ProductSupplier {
	list, err := uc.repo.GetLinksByProductID(productID)
	if err != nil {
		uc.log.Error().Err(err).Int64("product_id", productID).Msg("listar proveedores de producto")
		return []*entity.ProductSupplier{}
	}
	return list
}

// GetProductsBySupplier lista los productos enlazados a un proveedor.
func (uc *SupplierUseCase) GetProductsBySupplier(supplierID int64) []*entity.ProductSupplier {
	list, err := uc.repo.GetLinksBySupplierID(supplierID)
	if err != nil {
		uc.log.Error().Err(err).Int64("supplier_id", supplierID).Msg("listar productos de proveedor")
		return []*entity.ProductSupplier{}
	}
	return list
}

// LinkSupplier crea la asociación (productID, supplierID). La colisión de la
// clave compuesta o una referencia inexistente se reporta como false.
func (uc *SupplierUseCase) LinkSupplier(link *entity.ProductSupplier) bool {
	if link.LastSupplyDate.IsZero() {
		link.LastSupplyDate = time.Now()
	}
	if err := uc.repo.CreateLink(link); err != nil {
		if errors.Is(err, domain.ErrDuplicate) || errors.Is(err, domain.ErrForeignKey) {
			uc.log.Warn().Err(err).Int64("product_id", link.ProductID).
				Int64("supplier_id", link.SupplierID).Msg("enlazar proveedor")
		} else {
			uc.log.Error().Err(err).Msg("enlazar proveedor")
		}
		return false
	}
	return true
}

// UnlinkSupplier elimina la asociación; false si no existía.
func (uc *SupplierUseCase) UnlinkSupplier(productID, supplierID int64) bool {
	if err := uc.repo.DeleteLink(productID, supplierID); err != nil {
		uc.log.Error().Err(err).Int64("product_id", productID).
			Int64("supplier_id", supplierID).Msg("desenlazar proveedor")
		return false
	}
	return true
}
