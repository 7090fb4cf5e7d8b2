package repository

import "github.com/jhoicas/Minimarket-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier y para la
// asociación ProductSupplier (DIP). La unicidad de la clave compuesta
// (product_id, supplier_id) la garantiza la base de datos.
type SupplierRepository interface {
	GetByID(id int64) (*entity.Supplier, error)
	GetAll() ([]*entity.Supplier, error)
	Create(supplier *entity.Supplier) error
	Update(supplier *entity.Supplier) error
	Delete(id int64) error

	GetAllLinks() ([]*entity.ProductSupplier, error)
	GetLinksByProductID(productID int64) ([]*entity.ProductSupplier, error)
	GetLinksBySupplierID(supplierID int64) ([]*entity.ProductSupplier, error)
	CreateLink(link *entity.ProductSupplier) error
	DeleteLink(productID, supplierID int64) error
}
