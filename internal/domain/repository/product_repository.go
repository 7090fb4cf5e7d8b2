package repository

import "github.com/jhoicas/Minimarket-api/internal/domain/entity"

// ProductFilter criterios de búsqueda dispersos: campo vacío = sin filtro.
type ProductFilter struct {
	Name     string
	Category string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	GetByID(id int64) (*entity.Product, error)
	GetAll() ([]*entity.Product, error)
	Create(product *entity.Product) error
	Update(product *entity.Product) error
	Delete(id int64) error
	Search(filter ProductFilter) ([]*entity.Product, error)
}
