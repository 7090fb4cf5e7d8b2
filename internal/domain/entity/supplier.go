package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa un proveedor de la tienda.
type Supplier struct {
	ID   int64
	Name string
}

// ProductSupplier es la entidad de asociación muchos-a-muchos entre Product y
// Supplier. Su identidad es la clave compuesta (ProductID, SupplierID),
// garantizada por la base de datos.
type ProductSupplier struct {
	ProductID      int64
	SupplierID     int64
	SupplyPrice    decimal.Decimal
	LastSupplyDate time.Time

	Product  *Product
	Supplier *Supplier
}
