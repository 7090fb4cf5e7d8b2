package entity

import "time"

// Inventory representa el nivel de stock de un producto en una bodega.
// Product y Warehouse se resuelven en la consulta (JOIN) solo para lectura;
// pueden venir en nil si la fila no se leyó con resolución.
type Inventory struct {
	ID          int64
	ProductID   int64
	WarehouseID int64
	Quantity    int
	MinStock    int // umbral de reposición
	LastUpdated time.Time

	Product   *Product
	Warehouse *Warehouse
}

// BelowMinStock indica si el nivel está por debajo del umbral de reposición.
func (i *Inventory) BelowMinStock() bool {
	return i.Quantity < i.MinStock
}
