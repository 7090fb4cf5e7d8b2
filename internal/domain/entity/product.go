package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo de la tienda.
type Product struct {
	ID          int64
	Name        string
	Category    string
	Unit        string // unidad de venta: "unidad", "caja", "kg", ...
	Price       decimal.Decimal // precio de venta, no negativo
	Description string
}
