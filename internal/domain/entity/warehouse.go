package entity

// Warehouse representa una bodega referenciada por el inventario.
// El núcleo solo la expone en lectura; el contrato CRUD completo vive en el
// repositorio.
type Warehouse struct {
	ID   int64
	Name string
}
