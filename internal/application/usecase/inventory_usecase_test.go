package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Minimarket-api/internal/application/usecase"
	"github.com/jhoicas/Minimarket-api/internal/domain/entity"
	"github.com/jhoicas/Minimarket-api/pkg/logger"
)

func testWarehouses() map[int64]*entity.Warehouse {
	return map[int64]*entity.Warehouse{
		1: {ID: 1, Name: "Bodega Central"},
	}
}

// Escenario de referencia: producto "Milk", inventario en la bodega 1, y el
// listado resuelve el nombre del producto en la misma consulta.
func TestInventario_EscenarioLeche(t *testing.T) {
	products := newFakeProductRepo()
	productUC := usecase.NewProductUseCase(products, logger.Nop())
	inventoryUC := usecase.NewInventoryUseCase(newFakeInventoryRepo(products, testWarehouses()), logger.Nop())

	milk := &entity.Product{Name: "Milk", Price: decimal.NewFromFloat(3.5), Unit: "unidad"}
	require.True(t, productUC.Insert(milk))
	require.NotZero(t, milk.ID)

	inv := &entity.Inventory{ProductID: milk.ID, WarehouseID: 1, Quantity: 10, MinStock: 5}
	require.True(t, inventoryUC.Insert(inv))

	all := inventoryUC.GetAll()
	require.Len(t, all, 1)
	require.NotNil(t, all[0].Product, "el listado debe traer el producto resuelto")
	assert.Equal(t, "Milk", all[0].Product.Name)
	require.NotNil(t, all[0].Warehouse)
	assert.Equal(t, "Bodega Central", all[0].Warehouse.Name)
	assert.Equal(t, 10, all[0].Quantity)
	assert.False(t, all[0].LastUpdated.IsZero(), "Insert debe sellar LastUpdated")
}

// El FK está modelado: insertar contra un producto inexistente falla en el
// límite de persistencia y se reporta como false.
func TestInventario_ProductoInexistenteRechazado(t *testing.T) {
	products := newFakeProductRepo()
	uc := usecase.NewInventoryUseCase(newFakeInventoryRepo(products, testWarehouses()), logger.Nop())

	inv := &entity.Inventory{ProductID: 999, WarehouseID: 1, Quantity: 10}
	assert.False(t, uc.Insert(inv))
	assert.Empty(t, uc.GetAll(), "la fila rechazada no debe quedar registrada")
}

func TestInventario_BodegaInexistenteRechazada(t *testing.T) {
	products := newFakeProductRepo()
	productUC := usecase.NewProductUseCase(products, logger.Nop())
	uc := usecase.NewInventoryUseCase(newFakeInventoryRepo(products, testWarehouses()), logger.Nop())

	p := &entity.Product{Name: "Pan"}
	require.True(t, productUC.Insert(p))

	inv := &entity.Inventory{ProductID: p.ID, WarehouseID: 42, Quantity: 1}
	assert.False(t, uc.Insert(inv))
}

func TestInventario_GetByProductID(t *testing.T) {
	products := newFakeProductRepo()
	productUC := usecase.NewProductUseCase(products, logger.Nop())
	uc := usecase.NewInventoryUseCase(newFakeInventoryRepo(products, testWarehouses()), logger.Nop())

	leche := &entity.Product{Name: "Leche"}
	pan := &entity.Product{Name: "Pan"}
	require.True(t, productUC.Insert(leche))
	require.True(t, productUC.Insert(pan))

	require.True(t, uc.Insert(&entity.Inventory{ProductID: leche.ID, WarehouseID: 1, Quantity: 3}))
	require.True(t, uc.Insert(&entity.Inventory{ProductID: pan.ID, WarehouseID: 1, Quantity: 7}))

	result := uc.GetByProductID(leche.ID)
	require.Len(t, result, 1)
	assert.Equal(t, leche.ID, result[0].ProductID)
}

// Sin token de concurrencia: dos actualizaciones seguidas sobre la misma fila
// no chocan, la última gana.
func TestInventario_UltimaEscrituraGana(t *testing.T) {
	products := newFakeProductRepo()
	productUC := usecase.NewProductUseCase(products, logger.Nop())
	uc := usecase.NewInventoryUseCase(newFakeInventoryRepo(products, testWarehouses()), logger.Nop())

	p := &entity.Product{Name: "Arroz"}
	require.True(t, productUC.Insert(p))
	inv := &entity.Inventory{ProductID: p.ID, WarehouseID: 1, Quantity: 5}
	require.True(t, uc.Insert(inv))

	primera := *inv
	primera.Quantity = 20
	segunda := *inv
	segunda.Quantity = 8

	require.True(t, uc.Update(&primera))
	require.True(t, uc.Update(&segunda))

	got := uc.GetByID(inv.ID)
	require.NotNil(t, got)
	assert.Equal(t, 8, got.Quantity)
}

func TestInventario_DeleteYAusencia(t *testing.T) {
	products := newFakeProductRepo()
	productUC := usecase.NewProductUseCase(products, logger.Nop())
	uc := usecase.NewInventoryUseCase(newFakeInventoryRepo(products, testWarehouses()), logger.Nop())

	p := &entity.Product{Name: "Café"}
	require.True(t, productUC.Insert(p))
	inv := &entity.Inventory{ProductID: p.ID, WarehouseID: 1, Quantity: 2}
	require.True(t, uc.Insert(inv))

	assert.True(t, uc.Delete(inv.ID))
	assert.Nil(t, uc.GetByID(inv.ID))
	assert.False(t, uc.Delete(inv.ID), "borrar un ID inexistente devuelve false")
}
