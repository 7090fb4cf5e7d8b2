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

func newSupplierUC() (*usecase.SupplierUseCase, *fakeSupplierRepo) {
	repo := newFakeSupplierRepo()
	return usecase.NewSupplierUseCase(repo, logger.Nop()), repo
}

func TestProveedor_InsertGetRoundTrip(t *testing.T) {
	uc, _ := newSupplierUC()

	s := &entity.Supplier{Name: "Distribuidora Andina"}
	require.True(t, uc.Insert(s))
	require.NotZero(t, s.ID)

	got := uc.GetByID(s.ID)
	require.NotNil(t, got)
	assert.Equal(t, "Distribuidora Andina", got.Name)
}

func TestProveedor_DeleteInexistenteDevuelveFalse(t *testing.T) {
	uc, _ := newSupplierUC()
	assert.False(t, uc.Delete(99))
}

func TestEnlace_LinkYConsultaPorAmbosLados(t *testing.T) {
	uc, _ := newSupplierUC()

	s1 := &entity.Supplier{Name: "Lácteos del Sur"}
	s2 := &entity.Supplier{Name: "Granos SAC"}
	require.True(t, uc.Insert(s1))
	require.True(t, uc.Insert(s2))

	require.True(t, uc.LinkSupplier(&entity.ProductSupplier{
		ProductID:   10,
		SupplierID:  s1.ID,
		SupplyPrice: decimal.NewFromFloat(2.1),
	}))
	require.True(t, uc.LinkSupplier(&entity.ProductSupplier{
		ProductID:  10,
		SupplierID: s2.ID,
	}))
	require.True(t, uc.LinkSupplier(&entity.ProductSupplier{
		ProductID:  11,
		SupplierID: s1.ID,
	}))

	assert.Len(t, uc.GetAllLinks(), 3)

	porProducto := uc.GetSuppliersByProduct(10)
	require.Len(t, porProducto, 2)

	porProveedor := uc.GetProductsBySupplier(s1.ID)
	require.Len(t, porProveedor, 2)
	assert.Equal(t, int64(10), porProveedor[0].ProductID)
	assert.Equal(t, int64(11), porProveedor[1].ProductID)
}

// La clave compuesta (product_id, supplier_id) admite un solo enlace; el
// segundo intento se reporta como false sin alterar el existente.
func TestEnlace_DuplicadoDevuelveFalse(t *testing.T) {
	uc, _ := newSupplierUC()

	s := &entity.Supplier{Name: "Bebidas Norte"}
	require.True(t, uc.Insert(s))

	original := &entity.ProductSupplier{
		ProductID:   7,
		SupplierID:  s.ID,
		SupplyPrice: decimal.NewFromFloat(1.5),
	}
	require.True(t, uc.LinkSupplier(original))

	repetido := &entity.ProductSupplier{
		ProductID:   7,
		SupplierID:  s.ID,
		SupplyPrice: decimal.NewFromFloat(9.9),
	}
	assert.False(t, uc.LinkSupplier(repetido))

	links := uc.GetSuppliersByProduct(7)
	require.Len(t, links, 1)
	assert.True(t, links[0].SupplyPrice.Equal(decimal.NewFromFloat(1.5)),
		"el enlace original no se sobrescribe")
}

func TestEnlace_ProveedorInexistenteDevuelveFalse(t *testing.T) {
	uc, _ := newSupplierUC()
	assert.False(t, uc.LinkSupplier(&entity.ProductSupplier{ProductID: 1, SupplierID: 404}))
}

func TestEnlace_LinkEstampaFechaSiFalta(t *testing.T) {
	uc, _ := newSupplierUC()
	s := &entity.Supplier{Name: "Abarrotes Lima"}
	require.True(t, uc.Insert(s))

	link := &entity.ProductSupplier{ProductID: 3, SupplierID: s.ID}
	require.True(t, uc.LinkSupplier(link))
	assert.False(t, link.LastSupplyDate.IsZero())
}

func TestEnlace_UnlinkYAusente(t *testing.T) {
	uc, _ := newSupplierUC()
	s := &entity.Supplier{Name: "Ferretería Central"}
	require.True(t, uc.Insert(s))
	require.True(t, uc.LinkSupplier(&entity.ProductSupplier{ProductID: 5, SupplierID: s.ID}))

	assert.True(t, uc.UnlinkSupplier(5, s.ID))
	assert.Empty(t, uc.GetSuppliersByProduct(5))
	assert.False(t, uc.UnlinkSupplier(5, s.ID), "desenlazar dos veces reporta false")
}

func TestProveedor_DeleteBloqueadoPorEnlaces(t *testing.T) {
	uc, _ := newSupplierUC()
	s := &entity.Supplier{Name: "Panificadora Sol"}
	require.True(t, uc.Insert(s))
	require.True(t, uc.LinkSupplier(&entity.ProductSupplier{ProductID: 2, SupplierID: s.ID}))

	assert.False(t, uc.Delete(s.ID), "no se elimina un proveedor con enlaces vigentes")

	require.True(t, uc.UnlinkSupplier(2, s.ID))
	assert.True(t, uc.Delete(s.ID))
}

func TestProveedor_LecturasFallidasDevuelvenVacio(t *testing.T) {
	uc, repo := newSupplierUC()
	require.True(t, uc.Insert(&entity.Supplier{Name: "Temporal"}))

	repo.down = true
	assert.Empty(t, uc.GetAll())
	assert.Empty(t, uc.GetAllLinks())
	assert.Nil(t, uc.GetByID(1))
	assert.False(t, uc.LinkSupplier(&entity.ProductSupplier{ProductID: 1, SupplierID: 1}))
}
