package usecase_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Minimarket-api/internal/application/usecase"
	"github.com/jhoicas/Minimarket-api/internal/domain"
	"github.com/jhoicas/Minimarket-api/internal/domain/entity"
	"github.com/jhoicas/Minimarket-api/internal/domain/repository"
	"github.com/jhoicas/Minimarket-api/pkg/logger"
)

type fakeWarehouseRepo struct {
	warehouses map[int64]*entity.Warehouse
	down       bool
}

var _ repository.WarehouseRepository = (*fakeWarehouseRepo)(nil)

func (f *fakeWarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	if f.down {
		return nil, errStoreDown
	}
	w, ok := f.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (f *fakeWarehouseRepo) GetAll() ([]*entity.Warehouse, error) {
	if f.down {
		return nil, errStoreDown
	}
	list := make([]*entity.Warehouse, 0, len(f.warehouses))
	for _, w := range f.warehouses {
		cp := *w
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (f *fakeWarehouseRepo) Create(warehouse *entity.Warehouse) error {
	if f.down {
		return errStoreDown
	}
	cp := *warehouse
	f.warehouses[warehouse.ID] = &cp
	return nil
}

func (f *fakeWarehouseRepo) Update(warehouse *entity.Warehouse) error {
	if f.down {
		return errStoreDown
	}
	if _, ok := f.warehouses[warehouse.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *warehouse
	f.warehouses[warehouse.ID] = &cp
	return nil
}

func (f *fakeWarehouseRepo) Delete(id int64) error {
	if f.down {
		return errStoreDown
	}
	if _, ok := f.warehouses[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.warehouses, id)
	return nil
}

func TestBodega_GetByIDYGetAll(t *testing.T) {
	repo := &fakeWarehouseRepo{warehouses: testWarehouses()}
	uc := usecase.NewWarehouseUseCase(repo, logger.Nop())

	got := uc.GetByID(1)
	require.NotNil(t, got)
	assert.Equal(t, "Bodega Central", got.Name)

	assert.Nil(t, uc.GetByID(404))

	all := uc.GetAll()
	require.Len(t, all, len(repo.warehouses))
	assert.Equal(t, int64(1), all[0].ID)
}

func TestBodega_LecturasFallidasDevuelvenVacio(t *testing.T) {
	repo := &fakeWarehouseRepo{warehouses: testWarehouses(), down: true}
	uc := usecase.NewWarehouseUseCase(repo, logger.Nop())

	assert.Nil(t, uc.GetByID(1))
	assert.Empty(t, uc.GetAll())
}
