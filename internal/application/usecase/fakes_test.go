package usecase_test

import (
	"errors"
	"sort"

	"github.com/jhoicas/Minimarket-api/internal/domain"
	"github.com/jhoicas/Minimarket-api/internal/domain/entity"
	"github.com/jhoicas/Minimarket-api/internal/domain/repository"
)

// errStoreDown simula la caída del almacén de datos.
var errStoreDown = errors.New("almacén caído")

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Replican el contrato de los
// adaptadores PostgreSQL: (nil, nil) para fila ausente, ErrNotFound cuando una
// escritura no afecta filas, ErrDuplicate/ErrForeignKey para constraints.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
	down   bool // todas las operaciones fallan con errStoreDown
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User)}
}

func (f *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	if f.down {
		return nil, errStoreDown
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	if f.down {
		return nil, errStoreDown
	}
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAll() ([]*entity.User, error) {
	if f.down {
		return nil, errStoreDown
	}
	list := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		cp := *u
		list = append(list, &cp)
	}
	// más recientes primero, como el ORDER BY created_at DESC del adaptador
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (f *fakeUserRepo) Create(user *entity.User) error {
	if f.down {
		return errStoreDown
	}
	for _, u := range f.users {
		if u.Username == user.Username {
			return domain.ErrDuplicate
		}
	}
	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Update(user *entity.User) error {
	if f.down {
		return errStoreDown
	}
	if _, ok := f.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(id int64) error {
	if f.down {
		return errStoreDown
	}
	if _, ok := f.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) BatchDelete(ids []int64) (int64, error) {
	if f.down {
		return 0, errStoreDown
	}
	var deleted int64
	for _, id := range ids {
		if _, ok := f.users[id]; ok {
			delete(f.users, id)
			deleted++
		}
	}
	return deleted, nil
}

func (f *fakeUserRepo) Search(filter repository.UserFilter) ([]*entity.User, error) {
	if f.down {
		return nil, errStoreDown
	}
	all, _ := f.GetAll()
	var out []*entity.User
	for _, u := range all {
		if filter.Username != "" && !contains(u.Username, filter.Username) {
			continue
		}
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.Status != "" && u.Status != filter.Status {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Ping() error {
	if f.down {
		return errStoreDown
	}
	return nil
}

// contains emula el LIKE '%x%' del adaptador.
func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

type fakeProductRepo struct {
	products   map[int64]*entity.Product
	nextID     int64
	referenced map[int64]bool // product_id con filas de inventario: FK RESTRICT
	down       bool
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products:   make(map[int64]*entity.Product),
		referenced: make(map[int64]bool),
	}
}

func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	if f.down {
		return nil, errStoreDown
	}
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetAll() ([]*entity.Product, error) {
	if f.down {
		return nil, errStoreDown
	}
	list := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (f *fakeProductRepo) Create(product *entity.Product) error {
	if f.down {
		return errStoreDown
	}
	f.nextID++
	product.ID = f.nextID
	cp := *product
	f.products[product.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Update(product *entity.Product) error {
	if f.down {
		return errStoreDown
	}
	if _, ok := f.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *product
	f.products[product.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(id int64) error {
	if f.down {
		return errStoreDown
	}
	if f.referenced[id] {
		return domain.ErrForeignKey
	}
	if _, ok := f.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) Search(filter repository.ProductFilter) ([]*entity.Product, error) {
	if f.down {
		return nil, errStoreDown
	}
	all, _ := f.GetAll()
	var out []*entity.Product
	for _, p := range all {
		if filter.Name != "" && !contains(p.Name, filter.Name) {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// fakeInventoryRepo modela los FK contra los mapas de productos y bodegas que
// se le inyectan, igual que el esquema real los modela contra sus tablas.
type fakeInventoryRepo struct {
	rows       map[int64]*entity.Inventory
	nextID     int64
	products   *fakeProductRepo
	warehouses map[int64]*entity.Warehouse
	down       bool
}

var _ repository.InventoryRepository = (*fakeInventoryRepo)(nil)

func newFakeInventoryRepo(products *fakeProductRepo, warehouses map[int64]*entity.Warehouse) *fakeInventoryRepo {
	return &fakeInventoryRepo{
		rows:       make(map[int64]*entity.Inventory),
		products:   products,
		warehouses: warehouses,
	}
}

func (f *fakeInventoryRepo) resolve(inv entity.Inventory) *entity.Inventory {
	if p, ok := f.products.products[inv.ProductID]; ok {
		cp := *p
		inv.Product = &cp
	}
	if w, ok := f.warehouses[inv.WarehouseID]; ok {
		cp := *w
		inv.Warehouse = &cp
	}
	return &inv
}

func (f *fakeInventoryRepo) GetByID(id int64) (*entity.Inventory, error) {
	if f.down {
		return nil, errStoreDown
	}
	inv, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return f.resolve(*inv), nil
}

func (f *fakeInventoryRepo) GetAll() ([]*entity.Inventory, error) {
	if f.down {
		return nil, errStoreDown
	}
	list := make([]*entity.Inventory, 0, len(f.rows))
	for _, inv := range f.rows {
		list = append(list, f.resolve(*inv))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (f *fakeInventoryRepo) GetByProductID(productID int64) ([]*entity.Inventory, error) {
	all, err := f.GetAll()
	if err != nil {
		return nil, err
	}
	var out []*entity.Inventory
	for _, inv := range all {
		if inv.ProductID == productID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *fakeInventoryRepo) Create(inventory *entity.Inventory) error {
	if f.down {
		return errStoreDown
	}
	if _, ok := f.products.products[inventory.ProductID]; !ok {
		return domain.ErrForeignKey
	}
	if _, ok := f.warehouses[inventory.WarehouseID]; !ok {
		return domain.ErrForeignKey
	}
	f.nextID++
	inventory.ID = f.nextID
	cp := *inventory
	f.rows[inventory.ID] = &cp
	f.products.referenced[inventory.ProductID] = true
	return nil
}

func (f *fakeInventoryRepo) Update(inventory *entity.Inventory) error {
	if f.down {
		return errStoreDown
	}
	if _, ok := f.rows[inventory.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *inventory
	f.rows[inventory.ID] = &cp
	return nil
}

func (f *fakeInventoryRepo) Delete(id int64) error {
	if f.down {
		return errStoreDown
	}
	if _, ok := f.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

type linkKey struct{ productID, supplierID int64 }

type fakeSupplierRepo struct {
	suppliers map[int64]*entity.Supplier
	links     map[linkKey]*entity.ProductSupplier
	nextID    int64
	down      bool
}

var _ repository.SupplierRepository = (*fakeSupplierRepo)(nil)

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{
		suppliers: make(map[int64]*entity.Supplier),
		links:     make(map[linkKey]*entity.ProductSupplier),
	}
}

func (f *fakeSupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	if f.down {
		return nil, errStoreDown
	}
	s, ok := f.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSupplierRepo) GetAll() ([]*entity.Supplier, error) {
	if f.down {
		return nil, errStoreDown
	}
	list := make([]*entity.Supplier, 0, len(f.suppliers))
	for _, s := range f.suppliers {
		cp := *s
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (f *fakeSupplierRepo) Create(supplier *entity.Supplier) error {
	if f.down {
		return errStoreDown
	}
	f.nextID++
	supplier.ID = f.nextID
	cp := *supplier
	f.suppliers[supplier.ID] = &cp
	return nil
}

func (f *fakeSupplierRepo) Update(supplier *entity.Supplier) error {
	if f.down {
		return errStoreDown
	}
	if _, ok := f.suppliers[supplier.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *supplier
	f.suppliers[supplier.ID] = &cp
	return nil
}

func (f *fakeSupplierRepo) Delete(id int64) error {
	if f.down {
		return errStoreDown
	}
	for key := range f.links {
		if key.supplierID == id {
			return domain.ErrForeignKey
		}
	}
	if _, ok := f.suppliers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.suppliers, id)
	return nil
}

func (f *fakeSupplierRepo) GetAllLinks() ([]*entity.ProductSupplier, error) {
	if f.down {
		return nil, errStoreDown
	}
	list := make([]*entity.ProductSupplier, 0, len(f.links))
	for _, link := range f.links {
		cp := *link
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].ProductID != list[j].ProductID {
			return list[i].ProductID < list[j].ProductID
		}
		return list[i].SupplierID < list[j].SupplierID
	})
	return list, nil
}

func (f *fakeSupplierRepo) GetLinksByProductID(productID int64) ([]*entity.ProductSupplier, error) {
	all, err := f.GetAllLinks()
	if err != nil {
		return nil, err
	}
	var out []*entity.ProductSupplier
	for _, link := range all {
		if link.ProductID == productID {
			out = append(out, link)
		}
	}
	return out, nil
}

func (f *fakeSupplierRepo) GetLinksBySupplierID(supplierID int64) ([]*entity.ProductSupplier, error) {
	all, err := f.GetAllLinks()
	if err != nil {
		return nil, err
	}
	var out []*entity.ProductSupplier
	for _, link := range all {
		if link.SupplierID == supplierID {
			out = append(out, link)
		}
	}
	return out, nil
}

func (f *fakeSupplierRepo) CreateLink(link *entity.ProductSupplier) error {
	if f.down {
		return errStoreDown
	}
	key := linkKey{link.ProductID, link.SupplierID}
	if _, ok := f.links[key]; ok {
		return domain.ErrDuplicate
	}
	if _, ok := f.suppliers[link.SupplierID]; !ok {
		return domain.ErrForeignKey
	}
	cp := *link
	f.links[key] = &cp
	return nil
}

func (f *fakeSupplierRepo) DeleteLink(productID, supplierID int64) error {
	if f.down {
		return errStoreDown
	}
	key := linkKey{productID, supplierID}
	if _, ok := f.links[key]; !ok {
		return domain.ErrNotFound
	}
	delete(f.links, key)
	return nil
}
