package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Minimarket-api/internal/domain"
	"github.com/jhoicas/Minimarket-api/internal/domain/entity"
	"github.com/jhoicas/Minimarket-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// inventoryJoinQuery resuelve Product y Warehouse en la misma consulta.
// LEFT JOIN: una fila sin referencia resoluble se devuelve igualmente con los
// objetos anidados en nil.
const inventoryJoinQuery = `
	SELECT i.inventory_id, i.product_id, i.warehouse_id, i.quantity, i.min_stock, i.last_updated,
		p.product_id, p.product_name, p.category, p.unit, p.price, p.description,
		w.warehouse_id, w.warehouse_name
	FROM inventory i
	LEFT JOIN product p ON p.product_id = i.product_id
	LEFT JOIN warehouse w ON w.warehouse_id = i.warehouse_id`

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	session *Session
}

// NewInventoryRepository construye el adaptador de persistencia para inventario.
func NewInventoryRepository(session *Session) *InventoryRepo {
	return &InventoryRepo{session: session}
}

// GetByID obtiene un registro de inventario por ID con producto y bodega
// resueltos. Devuelve (nil, nil) si no existe.
func (r *InventoryRepo) GetByID(id int64) (*entity.Inventory, error) {
	var inv *entity.Inventory
	err := r.session.Read(context.Background(), func(q Querier) error {
		row := q.QueryRow(context.Background(), inventoryJoinQuery+` WHERE i.inventory_id = $1`, id)
		found, err := scanInventory(row)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("get inventory: %w", err)
		}
		inv = found
		return nil
	})
	return inv, err
}

// GetAll lista todo el inventario con producto y bodega resueltos.
func (r *InventoryRepo) GetAll() ([]*entity.Inventory, error) {
	return r.list(inventoryJoinQuery + ` ORDER BY i.inventory_id`)
}

// GetByProductID lista el inventario de un producto en todas las bodegas.
func (r *InventoryRepo) GetByProductID(productID int64) ([]*entity.Inventory, error) {
	return r.list(inventoryJoinQuery+` WHERE i.product_id = $1 ORDER BY i.inventory_id`, productID)
}

func (r *InventoryRepo) list(query string, args ...any) ([]*entity.Inventory, error) {
	var list []*entity.Inventory
	err := r.session.Read(context.Background(), func(q Querier) error {
		rows, err := q.Query(context.Background(), query, args...)
		if err != nil {
			return fmt.Errorf("list inventory: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			inv, err := scanInventory(rows)
			if err != nil {
				return fmt.Errorf("scan inventory: %w", err)
			}
			list = append(list, inv)
		}
		return rows.Err()
	})
	return list, err
}

// Create persiste un registro de inventario y asigna el ID generado.
// Los FK a product y warehouse los valida la base de datos: una referencia
// inexistente devuelve ErrForeignKey.
func (r *InventoryRepo) Create(inventory *entity.Inventory) error {
	return r.session.Write(context.Background(), func(q Querier) error {
		query := `
			INSERT INTO inventory (product_id, warehouse_id, quantity, min_stock, last_updated)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING inventory_id`
		err := q.QueryRow(context.Background(), query,
			inventory.ProductID, inventory.WarehouseID, inventory.Quantity,
			inventory.MinStock, inventory.LastUpdated,
		).Scan(&inventory.ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrForeignKey
			}
			return fmt.Errorf("insert inventory: %w", err)
		}
		return nil
	})
}

// Update actualiza un registro por ID. Sin token de concurrencia: la última
// escritura gana.
func (r *InventoryRepo) Update(inventory *entity.Inventory) error {
	return r.session.Write(context.Background(), func(q Querier) error {
		query := `
			UPDATE inventory SET product_id = $2, warehouse_id = $3, quantity = $4,
				min_stock = $5, last_updated = $6
			WHERE inventory_id = $1`
		cmd, err := q.Exec(context.Background(), query,
			inventory.ID, inventory.ProductID, inventory.WarehouseID,
			inventory.Quantity, inventory.MinStock, inventory.LastUpdated,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrForeignKey
			}
			return fmt.Errorf("update inventory: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// Delete elimina un registro de inventario por ID.
func (r *InventoryRepo) Delete(id int64) error {
	return r.session.Write(context.Background(), func(q Querier) error {
		cmd, err := q.Exec(context.Background(), `DELETE FROM inventory WHERE inventory_id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete inventory: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// scanInventory lee una fila del join; las columnas de product y warehouse
// llegan como NULL cuando el LEFT JOIN no resolvió la referencia.
func scanInventory(row pgx.Row) (*entity.Inventory, error) {
	var inv entity.Inventory
	var (
		productID                       *int64
		pName, pCategory, pUnit, pDescr *string
		pPrice                          *decimal.Decimal
		warehouseID                     *int64
		wName                           *string
	)
	err := row.Scan(
		&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.MinStock, &inv.LastUpdated,
		&productID, &pName, &pCategory, &pUnit, &pPrice, &pDescr,
		&warehouseID, &wName,
	)
	if err != nil {
		return nil, err
	}
	if productID != nil {
		inv.Product = &entity.Product{
			ID:          *productID,
			Name:        deref(pName),
			Category:    deref(pCategory),
			Unit:        deref(pUnit),
			Description: deref(pDescr),
		}
		if pPrice != nil {
			inv.Product.Price = *pPrice
		}
	}
	if warehouseID != nil {
		inv.Warehouse = &entity.Warehouse{ID: *warehouseID, Name: deref(wName)}
	}
	return &inv, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
