package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Minimarket-api/internal/domain"
	"github.com/jhoicas/Minimarket-api/internal/domain/entity"
	"github.com/jhoicas/Minimarket-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	session *Session
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(session *Session) *WarehouseRepo {
	return &WarehouseRepo{session: session}
}

// GetByID obtiene una bodega por ID. Devuelve (nil, nil) si no existe.
func (r *WarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	var w *entity.Warehouse
	err := r.session.Read(context.Background(), func(q Querier) error {
		query := `SELECT warehouse_id, warehouse_name FROM warehouse WHERE warehouse_id = $1`
		var found entity.Warehouse
		err := q.QueryRow(context.Background(), query, id).Scan(&found.ID, &found.Name)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("get warehouse: %w", err)
		}
		w = &found
		return nil
	})
	return w, err
}

// GetAll lista todas las bodegas.
func (r *WarehouseRepo) GetAll() ([]*entity.Warehouse, error) {
	var list []*entity.Warehouse
	err := r.session.Read(context.Background(), func(q Querier) error {
		rows, err := q.Query(context.Background(), `SELECT warehouse_id, warehouse_name FROM warehouse`)
		if err != nil {
			return fmt.Errorf("list warehouses: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var w entity.Warehouse
			if err := rows.Scan(&w.ID, &w.Name); err != nil {
				return fmt.Errorf("scan warehouse: %w", err)
			}
			list = append(list, &w)
		}
		return rows.Err()
	})
	return list, err
}

// Create persiste una nueva bodega y asigna el ID generado.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	return r.session.Write(context.Background(), func(q Querier) error {
		query := `INSERT INTO warehouse (warehouse_name) VALUES ($1) RETURNING warehouse_id`
		if err := q.QueryRow(context.Background(), query, warehouse.Name).Scan(&warehouse.ID); err != nil {
			return fmt.Errorf("insert warehouse: %w", err)
		}
		return nil
	})
}

// Update actualiza una bodega por ID.
func (r *WarehouseRepo) Update(warehouse *entity.Warehouse) error {
	return r.session.Write(context.Background(), func(q Querier) error {
		query := `UPDATE warehouse SET warehouse_name = $2 WHERE warehouse_id = $1`
		cmd, err := q.Exec(context.Background(), query, warehouse.ID, warehouse.Name)
		if err != nil {
			return fmt.Errorf("update warehouse: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// Delete elimina una bodega por ID; el FK de inventario rechaza el borrado si
// la bodega sigue referenciada.
func (r *WarehouseRepo) Delete(id int64) error {
	return r.session.Write(context.Background(), func(q Querier) error {
		cmd, err := q.Exec(context.Background(), `DELETE FROM warehouse WHERE warehouse_id = $1`, id)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrForeignKey
			}
			return fmt.Errorf("delete warehouse: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
