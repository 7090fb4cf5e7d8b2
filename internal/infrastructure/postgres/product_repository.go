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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `product_id, product_name, category, unit, price, description`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	session *Session
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(session *Session) *ProductRepo {
	return &ProductRepo{session: session}
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	var p *entity.Product
	err := r.session.Read(context.Background(), func(q Querier) error {
		query := `SELECT ` + productColumns + ` FROM product WHERE product_id = $1`
		var found entity.Product
		err := q.QueryRow(context.Background(), query, id).Scan(
			&found.ID, &found.Name, &found.Category, &found.Unit, &found.Price, &found.Description,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("get product: %w", err)
		}
		p = &found
		return nil
	})
	return p, err
}

// GetAll lista todos los productos (orden por defecto del almacén).
func (r *ProductRepo) GetAll() ([]*entity.Product, error) {
	var list []*entity.Product
	err := r.session.Read(context.Background(), func(q Querier) error {
		rows, err := q.Query(context.Background(), `SELECT `+productColumns+` FROM product`)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		defer rows.Close()
		list, err = collectProducts(rows)
		return err
	})
	return list, err
}

// Create persiste un nuevo producto y asigna el ID generado.
func (r *ProductRepo) Create(product *entity.Product) error {
	return r.session.Write(context.Background(), func(q Querier) error {
		query := `
			INSERT INTO product (product_name, category, unit, price, description)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING product_id`
		err := q.QueryRow(context.Background(), query,
			product.Name, product.Category, product.Unit, product.Price, product.Description,
		).Scan(&product.ID)
		if err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		return nil
	})
}

// Update actualiza un producto por ID. Devuelve ErrNotFound si no hay fila.
func (r *ProductRepo) Update(product *entity.Product) error {
	return r.session.Write(context.Background(), func(q Querier) error {
		query := `
			UPDATE product SET product_name = $2, category = $3, unit = $4, price = $5, description = $6
			WHERE product_id = $1`
		cmd, err := q.Exec(context.Background(), query,
			product.ID, product.Name, product.Category, product.Unit, product.Price, product.Description,
		)
		if err != nil {
			return fmt.Errorf("update product: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// Delete elimina un producto por ID. Si el producto sigue referenciado por
// filas de inventario o de proveedores, el FK lo rechaza y se devuelve
// ErrForeignKey: el borrado no cascada.
func (r *ProductRepo) Delete(id int64) error {
	return r.session.Write(context.Background(), func(q Querier) error {
		cmd, err := q.Exec(context.Background(), `DELETE FROM product WHERE product_id = $1`, id)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrForeignKey
			}
			return fmt.Errorf("delete product: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// Search busca productos por criterios dispersos (nombre con LIKE, categoría
// exacta).
func (r *ProductRepo) Search(filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM product WHERE 1=1`
	var args []any
	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		query += fmt.Sprintf(` AND product_name LIKE $%d`, len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(` AND category = $%d`, len(args))
	}

	var list []*entity.Product
	err := r.session.Read(context.Background(), func(q Querier) error {
		rows, err := q.Query(context.Background(), query, args...)
		if err != nil {
			return fmt.Errorf("search products: %w", err)
		}
		defer rows.Close()
		list, err = collectProducts(rows)
		return err
	})
	return list, err
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Unit, &p.Price, &p.Description); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
