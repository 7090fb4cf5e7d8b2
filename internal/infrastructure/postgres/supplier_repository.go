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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// linkJoinQuery resuelve producto y proveedor de cada asociación en la misma
// consulta.
const linkJoinQuery = `
	SELECT ps.product_id, ps.supplier_id, ps.supply_price, ps.last_supply_date,
		p.product_name, s.supplier_name
	FROM product_supplier ps
	JOIN product p ON p.product_id = ps.product_id
	JOIN supplier s ON s.supplier_id = ps.supplier_id`

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL,
// incluida la asociación product_supplier (clave compuesta).
type SupplierRepo struct {
	session *Session
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(session *Session) *SupplierRepo {
	return &SupplierRepo{session: session}
}

// GetByID obtiene un proveedor por ID. Devuelve (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	var s *entity.Supplier
	err := r.session.Read(context.Background(), func(q Querier) error {
		query := `SELECT supplier_id, supplier_name FROM supplier WHERE supplier_id = $1`
		var found entity.Supplier
		err := q.QueryRow(context.Background(), query, id).Scan(&found.ID, &found.Name)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("get supplier: %w", err)
		}
		s = &found
		return nil
	})
	return s, err
}

// GetAll lista todos los proveedores.
func (r *SupplierRepo) GetAll() ([]*entity.Supplier, error) {
	var list []*entity.Supplier
	err := r.session.Read(context.Background(), func(q Querier) error {
		rows, err := q.Query(context.Background(), `SELECT supplier_id, supplier_name FROM supplier`)
		if err != nil {
			return fmt.Errorf("list suppliers: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var s entity.Supplier
			if err := rows.Scan(&s.ID, &s.Name); err != nil {
				return fmt.Errorf("scan supplier: %w", err)
			}
			list = append(list, &s)
		}
		return rows.Err()
	})
	return list, err
}

// Create persiste un nuevo proveedor y asigna el ID generado.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	return r.session.Write(context.Background(), func(q Querier) error {
		query := `INSERT INTO supplier (supplier_name) VALUES ($1) RETURNING supplier_id`
		if err := q.QueryRow(context.Background(), query, supplier.Name).Scan(&supplier.ID); err != nil {
			return fmt.Errorf("insert supplier: %w", err)
		}
		return nil
	})
}

// Update actualiza un proveedor por ID.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	return r.session.Write(context.Background(), func(q Querier) error {
		query := `UPDATE supplier SET supplier_name = $2 WHERE supplier_id = $1`
		cmd, err := q.Exec(context.Background(), query, supplier.ID, supplier.Name)
		if err != nil {
			return fmt.Errorf("update supplier: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// Delete elimina un proveedor por ID; el FK de la asociación rechaza el
// borrado si el proveedor sigue enlazado a productos.
func (r *SupplierRepo) Delete(id int64) error {
	return r.session.Write(context.Background(), func(q Querier) error {
		cmd, err := q.Exec(context.Background(), `DELETE FROM supplier WHERE supplier_id = $1`, id)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrForeignKey
			}
			return fmt.Errorf("delete supplier: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// GetAllLinks lista todas las asociaciones producto-proveedor.
func (r *SupplierRepo) GetAllLinks() ([]*entity.ProductSupplier, error) {
	return r.listLinks(linkJoinQuery)
}

// GetLinksByProductID lista los proveedores de un producto.
func (r *SupplierRepo) GetLinksByProductID(productID int64) ([]*entity.ProductSupplier, error) {
	return r.listLinks(linkJoinQuery+` WHERE ps.product_id = $1`, productID)
}

// GetLinksBySupplierID lista los productos de un proveedor.
func (r *SupplierRepo) GetLinksBySupplierID(supplierID int64) ([]*entity.ProductSupplier, error) {
	return r.listLinks(linkJoinQuery+` WHERE ps.supplier_id = $1`, supplierID)
}

func (r *SupplierRepo) listLinks(query string, args ...any) ([]*entity.ProductSupplier, error) {
	var list []*entity.ProductSupplier
	err := r.session.Read(context.Background(), func(q Querier) error {
		rows, err := q.Query(context.Background(), query, args...)
		if err != nil {
			return fmt.Errorf("list product suppliers: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var link entity.ProductSupplier
			var productName, supplierName string
			if err := rows.Scan(&link.ProductID, &link.SupplierID, &link.SupplyPrice,
				&link.LastSupplyDate, &productName, &supplierName); err != nil {
				return fmt.Errorf("scan product supplier: %w", err)
			}
			link.Product = &entity.Product{ID: link.ProductID, Name: productName}
			link.Supplier = &entity.Supplier{ID: link.SupplierID, Name: supplierName}
			list = append(list, &link)
		}
		return rows.Err()
	})
	return list, err
}

// CreateLink persiste una asociación producto-proveedor. La unicidad de la
// clave compuesta y los FK los garantiza la base de datos, sin pre-consulta.
func (r *SupplierRepo) CreateLink(link *entity.ProductSupplier) error {
	return r.session.Write(context.Background(), func(q Querier) error {
		query := `
			INSERT INTO product_supplier (product_id, supplier_id, supply_price, last_supply_date)
			VALUES ($1, $2, $3, $4)`
		_, err := q.Exec(context.Background(), query,
			link.ProductID, link.SupplierID, link.SupplyPrice, link.LastSupplyDate)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			if isForeignKeyViolation(err) {
				return domain.ErrForeignKey
			}
			return fmt.Errorf("insert product supplier: %w", err)
		}
		return nil
	})
}

// DeleteLink elimina la asociación identificada por (productID, supplierID).
func (r *SupplierRepo) DeleteLink(productID, supplierID int64) error {
	return r.session.Write(context.Background(), func(q Querier) error {
		query := `DELETE FROM product_supplier WHERE product_id = $1 AND supplier_id = $2`
		cmd, err := q.Exec(context.Background(), query, productID, supplierID)
		if err != nil {
			return fmt.Errorf("delete product supplier: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
