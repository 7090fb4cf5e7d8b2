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

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `user_id, username, password, full_name, email, phone, role, status, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// Cada método corre en su propia sesión; las escrituras con commit explícito.
type UserRepo struct {
	session *Session
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(session *Session) *UserRepo {
	return &UserRepo{session: session}
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	var u *entity.User
	err := r.session.Read(context.Background(), func(q Querier) error {
		query := `SELECT ` + userColumns + ` FROM "user" WHERE user_id = $1`
		found, err := scanUser(q.QueryRow(context.Background(), query, id))
		if err != nil {
			return fmt.Errorf("get user by id: %w", err)
		}
		u = found
		return nil
	})
	return u, err
}

// GetByUsername obtiene un usuario por username. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	var u *entity.User
	err := r.session.Read(context.Background(), func(q Querier) error {
		query := `SELECT ` + userColumns + ` FROM "user" WHERE username = $1`
		found, err := scanUser(q.QueryRow(context.Background(), query, username))
		if err != nil {
			return fmt.Errorf("get user by username: %w", err)
		}
		u = found
		return nil
	})
	return u, err
}

// GetAll lista todos los usuarios, más recientes primero.
func (r *UserRepo) GetAll() ([]*entity.User, error) {
	var list []*entity.User
	err := r.session.Read(context.Background(), func(q Querier) error {
		query := `SELECT ` + userColumns + ` FROM "user" ORDER BY created_at DESC`
		rows, err := q.Query(context.Background(), query)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		defer rows.Close()
		list, err = collectUsers(rows)
		return err
	})
	return list, err
}

// Create persiste un nuevo usuario y asigna el ID generado.
// La unicidad de username la garantiza la base de datos, no una pre-consulta.
func (r *UserRepo) Create(user *entity.User) error {
	return r.session.Write(context.Background(), func(q Querier) error {
		query := `
			INSERT INTO "user" (username, password, full_name, email, phone, role, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING user_id`
		err := q.QueryRow(context.Background(), query,
			user.Username, user.Password, user.FullName, user.Email, user.Phone,
			user.Role, user.Status, user.CreatedAt, user.UpdatedAt,
		).Scan(&user.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert user: %w", err)
		}
		return nil
	})
}

// Update actualiza un usuario por ID. Devuelve ErrNotFound si no hay fila.
func (r *UserRepo) Update(user *entity.User) error {
	return r.session.Write(context.Background(), func(q Querier) error {
		query := `
			UPDATE "user" SET username = $2, password = $3, full_name = $4, email = $5,
				phone = $6, role = $7, status = $8, updated_at = $9
			WHERE user_id = $1`
		cmd, err := q.Exec(context.Background(), query,
			user.ID, user.Username, user.Password, user.FullName, user.Email,
			user.Phone, user.Role, user.Status, user.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("update user: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// Delete elimina un usuario por ID. Devuelve ErrNotFound si no existía.
func (r *UserRepo) Delete(id int64) error {
	return r.session.Write(context.Background(), func(q Querier) error {
		cmd, err := q.Exec(context.Background(), `DELETE FROM "user" WHERE user_id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// BatchDelete elimina los usuarios cuyos IDs estén en la lista y devuelve
// cuántas filas se eliminaron.
func (r *UserRepo) BatchDelete(ids []int64) (int64, error) {
	var deleted int64
	err := r.session.Write(context.Background(), func(q Querier) error {
		cmd, err := q.Exec(context.Background(), `DELETE FROM "user" WHERE user_id = ANY($1)`, ids)
		if err != nil {
			return fmt.Errorf("batch delete users: %w", err)
		}
		deleted = cmd.RowsAffected()
		return nil
	})
	return deleted, err
}

// Search busca usuarios por criterios dispersos; las semánticas de LIKE las
// resuelve la base de datos.
func (r *UserRepo) Search(filter repository.UserFilter) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM "user" WHERE 1=1`
	var args []any
	if filter.Username != "" {
		args = append(args, "%"+filter.Username+"%")
		query += fmt.Sprintf(` AND username LIKE $%d`, len(args))
	}
	if filter.Role != "" {
		args = append(args, filter.Role)
		query += fmt.Sprintf(` AND role = $%d`, len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC`

	var list []*entity.User
	err := r.session.Read(context.Background(), func(q Querier) error {
		rows, err := q.Query(context.Background(), query, args...)
		if err != nil {
			return fmt.Errorf("search users: %w", err)
		}
		defer rows.Close()
		list, err = collectUsers(rows)
		return err
	})
	return list, err
}

// Ping lectura de diagnóstico: cuenta usuarios para confirmar que el almacén
// responde antes de exponer la API.
func (r *UserRepo) Ping() error {
	return r.session.Read(context.Background(), func(q Querier) error {
		var n int64
		if err := q.QueryRow(context.Background(), `SELECT count(*) FROM "user"`).Scan(&n); err != nil {
			return fmt.Errorf("ping user table: %w", err)
		}
		return nil
	})
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.FullName, &u.Email,
		&u.Phone, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func collectUsers(rows pgx.Rows) ([]*entity.User, error) {
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.FullName, &u.Email,
			&u.Phone, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
