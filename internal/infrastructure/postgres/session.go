package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier es la interfaz mínima que comparten una conexión del pool y una
// transacción; los repositorios escriben sus consultas contra ella.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Session gestiona el ciclo de vida de una sesión por operación: cada llamada
// adquiere su propia conexión y la libera en todas las rutas de salida. Las
// escrituras corren dentro de una transacción con commit explícito; si fn
// falla, el rollback diferido garantiza que nada quede a medio aplicar.
type Session struct {
	pool *pgxpool.Pool
}

// NewSession construye el runner de sesiones sobre el pool.
func NewSession(pool *pgxpool.Pool) *Session {
	return &Session{pool: pool}
}

// Read adquiere una conexión para una operación de solo lectura y la libera
// al terminar. No hay commit: las lecturas no abren transacción.
func (s *Session) Read(ctx context.Context, fn func(q Querier) error) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire session: %w", err)
	}
	defer conn.Release()
	return fn(conn)
}

// Write inicia una transacción, ejecuta fn y hace Commit solo si fn retorna
// nil. El Rollback diferido es un no-op tras un Commit exitoso.
func (s *Session) Write(ctx context.Context, fn func(q Querier) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
