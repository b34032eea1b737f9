package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rogerio-castellano/factory-management/internal/db"
)

// MySQLRepository implements Repository over one table. Every call takes its
// own connection from the pool and releases it before returning.
type MySQLRepository[T any] struct {
	db    *sql.DB
	table Table[T]
}

func NewMySQLRepository[T any](db *sql.DB, table Table[T]) *MySQLRepository[T] {
	return &MySQLRepository[T]{db: db, table: table}
}

func (r *MySQLRepository[T]) List(ctx context.Context) ([]T, error) {
	conn, err := db.Acquire(ctx, r.db)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, r.table.listSQL())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []T{}
	for rows.Next() {
		var row T
		if err := rows.Scan(r.table.fields(&row)...); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *MySQLRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var row T

	conn, err := db.Acquire(ctx, r.db)
	if err != nil {
		return row, err
	}
	defer conn.Close()

	err = conn.QueryRowContext(ctx, r.table.getSQL(), id).Scan(r.table.fields(&row)...)
	if errors.Is(err, sql.ErrNoRows) {
		return row, ErrNotFound
	}
	return row, err
}

func (r *MySQLRepository[T]) Create(ctx context.Context, row T) error {
	return r.exec(ctx, r.table.insertSQL(), r.table.fields(&row)...)
}

func (r *MySQLRepository[T]) Update(ctx context.Context, id string, row T) error {
	args := append(r.table.fields(&row)[1:], id)
	return r.exec(ctx, r.table.updateSQL(), args...)
}

func (r *MySQLRepository[T]) Delete(ctx context.Context, id string) error {
	return r.exec(ctx, r.table.deleteSQL(), id)
}

// exec runs a write statement. Driver errors are returned unwrapped so their
// text can be shown to the client as is.
func (r *MySQLRepository[T]) exec(ctx context.Context, query string, args ...any) error {
	conn, err := db.Acquire(ctx, r.db)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = conn.ExecContext(ctx, query, args...)
	return err
}

// MySQLHealthRepository probes the pool for /api/health.
type MySQLHealthRepository struct {
	db *sql.DB
}

func NewMySQLHealthRepository(db *sql.DB) *MySQLHealthRepository {
	return &MySQLHealthRepository{db: db}
}

func (r *MySQLHealthRepository) Ping(ctx context.Context) error {
	return db.Ping(ctx, r.db)
}
