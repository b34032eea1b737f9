package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/rogerio-castellano/factory-management/internal/config"
)

// ErrUnavailable is returned when no connection to the database can be made.
var ErrUnavailable = errors.New("database connection failed")

// DSN renders the go-sql-driver data source name for cfg.
func DSN(cfg config.DBConfig) string {
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.DBName = cfg.Name
	mc.Timeout = cfg.DialTimeout
	return mc.FormatDSN()
}

// Open returns a pool for cfg and pings it once. The pool is returned even
// when the ping fails so the server can start before the database is up.
func Open(cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("mysql", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return db, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Acquire takes one connection out of the pool for a single unit of work.
// The caller must Close it.
func Acquire(ctx context.Context, db *sql.DB) (*sql.Conn, error) {
	if db == nil {
		return nil, ErrUnavailable
	}
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return conn, nil
}

// Ping acquires a connection and checks it is alive.
func Ping(ctx context.Context, db *sql.DB) error {
	conn, err := Acquire(ctx, db)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
