package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rogerio-castellano/factory-management/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DBConfig{
		Host:        "db.local",
		Port:        3307,
		User:        "root",
		Password:    "p@ss",
		Name:        "FactoryManagement",
		DialTimeout: 5 * time.Second,
	})

	assert.Equal(t, "root:p@ss@tcp(db.local:3307)/FactoryManagement?timeout=5s", dsn)
}

func TestPing_Unavailable(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("dial tcp: connection refused"))

	err = Ping(context.Background(), db)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorContains(t, err, "connection refused")
}

func TestPing_OK(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()

	assert.NoError(t, Ping(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
