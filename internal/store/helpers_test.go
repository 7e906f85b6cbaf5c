package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// newMockDB returns a Postgres-flavoured *DB over sqlmock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})

	db := newPostgresDB(conn, logger.Nop())
	db.timeout = time.Second
	return db, mock
}

// newMockSQLiteDB returns a SQLite-flavoured *DB over sqlmock.
func newMockSQLiteDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})

	db := newSQLiteDB(conn, logger.Nop())
	db.timeout = time.Second
	return db, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

