package hateoas

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type mockDBFactory func(t *testing.T) (string, *gorm.DB, sqlmock.Sqlmock)

var _mockDBFactories = []mockDBFactory{
	newMySQLMockDB,
	newPostgresMockDB,
}

func newMySQLMockDB(t *testing.T) (string, *gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	return "mysql", db, mock
}

func newPostgresMockDB(t *testing.T) (string, *gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: conn,
	}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	return "postgres", db, mock
}

func mustPageMetadata(t *testing.T, size, number, totalElements int64) PageMetadata {
	t.Helper()

	md, err := NewPageMetadata(size, number, totalElements)
	require.NoError(t, err)

	return md
}

func mustPageMetadataWithTotalPages(t *testing.T, size, number, totalElements, totalPages int64) PageMetadata {
	t.Helper()

	md, err := NewPageMetadataWithTotalPages(size, number, totalElements, totalPages)
	require.NoError(t, err)

	return md
}
