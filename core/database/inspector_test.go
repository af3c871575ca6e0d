package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns(t *testing.T) {
	cfg := Config{
		Driver: DriverSQLite,
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE customer (id INTEGER PRIMARY KEY, name TEXT NOT NULL, email TEXT NOT NULL, age INTEGER)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "customer")
	require.NoError(t, err)
	assert.Len(t, columns, 4)

	byField := make(map[string]ColumnInfo)
	for _, col := range columns {
		byField[col.Field] = col
	}

	assert.Equal(t, "integer", byField["id"].Type)
	assert.Equal(t, "PRI", byField["id"].Key)
	assert.Equal(t, "text", byField["name"].Type)
	assert.Equal(t, "NO", byField["email"].Null)
	assert.Equal(t, "YES", byField["age"].Null)

	// PRAGMA table_info returns an empty result for a non-existent table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("ID", "BIGINT UNSIGNED", "NO", "PRI", nil, "auto_increment").
		AddRow("email", "VARCHAR(255)", "NO", "UNI", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `customer`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "customer")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "bigint unsigned", columns[0].Type)
	assert.Equal(t, "varchar(255)", columns[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	require.NoError(t, db.Exec("CREATE TABLE customer (id INTEGER PRIMARY KEY, name TEXT, email TEXT)").Error)

	missing, err := VerifyColumns(db, "customer", []string{"id", "name", "email", "age"})
	require.NoError(t, err)
	assert.Equal(t, []string{"age"}, missing)

	missing, err = VerifyColumns(db, "absent", []string{"id", "name"})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, missing)
}
