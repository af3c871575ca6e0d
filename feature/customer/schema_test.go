package customer_test

import (
	"testing"

	"customer-service/core/database"
	"customer-service/feature/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	require.NoError(t, customer.Migrate(db))
	// Running it again must leave the schema intact.
	require.NoError(t, customer.Migrate(db))

	cols, err := database.GetTableColumns(db, "customer")
	require.NoError(t, err)
	names := make([]string, 0, len(cols))
	for _, c := range cols {
		names = append(names, c.Field)
	}
	assert.ElementsMatch(t, customer.RequiredColumns, names)
}

func TestCheckSchema_MissingColumns(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	require.NoError(t, db.Exec("CREATE TABLE customer (id INTEGER PRIMARY KEY, name TEXT)").Error)

	err = customer.CheckSchema(db)
	assert.EqualError(t, err, "customer table is missing columns: email, age")
}

func TestCheckSchema_NoTable(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	assert.Error(t, customer.CheckSchema(db))
}
