// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL, PostgreSQL or SQLite connections from the
// application's configuration. Connections are opened with TranslateError so
// unique-constraint violations surface as gorm.ErrDuplicatedKey regardless of
// the driver.
//
// # Connect
//
// Connect opens the connection, tunes the pool and pings the server within the
// configured timeout. SQLite connections are limited to a single open
// connection so ":memory:" databases behave as one database.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns using the dialect's own catalog
// (SHOW COLUMNS, information_schema, PRAGMA table_info). VerifyColumns builds on
// it to report required columns that are missing, which the migrate command
// uses to confirm the customer table is usable.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.VerifyColumns(db, "customer", []string{"id", "name", "email", "age"})
package database
