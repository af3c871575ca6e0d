package customer

import (
	"fmt"
	"strings"

	"customer-service/core/database"
	"customer-service/feature/customer/models"

	"gorm.io/gorm"
)

// RequiredColumns are the columns both gateways read and write.
var RequiredColumns = []string{"id", "name", "email", "age"}

// Migrate creates or updates the customer table, including the unique index
// on email, and checks that every required column is present afterwards.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Customer{}); err != nil {
		return fmt.Errorf("failed to migrate customer table: %w", err)
	}
	return CheckSchema(db)
}

// CheckSchema fails when the customer table lacks a required column.
func CheckSchema(db *gorm.DB) error {
	missing, err := database.VerifyColumns(db, models.Customer{}.TableName(), RequiredColumns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("customer table is missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
