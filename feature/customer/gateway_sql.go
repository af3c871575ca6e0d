package customer

import (
	"context"
	"errors"
	"fmt"

	"customer-service/feature/customer/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	selectAllSQL    = "SELECT id, name, email, age FROM customer"
	selectByIDSQL   = "SELECT id, name, email, age FROM customer WHERE id = ?"
	insertSQL       = "INSERT INTO customer(name, email, age) VALUES (?, ?, ?)"
	countByEmailSQL = "SELECT count(id) FROM customer WHERE email = ?"
	countByIDSQL    = "SELECT count(id) FROM customer WHERE id = ?"
	deleteByIDSQL   = "DELETE FROM customer WHERE id = ?"
	updateSQL       = "UPDATE customer SET name = ?, email = ?, age = ? WHERE id = ?"
)

// sqlGateway issues hand-written parameterized statements.
type sqlGateway struct {
	db     *gorm.DB
	logger *zap.Logger
}

func (g *sqlGateway) ListAll(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := g.db.WithContext(ctx).Raw(selectAllSQL).Scan(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (g *sqlGateway) FindByID(ctx context.Context, id int64) (*models.Customer, error) {
	var found []models.Customer
	if err := g.db.WithContext(ctx).Raw(selectByIDSQL, id).Scan(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to select customer %d: %w", id, err)
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (g *sqlGateway) Insert(ctx context.Context, c models.Customer) error {
	res := g.db.WithContext(ctx).Exec(insertSQL, c.Name, c.Email, c.Age)
	if res.Error != nil {
		return translateWriteError(res.Error, "Email already taken", "failed to insert customer")
	}
	g.logger.Debug("Customer rows inserted", zap.Int64("rows", res.RowsAffected))
	return nil
}

func (g *sqlGateway) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := g.db.WithContext(ctx).Raw(countByEmailSQL, email).Scan(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count customers by email: %w", err)
	}
	return count > 0, nil
}

func (g *sqlGateway) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := g.db.WithContext(ctx).Raw(countByIDSQL, id).Scan(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count customers by id: %w", err)
	}
	return count > 0, nil
}

func (g *sqlGateway) DeleteByID(ctx context.Context, id int64) error {
	res := g.db.WithContext(ctx).Exec(deleteByIDSQL, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete customer %d: %w", id, res.Error)
	}
	g.logger.Debug("Customer rows deleted", zap.Int64("rows", res.RowsAffected))
	return nil
}

func (g *sqlGateway) Update(ctx context.Context, c models.Customer) error {
	res := g.db.WithContext(ctx).Exec(updateSQL, c.Name, c.Email, c.Age, c.ID)
	if res.Error != nil {
		return translateWriteError(res.Error, "email already taken", "failed to update customer")
	}
	g.logger.Debug("Customer rows updated", zap.Int64("rows", res.RowsAffected))
	return nil
}

// translateWriteError turns a unique violation on email into a conflict.
// The unique index is what actually guarantees one customer per email.
func translateWriteError(err error, conflictMessage, action string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return conflict(conflictMessage)
	}
	return fmt.Errorf("%s: %w", action, err)
}
