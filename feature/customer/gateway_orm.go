package customer

import (
	"context"
	"errors"
	"fmt"

	"customer-service/feature/customer/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ormGateway goes through the GORM model API.
type ormGateway struct {
	db     *gorm.DB
	logger *zap.Logger
}

func (g *ormGateway) ListAll(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := g.db.WithContext(ctx).Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (g *ormGateway) FindByID(ctx context.Context, id int64) (*models.Customer, error) {
	var c models.Customer
	err := g.db.WithContext(ctx).Take(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select customer %d: %w", id, err)
	}
	return &c, nil
}

func (g *ormGateway) Insert(ctx context.Context, c models.Customer) error {
	c.ID = 0
	if err := g.db.WithContext(ctx).Create(&c).Error; err != nil {
		return translateWriteError(err, "Email already taken", "failed to insert customer")
	}
	g.logger.Debug("Customer created", zap.Int64("id", c.ID))
	return nil
}

func (g *ormGateway) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := g.db.WithContext(ctx).Model(&models.Customer{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count customers by email: %w", err)
	}
	return count > 0, nil
}

func (g *ormGateway) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := g.db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count customers by id: %w", err)
	}
	return count > 0, nil
}

func (g *ormGateway) DeleteByID(ctx context.Context, id int64) error {
	res := g.db.WithContext(ctx).Delete(&models.Customer{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete customer %d: %w", id, res.Error)
	}
	g.logger.Debug("Customer rows deleted", zap.Int64("rows", res.RowsAffected))
	return nil
}

func (g *ormGateway) Update(ctx context.Context, c models.Customer) error {
	res := g.db.WithContext(ctx).
		Model(&models.Customer{ID: c.ID}).
		Select("name", "email", "age").
		Updates(models.Customer{Name: c.Name, Email: c.Email, Age: c.Age})
	if res.Error != nil {
		return translateWriteError(res.Error, "email already taken", "failed to update customer")
	}
	g.logger.Debug("Customer rows updated", zap.Int64("rows", res.RowsAffected))
	return nil
}
