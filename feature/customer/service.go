package customer

import (
	"context"

	"customer-service/feature/customer/models"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Service handles customer operations on top of a Gateway.
// It holds no customer state between calls.
type Service struct {
	gateway  Gateway
	logger   *zap.Logger
	validate *validator.Validate
}

// NewService creates a new customer service.
func NewService(gateway Gateway, logger *zap.Logger) *Service {
	return &Service{
		gateway:  gateway,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ListCustomers returns all customers. The result is never nil.
func (s *Service) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.gateway.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	return customers, nil
}

// GetCustomer returns the stored customer or an ErrNotFound error.
func (s *Service) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	c, err := s.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound(id)
	}
	return c, nil
}

// AddCustomer validates the registration and inserts it when the email is free.
func (s *Service) AddCustomer(ctx context.Context, reg models.Registration) error {
	if err := s.validate.Struct(reg); err != nil {
		return invalid("invalid customer: %v", err)
	}

	taken, err := s.gateway.ExistsByEmail(ctx, reg.Email)
	if err != nil {
		return err
	}
	if taken {
		return conflict("Email already taken")
	}

	if err := s.gateway.Insert(ctx, reg.ToCustomer()); err != nil {
		return err
	}

	s.logger.Info("Customer added", zap.String("email", reg.Email))
	return nil
}

// RemoveCustomer deletes the customer, failing with ErrNotFound when it does not exist.
func (s *Service) RemoveCustomer(ctx context.Context, id int64) error {
	exists, err := s.gateway.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return notFound(id)
	}

	if err := s.gateway.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Customer removed", zap.Int64("id", id))
	return nil
}

// UpdateCustomer reconciles the change request and persists the result.
func (s *Service) UpdateCustomer(ctx context.Context, id int64, change models.ChangeRequest) (*models.Customer, error) {
	resolved, err := s.Reconcile(ctx, id, change)
	if err != nil {
		return nil, err
	}

	if err := s.gateway.Update(ctx, *resolved); err != nil {
		return nil, err
	}

	s.logger.Info("Customer updated", zap.Int64("id", id))
	return resolved, nil
}
