package mocks

import (
	"context"

	"customer-service/feature/customer/models"

	"github.com/stretchr/testify/mock"
)

// Gateway is a testify mock of customer.Gateway.
type Gateway struct {
	mock.Mock
}

func (m *Gateway) ListAll(ctx context.Context) ([]models.Customer, error) {
	args := m.Called(ctx)
	if customers, ok := args.Get(0).([]models.Customer); ok {
		return customers, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Gateway) FindByID(ctx context.Context, id int64) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*models.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Gateway) Insert(ctx context.Context, c models.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *Gateway) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *Gateway) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *Gateway) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *Gateway) Update(ctx context.Context, c models.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
