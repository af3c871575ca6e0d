package customer_test

import (
	"context"
	"errors"
	"testing"

	"customer-service/core/database"
	"customer-service/feature/customer"
	"customer-service/feature/customer/mocks"
	"customer-service/feature/customer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) (*customer.Service, *mocks.Gateway) {
	t.Helper()
	gw := new(mocks.Gateway)
	t.Cleanup(func() { gw.AssertExpectations(t) })
	return customer.NewService(gw, zap.NewNop()), gw
}

func alex() *models.Customer {
	return &models.Customer{ID: 10, Name: "Alex", Email: "Alex@gmail.com", Age: 32}
}

func TestListCustomers(t *testing.T) {
	svc, gw := newService(t)
	gw.On("ListAll", mock.Anything).Return([]models.Customer{*alex()}, nil)

	customers, err := svc.ListCustomers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Customer{*alex()}, customers)
}

func TestListCustomers_EmptyIsNotNil(t *testing.T) {
	svc, gw := newService(t)
	gw.On("ListAll", mock.Anything).Return(nil, nil)

	customers, err := svc.ListCustomers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, customers)
	assert.Empty(t, customers)
}

func TestGetCustomer(t *testing.T) {
	svc, gw := newService(t)
	gw.On("FindByID", mock.Anything, int64(10)).Return(alex(), nil)

	actual, err := svc.GetCustomer(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, alex(), actual)
}

func TestGetCustomer_NotFound(t *testing.T) {
	svc, gw := newService(t)
	gw.On("FindByID", mock.Anything, int64(10)).Return(nil, nil)

	_, err := svc.GetCustomer(context.Background(), 10)
	assert.ErrorIs(t, err, customer.ErrNotFound)
	assert.EqualError(t, err, "customer with id [10] not found")
}

func TestGetCustomer_StorageErrorPassesThrough(t *testing.T) {
	svc, gw := newService(t)
	boom := errors.New("connection reset")
	gw.On("FindByID", mock.Anything, int64(10)).Return(nil, boom)

	_, err := svc.GetCustomer(context.Background(), 10)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, customer.ErrNotFound)
}

func TestAddCustomer(t *testing.T) {
	svc, gw := newService(t)
	reg := models.Registration{Name: "Alex", Email: "alex@gmail.com", Age: 33}
	gw.On("ExistsByEmail", mock.Anything, "alex@gmail.com").Return(false, nil)
	gw.On("Insert", mock.Anything, models.Customer{Name: "Alex", Email: "alex@gmail.com", Age: 33}).Return(nil)

	require.NoError(t, svc.AddCustomer(context.Background(), reg))

	inserted := gw.Calls[1].Arguments.Get(1).(models.Customer)
	assert.Zero(t, inserted.ID)
}

func TestAddCustomer_EmailTaken(t *testing.T) {
	svc, gw := newService(t)
	reg := models.Registration{Name: "Alex", Email: "alex@gmail.com", Age: 33}
	gw.On("ExistsByEmail", mock.Anything, "alex@gmail.com").Return(true, nil)

	err := svc.AddCustomer(context.Background(), reg)
	assert.ErrorIs(t, err, customer.ErrConflict)
	assert.EqualError(t, err, "Email already taken")
	gw.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestAddCustomer_Invalid(t *testing.T) {
	tests := []struct {
		name string
		reg  models.Registration
	}{
		{"MissingName", models.Registration{Email: "alex@gmail.com", Age: 33}},
		{"MissingEmail", models.Registration{Name: "Alex", Age: 33}},
		{"MalformedEmail", models.Registration{Name: "Alex", Email: "alex", Age: 33}},
		{"NegativeAge", models.Registration{Name: "Alex", Email: "alex@gmail.com", Age: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, gw := newService(t)

			err := svc.AddCustomer(context.Background(), tt.reg)
			assert.ErrorIs(t, err, customer.ErrInvalid)
			gw.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
			gw.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		})
	}
}

func TestAddCustomer_StoreReportsDuplicate(t *testing.T) {
	svc, gw := newService(t)
	reg := models.Registration{Name: "Alex", Email: "alex@gmail.com", Age: 33}
	gw.On("ExistsByEmail", mock.Anything, "alex@gmail.com").Return(false, nil)
	gw.On("Insert", mock.Anything, mock.Anything).Return(&customer.Error{Kind: customer.ErrConflict, Message: "Email already taken"})

	err := svc.AddCustomer(context.Background(), reg)
	assert.ErrorIs(t, err, customer.ErrConflict)
}

func TestRemoveCustomer(t *testing.T) {
	svc, gw := newService(t)
	gw.On("ExistsByID", mock.Anything, int64(10)).Return(true, nil)
	gw.On("DeleteByID", mock.Anything, int64(10)).Return(nil)

	assert.NoError(t, svc.RemoveCustomer(context.Background(), 10))
}

func TestRemoveCustomer_NotFound(t *testing.T) {
	svc, gw := newService(t)
	gw.On("ExistsByID", mock.Anything, int64(10)).Return(false, nil)

	err := svc.RemoveCustomer(context.Background(), 10)
	assert.ErrorIs(t, err, customer.ErrNotFound)
	assert.EqualError(t, err, "customer with id [10] not found")
	gw.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestRemoveCustomer_SecondCallFails(t *testing.T) {
	svc, gw := newService(t)
	gw.On("ExistsByID", mock.Anything, int64(10)).Return(true, nil).Once()
	gw.On("DeleteByID", mock.Anything, int64(10)).Return(nil).Once()
	gw.On("ExistsByID", mock.Anything, int64(10)).Return(false, nil).Once()

	require.NoError(t, svc.RemoveCustomer(context.Background(), 10))
	assert.ErrorIs(t, svc.RemoveCustomer(context.Background(), 10), customer.ErrNotFound)
}

func TestUpdateCustomer_AllProperties(t *testing.T) {
	svc, gw := newService(t)
	gw.On("FindByID", mock.Anything, int64(10)).Return(alex(), nil)
	gw.On("ExistsByEmail", mock.Anything, "alesandro@gmail.com").Return(false, nil)
	want := models.Customer{ID: 10, Name: "Alesandro", Email: "alesandro@gmail.com", Age: 55}
	gw.On("Update", mock.Anything, want).Return(nil)

	change := models.ChangeRequest{
		Name:  models.Some("Alesandro"),
		Email: models.Some("alesandro@gmail.com"),
		Age:   models.Some(55),
	}
	updated, err := svc.UpdateCustomer(context.Background(), 10, change)
	require.NoError(t, err)
	assert.Equal(t, &want, updated)
}

func TestUpdateCustomer_OnlyName(t *testing.T) {
	svc, gw := newService(t)
	gw.On("FindByID", mock.Anything, int64(10)).Return(alex(), nil)
	gw.On("Update", mock.Anything, models.Customer{ID: 10, Name: "Alesandro", Email: "Alex@gmail.com", Age: 32}).Return(nil)

	_, err := svc.UpdateCustomer(context.Background(), 10, models.ChangeRequest{Name: models.Some("Alesandro")})
	require.NoError(t, err)
	gw.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
}

func TestUpdateCustomer_OnlyEmail(t *testing.T) {
	svc, gw := newService(t)
	gw.On("FindByID", mock.Anything, int64(10)).Return(alex(), nil)
	gw.On("ExistsByEmail", mock.Anything, "alesandro@gmail.com").Return(false, nil)
	gw.On("Update", mock.Anything, models.Customer{ID: 10, Name: "Alex", Email: "alesandro@gmail.com", Age: 32}).Return(nil)

	_, err := svc.UpdateCustomer(context.Background(), 10, models.ChangeRequest{Email: models.Some("alesandro@gmail.com")})
	require.NoError(t, err)
}

func TestUpdateCustomer_OnlyAge(t *testing.T) {
	svc, gw := newService(t)
	gw.On("FindByID", mock.Anything, int64(10)).Return(alex(), nil)
	gw.On("Update", mock.Anything, models.Customer{ID: 10, Name: "Alex", Email: "Alex@gmail.com", Age: 16}).Return(nil)

	_, err := svc.UpdateCustomer(context.Background(), 10, models.ChangeRequest{Age: models.Some(16)})
	require.NoError(t, err)
}

func TestUpdateCustomer_EmailTaken(t *testing.T) {
	svc, gw := newService(t)
	gw.On("FindByID", mock.Anything, int64(10)).Return(alex(), nil)
	gw.On("ExistsByEmail", mock.Anything, "alesandro@gmail.com").Return(true, nil)

	_, err := svc.UpdateCustomer(context.Background(), 10, models.ChangeRequest{Email: models.Some("alesandro@gmail.com")})
	assert.ErrorIs(t, err, customer.ErrConflict)
	assert.EqualError(t, err, "email already taken")
	gw.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateCustomer_NoChanges(t *testing.T) {
	svc, gw := newService(t)
	gw.On("FindByID", mock.Anything, int64(10)).Return(alex(), nil)

	change := models.ChangeRequest{
		Name:  models.Some("Alex"),
		Email: models.Some("Alex@gmail.com"),
		Age:   models.Some(32),
	}
	_, err := svc.UpdateCustomer(context.Background(), 10, change)
	assert.ErrorIs(t, err, customer.ErrNoOp)
	assert.EqualError(t, err, "no data changed found")
	gw.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
	gw.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateCustomer_NotFound(t *testing.T) {
	svc, gw := newService(t)
	gw.On("FindByID", mock.Anything, int64(99)).Return(nil, nil)

	_, err := svc.UpdateCustomer(context.Background(), 99, models.ChangeRequest{Name: models.Some("Ali")})
	assert.ErrorIs(t, err, customer.ErrNotFound)
	gw.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateCustomer_InvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		change models.ChangeRequest
	}{
		{"EmptyName", models.ChangeRequest{Name: models.Some("")}},
		{"MalformedEmail", models.ChangeRequest{Email: models.Some("not-an-email")}},
		{"NegativeAge", models.ChangeRequest{Age: models.Some(-1)}},
		{"ValidNameInvalidAge", models.ChangeRequest{Name: models.Some("Alesandro"), Age: models.Some(-5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, gw := newService(t)
			gw.On("FindByID", mock.Anything, int64(10)).Return(alex(), nil)

			_, err := svc.UpdateCustomer(context.Background(), 10, tt.change)
			assert.ErrorIs(t, err, customer.ErrInvalid)
			gw.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
			gw.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateCustomer_OnlyStagedFieldsAreValidated(t *testing.T) {
	svc, gw := newService(t)
	stored := &models.Customer{ID: 10, Name: "Alex", Email: "legacy-address", Age: 32}
	gw.On("FindByID", mock.Anything, int64(10)).Return(stored, nil)
	gw.On("Update", mock.Anything, models.Customer{ID: 10, Name: "Alex", Email: "legacy-address", Age: 33}).Return(nil)

	_, err := svc.UpdateCustomer(context.Background(), 10, models.ChangeRequest{Age: models.Some(33)})
	require.NoError(t, err)
}

func TestUpdateCustomer_InvalidValuesAreNotStored(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, customer.Migrate(db))
	gw, err := customer.NewGateway(customer.GatewaySQL, db, zap.NewNop())
	require.NoError(t, err)
	svc := customer.NewService(gw, zap.NewNop())
	ctx := context.Background()

	assert.ErrorIs(t, svc.AddCustomer(ctx, models.Registration{Email: "alex@gmail.com", Age: 33}), customer.ErrInvalid)
	require.NoError(t, svc.AddCustomer(ctx, models.Registration{Name: "Alex", Email: "alex@gmail.com", Age: 33}))

	all, err := svc.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	id := all[0].ID

	change := models.ChangeRequest{Name: models.Some(""), Email: models.Some("not-an-email"), Age: models.Some(-5)}
	_, err = svc.UpdateCustomer(ctx, id, change)
	assert.ErrorIs(t, err, customer.ErrInvalid)

	stored, err := svc.GetCustomer(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, &models.Customer{ID: id, Name: "Alex", Email: "alex@gmail.com", Age: 33}, stored)
}
