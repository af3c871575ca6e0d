package customer_test

import (
	"strings"
	"testing"

	"customer-service/core/loader"
	"customer-service/feature/customer"
	"customer-service/feature/customer/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFeature(t *testing.T) {
	f := customer.NewFeature(new(mocks.Gateway), zap.NewNop())

	var _ loader.Feature = f
	assert.Equal(t, "customer", f.Name())
	assert.True(t, f.IsEnabled())
	assert.NotNil(t, f.Service())

	app := fiber.New()
	require.NoError(t, f.Load(app))

	routes := map[string]bool{}
	for _, r := range app.GetRoutes(true) {
		routes[r.Method+" "+strings.TrimSuffix(r.Path, "/")] = true
	}
	assert.True(t, routes["GET /api/v1/customers"])
	assert.True(t, routes["GET /api/v1/customers/:customerId"])
	assert.True(t, routes["POST /api/v1/customers"])
	assert.True(t, routes["PUT /api/v1/customers/:customerId"])
	assert.True(t, routes["DELETE /api/v1/customers/:customerId"])
}
