package customer

import (
	"context"
	"fmt"

	"customer-service/feature/customer/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Gateway implementations selectable through database.gateway.
const (
	GatewaySQL = "sql"
	GatewayORM = "orm"
)

// Gateway is the persistence boundary for customers.
// Each method issues a single statement and applies no business rules.
type Gateway interface {
	// ListAll returns every customer in no particular order.
	ListAll(ctx context.Context) ([]models.Customer, error)
	// FindByID returns nil without error when no customer has the id.
	FindByID(ctx context.Context, id int64) (*models.Customer, error)
	// Insert stores a new customer; the store assigns the id.
	Insert(ctx context.Context, c models.Customer) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// DeleteByID is a no-op when the id does not exist.
	DeleteByID(ctx context.Context, id int64) error
	// Update overwrites name, email and age of the customer with c.ID.
	Update(ctx context.Context, c models.Customer) error
}

// NewGateway returns the gateway implementation named by kind.
func NewGateway(kind string, db *gorm.DB, logger *zap.Logger) (Gateway, error) {
	if db == nil {
		return nil, fmt.Errorf("customer gateway requires a database connection")
	}
	switch kind {
	case GatewaySQL, "":
		return &sqlGateway{db: db, logger: logger}, nil
	case GatewayORM:
		return &ormGateway{db: db, logger: logger}, nil
	default:
		return nil, fmt.Errorf("unknown customer gateway %q", kind)
	}
}
