package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"customer-service/core/config"
	"customer-service/core/database"
	"customer-service/core/logger"
	"customer-service/core/storage"
	"customer-service/feature/customer"
	"customer-service/feature/export"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deps is what every command needs before it can touch customers.
type deps struct {
	cfg       *config.Config
	logger    *zap.Logger
	db        *gorm.DB
	customers *customer.Feature
}

// bootstrap loads configuration, connects to the database and builds the
// customer feature on top of the configured gateway.
func bootstrap(migrate bool) (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if !cfg.Database.IsValidDriver() {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	l = l.With(zap.String("driver", cfg.Database.Driver))

	if migrate && cfg.Database.AutoMigrate {
		if err := customer.Migrate(db); err != nil {
			return nil, err
		}
		l.Debug("Customer schema migrated")
	}

	gw, err := customer.NewGateway(cfg.Database.Gateway, db, l)
	if err != nil {
		return nil, err
	}

	return &deps{
		cfg:       cfg,
		logger:    l,
		db:        db,
		customers: customer.NewFeature(gw, l),
	}, nil
}

// exportFeature builds the export feature. Storage is only contacted when it is enabled.
func (d *deps) exportFeature() (*export.Feature, error) {
	var client storage.Client
	if d.cfg.Storage.Enabled {
		c, err := storage.NewClient(d.cfg.Storage)
		if err != nil {
			return nil, err
		}
		client = c
	}
	return export.NewFeature(d.customers.Service(), client, d.cfg.Storage, d.logger), nil
}

func confirmDestructiveAction(autoConfirm bool, prompt string) bool {
	if autoConfirm {
		return true
	}

	fmt.Printf("%s Type 'yes' to confirm: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
