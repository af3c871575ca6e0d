package cmd

import (
	"fmt"

	"customer-service/core/database"
	"customer-service/feature/customer"
	"customer-service/feature/customer/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkOnly bool

// migrateCmd creates the customer table and verifies its columns.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or verify the customer table",
	Long: `Creates the customer table with a unique index on email and verifies that
all required columns exist. With --check the schema is only inspected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := bootstrap(false)
		if err != nil {
			return err
		}

		if checkOnly {
			err = customer.CheckSchema(d.db)
		} else {
			err = customer.Migrate(d.db)
		}

		table := models.Customer{}.TableName()
		cols, colErr := database.GetTableColumns(d.db, table)
		if colErr == nil {
			fmt.Printf("\n--- Table %s ---\n", table)
			for _, col := range cols {
				fmt.Printf("%-8s %-16s null=%-3s key=%s\n", col.Field, col.Type, col.Null, col.Key)
			}
			fmt.Println("---------------------")
		}

		if err != nil {
			return err
		}
		d.logger.Info("Customer schema is valid", zap.String("table", table))
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&checkOnly, "check", false, "Only verify the schema, do not migrate")
	RootCmd.AddCommand(migrateCmd)
}
