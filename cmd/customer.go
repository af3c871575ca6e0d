package cmd

import (
	"fmt"
	"strconv"

	"customer-service/feature/customer/models"

	"github.com/spf13/cobra"
)

var (
	customerName  string
	customerEmail string
	customerAge   int
	deleteConfirm bool
)

// customerCmd is the parent command for customer operations.
var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage customers from the command line",
	Long: `Runs the same operations as the HTTP API against the configured database.

Examples:
  customer list
  customer get 1
  customer add --name Alex --email alex@gmail.com --age 33
  customer update 1 --email alex.new@gmail.com
  customer delete 1 --yes`,
}

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all customers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := bootstrap(false)
		if err != nil {
			return err
		}

		customers, err := d.customers.Service().ListCustomers(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%-6s %-24s %-32s %s\n", "ID", "NAME", "EMAIL", "AGE")
		for _, c := range customers {
			fmt.Printf("%-6d %-24s %-32s %d\n", c.ID, c.Name, c.Email, c.Age)
		}
		fmt.Printf("\n%d customer(s)\n", len(customers))
		return nil
	},
}

var customerGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a single customer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseCustomerID(args[0])
		if err != nil {
			return err
		}

		d, err := bootstrap(false)
		if err != nil {
			return err
		}

		c, err := d.customers.Service().GetCustomer(cmd.Context(), id)
		if err != nil {
			return err
		}
		printCustomer(c)
		return nil
	},
}

var customerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new customer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := bootstrap(false)
		if err != nil {
			return err
		}

		return d.customers.Service().AddCustomer(cmd.Context(), models.Registration{
			Name:  customerName,
			Email: customerEmail,
			Age:   customerAge,
		})
	},
}

var customerUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Change name, email or age of a customer",
	Long:  `Only the flags that are given are applied. Giving values identical to the stored ones is rejected.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseCustomerID(args[0])
		if err != nil {
			return err
		}

		var change models.ChangeRequest
		if cmd.Flags().Changed("name") {
			change.Name = models.Some(customerName)
		}
		if cmd.Flags().Changed("email") {
			change.Email = models.Some(customerEmail)
		}
		if cmd.Flags().Changed("age") {
			change.Age = models.Some(customerAge)
		}

		d, err := bootstrap(false)
		if err != nil {
			return err
		}

		c, err := d.customers.Service().UpdateCustomer(cmd.Context(), id, change)
		if err != nil {
			return err
		}
		printCustomer(c)
		return nil
	},
}

var customerDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a customer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseCustomerID(args[0])
		if err != nil {
			return err
		}

		d, err := bootstrap(false)
		if err != nil {
			return err
		}

		if !confirmDestructiveAction(deleteConfirm, fmt.Sprintf("Delete customer %d?", id)) {
			d.logger.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}
		return d.customers.Service().RemoveCustomer(cmd.Context(), id)
	},
}

func init() {
	for _, c := range []*cobra.Command{customerAddCmd, customerUpdateCmd} {
		c.Flags().StringVar(&customerName, "name", "", "Customer name")
		c.Flags().StringVar(&customerEmail, "email", "", "Customer email")
		c.Flags().IntVar(&customerAge, "age", 0, "Customer age")
	}
	_ = customerAddCmd.MarkFlagRequired("name")
	_ = customerAddCmd.MarkFlagRequired("email")
	customerDeleteCmd.Flags().BoolVar(&deleteConfirm, "yes", false, "Delete without asking for confirmation")

	customerCmd.AddCommand(customerListCmd, customerGetCmd, customerAddCmd, customerUpdateCmd, customerDeleteCmd)
	RootCmd.AddCommand(customerCmd)
}

func parseCustomerID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid customer id %q", raw)
	}
	return id, nil
}

func printCustomer(c *models.Customer) {
	fmt.Println("\n--- Customer ---")
	fmt.Printf("ID:     %d\n", c.ID)
	fmt.Printf("Name:   %s\n", c.Name)
	fmt.Printf("Email:  %s\n", c.Email)
	fmt.Printf("Age:    %d\n", c.Age)
	fmt.Println("----------------")
}
