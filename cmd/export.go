package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listExports bool

// exportCmd uploads a customer snapshot to object storage.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all customers to object storage",
	Long:  `Uploads a JSON snapshot of the customer table to the configured bucket. Requires STORAGE_ENABLED=true.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := bootstrap(false)
		if err != nil {
			return err
		}

		f, err := d.exportFeature()
		if err != nil {
			return err
		}
		if !f.IsEnabled() {
			return fmt.Errorf("storage is disabled; set STORAGE_ENABLED=true to export")
		}

		if listExports {
			objects, err := f.Service().List(cmd.Context())
			if err != nil {
				return err
			}
			for _, o := range objects {
				fmt.Println(o)
			}
			return nil
		}

		report, err := f.Service().Export(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println("\n--- Export ---")
		fmt.Printf("Object:     %s/%s\n", d.cfg.Storage.Bucket, report.Object)
		fmt.Printf("Customers:  %d\n", report.Count)
		fmt.Printf("Size:       %d bytes\n", report.Size)
		fmt.Println("--------------")
		return nil
	},
}

func init() {
	exportCmd.Flags().BoolVar(&listExports, "list", false, "List existing exports instead of creating one")
	RootCmd.AddCommand(exportCmd)
}
