package cmd

import (
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	seedCount int
	seedValue uint64
)

// seedCmd inserts random customers.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert random customers",
	Long:  `Inserts random customers. Customers whose generated email is already taken are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := bootstrap(true)
		if err != nil {
			return err
		}

		seed := seedValue
		if !cmd.Flags().Changed("seed") {
			seed = rand.Uint64()
		}
		r := rand.New(rand.NewPCG(seed, seed))

		added, err := d.customers.Service().Seed(cmd.Context(), seedCount, r)
		if err != nil {
			return err
		}
		d.logger.Info("Seeding finished", zap.Int("requested", seedCount), zap.Int("added", added))
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 1, "Number of customers to insert")
	seedCmd.Flags().Uint64Var(&seedValue, "seed", 0, "Random seed for reproducible data")
	RootCmd.AddCommand(seedCmd)
}
