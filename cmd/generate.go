package cmd

import (
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/gymtrainer/internal/generator"
)

var (
	genClients  int
	genWorkouts int
	genSeed     int64
	genOut      string
	genTrainer  string
)

// newRand returns a source seeded with seed, or with the clock when seed is 0.
func newRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

func addDatasetFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&genClients, "clients", "n", generator.DefaultClients, "Number of clients to generate")
	cmd.Flags().IntVarP(&genWorkouts, "workouts", "m", generator.DefaultWorkouts, "Workouts per client")
	cmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed (0 picks one from the clock)")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic client/workout dataset",
	Long: "Generate a synthetic client/workout dataset. The dataset is written to --out " +
		"and/or added to the database under the trainer given with --trainer.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if genClients < 1 || genWorkouts < 1 {
			return fmt.Errorf("--clients and --workouts must be positive")
		}

		ctx := cmd.Context()
		return withApp(ctx, genTrainer != "", func(a *app) error {
			r, seed := newRand(genSeed)
			ds := generator.Generate(r, generator.Options{Clients: genClients, Workouts: genWorkouts}, time.Now())
			log.Infof("generated %d clients with seed %d", len(ds.Clients), seed)

			out := genOut
			if out == "" && genTrainer == "" {
				out = "dataset.toml"
			}
			if out != "" {
				if err := ds.WriteTOML(out); err != nil {
					return err
				}
				fmt.Printf("✅ Dataset written to %s (seed %d)\n", out, seed)
			}

			if genTrainer != "" {
				trainer, err := a.st.GetTrainerByLogin(ctx, genTrainer)
				if err != nil {
					return fmt.Errorf("failed to find trainer: %w", err)
				}
				n, err := generator.SeedStore(ctx, a.st, trainer.ID, ds)
				if err != nil {
					return err
				}
				fmt.Printf("✅ Added %d clients to trainer %s\n", n, trainer.Login)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addDatasetFlags(generateCmd)
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "Write the dataset to this TOML file (default dataset.toml)")
	generateCmd.Flags().StringVar(&genTrainer, "trainer", "", "Add the dataset to the database under this trainer login")
}
