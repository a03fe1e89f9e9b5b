package cmd

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/gymtrainer/internal/console"
	"github.com/misterclayt0n/gymtrainer/internal/generator"
	"github.com/misterclayt0n/gymtrainer/internal/progress"
)

var analyzeIn string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Print the progress report for a dataset file or a freshly generated dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), false, func(a *app) error {
			var ds *generator.Dataset
			if analyzeIn != "" {
				var err error
				if ds, err = generator.ReadTOML(analyzeIn); err != nil {
					return err
				}
			} else {
				if genClients < 1 || genWorkouts < 1 {
					return fmt.Errorf("--clients and --workouts must be positive")
				}
				r, seed := newRand(genSeed)
				ds = generator.Generate(r, generator.Options{Clients: genClients, Workouts: genWorkouts}, time.Now())
				log.Infof("analyzing %d generated clients (seed %d)", len(ds.Clients), seed)
			}

			report := progress.Analyze(ds.ProgressClients())
			console.Report(os.Stdout, report, ds.GeneratedAt)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	addDatasetFlags(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeIn, "in", "i", "", "Read the dataset from this TOML file")
}
