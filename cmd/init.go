package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/gymtrainer/internal/auth"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database schema and the sample trainer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), true, func(a *app) error {
			created, err := a.seedSampleTrainer(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}

			fmt.Printf("✅ Database initialized successfully at %s\n", a.cfg.DB.ConnectionString)
			if created {
				fmt.Printf("   Sample trainer: %s / %s\n", auth.SampleLogin, auth.SamplePassword)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
