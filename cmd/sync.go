package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/gymtrainer/internal/config"
	"github.com/misterclayt0n/gymtrainer/internal/storage"
)

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export all the database data to a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), true, func(a *app) error {
			var outputFile string
			if len(args) == 1 {
				outputFile = args[0]
			} else {
				dir, err := config.GetConfigDir()
				if err != nil {
					return err
				}
				if outputFile, err = storage.GetDBExportPath(dir); err != nil {
					return fmt.Errorf("failed to prepare export path: %w", err)
				}
			}

			if err := a.st.ExportDBToTOML(cmd.Context(), outputFile); err != nil {
				return fmt.Errorf("error exporting database: %w", err)
			}

			fmt.Printf("✅ Database exported successfully to %s\n", outputFile)
			return nil
		})
	},
}

var buildDBCmd = &cobra.Command{
	Use:   "build-db [dump-file]",
	Short: "Build the entire database from the given TOML dump file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), true, func(a *app) error {
			if err := a.st.ImportDBFromTOML(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to build database: %w", err)
			}
			fmt.Println("✅ Database built successfully from TOML dump.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(buildDBCmd)
}
