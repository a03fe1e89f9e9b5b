package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/gymtrainer/internal/auth"
	"github.com/misterclayt0n/gymtrainer/internal/console"
	"github.com/misterclayt0n/gymtrainer/internal/roster"
	"github.com/misterclayt0n/gymtrainer/internal/shell"
	"github.com/misterclayt0n/gymtrainer/internal/workouts"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive trainer menu (the default command)",
	RunE:  runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return withApp(ctx, true, func(a *app) error {
		created, err := a.seedSampleTrainer(ctx)
		if err != nil {
			return err
		}

		console.BoxedHeader(os.Stdout, "GYM TRAINER")
		if created {
			fmt.Printf("Sample trainer created: %s / %s\n", auth.SampleLogin, auth.SamplePassword)
		}

		sh := shell.New(os.Stdin, os.Stdout, shell.Deps{
			Auth:     a.authService(),
			Roster:   roster.NewService(a.st),
			Workouts: workouts.NewService(a.st),
			Ping:     a.st.Ping,
		})
		return sh.Run(ctx)
	})
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
