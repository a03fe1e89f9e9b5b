package cmd

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/gymtrainer/internal/console"
	"github.com/misterclayt0n/gymtrainer/internal/models"
	"github.com/misterclayt0n/gymtrainer/internal/utils"
)

var statusTrainer string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a trainer overview: clients, workouts, total volume, week streak and sets per exercise (current week)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		return withApp(ctx, true, func(a *app) error {
			trainer, err := a.st.GetTrainerByLogin(ctx, statusTrainer)
			if err != nil {
				return fmt.Errorf("failed to find trainer: %w", err)
			}
			clients, err := a.st.ListClients(ctx, trainer.ID)
			if err != nil {
				return fmt.Errorf("failed to retrieve clients: %w", err)
			}
			workouts, err := a.st.ListTrainerWorkouts(ctx, trainer.ID)
			if err != nil {
				return fmt.Errorf("failed to retrieve workouts: %w", err)
			}

			now := time.Now()
			s := summarize(workouts, now)

			console.BoxedHeader(os.Stdout, "STATUS: "+trainer.FullName)
			console.Metric(os.Stdout, "Clients", len(clients))
			console.Metric(os.Stdout, "Total workouts", len(workouts))
			console.Metric(os.Stdout, "Total volume lifted", fmt.Sprintf("%.1f kg", s.volume))
			last := "no data"
			if s.last != nil {
				last = utils.FormatDate(*s.last)
			}
			console.Metric(os.Stdout, "Last workout", last)
			console.Metric(os.Stdout, "Week streak", fmt.Sprintf("%d weeks", computeWeekStreak(workouts, now)))
			fmt.Println()

			console.Section(os.Stdout, "Sets per exercise (current week):")
			if len(s.setsThisWeek) == 0 {
				console.Empty(os.Stdout, "no workouts this week")
			}
			var exercises []string
			for ex := range s.setsThisWeek {
				exercises = append(exercises, ex)
			}
			sort.Strings(exercises)
			for _, ex := range exercises {
				console.Bullet(os.Stdout, ex, "%d sets", s.setsThisWeek[ex])
			}
			fmt.Println()
			return nil
		})
	},
}

type trainerSummary struct {
	volume       float64
	last         *time.Time
	setsThisWeek map[string]int
}

func summarize(workouts []models.Workout, now time.Time) trainerSummary {
	s := trainerSummary{setsThisWeek: make(map[string]int)}
	currentYear, currentWeek := now.ISOWeek()

	for i, w := range workouts {
		// Volume is weight × reps over every set.
		if w.WeightKg > 0 && w.Reps > 0 {
			s.volume += w.WeightKg * float64(w.Reps*w.Sets)
		}
		if s.last == nil || w.Date.After(*s.last) {
			s.last = &workouts[i].Date
		}
		year, week := w.Date.ISOWeek()
		if year == currentYear && week == currentWeek {
			s.setsThisWeek[w.ExerciseName] += w.Sets
		}
	}
	return s
}

// computeWeekStreak computes how many consecutive ISO weeks (ending with the
// week of now) have at least one workout.
func computeWeekStreak(workouts []models.Workout, now time.Time) int {
	weekSet := make(map[string]bool)
	for _, w := range workouts {
		year, week := w.Date.ISOWeek()
		weekSet[fmt.Sprintf("%d-%02d", year, week)] = true
	}

	streak := 0
	year, week := now.ISOWeek()
	for weekSet[fmt.Sprintf("%d-%02d", year, week)] {
		streak++
		now = now.AddDate(0, 0, -7)
		year, week = now.ISOWeek()
	}
	return streak
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().StringVarP(&statusTrainer, "trainer", "t", "", "Trainer login")
	_ = statusCmd.MarkFlagRequired("trainer")
}
