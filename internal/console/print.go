package console

import (
	"fmt"
	"io"
	"time"

	"github.com/misterclayt0n/gymtrainer/internal/models"
	"github.com/misterclayt0n/gymtrainer/internal/progress"
	"github.com/misterclayt0n/gymtrainer/internal/utils"
)

func Clients(w io.Writer, clients []models.Client) {
	if len(clients) == 0 {
		Empty(w, "No clients found.")
		return
	}
	for _, c := range clients {
		phone := c.Phone
		if phone == "" {
			phone = "-"
		}
		fmt.Fprintf(w, "  %s %s | %s: %s | %s: %s\n",
			cyanBold(fmt.Sprintf("[%d]", c.ID)),
			c.FullName,
			blue("Born"), utils.FormatDate(c.DateOfBirth),
			blue("Phone"), phone,
		)
	}
}

func Workouts(w io.Writer, workouts []models.Workout) {
	if len(workouts) == 0 {
		Empty(w, "No workouts logged yet.")
		return
	}
	for _, wo := range workouts {
		fmt.Fprintf(w, "  %s %s: %d × %d @ %.1fkg (%s: %.1fkg)\n",
			blue(utils.FormatDate(wo.Date)),
			magentaBold(wo.ExerciseName),
			wo.Sets, wo.Reps, wo.WeightKg,
			yellowBold("1RM"), utils.CalculateEpley1RM(wo.WeightKg, wo.Reps),
		)
		if wo.Notes != "" {
			fmt.Fprintf(w, "      %s: %s\n", magenta("Notes"), wo.Notes)
		}
	}
}

func Stats(w io.Writer, client *models.Client, stats *models.ClientStats) {
	BoxedHeader(w, "STATS: "+client.FullName)
	Metric(w, "Total workouts", stats.TotalWorkouts)
	last := "no data"
	if stats.LastWorkout != nil {
		last = utils.FormatDate(*stats.LastWorkout)
	}
	Metric(w, "Last workout", last)
	fmt.Fprintln(w)

	Section(w, "Popular exercises:")
	if len(stats.Popular) == 0 {
		Empty(w, "no data")
		return
	}
	for _, p := range stats.Popular {
		Bullet(w, p.ExerciseName, "%d times", p.Count)
	}
}

// Report prints the progress analytics. asOf is shown in the header when set.
func Report(w io.Writer, r *progress.Report, asOf time.Time) {
	title := "PROGRESS REPORT"
	if !asOf.IsZero() {
		title += " " + utils.FormatDate(asOf)
	}
	BoxedHeader(w, title)
	Metric(w, "Client/exercise pairs", len(r.Records))
	fmt.Fprintln(w)

	Section(w, "Progress per exercise:")
	if len(r.Exercises) == 0 {
		Empty(w, "no data")
	}
	for _, e := range r.Exercises {
		Bullet(w, e.Exercise, "mean %.1f%%, max %.1f%%, min %.1f%% (%d clients)", e.Mean, e.Max, e.Min, e.Count)
	}
	fmt.Fprintln(w)

	Section(w, fmt.Sprintf("Top %d clients:", progress.TopClients))
	if len(r.TopClients) == 0 {
		Empty(w, "no data")
	}
	for i, c := range r.TopClients {
		fmt.Fprintf(w, "  %d. %s (age %d): %.1f%%\n", i+1, magentaBold(c.Name), c.Age, c.AvgProgress)
	}
	fmt.Fprintln(w)

	Section(w, fmt.Sprintf("Exercise efficacy (progress > %.0f%%):", progress.SuccessThreshold))
	if len(r.Efficacy) == 0 {
		Empty(w, "no data")
	}
	for _, e := range r.Efficacy {
		Bullet(w, e.Exercise, "success %.0f%%, mean %.1f%% over %d pairs", e.SuccessRate*100, e.Mean, e.Count)
	}
	fmt.Fprintln(w)

	Section(w, "Age cohorts:")
	for _, c := range r.Cohorts {
		if !c.HasData {
			Bullet(w, c.Label, "no data")
			continue
		}
		Bullet(w, c.Label, "mean %.1f%% (%d clients)", c.Mean, c.Members)
	}
}
