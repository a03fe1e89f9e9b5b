package progress

import (
	"sort"
	"strconv"
	"time"

	"github.com/misterclayt0n/gymtrainer/internal/models"
	"github.com/misterclayt0n/gymtrainer/internal/utils"
)

// FromStore converts stored clients and workouts into analytics input. The
// estimated 1RM of each workout comes from its weight and reps, ages are
// taken at asOf. Workouts of clients not in the list are ignored.
func FromStore(clients []models.Client, workouts []models.Workout, asOf time.Time) []Client {
	index := make(map[int64]int, len(clients))
	out := make([]Client, len(clients))
	for i, c := range clients {
		index[c.ID] = i
		out[i] = Client{
			ID:   strconv.FormatInt(c.ID, 10),
			Name: c.FullName,
			Age:  utils.AgeAt(c.DateOfBirth, asOf),
		}
	}

	sorted := make([]models.Workout, len(workouts))
	copy(sorted, workouts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].ID < sorted[j].ID
	})

	for _, w := range sorted {
		i, ok := index[w.ClientID]
		if !ok {
			continue
		}
		out[i].Entries = append(out[i].Entries, Entry{
			Exercise:  w.ExerciseName,
			Date:      w.Date,
			OneRepMax: utils.CalculateEpley1RM(w.WeightKg, w.Reps),
		})
	}
	return out
}
