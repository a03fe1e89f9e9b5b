package generator

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/misterclayt0n/gymtrainer/internal/models"
)

func (ds *Dataset) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(ds); err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	return nil
}

// WriteTOML writes the dataset to path, creating parent directories.
func (ds *Dataset) WriteTOML(path string) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create dataset directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	return ds.Encode(f)
}

func ReadTOML(path string) (*Dataset, error) {
	var ds Dataset
	if _, err := toml.DecodeFile(path, &ds); err != nil {
		return nil, fmt.Errorf("failed to decode dataset %s: %w", path, err)
	}
	// Hand-edited files may list workouts out of order.
	for i := range ds.Clients {
		w := ds.Clients[i].Workouts
		sort.SliceStable(w, func(a, b int) bool { return w[a].Date.Before(w[b].Date) })
	}
	return &ds, nil
}

type clientSeeder interface {
	CreateClientWithWorkouts(ctx context.Context, c *models.Client, workouts []models.Workout) error
}

// SeedStore inserts every client of the dataset, with its workouts, under
// the given trainer. Each client goes in with its own transaction.
func SeedStore(ctx context.Context, store clientSeeder, trainerID int64, ds *Dataset) (int, error) {
	seeded := 0
	for _, c := range ds.Clients {
		client := &models.Client{
			FullName:    c.FullName,
			DateOfBirth: c.DateOfBirth,
			Phone:       c.Phone,
			TrainerID:   trainerID,
		}
		workouts := make([]models.Workout, len(c.Workouts))
		for i, w := range c.Workouts {
			workouts[i] = models.Workout{
				Date:         w.Date,
				ExerciseName: w.Exercise,
				Sets:         w.Sets,
				Reps:         w.Reps,
				WeightKg:     w.WeightKg,
			}
		}

		if err := store.CreateClientWithWorkouts(ctx, client, workouts); err != nil {
			return seeded, fmt.Errorf("failed to seed client %q: %w", c.FullName, err)
		}
		seeded++
	}

	log.Infof("generator: seeded %d clients for trainer %d", seeded, trainerID)
	return seeded, nil
}
