package workouts

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/misterclayt0n/gymtrainer/internal/apperr"
	"github.com/misterclayt0n/gymtrainer/internal/auth"
	"github.com/misterclayt0n/gymtrainer/internal/models"
	"github.com/misterclayt0n/gymtrainer/internal/progress"
	"github.com/misterclayt0n/gymtrainer/internal/utils"
)

type workoutStore interface {
	GetClient(ctx context.Context, id int64) (*models.Client, error)
	ListClients(ctx context.Context, trainerID int64) ([]models.Client, error)
	CreateWorkout(ctx context.Context, w *models.Workout) error
	ListWorkouts(ctx context.Context, clientID int64) ([]models.Workout, error)
	ListTrainerWorkouts(ctx context.Context, trainerID int64) ([]models.Workout, error)
	WorkoutStats(ctx context.Context, clientID int64) (*models.ClientStats, error)
}

type AddWorkoutInput struct {
	ClientID int64
	Exercise string
	Sets     int
	Reps     int
	WeightKg float64
	Notes    string
}

type Service struct {
	store workoutStore
	// Now is the clock workouts are dated with.
	Now func() time.Time
}

func NewService(store workoutStore) *Service {
	return &Service{
		store: store,
		Now:   time.Now,
	}
}

// AddWorkout logs a workout for one of the trainer's clients, dated today.
func (s *Service) AddWorkout(ctx context.Context, sess *auth.Session, in AddWorkoutInput) (*models.Workout, error) {
	if err := auth.RequireSession(sess); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := s.ownedClient(ctx, sess, in.ClientID); err != nil {
		return nil, err
	}

	w := &models.Workout{
		ClientID:     in.ClientID,
		Date:         utils.Today(s.Now()),
		ExerciseName: strings.TrimSpace(in.Exercise),
		Sets:         in.Sets,
		Reps:         in.Reps,
		WeightKg:     in.WeightKg,
		Notes:        strings.TrimSpace(in.Notes),
	}
	if err := s.store.CreateWorkout(ctx, w); err != nil {
		return nil, err
	}

	log.Infof("workouts: logged %s for client %d (workout %d)", w.ExerciseName, w.ClientID, w.ID)
	return w, nil
}

// GetWorkouts returns the client's workouts, newest first.
func (s *Service) GetWorkouts(ctx context.Context, sess *auth.Session, clientID int64) ([]models.Workout, error) {
	if _, err := s.ownedClient(ctx, sess, clientID); err != nil {
		return nil, err
	}
	return s.store.ListWorkouts(ctx, clientID)
}

func (s *Service) GetStats(ctx context.Context, sess *auth.Session, clientID int64) (*models.ClientStats, error) {
	if _, err := s.ownedClient(ctx, sess, clientID); err != nil {
		return nil, err
	}
	return s.store.WorkoutStats(ctx, clientID)
}

// ProgressReport runs the progress analytics over all of the trainer's
// clients, with ages taken at asOf.
func (s *Service) ProgressReport(ctx context.Context, sess *auth.Session, asOf time.Time) (*progress.Report, error) {
	if err := auth.RequireSession(sess); err != nil {
		return nil, err
	}

	clients, err := s.store.ListClients(ctx, sess.TrainerID)
	if err != nil {
		return nil, err
	}
	workouts, err := s.store.ListTrainerWorkouts(ctx, sess.TrainerID)
	if err != nil {
		return nil, err
	}

	return progress.Analyze(progress.FromStore(clients, workouts, asOf)), nil
}

func (s *Service) ownedClient(ctx context.Context, sess *auth.Session, clientID int64) (*models.Client, error) {
	if err := auth.RequireSession(sess); err != nil {
		return nil, err
	}

	c, err := s.store.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if c.TrainerID != sess.TrainerID {
		return nil, fmt.Errorf("client %d: %w", clientID, apperr.ErrAuthorization)
	}
	return c, nil
}

func validateInput(in AddWorkoutInput) error {
	var err error
	if strings.TrimSpace(in.Exercise) == "" {
		err = multierr.Append(err, apperr.Validation("exercise name is required"))
	}
	if in.Sets < 1 {
		err = multierr.Append(err, apperr.Validation("sets must be at least 1"))
	}
	if in.Reps < 1 {
		err = multierr.Append(err, apperr.Validation("reps must be at least 1"))
	}
	switch {
	case math.IsNaN(in.WeightKg) || math.IsInf(in.WeightKg, 0):
		err = multierr.Append(err, apperr.Validation("weight must be a finite number"))
	case in.WeightKg < 0:
		err = multierr.Append(err, apperr.Validation("weight must not be negative"))
	}
	return err
}
