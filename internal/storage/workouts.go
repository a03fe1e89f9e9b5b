package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/misterclayt0n/gymtrainer/internal/models"
	"github.com/misterclayt0n/gymtrainer/internal/utils"
)

const workoutColumns = "id, client_id, date, exercise_name, sets, reps, weight_kg, notes"

// PopularExercisesLimit is how many exercises WorkoutStats reports.
const PopularExercisesLimit = 5

func (s *Storage) CreateWorkout(ctx context.Context, w *models.Workout) error {
	return createWorkout(ctx, s.DB, s.rebind, w)
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func createWorkout(ctx context.Context, db queryRower, rebind func(string) string, w *models.Workout) error {
	err := db.QueryRowContext(ctx, rebind(
		`INSERT INTO workouts (client_id, date, exercise_name, sets, reps, weight_kg, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`),
		w.ClientID,
		utils.FormatDate(w.Date),
		w.ExerciseName,
		w.Sets,
		w.Reps,
		w.WeightKg,
		w.Notes,
	).Scan(&w.ID)
	if err != nil {
		return fmt.Errorf("failed to create workout: %w", err)
	}
	return nil
}

// ListWorkouts returns the client's workouts, newest first.
func (s *Storage) ListWorkouts(ctx context.Context, clientID int64) ([]models.Workout, error) {
	return s.queryWorkouts(ctx,
		"SELECT "+workoutColumns+` FROM workouts
		WHERE client_id = ?
		ORDER BY date DESC, id DESC`,
		clientID,
	)
}

// ListTrainerWorkouts returns every workout of the trainer's clients grouped
// by client and in chronological order within each client.
func (s *Storage) ListTrainerWorkouts(ctx context.Context, trainerID int64) ([]models.Workout, error) {
	return s.queryWorkouts(ctx,
		`SELECT w.id, w.client_id, w.date, w.exercise_name, w.sets, w.reps, w.weight_kg, w.notes
		FROM workouts w
		JOIN clients c ON c.id = w.client_id
		WHERE c.trainer_id = ?
		ORDER BY w.client_id, w.date, w.id`,
		trainerID,
	)
}

func (s *Storage) listAllWorkouts(ctx context.Context) ([]models.Workout, error) {
	return s.queryWorkouts(ctx, "SELECT "+workoutColumns+" FROM workouts ORDER BY id")
}

// WorkoutStats counts the client's workouts, finds the latest date and the
// most frequent exercises. Equal counts are ordered by exercise name.
func (s *Storage) WorkoutStats(ctx context.Context, clientID int64) (*models.ClientStats, error) {
	stats := &models.ClientStats{Popular: []models.ExerciseCount{}}

	var last sql.NullString
	err := s.DB.QueryRowContext(ctx, s.rebind(
		`SELECT COUNT(*), MAX(date) FROM workouts WHERE client_id = ?`),
		clientID,
	).Scan(&stats.TotalWorkouts, &last)
	if err != nil {
		return nil, fmt.Errorf("failed to count workouts: %w", err)
	}

	if last.Valid && last.String != "" {
		d, err := utils.ParseDate(last.String)
		if err != nil {
			return nil, fmt.Errorf("malformed workout date %q: %w", last.String, err)
		}
		stats.LastWorkout = &d
	}

	rows, err := s.DB.QueryContext(ctx, s.rebind(
		`SELECT exercise_name, COUNT(*) AS cnt
		FROM workouts
		WHERE client_id = ?
		GROUP BY exercise_name
		ORDER BY cnt DESC, exercise_name ASC
		LIMIT ?`),
		clientID,
		PopularExercisesLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ec models.ExerciseCount
		if err := rows.Scan(&ec.ExerciseName, &ec.Count); err != nil {
			return nil, fmt.Errorf("failed to scan exercise count: %w", err)
		}
		stats.Popular = append(stats.Popular, ec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *Storage) queryWorkouts(ctx context.Context, query string, args ...any) ([]models.Workout, error) {
	rows, err := s.DB.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query workouts: %w", err)
	}
	defer rows.Close()

	workouts := []models.Workout{}
	for rows.Next() {
		var w models.Workout
		var date string
		if err := rows.Scan(
			&w.ID,
			&w.ClientID,
			&date,
			&w.ExerciseName,
			&w.Sets,
			&w.Reps,
			&w.WeightKg,
			&w.Notes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan workout: %w", err)
		}
		if w.Date, err = utils.ParseDate(date); err != nil {
			return nil, fmt.Errorf("workout %d has malformed date %q: %w", w.ID, date, err)
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

// CreateClientWithWorkouts inserts c and its workouts in one transaction,
// keeping the workouts' own dates.
func (s *Storage) CreateClientWithWorkouts(ctx context.Context, c *models.Client, workouts []models.Workout) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, s.rebind(
		`INSERT INTO clients (full_name, date_of_birth, phone, trainer_id)
		VALUES (?, ?, ?, ?)
		RETURNING id`),
		c.FullName,
		utils.FormatDate(c.DateOfBirth),
		c.Phone,
		c.TrainerID,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	for i := range workouts {
		workouts[i].ClientID = c.ID
		if err := createWorkout(ctx, tx, s.rebind, &workouts[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
