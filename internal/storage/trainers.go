package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/misterclayt0n/gymtrainer/internal/apperr"
	"github.com/misterclayt0n/gymtrainer/internal/models"
)

// CreateTrainer inserts t and sets its ID. A taken login yields
// apperr.ErrDuplicateLogin.
func (s *Storage) CreateTrainer(ctx context.Context, t *models.Trainer) error {
	err := s.DB.QueryRowContext(ctx, s.rebind(
		`INSERT INTO trainers (login, password_hash, full_name)
		VALUES (?, ?, ?)
		RETURNING id`),
		t.Login,
		t.PasswordHash,
		t.FullName,
	).Scan(&t.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", apperr.ErrDuplicateLogin, t.Login)
		}
		return fmt.Errorf("failed to create trainer: %w", err)
	}
	return nil
}

func (s *Storage) GetTrainerByLogin(ctx context.Context, login string) (*models.Trainer, error) {
	var t models.Trainer
	err := s.DB.QueryRowContext(ctx, s.rebind(
		`SELECT id, login, password_hash, full_name
		FROM trainers WHERE login = ?`),
		login,
	).Scan(&t.ID, &t.Login, &t.PasswordHash, &t.FullName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("trainer %q", login)
		}
		return nil, fmt.Errorf("failed to get trainer: %w", err)
	}
	return &t, nil
}

func (s *Storage) CountTrainers(ctx context.Context) (int, error) {
	var n int
	if err := s.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM trainers").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count trainers: %w", err)
	}
	return n, nil
}

func (s *Storage) listTrainers(ctx context.Context) ([]models.Trainer, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT id, login, password_hash, full_name FROM trainers ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query trainers: %w", err)
	}
	defer rows.Close()

	var trainers []models.Trainer
	for rows.Next() {
		var t models.Trainer
		if err := rows.Scan(&t.ID, &t.Login, &t.PasswordHash, &t.FullName); err != nil {
			return nil, fmt.Errorf("failed to scan trainer: %w", err)
		}
		trainers = append(trainers, t)
	}
	return trainers, rows.Err()
}
