package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/misterclayt0n/gymtrainer/internal/apperr"
	"github.com/misterclayt0n/gymtrainer/internal/models"
	"github.com/misterclayt0n/gymtrainer/internal/utils"
)

const clientColumns = "id, full_name, date_of_birth, phone, trainer_id"

func (s *Storage) CreateClient(ctx context.Context, c *models.Client) error {
	err := s.DB.QueryRowContext(ctx, s.rebind(
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
	return nil
}

func (s *Storage) GetClient(ctx context.Context, id int64) (*models.Client, error) {
	row := s.DB.QueryRowContext(ctx, s.rebind(
		"SELECT "+clientColumns+" FROM clients WHERE id = ?"), id)

	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("client %d", id)
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return c, nil
}

// ListClients returns the trainer's clients ordered by name.
func (s *Storage) ListClients(ctx context.Context, trainerID int64) ([]models.Client, error) {
	return s.queryClients(ctx,
		"SELECT "+clientColumns+` FROM clients
		WHERE trainer_id = ?
		ORDER BY full_name, id`,
		trainerID,
	)
}

// SearchClients returns the trainer's clients whose name contains term.
func (s *Storage) SearchClients(ctx context.Context, trainerID int64, term string) ([]models.Client, error) {
	return s.queryClients(ctx,
		"SELECT "+clientColumns+` FROM clients
		WHERE trainer_id = ? AND full_name LIKE ? ESCAPE '\'
		ORDER BY full_name, id`,
		trainerID,
		"%"+escapeLike(term)+"%",
	)
}

func (s *Storage) listAllClients(ctx context.Context) ([]models.Client, error) {
	return s.queryClients(ctx, "SELECT "+clientColumns+" FROM clients ORDER BY id")
}

func (s *Storage) queryClients(ctx context.Context, query string, args ...any) ([]models.Client, error) {
	rows, err := s.DB.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanClient(row scanner) (*models.Client, error) {
	var c models.Client
	var dob string
	if err := row.Scan(&c.ID, &c.FullName, &dob, &c.Phone, &c.TrainerID); err != nil {
		return nil, err
	}

	parsed, err := utils.ParseDate(dob)
	if err != nil {
		return nil, fmt.Errorf("client %d has malformed date of birth %q: %w", c.ID, dob, err)
	}
	c.DateOfBirth = parsed
	return &c, nil
}
