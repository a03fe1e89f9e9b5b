package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/misterclayt0n/gymtrainer/internal/models"
	"github.com/misterclayt0n/gymtrainer/internal/utils"
)

// Dump reads every trainer, client and workout ordered by id.
func (s *Storage) Dump(ctx context.Context) (*models.Dump, error) {
	trainers, err := s.listTrainers(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := s.listAllClients(ctx)
	if err != nil {
		return nil, err
	}
	workouts, err := s.listAllWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	return &models.Dump{Trainers: trainers, Clients: clients, Workouts: workouts}, nil
}

// ExportTOML writes the whole database as TOML to w.
func (s *Storage) ExportTOML(ctx context.Context, w io.Writer) error {
	dump, err := s.Dump(ctx)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(w).Encode(dump); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}
	return nil
}

// ExportDBToTOML exports all data into the TOML file at outputPath.
func (s *Storage) ExportDBToTOML(ctx context.Context, outputPath string) (err error) {
	// Make the output path absolute relative to the current directory.
	outputPath, err = filepath.Abs(outputPath)
	if err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	return s.ExportTOML(ctx, f)
}

// ImportDBFromTOML reads the TOML dump at filePath and rebuilds the database
// by deleting current rows from all tables and inserting the rows from the dump.
func (s *Storage) ImportDBFromTOML(ctx context.Context, filePath string) error {
	var dump models.Dump
	if _, err := toml.DecodeFile(filePath, &dump); err != nil {
		return fmt.Errorf("decoding TOML %s: %w", filePath, err)
	}
	return s.Restore(ctx, &dump)
}

// Restore replaces the contents of every table with dump in one transaction.
func (s *Storage) Restore(ctx context.Context, dump *models.Dump) (err error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); !errors.Is(rbErr, sql.ErrTxDone) {
			err = multierr.Append(err, rbErr)
		}
	}()

	// Children first so foreign keys hold throughout.
	for _, table := range []string{"workouts", "clients", "trainers"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing table %s: %w", table, err)
		}
	}

	for _, t := range dump.Trainers {
		if _, err = tx.ExecContext(ctx, s.rebind(
			`INSERT INTO trainers (id, login, password_hash, full_name) VALUES (?, ?, ?, ?)`),
			t.ID, t.Login, t.PasswordHash, t.FullName,
		); err != nil {
			return fmt.Errorf("inserting trainer %d: %w", t.ID, err)
		}
	}
	for _, c := range dump.Clients {
		if _, err = tx.ExecContext(ctx, s.rebind(
			`INSERT INTO clients (id, full_name, date_of_birth, phone, trainer_id) VALUES (?, ?, ?, ?, ?)`),
			c.ID, c.FullName, utils.FormatDate(c.DateOfBirth), c.Phone, c.TrainerID,
		); err != nil {
			return fmt.Errorf("inserting client %d: %w", c.ID, err)
		}
	}
	for _, w := range dump.Workouts {
		if _, err = tx.ExecContext(ctx, s.rebind(
			`INSERT INTO workouts (id, client_id, date, exercise_name, sets, reps, weight_kg, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
			w.ID, w.ClientID, utils.FormatDate(w.Date), w.ExerciseName, w.Sets, w.Reps, w.WeightKg, w.Notes,
		); err != nil {
			return fmt.Errorf("inserting workout %d: %w", w.ID, err)
		}
	}

	// Explicit ids leave PostgreSQL sequences behind.
	if s.dialect == dialectPostgres {
		for _, table := range []string{"trainers", "clients", "workouts"} {
			if _, err = tx.ExecContext(ctx, fmt.Sprintf(
				`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM %[1]s`,
				table,
			)); err != nil {
				return fmt.Errorf("resetting sequence of %s: %w", table, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	log.Infof("storage: restored %d trainers, %d clients, %d workouts",
		len(dump.Trainers), len(dump.Clients), len(dump.Workouts))
	return nil
}

// GetDBExportPath returns the default file the TOML dump is saved to.
func GetDBExportPath(configDir string) (string, error) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "db_dump.toml"), nil
}
