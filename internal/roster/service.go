package roster

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/misterclayt0n/gymtrainer/internal/apperr"
	"github.com/misterclayt0n/gymtrainer/internal/auth"
	"github.com/misterclayt0n/gymtrainer/internal/models"
	"github.com/misterclayt0n/gymtrainer/internal/utils"
)

type clientStore interface {
	CreateClient(ctx context.Context, c *models.Client) error
	GetClient(ctx context.Context, id int64) (*models.Client, error)
	ListClients(ctx context.Context, trainerID int64) ([]models.Client, error)
	SearchClients(ctx context.Context, trainerID int64, term string) ([]models.Client, error)
}

// Service manages the clients of the logged in trainer.
type Service struct {
	store clientStore
}

func NewService(store clientStore) *Service {
	return &Service{store: store}
}

// AddClient adds a client owned by the session's trainer. dob is a YYYY-MM-DD date.
func (s *Service) AddClient(ctx context.Context, sess *auth.Session, fullName, dob, phone string) (*models.Client, error) {
	if err := auth.RequireSession(sess); err != nil {
		return nil, err
	}

	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, apperr.Validation("client name is required")
	}
	birth, err := utils.ParseDate(strings.TrimSpace(dob))
	if err != nil {
		return nil, apperr.Validation("date of birth %q must be YYYY-MM-DD", dob)
	}

	c := &models.Client{
		FullName:    fullName,
		DateOfBirth: birth,
		Phone:       strings.TrimSpace(phone),
		TrainerID:   sess.TrainerID,
	}
	if err := s.store.CreateClient(ctx, c); err != nil {
		return nil, err
	}

	log.Infof("roster: trainer %d added client %d", sess.TrainerID, c.ID)
	return c, nil
}

func (s *Service) ListClients(ctx context.Context, sess *auth.Session) ([]models.Client, error) {
	if err := auth.RequireSession(sess); err != nil {
		return nil, err
	}
	return s.store.ListClients(ctx, sess.TrainerID)
}

// SearchClients returns the trainer's clients whose name contains term.
func (s *Service) SearchClients(ctx context.Context, sess *auth.Session, term string) ([]models.Client, error) {
	if err := auth.RequireSession(sess); err != nil {
		return nil, err
	}
	return s.store.SearchClients(ctx, sess.TrainerID, term)
}

// GetClient returns a client owned by the session's trainer.
func (s *Service) GetClient(ctx context.Context, sess *auth.Session, id int64) (*models.Client, error) {
	if err := auth.RequireSession(sess); err != nil {
		return nil, err
	}

	c, err := s.store.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.TrainerID != sess.TrainerID {
		return nil, fmt.Errorf("client %d: %w", id, apperr.ErrAuthorization)
	}
	return c, nil
}
