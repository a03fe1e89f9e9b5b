package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/crypto/bcrypt"

	"github.com/misterclayt0n/gymtrainer/internal/apperr"
	"github.com/misterclayt0n/gymtrainer/internal/models"
)

const (
	MinLoginLength    = 3
	MinPasswordLength = 4
	// bcrypt ignores everything past 72 bytes, so longer passwords are refused.
	MaxPasswordBytes = 72

	SampleLogin    = "trainer1"
	SamplePassword = "1234"
	SampleFullName = "Ivanov Alexey"
)

// Session is the authenticated trainer. The caller owns it and drops it on logout.
type Session struct {
	TrainerID int64
	Login     string
	FullName  string
}

// RequireSession fails with apperr.ErrAuthorization when nobody is logged in.
func RequireSession(sess *Session) error {
	if sess == nil {
		return fmt.Errorf("no trainer logged in: %w", apperr.ErrAuthorization)
	}
	return nil
}

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=auth_test
type trainerStore interface {
	CreateTrainer(ctx context.Context, t *models.Trainer) error
	GetTrainerByLogin(ctx context.Context, login string) (*models.Trainer, error)
	CountTrainers(ctx context.Context) (int, error)
}

type Service struct {
	store trainerStore
	cost  int
}

func NewService(store trainerStore, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		store: store,
		cost:  bcryptCost,
	}
}

// Register creates a trainer with a unique login and a bcrypt hash of the password.
func (s *Service) Register(ctx context.Context, login, password, fullName string) (*models.Trainer, error) {
	if err := validateRegistration(login, password, fullName); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	trainer := &models.Trainer{
		Login:        login,
		PasswordHash: string(hash),
		FullName:     fullName,
	}
	if err := s.store.CreateTrainer(ctx, trainer); err != nil {
		return nil, err
	}

	log.Infof("auth: registered trainer %q (id %d)", trainer.Login, trainer.ID)
	return trainer, nil
}

// Login checks the credentials and returns a session for the trainer.
// Unknown logins and wrong passwords fail the same way.
func (s *Service) Login(ctx context.Context, login, password string) (*Session, error) {
	trainer, err := s.store.GetTrainerByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			log.Debugf("auth: login attempt for unknown trainer %q", login)
			return nil, fmt.Errorf("login %q: %w", login, apperr.ErrAuthentication)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(trainer.PasswordHash), []byte(password)); err != nil {
		log.Debugf("auth: wrong password for trainer %q", login)
		return nil, fmt.Errorf("login %q: %w", login, apperr.ErrAuthentication)
	}

	log.Infof("auth: trainer %q logged in", login)
	return &Session{
		TrainerID: trainer.ID,
		Login:     trainer.Login,
		FullName:  trainer.FullName,
	}, nil
}

// EnsureSampleTrainer registers the sample trainer when the store has no trainers.
// It reports whether the trainer was created.
func (s *Service) EnsureSampleTrainer(ctx context.Context) (bool, error) {
	n, err := s.store.CountTrainers(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	if _, err := s.Register(ctx, SampleLogin, SamplePassword, SampleFullName); err != nil {
		return false, fmt.Errorf("failed to add sample trainer: %w", err)
	}
	return true, nil
}

func validateRegistration(login, password, fullName string) error {
	var err error
	if utf8.RuneCountInString(login) < MinLoginLength {
		err = multierr.Append(err, apperr.Validation("login must be at least %d characters", MinLoginLength))
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		err = multierr.Append(err, apperr.Validation("password must be at least %d characters", MinPasswordLength))
	}
	if len(password) > MaxPasswordBytes {
		err = multierr.Append(err, apperr.Validation("password must be at most %d bytes", MaxPasswordBytes))
	}
	if strings.TrimSpace(fullName) == "" {
		err = multierr.Append(err, apperr.Validation("full name is required"))
	}
	return err
}
