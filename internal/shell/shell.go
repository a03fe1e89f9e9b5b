// Package shell is the interactive text menu over the trainer services.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/misterclayt0n/gymtrainer/internal/apperr"
	"github.com/misterclayt0n/gymtrainer/internal/auth"
	"github.com/misterclayt0n/gymtrainer/internal/models"
	"github.com/misterclayt0n/gymtrainer/internal/progress"
	"github.com/misterclayt0n/gymtrainer/internal/workouts"
)

type Authenticator interface {
	Register(ctx context.Context, login, password, fullName string) (*models.Trainer, error)
	Login(ctx context.Context, login, password string) (*auth.Session, error)
}

type Roster interface {
	AddClient(ctx context.Context, sess *auth.Session, fullName, dob, phone string) (*models.Client, error)
	ListClients(ctx context.Context, sess *auth.Session) ([]models.Client, error)
	SearchClients(ctx context.Context, sess *auth.Session, term string) ([]models.Client, error)
	GetClient(ctx context.Context, sess *auth.Session, id int64) (*models.Client, error)
}

type WorkoutLog interface {
	AddWorkout(ctx context.Context, sess *auth.Session, in workouts.AddWorkoutInput) (*models.Workout, error)
	GetWorkouts(ctx context.Context, sess *auth.Session, clientID int64) ([]models.Workout, error)
	GetStats(ctx context.Context, sess *auth.Session, clientID int64) (*models.ClientStats, error)
	ProgressReport(ctx context.Context, sess *auth.Session, asOf time.Time) (*progress.Report, error)
}

type Deps struct {
	Auth     Authenticator
	Roster   Roster
	Workouts WorkoutLog
	// Ping checks the store after an unexpected error.
	Ping func(ctx context.Context) error
	Now  func() time.Time
}

// ErrStoreUnavailable ends the shell when the store stops answering.
var ErrStoreUnavailable = errors.New("store unavailable")

var (
	// errExit is returned by a handler to leave the loop.
	errExit  = errors.New("exit")
	errInput = errors.New("failed to read input")
)

type Shell struct {
	in      *bufio.Scanner
	out     io.Writer
	deps    Deps
	session *auth.Session
}

func New(in io.Reader, out io.Writer, deps Deps) *Shell {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Shell{
		in:   bufio.NewScanner(in),
		out:  out,
		deps: deps,
	}
}

// Session returns the logged in trainer, or nil.
func (s *Shell) Session() *auth.Session {
	return s.session
}

// Run serves menus until the user exits or input ends. It only fails when
// the input breaks or the store becomes unreachable.
func (s *Shell) Run(ctx context.Context) error {
	for {
		var err error
		if s.session == nil {
			err = s.guestMenu(ctx)
		} else {
			err = s.trainerMenu(ctx)
		}

		switch {
		case err == nil:
		case errors.Is(err, errExit), errors.Is(err, io.EOF):
			s.println("Goodbye.")
			return nil
		case errors.Is(err, errInput):
			return err
		default:
			if fatal := s.report(ctx, err); fatal != nil {
				return fatal
			}
		}
	}
}

// report prints err for the user. Errors outside the known kinds are logged
// and followed by a store check.
func (s *Shell) report(ctx context.Context, err error) error {
	if apperr.IsKnown(err) {
		s.println(apperr.Message(err))
		return nil
	}

	log.WithError(err).Error("shell: operation failed")
	s.println(apperr.Message(err))

	if s.deps.Ping == nil {
		return nil
	}
	if pingErr := s.deps.Ping(ctx); pingErr != nil {
		log.WithError(pingErr).Error("shell: store is unreachable")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, pingErr)
	}
	return nil
}

func (s *Shell) guestMenu(ctx context.Context) error {
	s.println("")
	s.println("1. Login")
	s.println("2. Register")
	s.println("3. Exit")
	choice, err := s.prompt("Choose an option: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return s.login(ctx)
	case "2":
		return s.register(ctx)
	case "3":
		return errExit
	default:
		s.println("Unknown option.")
		return nil
	}
}

func (s *Shell) trainerMenu(ctx context.Context) error {
	s.println("")
	s.printf("Trainer: %s\n", s.session.FullName)
	s.println("1. List clients")
	s.println("2. Add client")
	s.println("3. Search client")
	s.println("4. Add workout")
	s.println("5. View client workouts")
	s.println("6. View client stats")
	s.println("7. Progress report")
	s.println("8. Logout")
	choice, err := s.prompt("Choose an option: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return s.listClients(ctx)
	case "2":
		return s.addClient(ctx)
	case "3":
		return s.searchClients(ctx)
	case "4":
		return s.addWorkout(ctx)
	case "5":
		return s.viewWorkouts(ctx)
	case "6":
		return s.viewStats(ctx)
	case "7":
		return s.progressReport(ctx)
	case "8":
		log.Infof("shell: trainer %q logged out", s.session.Login)
		s.session = nil
		s.println("Logged out.")
		return nil
	default:
		s.println("Unknown option.")
		return nil
	}
}

func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", errInput, err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Shell) promptInt(label, field string) (int, error) {
	v, err := s.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, apperr.Validation("%s must be a whole number, got %q", field, v)
	}
	return n, nil
}

func (s *Shell) promptFloat(label, field string) (float64, error) {
	v, err := s.prompt(label)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, apperr.Validation("%s must be a number, got %q", field, v)
	}
	return f, nil
}

func (s *Shell) promptClientID() (int64, error) {
	id, err := s.promptInt("Client id: ", "client id")
	return int64(id), err
}

func (s *Shell) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
