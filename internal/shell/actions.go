package shell

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/gymtrainer/internal/console"
	"github.com/misterclayt0n/gymtrainer/internal/utils"
	"github.com/misterclayt0n/gymtrainer/internal/workouts"
)

func (s *Shell) login(ctx context.Context) error {
	login, err := s.prompt("Login: ")
	if err != nil {
		return err
	}
	password, err := s.prompt("Password: ")
	if err != nil {
		return err
	}

	sess, err := s.deps.Auth.Login(ctx, login, password)
	if err != nil {
		return err
	}
	s.session = sess
	console.Success(s.out, fmt.Sprintf("Welcome, %s!", sess.FullName))
	return nil
}

func (s *Shell) register(ctx context.Context) error {
	login, err := s.prompt("Login: ")
	if err != nil {
		return err
	}
	password, err := s.prompt("Password: ")
	if err != nil {
		return err
	}
	fullName, err := s.prompt("Full name: ")
	if err != nil {
		return err
	}

	if _, err := s.deps.Auth.Register(ctx, login, password, fullName); err != nil {
		return err
	}
	console.Success(s.out, "Registration successful. You can log in now.")
	return nil
}

func (s *Shell) listClients(ctx context.Context) error {
	clients, err := s.deps.Roster.ListClients(ctx, s.session)
	if err != nil {
		return err
	}
	console.Section(s.out, "Your clients:")
	console.Clients(s.out, clients)
	return nil
}

func (s *Shell) addClient(ctx context.Context) error {
	name, err := s.prompt("Client full name: ")
	if err != nil {
		return err
	}
	dob, err := s.prompt("Date of birth (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	phone, err := s.prompt("Phone (optional): ")
	if err != nil {
		return err
	}

	c, err := s.deps.Roster.AddClient(ctx, s.session, name, dob, phone)
	if err != nil {
		return err
	}
	console.Success(s.out, fmt.Sprintf("Client added with id %d.", c.ID))
	return nil
}

func (s *Shell) searchClients(ctx context.Context) error {
	term, err := s.prompt("Search term: ")
	if err != nil {
		return err
	}

	clients, err := s.deps.Roster.SearchClients(ctx, s.session, term)
	if err != nil {
		return err
	}
	console.Section(s.out, fmt.Sprintf("Clients matching %q:", term))
	console.Clients(s.out, clients)
	return nil
}

func (s *Shell) addWorkout(ctx context.Context) error {
	var in workouts.AddWorkoutInput
	var err error

	if in.ClientID, err = s.promptClientID(); err != nil {
		return err
	}
	if in.Exercise, err = s.prompt("Exercise: "); err != nil {
		return err
	}
	if in.Sets, err = s.promptInt("Sets: ", "sets"); err != nil {
		return err
	}
	if in.Reps, err = s.promptInt("Reps: ", "reps"); err != nil {
		return err
	}
	if in.WeightKg, err = s.promptFloat("Weight (kg): ", "weight"); err != nil {
		return err
	}
	if in.Notes, err = s.prompt("Notes (optional): "); err != nil {
		return err
	}

	w, err := s.deps.Workouts.AddWorkout(ctx, s.session, in)
	if err != nil {
		return err
	}
	console.Success(s.out, fmt.Sprintf("Workout logged for %s.", utils.FormatDate(w.Date)))
	return nil
}

func (s *Shell) viewWorkouts(ctx context.Context) error {
	id, err := s.promptClientID()
	if err != nil {
		return err
	}

	list, err := s.deps.Workouts.GetWorkouts(ctx, s.session, id)
	if err != nil {
		return err
	}
	console.Section(s.out, "Workouts:")
	console.Workouts(s.out, list)
	return nil
}

func (s *Shell) viewStats(ctx context.Context) error {
	id, err := s.promptClientID()
	if err != nil {
		return err
	}

	client, err := s.deps.Roster.GetClient(ctx, s.session, id)
	if err != nil {
		return err
	}
	stats, err := s.deps.Workouts.GetStats(ctx, s.session, id)
	if err != nil {
		return err
	}
	console.Stats(s.out, client, stats)
	return nil
}

func (s *Shell) progressReport(ctx context.Context) error {
	asOf := utils.Today(s.deps.Now())
	report, err := s.deps.Workouts.ProgressReport(ctx, s.session, asOf)
	if err != nil {
		return err
	}
	console.Report(s.out, report, asOf)
	return nil
}
