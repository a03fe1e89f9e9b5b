// Package generator produces synthetic client workout histories for trying
// out the progress analytics.
package generator

import (
	"math"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/misterclayt0n/gymtrainer/internal/progress"
	"github.com/misterclayt0n/gymtrainer/internal/utils"
)

const (
	DefaultClients  = 50
	DefaultWorkouts = 20

	minAge = 18
	maxAge = 60

	// Days between two consecutive entries of a client.
	entrySpacingDays = 7
)

// Exercises is the catalogue entries are drawn from.
var Exercises = []string{
	"Squat",
	"Bench Press",
	"Deadlift",
	"Overhead Press",
	"Barbell Row",
	"Pull-up",
}

// Options controls the dataset size. Zero values fall back to the defaults.
type Options struct {
	Clients  int
	Workouts int
}

func (o Options) withDefaults() Options {
	if o.Clients <= 0 {
		o.Clients = DefaultClients
	}
	if o.Workouts <= 0 {
		o.Workouts = DefaultWorkouts
	}
	return o
}

type Dataset struct {
	GeneratedAt time.Time `toml:"generated_at"`
	Clients     []Client  `toml:"clients"`
}

type Client struct {
	ID          string    `toml:"id"`
	FullName    string    `toml:"full_name"`
	Phone       string    `toml:"phone"`
	Age         int       `toml:"age"`
	DateOfBirth time.Time `toml:"date_of_birth"`
	Workouts    []Workout `toml:"workouts"`
}

type Workout struct {
	Date      time.Time `toml:"date"`
	Exercise  string    `toml:"exercise"`
	Sets      int       `toml:"sets"`
	Reps      int       `toml:"reps"`
	WeightKg  float64   `toml:"weight_kg"`
	OneRepMax float64   `toml:"one_rep_max"`
}

// Generate builds a dataset from r. The same seed and now give the same dataset.
func Generate(r *rand.Rand, opts Options, now time.Time) *Dataset {
	opts = opts.withDefaults()
	faker := gofakeit.NewCustom(r)
	today := utils.Today(now)
	start := today.AddDate(0, 0, -entrySpacingDays*opts.Workouts)

	ds := &Dataset{
		GeneratedAt: today,
		Clients:     make([]Client, 0, opts.Clients),
	}
	for n := 0; n < opts.Clients; n++ {
		ds.Clients = append(ds.Clients, generateClient(r, faker, opts.Workouts, today, start))
	}
	return ds
}

func generateClient(r *rand.Rand, faker *gofakeit.Faker, workouts int, today, start time.Time) Client {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		// math/rand never fails a read.
		panic(err)
	}

	age := minAge + r.Intn(maxAge-minAge+1)
	c := Client{
		ID:          id.String(),
		FullName:    faker.Name(),
		Phone:       faker.Phone(),
		Age:         age,
		DateOfBirth: today.AddDate(-age, 0, -r.Intn(365)),
		Workouts:    make([]Workout, 0, workouts),
	}

	baseline := make(map[string]float64, len(Exercises))
	for _, ex := range Exercises {
		baseline[ex] = uniform(r, 30, 100)
	}

	for i := 0; i < workouts; i++ {
		ex := Exercises[r.Intn(len(Exercises))]
		oneRM := baseline[ex] * (1 + 0.02*float64(i)) * uniform(r, 0.95, 1.05)
		c.Workouts = append(c.Workouts, Workout{
			Date:      start.AddDate(0, 0, entrySpacingDays*i),
			Exercise:  ex,
			Sets:      3 + r.Intn(3),
			Reps:      6 + r.Intn(7),
			WeightKg:  round1(oneRM * uniform(r, 0.6, 0.8)),
			OneRepMax: oneRM,
		})
	}
	return c
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ProgressClients converts the dataset into analytics input using the
// generated 1RM values directly.
func (ds *Dataset) ProgressClients() []progress.Client {
	out := make([]progress.Client, len(ds.Clients))
	for i, c := range ds.Clients {
		entries := make([]progress.Entry, len(c.Workouts))
		for j, w := range c.Workouts {
			entries[j] = progress.Entry{Exercise: w.Exercise, Date: w.Date, OneRepMax: w.OneRepMax}
		}
		out[i] = progress.Client{ID: c.ID, Name: c.FullName, Age: c.Age, Entries: entries}
	}
	return out
}
