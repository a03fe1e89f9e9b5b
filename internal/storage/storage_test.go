package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/misterclayt0n/gymtrainer/internal/apperr"
	"github.com/misterclayt0n/gymtrainer/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testStorage(t *testing.T) *Storage {
	t.Helper()

	st, err := NewStorage(context.Background(), "file:"+filepath.Join(t.TempDir(), "gym_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, st.Close())
	})
	return st
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func addTrainer(t *testing.T, st *Storage, login string) *models.Trainer {
	t.Helper()

	tr := &models.Trainer{Login: login, PasswordHash: "hash-" + login, FullName: "Trainer " + login}
	require.NoError(t, st.CreateTrainer(context.Background(), tr))
	return tr
}

func addClient(t *testing.T, st *Storage, trainerID int64, name string) *models.Client {
	t.Helper()

	c := &models.Client{FullName: name, DateOfBirth: date(1990, 5, 17), TrainerID: trainerID}
	require.NoError(t, st.CreateClient(context.Background(), c))
	return c
}

func TestParseConnString(t *testing.T) {
	tests := []struct {
		in      string
		dialect dialect
		dsn     string
	}{
		{"file:./gym_app.db", dialectSQLite, "file:./gym_app.db?_foreign_keys=on"},
		{"gym.db?cache=shared", dialectSQLite, "gym.db?cache=shared&_foreign_keys=on"},
		{"gym.db?_fk=1", dialectSQLite, "gym.db?_fk=1"},
		{"libsql://gym-trainer.turso.io?authToken=x", dialectLibSQL, "libsql://gym-trainer.turso.io?authToken=x"},
		{"https://gym.example.com", dialectLibSQL, "https://gym.example.com"},
		{"postgres://u:p@localhost/gym", dialectPostgres, "postgres://u:p@localhost/gym"},
		{"PostgreSQL://localhost/gym", dialectPostgres, "PostgreSQL://localhost/gym"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, dsn := parseConnString(tt.in)
			assert.Equal(t, tt.dialect, d)
			assert.Equal(t, tt.dsn, dsn)
		})
	}
}

func TestRebind(t *testing.T) {
	sqlite := &Storage{dialect: dialectSQLite}
	pg := &Storage{dialect: dialectPostgres}

	q := "SELECT 1 FROM clients WHERE trainer_id = ? AND full_name LIKE ?"
	assert.Equal(t, q, sqlite.rebind(q))
	assert.Equal(t, "SELECT 1 FROM clients WHERE trainer_id = $1 AND full_name LIKE $2", pg.rebind(q))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now \\o/`, escapeLike(`50% off_now \o/`))
}

func TestTrainers(t *testing.T) {
	ctx := context.Background()
	st := testStorage(t)

	n, err := st.CountTrainers(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	tr := addTrainer(t, st, "coach")
	assert.NotZero(t, tr.ID)

	got, err := st.GetTrainerByLogin(ctx, "coach")
	require.NoError(t, err)
	assert.Equal(t, tr, got)

	_, err = st.GetTrainerByLogin(ctx, "nobody")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	dup := &models.Trainer{Login: "coach", PasswordHash: "other", FullName: "Other"}
	err = st.CreateTrainer(ctx, dup)
	require.ErrorIs(t, err, apperr.ErrDuplicateLogin)

	n, err = st.CountTrainers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestClients(t *testing.T) {
	ctx := context.Background()
	st := testStorage(t)

	me := addTrainer(t, st, "me")
	other := addTrainer(t, st, "other")

	zoe := addClient(t, st, me.ID, "Zoe Smith")
	adam := addClient(t, st, me.ID, "Adam Smith")
	addClient(t, st, me.ID, "Bob 100% Jones")
	addClient(t, st, other.ID, "Alice Smith")

	got, err := st.GetClient(ctx, zoe.ID)
	require.NoError(t, err)
	assert.Equal(t, zoe, got)
	assert.Equal(t, date(1990, 5, 17), got.DateOfBirth)

	_, err = st.GetClient(ctx, 9999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	list, err := st.ListClients(ctx, me.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Adam Smith", list[0].FullName)
	assert.Equal(t, "Bob 100% Jones", list[1].FullName)
	assert.Equal(t, "Zoe Smith", list[2].FullName)

	found, err := st.SearchClients(ctx, me.ID, "Smith")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, adam.ID, found[0].ID)
	assert.Equal(t, zoe.ID, found[1].ID)

	found, err = st.SearchClients(ctx, me.ID, "0%")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Bob 100% Jones", found[0].FullName)

	found, err = st.SearchClients(ctx, me.ID, "Nobody")
	require.NoError(t, err)
	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func TestWorkouts(t *testing.T) {
	ctx := context.Background()
	st := testStorage(t)

	tr := addTrainer(t, st, "me")
	c := addClient(t, st, tr.ID, "Client")

	stats, err := st.WorkoutStats(ctx, c.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalWorkouts)
	assert.Nil(t, stats.LastWorkout)
	assert.Empty(t, stats.Popular)

	entries := []struct {
		day      time.Time
		exercise string
	}{
		{date(2025, 1, 1), "Squat"},
		{date(2025, 1, 8), "Bench Press"},
		{date(2025, 1, 8), "Squat"},
		{date(2025, 1, 15), "Deadlift"},
		{date(2025, 1, 3), "Bench Press"},
		{date(2025, 1, 4), "Row"},
		{date(2025, 1, 5), "Curl"},
		{date(2025, 1, 6), "Plank"},
		{date(2025, 1, 7), "Squat"},
	}
	for _, e := range entries {
		w := &models.Workout{
			ClientID:     c.ID,
			Date:         e.day,
			ExerciseName: e.exercise,
			Sets:         3,
			Reps:         8,
			WeightKg:     60.5,
			Notes:        "ok",
		}
		require.NoError(t, st.CreateWorkout(ctx, w))
		require.NotZero(t, w.ID)
	}

	list, err := st.ListWorkouts(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, list, len(entries))
	assert.Equal(t, date(2025, 1, 15), list[0].Date)
	// Same day: newer id first.
	assert.Equal(t, "Squat", list[1].ExerciseName)
	assert.Equal(t, "Bench Press", list[2].ExerciseName)
	assert.Equal(t, date(2025, 1, 1), list[len(list)-1].Date)
	assert.InDelta(t, 60.5, list[0].WeightKg, 1e-9)

	stats, err = st.WorkoutStats(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, stats.TotalWorkouts)
	require.NotNil(t, stats.LastWorkout)
	assert.Equal(t, date(2025, 1, 15), *stats.LastWorkout)
	assert.Equal(t, []models.ExerciseCount{
		{ExerciseName: "Squat", Count: 3},
		{ExerciseName: "Bench Press", Count: 2},
		{ExerciseName: "Curl", Count: 1},
		{ExerciseName: "Deadlift", Count: 1},
		{ExerciseName: "Plank", Count: 1},
	}, stats.Popular)

	chrono, err := st.ListTrainerWorkouts(ctx, tr.ID)
	require.NoError(t, err)
	require.Len(t, chrono, len(entries))
	for i := 1; i < len(chrono); i++ {
		assert.False(t, chrono[i].Date.Before(chrono[i-1].Date))
	}
}

func TestCreateWorkout_UnknownClient(t *testing.T) {
	st := testStorage(t)

	err := st.CreateWorkout(context.Background(), &models.Workout{
		ClientID:     424242,
		Date:         date(2025, 1, 1),
		ExerciseName: "Squat",
		Sets:         1,
		Reps:         1,
	})
	assert.Error(t, err)
}

func TestCreateClientWithWorkouts(t *testing.T) {
	ctx := context.Background()
	st := testStorage(t)
	tr := addTrainer(t, st, "me")

	c := &models.Client{FullName: "Seeded", DateOfBirth: date(2000, 1, 2), TrainerID: tr.ID}
	workouts := []models.Workout{
		{Date: date(2025, 2, 1), ExerciseName: "Squat", Sets: 3, Reps: 5, WeightKg: 100},
		{Date: date(2025, 2, 8), ExerciseName: "Squat", Sets: 3, Reps: 5, WeightKg: 105},
	}
	require.NoError(t, st.CreateClientWithWorkouts(ctx, c, workouts))
	require.NotZero(t, c.ID)

	list, err := st.ListWorkouts(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, date(2025, 2, 8), list[0].Date)
	assert.Equal(t, c.ID, workouts[0].ClientID)
}
