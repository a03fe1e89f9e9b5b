package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/gymtrainer/internal/models"
)

var day0 = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

// entries builds a chronological history of one exercise, a week apart.
func entries(exercise string, oneRepMaxes ...float64) []Entry {
	out := make([]Entry, len(oneRepMaxes))
	for i, v := range oneRepMaxes {
		out[i] = Entry{Exercise: exercise, Date: day0.AddDate(0, 0, 7*i), OneRepMax: v}
	}
	return out
}

// clientWithProgress returns a client whose single Squat pair has the given progress.
func clientWithProgress(id string, age int, pct float64) Client {
	return Client{ID: id, Name: id, Age: age, Entries: entries("Squat", 100, 100+pct)}
}

func TestRecords_FirstAndLast(t *testing.T) {
	clients := []Client{{
		ID:      "c1",
		Name:    "Anna",
		Age:     25,
		Entries: entries("Squat", 50, 60, 40, 75),
	}}

	records := Records(clients)
	require.Len(t, records, 1)
	assert.Equal(t, "c1", records[0].ClientID)
	assert.Equal(t, 50.0, records[0].First)
	assert.Equal(t, 75.0, records[0].Last)
	assert.Equal(t, 4, records[0].Entries)
	assert.InDelta(t, 50.0, records[0].ProgressPct, 1e-9)
}

func TestRecords_Exclusions(t *testing.T) {
	c := Client{ID: "c1", Age: 30}
	c.Entries = append(c.Entries, entries("Squat", 50, 75)...)
	c.Entries = append(c.Entries, entries("Deadlift", 120)...)
	c.Entries = append(c.Entries, entries("Plank", 0, 10)...)

	records := Records([]Client{c})
	require.Len(t, records, 1)
	assert.Equal(t, "Squat", records[0].Exercise)

	report := Analyze([]Client{c})
	require.Len(t, report.Exercises, 1)
	assert.Equal(t, "Squat", report.Exercises[0].Exercise)
	for _, e := range report.Efficacy {
		assert.NotEqual(t, "Deadlift", e.Exercise)
	}
}

func TestRecords_InterleavedExercises(t *testing.T) {
	c := Client{ID: "c1", Entries: []Entry{
		{Exercise: "Bench Press", OneRepMax: 80},
		{Exercise: "Squat", OneRepMax: 100},
		{Exercise: "Bench Press", OneRepMax: 88},
		{Exercise: "Squat", OneRepMax: 90},
	}}

	records := Records([]Client{c})
	require.Len(t, records, 2)
	assert.Equal(t, "Bench Press", records[0].Exercise)
	assert.InDelta(t, 10.0, records[0].ProgressPct, 1e-9)
	assert.Equal(t, "Squat", records[1].Exercise)
	assert.InDelta(t, -10.0, records[1].ProgressPct, 1e-9)
}

func TestExerciseEfficacy(t *testing.T) {
	var clients []Client
	for i, pct := range []float64{5, 12, 20, -3} {
		clients = append(clients, clientWithProgress(string(rune('a'+i)), 30, pct))
	}

	eff := ExerciseEfficacy(Records(clients))
	require.Len(t, eff, 1)
	assert.Equal(t, "Squat", eff[0].Exercise)
	assert.Equal(t, 4, eff[0].Count)
	assert.InDelta(t, 0.5, eff[0].SuccessRate, 1e-9)
	assert.InDelta(t, 8.5, eff[0].Mean, 1e-9)
}

func TestExerciseEfficacy_ThresholdIsExclusive(t *testing.T) {
	eff := ExerciseEfficacy(Records([]Client{clientWithProgress("a", 20, 10)}))
	require.Len(t, eff, 1)
	assert.Zero(t, eff[0].SuccessRate)
}

func TestSummarizeExercises(t *testing.T) {
	a := Client{ID: "a"}
	a.Entries = append(a.Entries, entries("Squat", 100, 110)...)
	a.Entries = append(a.Entries, entries("Bench Press", 50, 40)...)
	b := Client{ID: "b", Entries: entries("Squat", 100, 130)}

	summaries := SummarizeExercises(Records([]Client{a, b}))
	require.Len(t, summaries, 2)

	assert.Equal(t, "Bench Press", summaries[0].Exercise)
	assert.Equal(t, 1, summaries[0].Count)
	assert.InDelta(t, -20.0, summaries[0].Mean, 1e-9)

	assert.Equal(t, "Squat", summaries[1].Exercise)
	assert.Equal(t, 2, summaries[1].Count)
	assert.InDelta(t, 20.0, summaries[1].Mean, 1e-9)
	assert.InDelta(t, 30.0, summaries[1].Max, 1e-9)
	assert.InDelta(t, 10.0, summaries[1].Min, 1e-9)
}

func TestRankClients(t *testing.T) {
	a := clientWithProgress("A", 30, 30)
	b := clientWithProgress("B", 30, 45)
	c := Client{ID: "C", Age: 30, Entries: entries("Squat", 100)}
	clients := []Client{a, b, c}

	ranking := RankClients(clients, Records(clients), TopClients)
	require.Len(t, ranking, 2)
	assert.Equal(t, "B", ranking[0].ClientID)
	assert.InDelta(t, 45.0, ranking[0].AvgProgress, 1e-9)
	assert.Equal(t, "A", ranking[1].ClientID)
}

func TestRankClients_AveragesAcrossExercises(t *testing.T) {
	a := Client{ID: "A"}
	a.Entries = append(a.Entries, entries("Squat", 100, 140)...)
	a.Entries = append(a.Entries, entries("Deadlift", 100, 120)...)

	ranking := RankClients([]Client{a}, Records([]Client{a}), TopClients)
	require.Len(t, ranking, 1)
	assert.InDelta(t, 30.0, ranking[0].AvgProgress, 1e-9)
}

func TestRankClients_TopFiveStable(t *testing.T) {
	var clients []Client
	for _, id := range []string{"c1", "c2", "c3", "c4", "c5", "c6"} {
		clients = append(clients, clientWithProgress(id, 30, 15))
	}
	clients = append(clients, clientWithProgress("best", 30, 50))

	ranking := RankClients(clients, Records(clients), TopClients)
	require.Len(t, ranking, TopClients)
	ids := make([]string, len(ranking))
	for i, s := range ranking {
		ids[i] = s.ClientID
	}
	assert.Equal(t, []string{"best", "c1", "c2", "c3", "c4"}, ids)
}

func TestCohortFor(t *testing.T) {
	tests := []struct {
		age  int
		want string
	}{
		{16, "46-60"},
		{18, "18-30"},
		{30, "18-30"},
		{31, "31-45"},
		{45, "31-45"},
		{46, "46-60"},
		{60, "46-60"},
		{61, "46-60"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cohorts[CohortFor(tt.age)].label, "age %d", tt.age)
	}
}

func TestCohortEffect(t *testing.T) {
	clients := []Client{
		clientWithProgress("old", 61, 20),
		clientWithProgress("edge", 46, 10),
		clientWithProgress("mid", 45, 40),
		{ID: "none", Age: 25, Entries: entries("Squat", 100)},
	}

	got := CohortEffect(clients, Records(clients))
	require.Len(t, got, 3)

	assert.Equal(t, "18-30", got[0].Label)
	assert.False(t, got[0].HasData)
	assert.Zero(t, got[0].Members)

	assert.Equal(t, "31-45", got[1].Label)
	assert.True(t, got[1].HasData)
	assert.Equal(t, 1, got[1].Members)
	assert.InDelta(t, 40.0, got[1].Mean, 1e-9)

	assert.Equal(t, "46-60", got[2].Label)
	assert.True(t, got[2].HasData)
	assert.Equal(t, 2, got[2].Members)
	assert.InDelta(t, 15.0, got[2].Mean, 1e-9)
}

func TestAnalyze_Empty(t *testing.T) {
	report := Analyze(nil)
	assert.Empty(t, report.Records)
	assert.Empty(t, report.Exercises)
	assert.Empty(t, report.TopClients)
	assert.Empty(t, report.Efficacy)
	require.Len(t, report.Cohorts, 3)
	for _, c := range report.Cohorts {
		assert.False(t, c.HasData)
	}
}

func TestFromStore(t *testing.T) {
	asOf := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	clients := []models.Client{
		{ID: 1, FullName: "Anna", DateOfBirth: time.Date(1995, 6, 2, 0, 0, 0, 0, time.UTC)},
		{ID: 2, FullName: "Boris", DateOfBirth: time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	workouts := []models.Workout{
		{ID: 3, ClientID: 1, Date: day0.AddDate(0, 0, 7), ExerciseName: "Squat", Reps: 10, WeightKg: 90},
		{ID: 1, ClientID: 1, Date: day0, ExerciseName: "Squat", Reps: 10, WeightKg: 60},
		{ID: 2, ClientID: 99, Date: day0, ExerciseName: "Squat", Reps: 5, WeightKg: 100},
	}

	got := FromStore(clients, workouts, asOf)
	require.Len(t, got, 2)

	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "Anna", got[0].Name)
	assert.Equal(t, 29, got[0].Age)
	require.Len(t, got[0].Entries, 2)
	assert.InDelta(t, 80.0, got[0].Entries[0].OneRepMax, 1e-9)
	assert.InDelta(t, 120.0, got[0].Entries[1].OneRepMax, 1e-9)

	assert.Equal(t, 45, got[1].Age)
	assert.Empty(t, got[1].Entries)

	records := Records(got)
	require.Len(t, records, 1)
	assert.InDelta(t, 50.0, records[0].ProgressPct, 1e-9)
}

func TestAnalyze_ClientsWithoutIDs(t *testing.T) {
	clients := []Client{
		{Name: "A", Age: 25, Entries: entries("Squat", 100, 110)},
		{Name: "B", Age: 50, Entries: entries("Squat", 100, 150)},
	}

	report := Analyze(clients)
	require.Len(t, report.TopClients, 2)
	assert.Equal(t, "B", report.TopClients[0].Name)
	assert.InDelta(t, 50.0, report.TopClients[0].AvgProgress, 1e-9)
	assert.Equal(t, "A", report.TopClients[1].Name)
	assert.InDelta(t, 10.0, report.TopClients[1].AvgProgress, 1e-9)

	require.Len(t, report.Cohorts, 3)
	assert.Equal(t, 1, report.Cohorts[0].Members)
	assert.InDelta(t, 10.0, report.Cohorts[0].Mean, 1e-9)
	assert.Equal(t, 1, report.Cohorts[2].Members)
	assert.InDelta(t, 50.0, report.Cohorts[2].Mean, 1e-9)
}
