// Package progress computes descriptive strength-progress statistics over
// client workout histories: per-exercise progress, client ranking,
// success rates and age cohorts.
package progress

import (
	"sort"
	"time"
)

const (
	// SuccessThreshold is the progress percentage a pair must exceed to count
	// as a success.
	SuccessThreshold = 10.0
	// TopClients is how many clients the ranking keeps.
	TopClients = 5
)

// Entry is one logged performance of an exercise.
type Entry struct {
	Exercise  string
	Date      time.Time
	OneRepMax float64
}

// Client holds the entries of one client in chronological order.
type Client struct {
	ID      string
	Name    string
	Age     int
	Entries []Entry
}

// Record is the progress of one client on one exercise. Only pairs with at
// least two entries and a positive first 1RM produce a record.
type Record struct {
	ClientID    string
	ClientName  string
	Exercise    string
	First       float64
	Last        float64
	Entries     int
	ProgressPct float64

	// Position of the client in the input, so clients sharing an ID stay apart.
	client int
}

// ExerciseSummary is the spread of progress over all pairs of one exercise.
type ExerciseSummary struct {
	Exercise string
	Mean     float64
	Max      float64
	Min      float64
	Count    int
}

// Efficacy is the mean progress of an exercise and the share of its pairs
// above SuccessThreshold.
type Efficacy struct {
	Exercise    string
	Mean        float64
	SuccessRate float64
	Count       int
}

// ClientScore is a client's average progress over its valid pairs.
type ClientScore struct {
	ClientID    string
	Name        string
	Age         int
	AvgProgress float64
}

// CohortSummary is one age bucket. HasData is false when no client landed in it.
type CohortSummary struct {
	Label   string
	Min     int
	Max     int
	Members int
	Mean    float64
	HasData bool
}

// Report bundles every aggregate computed by Analyze.
type Report struct {
	Records    []Record
	Exercises  []ExerciseSummary
	TopClients []ClientScore
	Efficacy   []Efficacy
	Cohorts    []CohortSummary
}

var cohorts = []struct {
	label    string
	min, max int
}{
	{"18-30", 18, 30},
	{"31-45", 31, 45},
	{"46-60", 46, 60},
}

// CohortFor returns the index of the cohort an age belongs to. Ages outside
// 18..45 all land in the last cohort.
func CohortFor(age int) int {
	for i, c := range cohorts[:len(cohorts)-1] {
		if age >= c.min && age <= c.max {
			return i
		}
	}
	return len(cohorts) - 1
}

type pairKey struct {
	client   int
	exercise string
}

type pairAcc struct {
	first, last float64
	count       int
}

// Records groups every client's entries by exercise in one pass and returns
// the valid pairs, clients in input order and exercises in first-appearance order.
func Records(clients []Client) []Record {
	acc := make(map[pairKey]*pairAcc)
	var order []pairKey

	for ci, c := range clients {
		for _, e := range c.Entries {
			k := pairKey{client: ci, exercise: e.Exercise}
			a, ok := acc[k]
			if !ok {
				a = &pairAcc{first: e.OneRepMax}
				acc[k] = a
				order = append(order, k)
			}
			a.last = e.OneRepMax
			a.count++
		}
	}

	records := make([]Record, 0, len(order))
	for _, k := range order {
		a := acc[k]
		if a.count < 2 || a.first <= 0 {
			continue
		}
		c := clients[k.client]
		records = append(records, Record{
			ClientID:    c.ID,
			ClientName:  c.Name,
			Exercise:    k.exercise,
			First:       a.first,
			Last:        a.last,
			Entries:     a.count,
			ProgressPct: (a.last - a.first) / a.first * 100,
			client:      k.client,
		})
	}
	return records
}

// SummarizeExercises returns mean, max and min progress per exercise, sorted by name.
func SummarizeExercises(records []Record) []ExerciseSummary {
	byExercise := make(map[string]*ExerciseSummary)
	for _, r := range records {
		s, ok := byExercise[r.Exercise]
		if !ok {
			s = &ExerciseSummary{Exercise: r.Exercise, Max: r.ProgressPct, Min: r.ProgressPct}
			byExercise[r.Exercise] = s
		}
		s.Mean += r.ProgressPct
		s.Max = max(s.Max, r.ProgressPct)
		s.Min = min(s.Min, r.ProgressPct)
		s.Count++
	}

	summaries := make([]ExerciseSummary, 0, len(byExercise))
	for _, s := range byExercise {
		s.Mean /= float64(s.Count)
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Exercise < summaries[j].Exercise
	})
	return summaries
}

// ExerciseEfficacy returns mean progress and the share of pairs above
// SuccessThreshold per exercise, sorted by name.
func ExerciseEfficacy(records []Record) []Efficacy {
	byExercise := make(map[string]*Efficacy)
	successes := make(map[string]int)
	for _, r := range records {
		e, ok := byExercise[r.Exercise]
		if !ok {
			e = &Efficacy{Exercise: r.Exercise}
			byExercise[r.Exercise] = e
		}
		e.Mean += r.ProgressPct
		e.Count++
		if r.ProgressPct > SuccessThreshold {
			successes[r.Exercise]++
		}
	}

	out := make([]Efficacy, 0, len(byExercise))
	for name, e := range byExercise {
		e.SuccessRate = float64(successes[name]) / float64(e.Count)
		e.Mean /= float64(e.Count)
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Exercise < out[j].Exercise
	})
	return out
}

// clientAverages returns the average progress of every client with at least
// one valid pair, in input order.
func clientAverages(clients []Client, records []Record) []ClientScore {
	type sum struct {
		total float64
		n     int
	}
	// records come from Records(clients), so r.client indexes clients.
	sums := make([]sum, len(clients))
	for _, r := range records {
		if r.client < 0 || r.client >= len(sums) {
			continue
		}
		sums[r.client].total += r.ProgressPct
		sums[r.client].n++
	}

	var scores []ClientScore
	for i, c := range clients {
		s := sums[i]
		if s.n == 0 {
			continue
		}
		scores = append(scores, ClientScore{
			ClientID:    c.ID,
			Name:        c.Name,
			Age:         c.Age,
			AvgProgress: s.total / float64(s.n),
		})
	}
	return scores
}

// RankClients orders clients by average progress, highest first, and keeps
// the top n. Equal averages keep input order.
func RankClients(clients []Client, records []Record, n int) []ClientScore {
	scores := clientAverages(clients, records)
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].AvgProgress > scores[j].AvgProgress
	})
	if len(scores) > n {
		scores = scores[:n]
	}
	return scores
}

// CohortEffect buckets clients with valid pairs by age and averages their progress.
func CohortEffect(clients []Client, records []Record) []CohortSummary {
	out := make([]CohortSummary, len(cohorts))
	for i, c := range cohorts {
		out[i] = CohortSummary{Label: c.label, Min: c.min, Max: c.max}
	}

	for _, s := range clientAverages(clients, records) {
		b := &out[CohortFor(s.Age)]
		b.Mean += s.AvgProgress
		b.Members++
	}
	for i := range out {
		if out[i].Members > 0 {
			out[i].Mean /= float64(out[i].Members)
			out[i].HasData = true
		}
	}
	return out
}

// Analyze computes the records and every aggregate over them.
func Analyze(clients []Client) *Report {
	records := Records(clients)
	return &Report{
		Records:    records,
		Exercises:  SummarizeExercises(records),
		TopClients: RankClients(clients, records, TopClients),
		Efficacy:   ExerciseEfficacy(records),
		Cohorts:    CohortEffect(clients, records),
	}
}
