package models

import "time"

type Workout struct {
	ID           int64     `json:"id" toml:"id"`
	ClientID     int64     `json:"client_id" toml:"client_id"`
	Date         time.Time `json:"date" toml:"date"`
	ExerciseName string    `json:"exercise_name" toml:"exercise_name"`
	Sets         int       `json:"sets" toml:"sets"`
	Reps         int       `json:"reps" toml:"reps"`
	WeightKg     float64   `json:"weight_kg" toml:"weight_kg"`
	Notes        string    `json:"notes" toml:"notes"`
}

type ExerciseCount struct {
	ExerciseName string `json:"exercise_name"`
	Count        int    `json:"count"`
}

// ClientStats summarises a client's log. LastWorkout is nil when
// the client has no workouts yet.
type ClientStats struct {
	TotalWorkouts int             `json:"total_workouts"`
	LastWorkout   *time.Time      `json:"last_workout,omitempty"`
	Popular       []ExerciseCount `json:"popular"`
}

//
// For TOML dumps only
//

type Dump struct {
	Trainers []Trainer `toml:"trainers"`
	Clients  []Client  `toml:"clients"`
	Workouts []Workout `toml:"workouts"`
}
