package models

import "time"

type Client struct {
	ID          int64     `json:"id" toml:"id"`
	FullName    string    `json:"full_name" toml:"full_name"`
	DateOfBirth time.Time `json:"date_of_birth" toml:"date_of_birth"`
	Phone       string    `json:"phone" toml:"phone"` // Empty when not given.
	TrainerID   int64     `json:"trainer_id" toml:"trainer_id"`
}
