package models

type Trainer struct {
	ID           int64  `json:"id" toml:"id"`
	Login        string `json:"login" toml:"login"`
	PasswordHash string `json:"-" toml:"password_hash"`
	FullName     string `json:"full_name" toml:"full_name"`
}
