package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultConnectionString = "file:./gym_app.db"
	devConnectionString     = "file:./local.db"
)

type Config struct {
	DB      DBConfig      `toml:"database"`
	Auth    AuthConfig    `toml:"auth"`
	Logging LoggingConfig `toml:"logging"`
}

type DBConfig struct {
	ConnectionString  string `toml:"connection_string"` // The entire DB connection string.
	SeedSampleTrainer bool   `toml:"seed_sample_trainer"`
}

type AuthConfig struct {
	BcryptCost int `toml:"bcrypt_cost"`
}

type LoggingConfig struct {
	Level    string `toml:"level"`
	File     string `toml:"file"` // Empty logs to stderr.
	JSON     bool   `toml:"json"`
	ToStdout bool   `toml:"to_stdout"`
}

// Returns the directory holding the config, the default log file and dumps.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "gymtrainer"), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Default() *Config {
	cfg := &Config{
		DB: DBConfig{
			ConnectionString:  DefaultConnectionString,
			SeedSampleTrainer: true,
		},
		Auth: AuthConfig{
			BcryptCost: bcrypt.DefaultCost,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
	if dir, err := GetConfigDir(); err == nil {
		cfg.Logging.File = filepath.Join(dir, "gymtrainer.log")
	}
	return cfg
}

// Load reads the configuration from path (the default location when empty).
// A missing file is not an error; defaults are used. Environment variables,
// optionally from a .env file, override the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, err
		}
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	// .env is optional.
	_ = godotenv.Load()
	applyEnv(cfg)

	if cfg.DB.ConnectionString == "" {
		cfg.DB.ConnectionString = DefaultConnectionString
	}
	if cfg.Auth.BcryptCost < bcrypt.MinCost || cfg.Auth.BcryptCost > bcrypt.MaxCost {
		cfg.Auth.BcryptCost = bcrypt.DefaultCost
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if url, ok := os.LookupEnv("GYMTRAINER_DATABASE_URL"); ok && url != "" {
		cfg.DB.ConnectionString = url
	}
	if level, ok := os.LookupEnv("GYMTRAINER_LOG_LEVEL"); ok && level != "" {
		cfg.Logging.Level = level
	}
	if file, ok := os.LookupEnv("GYMTRAINER_LOG_FILE"); ok {
		cfg.Logging.File = file
	}
	if cost, ok := os.LookupEnv("GYMTRAINER_BCRYPT_COST"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(cost)); err == nil {
			cfg.Auth.BcryptCost = n
		}
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = devConnectionString
	}
}
