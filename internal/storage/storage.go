package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

type dialect int

const (
	dialectSQLite dialect = iota
	dialectLibSQL
	dialectPostgres
)

func (d dialect) String() string {
	switch d {
	case dialectLibSQL:
		return "libsql"
	case dialectPostgres:
		return "postgres"
	default:
		return "sqlite3"
	}
}

type Storage struct {
	DB      *sql.DB
	dialect dialect
}

// NewStorage opens the store behind connString and creates the schema.
// postgres:// URLs go to PostgreSQL, libsql:// and http(s):// URLs to a
// libSQL server, anything else is a local SQLite file.
func NewStorage(ctx context.Context, connString string) (*Storage, error) {
	d, dsn := parseConnString(connString)

	db, err := sql.Open(d.String(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", d, err)
	}
	if d == dialectSQLite {
		// A single writer avoids "database is locked" on the local file.
		db.SetMaxOpenConns(1)
	}

	st := &Storage{DB: db, dialect: d}
	if err := st.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w", d, err)
	}
	if err := st.initializeDB(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	log.Debugf("storage: using %s database", d)
	return st, nil
}

func parseConnString(connString string) (dialect, string) {
	lower := strings.ToLower(connString)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return dialectPostgres, connString
	case strings.HasPrefix(lower, "libsql://"),
		strings.HasPrefix(lower, "http://"),
		strings.HasPrefix(lower, "https://"),
		strings.HasPrefix(lower, "ws://"),
		strings.HasPrefix(lower, "wss://"):
		return dialectLibSQL, connString
	}

	dsn := connString
	if !strings.Contains(dsn, "_foreign_keys") && !strings.Contains(dsn, "_fk=") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_foreign_keys=on"
	}
	return dialectSQLite, dsn
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) initializeDB(ctx context.Context) error {
	statements := sqliteSchema
	if s.dialect == dialectPostgres {
		statements = postgresSchema
	}

	for _, stmt := range statements {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS trainers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		login TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		full_name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		full_name TEXT NOT NULL,
		date_of_birth TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		trainer_id INTEGER NOT NULL,
		FOREIGN KEY (trainer_id) REFERENCES trainers (id)
	)`,
	`CREATE TABLE IF NOT EXISTS workouts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id INTEGER NOT NULL,
		date TEXT NOT NULL,
		exercise_name TEXT NOT NULL,
		sets INTEGER NOT NULL,
		reps INTEGER NOT NULL,
		weight_kg REAL NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		FOREIGN KEY (client_id) REFERENCES clients (id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_clients_trainer_id ON clients (trainer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_workouts_client_date ON workouts (client_id, date)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS trainers (
		id BIGSERIAL PRIMARY KEY,
		login TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		full_name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		id BIGSERIAL PRIMARY KEY,
		full_name TEXT NOT NULL,
		date_of_birth TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		trainer_id BIGINT NOT NULL REFERENCES trainers (id)
	)`,
	`CREATE TABLE IF NOT EXISTS workouts (
		id BIGSERIAL PRIMARY KEY,
		client_id BIGINT NOT NULL REFERENCES clients (id),
		date TEXT NOT NULL,
		exercise_name TEXT NOT NULL,
		sets INTEGER NOT NULL,
		reps INTEGER NOT NULL,
		weight_kg DOUBLE PRECISION NOT NULL,
		notes TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_clients_trainer_id ON clients (trainer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_workouts_client_date ON workouts (client_id, date)`,
}

// rebind rewrites ? placeholders into $N for PostgreSQL.
func (s *Storage) rebind(query string) string {
	if s.dialect != dialectPostgres {
		return query
	}

	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	// https://www.postgresql.org/docs/current/errcodes-appendix.html
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	// The libSQL client only hands back the server's message.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// escapeLike makes term match literally inside a LIKE pattern using '\' as escape.
func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}
