package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/umeshSinghVerma/Chatbot-service-web/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS chatbots (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		prompt TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// GetChatbot retrieves a chatbot by id.
func (s *SQLiteStore) GetChatbot(ctx context.Context, id string) (*domain.Chatbot, error) {
	query := `SELECT id, name, prompt, created_at, updated_at FROM chatbots WHERE id = ?`

	row := s.db.QueryRowContext(ctx, query, id)

	var bot domain.Chatbot
	var createdAt, updatedAt int64

	err := row.Scan(&bot.ID, &bot.Name, &bot.Prompt, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan chatbot row: %w", err)
	}

	bot.CreatedAt = time.Unix(createdAt, 0)
	bot.UpdatedAt = time.Unix(updatedAt, 0)

	return &bot, nil
}

// UpsertChatbot creates or updates a chatbot record.
func (s *SQLiteStore) UpsertChatbot(ctx context.Context, bot *domain.Chatbot) error {
	now := time.Now()
	if bot.ID == "" {
		bot.ID = uuid.NewString()
	}
	if bot.CreatedAt.IsZero() {
		bot.CreatedAt = now
	}
	bot.UpdatedAt = now

	query := `
	INSERT INTO chatbots (id, name, prompt, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		name = excluded.name,
		prompt = excluded.prompt,
		updated_at = excluded.updated_at`

	_, err := s.db.ExecContext(ctx, query,
		bot.ID, bot.Name, bot.Prompt,
		bot.CreatedAt.Unix(), bot.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("upsert chatbot: %w", err)
	}
	return nil
}

// DeleteChatbot removes a chatbot record.
func (s *SQLiteStore) DeleteChatbot(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM chatbots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete chatbot: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
