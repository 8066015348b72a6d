package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq" // postgres driver
	"go.uber.org/zap"

	"github.com/daylist-app/daylist/internal/models"
)

// PostgresStore persists the collection as a JSON blob in a single-row
// table. One row is all a single-writer tool needs; the database gives
// durability, nothing more.
type PostgresStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPostgresStore connects to Postgres and ensures the snapshot table
// exists.
func NewPostgresStore(databaseURL string, logger *zap.Logger) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	query := `
		CREATE TABLE IF NOT EXISTS task_snapshots (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			data JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return nil, fmt.Errorf("failed to create snapshot table: %w", err)
	}

	return &PostgresStore{db: db, logger: logger}, nil
}

// Load reads the snapshot row. An absent row or unparseable blob yields
// an empty collection.
func (s *PostgresStore) Load(ctx context.Context) ([]models.Task, error) {
	var data []byte
	query := `SELECT data FROM task_snapshots WHERE id = 1`
	err := s.db.QueryRowContext(ctx, query).Scan(&data)
	if err == sql.ErrNoRows {
		return []models.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot row: %w", err)
	}

	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("snapshot_invalid_starting_empty", zap.Error(err))
		return []models.Task{}, nil
	}
	return decodeRecords(records), nil
}

// Save upserts the snapshot row.
func (s *PostgresStore) Save(ctx context.Context, tasks []models.Task) error {
	data, err := json.Marshal(encodeRecords(tasks))
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	query := `
		INSERT INTO task_snapshots (id, data, updated_at)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET data = $1, updated_at = $2
	`
	if _, err := s.db.ExecContext(ctx, query, data, time.Now()); err != nil {
		return fmt.Errorf("failed to write snapshot row: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

var _ Store = (*PostgresStore)(nil)
