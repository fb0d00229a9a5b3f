// Package store is skyline's local persistence layer: a SQLite-backed key-value
// table plus append-only item collections, with change notification.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/gravitrone/skyline/internal/logging"
)

// Item is one record of a collection.
type Item struct {
	ID         string
	Collection string
	Body       json.RawMessage
	CreatedAt  time.Time
}

// Store wraps the SQLite database.
type Store struct {
	db     *sql.DB
	path   string
	bus    *Bus
	logger *zap.Logger
}

// Open creates or opens the database at path.
func Open(ctx context.Context, path string, logger *zap.Logger) (*Store, error) {
	logger = logging.OrNop(logger)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	// One connection keeps writes serialized inside this process.
	db.SetMaxOpenConns(1)

	s := &Store{
		db:     db,
		path:   path,
		bus:    NewBus(),
		logger: logger.Named("store"),
	}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	s.logger.Debug("store opened", zap.String("path", path))
	return s, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS items (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		collection TEXT NOT NULL,
		body TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_items_collection ON items(collection);
	`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Bus returns the change bus.
func (s *Store) Bus() *Bus {
	return s.bus
}

// Close closes the bus and the database.
func (s *Store) Close() error {
	s.bus.Close()
	return s.db.Close()
}

// Get returns the raw value for key, or nil when the key is absent.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(value), nil
}

// Put upserts key and notifies subscribers.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("put %s: value is not valid JSON", key)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	s.logger.Debug("kv put", zap.String("key", key), zap.Int("bytes", len(value)))
	s.bus.Publish(Event{Key: key})
	return nil
}

// PutJSON marshals v and stores it under key.
func (s *Store) PutJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.Put(ctx, key, data)
}

// Add appends item to collection and returns its generated id.
func (s *Store) Add(ctx context.Context, collection string, item any) (string, error) {
	if collection == "" {
		return "", fmt.Errorf("add: collection is required")
	}
	body, err := json.Marshal(item)
	if err != nil {
		return "", fmt.Errorf("marshal item: %w", err)
	}
	id := uuid.New().String()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO items (id, collection, body, created_at) VALUES (?, ?, ?, ?)`,
		id, collection, string(body), time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("add to %s: %w", collection, err)
	}
	s.logger.Debug("item added", zap.String("collection", collection), zap.String("id", id))
	s.bus.Publish(Event{Collection: collection})
	return id, nil
}

// List returns the items of collection in insertion order.
func (s *Store) List(ctx context.Context, collection string) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, collection, body, created_at FROM items WHERE collection = ? ORDER BY seq`,
		collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		var body string
		if err := rows.Scan(&it.ID, &it.Collection, &body, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		it.Body = json.RawMessage(body)
		items = append(items, it)
	}
	return items, rows.Err()
}
