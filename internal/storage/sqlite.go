//go:build sqlite

package storage

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	errgo "gopkg.in/errgo.v1"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func newSQLiteStore(path string) (Store, error) {
	return NewSQLiteStore(path), nil
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errgo.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return errgo.Notef(err, "open %s", s.path)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return errgo.Notef(err, "ping %s", s.path)
	}
	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return errgo.Notef(err, "create tables")
	}

	logger.Debugf("opened sqlite store %s", s.path)
	s.db = db
	return nil
}

func (s *SQLiteStore) SaveSweep(ctx context.Context, run SweepRun) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	payload, err := EncodeSweep(run)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO sweeps (id, schema_version, codec_version, created_at, payload)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			schema_version = excluded.schema_version,
			codec_version = excluded.codec_version,
			created_at = excluded.created_at,
			payload = excluded.payload
	`, run.ID, run.SchemaVersion, run.CodecVersion, run.CreatedAt.UTC().UnixNano(), payload)
	if err != nil {
		return errgo.Notef(err, "save sweep %s", run.ID)
	}
	return nil
}

func (s *SQLiteStore) GetSweep(ctx context.Context, id string) (SweepRun, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return SweepRun{}, false, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `SELECT payload FROM sweeps WHERE id = ?`, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SweepRun{}, false, nil
		}
		return SweepRun{}, false, errgo.Notef(err, "get sweep %s", id)
	}

	run, err := DecodeSweep(payload)
	if err != nil {
		return SweepRun{}, false, errgo.NoteMask(err, "decode sweep "+id, errgo.Is(ErrVersionMismatch))
	}
	return run, true, nil
}

func (s *SQLiteStore) ListSweeps(ctx context.Context) ([]string, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT id FROM sweeps ORDER BY id`)
	if err != nil {
		return nil, errgo.Notef(err, "list sweeps")
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errgo.Notef(err, "scan sweep id")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, errgo.Notef(err, "list sweeps")
	}
	return ids, nil
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errgo.New("store is not initialized")
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS sweeps (
			id TEXT PRIMARY KEY,
			schema_version INTEGER NOT NULL,
			codec_version INTEGER NOT NULL,
			created_at INTEGER NOT NULL,
			payload BLOB NOT NULL
		);
	`)
	return err
}
