// Package history persists organize batches to SQLite.
package history

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"mediasort/internal/organize"
)

//go:embed schema.sql
var schemaSQL string

// Batch is one recorded organize run.
type Batch struct {
	ID         int64
	MediaType  string
	DestRoot   string
	DryRun     bool
	TotalFiles int
	TotalMoved int
	Skipped    int
	Errors     int
	CreatedAt  time.Time
}

// Move is one recorded file move within a batch.
type Move struct {
	ID      int64
	BatchID int64
	From    string
	To      string
}

// Store persists batches and their moves.
type Store struct {
	db *sql.DB
}

// New creates a store over an open database and ensures the schema exists.
func New(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schemaSQL); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Open opens (creating if needed) the SQLite database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	store, err := New(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordBatch inserts a batch row plus one row per moved file.
func (s *Store) RecordBatch(mediaType, destRoot string, dryRun bool, report *organize.Report) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.Exec(`
		INSERT INTO batches (media_type, dest_root, dry_run, total_files, total_moved, skipped, errors, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		mediaType, destRoot, dryRun, report.TotalFiles, report.TotalMoved,
		len(report.Skipped), len(report.Errors), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	batchID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	for _, move := range report.Moved {
		if _, err := tx.Exec(`INSERT INTO moves (batch_id, src, dst) VALUES (?, ?, ?)`,
			batchID, move.From, move.To); err != nil {
			return fmt.Errorf("insert move: %w", err)
		}
	}

	return tx.Commit()
}

// RecentBatches returns up to limit batches, most recent first.
func (s *Store) RecentBatches(limit int) ([]*Batch, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, media_type, dest_root, dry_run, total_files, total_moved, skipped, errors, created_at
		FROM batches ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query batches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var batches []*Batch
	for rows.Next() {
		var b Batch
		if err := rows.Scan(&b.ID, &b.MediaType, &b.DestRoot, &b.DryRun,
			&b.TotalFiles, &b.TotalMoved, &b.Skipped, &b.Errors, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, &b)
	}
	return batches, rows.Err()
}

// BatchMoves returns the moves recorded for one batch, in insertion order.
func (s *Store) BatchMoves(batchID int64) ([]*Move, error) {
	rows, err := s.db.Query(`SELECT id, batch_id, src, dst FROM moves WHERE batch_id = ? ORDER BY id`, batchID)
	if err != nil {
		return nil, fmt.Errorf("query moves: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var moves []*Move
	for rows.Next() {
		var m Move
		if err := rows.Scan(&m.ID, &m.BatchID, &m.From, &m.To); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		moves = append(moves, &m)
	}
	return moves, rows.Err()
}
