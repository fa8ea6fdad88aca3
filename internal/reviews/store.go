// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package reviews keeps the user's feedback on assistant answers.
//
// Reviews are local-only: the gateway never sees them. They live in a
// SQLite database under the config directory so they survive restarts
// and can be summarized (count, star average) in the dashboard.
package reviews

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jeranaias/privategxt-tui/internal/model"
)

// ErrInvalidStars indicates a rating outside 1-5.
var ErrInvalidStars = errors.New("stars must be between 1 and 5")

const schema = `
CREATE TABLE IF NOT EXISTS reviews (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	stars      INTEGER NOT NULL CHECK (stars BETWEEN 1 AND 5),
	comment    TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reviews_created_at ON reviews(created_at);
`

// Store persists reviews in a local SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the review database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent UI events.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add stores a new review and returns it with its assigned id.
func (s *Store) Add(ctx context.Context, stars int, comment string) (*model.Review, error) {
	if stars < 1 || stars > 5 {
		return nil, ErrInvalidStars
	}

	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO reviews (stars, comment, created_at) VALUES (?, ?, ?)",
		stars, comment, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert review: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read insert id: %w", err)
	}

	return &model.Review{ID: id, Stars: stars, Comment: comment, CreatedAt: now}, nil
}

// List returns all reviews, newest first.
func (s *Store) List(ctx context.Context) ([]model.Review, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, stars, comment, created_at FROM reviews ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []model.Review
	for rows.Next() {
		var r model.Review
		if err := rows.Scan(&r.ID, &r.Stars, &r.Comment, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

// Summary holds aggregate review statistics.
type Summary struct {
	Count   int
	Average float64
}

// Summarize returns the review count and star average. An empty store
// yields a zero Summary.
func (s *Store) Summarize(ctx context.Context) (Summary, error) {
	var sum Summary
	var avg sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*), AVG(stars) FROM reviews").Scan(&sum.Count, &avg)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to summarize reviews: %w", err)
	}
	if avg.Valid {
		sum.Average = avg.Float64
	}
	return sum, nil
}
