// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/serializer"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLiteStore keeps records in a single SQLite table.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens or creates the database at path.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, cjerrors.Wrap(cjerrors.ErrCodeInternal, "failed to create cache directory", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, cjerrors.Wrap(cjerrors.ErrCodeInternal, "failed to open sqlite cache", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS artifacts (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, cjerrors.Wrap(cjerrors.ErrCodeInternal, "failed to create artifacts table", err)
	}
	return &SQLiteStore{db: db, path: path}, nil
}

// Path returns the database file.
func (s *SQLiteStore) Path() string { return s.path }

// Get implements Store.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM artifacts WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, cjerrors.Wrap(cjerrors.ErrCodeInternal, "failed to read cache record", err)
	}
	return payload, true, nil
}

// Put implements Store.
func (s *SQLiteStore) Put(ctx context.Context, key string, data []byte) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO artifacts(key, payload) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET payload=excluded.payload`,
		key, data); err != nil {
		return cjerrors.Wrap(cjerrors.ErrCodeInternal, "failed to write cache record", err)
	}
	return nil
}

// Format implements Store.
func (s *SQLiteStore) Format() serializer.Format { return serializer.FormatJSON }

// Close implements Store.
func (s *SQLiteStore) Close() error { return s.db.Close() }
