// Package jsonfile stores record collections as pretty-printed JSON arrays,
// one file per collection, inside a data directory.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store implements ports.RecordBackend on the local filesystem.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir. The directory is created on the
// first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the file backing collection.
func (s *Store) Path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Read returns the records of collection. A missing or blank file holds no
// records.
func (s *Store) Read(_ context.Context, collection string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(s.Path(collection))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", collection, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", collection, err)
	}
	return records, nil
}

// Write replaces the file of collection. The new content is written to a
// temporary file and renamed into place so readers never see a partial array.
func (s *Store) Write(_ context.Context, collection string, records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, collection+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", collection, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", collection, err)
	}
	if err := os.Rename(tmpName, s.Path(collection)); err != nil {
		return fmt.Errorf("replace %s: %w", collection, err)
	}
	return nil
}

// Ping reports whether the data directory is usable. A directory that does
// not exist yet is fine as long as its parent does.
func (s *Store) Ping(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		parent := filepath.Dir(filepath.Clean(s.dir))
		if _, perr := os.Stat(parent); perr != nil {
			return fmt.Errorf("data dir parent: %w", perr)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("data dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data dir %s is not a directory", s.dir)
	}
	return nil
}
