package database

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// DefaultPath is the log file name, relative to the working directory.
const DefaultPath = "stress_logs.csv"

// ErrNoData means the log file has not been created yet.
var ErrNoData = errors.New("no log data found yet")

// DB is a flat CSV file with a fixed header. Writers in this process are
// serialized; the header is written by whoever finds the file empty.
type DB struct {
	path string
	mu   sync.Mutex
}

func NewDB(path string) *DB {
	if path == "" {
		path = DefaultPath
	}
	return &DB{path: path}
}

func (db *DB) Path() string {
	return db.path
}

// Exists reports whether the log file has been created.
func (db *DB) Exists() bool {
	_, err := os.Stat(db.path)
	return err == nil
}

// appendRow writes row, writing the header first when the file is new or empty.
func (db *DB) appendRow(header, row []string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if dir := filepath.Dir(db.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(db.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL|os.O_APPEND, 0o644)
	switch {
	case err == nil:
		log.Printf("📄 Created interaction log %s", db.path)
		defer f.Close()
		return writeRows(f, header, row)
	case errors.Is(err, fs.ErrExist):
		f, err = os.OpenFile(db.path, os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log: %w", err)
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return fmt.Errorf("failed to stat log: %w", err)
		}
		if info.Size() == 0 {
			log.Printf("📄 Interaction log %s is empty, writing header", db.path)
			return writeRows(f, header, row)
		}
		return writeRows(f, row)
	default:
		return fmt.Errorf("failed to create log: %w", err)
	}
}

// writeRows encodes rows into one buffer so each append is a single write.
func writeRows(f *os.File, rows ...[]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to encode row: %w", err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write log: %w", err)
	}
	return nil
}

// readRows returns every data row. A leading row equal to header is skipped.
func (db *DB) readRows(header []string) ([][]string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	f, err := os.Open(db.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse log: %w", err)
	}
	if len(all) == 0 {
		return [][]string{}, nil
	}

	first := 0
	if slices.Equal(all[0], header) {
		first = 1
	}

	rows := make([][]string, 0, len(all)-first)
	for i, row := range all[first:] {
		if len(row) != len(header) {
			log.Printf("⚠️ Skipping log row %d: expected %d columns, got %d", first+i+1, len(header), len(row))
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
