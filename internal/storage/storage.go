// Package storage persists evaluated ResultGrids to disk as CSV, using
// the same file-backed, mutex-guarded writer shape the teacher used for
// its simulation record stores.
package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/bxrne/launchrail/pkg/grid"
)

// ResultHeaders are the CSV column names every job's result file carries.
var ResultHeaders = []string{"lon", "lat", "value"}

// Storage is a service that writes one job's ResultGrid to a CSV file
// inside a record directory, keyed by job ID.
type Storage struct {
	recordDir string
	jobID     string
	mu        sync.RWMutex
	filePath  string
	writer    *csv.Writer
	file      *os.File
}

// NewStorage opens (creating if absent) the CSV file for jobID under
// recordDir.
func NewStorage(recordDir, jobID string) (*Storage, error) {
	absRecordDir, err := filepath.Abs(recordDir)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve record directory %s: %w", recordDir, err)
	}
	if err := os.MkdirAll(absRecordDir, 0755); err != nil {
		return nil, fmt.Errorf("storage: create record directory %s: %w", absRecordDir, err)
	}

	filePath := filepath.Join(absRecordDir, fmt.Sprintf("%s.csv", jobID))
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", filePath, err)
	}

	return &Storage{
		recordDir: absRecordDir,
		jobID:     jobID,
		filePath:  filePath,
		file:      file,
		writer:    csv.NewWriter(file),
	}, nil
}

// WriteResultGrid writes the header row followed by one row per grid
// point, in the grid's row-major order.
func (s *Storage) WriteResultGrid(rg *grid.ResultGrid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writer.Write(ResultHeaders); err != nil {
		return fmt.Errorf("storage: write headers: %w", err)
	}
	for _, p := range rg.Points {
		row := []string{
			strconv.FormatFloat(p.Lon, 'g', -1, 64),
			strconv.FormatFloat(p.Lat, 'g', -1, 64),
			strconv.FormatFloat(p.Value, 'g', -1, 64),
		}
		if err := s.writer.Write(row); err != nil {
			return fmt.Errorf("storage: write row: %w", err)
		}
	}
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		return fmt.Errorf("storage: flush: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writer != nil {
		s.writer.Flush()
		if err := s.writer.Error(); err != nil {
			return fmt.Errorf("storage: flush on close: %w", err)
		}
	}
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}

// FilePath returns the path of the underlying CSV file.
func (s *Storage) FilePath() string {
	return s.filePath
}

// ReadAll reads every row, including the header, from the underlying
// file.
func (s *Storage) ReadAll() ([][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.file.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("storage: seek: %w", err)
	}
	reader := csv.NewReader(s.file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("storage: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrRecordNotFound
	}
	return rows, nil
}
