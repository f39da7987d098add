// Package pkg provides shared utilities for nosey-pytest.
package pkg

import (
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// ResultSpool buffers items of type T on disk so that large migration batches
// never have to keep every change log in memory at once.
type ResultSpool[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	Range(f func(index uint64, item T) error) error
	Close() error
	Remove() error
}

type resultSpool[T any] struct {
	path    string
	file    *os.File
	encoder *gob.Encoder
	mu      sync.Mutex
	length  uint64
}

// Append implements ResultSpool.
func (s *resultSpool[T]) Append(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.encoder.Encode(item); err != nil {
		slog.Error("failed to encode item", "path", s.path, "index", s.length, "error", err)
		return fmt.Errorf("failed to encode item: %w", err)
	}

	s.length++
	slog.Debug("appended item", "path", s.path, "index", s.length-1)

	return nil
}

// Path implements ResultSpool.
func (s *resultSpool[T]) Path() string {
	return s.path
}

// Len implements ResultSpool.
func (s *resultSpool[T]) Len() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.length
}

// Range implements ResultSpool.
func (s *resultSpool[T]) Range(fn func(index uint64, item T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Open(s.path)
	if err != nil {
		slog.Error("failed to open file for range", "path", s.path, "error", err)
		return fmt.Errorf("failed to open file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close file", "path", s.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	for i := uint64(0); i < s.length; i++ {
		// A fresh value each iteration; gob leaves zero-valued fields of the
		// destination untouched.
		var item T

		if err := decoder.Decode(&item); err != nil {
			slog.Error("failed to decode item during range", "path", s.path, "index", i, "error", err)
			return fmt.Errorf("failed to decode item at index %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			slog.Warn("range callback error", "path", s.path, "index", i, "error", err)
			return err
		}
	}

	slog.Debug("range completed", "path", s.path, "count", s.length)

	return nil
}

// Close implements ResultSpool.
func (s *resultSpool[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file != nil {
		if err := s.file.Close(); err != nil {
			slog.Error("failed to close file", "path", s.path, "error", err)
			return err
		}

		s.file = nil
		slog.Debug("closed spool", "path", s.path, "length", s.length)
	}

	return nil
}

// Remove implements ResultSpool. Close the spool first.
func (s *resultSpool[T]) Remove() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil {
		slog.Error("failed to remove spool file", "path", s.path, "error", err)
		return fmt.Errorf("failed to remove spool file: %w", err)
	}

	return nil
}

// NewResultSpool creates a ResultSpool backed by a temp file under dir. An
// empty dir falls back to the system temp directory.
func NewResultSpool[T any](dir string) (ResultSpool[T], error) {
	if dir == "" {
		dir = os.TempDir()
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		slog.Error("failed to create spool directory", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create spool directory: %w", err)
	}

	file, err := os.CreateTemp(dir, "spool-*.gob")
	if err != nil {
		slog.Error("failed to create spool file", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create spool file: %w", err)
	}

	slog.Debug("created spool", "path", file.Name())

	return &resultSpool[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
		length:  0,
	}, nil
}
