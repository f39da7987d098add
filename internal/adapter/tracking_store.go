package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	m "github.com/eric-downes/nosey-pytest/internal/model"
)

// TrackingStore persists migration progress between runs.
type TrackingStore interface {
	// Load reads the tracking data, returning an empty snapshot when none
	// has been written yet.
	Load() (m.TrackingData, error)

	// Save writes the tracking data.
	Save(data m.TrackingData) error

	// Record stores the outcome for one file and marks it migrated when the
	// migration succeeded.
	Record(path m.Path, rec m.FileRecord) error
}

// JSONTrackingStore keeps tracking data in a JSON file under the project
// root, one entry per migrated file. Batch workers record outcomes
// concurrently, so every file access holds the mutex.
type JSONTrackingStore struct {
	root     m.Path
	dataPath m.Path
	fs       SourceFSAdapter
	mu       sync.Mutex
}

// NewJSONTrackingStore constructs a store writing to dataPath, resolved
// relative to the project root when not absolute.
func NewJSONTrackingStore(root, dataPath m.Path, fs SourceFSAdapter) *JSONTrackingStore {
	if dataPath == "" {
		dataPath = ".pytest_migration.json"
	}

	if !filepath.IsAbs(string(dataPath)) {
		dataPath = fs.JoinPath(string(root), string(dataPath))
	}

	return &JSONTrackingStore{
		root:     root,
		dataPath: dataPath,
		fs:       fs,
	}
}

// Load reads the tracking file, returning an empty snapshot when missing.
func (s *JSONTrackingStore) Load() (m.TrackingData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *JSONTrackingStore) load() (m.TrackingData, error) {
	data := m.TrackingData{
		DirectoryStatus: map[string]m.DirectoryStatus{},
		FileResults:     map[string]m.FileRecord{},
	}

	raw, err := s.fs.ReadFile(s.dataPath)
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil
		}

		return data, fmt.Errorf("reading tracking file: %w", err)
	}

	if err := json.Unmarshal(raw, &data); err != nil {
		return data, fmt.Errorf("parsing tracking file %s: %w", s.dataPath, err)
	}

	if data.DirectoryStatus == nil {
		data.DirectoryStatus = map[string]m.DirectoryStatus{}
	}

	if data.FileResults == nil {
		data.FileResults = map[string]m.FileRecord{}
	}

	return data, nil
}

// Save writes the tracking data with stable formatting.
func (s *JSONTrackingStore) Save(data m.TrackingData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(data)
}

func (s *JSONTrackingStore) save(data m.TrackingData) error {
	data.LastUpdated = time.Now().Format(time.RFC3339)

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tracking data: %w", err)
	}

	return s.fs.WriteFile(s.dataPath, append(raw, '\n'), 0o600)
}

// Record stores the outcome for one file. The read-modify-write runs under
// the mutex so concurrent batch workers never drop each other's entries.
func (s *JSONTrackingStore) Record(path m.Path, rec m.FileRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}

	rel, err := s.fs.RelPath(s.root, path)
	if err != nil {
		rel = path
	}

	rec.Updated = time.Now().Format(time.RFC3339)
	data.FileResults[string(rel)] = rec

	if rec.Success && !contains(data.MigratedFiles, string(rel)) {
		data.MigratedFiles = append(data.MigratedFiles, string(rel))
	}

	return s.save(data)
}

func contains(list []string, item string) bool {
	for _, entry := range list {
		if entry == item {
			return true
		}
	}

	return false
}
