package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	m "github.com/eric-downes/nosey-pytest/internal/model"
)

func TestJSONTrackingStore_LoadMissing(t *testing.T) {
	store := NewJSONTrackingStore(m.Path(t.TempDir()), "", NewLocalSourceFSAdapter())

	data, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want empty snapshot for missing file", err)
	}

	if data.DirectoryStatus == nil || data.FileResults == nil {
		t.Fatalf("Load() returned nil maps: %+v", data)
	}

	if len(data.MigratedFiles) != 0 || data.TotalTests != 0 {
		t.Fatalf("Load() = %+v, want zero values", data)
	}
}

func TestJSONTrackingStore_SaveAndLoad(t *testing.T) {
	root := t.TempDir()
	store := NewJSONTrackingStore(m.Path(root), "", NewLocalSourceFSAdapter())

	data := m.TrackingData{
		MigratedFiles: []string{"tests/test_math.py"},
		TotalTests:    3,
		NoseTests:     2,
		PytestTests:   1,
		DirectoryStatus: map[string]m.DirectoryStatus{
			"tests": {Status: m.DirectoryPending, Migrated: 1, Total: 3},
		},
	}

	if err := store.Save(data); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(root, ".pytest_migration.json"))
	if err != nil {
		t.Fatalf("Save() did not write the default tracking file: %v", err)
	}

	if !strings.HasSuffix(string(raw), "}\n") {
		t.Fatalf("Save() output does not end with a newline: %q", string(raw))
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.TotalTests != 3 || loaded.NoseTests != 2 || loaded.PytestTests != 1 {
		t.Fatalf("Load() counters = %d/%d/%d, want 3/2/1",
			loaded.TotalTests, loaded.NoseTests, loaded.PytestTests)
	}

	if got := loaded.DirectoryStatus["tests"]; got != (m.DirectoryStatus{Status: m.DirectoryPending, Migrated: 1, Total: 3}) {
		t.Fatalf("Load() DirectoryStatus[tests] = %+v", got)
	}

	if len(loaded.MigratedFiles) != 1 || loaded.MigratedFiles[0] != "tests/test_math.py" {
		t.Fatalf("Load() MigratedFiles = %v", loaded.MigratedFiles)
	}

	if _, err := time.Parse(time.RFC3339, loaded.LastUpdated); err != nil {
		t.Fatalf("Save() LastUpdated %q is not RFC3339: %v", loaded.LastUpdated, err)
	}

	t.Run("absolute data path wins over the root", func(t *testing.T) {
		other := t.TempDir()
		dataPath := filepath.Join(other, "track.json")

		elsewhere := NewJSONTrackingStore(m.Path(root), m.Path(dataPath), NewLocalSourceFSAdapter())

		if err := elsewhere.Save(m.TrackingData{TotalTests: 1}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		if _, err := os.Stat(dataPath); err != nil {
			t.Fatalf("Save() did not write to the absolute path: %v", err)
		}
	})
}

func TestJSONTrackingStore_LoadCorrupt(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, ".pytest_migration.json"), "{not json")

	store := NewJSONTrackingStore(m.Path(root), "", NewLocalSourceFSAdapter())

	_, err := store.Load()
	if err == nil {
		t.Fatalf("Load() expected error for corrupt tracking file")
	}

	if !strings.Contains(err.Error(), "parsing tracking file") {
		t.Fatalf("Load() error = %v, want parse failure", err)
	}
}

func TestJSONTrackingStore_Record(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "tests"))

	store := NewJSONTrackingStore(m.Path(root), "", NewLocalSourceFSAdapter())
	path := m.Path(filepath.Join(root, "tests", "test_math.py"))

	rec := m.FileRecord{Success: true, Message: "3 rewrites, converter applied, verify passed", Hash: "abc123"}
	if err := store.Record(path, rec); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	got, ok := loaded.FileResults["tests/test_math.py"]
	if !ok {
		t.Fatalf("Record() did not key the result by relative path: %v", loaded.FileResults)
	}

	if !got.Success || got.Message != rec.Message || got.Hash != "abc123" {
		t.Fatalf("Record() stored %+v", got)
	}

	if got.Updated == "" {
		t.Fatalf("Record() did not stamp the record")
	}

	if len(loaded.MigratedFiles) != 1 || loaded.MigratedFiles[0] != "tests/test_math.py" {
		t.Fatalf("Record() MigratedFiles = %v", loaded.MigratedFiles)
	}

	t.Run("repeat success does not duplicate the entry", func(t *testing.T) {
		if err := store.Record(path, rec); err != nil {
			t.Fatalf("Record() error = %v", err)
		}

		loaded, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if len(loaded.MigratedFiles) != 1 {
			t.Fatalf("Record() MigratedFiles = %v, want a single entry", loaded.MigratedFiles)
		}
	})

	t.Run("failures are recorded but not migrated", func(t *testing.T) {
		bad := m.Path(filepath.Join(root, "tests", "test_bad.py"))

		if err := store.Record(bad, m.FileRecord{Success: false, Message: "review: tty closed"}); err != nil {
			t.Fatalf("Record() error = %v", err)
		}

		loaded, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if _, ok := loaded.FileResults["tests/test_bad.py"]; !ok {
			t.Fatalf("Record() dropped the failed file result")
		}

		if len(loaded.MigratedFiles) != 1 {
			t.Fatalf("Record() MigratedFiles = %v, failed files must not be listed", loaded.MigratedFiles)
		}
	})
}

func TestJSONTrackingStore_RecordConcurrent(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "tests"))

	store := NewJSONTrackingStore(m.Path(root), "", NewLocalSourceFSAdapter())

	const files = 16

	var wg sync.WaitGroup

	for i := 0; i < files; i++ {
		wg.Add(1)

		go func(n int) {
			defer wg.Done()

			path := m.Path(filepath.Join(root, "tests", fmt.Sprintf("test_%02d.py", n)))
			if err := store.Record(path, m.FileRecord{Success: true, Message: "1 rewrites"}); err != nil {
				t.Errorf("Record() error = %v", err)
			}
		}(i)
	}

	wg.Wait()

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(loaded.MigratedFiles) != files {
		t.Fatalf("Record() kept %d migrated entries, want %d", len(loaded.MigratedFiles), files)
	}

	if len(loaded.FileResults) != files {
		t.Fatalf("Record() kept %d file results, want %d", len(loaded.FileResults), files)
	}
}
