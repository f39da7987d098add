package model

// Path represents a file system path.
type Path string

// Complexity grades how much work a candidate file needs.
type Complexity string

const (
	// ComplexitySimple marks files with only a handful of applicable rules.
	ComplexitySimple Complexity = "Simple"

	// ComplexityComplex marks files where many rules apply.
	ComplexityComplex Complexity = "Complex"

	// ComplexityUnknown marks files that could not be read.
	ComplexityUnknown Complexity = "Unknown"
)

// RuleMatchCount pairs a rule with how often it would fire on a file.
type RuleMatchCount struct {
	RuleID      RuleID
	Description string
	Matches     int
}

// Analysis describes which rules would fire on a candidate file.
type Analysis struct {
	Path       Path
	Applicable []RuleMatchCount
	Complexity Complexity
	Notes      []string
	Err        string
}

// VerifyResult is the outcome of running one migrated file's tests.
type VerifyResult struct {
	Path   Path
	Passed bool
	Output string
}

// Directory migration states stored in the tracking file.
const (
	DirectoryPending = "PENDING"
	DirectoryDone    = "DONE"
)

// DirectoryStatus tracks migration progress for one test directory.
type DirectoryStatus struct {
	Status   string `json:"status"`
	Migrated int    `json:"migrated"`
	Total    int    `json:"total"`
}

// FileRecord is the last processing outcome recorded for one file.
type FileRecord struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Hash    string `json:"hash,omitempty"`
	Updated string `json:"updated"`
}

// TrackingData mirrors the on-disk migration progress file.
type TrackingData struct {
	MigratedFiles   []string                   `json:"migrated_files"`
	TotalTests      int                        `json:"total_tests"`
	NoseTests       int                        `json:"nose_tests"`
	PytestTests     int                        `json:"pytest_tests"`
	DirectoryStatus map[string]DirectoryStatus `json:"directory_status"`
	FileResults     map[string]FileRecord      `json:"file_results,omitempty"`
	LastUpdated     string                     `json:"last_updated"`
}
