package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eric-downes/nosey-pytest/internal/adapter"
	"github.com/eric-downes/nosey-pytest/internal/controller"
	m "github.com/eric-downes/nosey-pytest/internal/model"
)

// MigrateArgs carries the settings for one migration run.
type MigrateArgs struct {
	// Scan describes where to look for nose files when Files is empty.
	Scan ScanArgs

	// Files lists explicit files to migrate, skipping discovery.
	Files []m.Path

	BackupDir    m.Path
	DryRun       bool
	UseConverter bool
	Verify       bool
	Review       ReviewPolicy
	Parallel     int
}

// StatusArgs carries the settings for a status report.
type StatusArgs struct {
	Scan   ScanArgs
	Rescan bool
}

// VerifyArgs carries the settings for a verification run.
type VerifyArgs struct {
	// Scan locates the project root and the fallback test directories.
	Scan ScanArgs

	// Files lists explicit files to verify, skipping tracking lookup.
	Files []m.Path
}

// Workflow ties the migration services together behind the commands.
type Workflow interface {
	Migrate(ctx context.Context, args MigrateArgs) error
	Scan(ctx context.Context, args ScanArgs) error
	Status(ctx context.Context, args StatusArgs) error
	Verify(ctx context.Context, args VerifyArgs) error
	Rules(ctx context.Context) error
	InitTracking(ctx context.Context, args ScanArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.PyFileAdapter
	adapter.TrackingStore
	controller.UI
	Scanner
	Migrator

	runner   adapter.TestRunnerAdapter
	registry *Registry
}

// NewWorkflow creates a Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	pyAdapter adapter.PyFileAdapter,
	tracker adapter.TrackingStore,
	runner adapter.TestRunnerAdapter,
	ui controller.UI,
	scanner Scanner,
	migrator Migrator,
	registry *Registry,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		PyFileAdapter:   pyAdapter,
		TrackingStore:   tracker,
		UI:              ui,
		Scanner:         scanner,
		Migrator:        migrator,
		runner:          runner,
		registry:        registry,
	}
}

func (w *workflow) Migrate(ctx context.Context, args MigrateArgs) error {
	files, err := w.candidateFiles(args)
	if err != nil {
		slog.Error("Failed to collect candidate files", "error", err)
		return fmt.Errorf("collect candidate files: %w", err)
	}

	parallel := args.Parallel
	if parallel < 1 {
		parallel = 1
	}

	w.DisplayMigrationPlan(ctx, len(files), parallel, args.DryRun)

	if len(files) == 0 {
		return nil
	}

	opts := MigrateOptions{
		Root:         args.Scan.Root,
		BackupDir:    args.BackupDir,
		DryRun:       args.DryRun,
		UseConverter: args.UseConverter,
		Verify:       args.Verify,
		Track:        !args.DryRun,
		Review:       args.Review,
		Parallel:     parallel,
		Progress: func(done, total int, result m.FileTransformResult) {
			w.DisplayFileResult(ctx, done, total, result)
		},
	}

	summary, err := w.MigrateBatch(ctx, files, opts)
	if err != nil {
		slog.Error("Migration batch failed", "error", err)
		return fmt.Errorf("migrate batch: %w", err)
	}

	if err := w.DisplaySummary(ctx, summary); err != nil {
		return fmt.Errorf("display summary: %w", err)
	}

	return nil
}

// candidateFiles resolves the file set for a migration run. Explicit files
// are kept only when they actually reference nose.
func (w *workflow) candidateFiles(args MigrateArgs) ([]m.Path, error) {
	if len(args.Files) == 0 {
		return w.FindNoseFiles(args.Scan)
	}

	files := make([]m.Path, 0, len(args.Files))

	for _, file := range args.Files {
		content, err := w.ReadFile(file)
		if err != nil || !w.UsesNose(string(content)) {
			slog.Warn("File does not appear to be a nose test, skipping", "path", file)
			continue
		}

		files = append(files, file)
	}

	return files, nil
}

func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	files, err := w.FindNoseFiles(args)
	if err != nil {
		slog.Error("Scan failed", "error", err)
		return fmt.Errorf("find nose files: %w", err)
	}

	analyses := make([]m.Analysis, 0, len(files))
	for _, file := range files {
		analyses = append(analyses, w.Analyze(file))
	}

	if err := w.DisplayScanReport(ctx, analyses); err != nil {
		return fmt.Errorf("display scan report: %w", err)
	}

	return nil
}

func (w *workflow) Status(ctx context.Context, args StatusArgs) error {
	data, err := w.Load()
	if err != nil {
		slog.Error("Failed to load tracking data", "error", err)
		return fmt.Errorf("load tracking data: %w", err)
	}

	if args.Rescan {
		data, err = w.Rescan(args.Scan, data)
		if err != nil {
			slog.Error("Rescan failed", "error", err)
			return fmt.Errorf("rescan: %w", err)
		}

		if err := w.Save(data); err != nil {
			slog.Error("Failed to save tracking data", "error", err)
			return fmt.Errorf("save tracking data: %w", err)
		}
	}

	if err := w.DisplayStatus(ctx, data); err != nil {
		return fmt.Errorf("display status: %w", err)
	}

	return nil
}

func (w *workflow) Verify(ctx context.Context, args VerifyArgs) error {
	files := args.Files

	if len(files) == 0 {
		var err error

		files, err = w.migratedFiles(args.Scan)
		if err != nil {
			slog.Error("Failed to collect migrated files", "error", err)
			return fmt.Errorf("collect migrated files: %w", err)
		}
	}

	results := make([]m.VerifyResult, 0, len(files))

	for _, file := range files {
		verdict, err := w.runner.Verify(ctx, args.Scan.Root, file)
		if err != nil {
			verdict = m.VerifyResult{Path: file, Passed: false, Output: err.Error()}
		}

		results = append(results, verdict)
	}

	if err := w.DisplayVerifyResults(ctx, results); err != nil {
		return fmt.Errorf("display verify results: %w", err)
	}

	return nil
}

// migratedFiles returns the recorded migrations, falling back to a scan for
// files already importing pytest when tracking has no entries.
func (w *workflow) migratedFiles(scan ScanArgs) ([]m.Path, error) {
	data, err := w.Load()
	if err != nil {
		return nil, err
	}

	if len(data.MigratedFiles) > 0 {
		files := make([]m.Path, 0, len(data.MigratedFiles))
		for _, rel := range data.MigratedFiles {
			files = append(files, w.JoinPath(string(scan.Root), rel))
		}

		return files, nil
	}

	return w.FindPytestFiles(scan)
}

func (w *workflow) Rules(ctx context.Context) error {
	if err := w.DisplayRules(ctx, w.registry.All()); err != nil {
		return fmt.Errorf("display rules: %w", err)
	}

	return nil
}

func (w *workflow) InitTracking(ctx context.Context, args ScanArgs) error {
	data, err := w.Rescan(args, m.TrackingData{})
	if err != nil {
		slog.Error("Initial scan failed", "error", err)
		return fmt.Errorf("initial scan: %w", err)
	}

	if err := w.Save(data); err != nil {
		slog.Error("Failed to save tracking data", "error", err)
		return fmt.Errorf("save tracking data: %w", err)
	}

	slog.Info("Initialized migration tracking",
		"directories", len(data.DirectoryStatus), "tests", data.TotalTests)

	if err := w.DisplayStatus(ctx, data); err != nil {
		return fmt.Errorf("display status: %w", err)
	}

	return nil
}
