package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/eric-downes/nosey-pytest/internal/adapter"
	m "github.com/eric-downes/nosey-pytest/internal/model"
	"github.com/eric-downes/nosey-pytest/pkg"
)

// ReviewPolicy decides whether a changed file is written back to disk.
// Implementations live in the controller layer: auto keep, auto discard, or
// an interactive prompt showing the diff.
type ReviewPolicy interface {
	Decide(path m.Path, before, after string) (bool, error)
}

// MigrateOptions control how a migration run treats each file.
type MigrateOptions struct {
	// Root is the project root; backup paths and tracking entries are
	// relative to it.
	Root m.Path

	// BackupDir receives a pre-write copy of every file, mirroring the
	// project layout.
	BackupDir m.Path

	// DryRun computes and reports changes without writing anything.
	DryRun bool

	// UseConverter runs the external assertion converter on files that still
	// carry nose.tools assertions after the rule passes.
	UseConverter bool

	// Verify runs the migrated file's tests and restores the backup when
	// they fail.
	Verify bool

	// Track records per-file outcomes in the tracking store.
	Track bool

	// Review, when set, decides whether changed files are written.
	Review ReviewPolicy

	// Parallel is the worker count for batch runs. Values below 1 mean 1.
	Parallel int

	// SpoolDir overrides where batch results are spooled. Empty uses the
	// system temp directory.
	SpoolDir string

	// Progress, when set, receives each completed file result.
	Progress func(done, total int, result m.FileTransformResult)
}

// Migrator runs the rule catalogue against candidate files and coordinates
// backup, verification and tracking around each rewrite.
type Migrator interface {
	MigrateFile(ctx context.Context, path m.Path, opts MigrateOptions) m.FileTransformResult
	MigrateBatch(ctx context.Context, paths []m.Path, opts MigrateOptions) (m.MigrationSummary, error)
}

type migrator struct {
	fs         adapter.SourceFSAdapter
	converter  adapter.ConverterAdapter
	runner     adapter.TestRunnerAdapter
	tracker    adapter.TrackingStore
	registry   *Registry
	rewriter   Rewriter
	structural StructuralRewriter
}

// NewMigrator constructs a Migrator backed by the provided adapters and rule
// registry.
func NewMigrator(
	fs adapter.SourceFSAdapter,
	converter adapter.ConverterAdapter,
	runner adapter.TestRunnerAdapter,
	tracker adapter.TrackingStore,
	registry *Registry,
) Migrator {
	return &migrator{
		fs:         fs,
		converter:  converter,
		runner:     runner,
		tracker:    tracker,
		registry:   registry,
		rewriter:   NewRewriter(),
		structural: NewStructuralRewriter(),
	}
}

func (p *migrator) MigrateFile(ctx context.Context, path m.Path, opts MigrateOptions) m.FileTransformResult {
	result := m.FileTransformResult{
		Path:      path,
		Converter: m.ConverterNotNeeded,
		Verify:    m.VerifySkipped,
	}

	raw, err := p.fs.ReadFile(path)
	if err != nil {
		slog.Warn("Skipping unreadable file", "path", path, "error", err)
		result.Failure = unreadableFileNote
		p.record(path, result, opts, result.Failure)

		return result
	}

	content := string(raw)
	transformed, changeLog, unresolved := p.transform(content)
	result.ChangeLog = changeLog
	result.Unresolved = unresolved

	transformed = p.runConverter(ctx, transformed, &result, opts)
	result.Changed = transformed != content

	if !result.Changed {
		p.record(path, result, opts, "No transformations applied")
		return result
	}

	if opts.DryRun {
		// Dry runs report the would-be changes and touch nothing.
		return result
	}

	if opts.Review != nil {
		keep, err := opts.Review.Decide(path, content, transformed)
		if err != nil {
			result.Failure = fmt.Sprintf("review: %v", err)
			p.record(path, result, opts, result.Failure)

			return result
		}

		if !keep {
			slog.Info("Changes discarded by review", "path", path)
			result.Discarded = true
			p.record(path, result, opts, "Changes discarded by review")

			return result
		}
	}

	if _, err := p.fs.Backup(opts.Root, opts.BackupDir, path); err != nil {
		slog.Error("Failed to back up file", "path", path, "error", err)
		result.Failure = fmt.Sprintf("backup: %v", err)
		p.record(path, result, opts, result.Failure)

		return result
	}

	if err := p.fs.WriteFile(path, []byte(transformed), 0o600); err != nil {
		slog.Error("Failed to write migrated file", "path", path, "error", err)
		p.restore(opts, path, &result)
		result.Written = false
		result.Failure = fmt.Sprintf("write: %v", err)
		p.record(path, result, opts, result.Failure)

		return result
	}

	result.Written = true

	if opts.Verify {
		p.verify(ctx, path, &result, opts)
	}

	p.record(path, result, opts, recordMessage(result))

	return result
}

// transform runs the textual pass, then the structural pass, then import
// consolidation when any rule fired.
func (p *migrator) transform(content string) (string, m.ChangeLog, []m.RuleID) {
	text, changeLog, unresolved := p.rewriter.Apply(content, p.registry.TextualRules())

	text, structuralLog, structuralUnresolved := p.structural.Apply(text, p.registry.StructuralRules())
	changeLog = append(changeLog, structuralLog...)
	unresolved = append(unresolved, structuralUnresolved...)

	if len(changeLog) > 0 {
		consolidated, records := consolidateImports(text)
		text = consolidated
		changeLog = append(changeLog, records...)
	}

	return text, changeLog, unresolved
}

// converterNeeded mirrors the gate the migration tooling has always used:
// only files still carrying nose.tools assertions go to the converter.
func converterNeeded(content string) bool {
	return strings.Contains(content, "nose.tools.assert_") ||
		strings.Contains(content, "from nose.tools import")
}

func (p *migrator) runConverter(ctx context.Context, content string, result *m.FileTransformResult, opts MigrateOptions) string {
	if !converterNeeded(content) {
		result.Converter = m.ConverterNotNeeded
		return content
	}

	if !opts.UseConverter {
		result.Converter = m.ConverterSkipped
		result.ConverterNote = "converter disabled"

		return content
	}

	if !p.converter.Available() {
		slog.Warn("Assertion converter not available", "converter", p.converter.Name())
		result.Converter = m.ConverterSkipped
		result.ConverterNote = fmt.Sprintf("%s not found on PATH", p.converter.Name())

		return content
	}

	converted, err := p.converter.Convert(ctx, content)
	if err != nil {
		slog.Warn("Assertion converter failed", "path", result.Path, "error", err)
		result.Converter = m.ConverterFailed
		result.ConverterNote = err.Error()

		return content
	}

	if converted == content {
		result.Converter = m.ConverterUnchanged
		return content
	}

	result.Converter = m.ConverterApplied

	return converted
}

func (p *migrator) verify(ctx context.Context, path m.Path, result *m.FileTransformResult, opts MigrateOptions) {
	verdict, err := p.runner.Verify(ctx, opts.Root, path)
	if err != nil {
		slog.Error("Verification run failed", "path", path, "error", err)
		result.Verify = m.VerifyFailed
		result.VerifyNote = err.Error()
		p.restore(opts, path, result)

		return
	}

	if verdict.Passed {
		result.Verify = m.VerifyPassed
		return
	}

	slog.Warn("Verification failed, restoring backup", "path", path)
	result.Verify = m.VerifyFailed
	result.VerifyNote = tail(verdict.Output, 400)
	p.restore(opts, path, result)
}

func (p *migrator) restore(opts MigrateOptions, path m.Path, result *m.FileTransformResult) {
	if err := p.fs.Restore(opts.Root, opts.BackupDir, path); err != nil {
		slog.Error("Failed to restore backup", "path", path, "error", err)
		return
	}

	result.Restored = true
}

// record stores the outcome in the tracking store. Tracking failures are
// logged, never escalated; they must not undo a migration.
func (p *migrator) record(path m.Path, result m.FileTransformResult, opts MigrateOptions, message string) {
	if !opts.Track {
		return
	}

	rec := m.FileRecord{
		Success: migrationSucceeded(result),
		Message: message,
	}

	if rec.Success {
		if hash, err := p.fs.HashFile(path); err == nil {
			rec.Hash = hash
		}
	}

	if err := p.tracker.Record(path, rec); err != nil {
		slog.Warn("Failed to record migration outcome", "path", path, "error", err)
	}
}

func migrationSucceeded(result m.FileTransformResult) bool {
	return result.Changed && result.Written && !result.Restored && !result.Failed()
}

func recordMessage(result m.FileTransformResult) string {
	parts := []string{fmt.Sprintf("%d rewrites", len(result.ChangeLog))}

	if len(result.Unresolved) > 0 {
		parts = append(parts, fmt.Sprintf("%d unresolved rules", len(result.Unresolved)))
	}

	parts = append(parts, "converter "+string(result.Converter), "verify "+string(result.Verify))

	return strings.Join(parts, ", ")
}

func tail(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}

	return s[len(s)-max:]
}

func (p *migrator) MigrateBatch(ctx context.Context, paths []m.Path, opts MigrateOptions) (m.MigrationSummary, error) {
	spool, err := pkg.NewResultSpool[m.FileTransformResult](opts.SpoolDir)
	if err != nil {
		return m.MigrationSummary{}, fmt.Errorf("create result spool: %w", err)
	}

	defer func() {
		if err := spool.Close(); err == nil {
			_ = spool.Remove()
		}
	}()

	parallel := opts.Parallel
	if parallel < 1 {
		parallel = 1
	}

	var group errgroup.Group
	group.SetLimit(parallel)

	var progressMu sync.Mutex

	done := 0

	for _, path := range paths {
		currentPath := path

		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result := p.MigrateFile(ctx, currentPath, opts)

			if err := spool.Append(result); err != nil {
				return err
			}

			if opts.Progress != nil {
				progressMu.Lock()
				done++
				opts.Progress(done, len(paths), result)
				progressMu.Unlock()
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return m.MigrationSummary{}, err
	}

	return summaryFromResults(spool)
}
