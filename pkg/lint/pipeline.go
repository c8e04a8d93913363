package lint

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/gojsonlint/pkg/config"
	"github.com/yaklabco/gojsonlint/pkg/diff"
	"github.com/yaklabco/gojsonlint/pkg/fsutil"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// PipelineResult contains the result of processing a single file.
type PipelineResult struct {
	// FileResult contains the check outcome and display text.
	*FileResult

	// Path is the file path that was processed.
	Path string

	// OriginalInfo is the file state before processing (nil for in-memory
	// content).
	OriginalInfo *fsutil.FileInfo

	// Formatted is the full formatted output, newline-terminated, as it
	// would be written to disk.
	Formatted []byte

	// Changed is true if Formatted differs from the original content.
	Changed bool

	// Diff is the unified diff against the original (nil unless requested).
	Diff *diff.Diff

	// Skipped is true if a rewrite was skipped (e.g., due to concurrent
	// modification).
	Skipped bool

	// SkipReason explains why the rewrite was skipped.
	SkipReason string

	// BackupCreated is true if a backup was created for this file.
	BackupCreated bool

	// Written is true if the file was rewritten on disk.
	Written bool
}

// Summary returns a human-readable summary of the pipeline result.
func (pr *PipelineResult) Summary() string {
	switch {
	case pr.Skipped:
		return "skipped: " + pr.SkipReason
	case pr.Written && pr.BackupCreated:
		return "rewritten (backup created)"
	case pr.Written:
		return "rewritten"
	case pr.FileResult != nil && (!pr.Valid || pr.HasIssues()):
		return "issues found"
	case pr.Changed:
		return "formatting differs"
	default:
		return "ok"
	}
}

// PipelineOptions controls processing behavior.
type PipelineOptions struct {
	// Write rewrites changed files in place.
	Write bool

	// Diff computes a unified diff for changed files.
	Diff bool

	// Backup configures backup behavior for rewrites.
	Backup fsutil.BackupConfig

	// StrictRaceDetection uses hash comparison for modification detection.
	// When false, only mod time and size are checked.
	StrictRaceDetection bool
}

// DefaultPipelineOptions returns sensible defaults.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		Write:               false,
		Diff:                false,
		Backup:              fsutil.DefaultBackupConfig(),
		StrictRaceDetection: true,
	}
}

// Pipeline orchestrates the safe processing of a single file.
type Pipeline struct {
	// Engine is the check engine used for validation and heuristics.
	Engine *Engine
}

// NewPipeline creates a new pipeline with the given engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessFile runs the full pipeline for a single file:
//
//  1. Read and hash the original file.
//  2. Run the check engine (strict gate, heuristics, display text).
//  3. Compute the formatted output and whether it changed.
//  4. Generate a diff if requested.
//  5. For rewrites: check for concurrent modifications, create a backup,
//     and write the formatted output atomically.
func (p *Pipeline) ProcessFile(
	ctx context.Context,
	path string,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	originalContent, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	result, err := p.ProcessContent(ctx, path, originalContent, cfg, opts)
	if err != nil {
		return nil, err
	}
	result.OriginalInfo = info

	if !opts.Write || !result.Changed {
		return result, nil
	}

	// Never rewrite a file the strict parser rejected: the structural
	// reformatting is a display aid, not a repair.
	if !result.Valid {
		result.Skipped = true
		result.SkipReason = "not valid JSON"
		return result, nil
	}

	modified, err := p.checkModified(ctx, info, opts.StrictRaceDetection)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	if opts.Backup.Enabled {
		created, err := fsutil.CreateBackup(ctx, path, opts.Backup)
		if err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
		result.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(ctx, path, result.Formatted, info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	return result, nil
}

// ProcessContent processes in-memory content without touching the
// filesystem. This serves stdin input and tests.
func (p *Pipeline) ProcessContent(
	ctx context.Context,
	path string,
	originalContent []byte,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	fileResult, err := p.Engine.CheckSource(ctx, path, originalContent, cfg)
	if err != nil {
		return nil, err
	}

	result := &PipelineResult{
		FileResult: fileResult,
		Path:       path,
		Formatted:  terminateOutput(fileResult.Display),
	}
	result.Changed = !bytes.Equal(originalContent, result.Formatted)

	if opts.Diff && result.Changed {
		result.Diff = diff.Generate(path, originalContent, result.Formatted)
	}

	return result, nil
}

// terminateOutput newline-terminates non-empty display text so written
// files end with a newline.
func terminateOutput(display string) []byte {
	if display == "" {
		return []byte{}
	}
	return []byte(display + "\n")
}

// checkModified checks if a file has been modified since it was read.
func (p *Pipeline) checkModified(ctx context.Context, info *fsutil.FileInfo, strict bool) (bool, error) {
	var modified bool
	var err error

	if strict {
		modified, err = fsutil.CheckModified(ctx, info)
	} else {
		modified, err = fsutil.CheckModifiedQuick(ctx, info)
	}

	if err != nil {
		return false, fmt.Errorf("check modified: %w", err)
	}
	return modified, nil
}

// categorizeError wraps an error with the appropriate pipeline error type.
// It uses errors.Is for robust error detection rather than string matching.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}

	return err
}

// IsPipelineError checks if an error is a known pipeline error type.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrWriteFailure)
}

// BackupConfigFromConfig creates an fsutil.BackupConfig from config.Config.
func BackupConfigFromConfig(cfg *config.Config) fsutil.BackupConfig {
	if cfg == nil {
		return fsutil.DefaultBackupConfig()
	}
	return fsutil.BackupConfig{
		Enabled: cfg.Backups.Enabled && !cfg.NoBackups,
		Mode:    fsutil.BackupMode(cfg.Backups.Mode),
	}
}

// PipelineOptionsFromConfig creates PipelineOptions from config.Config.
func PipelineOptionsFromConfig(cfg *config.Config) PipelineOptions {
	if cfg == nil {
		return DefaultPipelineOptions()
	}
	return PipelineOptions{
		Write:               cfg.Write,
		Diff:                cfg.Diff,
		Backup:              BackupConfigFromConfig(cfg),
		StrictRaceDetection: true,
	}
}
