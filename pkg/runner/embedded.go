package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gojsonlint/pkg/config"
	"github.com/yaklabco/gojsonlint/pkg/fsutil"
	"github.com/yaklabco/gojsonlint/pkg/jsontext"
	"github.com/yaklabco/gojsonlint/pkg/lint"
)

// IsMarkdownPath reports whether path has a Markdown extension.
func IsMarkdownPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, md := range MarkdownExtensions() {
		if ext == md {
			return true
		}
	}
	return false
}

// processEmbedded validates the JSON blocks embedded in a Markdown file.
// Findings are mapped back to the host document's line numbers. Embedded
// documents are never rewritten, so the result carries the original host
// content as its display text.
func (r *Runner) processEmbedded(
	ctx context.Context,
	path string,
	cfg *config.Config,
) (*lint.PipelineResult, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	blocks, err := r.extractor.ExtractJSON(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("extract blocks from %s: %w", path, err)
	}

	host := &lint.FileResult{
		Snapshot:   jsontext.NewSnapshot(path, content),
		Valid:      true,
		Display:    string(content),
		RuleErrors: make(map[string]error),
	}

	for _, block := range blocks {
		blockResult, err := r.Pipeline.Engine.CheckSource(ctx, path, block.Content, cfg)
		if err != nil {
			return nil, fmt.Errorf("check block at %s:%d: %w", path, block.StartLine, err)
		}

		if blockResult.Valid {
			continue
		}

		if host.Valid {
			host.Valid = false
			host.ParseError = fmt.Sprintf("block at line %d: %s", block.StartLine, blockResult.ParseError)
		}

		offset := block.StartLine - 1
		for _, diag := range blockResult.Diagnostics {
			diag.FilePath = path
			diag.StartLine += offset
			diag.EndLine += offset
			host.Diagnostics = append(host.Diagnostics, diag)
		}
		for id, ruleErr := range blockResult.RuleErrors {
			host.RuleErrors[id] = ruleErr
		}
	}

	return &lint.PipelineResult{
		FileResult:   host,
		Path:         path,
		OriginalInfo: info,
		Formatted:    content,
	}, nil
}
