// Package mdextract extracts fenced code blocks from Markdown documents
// using goldmark. It exists so embedded JSON snippets in documentation can
// be validated in place, with findings mapped back to the host document's
// line numbers.
package mdextract

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/gojsonlint/pkg/jsontext"
	"github.com/yaklabco/gojsonlint/pkg/langdetect"
)

// Block is a fenced code block extracted from a Markdown document.
type Block struct {
	// Language is the fence info tag ("json", "yaml", ...). Empty for
	// untagged fences.
	Language string

	// StartLine is the 1-based line number of the block's first content
	// line within the host document.
	StartLine int

	// Content is the block body, without the fence markers.
	Content []byte
}

// Extractor parses Markdown and collects fenced code blocks.
type Extractor struct {
	md goldmark.Markdown
}

// New creates a new Extractor.
func New() *Extractor {
	return &Extractor{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// Extract returns all fenced code blocks in the document, in order.
func (e *Extractor) Extract(ctx context.Context, content []byte) ([]Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("extract cancelled: %w", err)
	}

	reader := text.NewReader(content)
	doc := e.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	// Offset-to-line mapping for the host document.
	snapshot := jsontext.NewSnapshot("", content)

	var blocks []Block
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		fence, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		block, ok := buildBlock(fence, content, snapshot)
		if ok {
			blocks = append(blocks, block)
		}
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk markdown: %w", err)
	}

	return blocks, nil
}

// ExtractJSON returns the fenced blocks that should be validated as JSON:
// blocks tagged "json", plus untagged blocks whose content looks like JSON.
func (e *Extractor) ExtractJSON(ctx context.Context, content []byte) ([]Block, error) {
	blocks, err := e.Extract(ctx, content)
	if err != nil {
		return nil, err
	}

	var jsonBlocks []Block
	for _, b := range blocks {
		switch {
		case b.Language == langdetect.LangJSON:
			jsonBlocks = append(jsonBlocks, b)
		case b.Language == "" && langdetect.IsJSON(b.Content):
			jsonBlocks = append(jsonBlocks, b)
		}
	}
	return jsonBlocks, nil
}

// buildBlock converts a goldmark fence node into a Block. Returns false
// for empty fences, which have nothing to validate.
func buildBlock(fence *ast.FencedCodeBlock, source []byte, snapshot *jsontext.Snapshot) (Block, bool) {
	lines := fence.Lines()
	if lines.Len() == 0 {
		return Block{}, false
	}

	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}

	startLine, _ := snapshot.LineAt(lines.At(0).Start)

	return Block{
		Language:  string(fence.Language(source)),
		StartLine: startLine,
		Content:   buf.Bytes(),
	}, true
}
