package extract

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	// MaxDocumentSize is the hard ceiling on uploaded documents. Larger
	// payloads are rejected before any network call.
	MaxDocumentSize = 10 * 1024 * 1024 // 10 MiB

	// MinContextLength is the minimum extracted-text length, in characters,
	// for a document to be usable as grounding context.
	MinContextLength = 50
)

var (
	ErrFileTooLarge        = errors.New("document exceeds the maximum upload size")
	ErrInsufficientContent = errors.New("document did not yield enough readable text")
)

// TextExtractor converts a binary document payload into plain text.
// pkg/ocr provides the HTTP implementation.
type TextExtractor interface {
	Extract(ctx context.Context, filename string, payload []byte) (string, error)
}

// ExtractedContext is the usable grounding produced by a successful
// extraction.
type ExtractedContext struct {
	Text  string
	Label string // human-readable document label, used in the welcome turn
}

// Gate validates an uploaded document and submits it to the extractor.
// It either produces a usable context or rejects the document; no partial
// context ever escapes.
type Gate struct {
	extractor TextExtractor
}

func NewGate(extractor TextExtractor) *Gate {
	return &Gate{extractor: extractor}
}

// Submit runs the size check, issues exactly one extraction call, and
// verifies the result carries enough text to ground a conversation.
func (g *Gate) Submit(ctx context.Context, filename string, payload []byte) (*ExtractedContext, error) {
	if len(payload) > MaxDocumentSize {
		return nil, ErrFileTooLarge
	}

	text, err := g.extractor.Extract(ctx, filename, payload)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	// Counted in runes: multi-byte scripts must clear the same bar.
	if utf8.RuneCountInString(text) < MinContextLength {
		return nil, ErrInsufficientContent
	}

	return &ExtractedContext{
		Text:  text,
		Label: filename,
	}, nil
}
