package extract

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubExtractor struct {
	text  string
	err   error
	calls int
}

func (s *stubExtractor) Extract(ctx context.Context, filename string, payload []byte) (string, error) {
	s.calls++
	return s.text, s.err
}

func TestSubmitRejectsOversizedWithoutCalling(t *testing.T) {
	stub := &stubExtractor{text: strings.Repeat("a", 200)}
	gate := NewGate(stub)

	payload := make([]byte, 12*1024*1024) // 12 MB
	_, err := gate.Submit(context.Background(), "big.pdf", payload)

	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("err = %v, want ErrFileTooLarge", err)
	}
	if stub.calls != 0 {
		t.Errorf("extractor called %d times, want 0", stub.calls)
	}
}

func TestSubmitRejectsShortText(t *testing.T) {
	stub := &stubExtractor{text: "Hello"}
	gate := NewGate(stub)

	_, err := gate.Submit(context.Background(), "scan.pdf", []byte("%PDF-1.4"))

	if !errors.Is(err, ErrInsufficientContent) {
		t.Fatalf("err = %v, want ErrInsufficientContent", err)
	}
	if stub.calls != 1 {
		t.Errorf("extractor called %d times, want exactly 1", stub.calls)
	}
}

func TestSubmitPropagatesExtractorFailure(t *testing.T) {
	stub := &stubExtractor{err: errors.New("service unavailable")}
	gate := NewGate(stub)

	_, err := gate.Submit(context.Background(), "doc.pdf", []byte("%PDF-1.4"))

	if err == nil {
		t.Fatal("expected error from failed extraction")
	}
	if errors.Is(err, ErrFileTooLarge) || errors.Is(err, ErrInsufficientContent) {
		t.Errorf("extractor failure should not map to a validation rejection, got %v", err)
	}
}

func TestSubmitSuccess(t *testing.T) {
	stub := &stubExtractor{text: strings.Repeat("lorem ipsum ", 20)}
	gate := NewGate(stub)

	extracted, err := gate.Submit(context.Background(), "report.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if extracted.Label != "report.pdf" {
		t.Errorf("Label = %q, want report.pdf", extracted.Label)
	}
	if extracted.Text != stub.text {
		t.Errorf("Text not carried through")
	}
	if stub.calls != 1 {
		t.Errorf("extractor called %d times, want exactly 1", stub.calls)
	}
}

func TestSubmitCountsCharactersNotBytes(t *testing.T) {
	// 20 CJK characters are 60 bytes; the minimum is per character, so this
	// is still too short.
	stub := &stubExtractor{text: strings.Repeat("語", 20)}
	gate := NewGate(stub)

	_, err := gate.Submit(context.Background(), "cjk.pdf", []byte("%PDF-1.4"))
	if !errors.Is(err, ErrInsufficientContent) {
		t.Fatalf("err = %v, want ErrInsufficientContent for 20-character text", err)
	}

	stub.text = strings.Repeat("語", MinContextLength)
	if _, err := gate.Submit(context.Background(), "cjk.pdf", []byte("%PDF-1.4")); err != nil {
		t.Fatalf("50-character CJK text should pass, got %v", err)
	}
}

func TestSubmitAcceptsExactLimit(t *testing.T) {
	stub := &stubExtractor{text: strings.Repeat("x", MinContextLength)}
	gate := NewGate(stub)

	payload := make([]byte, MaxDocumentSize)
	if _, err := gate.Submit(context.Background(), "edge.pdf", payload); err != nil {
		t.Fatalf("payload at exactly 10 MiB with 50-char text should pass, got %v", err)
	}
}
