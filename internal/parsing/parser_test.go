package parsing

import (
	"context"
	"errors"
	"testing"
)

func TestIsPDF(t *testing.T) {
	if !IsPDF([]byte("%PDF-1.7\n...")) {
		t.Fatalf("expected pdf header to be recognized")
	}
	if IsPDF([]byte("<html>")) {
		t.Fatalf("expected html to be rejected")
	}
	if IsPDF(nil) {
		t.Fatalf("expected empty input to be rejected")
	}
}

type stubParser struct {
	text  string
	err   error
	calls int
}

func (s *stubParser) ParseText(context.Context, []byte) (string, error) {
	s.calls++
	return s.text, s.err
}

func TestFallback_PrimarySucceeds(t *testing.T) {
	primary := &stubParser{text: "resume text"}
	secondary := &stubParser{text: "local text"}

	f := NewFallback(primary, secondary, nil)
	got, err := f.ParseText(context.Background(), []byte("%PDF-"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "resume text" {
		t.Fatalf("unexpected text %q", got)
	}
	if secondary.calls != 0 {
		t.Fatalf("fallback should not run when primary succeeds")
	}
}

func TestFallback_PrimaryFails(t *testing.T) {
	primary := &stubParser{err: errors.New("cloud down")}
	secondary := &stubParser{text: "local text"}

	f := NewFallback(primary, secondary, nil)
	got, err := f.ParseText(context.Background(), []byte("%PDF-"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "local text" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestFallback_PrimaryEmptyOutput(t *testing.T) {
	primary := &stubParser{text: "  \n"}
	secondary := &stubParser{text: "local text"}

	f := NewFallback(primary, secondary, nil)
	got, err := f.ParseText(context.Background(), []byte("%PDF-"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "local text" {
		t.Fatalf("blank primary output should fall through, got %q", got)
	}
}

func TestPDFText_RejectsNonPDF(t *testing.T) {
	_, err := NewPDFText().ParseText(context.Background(), []byte("plain text"))
	if !errors.Is(err, ErrNotPDF) {
		t.Fatalf("expected ErrNotPDF, got %v", err)
	}
}
