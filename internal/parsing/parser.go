// Package parsing turns an uploaded PDF into plain text. The cloud parsing
// service is the primary path; a local extractor covers deployments without
// a LlamaParse key and transient cloud failures.
package parsing

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
)

var (
	ErrNotPDF   = errors.New("not a pdf document")
	ErrNoText   = errors.New("no text extracted from document")
	ErrUpstream = errors.New("parsing service error")
)

type Parser interface {
	ParseText(ctx context.Context, data []byte) (string, error)
}

var pdfMagic = []byte("%PDF-")

// IsPDF sniffs the document header instead of trusting the file extension.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, pdfMagic)
}

// Fallback tries the primary parser and falls back on error or empty output.
type Fallback struct {
	primary  Parser
	fallback Parser
	logger   *log.Logger
}

func NewFallback(primary, fallback Parser, logger *log.Logger) *Fallback {
	return &Fallback{primary: primary, fallback: fallback, logger: logger}
}

func (f *Fallback) ParseText(ctx context.Context, data []byte) (string, error) {
	if f.primary != nil {
		text, err := f.primary.ParseText(ctx, data)
		if err == nil && strings.TrimSpace(text) != "" {
			return text, nil
		}
		if f.logger != nil {
			f.logger.Printf("Parsing fallback | primary_err=%v", err)
		}
	}

	if f.fallback == nil {
		return "", ErrUpstream
	}
	return f.fallback.ParseText(ctx, data)
}
