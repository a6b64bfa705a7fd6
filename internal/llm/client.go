package llm

import (
	"context"
	"errors"
	"io"
)

var ErrEmptyResponse = errors.New("empty model response")

// UploadedFile references a document stored with the model provider's file
// service. The URI stays valid for the provider's retention window, which is
// what lets a later job-match call reuse the resume without a re-upload.
type UploadedFile struct {
	URI         string `json:"uri"`
	MIMEType    string `json:"mime_type"`
	DisplayName string `json:"display_name,omitempty"`
}

// Document is the resume as the model sees it. File is preferred when set;
// Text is the inline fallback used when the file upload was not possible.
type Document struct {
	File *UploadedFile `json:"file,omitempty"`
	Text string        `json:"text,omitempty"`
}

type Client interface {
	// UploadResume stores the raw PDF with the provider's file service.
	UploadResume(ctx context.Context, r io.Reader, displayName string) (UploadedFile, error)

	// GenerateJSON sends the document plus prompt and returns the model's
	// raw textual reply, which callers clean and schema-validate.
	GenerateJSON(ctx context.Context, doc Document, prompt string) (string, error)
}
