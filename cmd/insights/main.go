// Command insights extracts the structured candidate record from a resume
// PDF on disk and prints it as JSON. It is the CLI counterpart of the
// upload endpoint, handy for smoke-testing API keys without the server.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"resume-insights/internal/config"
	"resume-insights/internal/domain/candidate"
	"resume-insights/internal/llm"
	"resume-insights/internal/parsing"
	"resume-insights/internal/schema"
)

func main() {
	flag.Parse()
	path := flag.Arg(0)
	if path == "" {
		log.Fatal("usage: insights <resume.pdf>")
	}

	cfg, err := config.LoadGemini()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	cand, err := extract(context.Background(), cfg, path)
	if err != nil {
		log.Fatalf("extraction failed: %v", err)
	}

	out, err := json.MarshalIndent(cand, "", "  ")
	if err != nil {
		log.Fatalf("failed to render result: %v", err)
	}
	fmt.Println(string(out))
}

func extract(ctx context.Context, cfg config.GeminiConfig, path string) (candidate.Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return candidate.Candidate{}, err
	}
	if !parsing.IsPDF(data) {
		return candidate.Candidate{}, parsing.ErrNotPDF
	}

	gemini, err := llm.NewGemini(ctx, cfg, log.Default())
	if err != nil {
		return candidate.Candidate{}, err
	}

	doc := llm.Document{}
	if file, err := gemini.UploadResume(ctx, bytes.NewReader(data), filepath.Base(path)); err == nil {
		doc.File = &file
	} else {
		text, perr := parsing.NewPDFText().ParseText(ctx, data)
		if perr != nil {
			return candidate.Candidate{}, perr
		}
		doc.Text = text
	}

	schemaJSON, err := schema.JSONFor[candidate.Candidate]()
	if err != nil {
		return candidate.Candidate{}, err
	}

	raw, err := gemini.GenerateJSON(ctx, doc, llm.BuildExtractionPrompt(schemaJSON))
	if err != nil {
		return candidate.Candidate{}, err
	}

	return schema.Decode[candidate.Candidate](llm.CleanJSON(raw))
}
