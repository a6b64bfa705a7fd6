package parsing

import (
	"context"
	"fmt"
	"os"

	"github.com/X3NOOO/llamaparse-go"
)

// LlamaParse delegates text extraction to the LlamaParse cloud service.
// The client library reads LLAMA_CLOUD_API_KEY from the environment.
type LlamaParse struct{}

// NewLlamaParse returns a cloud parser, or nil when no API key is set so the
// caller wires the local extractor only.
func NewLlamaParse(apiKey string) *LlamaParse {
	if apiKey == "" {
		return nil
	}
	// The library resolves credentials from the environment; keep it in
	// sync with config in case only a .env file provided the key.
	_ = os.Setenv("LLAMA_CLOUD_API_KEY", apiKey)
	return &LlamaParse{}
}

func (p *LlamaParse) ParseText(_ context.Context, data []byte) (string, error) {
	text, err := llamaparse.Parse(data, llamaparse.TEXT, nil, nil, nil, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return text, nil
}
