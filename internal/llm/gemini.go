package llm

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/abenov/mathai/internal/chat"
)

// geminiModels maps friendly names to Gemini model IDs.
var geminiModels = map[string]string{
	"gemini-flash": "gemini-2.0-flash",
	"gemini-pro":   "gemini-2.0-pro",
}

// GeminiProvider implements Provider using the Google Gemini SDK. It is
// the only provider that supports grounded answers: when EnableSearch is
// set, the google search tool is attached and grounding chunks are mapped
// to Sources.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a new Gemini provider.
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	model := resolveModel(cfg.Model, geminiModels)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.MaxTokens),
	}

	if req.Temperature > 0 {
		temp := float32(req.Temperature)
		config.Temperature = &temp
	}

	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	if req.EnableSearch {
		config.Tools = []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		}
	}

	contents, err := buildGeminiContents(req.Messages)
	if err != nil {
		return nil, err
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	resp := &Response{
		Text:       result.Text(),
		Sources:    extractGeminiSources(result),
		Model:      p.model,
		StopReason: mapGeminiStopReason(result),
	}

	if result.UsageMetadata != nil {
		resp.Usage = Usage{
			InputTokens:  int(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(result.UsageMetadata.TotalTokenCount),
		}
	}

	return resp, nil
}

func (p *GeminiProvider) ModelID() string {
	return p.model
}

func buildGeminiContents(msgs []Message) ([]*genai.Content, error) {
	out := make([]*genai.Content, len(msgs))
	for i, m := range msgs {
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}

		parts := []*genai.Part{{Text: m.Content}}

		if m.Attachment != nil {
			raw, err := base64.StdEncoding.DecodeString(m.Attachment.Data)
			if err != nil {
				return nil, fmt.Errorf("decode attachment: %w", err)
			}
			parts = append(parts, &genai.Part{
				InlineData: &genai.Blob{
					MIMEType: m.Attachment.MimeType,
					Data:     raw,
				},
			})
		}

		out[i] = &genai.Content{
			Role:  role,
			Parts: parts,
		}
	}
	return out, nil
}

// extractGeminiSources maps grounding chunks to citation sources.
func extractGeminiSources(result *genai.GenerateContentResponse) []chat.Source {
	if len(result.Candidates) == 0 || result.Candidates[0].GroundingMetadata == nil {
		return nil
	}

	var sources []chat.Source
	for _, chunk := range result.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk.Web == nil {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = "Дереккөз"
		}
		sources = append(sources, chat.Source{
			Title: title,
			URI:   chunk.Web.URI,
		})
	}
	return sources
}

func mapGeminiStopReason(result *genai.GenerateContentResponse) string {
	if len(result.Candidates) > 0 {
		switch result.Candidates[0].FinishReason {
		case "STOP":
			return "end"
		case "MAX_TOKENS":
			return "max_tokens"
		}
	}
	return "end"
}

func mapGeminiError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			return &ErrRateLimit{Err: err}
		case apiErr.Code >= 500:
			return &ErrProviderUnavailable{Err: err}
		}
	}
	return &ErrProviderUnavailable{Err: err}
}
