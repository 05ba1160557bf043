package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"attendflow/internal/domain/attendance"
)

// Gemini asks the Gemini API for HR insights over the attendance collection.
// Every reply is constrained to a JSON object matching Report.
type Gemini struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

func NewGemini(apiKey, model string, timeout time.Duration) *Gemini {
	return &Gemini{APIKey: apiKey, Model: model, Timeout: timeout}
}

func (g *Gemini) Summarize(ctx context.Context, records []attendance.Record) (*Report, error) {
	if g.APIKey == "" {
		return nil, ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, g.Timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.APIKey))
	if err != nil {
		slog.Warn("insight client init failed", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer client.Close()

	payload, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	model := client.GenerativeModel(g.Model)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary":         {Type: genai.TypeString},
			"trends":          {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"recommendations": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
		Required: []string{"summary", "trends", "recommendations"},
	}

	prompt := "Analyze this attendance data and provide HR insights: " + string(payload) +
		". Provide trends on punctuality, location hotspots, and potential issues."

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		slog.Warn("insight generation failed", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	text, ok := firstText(resp)
	if !ok {
		return nil, ErrUnavailable
	}

	var report Report
	if err := json.Unmarshal([]byte(text), &report); err != nil {
		slog.Warn("insight reply not parseable", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &report, nil
}

func firstText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil {
		return "", false
	}
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				return string(text), true
			}
		}
	}
	return "", false
}
