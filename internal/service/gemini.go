package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/arakitakashi/homework-coach-robo-sub000/internal/config"
)

// GeminiGenerator implements TextGenerator against the Gemini REST API.
type GeminiGenerator struct {
	config *config.AIConfig
	model  string
	client *http.Client
}

// NewGeminiGenerator creates a generator bound to one Gemini model.
func NewGeminiGenerator(cfg *config.AIConfig, model string) *GeminiGenerator {
	return &GeminiGenerator{
		config: cfg,
		model:  model,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// Generate sends the prompt to Gemini and returns the first candidate's
// text. Failures and empty candidates are reported as ErrGeneration.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	url := fmt.Sprintf("%s?key=%s", g.config.ModelEndpoint(g.model), g.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: gemini status %d: %s", ErrGeneration, resp.StatusCode, body)
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("%w: empty response from gemini", ErrGeneration)
}
