// internal/pkg/ai/service.go
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/metrics"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Service generates product descriptions through the Gemini REST API.
// It degrades rather than fails: with no API key it returns a templated
// placeholder, and on upstream errors it returns an error-indicating
// string. It never returns an error to its caller.
type Service struct {
	config     *config.Config
	httpClient *http.Client
	baseURL    string
}

// NewService creates a new description generation service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.AI.Timeout},
		baseURL:    defaultBaseURL,
	}
}

// GenerateDescription produces a short product description from the
// product name, its category and comma-separated keyword hints.
func (s *Service) GenerateDescription(ctx context.Context, name, category, keywords string) string {
	if s.config.AI.APIKey == "" {
		metrics.AIDescriptionRequestsTotal.WithLabelValues("mock").Inc()
		return fmt.Sprintf("[AI MOCK] Experience the ultimate quality with the %s. Perfect for %s enthusiasts. Key features include: %s. Designed for modern living.", name, category, keywords)
	}

	text, err := s.generate(ctx, name, category, keywords)
	if err != nil {
		logrus.WithError(err).Warn("description generation failed")
		metrics.AIDescriptionRequestsTotal.WithLabelValues("error").Inc()
		return "Failed to generate description. Please try again."
	}
	if text == "" {
		metrics.AIDescriptionRequestsTotal.WithLabelValues("empty").Inc()
		return "No description generated."
	}

	metrics.AIDescriptionRequestsTotal.WithLabelValues("ok").Inc()
	return text
}

func (s *Service) generate(ctx context.Context, name, category, keywords string) (string, error) {
	prompt := fmt.Sprintf(`Write a compelling, SEO-friendly ecommerce product description (max 100 words) for a product named %q in the category %q. Keywords to include: %s. Tone: Professional and persuasive.`, name, category, keywords)

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.config.AI.TextModel, s.config.AI.APIKey)

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]interface{}{{"text": prompt}}},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API returned %d: %s", resp.StatusCode, string(respBytes))
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}
