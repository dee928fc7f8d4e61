package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tether-backend/internal/config"
	apperrors "tether-backend/internal/errors"
	"tether-backend/internal/logger"
)

// SummaryService calls an external language model to produce short meeting
// summaries. It is strictly best-effort: callers are expected to swallow
// failures.
type SummaryService struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        *logger.Logger
}

// NewSummaryService creates a new summary service. Returns a disabled
// service (nil-safe via the interface) when no summarizer is configured.
func NewSummaryService(cfg *config.Config) *SummaryService {
	return &SummaryService{
		baseURL: strings.TrimSuffix(cfg.SummarizerURL, "/"),
		apiKey:  cfg.SummarizerAPIKey,
		model:   cfg.SummarizerModel,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: logger.New(),
	}
}

// Enabled reports whether a summarizer endpoint is configured
func (s *SummaryService) Enabled() bool {
	return s.baseURL != ""
}

type summaryRequest struct {
	Model    string           `json:"model"`
	Messages []summaryMessage `json:"messages"`
}

type summaryMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type summaryResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Summarize produces a short text summary of the given meeting notes
func (s *SummaryService) Summarize(ctx context.Context, text string) (string, error) {
	if !s.Enabled() {
		return "", apperrors.NewUpstreamError("summarizer", "not configured")
	}

	payload := summaryRequest{
		Model: s.model,
		Messages: []summaryMessage{
			{
				Role:    "system",
				Content: "Summarize the following meeting notes in two or three sentences. Mention decisions and action items.",
			},
			{
				Role:    "user",
				Content: text,
			},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create summary request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NewUpstreamError("summarizer", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		s.log.WithField("status", resp.StatusCode).Debug("summarizer returned non-200: ", string(raw))
		return "", apperrors.NewUpstreamError("summarizer", fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	var parsed summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", apperrors.NewUpstreamError("summarizer", "failed to decode response: "+err.Error())
	}
	if len(parsed.Choices) == 0 {
		return "", apperrors.NewUpstreamError("summarizer", "empty response")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
