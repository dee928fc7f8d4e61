package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tether-backend/internal/config"
	apperrors "tether-backend/internal/errors"
	"tether-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryConfig(url string) *config.Config {
	return &config.Config{
		SummarizerURL:    url,
		SummarizerAPIKey: "test-key",
		SummarizerModel:  "gpt-4o-mini",
	}
}

func TestSummaryService_Summarize_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "gpt-4o-mini", payload["model"])
		messages := payload["messages"].([]interface{})
		require.Len(t, messages, 2)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  The team agreed to ship on Friday.  "}}]}`))
	}))
	defer server.Close()

	svc := service.NewSummaryService(summaryConfig(server.URL))

	summary, err := svc.Summarize(context.Background(), "lots of notes")

	assert.NoError(t, err)
	assert.Equal(t, "The team agreed to ship on Friday.", summary)
}

func TestSummaryService_Summarize_NotConfigured(t *testing.T) {
	svc := service.NewSummaryService(summaryConfig(""))

	assert.False(t, svc.Enabled())

	_, err := svc.Summarize(context.Background(), "notes")
	assert.True(t, apperrors.IsUpstream(err))
}

func TestSummaryService_Summarize_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc := service.NewSummaryService(summaryConfig(server.URL))

	_, err := svc.Summarize(context.Background(), "notes")

	assert.True(t, apperrors.IsUpstream(err))
	assert.Contains(t, err.Error(), "429")
}

func TestSummaryService_Summarize_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	svc := service.NewSummaryService(summaryConfig(server.URL))

	_, err := svc.Summarize(context.Background(), "notes")

	assert.True(t, apperrors.IsUpstream(err))
}
