package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/storefront-backend/internal/config"
)

func testService(apiKey string) *Service {
	cfg := &config.Config{}
	cfg.AI.APIKey = apiKey
	cfg.AI.TextModel = "gemini-2.5-flash"
	cfg.AI.Timeout = 5 * time.Second
	return NewService(cfg)
}

func TestGenerateDescriptionWithoutKeyReturnsMock(t *testing.T) {
	s := testService("")

	got := s.GenerateDescription(context.Background(), "Quilled Bookmark", "Home Decor", "paper, handmade")

	assert.Equal(t, "[AI MOCK] Experience the ultimate quality with the Quilled Bookmark. Perfect for Home Decor enthusiasts. Key features include: paper, handmade. Designed for modern living.", got)
}

func TestGenerateDescriptionSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "/models/gemini-2.5-flash:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"A lovely handmade bookmark."}]}}]}`))
	}))
	defer srv.Close()

	s := testService("test-key")
	s.baseURL = srv.URL

	got := s.GenerateDescription(context.Background(), "Quilled Bookmark", "Home Decor", "paper")
	assert.Equal(t, "A lovely handmade bookmark.", got)
}

func TestGenerateDescriptionUpstreamErrorDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	s := testService("test-key")
	s.baseURL = srv.URL

	got := s.GenerateDescription(context.Background(), "X", "Y", "z")
	assert.Equal(t, "Failed to generate description. Please try again.", got)
}

func TestGenerateDescriptionEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	s := testService("test-key")
	s.baseURL = srv.URL

	got := s.GenerateDescription(context.Background(), "X", "Y", "z")
	assert.Equal(t, "No description generated.", got)
}

func TestGenerateDescriptionUnreachableHost(t *testing.T) {
	s := testService("test-key")
	s.baseURL = "http://127.0.0.1:1"

	got := s.GenerateDescription(context.Background(), "X", "Y", "z")
	assert.Equal(t, "Failed to generate description. Please try again.", got)
}
