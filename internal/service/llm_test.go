package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAIGenerator_Generate(t *testing.T) {
	t.Parallel()

	var gotReq struct {
		Model       string  `json:"model"`
		Temperature float32 `json:"temperature"`
		MaxTokens   int     `json:"max_tokens"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4o-mini",
			"choices":[{"index":0,"message":{"role":"assistant","content":"hola"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	g := NewOpenAIGenerator("test-key", srv.URL+"/v1")
	got, err := g.Generate(context.Background(), "prompt", ModelConfig{Model: "gpt-4o-mini", Temperature: 0.3, MaxTokens: 800})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hola" {
		t.Errorf("got %q, want hola", got)
	}
	if gotReq.Model != "gpt-4o-mini" || gotReq.MaxTokens != 800 || len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" {
		t.Errorf("unexpected request %+v", gotReq)
	}
}

func TestOpenAIGenerator_ErrorsPropagate(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"slow down","type":"rate_limit"}}`))
	}))
	defer srv.Close()

	g := NewOpenAIGenerator("k", srv.URL+"/v1")
	if _, err := g.Generate(context.Background(), "p", ModelConfig{Model: "m"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewOpenAIGenerator_NoKey(t *testing.T) {
	t.Parallel()
	if g := NewOpenAIGenerator("", ""); g != nil {
		t.Fatalf("expected nil generator, got %+v", g)
	}
}
