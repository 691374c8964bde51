package deepseek

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerateText(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer key" {
			t.Errorf("missing bearer token")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":" Wheels up at nine. "}}]}`))
	}))
	defer srv.Close()

	c, err := New(Config{APIKey: "key", BaseURL: srv.URL + "/"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	text, err := c.GenerateText(context.Background(), "When do we leave?", true)
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if text != "Wheels up at nine." {
		t.Errorf("text = %q", text)
	}
	if got.Model != DefaultModel {
		t.Errorf("model = %q, want %q", got.Model, DefaultModel)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != roleSystem || got.Messages[1].Content != "When do we leave?" {
		t.Errorf("unexpected messages %+v", got.Messages)
	}
}

func TestGenerateText_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"api error", http.StatusTooManyRequests, `{"error":{"message":"rate limited"}}`},
		{"raw error", http.StatusBadGateway, `bad gateway`},
		{"no choices", http.StatusOK, `{"choices":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, _ := New(Config{APIKey: "key", BaseURL: srv.URL})
			if _, err := c.GenerateText(context.Background(), "hi", false); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := New(Config{}); err != ErrMissingAPIKey {
		t.Errorf("err = %v, want ErrMissingAPIKey", err)
	}
}
