package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseExtractionJSON(t *testing.T) {
	valid := `{
  "customer": {
    "full_name": "Amit Verma",
    "phone": "9988776655",
    "address": "45 Park Street",
    "city": "Kolkata",
    "locality": "Salt Lake"
  },
  "interaction": {
    "summary": "discussed demo and next steps"
  }
}`

	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "plain JSON",
			content: valid,
		},
		{
			name:    "markdown fenced JSON",
			content: "```json\n" + valid + "\n```",
		},
		{
			name:    "bare fenced JSON",
			content: "```\n" + valid + "\n```",
		},
		{
			name:    "not JSON",
			content: "I could not extract anything useful.",
			wantErr: true,
		},
		{
			name:    "wrong shape",
			content: `{"customer": "Amit Verma"}`,
			wantErr: true,
		},
		{
			name:    "unknown fields rejected",
			content: `{"customer": {"full_name": "A B", "email": "a@b.c"}, "interaction": {"summary": ""}}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseExtractionJSON(tt.content)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseExtractionJSON() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseExtractionJSON() error = %v", err)
			}
			if got, want := result.Customer.FullName, "Amit Verma"; got != want {
				t.Errorf("FullName = %q, want %q", got, want)
			}
			if got, want := result.Customer.Phone, "9988776655"; got != want {
				t.Errorf("Phone = %q, want %q", got, want)
			}
			for field, want := range llmConfidence {
				if got := result.Confidence[field]; got != want {
					t.Errorf("Confidence[%s] = %v, want %v", field, got, want)
				}
			}
		})
	}
}

func TestNormalizeLLMPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"9988776655", "9988776655"},
		{"+91 99887 76655", "9988776655"},
		{"99-88-77-66-55", "9988776655"},
		{"12345", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeLLMPhone(tt.in); got != tt.want {
			t.Errorf("normalizeLLMPhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewProbabilisticExtractor(t *testing.T) {
	tests := []struct {
		name          string
		cfg           Config
		wantErr       bool
		wantAvailable bool
	}{
		{
			name:          "empty provider gets noop",
			cfg:           Config{},
			wantAvailable: false,
		},
		{
			name:          "disabled provider gets noop",
			cfg:           Config{Provider: "disabled"},
			wantAvailable: false,
		},
		{
			name:          "openai with key",
			cfg:           Config{Provider: "openai", APIKey: "test-key"},
			wantAvailable: true,
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "oracle"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := NewProbabilisticExtractor(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("NewProbabilisticExtractor() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProbabilisticExtractor() error = %v", err)
			}
			if got := ext.Available(); got != tt.wantAvailable {
				t.Errorf("Available() = %v, want %v", got, tt.wantAvailable)
			}
		})
	}
}

func TestOpenAIExtractor_Extract(t *testing.T) {
	payload := llmPayload{}
	payload.Customer.FullName = "Sarah Johnson"
	payload.Customer.Phone = "9876543210"
	payload.Customer.City = "Mumbai"
	payload.Customer.Locality = "Bandra"
	payload.Interaction.Summary = "talked about pricing options for the premium package"
	content, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": string(content)}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	defer srv.Close()

	ext, err := NewProbabilisticExtractor(Config{Provider: "openai", APIKey: "test-key", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewProbabilisticExtractor() error = %v", err)
	}

	result, err := ext.Extract(context.Background(), "Customer Sarah Johnson called from 9876543210.")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got, want := result.Customer.Locality, "Bandra"; got != want {
		t.Errorf("Locality = %q, want %q", got, want)
	}
	if got, want := result.Confidence[FieldCity], 0.90; got != want {
		t.Errorf("Confidence[city] = %v, want %v", got, want)
	}
}

func TestOpenAIExtractor_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{
			name:   "bad request is not retried",
			status: http.StatusBadRequest,
			body:   `{"error": {"message": "invalid model", "type": "invalid_request_error"}}`,
		},
		{
			name:   "non-JSON content is rejected",
			status: http.StatusOK,
			body:   `{"choices": [{"message": {"role": "assistant", "content": "not json"}}]}`,
		},
		{
			name:   "empty choices rejected",
			status: http.StatusOK,
			body:   `{"choices": []}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			ext, err := NewProbabilisticExtractor(Config{Provider: "openai", APIKey: "test-key", BaseURL: srv.URL})
			if err != nil {
				t.Fatalf("NewProbabilisticExtractor() error = %v", err)
			}

			if _, err := ext.Extract(context.Background(), "some transcript"); err == nil {
				t.Fatal("Extract() error = nil, want error")
			}
			if calls != 1 {
				t.Errorf("server called %d times, want 1 (non-retryable failure)", calls)
			}
		})
	}
}

func TestOpenAIExtractor_RetriesServerError(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ext, err := NewProbabilisticExtractor(Config{Provider: "openai", APIKey: "test-key", BaseURL: srv.URL, Timeout: 5})
	if err != nil {
		t.Fatalf("NewProbabilisticExtractor() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := ext.Extract(ctx, "some transcript"); err == nil {
		t.Fatal("Extract() error = nil, want error")
	}
	if calls != 2 {
		t.Errorf("server called %d times, want 2 (one retry)", calls)
	}
}

func TestIsRetryableError(t *testing.T) {
	if isRetryableError(nil) {
		t.Error("nil should not be retryable")
	}
	if isRetryableError(fmt.Errorf("plain error")) {
		t.Error("plain error should not be retryable")
	}
	wrapped := fmt.Errorf("context: %w", &retryableError{err: fmt.Errorf("rate limited")})
	if !isRetryableError(wrapped) {
		t.Error("wrapped retryableError should be retryable")
	}
}
