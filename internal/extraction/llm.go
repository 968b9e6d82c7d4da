package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Default configuration values.
const (
	defaultOpenAIBaseURL = "https://api.openai.com"
	defaultOpenAIModel   = "gpt-4o-mini"
	defaultMaxTokens     = 500
	defaultTimeout       = 30 * time.Second
	defaultMaxRetries    = 1 // one bounded retry for transient failures
	defaultBaseBackoff   = 1 * time.Second
)

// Rate limiter defaults: 50 requests per minute.
const (
	defaultRateLimit = 50.0 / 60.0
	defaultBurst     = 5
)

// llmConfidence holds the fixed per-field weights attached to every
// successful LLM extraction. They are declared trust in the provider, not
// scores derived from the model's own uncertainty.
var llmConfidence = ConfidenceMap{
	FieldName:     0.95,
	FieldPhone:    0.95,
	FieldAddress:  0.85,
	FieldCity:     0.90,
	FieldLocality: 0.85,
	FieldSummary:  0.90,
}

// openAIExtractor implements ProbabilisticExtractor using OpenAI's chat
// completions API.
type openAIExtractor struct {
	model      string
	apiKey     string
	baseURL    string
	maxTokens  int
	httpClient *http.Client
	limiter    *rate.Limiter
	maxRetries int
}

// newOpenAIExtractor creates a new OpenAI-backed extractor.
func newOpenAIExtractor(cfg Config) (ProbabilisticExtractor, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key required")
	}

	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	timeout := defaultTimeout
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}

	return &openAIExtractor{
		model:     model,
		apiKey:    cfg.APIKey,
		baseURL:   baseURL,
		maxTokens: maxTokens,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter:    rate.NewLimiter(rate.Limit(defaultRateLimit), defaultBurst),
		maxRetries: defaultMaxRetries,
	}, nil
}

// openAIRequest represents the request format for the chat completions API.
type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	Temperature float64         `json:"temperature"`
}

// openAIMessage represents a message in the conversation.
type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// openAIResponse represents the response from the chat completions API.
type openAIResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// openAIError represents an error response from the API.
type openAIError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Param   string `json:"param"`
		Code    string `json:"code"`
	} `json:"error"`
}

// extractSystemPrompt pins the model to structured-output behavior.
const extractSystemPrompt = `You are a data extraction expert. Extract structured information from text and return valid JSON only.`

// extractPromptTemplate is the user prompt for customer extraction.
const extractPromptTemplate = `Extract customer and interaction information from the following text. Return a JSON object with this exact structure:

{
  "customer": {
    "full_name": "",
    "phone": "",
    "address": "",
    "city": "",
    "locality": ""
  },
  "interaction": {
    "summary": ""
  }
}

Rules:
- Extract phone numbers as 10-digit numbers without spaces or dashes
- Convert spoken numbers (like "nine nine eight eight") to digits
- Use title case for names and cities
- If information is not found, leave the field empty
- Focus on customer details and what was discussed

Text: %q

Return only the JSON object, no other text:`

// Extract asks the model for a structured guess about the transcript.
func (o *openAIExtractor) Extract(ctx context.Context, text string) (*ExtractionResult, error) {
	// Wait for rate limiter
	if err := o.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	req := openAIRequest{
		Model:       o.model,
		MaxTokens:   o.maxTokens,
		Temperature: 0.1, // Low temperature for consistent extraction
		Messages: []openAIMessage{
			{
				Role:    "system",
				Content: extractSystemPrompt,
			},
			{
				Role:    "user",
				Content: fmt.Sprintf(extractPromptTemplate, text),
			},
		},
	}

	// Make request with a single bounded retry
	var lastErr error
	for attempt := 0; attempt <= o.maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff
			backoff := defaultBaseBackoff * time.Duration(1<<(attempt-1))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := o.doRequest(ctx, req)
		if err == nil {
			return result, nil
		}

		lastErr = err
		// Check if error is retryable
		if !isRetryableError(err) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// doRequest performs the actual HTTP request to the chat completions API.
func (o *openAIExtractor) doRequest(ctx context.Context, req openAIRequest) (*ExtractionResult, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", o.baseURL+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, &retryableError{err: fmt.Errorf("API request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Handle rate limiting
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &retryableError{err: fmt.Errorf("rate limited (429)")}
	}

	// Handle server errors (retryable)
	if resp.StatusCode >= 500 {
		return nil, &retryableError{err: fmt.Errorf("server error (%d): %s", resp.StatusCode, string(body))}
	}

	if resp.StatusCode != http.StatusOK {
		var errResp openAIError
		if err := json.Unmarshal(body, &errResp); err == nil {
			return nil, fmt.Errorf("API error (%d): %s", resp.StatusCode, errResp.Error.Message)
		}
		return nil, fmt.Errorf("API error (%d): %s", resp.StatusCode, string(body))
	}

	var openAIResp openAIResponse
	if err := json.Unmarshal(body, &openAIResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(openAIResp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from API")
	}

	return parseExtractionJSON(openAIResp.Choices[0].Message.Content)
}

// Available returns true if the extractor is configured.
func (o *openAIExtractor) Available() bool {
	return o.apiKey != ""
}

// llmPayload is the exact JSON shape the model must return. Anything that
// does not decode strictly into this shape is discarded.
type llmPayload struct {
	Customer struct {
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
		City     string `json:"city"`
		Locality string `json:"locality"`
	} `json:"customer"`
	Interaction struct {
		Summary string `json:"summary"`
	} `json:"interaction"`
}

// parseExtractionJSON parses the model response into an ExtractionResult
// carrying the fixed confidence weights.
func parseExtractionJSON(content string) (*ExtractionResult, error) {
	// Clean up the response - sometimes LLMs wrap JSON in markdown code blocks
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	dec := json.NewDecoder(strings.NewReader(content))
	dec.DisallowUnknownFields()

	var payload llmPayload
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("malformed extraction payload: %w", err)
	}

	result := NewResult()
	result.Customer = CustomerFields{
		FullName: strings.TrimSpace(payload.Customer.FullName),
		Phone:    normalizeLLMPhone(payload.Customer.Phone),
		Address:  strings.TrimSpace(payload.Customer.Address),
		City:     strings.TrimSpace(payload.Customer.City),
		Locality: strings.TrimSpace(payload.Customer.Locality),
	}
	result.Interaction.Summary = strings.TrimSpace(payload.Interaction.Summary)

	for field, weight := range llmConfidence {
		result.Confidence[field] = weight
	}
	return &result, nil
}

// normalizeLLMPhone enforces the phone contract on model output: keep only
// digits, take the last ten, drop anything shorter.
func normalizeLLMPhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	s := digits.String()
	if len(s) < minPhoneDigits {
		return ""
	}
	return s[len(s)-minPhoneDigits:]
}

// retryableError wraps an error to indicate it can be retried.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return e.err.Error()
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// isRetryableError checks if an error should be retried.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	for e := err; e != nil; {
		if _, ok := e.(*retryableError); ok {
			return true
		}
		if unwrapper, ok := e.(interface{ Unwrap() error }); ok {
			e = unwrapper.Unwrap()
		} else {
			break
		}
	}
	return false
}

// Ensure interface is implemented.
var _ ProbabilisticExtractor = (*openAIExtractor)(nil)
