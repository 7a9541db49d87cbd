package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

// Completer turns a system instruction plus the operator's text into a reply.
type Completer interface {
	Complete(ctx context.Context, systemInstruction, prompt string) (string, error)
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// GeminiClient calls the generateContent REST endpoint behind a circuit
// breaker so a dead upstream fails fast instead of tying up chat sessions.
type GeminiClient struct {
	endpoint string
	model    string
	apiKey   string
	http     *http.Client
	breaker  *gobreaker.CircuitBreaker
}

func NewGeminiClient(endpoint, model, apiKey string, timeout time.Duration, log zerolog.Logger) *GeminiClient {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "gemini",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})

	return &GeminiClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		model:    model,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: timeout},
		breaker:  breaker,
	}
}

func (c *GeminiClient) Complete(ctx context.Context, systemInstruction, prompt string) (string, error) {
	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.generate(ctx, systemInstruction, prompt)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

func (c *GeminiClient) generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	}
	if systemInstruction != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: systemInstruction}}}
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.endpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("cannot build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("HTTP error %d: %s", resp.StatusCode, string(body))
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("JSON parse error: %w", err)
	}
	if gr.Error != nil {
		return "", fmt.Errorf("API error %d %s: %s", gr.Error.Code, gr.Error.Status, gr.Error.Message)
	}

	var sb strings.Builder
	for _, cand := range gr.Candidates {
		for _, p := range cand.Content.Parts {
			sb.WriteString(p.Text)
		}
		if sb.Len() > 0 {
			break
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
