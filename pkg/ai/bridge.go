package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Degradation reasons reported on a Reply when the live model could not be used.
const (
	ReasonMissingKey = "missing-key"
	ReasonInvalidKey = "invalid-key"
	ReasonBadPayload = "bad-payload"
	ReasonFallback   = "fallback"
)

// ChatMessage is one turn of a coaching conversation sent to the model.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Reply is the outcome of a coach turn. Degraded replies carry a canned or
// diagnostic Text instead of model output, with Reason saying why.
type Reply struct {
	Text     string
	Degraded bool
	Reason   string
}

// Bridge calls any OpenAI-compatible /v1/chat/completions endpoint.
// Works with vLLM, LiteLLM, LocalAI, Deepseek, OpenRouter, self-hosted models, etc.
type Bridge struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewBridge builds a Bridge. baseURL should include the /v1 prefix,
// e.g. "https://api.openai.com/v1". apiKey may be empty or a placeholder;
// CoachReply degrades instead of failing in that case.
func NewBridge(baseURL, apiKey, model string) *Bridge {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	return &Bridge{
		baseURL: baseURL,
		apiKey:  strings.TrimSpace(apiKey),
		model:   strings.TrimSpace(model),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (b *Bridge) keyUsable() bool {
	return b.apiKey != "" && !strings.Contains(b.apiKey, "YOUR_OPENAI_KEY")
}

// CoachReply asks the model for the next coach turn. It never returns an
// error: configuration problems produce a diagnostic Text, and transient
// API or network failures fall back to a locally generated reply so a
// conversation is never left hanging.
func (b *Bridge) CoachReply(ctx context.Context, messages []ChatMessage) Reply {
	lastUser := ""
	if len(messages) > 0 {
		lastUser = messages[len(messages)-1].Content
	}

	if !b.keyUsable() {
		return Reply{
			Text:     "[System]: OpenAI API key is missing in the config. Please add it to enable AI.",
			Degraded: true,
			Reason:   ReasonMissingKey,
		}
	}

	status, raw, err := b.complete(ctx, chatRequest{
		Model:       b.model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   300,
	})
	if err != nil {
		return Reply{Text: localFallback(lastUser), Degraded: true, Reason: ReasonFallback}
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Reply{
			Text:     fmt.Sprintf("[System Error]: OpenAI API returned invalid format. Status: %d.", status),
			Degraded: true,
			Reason:   ReasonBadPayload,
		}
	}

	if status == http.StatusUnauthorized {
		return Reply{
			Text:     "[Config Error]: Invalid OpenAI API key. Please check your key in the config.",
			Degraded: true,
			Reason:   ReasonInvalidKey,
		}
	}
	if status < 200 || status >= 300 {
		return Reply{Text: localFallback(lastUser), Degraded: true, Reason: ReasonFallback}
	}

	if len(parsed.Choices) == 0 {
		return Reply{
			Text:     "[System]: API returned unexpected format. " + string(raw),
			Degraded: true,
			Reason:   ReasonBadPayload,
		}
	}
	return Reply{Text: strings.TrimSpace(parsed.Choices[0].Message.Content)}
}

// complete posts a chat completion and returns the status and raw body.
func (b *Bridge) complete(ctx context.Context, reqBody chatRequest) (int, []byte, error) {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return 0, nil, err
	}

	url := b.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.apiKey)

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("chat completion request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, nil, fmt.Errorf("chat completion read: %w", err)
	}
	return resp.StatusCode, raw, nil
}

// OpenAI-compatible request/response types.

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}
