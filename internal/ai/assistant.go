// Package ai wraps the Anthropic Messages API for note summarization,
// schedule analysis and natural-language task commands. The scheduling
// engine never calls this package; it only consumes the structured
// intents the command parser produces.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/AdeShaq/SUPERSCHEDULER/internal/model"
)

const (
	defaultModel     = "claude-sonnet-4-20250514"
	defaultMaxTokens = 1024
	apiURL           = "https://api.anthropic.com/v1/messages"
	apiVersion       = "2023-06-01"
)

// Sentinel strings surfaced to the UI when a call cannot complete. AI
// failures never reach the scheduling engine.
const (
	MsgKeyMissing     = "API key missing."
	MsgSummaryFailed  = "Failed to generate summary."
	MsgAnalysisFailed = "Failed to analyze schedule."
)

// Assistant is the AI text service client.
type Assistant struct {
	apiKey    string
	model     string
	maxTokens int
	client    *http.Client
}

// New creates an assistant with the given configuration. An empty
// model or non-positive token budget fall back to defaults.
func New(apiKey, modelName string, maxTokens int) *Assistant {
	if modelName == "" {
		modelName = defaultModel
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &Assistant{
		apiKey:    apiKey,
		model:     modelName,
		maxTokens: maxTokens,
		client:    &http.Client{},
	}
}

// Available reports whether the assistant has a usable API key.
func (a *Assistant) Available() bool {
	return a != nil && a.apiKey != ""
}

// SummarizeNote condenses note content into key bullet points. On any
// failure it returns a sentinel message instead of an error.
func (a *Assistant) SummarizeNote(ctx context.Context, content string) string {
	if !a.Available() {
		return MsgKeyMissing
	}
	prompt := "Summarize the following note into 3 key bullet points. " +
		"Keep it brutalist and concise:\n\n" + content
	text, err := a.complete(ctx, prompt)
	if err != nil {
		return MsgSummaryFailed
	}
	return text
}

// AnalyzeSchedule reviews the task list for burnout and optimization.
// On any failure it returns a sentinel message instead of an error.
func (a *Assistant) AnalyzeSchedule(ctx context.Context, tasks []model.Task) string {
	if !a.Available() {
		return MsgKeyMissing
	}
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = fmt.Sprintf("%s (%s, streak: %d)", t.Title, t.Recurrence.Label(), t.Streak)
	}
	prompt := "Analyze this schedule for potential burnout or optimization. " +
		"Be direct:\n\n" + strings.Join(lines, "\n")
	text, err := a.complete(ctx, prompt)
	if err != nil {
		return MsgAnalysisFailed
	}
	return text
}

// ParseCommand turns a natural-language command into structured task
// intents. Errors are returned to the caller for display and never
// reach the scheduling engine.
func (a *Assistant) ParseCommand(ctx context.Context, command string) ([]model.TaskIntent, error) {
	if !a.Available() {
		return nil, fmt.Errorf("no API key configured")
	}

	text, err := a.complete(ctx, commandPrompt(command))
	if err != nil {
		return nil, fmt.Errorf("parsing command: %w", err)
	}

	intents, err := DecodeIntents(text)
	if err != nil {
		return nil, fmt.Errorf("parsing command: %w", err)
	}
	return intents, nil
}

// commandPrompt builds the intent-extraction prompt.
func commandPrompt(command string) string {
	return fmt.Sprintf(`You are an advanced AI agent for a habit scheduler.
Return ONLY a JSON array of actions for the user's command.

COMMAND: %q

ACTIONS SUPPORTED: 'create', 'update', 'delete'.

1. Parse intent:
   - "Add/Schedule/Remind me to..." -> 'create'
   - "Change/Move/Reschedule/Rename..." -> 'update'
   - "Delete/Remove/Cancel/Clear..." -> 'delete'
2. 'create': extract title, time (24h "HH:MM"), recurrence.
   - "Monday to Friday" -> recurrence "specific_days", specificDays [1,2,3,4,5].
3. 'update': identify the target task by a short query string.
4. 'delete': identify the target by query.

SCHEMA:
[
  { "type": "create", "data": { "title": string, "time": string, "priority": "normal"|"high", "recurrence": string, "specificDays": [int] } },
  { "type": "update", "query": string, "updates": { "title": string, "time": string, "priority": string, "recurrence": string } },
  { "type": "delete", "query": string }
]`, command)
}

// DecodeIntents parses the model's JSON reply, tolerating markdown code
// fences and a bare object in place of an array.
func DecodeIntents(text string) ([]model.TaskIntent, error) {
	clean := strings.TrimSpace(text)
	clean = strings.ReplaceAll(clean, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	var intents []model.TaskIntent
	if err := json.Unmarshal([]byte(clean), &intents); err != nil {
		var single model.TaskIntent
		if err2 := json.Unmarshal([]byte(clean), &single); err2 != nil {
			return nil, fmt.Errorf("decoding intents: %w", err)
		}
		intents = []model.TaskIntent{single}
	}

	for _, intent := range intents {
		if err := intent.Validate(); err != nil {
			return nil, err
		}
	}
	return intents, nil
}

// apiRequest is the Messages API request body.
type apiRequest struct {
	Model     string       `json:"model"`
	MaxTokens int          `json:"max_tokens"`
	Messages  []apiMessage `json:"messages"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// apiResponse is the subset of the Messages API response we consume.
type apiResponse struct {
	Content []apiContentBlock `json:"content"`
	Error   *apiError         `json:"error,omitempty"`
}

type apiContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// complete makes a single-turn completion request and returns the
// concatenated text blocks.
func (a *Assistant) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(apiRequest{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		Messages:  []apiMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling API: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var parsed apiResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("API error %s: %s", parsed.Error.Type, parsed.Error.Message)
		}
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var parts []string
	for _, block := range parsed.Content {
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}
	return strings.Join(parts, ""), nil
}
