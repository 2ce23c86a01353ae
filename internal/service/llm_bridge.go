package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kisanmitra/backend/internal/domain"
	"github.com/kisanmitra/backend/internal/metrics"
)

// ErrEmptyCompletion is returned when the model answers with no text
var ErrEmptyCompletion = errors.New("llm_bridge: empty completion")

// LLMConfig configures the chat-completions bridge
type LLMConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	MaxTokens  int
	Timeout    time.Duration
	MaxRetries int
}

// LLMBridge handles communication with an OpenAI-compatible chat model
type LLMBridge struct {
	cfg        LLMConfig
	httpClient *http.Client
	log        *zap.Logger
}

// NewLLMBridge creates a new LLM bridge
func NewLLMBridge(cfg LLMConfig, log *zap.Logger) *LLMBridge {
	if log == nil {
		log = zap.NewNop()
	}
	return &LLMBridge{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model               string        `json:"model"`
	Messages            []chatMessage `json:"messages"`
	MaxCompletionTokens int           `json:"max_completion_tokens,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// retryableError marks failures worth another attempt
type retryableError struct{ err error }

func (e retryableError) Error() string { return e.err.Error() }
func (e retryableError) Unwrap() error { return e.err }

// Reply asks the model to answer a chat request
func (b *LLMBridge) Reply(ctx context.Context, req domain.ChatRequest) (string, error) {
	lang := req.Language.Normalize()
	body, err := json.Marshal(completionRequest{
		Model: b.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt(lang, req.Context)},
			{Role: "user", Content: req.Message},
		},
		MaxCompletionTokens: b.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("llm_bridge: failed to marshal request: %w", err)
	}

	start := time.Now()
	defer func() { metrics.ModelCallDuration.Observe(time.Since(start).Seconds()) }()

	var lastErr error
	for attempt := 0; attempt <= b.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", fmt.Errorf("llm_bridge: %w", ctx.Err())
			}
		}

		reply, err := b.complete(ctx, body)
		if err == nil {
			return reply, nil
		}
		lastErr = err

		var retry retryableError
		if !errors.As(err, &retry) || ctx.Err() != nil {
			break
		}
		b.log.Debug("retrying chat completion", zap.Int("attempt", attempt+1), zap.Error(err))
	}

	return "", lastErr
}

func (b *LLMBridge) complete(ctx context.Context, body []byte) (string, error) {
	url := fmt.Sprintf("%s/v1/chat/completions", b.cfg.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("llm_bridge: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+b.cfg.APIKey)

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return "", retryableError{fmt.Errorf("llm_bridge: request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("llm_bridge: model returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return "", retryableError{err}
		}
		return "", err
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("llm_bridge: failed to decode response: %w", err)
	}

	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}

	return completion.Choices[0].Message.Content, nil
}

// Health checks model API connectivity
func (b *LLMBridge) Health(ctx context.Context) error {
	url := fmt.Sprintf("%s/v1/models", b.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("llm_bridge: failed to create health request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+b.cfg.APIKey)

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("llm_bridge: health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("llm_bridge: health check returned status %d", resp.StatusCode)
	}

	return nil
}

// SystemPrompt builds the assistant persona for a language, embedding the
// dashboard values the farmer is looking at.
func SystemPrompt(lang domain.Language, snap *domain.ContextSnapshot) string {
	status := contextSummary(snap)

	if lang == domain.Hindi {
		prompt := "आप किसान ई-मित्र हैं, एक मददगार AI कृषि सहायक। आप हिंदी में जवाब देते हैं।\n" +
			"आप किसानों को खेती की सलाह, मौसम की जानकारी, सिंचाई मार्गदर्शन, बाजार समय और सरकारी योजनाओं के बारे में मदद करते हैं।\n" +
			"संक्षिप्त, व्यावहारिक उत्तर दें जो किसान आसानी से समझ सकें।"
		if status != "" {
			prompt += "\nवर्तमान फार्म स्थिति: " + status
		}
		return prompt
	}

	prompt := "You are Kisan e-Mitra, a helpful AI farming assistant. You respond in English.\n" +
		"You help farmers with agricultural advice, weather information, irrigation guidance, market timing, and government schemes.\n" +
		"Provide concise, practical answers that farmers can easily understand."
	if status != "" {
		prompt += "\nCurrent farm status: " + status
	}
	return prompt
}

func contextSummary(snap *domain.ContextSnapshot) string {
	if snap == nil {
		return ""
	}

	var parts []string
	if r := snap.FarmRisk; r != nil {
		parts = append(parts, fmt.Sprintf("Current Farm Risk: %s (Score: %d/100).", r.OverallRisk, r.RiskScore))
		factors := make([]string, len(r.Factors))
		for i, f := range r.Factors {
			factors[i] = fmt.Sprintf("%s: %s", f.Name, f.Impact)
		}
		parts = append(parts, fmt.Sprintf("Factors: %s.", strings.Join(factors, ", ")))
	}
	if g := snap.Irrigation; g != nil {
		action := "Irrigate Now"
		if g.Action == domain.DelayIrrigation {
			action = "Delay"
			if g.DelayHours != nil {
				action = fmt.Sprintf("Delay %d hours", *g.DelayHours)
			}
		}
		parts = append(parts, fmt.Sprintf("Irrigation: %s.", action))
		parts = append(parts, fmt.Sprintf("Soil Moisture: %s%%, Rain Probability: %s%%.", formatNumber(g.SoilMoisture), formatNumber(g.RainProbability)))
	}
	if m := snap.Market; m != nil {
		action := "Wait"
		if m.Action == domain.SellNow {
			action = "Sell Now"
		}
		parts = append(parts, fmt.Sprintf("Market: %s.", action))
		parts = append(parts, fmt.Sprintf("Current Price: ₹%s, Trend: %s.", formatNumber(m.CurrentPrice), m.ExpectedDirection))
	}
	return strings.Join(parts, " ")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
