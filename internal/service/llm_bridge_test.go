package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisanmitra/backend/internal/domain"
)

func testLLMConfig(url string) LLMConfig {
	return LLMConfig{
		APIKey:     "test-key",
		BaseURL:    url,
		Model:      "gpt-5",
		MaxTokens:  500,
		Timeout:    2 * time.Second,
		MaxRetries: 2,
	}
}

func completionJSON(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return string(b)
}

func TestLLMBridgeReply(t *testing.T) {
	var got completionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(completionJSON("Hold your wheat for a week.")))
	}))
	defer srv.Close()

	b := NewLLMBridge(testLLMConfig(srv.URL), nil)
	reply, err := b.Reply(context.Background(), domain.ChatRequest{
		Message: "should I sell?",
		Context: &domain.ContextSnapshot{Market: &domain.MarketTiming{
			Action: domain.WaitToSell, CurrentPrice: 2450, ExpectedDirection: domain.PriceUp,
		}},
	})

	require.NoError(t, err)
	assert.Equal(t, "Hold your wheat for a week.", reply)
	assert.Equal(t, "gpt-5", got.Model)
	assert.Equal(t, 500, got.MaxCompletionTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Contains(t, got.Messages[0].Content, "Kisan e-Mitra")
	assert.Contains(t, got.Messages[0].Content, "Market: Wait. Current Price: ₹2450, Trend: UP.")
	assert.Equal(t, "should I sell?", got.Messages[1].Content)
}

func TestLLMBridgeRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(completionJSON("ok")))
	}))
	defer srv.Close()

	reply, err := NewLLMBridge(testLLMConfig(srv.URL), nil).Reply(context.Background(), domain.ChatRequest{Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
	assert.Equal(t, int32(3), calls.Load())
}

func TestLLMBridgeDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"error":"bad key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewLLMBridge(testLLMConfig(srv.URL), nil).Reply(context.Background(), domain.ChatRequest{Message: "hi"})
	assert.ErrorContains(t, err, "status 401")
	assert.Equal(t, int32(1), calls.Load())
}

func TestLLMBridgeEmptyCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionJSON("  ")))
	}))
	defer srv.Close()

	_, err := NewLLMBridge(testLLMConfig(srv.URL), nil).Reply(context.Background(), domain.ChatRequest{Message: "hi"})
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestLLMBridgeHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/models" {
			w.Write([]byte(`{"data":[]}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	assert.NoError(t, NewLLMBridge(testLLMConfig(srv.URL), nil).Health(context.Background()))

	srv.Close()
	assert.Error(t, NewLLMBridge(testLLMConfig(srv.URL), nil).Health(context.Background()))
}

func TestSystemPrompt(t *testing.T) {
	delay := 48
	snap := &domain.ContextSnapshot{
		FarmRisk: &domain.FarmRisk{
			OverallRisk: domain.RiskLow,
			RiskScore:   25,
			Factors:     []domain.RiskFactor{{Name: "Soil Health", Impact: "Good moisture"}},
		},
		Irrigation: &domain.IrrigationGuidance{Action: domain.DelayIrrigation, DelayHours: &delay, SoilMoisture: 68, RainProbability: 75},
	}

	en := SystemPrompt(domain.English, snap)
	assert.Contains(t, en, "You respond in English.")
	assert.Contains(t, en, "Current Farm Risk: LOW (Score: 25/100).")
	assert.Contains(t, en, "Factors: Soil Health: Good moisture.")
	assert.Contains(t, en, "Irrigation: Delay 48 hours.")
	assert.Contains(t, en, "Soil Moisture: 68%, Rain Probability: 75%.")

	hi := SystemPrompt(domain.Hindi, snap)
	assert.Contains(t, hi, "आप हिंदी में जवाब देते हैं")
	assert.Contains(t, hi, "वर्तमान फार्म स्थिति:")

	assert.NotContains(t, SystemPrompt(domain.English, nil), "Current farm status")
}

func TestSystemPromptPlainNumbers(t *testing.T) {
	snap := &domain.ContextSnapshot{
		Irrigation: &domain.IrrigationGuidance{Action: domain.IrrigateNow, SoilMoisture: 68.5, RainProbability: 10},
		Market:     &domain.MarketTiming{Action: domain.SellNow, CurrentPrice: 1e6, ExpectedDirection: domain.PriceUp},
	}

	prompt := SystemPrompt(domain.English, snap)
	assert.Contains(t, prompt, "Soil Moisture: 68.5%, Rain Probability: 10%.")
	assert.Contains(t, prompt, "Current Price: ₹1000000, Trend: UP.")
	assert.NotContains(t, prompt, "e+")
}
