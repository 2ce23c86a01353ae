package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/kisanmitra/backend/internal/assistant"
	"github.com/kisanmitra/backend/internal/cache"
	"github.com/kisanmitra/backend/internal/domain"
)

// stubModel returns a canned reply or error and counts calls
type stubModel struct {
	reply string
	err   error
	calls int
}

func (m *stubModel) Reply(ctx context.Context, req domain.ChatRequest) (string, error) {
	m.calls++
	return m.reply, m.err
}

func TestChatServiceWithoutModelUsesFallback(t *testing.T) {
	svc := NewChatService(nil, nil, zaptest.NewLogger(t))
	req := domain.ChatRequest{Message: "any subsidy?"}

	reply, err := svc.Reply(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, svc.ModelEnabled())
	assert.Equal(t, domain.SourceFallback, reply.Source)
	assert.Equal(t, assistant.Render(assistant.TopicScheme, domain.English, nil), reply.Text)
}

func TestChatServiceModelReply(t *testing.T) {
	model := &stubModel{reply: "Irrigate on Friday."}
	svc := NewChatService(model, nil, zaptest.NewLogger(t))

	reply, err := svc.Reply(context.Background(), domain.ChatRequest{Message: "water?"})
	require.NoError(t, err)
	assert.Equal(t, domain.ChatReply{Text: "Irrigate on Friday.", Source: domain.SourceModel}, reply)
	assert.True(t, svc.ModelEnabled())
}

func TestChatServiceModelFailureFallsBack(t *testing.T) {
	model := &stubModel{err: errors.New("connection reset")}
	svc := NewChatService(model, nil, zaptest.NewLogger(t))

	reply, err := svc.Reply(context.Background(), domain.ChatRequest{
		Message:  "मेरा जोखिम?",
		Language: domain.Hindi,
		Context:  &domain.ContextSnapshot{FarmRisk: &domain.FarmRisk{OverallRisk: domain.RiskHigh, RiskScore: 81}},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SourceFallback, reply.Source)
	assert.Contains(t, reply.Text, "उच्च")
	assert.Contains(t, reply.Text, "81/100")
}

func TestChatServiceEmptyCompletion(t *testing.T) {
	svc := NewChatService(&stubModel{err: ErrEmptyCompletion}, nil, nil)

	reply, err := svc.Reply(context.Background(), domain.ChatRequest{Message: "hi", Language: domain.Hindi})
	require.NoError(t, err)
	assert.Equal(t, "क्षमा करें, मैं अभी जवाब नहीं दे पा रहा हूं।", reply.Text)
}

func TestChatServiceCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewChatService(&stubModel{err: context.Canceled}, nil, nil)
	_, err := svc.Reply(ctx, domain.ChatRequest{Message: "hi"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChatServiceCachesModelReplies(t *testing.T) {
	mr := miniredis.RunT(t)
	replyCache := cache.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
	defer replyCache.Close()

	model := &stubModel{reply: "Sell next week."}
	svc := NewChatService(model, replyCache, zaptest.NewLogger(t))
	req := domain.ChatRequest{Message: "when to sell?"}

	first, err := svc.Reply(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceModel, first.Source)
	svc.WaitBackground()

	second, err := svc.Reply(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.ChatReply{Text: "Sell next week.", Source: domain.SourceCache}, second)
	assert.Equal(t, 1, model.calls)
}

func TestChatServiceCacheOutageIsNotFatal(t *testing.T) {
	mr := miniredis.RunT(t)
	replyCache := cache.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
	defer replyCache.Close()
	mr.Close()

	svc := NewChatService(&stubModel{reply: "fine"}, replyCache, zaptest.NewLogger(t))

	reply, err := svc.Reply(context.Background(), domain.ChatRequest{Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "fine", reply.Text)
	svc.WaitBackground()
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Sorry, an error occurred. Please try again.", ErrorMessage(domain.English))
	assert.Equal(t, "क्षमा करें, एक त्रुटि हुई। कृपया पुनः प्रयास करें।", ErrorMessage(domain.Hindi))
	assert.Equal(t, ErrorMessage(domain.English), ErrorMessage("fr"))
}
