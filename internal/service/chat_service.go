package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kisanmitra/backend/internal/assistant"
	"github.com/kisanmitra/backend/internal/cache"
	"github.com/kisanmitra/backend/internal/domain"
	"github.com/kisanmitra/backend/internal/metrics"
)

var noReplyMessages = map[domain.Language]string{
	domain.English: "Sorry, I couldn't generate a response.",
	domain.Hindi:   "क्षमा करें, मैं अभी जवाब नहीं दे पा रहा हूं।",
}

var errorMessages = map[domain.Language]string{
	domain.English: "Sorry, an error occurred. Please try again.",
	domain.Hindi:   "क्षमा करें, एक त्रुटि हुई। कृपया पुनः प्रयास करें।",
}

// ErrorMessage returns the localized apology shown when a chat request fails
func ErrorMessage(lang domain.Language) string {
	if msg, ok := errorMessages[lang]; ok {
		return msg
	}
	return errorMessages[domain.English]
}

func noReplyMessage(lang domain.Language) string {
	if msg, ok := noReplyMessages[lang]; ok {
		return msg
	}
	return noReplyMessages[domain.English]
}

// ChatService answers chat requests. It prefers the model and drops to the
// rule-based responder when no model is configured or the call fails.
type ChatService struct {
	model    Assistant // nil when no credential is configured
	fallback *assistant.Fallback
	cache    ReplyCache // optional
	log      *zap.Logger

	wgBg sync.WaitGroup // tracks background cache writes for graceful shutdown
}

// NewChatService creates a new chat service. model and replyCache may be nil.
func NewChatService(model Assistant, replyCache ReplyCache, log *zap.Logger) *ChatService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChatService{
		model:    model,
		fallback: assistant.NewFallback(),
		cache:    replyCache,
		log:      log,
	}
}

// ModelEnabled reports whether replies may come from the model
func (s *ChatService) ModelEnabled() bool {
	return s.model != nil
}

// WaitBackground blocks until pending cache writes complete.
// Call during graceful shutdown to avoid dropped writes.
func (s *ChatService) WaitBackground() {
	s.wgBg.Wait()
}

// Reply answers one chat request
func (s *ChatService) Reply(ctx context.Context, req domain.ChatRequest) (domain.ChatReply, error) {
	req.Language = req.Language.Normalize()

	if s.model == nil {
		return s.fallbackReply(ctx, req), nil
	}

	key := cache.Key(req)
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.log.Warn("reply cache lookup failed", zap.Error(err))
		} else if ok {
			metrics.ChatReplies.WithLabelValues(string(domain.SourceCache), string(req.Language)).Inc()
			return domain.ChatReply{Text: cached, Source: domain.SourceCache}, nil
		}
	}

	text, err := s.model.Reply(ctx, req)
	switch {
	case errors.Is(err, ErrEmptyCompletion):
		metrics.ChatReplies.WithLabelValues(string(domain.SourceModel), string(req.Language)).Inc()
		return domain.ChatReply{Text: noReplyMessage(req.Language), Source: domain.SourceModel}, nil
	case err != nil:
		if ctx.Err() != nil {
			return domain.ChatReply{}, ctx.Err()
		}
		metrics.ModelErrors.Inc()
		s.log.Warn("model reply failed, using fallback responder", zap.Error(err))
		return s.fallbackReply(ctx, req), nil
	}

	metrics.ChatReplies.WithLabelValues(string(domain.SourceModel), string(req.Language)).Inc()
	if s.cache != nil {
		s.storeAsync(key, text)
	}
	return domain.ChatReply{Text: text, Source: domain.SourceModel}, nil
}

func (s *ChatService) fallbackReply(ctx context.Context, req domain.ChatRequest) domain.ChatReply {
	topic := assistant.Classify(req.Message)
	text, _ := s.fallback.Reply(ctx, req)

	metrics.ChatReplies.WithLabelValues(string(domain.SourceFallback), string(req.Language)).Inc()
	metrics.FallbackTopics.WithLabelValues(string(topic)).Inc()
	s.log.Debug("fallback reply", zap.String("topic", string(topic)), zap.String("language", string(req.Language)))

	return domain.ChatReply{Text: text, Source: domain.SourceFallback}
}

func (s *ChatService) storeAsync(key, text string) {
	s.wgBg.Add(1)
	go func() {
		defer s.wgBg.Done()
		bgCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.cache.Set(bgCtx, key, text); err != nil {
			s.log.Warn("failed to cache model reply", zap.Error(err))
		}
	}()
}
