package service

import (
	"context"
	"errors"

	"github.com/kisanmitra/backend/internal/domain"
)

// DashboardRepository is re-exported from domain for convenience
type DashboardRepository = domain.DashboardRepository

// Assistant answers a chat request. Both the model bridge and the
// fallback responder satisfy it.
type Assistant interface {
	Reply(ctx context.Context, req domain.ChatRequest) (string, error)
}

// ReplyCache stores model replies between requests
type ReplyCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, reply string) error
}

var (
	ErrSchemeNotFound = errors.New("scheme not found")
	ErrStateNotFound  = errors.New("state not found")
)
