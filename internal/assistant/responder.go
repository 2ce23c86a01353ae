package assistant

import (
	"context"

	"github.com/kisanmitra/backend/internal/domain"
)

// Respond classifies a message and renders the reply in one step
func Respond(message string, lang domain.Language, snap *domain.ContextSnapshot) string {
	return Render(Classify(message), lang.Normalize(), snap)
}

// Fallback answers chat requests without any external service.
// It is stateless and safe for concurrent use.
type Fallback struct{}

// NewFallback creates a new fallback responder
func NewFallback() *Fallback {
	return &Fallback{}
}

// Reply never fails; the error return lets Fallback stand in wherever a
// model-backed assistant is expected.
func (f *Fallback) Reply(_ context.Context, req domain.ChatRequest) (string, error) {
	return Respond(req.Message, req.Language, req.Context), nil
}
