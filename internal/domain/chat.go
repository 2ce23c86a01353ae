package domain

// Language is a supported reply language
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
)

// Normalize maps an empty language tag to English
func (l Language) Normalize() Language {
	if l == "" {
		return English
	}
	return l
}

// ContextSnapshot carries the dashboard values a chat reply may cite.
// Every sub-record is optional.
type ContextSnapshot struct {
	FarmRisk   *FarmRisk           `json:"farmRisk,omitempty"`
	Irrigation *IrrigationGuidance `json:"irrigation,omitempty"`
	Market     *MarketTiming       `json:"market,omitempty"`
}

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	Message  string           `json:"message"`
	Language Language         `json:"language,omitempty"`
	Context  *ContextSnapshot `json:"context,omitempty"`
}

// ChatResponse wraps an assistant reply
type ChatResponse struct {
	Response string `json:"response"`
}

// ChatErrorResponse is returned when the chat endpoint fails unexpectedly
type ChatErrorResponse struct {
	Error    string `json:"error"`
	Response string `json:"response"`
}

// ReplySource tells where a chat reply came from
type ReplySource string

const (
	SourceModel    ReplySource = "model"
	SourceCache    ReplySource = "cache"
	SourceFallback ReplySource = "fallback"
)

// ChatReply is a rendered reply plus its origin
type ChatReply struct {
	Text   string
	Source ReplySource
}
