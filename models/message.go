package models

// MessageType discriminates entries in the session message log.
type MessageType string

const (
	MessageText        MessageType = "text"
	MessageSystem      MessageType = "system"
	MessageSuggestions MessageType = "suggestions"
	MessageMap         MessageType = "map"
)

// Tone colours a log entry: bot/user for text bubbles, and a
// severity-like tone for system entries.
type Tone string

const (
	ToneBot     Tone = "bot"
	ToneUser    Tone = "user"
	ToneNeutral Tone = "neutral"
	ToneHigh    Tone = "high"
	ToneMedium  Tone = "medium"
	ToneLow     Tone = "low"
)

// Suggestion is one entry of the ranked-intent shortlist shown after a
// low-confidence or failed classification.
type Suggestion struct {
	IntentID   string        `json:"intentId"`
	Label      LocalizedText `json:"label"`
	Score      int           `json:"score"`
	Confidence string        `json:"confidence"`
}

// ChatMessage is one append-only entry of the render log.
type ChatMessage struct {
	ID          int          `json:"id"`
	Type        MessageType  `json:"type"`
	Tone        Tone         `json:"tone,omitempty"`
	Text        string       `json:"text,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
	Map         *MapWidget   `json:"map,omitempty"`
}
