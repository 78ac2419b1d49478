package models

// ChatMessage is an entry in a room's append-only message log.
//
// IsCorrect is tri-state: nil until the server has evaluated the message as a
// guess, otherwise the authoritative verdict. It is set once at creation time
// and never mutated after broadcast.
type ChatMessage struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
	IsCorrect *bool  `json:"isCorrect,omitempty"`
}
