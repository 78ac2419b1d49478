package handlers

import "github.com/coder/websocket"

// Application-specific websocket close codes, in the private-use range.
const (
	BadSubprotocolError websocket.StatusCode = 4000 + iota
	RateLimitExceeded
)
