package models

import "encoding/json"

// DrawingAction is an opaque canvas action relayed between clients. The
// server never interprets Data beyond distinguishing "clear" actions, which
// reset the per-round replay buffer.
type DrawingAction struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data,omitempty"`
	Color string          `json:"color,omitempty"`
	Width float64         `json:"width,omitempty"`
}

const (
	DrawingStroke = "stroke"
	DrawingClear  = "clear"
)
