package models

// Player is a member of a room. The id is the opaque session identifier
// assigned on connect and is stable for the connection's lifetime.
//
// Score intentionally does not live here: it is tracked on the game state so
// it survives host transfer and roster edits independently of presentation
// identity.
type Player struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	IsReady  bool   `json:"isReady"`
}
