package game

import (
	"time"

	"github.com/akitaca/sketchdash/internal/events"
	"github.com/akitaca/sketchdash/internal/models"
	"github.com/akitaca/sketchdash/internal/words"
)

// WordSubState is the sub-state within a playing round.
type WordSubState string

const (
	SubStateSelecting WordSubState = "selecting"
	SubStateDrawing   WordSubState = "drawing"
)

// GameState holds the per-round turn state of a playing room. It is owned by
// its Room and guarded by the room's mutex.
type GameState struct {
	CurrentDrawerID string

	// CurrentWord is empty while the drawer is still choosing.
	CurrentWord string

	// RoundStartTime marks the start of the active drawing sub-state. It is
	// re-stamped when the word is actually selected, not when the round
	// nominally begins, so hint and score timing only ever count drawing time.
	RoundStartTime time.Time
	RoundDuration  time.Duration

	// Scores persist across rounds within one game, seeded to zero for every
	// player at game start.
	Scores map[string]int

	// GuessedBy records who already scored this round. It both prevents
	// double-scoring and decides the all-guessed early end.
	GuessedBy map[string]struct{}

	SubState    WordSubState
	WordOptions []words.WordItem

	// Revealed is set once the answer has been shown, closing the round to
	// further guesses while the grace delay runs.
	Revealed bool

	// Stamp increments on every sub-state transition. Timer callbacks carry
	// the stamp they were armed with and become no-ops once it moves on.
	Stamp int64
}

func newGameState(players []*models.Player, duration time.Duration) *GameState {
	scores := make(map[string]int, len(players))
	for _, p := range players {
		scores[p.ID] = 0
	}
	return &GameState{
		RoundDuration: duration,
		Scores:        scores,
		GuessedBy:     make(map[string]struct{}),
		SubState:      SubStateSelecting,
	}
}

// snapshotFor builds the game view for one player. The current word is never
// included; word options appear only in the drawer's copy during selection.
func (g *GameState) snapshotFor(playerID string, round int) events.GameSnapshot {
	scores := make(map[string]int, len(g.Scores))
	for id, s := range g.Scores {
		scores[id] = s
	}
	guessed := make([]string, 0, len(g.GuessedBy))
	for id := range g.GuessedBy {
		guessed = append(guessed, id)
	}
	snap := events.GameSnapshot{
		CurrentDrawerID:    g.CurrentDrawerID,
		CurrentRound:       round,
		RoundStartTime:     g.RoundStartTime.UnixMilli(),
		RoundDuration:      int(g.RoundDuration.Seconds()),
		Scores:             scores,
		GuessedBy:          guessed,
		WordSelectionState: string(g.SubState),
	}
	if playerID == g.CurrentDrawerID && g.SubState == SubStateSelecting {
		snap.WordOptions = g.WordOptions
	}
	return snap
}

// elapsedFraction is how far into the drawing window the round is, capped at 1.
func (g *GameState) elapsedFraction(now time.Time) float64 {
	if g.RoundDuration <= 0 {
		return 1
	}
	frac := now.Sub(g.RoundStartTime).Seconds() / g.RoundDuration.Seconds()
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}
