package game

import (
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akitaca/sketchdash/internal/events"
	"github.com/akitaca/sketchdash/internal/models"
	"github.com/akitaca/sketchdash/internal/words"
)

const wordOptionCount = 3

// StartGame moves a waiting room into the playing phase, seeds the game state
// and enters word selection for round one with a randomly chosen drawer.
// Duplicate delivery after the phase moved on fails the phase guard.
func (r *Registry) StartGame(code, requesterID string) error {
	room, ok := r.Get(code)
	if !ok {
		return ErrRoomNotFound
	}
	room.Mu.Lock()
	defer room.Mu.Unlock()

	if requesterID != room.HostID {
		return ErrNotHost
	}
	if room.Phase != PhaseWaiting {
		return ErrGameInProgress
	}
	if len(room.Players) < 2 {
		return ErrNotEnoughPlayers
	}

	room.Phase = PhasePlaying
	room.CurrentRound = 1
	room.Game = newGameState(room.Players, time.Duration(room.Settings.RoundDuration)*time.Second)
	room.Game.CurrentDrawerID = room.Players[rand.Intn(len(room.Players))].ID

	log.Printf("room %s: game started, %d players, drawer %s", code, len(room.Players), room.Game.CurrentDrawerID)

	r.enterSelectingLocked(room, events.EventGameStarted)
	return nil
}

// enterSelectingLocked puts the room into the word-selection sub-state for the
// current drawer and arms the auto-selection timer. evType is game-started for
// round one and new-round afterwards. Caller holds room.Mu.
func (r *Registry) enterSelectingLocked(room *Room, evType events.EventType) {
	g := room.Game
	g.Stamp++
	g.SubState = SubStateSelecting
	g.CurrentWord = ""
	g.Revealed = false
	g.GuessedBy = make(map[string]struct{})
	g.WordOptions = words.SampleCandidates(wordOptionCount, room.Settings.Difficulty, room.Settings.CustomWords, room.UsedWords)
	if len(g.WordOptions) == 0 {
		// Catalog exhausted for this game; recycle rather than stall.
		room.UsedWords = make(map[string]struct{})
		g.WordOptions = words.SampleCandidates(wordOptionCount, room.Settings.Difficulty, room.Settings.CustomWords, room.UsedWords)
	}

	room.broadcastGame(evType)
	room.broadcastRoomUpdate()
	r.armSelectionTimer(room.Code, g.Stamp)
}

// SelectWord applies the drawer's word choice and opens the drawing sub-state.
// Only the current drawer may select, only during selection, and only a word
// that was actually offered.
func (r *Registry) SelectWord(code, playerID, word string) error {
	room, ok := r.Get(code)
	if !ok {
		return ErrRoomNotFound
	}
	room.Mu.Lock()
	defer room.Mu.Unlock()

	g := room.Game
	if room.Phase != PhasePlaying || g == nil || g.SubState != SubStateSelecting {
		return ErrInvalidWordSelection
	}
	if playerID != g.CurrentDrawerID {
		return ErrInvalidWordSelection
	}
	for _, opt := range g.WordOptions {
		if opt.Word == word {
			r.selectWordLocked(room, opt)
			return nil
		}
	}
	return ErrInvalidWordSelection
}

// selectWordLocked commits the chosen word: the drawing clock starts now, the
// expiry and hint timers are armed, and the drawer alone learns the word.
// Caller holds room.Mu.
func (r *Registry) selectWordLocked(room *Room, item words.WordItem) {
	g := room.Game
	g.Stamp++
	g.CurrentWord = item.Word
	g.SubState = SubStateDrawing
	g.RoundStartTime = time.Now()
	room.UsedWords[item.Word] = struct{}{}

	log.Printf("room %s: round %d word selected by %s", room.Code, room.CurrentRound, g.CurrentDrawerID)

	meta := events.WordSelectedData{
		DrawerID:   g.CurrentDrawerID,
		Difficulty: item.Difficulty,
		Category:   item.Category,
		WordLength: len([]rune(item.Word)),
	}
	withWord := meta
	withWord.Word = item.Word
	room.sendTo(g.CurrentDrawerID, events.Event{Type: events.EventWordSelected, Data: withWord})
	room.broadcastExcept(g.CurrentDrawerID, events.Event{Type: events.EventWordSelected, Data: meta})

	// Guessers start from the all-underscores hint.
	room.broadcastExcept(g.CurrentDrawerID, events.Event{
		Type: events.EventHintUpdated,
		Data: events.HintUpdatedData{HintText: HintFor(item.Word, 0)},
	})
	room.broadcastGame(events.EventGameStateUpdated)

	r.armDrawingTimers(room.Code, g.Stamp, g.RoundDuration)
}

// HandleChat appends a chat message to the room log and broadcasts it. During
// the drawing sub-state a guesser's message is additionally evaluated as a
// guess: an exact match of the current word (whitespace-trimmed,
// case-insensitive) scores and may end the round early once every guesser has
// it.
func (r *Registry) HandleChat(code string, msg models.ChatMessage) {
	room, ok := r.Get(code)
	if !ok {
		return
	}
	room.Mu.Lock()
	defer room.Mu.Unlock()

	_, sender := room.findPlayer(msg.UserID)
	if sender == nil {
		return
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Username == "" {
		msg.Username = sender.Nickname
	}
	now := time.Now()
	msg.Timestamp = now.UnixMilli()

	g := room.Game
	guessable := room.Phase == PhasePlaying && g != nil &&
		g.SubState == SubStateDrawing && !g.Revealed &&
		msg.UserID != g.CurrentDrawerID

	allGuessed := false
	if guessable {
		_, already := g.GuessedBy[msg.UserID]
		correct := !already && matchesWord(msg.Text, g.CurrentWord)
		if !already {
			msg.IsCorrect = &correct
		}
		if correct {
			g.GuessedBy[msg.UserID] = struct{}{}
			g.Scores[msg.UserID] += scoreFor(g, now)
			allGuessed = len(g.GuessedBy) >= room.nonDrawerCount()
		}
	}

	room.Messages = append(room.Messages, msg)
	room.broadcast(events.Event{Type: events.EventNewChatMessage, Data: msg})

	if guessable && msg.IsCorrect != nil && *msg.IsCorrect {
		room.broadcastGame(events.EventGameStateUpdated)
		if allGuessed {
			r.endRoundLocked(room, true)
		}
	}
}

// HandleDrawing relays a canvas action to every other room member and keeps
// the per-round replay buffer current. A clear action resets the buffer.
func (r *Registry) HandleDrawing(code, playerID string, action models.DrawingAction) {
	room, ok := r.Get(code)
	if !ok {
		return
	}
	room.Mu.Lock()
	defer room.Mu.Unlock()

	if action.Type == models.DrawingClear {
		room.Drawings = room.Drawings[:0]
	} else {
		room.Drawings = append(room.Drawings, action)
	}
	room.broadcastExcept(playerID, events.Event{Type: events.EventNewDrawingAction, Data: action})
}

// matchesWord is the guess predicate: exact match after trimming surrounding
// whitespace, case-insensitively. No fuzzy or partial credit.
func matchesWord(guess, word string) bool {
	return strings.EqualFold(strings.TrimSpace(guess), word)
}

// scoreFor awards points proportional to the time remaining when the guess
// landed, ten points per remaining second, never below the floor of 10.
func scoreFor(g *GameState, now time.Time) int {
	remaining := g.RoundDuration - now.Sub(g.RoundStartTime)
	pts := int(math.Floor(remaining.Seconds() * 10))
	if pts < 10 {
		pts = 10
	}
	return pts
}

// allGuessedLocked reports whether every current guesser has already scored.
// Caller holds room.Mu.
func (r *Registry) allGuessedLocked(room *Room) bool {
	g := room.Game
	if g == nil {
		return false
	}
	n := room.nonDrawerCount()
	return n > 0 && len(g.GuessedBy) >= n
}

// endRoundLocked reveals the answer and arms the grace timer that will advance
// or finish the game. Caller holds room.Mu.
func (r *Registry) endRoundLocked(room *Room, allGuessed bool) {
	g := room.Game
	g.Revealed = true
	g.Stamp++

	room.broadcast(events.Event{Type: events.EventAnswerRevealed, Data: events.AnswerRevealedData{
		Word:    g.CurrentWord,
		Correct: allGuessed,
	}})
	r.armGraceTimer(room.Code, g.Stamp)
}

// finishGameLocked closes the room and hands the final scoreboard to the
// export hook. GameState is intentionally retained so the scoreboard stays
// renderable. Caller holds room.Mu.
func (r *Registry) finishGameLocked(room *Room) {
	room.Phase = PhaseFinished
	r.cancelTimers(room.Code)

	log.Printf("room %s: game finished after %d rounds", room.Code, room.CurrentRound)

	snap := room.Snapshot()
	room.broadcast(events.Event{Type: events.EventGameEnded, Data: snap})
	room.broadcastRoomUpdate()

	if r.OnGameFinished != nil {
		scores := make(map[string]int, len(room.Game.Scores))
		for id, s := range room.Game.Scores {
			scores[id] = s
		}
		summary := GameSummary{
			RoomCode:   room.Code,
			FinishedAt: time.Now().UnixMilli(),
			Rounds:     room.CurrentRound,
			Scores:     scores,
			Players:    snap.Players,
		}
		go r.OnGameFinished(summary)
	}
}

// nextDrawerLocked picks the player after the current drawer in roster order.
// A drawer who already left resolves to the head of the roster. Caller holds
// room.Mu.
func nextDrawerLocked(room *Room) string {
	idx, _ := room.findPlayer(room.Game.CurrentDrawerID)
	return room.Players[(idx+1)%len(room.Players)].ID
}

// onSelectionTimeout fires when the drawer never picked a word; the first
// offered option is chosen for them.
func (r *Registry) onSelectionTimeout(code string, stamp int64) {
	room, ok := r.Get(code)
	if !ok {
		return
	}
	room.Mu.Lock()
	defer room.Mu.Unlock()

	g := room.Game
	if room.Phase != PhasePlaying || g == nil || g.Stamp != stamp || g.SubState != SubStateSelecting {
		return
	}
	if len(g.WordOptions) == 0 {
		return
	}
	log.Printf("room %s: selection timed out, auto-picking for %s", code, g.CurrentDrawerID)
	r.selectWordLocked(room, g.WordOptions[0])
}

// onRoundExpiry fires when the drawing window closes without everyone having
// guessed.
func (r *Registry) onRoundExpiry(code string, stamp int64) {
	room, ok := r.Get(code)
	if !ok {
		return
	}
	room.Mu.Lock()
	defer room.Mu.Unlock()

	g := room.Game
	if room.Phase != PhasePlaying || g == nil || g.Stamp != stamp || g.SubState != SubStateDrawing || g.Revealed {
		return
	}
	r.endRoundLocked(room, false)
}

// onHintCheckpoint recomputes the hint at an elapsed-fraction checkpoint and
// sends it to the guessers.
func (r *Registry) onHintCheckpoint(code string, stamp int64, frac float64) {
	room, ok := r.Get(code)
	if !ok {
		return
	}
	room.Mu.Lock()
	defer room.Mu.Unlock()

	g := room.Game
	if room.Phase != PhasePlaying || g == nil || g.Stamp != stamp || g.SubState != SubStateDrawing || g.Revealed {
		return
	}
	room.broadcastExcept(g.CurrentDrawerID, events.Event{
		Type: events.EventHintUpdated,
		Data: events.HintUpdatedData{HintText: HintFor(g.CurrentWord, frac)},
	})
}

// onGraceElapsed fires after the reveal pause: either the game is over, or the
// next round begins with the drawer role rotated.
func (r *Registry) onGraceElapsed(code string, stamp int64) {
	room, ok := r.Get(code)
	if !ok {
		return
	}
	room.Mu.Lock()
	defer room.Mu.Unlock()

	g := room.Game
	if room.Phase != PhasePlaying || g == nil || g.Stamp != stamp || !g.Revealed {
		return
	}

	if room.CurrentRound >= room.Settings.MaxRounds {
		r.finishGameLocked(room)
		return
	}

	room.CurrentRound++
	g.CurrentDrawerID = nextDrawerLocked(room)
	room.Drawings = nil
	r.enterSelectingLocked(room, events.EventNewRound)
}
