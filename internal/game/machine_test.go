package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akitaca/sketchdash/internal/events"
	"github.com/akitaca/sketchdash/internal/models"
)

func chatFrom(userID, text string) models.ChatMessage {
	return models.ChatMessage{UserID: userID, Text: text}
}

// startDrawing starts the game and commits the drawer's first word option,
// returning the drawer, the remaining guesser ids and the committed word.
func startDrawing(t *testing.T, r *Registry, room *Room, conns map[string]*RoomConnection) (drawer string, guessers []string, word string) {
	t.Helper()
	require.NoError(t, r.StartGame(room.Code, "host"))

	room.Mu.Lock()
	drawer = room.Game.CurrentDrawerID
	require.NotEmpty(t, room.Game.WordOptions)
	word = room.Game.WordOptions[0].Word
	room.Mu.Unlock()

	require.NoError(t, r.SelectWord(room.Code, drawer, word))

	for _, p := range room.Players {
		if p.ID != drawer {
			guessers = append(guessers, p.ID)
		}
	}
	for _, c := range conns {
		drainEvents(c)
	}
	return drawer, guessers, word
}

func scoreOf(room *Room, id string) int {
	room.Mu.Lock()
	defer room.Mu.Unlock()
	return room.Game.Scores[id]
}

func TestStartGameEntersSelection(t *testing.T) {
	settings := models.RoomSettings{MaxRounds: 3, RoundDuration: 60, Difficulty: "all"}
	r, room, conns := newTestRoom(t, 2, settings)

	require.NoError(t, r.StartGame("ABC123", "host"))

	room.Mu.Lock()
	assert.Equal(t, PhasePlaying, room.Phase)
	assert.Equal(t, 1, room.CurrentRound)
	require.NotNil(t, room.Game)
	drawer := room.Game.CurrentDrawerID
	assert.Contains(t, []string{"host", "p1"}, drawer)
	assert.Equal(t, SubStateSelecting, room.Game.SubState)
	assert.Len(t, room.Game.WordOptions, 3)
	room.Mu.Unlock()

	guesser := "p1"
	if drawer == "p1" {
		guesser = "host"
	}

	started, ok := findEvent(drainEvents(conns[drawer]), events.EventGameStarted)
	require.True(t, ok)
	assert.Len(t, started.Data.(events.GameSnapshot).WordOptions, 3, "drawer sees the word options")

	started, ok = findEvent(drainEvents(conns[guesser]), events.EventGameStarted)
	require.True(t, ok)
	assert.Empty(t, started.Data.(events.GameSnapshot).WordOptions, "guesser must not see word options")
}

func TestStartGameValidation(t *testing.T) {
	r, _, _ := newTestRoom(t, 2, models.DefaultRoomSettings())

	assert.ErrorIs(t, r.StartGame("NOPE42", "host"), ErrRoomNotFound)
	assert.ErrorIs(t, r.StartGame("ABC123", "p1"), ErrNotHost)

	require.NoError(t, r.StartGame("ABC123", "host"))
	assert.ErrorIs(t, r.StartGame("ABC123", "host"), ErrGameInProgress)

	solo := testRegistry()
	_, err := solo.CreateRoom("SOLO01", models.Player{ID: "only"}, models.DefaultRoomSettings(), testConn("only"))
	require.NoError(t, err)
	assert.ErrorIs(t, solo.StartGame("SOLO01", "only"), ErrNotEnoughPlayers)
}

func TestSelectWordValidation(t *testing.T) {
	r, room, _ := newTestRoom(t, 2, models.DefaultRoomSettings())
	require.NoError(t, r.StartGame("ABC123", "host"))

	room.Mu.Lock()
	drawer := room.Game.CurrentDrawerID
	offered := room.Game.WordOptions[0].Word
	room.Mu.Unlock()
	guesser := "p1"
	if drawer == "p1" {
		guesser = "host"
	}

	assert.ErrorIs(t, r.SelectWord("ABC123", guesser, offered), ErrInvalidWordSelection, "only the drawer may select")
	assert.ErrorIs(t, r.SelectWord("ABC123", drawer, "这不是选项"), ErrInvalidWordSelection, "word must be one of the offered options")

	require.NoError(t, r.SelectWord("ABC123", drawer, offered))
	assert.ErrorIs(t, r.SelectWord("ABC123", drawer, offered), ErrInvalidWordSelection, "selection is closed once drawing starts")

	room.Mu.Lock()
	assert.Equal(t, SubStateDrawing, room.Game.SubState)
	assert.Equal(t, offered, room.Game.CurrentWord)
	assert.Contains(t, room.UsedWords, offered)
	room.Mu.Unlock()
}

func TestSelectWordBroadcasts(t *testing.T) {
	r, room, conns := newTestRoom(t, 2, models.DefaultRoomSettings())
	require.NoError(t, r.StartGame("ABC123", "host"))

	room.Mu.Lock()
	drawer := room.Game.CurrentDrawerID
	offered := room.Game.WordOptions[0]
	room.Mu.Unlock()
	guesser := "p1"
	if drawer == "p1" {
		guesser = "host"
	}
	for _, c := range conns {
		drainEvents(c)
	}

	require.NoError(t, r.SelectWord("ABC123", drawer, offered.Word))

	drawerEvs := drainEvents(conns[drawer])
	sel, ok := findEvent(drawerEvs, events.EventWordSelected)
	require.True(t, ok)
	assert.Equal(t, offered.Word, sel.Data.(events.WordSelectedData).Word, "drawer is told the word")
	assert.False(t, hasEvent(drawerEvs, events.EventHintUpdated), "drawer needs no hint")

	guesserEvs := drainEvents(conns[guesser])
	sel, ok = findEvent(guesserEvs, events.EventWordSelected)
	require.True(t, ok)
	data := sel.Data.(events.WordSelectedData)
	assert.Empty(t, data.Word, "word must not leak to guessers")
	assert.Equal(t, len([]rune(offered.Word)), data.WordLength)

	hint, ok := findEvent(guesserEvs, events.EventHintUpdated)
	require.True(t, ok)
	assert.NotContains(t, hint.Data.(events.HintUpdatedData).HintText, offered.Word, "initial hint is all underscores")
}

func TestGuessEvaluation(t *testing.T) {
	settings := models.RoomSettings{MaxRounds: 3, RoundDuration: 60, CustomWords: []string{"猫"}}
	r, room, conns := newTestRoom(t, 3, settings)
	_, guessers, _ := startDrawing(t, r, room, conns)
	g0 := guessers[0]

	r.HandleChat("ABC123", chatFrom(g0, "狗"))
	room.Mu.Lock()
	wrong := room.Messages[len(room.Messages)-1]
	room.Mu.Unlock()
	require.NotNil(t, wrong.IsCorrect)
	assert.False(t, *wrong.IsCorrect)
	assert.Zero(t, scoreOf(room, g0), "a wrong guess never scores")

	r.HandleChat("ABC123", chatFrom(g0, " 猫 "))
	room.Mu.Lock()
	right := room.Messages[len(room.Messages)-1]
	room.Mu.Unlock()
	require.NotNil(t, right.IsCorrect)
	assert.True(t, *right.IsCorrect, "surrounding whitespace is ignored")
	assert.GreaterOrEqual(t, scoreOf(room, g0), 10)
}

func TestGuessScoringIsTimeProportional(t *testing.T) {
	settings := models.RoomSettings{MaxRounds: 3, RoundDuration: 60, CustomWords: []string{"猫"}}
	r, room, conns := newTestRoom(t, 3, settings)
	_, guessers, word := startDrawing(t, r, room, conns)

	// Guess landing with ~10s remaining of a 60s round.
	room.Mu.Lock()
	room.Game.RoundStartTime = time.Now().Add(-50 * time.Second)
	room.Mu.Unlock()
	r.HandleChat("ABC123", chatFrom(guessers[0], word))
	assert.InDelta(t, 100, scoreOf(room, guessers[0]), 1)

	// A guess past the nominal duration still earns the floor.
	room.Mu.Lock()
	room.Game.RoundStartTime = time.Now().Add(-70 * time.Second)
	room.Mu.Unlock()
	r.HandleChat("ABC123", chatFrom(guessers[1], word))
	assert.Equal(t, 10, scoreOf(room, guessers[1]))
}

func TestCorrectGuessCannotDoubleScore(t *testing.T) {
	settings := models.RoomSettings{MaxRounds: 3, RoundDuration: 60, CustomWords: []string{"猫"}}
	r, room, conns := newTestRoom(t, 3, settings)
	_, guessers, word := startDrawing(t, r, room, conns)
	g0 := guessers[0]

	r.HandleChat("ABC123", chatFrom(g0, word))
	first := scoreOf(room, g0)
	require.GreaterOrEqual(t, first, 10)

	r.HandleChat("ABC123", chatFrom(g0, word))
	assert.Equal(t, first, scoreOf(room, g0), "repeating the word must not score again")

	room.Mu.Lock()
	repeat := room.Messages[len(room.Messages)-1]
	room.Mu.Unlock()
	assert.Nil(t, repeat.IsCorrect, "a player who already guessed sends plain chat")
}

func TestDrawerChatIsNeverAGuess(t *testing.T) {
	settings := models.RoomSettings{MaxRounds: 3, RoundDuration: 60, CustomWords: []string{"猫"}}
	r, room, conns := newTestRoom(t, 2, settings)
	drawer, _, word := startDrawing(t, r, room, conns)

	r.HandleChat("ABC123", chatFrom(drawer, word))

	room.Mu.Lock()
	msg := room.Messages[len(room.Messages)-1]
	score := room.Game.Scores[drawer]
	revealed := room.Game.Revealed
	room.Mu.Unlock()
	assert.Nil(t, msg.IsCorrect)
	assert.Zero(t, score)
	assert.False(t, revealed)
}

func TestAllGuessedEndsRoundEarlyAndRotatesDrawer(t *testing.T) {
	settings := models.RoomSettings{MaxRounds: 3, RoundDuration: 60, CustomWords: []string{"猫", "狗", "鱼"}}
	r, room, conns := newTestRoom(t, 3, settings)
	r.GraceDelay = 20 * time.Millisecond
	drawer, guessers, word := startDrawing(t, r, room, conns)

	for _, g := range guessers {
		r.HandleChat("ABC123", chatFrom(g, word))
	}

	room.Mu.Lock()
	assert.True(t, room.Game.Revealed, "round closes as soon as every guesser has it")
	room.Mu.Unlock()

	revealed, ok := findEvent(drainEvents(conns[guessers[0]]), events.EventAnswerRevealed)
	require.True(t, ok)
	assert.Equal(t, events.AnswerRevealedData{Word: word, Correct: true}, revealed.Data)

	require.Eventually(t, func() bool {
		room.Mu.Lock()
		defer room.Mu.Unlock()
		return room.CurrentRound == 2
	}, 2*time.Second, 10*time.Millisecond, "grace delay advances to the next round")

	room.Mu.Lock()
	assert.Equal(t, SubStateSelecting, room.Game.SubState)
	assert.NotEqual(t, drawer, room.Game.CurrentDrawerID, "drawer role rotates")
	assert.False(t, room.Game.Revealed)
	assert.Empty(t, room.Game.GuessedBy)
	assert.Empty(t, room.Drawings, "replay buffer resets between rounds")
	room.Mu.Unlock()
}

func TestGuessesAfterRevealArePlainChat(t *testing.T) {
	settings := models.RoomSettings{MaxRounds: 3, RoundDuration: 60, CustomWords: []string{"猫"}}
	r, room, conns := newTestRoom(t, 3, settings)
	_, guessers, word := startDrawing(t, r, room, conns)

	room.Mu.Lock()
	stamp := room.Game.Stamp
	room.Mu.Unlock()
	r.onRoundExpiry("ABC123", stamp)

	r.HandleChat("ABC123", chatFrom(guessers[0], word))
	room.Mu.Lock()
	msg := room.Messages[len(room.Messages)-1]
	room.Mu.Unlock()
	assert.Nil(t, msg.IsCorrect)
	assert.Zero(t, scoreOf(room, guessers[0]))
}

func TestRoundExpiryRevealsWithoutBonus(t *testing.T) {
	settings := models.RoomSettings{MaxRounds: 3, RoundDuration: 60, CustomWords: []string{"猫"}}
	r, room, conns := newTestRoom(t, 2, settings)
	_, guessers, word := startDrawing(t, r, room, conns)

	room.Mu.Lock()
	stamp := room.Game.Stamp
	room.Mu.Unlock()
	r.onRoundExpiry("ABC123", stamp)

	revealed, ok := findEvent(drainEvents(conns[guessers[0]]), events.EventAnswerRevealed)
	require.True(t, ok)
	assert.Equal(t, events.AnswerRevealedData{Word: word, Correct: false}, revealed.Data)
}

func TestStaleTimerStampIsNoop(t *testing.T) {
	settings := models.RoomSettings{MaxRounds: 3, RoundDuration: 60, CustomWords: []string{"猫"}}
	r, room, conns := newTestRoom(t, 2, settings)
	_, _, _ = startDrawing(t, r, room, conns)

	room.Mu.Lock()
	stale := room.Game.Stamp - 1
	room.Mu.Unlock()

	r.onRoundExpiry("ABC123", stale)
	r.onSelectionTimeout("ABC123", stale)
	r.onHintCheckpoint("ABC123", stale, 0.3)
	r.onGraceElapsed("ABC123", stale)

	room.Mu.Lock()
	assert.False(t, room.Game.Revealed)
	assert.Equal(t, SubStateDrawing, room.Game.SubState)
	room.Mu.Unlock()
	for id, c := range conns {
		assert.Empty(t, drainEvents(c), "stale timer emitted events to %s", id)
	}
}

func TestHintCheckpointReachesGuessersOnly(t *testing.T) {
	settings := models.RoomSettings{MaxRounds: 3, RoundDuration: 60, CustomWords: []string{"电风扇"}}
	r, room, conns := newTestRoom(t, 2, settings)
	drawer, guessers, _ := startDrawing(t, r, room, conns)

	room.Mu.Lock()
	stamp := room.Game.Stamp
	room.Mu.Unlock()
	r.onHintCheckpoint("ABC123", stamp, 0.3)

	hint, ok := findEvent(drainEvents(conns[guessers[0]]), events.EventHintUpdated)
	require.True(t, ok)
	assert.Equal(t, "电 _ _", hint.Data.(events.HintUpdatedData).HintText)
	assert.False(t, hasEvent(drainEvents(conns[drawer]), events.EventHintUpdated))
}

func TestSelectionTimeoutAutoPicksFirstOption(t *testing.T) {
	r, room, _ := newTestRoom(t, 2, models.DefaultRoomSettings())
	r.SelectionTimeout = 20 * time.Millisecond

	require.NoError(t, r.StartGame("ABC123", "host"))
	room.Mu.Lock()
	first := room.Game.WordOptions[0].Word
	room.Mu.Unlock()

	require.Eventually(t, func() bool {
		room.Mu.Lock()
		defer room.Mu.Unlock()
		return room.Game.SubState == SubStateDrawing
	}, 2*time.Second, 10*time.Millisecond)

	room.Mu.Lock()
	assert.Equal(t, first, room.Game.CurrentWord)
	room.Mu.Unlock()
}

func TestGameFinishesAfterMaxRounds(t *testing.T) {
	settings := models.RoomSettings{MaxRounds: 1, RoundDuration: 60, CustomWords: []string{"猫", "狗"}}
	r, room, conns := newTestRoom(t, 2, settings)
	r.GraceDelay = 20 * time.Millisecond

	done := make(chan GameSummary, 1)
	r.OnGameFinished = func(s GameSummary) { done <- s }

	drawer, guessers, word := startDrawing(t, r, room, conns)
	r.HandleChat("ABC123", chatFrom(guessers[0], word))

	require.Eventually(t, func() bool {
		room.Mu.Lock()
		defer room.Mu.Unlock()
		return room.Phase == PhaseFinished
	}, 2*time.Second, 10*time.Millisecond)

	room.Mu.Lock()
	assert.Equal(t, 1, room.CurrentRound, "no further round starts")
	assert.NotNil(t, room.Game, "final scoreboard stays renderable")
	room.Mu.Unlock()

	assert.True(t, hasEvent(drainEvents(conns[guessers[0]]), events.EventGameEnded))

	// A stale select-word arriving after the game finished is rejected.
	assert.ErrorIs(t, r.SelectWord("ABC123", drawer, word), ErrInvalidWordSelection)

	select {
	case summary := <-done:
		assert.Equal(t, "ABC123", summary.RoomCode)
		assert.Equal(t, 1, summary.Rounds)
		assert.GreaterOrEqual(t, summary.Scores[guessers[0]], 10)
	case <-time.After(2 * time.Second):
		t.Fatal("OnGameFinished was never called")
	}
}

func TestDrawerLeavingEndsTheRound(t *testing.T) {
	settings := models.RoomSettings{MaxRounds: 3, RoundDuration: 60, CustomWords: []string{"猫", "狗"}}
	r, room, conns := newTestRoom(t, 3, settings)
	drawer, guessers, word := startDrawing(t, r, room, conns)

	r.LeaveRoom("ABC123", drawer)

	room.Mu.Lock()
	assert.True(t, room.Game.Revealed)
	room.Mu.Unlock()
	revealed, ok := findEvent(drainEvents(conns[guessers[0]]), events.EventAnswerRevealed)
	require.True(t, ok)
	assert.Equal(t, events.AnswerRevealedData{Word: word, Correct: false}, revealed.Data)
}

func TestGuesserLeavingCanCompleteTheRound(t *testing.T) {
	settings := models.RoomSettings{MaxRounds: 3, RoundDuration: 60, CustomWords: []string{"猫", "狗"}}
	r, room, conns := newTestRoom(t, 3, settings)
	_, guessers, word := startDrawing(t, r, room, conns)

	r.HandleChat("ABC123", chatFrom(guessers[0], word))
	room.Mu.Lock()
	assert.False(t, room.Game.Revealed, "one guesser still outstanding")
	room.Mu.Unlock()

	r.LeaveRoom("ABC123", guessers[1])

	room.Mu.Lock()
	assert.True(t, room.Game.Revealed, "round ends once every remaining guesser has scored")
	room.Mu.Unlock()
	assert.True(t, hasEvent(drainEvents(conns[guessers[0]]), events.EventAnswerRevealed))
}

func TestHandleDrawingRelayAndClear(t *testing.T) {
	settings := models.RoomSettings{MaxRounds: 3, RoundDuration: 60, CustomWords: []string{"猫"}}
	r, room, conns := newTestRoom(t, 2, settings)
	drawer, guessers, _ := startDrawing(t, r, room, conns)

	stroke := models.DrawingAction{Type: models.DrawingStroke, Color: "#000000", Width: 3}
	r.HandleDrawing("ABC123", drawer, stroke)

	room.Mu.Lock()
	assert.Len(t, room.Drawings, 1)
	room.Mu.Unlock()
	assert.True(t, hasEvent(drainEvents(conns[guessers[0]]), events.EventNewDrawingAction))
	assert.False(t, hasEvent(drainEvents(conns[drawer]), events.EventNewDrawingAction), "sender does not echo its own action")

	r.HandleDrawing("ABC123", drawer, models.DrawingAction{Type: models.DrawingClear})
	room.Mu.Lock()
	assert.Empty(t, room.Drawings, "clear resets the replay buffer")
	room.Mu.Unlock()
}

func TestChatInWaitingRoomIsPlainMessage(t *testing.T) {
	r, room, conns := newTestRoom(t, 2, models.DefaultRoomSettings())

	r.HandleChat("ABC123", chatFrom("p1", "大家好"))

	room.Mu.Lock()
	require.Len(t, room.Messages, 1)
	msg := room.Messages[0]
	room.Mu.Unlock()
	assert.Nil(t, msg.IsCorrect)
	assert.NotEmpty(t, msg.ID, "server assigns an id when the client omits one")
	assert.Equal(t, "Guestp1", msg.Username)
	assert.True(t, hasEvent(drainEvents(conns["host"]), events.EventNewChatMessage))
}
