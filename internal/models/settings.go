package models

// RoomSettings are the host-chosen parameters fixed at room creation.
type RoomSettings struct {
	MaxRounds     int      `json:"maxRounds"`
	RoundDuration int      `json:"roundDuration"` // seconds
	Difficulty    string   `json:"difficulty"`    // easy | normal | hard | all
	CustomWords   []string `json:"customWords,omitempty"`
}

// DefaultRoomSettings mirrors the values used when the host supplies nothing.
func DefaultRoomSettings() RoomSettings {
	return RoomSettings{
		MaxRounds:     5,
		RoundDuration: 60,
		Difficulty:    "all",
	}
}

// Normalize replaces zero or nonsensical values with defaults.
func (s *RoomSettings) Normalize() {
	if s.MaxRounds <= 0 {
		s.MaxRounds = 5
	}
	if s.RoundDuration <= 0 {
		s.RoundDuration = 60
	}
	if s.Difficulty == "" {
		s.Difficulty = "all"
	}
}
