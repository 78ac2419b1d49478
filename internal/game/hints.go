package game

import "strings"

// hintCheckpoints are the elapsed fractions at which the hint is recomputed
// and re-broadcast during a drawing round. A hint is also sent immediately on
// entering the drawing sub-state.
var hintCheckpoints = []float64{0.3, 0.6, 0.8}

// HintFor returns the partial reveal of word for the given elapsed fraction.
// Characters are space-separated, unrevealed ones shown as underscores:
//
//	[0, 0.3)   all underscores
//	[0.3, 0.6) first character revealed
//	[0.6, 0.8) first two characters (the full word when shorter than two)
//	[0.8, 1]   full word
//
// Reveals are cumulative, so later hints are always supersets of earlier ones.
func HintFor(word string, elapsedFraction float64) string {
	runes := []rune(word)

	reveal := 0
	switch {
	case elapsedFraction >= 0.8:
		reveal = len(runes)
	case elapsedFraction >= 0.6:
		reveal = 2
	case elapsedFraction >= 0.3:
		reveal = 1
	}
	if reveal > len(runes) {
		reveal = len(runes)
	}

	parts := make([]string, len(runes))
	for i, r := range runes {
		if i < reveal {
			parts[i] = string(r)
		} else {
			parts[i] = "_"
		}
	}
	return strings.Join(parts, " ")
}
