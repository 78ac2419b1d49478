package words

import "math/rand"

// SampleCandidates draws up to count distinct candidate words for a drawer.
//
// If custom is non-empty it takes precedence over the built-in catalog: the
// custom words are filtered against used, shuffled, and tagged with
// difficulty "normal" and category "custom". Otherwise the catalog is
// filtered by difficulty (pass-through for "all") and by used.
//
// Exhaustion is tolerated: when fewer than count candidates remain, the
// function returns whatever is left, possibly nothing. It never errors.
func SampleCandidates(count int, difficulty string, custom []string, used map[string]struct{}) []WordItem {
	if count <= 0 {
		return nil
	}

	var pool []WordItem
	if len(custom) > 0 {
		for _, w := range custom {
			if _, taken := used[w]; taken {
				continue
			}
			pool = append(pool, WordItem{Word: w, Difficulty: DifficultyNormal, Category: "custom"})
		}
	} else {
		for _, item := range catalog {
			if difficulty != "" && difficulty != DifficultyAll && item.Difficulty != difficulty {
				continue
			}
			if _, taken := used[item.Word]; taken {
				continue
			}
			pool = append(pool, item)
		}
	}

	// Fisher-Yates via rand.Shuffle keeps the draw unbiased.
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}
