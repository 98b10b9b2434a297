package match

import (
	"cmp"
	"slices"
	"strings"
)

const (
	// MinScore is the score below which a name is not considered a near miss.
	MinScore = 0.6

	// prefixScore rates abbreviations such as "Inv" for "Inverse".
	prefixScore = 0.8
	// minPrefix is the shortest abbreviation prefixScore applies to.
	minPrefix = 3
)

// Candidate is a declared name that resembles a wanted one.
type Candidate struct {
	Name  string
	Score float64
}

// Score rates how alike two identifiers are, from 0.0 to 1.0. Identifiers
// are normalized first; one being a prefix of the other scores at least
// prefixScore.
func Score(a, b string) float64 {
	na, nb := NormalizeIdent(a), NormalizeIdent(b)
	score := Similarity(na, nb)

	short, long := na, nb
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) >= minPrefix && strings.HasPrefix(long, short) {
		score = max(score, prefixScore)
	}

	return score
}

// NearMisses returns the declared names scoring at least minScore against
// want, best first. Exact matches are not near misses and are skipped.
func NearMisses(want string, declared []string, minScore float64) []Candidate {
	var out []Candidate
	for _, name := range declared {
		if name == want {
			continue
		}
		if s := Score(want, name); s >= minScore {
			out = append(out, Candidate{Name: name, Score: s})
		}
	}

	slices.SortStableFunc(out, func(x, y Candidate) int {
		if c := cmp.Compare(y.Score, x.Score); c != 0 {
			return c
		}
		return strings.Compare(x.Name, y.Name)
	})

	return out
}

// Best returns the highest scoring near miss of want.
func Best(want string, declared []string) (Candidate, bool) {
	misses := NearMisses(want, declared, MinScore)
	if len(misses) == 0 {
		return Candidate{}, false
	}

	return misses[0], true
}
