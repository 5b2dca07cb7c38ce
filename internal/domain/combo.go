package domain

// ComboRank identifies the five recognized 5-card combinations, ordered
// weakest to strongest.
type ComboRank int32

const (
	ComboNone ComboRank = iota
	ComboStraight
	ComboFlush
	ComboFullHouse
	ComboFourOfAKind
	ComboStraightFlush
)

var comboRankNames = [...]string{"none", "straight", "flush", "full-house", "four-of-a-kind", "straight-flush"}

func (r ComboRank) String() string {
	if r < ComboNone || r > ComboStraightFlush {
		return "?"
	}
	return comboRankNames[r]
}

// Combo holds the rank of a 5-card play plus the fields its rank uses to
// break ties. Only the fields belonging to the detected shapes are set.
type Combo struct {
	Rank ComboRank

	TripleValue Value
	QuadValue   Value

	FlushSuit Suit
	FlushHigh Value

	StraightLow      Value
	StraightHigh     Value
	StraightHighSuit Suit
}

// Classify derives the combo characteristics of a 5-card play. ok is false
// when the cards form none of the recognized ranks. The input is not
// reordered.
func Classify(cards []Card) (Combo, bool) {
	var combo Combo
	if len(cards) != 5 {
		return combo, false
	}

	sorted := make([]Card, 5)
	copy(sorted, cards)
	SortForRest(sorted)

	counts := make(map[Value]int, 5)
	for _, c := range sorted {
		counts[c.Value]++
	}
	for v, n := range counts {
		switch n {
		case 4:
			combo.QuadValue = v
			combo.Rank = ComboFourOfAKind
		case 3:
			combo.TripleValue = v
			combo.Rank = ComboFullHouse
		}
	}

	flush := allSameSuit(sorted)
	if flush {
		combo.Rank = ComboFlush
		combo.FlushSuit = sorted[0].Suit
		// High card of a flush is ranked by the rest order.
		combo.FlushHigh = sorted[4].Value
	}

	SortForStraight(sorted)
	straight := isStraightCards(sorted)
	if straight {
		combo.StraightLow = sorted[0].Value
		combo.StraightHigh = sorted[4].Value
		combo.StraightHighSuit = sorted[4].Suit
	}

	switch {
	case straight && flush:
		combo.Rank = ComboStraightFlush
	case straight:
		combo.Rank = ComboStraight
	}

	return combo, combo.Rank != ComboNone
}

// IsStraight reports whether five straight-order-sorted values are
// consecutive. The wrapped low straight must arrive as A-2-3-4-5, which is
// how SortForStraight leaves it.
func IsStraight(values []Value) bool {
	if len(values) != 5 {
		return false
	}
	if values[0] == ValueAce && values[1] == Value2 && values[2] == Value3 &&
		values[3] == Value4 && values[4] == Value5 {
		return true
	}
	start := straightRank(values[0])
	for i, v := range values {
		if straightRank(v) != start+int32(i) {
			return false
		}
	}
	return true
}

func isStraightCards(cards []Card) bool {
	values := make([]Value, len(cards))
	for i, c := range cards {
		values[i] = c.Value
	}
	return IsStraight(values)
}

// Beats reports whether the candidate 5-card play beats the incumbent play
// on the table. A higher rank wins outright; equal ranks fall back to the
// rank-specific tiebreak.
func Beats(candidate, incumbent []Card) bool {
	cand, ok := Classify(candidate)
	if !ok {
		return false
	}
	inc, ok := Classify(incumbent)
	if !ok {
		return true
	}

	if cand.Rank != inc.Rank {
		return cand.Rank > inc.Rank
	}

	switch cand.Rank {
	case ComboStraight:
		if cand.StraightHigh != inc.StraightHigh {
			return HigherValueForStraight(cand.StraightHigh, inc.StraightHigh)
		}
		return HigherSuit(cand.StraightHighSuit, inc.StraightHighSuit)
	case ComboFlush, ComboStraightFlush:
		// Suit dominates for flush against flush; a straight flush is
		// compared the same way, its flush fields being the one suit all
		// five cards share.
		if cand.FlushSuit != inc.FlushSuit {
			return HigherSuit(cand.FlushSuit, inc.FlushSuit)
		}
		return HigherValue(cand.FlushHigh, inc.FlushHigh)
	case ComboFullHouse:
		// The pair is irrelevant.
		return HigherValue(cand.TripleValue, inc.TripleValue)
	case ComboFourOfAKind:
		return HigherValue(cand.QuadValue, inc.QuadValue)
	}
	return false
}
