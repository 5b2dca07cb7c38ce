package domain

// ValidPlay decides whether a proposed play is legal against the last
// accepted play. An empty last play means the player is leading: any single
// is legal, pairs and triples must share one value, and five cards must form
// a recognized combo. Against a previous play the proposed play must have
// the same length and beat it. Plays of length 4 never match a branch.
func ValidPlay(lastPlayed, play []Card) bool {
	if len(play) == 0 {
		return false
	}

	if len(lastPlayed) == 0 {
		switch len(play) {
		case 1:
			return true
		case 2, 3:
			return AllSameValue(play)
		case 5:
			_, ok := Classify(play)
			return ok
		}
		return false
	}

	if len(play) != len(lastPlayed) {
		return false
	}

	switch len(play) {
	case 1:
		return beatsSingle(play[0], lastPlayed[0])
	case 2, 3:
		if !AllSameValue(play) {
			return false
		}
		if play[0].Value != lastPlayed[0].Value {
			return HigherValue(play[0].Value, lastPlayed[0].Value)
		}
		// Equal values: the set holding the higher suit wins.
		return HigherSuit(highestSuit(play), highestSuit(lastPlayed))
	case 5:
		return Beats(play, lastPlayed)
	}
	return false
}

func beatsSingle(c, prev Card) bool {
	if c.Value != prev.Value {
		return HigherValue(c.Value, prev.Value)
	}
	return HigherSuit(c.Suit, prev.Suit)
}

func highestSuit(cards []Card) Suit {
	high := cards[0].Suit
	for _, c := range cards[1:] {
		if c.Suit > high {
			high = c.Suit
		}
	}
	return high
}

// HandContains reports whether every claimed card is present in the hand,
// order-independent, by suit+value equality.
func HandContains(hand, cards []Card) bool {
	remaining := make(map[Card]int, len(hand))
	for _, c := range hand {
		remaining[c]++
	}
	for _, c := range cards {
		if remaining[c] == 0 {
			return false
		}
		remaining[c]--
	}
	return true
}

// RemoveCards removes the specified cards from a hand and returns the
// updated hand.
func RemoveCards(hand, toRemove []Card) []Card {
	if len(toRemove) == 0 || len(hand) == 0 {
		return hand
	}

	removeCounts := make(map[Card]int, len(toRemove))
	for _, c := range toRemove {
		removeCounts[c]++
	}

	updated := make([]Card, 0, len(hand))
	for _, c := range hand {
		if n, ok := removeCounts[c]; ok && n > 0 {
			removeCounts[c] = n - 1
			continue
		}
		updated = append(updated, c)
	}
	return updated
}
