package domain

// NewDeck returns an ordered 52-card deck.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for s := SuitSpade; s <= SuitDiamond; s++ {
		for v := Value3; v <= Value2; v++ {
			deck = append(deck, Card{Suit: s, Value: v})
		}
	}
	return deck
}
