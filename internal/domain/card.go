package domain

import "sort"

// Suit identifies one of the four card suits. The numeric order is the
// tiebreak order of the game: Spade is the lowest suit, Diamond the highest.
type Suit int32

const (
	SuitSpade Suit = iota
	SuitHeart
	SuitClub
	SuitDiamond
)

var suitNames = [...]string{"Spade", "Heart", "Club", "Diamond"}

func (s Suit) String() string {
	if s < SuitSpade || s > SuitDiamond {
		return "?"
	}
	return suitNames[s]
}

// Value identifies a card face value. The numeric order is the "rest" order
// used for singles, pairs and triples: 3 is the lowest value and 2 the
// highest, which makes the Spade 2 the "big two".
type Value int32

const (
	Value3 Value = iota
	Value4
	Value5
	Value6
	Value7
	Value8
	Value9
	Value10
	ValueJack
	ValueQueen
	ValueKing
	ValueAce
	Value2
)

var valueNames = [...]string{"3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A", "2"}

func (v Value) String() string {
	if v < Value3 || v > Value2 {
		return "?"
	}
	return valueNames[v]
}

// Card is a single playing card. Equality is structural (suit + value).
type Card struct {
	Suit  Suit  `json:"suit"`
	Value Value `json:"value"`
}

func (c Card) String() string {
	return c.Suit.String() + " " + c.Value.String()
}

// BigTwoCard is the Spade 2, the highest single card in the game. A single
// Spade 2 on the table ends the trick immediately (see NextTurnSeat).
var BigTwoCard = Card{Suit: SuitSpade, Value: Value2}

// straightRank maps a value onto the straight order, where the 2 is the
// lowest value and the Ace the highest.
func straightRank(v Value) int32 {
	return (int32(v) + 1) % 13
}

// HigherValue reports whether a outranks b in the rest order.
func HigherValue(a, b Value) bool {
	return a > b
}

// HigherValueForStraight reports whether a outranks b in the straight order.
func HigherValueForStraight(a, b Value) bool {
	return straightRank(a) > straightRank(b)
}

// HigherSuit reports whether a outranks b.
func HigherSuit(a, b Suit) bool {
	return a > b
}

// SortForRest orders cards ascending by the rest order, suit as tiebreak.
func SortForRest(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Value != cards[j].Value {
			return cards[i].Value < cards[j].Value
		}
		return cards[i].Suit < cards[j].Suit
	})
}

// SortForStraight orders cards ascending by the straight order. If the result
// is exactly 2-3-4-5-A the Ace is rotated to the front so straight detection
// sees the wrapped low straight A-2-3-4-5.
func SortForStraight(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		ri, rj := straightRank(cards[i].Value), straightRank(cards[j].Value)
		if ri != rj {
			return ri < rj
		}
		return cards[i].Suit < cards[j].Suit
	})
	if len(cards) == 5 && cards[0].Value == Value2 && cards[4].Value == ValueAce {
		ace := cards[4]
		copy(cards[1:], cards[:4])
		cards[0] = ace
	}
}

// allSameSuit reports whether every card shares one suit.
func allSameSuit(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	s := cards[0].Suit
	for _, c := range cards {
		if c.Suit != s {
			return false
		}
	}
	return true
}

// AllSameValue reports whether every card shares one value.
func AllSameValue(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	v := cards[0].Value
	for _, c := range cards {
		if c.Value != v {
			return false
		}
	}
	return true
}
