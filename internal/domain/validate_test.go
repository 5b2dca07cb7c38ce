package domain

import (
	"reflect"
	"testing"
)

func TestValidPlayLeading(t *testing.T) {
	tests := []struct {
		name     string
		play     []Card
		expected bool
	}{
		{
			name:     "any single",
			play:     []Card{{Suit: SuitSpade, Value: Value3}},
			expected: true,
		},
		{
			name: "pair of equal values",
			play: []Card{
				{Suit: SuitSpade, Value: Value7},
				{Suit: SuitDiamond, Value: Value7},
			},
			expected: true,
		},
		{
			name: "mismatched pair",
			play: []Card{
				{Suit: SuitSpade, Value: Value7},
				{Suit: SuitDiamond, Value: Value8},
			},
			expected: false,
		},
		{
			name: "triple",
			play: []Card{
				{Suit: SuitSpade, Value: ValueJack},
				{Suit: SuitHeart, Value: ValueJack},
				{Suit: SuitClub, Value: ValueJack},
			},
			expected: true,
		},
		{
			name: "four cards are never playable",
			play: []Card{
				{Suit: SuitSpade, Value: Value9},
				{Suit: SuitHeart, Value: Value9},
				{Suit: SuitClub, Value: Value9},
				{Suit: SuitDiamond, Value: Value9},
			},
			expected: false,
		},
		{
			name: "five card straight",
			play: []Card{
				{Suit: SuitSpade, Value: Value5},
				{Suit: SuitHeart, Value: Value6},
				{Suit: SuitClub, Value: Value7},
				{Suit: SuitDiamond, Value: Value8},
				{Suit: SuitSpade, Value: Value9},
			},
			expected: true,
		},
		{
			name: "five unrelated cards",
			play: []Card{
				{Suit: SuitSpade, Value: Value3},
				{Suit: SuitHeart, Value: Value5},
				{Suit: SuitClub, Value: Value9},
				{Suit: SuitDiamond, Value: ValueJack},
				{Suit: SuitSpade, Value: ValueKing},
			},
			expected: false,
		},
		{
			name:     "empty play",
			play:     nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidPlay(nil, tt.play); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestValidPlayAgainstPrevious(t *testing.T) {
	tests := []struct {
		name     string
		last     []Card
		play     []Card
		expected bool
	}{
		{
			name:     "higher single value",
			last:     []Card{{Suit: SuitDiamond, Value: Value9}},
			play:     []Card{{Suit: SuitSpade, Value: Value10}},
			expected: true,
		},
		{
			name:     "equal value higher suit",
			last:     []Card{{Suit: SuitHeart, Value: Value9}},
			play:     []Card{{Suit: SuitClub, Value: Value9}},
			expected: true,
		},
		{
			name:     "equal value lower suit",
			last:     []Card{{Suit: SuitDiamond, Value: Value9}},
			play:     []Card{{Suit: SuitSpade, Value: Value9}},
			expected: false,
		},
		{
			name:     "2 beats ace",
			last:     []Card{{Suit: SuitDiamond, Value: ValueAce}},
			play:     []Card{{Suit: SuitSpade, Value: Value2}},
			expected: true,
		},
		{
			name: "length mismatch",
			last: []Card{{Suit: SuitSpade, Value: Value5}},
			play: []Card{
				{Suit: SuitSpade, Value: Value6},
				{Suit: SuitHeart, Value: Value6},
			},
			expected: false,
		},
		{
			name: "higher pair by value",
			last: []Card{
				{Suit: SuitClub, Value: Value8},
				{Suit: SuitDiamond, Value: Value8},
			},
			play: []Card{
				{Suit: SuitSpade, Value: Value9},
				{Suit: SuitHeart, Value: Value9},
			},
			expected: true,
		},
		{
			name: "equal pair decided by highest suit",
			last: []Card{
				{Suit: SuitSpade, Value: Value8},
				{Suit: SuitClub, Value: Value8},
			},
			play: []Card{
				{Suit: SuitHeart, Value: Value8},
				{Suit: SuitDiamond, Value: Value8},
			},
			expected: true,
		},
		{
			name: "pair must match values",
			last: []Card{
				{Suit: SuitSpade, Value: Value8},
				{Suit: SuitClub, Value: Value8},
			},
			play: []Card{
				{Suit: SuitHeart, Value: Value9},
				{Suit: SuitDiamond, Value: Value10},
			},
			expected: false,
		},
		{
			name: "flush over straight",
			last: []Card{
				{Suit: SuitSpade, Value: Value5},
				{Suit: SuitHeart, Value: Value6},
				{Suit: SuitClub, Value: Value7},
				{Suit: SuitDiamond, Value: Value8},
				{Suit: SuitSpade, Value: Value9},
			},
			play: []Card{
				{Suit: SuitHeart, Value: Value3},
				{Suit: SuitHeart, Value: Value7},
				{Suit: SuitHeart, Value: Value9},
				{Suit: SuitHeart, Value: ValueJack},
				{Suit: SuitHeart, Value: ValueKing},
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidPlay(tt.last, tt.play); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestHandContains(t *testing.T) {
	hand := []Card{
		{Suit: SuitSpade, Value: Value3},
		{Suit: SuitHeart, Value: Value7},
		{Suit: SuitDiamond, Value: Value2},
	}
	if !HandContains(hand, []Card{{Suit: SuitHeart, Value: Value7}}) {
		t.Error("expected card to be found")
	}
	if HandContains(hand, []Card{{Suit: SuitClub, Value: Value7}}) {
		t.Error("wrong suit must not match")
	}
	if HandContains(hand, []Card{
		{Suit: SuitSpade, Value: Value3},
		{Suit: SuitSpade, Value: Value3},
	}) {
		t.Error("a card claimed twice must not match a single copy")
	}
}

func TestRemoveCards(t *testing.T) {
	hand := []Card{
		{Suit: SuitSpade, Value: Value3},
		{Suit: SuitHeart, Value: Value7},
		{Suit: SuitDiamond, Value: Value2},
	}
	got := RemoveCards(hand, []Card{{Suit: SuitHeart, Value: Value7}})
	expected := []Card{
		{Suit: SuitSpade, Value: Value3},
		{Suit: SuitDiamond, Value: Value2},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}
