package bot

import (
	"testing"

	"bigtwo/internal/domain"
)

func TestLegalMovesResponding(t *testing.T) {
	game := &domain.Game{
		Status:      domain.StatusInProgress,
		CurrentTurn: "seat-2",
		LastPlayer:  "seat-1",
		Rotation:    []string{"seat-1", "seat-2"},
		LastPlayed:  []domain.Card{{Suit: domain.SuitDiamond, Value: domain.Value9}},
		Hands: map[string][]domain.Card{
			"seat-2": {
				{Suit: domain.SuitSpade, Value: domain.Value5},
				{Suit: domain.SuitHeart, Value: domain.Value10},
				{Suit: domain.SuitClub, Value: domain.ValueAce},
			},
		},
	}

	moves := LegalMoves(game, "seat-2")
	if len(moves) != 2 {
		t.Fatalf("expected 2 legal singles, got %d: %v", len(moves), moves)
	}
	// Weakest candidate first.
	if moves[0][0].Value != domain.Value10 {
		t.Errorf("expected the 10 first, got %v", moves[0])
	}
	if moves[1][0].Value != domain.ValueAce {
		t.Errorf("expected the ace second, got %v", moves[1])
	}
}

func TestLegalMovesNoAnswer(t *testing.T) {
	game := &domain.Game{
		Status:      domain.StatusInProgress,
		CurrentTurn: "seat-2",
		LastPlayer:  "seat-1",
		Rotation:    []string{"seat-1", "seat-2"},
		LastPlayed: []domain.Card{
			{Suit: domain.SuitSpade, Value: domain.Value2},
			{Suit: domain.SuitHeart, Value: domain.Value2},
		},
		Hands: map[string][]domain.Card{
			"seat-2": {
				{Suit: domain.SuitSpade, Value: domain.Value5},
				{Suit: domain.SuitHeart, Value: domain.Value6},
				{Suit: domain.SuitClub, Value: domain.Value7},
			},
		},
	}

	if moves := LegalMoves(game, "seat-2"); len(moves) != 0 {
		t.Fatalf("expected no legal moves against a pair of 2s, got %v", moves)
	}
}

func TestLegalMovesLeading(t *testing.T) {
	game := &domain.Game{
		Status:      domain.StatusInProgress,
		CurrentTurn: "seat-1",
		LastPlayer:  "seat-1",
		Rotation:    []string{"seat-1", "seat-2"},
		LastPlayed:  []domain.Card{{Suit: domain.SuitSpade, Value: domain.Value4}},
		Hands: map[string][]domain.Card{
			"seat-1": {
				{Suit: domain.SuitSpade, Value: domain.Value8},
				{Suit: domain.SuitHeart, Value: domain.Value8},
				{Suit: domain.SuitClub, Value: domain.Value8},
			},
		},
	}

	moves := LegalMoves(game, "seat-1")
	// 3 singles, 3 pairs, 1 triple.
	if len(moves) != 7 {
		t.Fatalf("expected 7 legal moves, got %d: %v", len(moves), moves)
	}
	sizes := map[int]int{}
	for _, m := range moves {
		sizes[len(m)]++
	}
	if sizes[1] != 3 || sizes[2] != 3 || sizes[3] != 1 {
		t.Errorf("unexpected move shape counts: %v", sizes)
	}
}

func TestGreedyBrainPassesWithoutMoves(t *testing.T) {
	game := &domain.Game{
		Status:      domain.StatusInProgress,
		CurrentTurn: "seat-2",
		LastPlayer:  "seat-1",
		Rotation:    []string{"seat-1", "seat-2"},
		LastPlayed:  []domain.Card{{Suit: domain.SuitDiamond, Value: domain.Value2}},
		Hands: map[string][]domain.Card{
			"seat-2": {{Suit: domain.SuitSpade, Value: domain.Value3}},
		},
	}

	brain := &GreedyBrain{}
	move, err := brain.CalculateMove(game, "seat-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !move.Pass {
		t.Errorf("expected a pass, got %v", move.Cards)
	}
}

func TestGreedyBrainPlaysWeakestMove(t *testing.T) {
	game := &domain.Game{
		Status:      domain.StatusFirstTurn,
		CurrentTurn: "seat-1",
		Rotation:    []string{"seat-1", "seat-2"},
		Hands: map[string][]domain.Card{
			"seat-1": {
				{Suit: domain.SuitDiamond, Value: domain.Value3},
				{Suit: domain.SuitHeart, Value: domain.ValueKing},
			},
		},
	}

	brain := &GreedyBrain{}
	move, err := brain.CalculateMove(game, "seat-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if move.Pass {
		t.Fatal("expected a play")
	}
	if len(move.Cards) != 1 || move.Cards[0].Value != domain.Value3 {
		t.Errorf("expected the diamond 3, got %v", move.Cards)
	}
}

func TestNewAgent(t *testing.T) {
	agent, err := NewAgent("bot-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if agent.ID != "bot-1" {
		t.Errorf("expected bot-1, got %s", agent.ID)
	}
	if agent.Strategy == nil {
		t.Error("expected a strategy")
	}

	if _, err := NewAgent("user-1"); err == nil {
		t.Error("expected an error for a non-bot id")
	}
}

func TestIsBot(t *testing.T) {
	if !IsBot("bot-1") {
		t.Error("bot-1 is a bot")
	}
	if IsBot("user-1") {
		t.Error("user-1 is not a bot")
	}
	if IsBot("") {
		t.Error("empty id is not a bot")
	}
}
