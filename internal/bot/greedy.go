package bot

import "bigtwo/internal/domain"

// GreedyBrain plays the weakest legal move and passes when it has none.
// LegalMoves enumerates over the rest-order-sorted hand, so the first
// candidate is the cheapest one.
type GreedyBrain struct{}

func (b *GreedyBrain) CalculateMove(game *domain.Game, seat string) (Move, error) {
	moves := LegalMoves(game, seat)
	if len(moves) == 0 {
		return Move{Pass: true}, nil
	}
	return Move{Cards: moves[0]}, nil
}
