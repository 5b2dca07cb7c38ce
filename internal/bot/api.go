package bot

import "bigtwo/internal/domain"

// Move represents the decision made by the autoplayer.
type Move struct {
	Pass  bool
	Cards []domain.Card
}

// Brain is the interface bot strategies implement.
type Brain interface {
	CalculateMove(game *domain.Game, seat string) (Move, error)
}
