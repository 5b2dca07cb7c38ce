package ports

import "bigtwo/internal/domain"

// GameStore is the repository for live game instances. The rules engine
// itself never touches a registry; the store is injected into the room
// layer, which keys games by the id returned at creation.
type GameStore interface {
	// Save stores or replaces the game under the given id.
	Save(id string, game *domain.Game) error

	// Get returns the stored game, or false when the id is unknown.
	Get(id string) (*domain.Game, bool)

	// Delete removes the game. Deleting an unknown id is a no-op.
	Delete(id string)
}
