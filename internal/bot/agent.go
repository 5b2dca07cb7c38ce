package bot

import (
	"fmt"

	"bigtwo/internal/domain"
)

// Agent represents an autonomous player occupying a seat.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// NewAgent creates an agent for the given bot user id.
func NewAgent(userID string) (*Agent, error) {
	if !IsBot(userID) {
		return nil, fmt.Errorf("not a bot user id: %s", userID)
	}
	return &Agent{
		ID:       userID,
		Name:     Username(userID),
		Strategy: &GreedyBrain{},
	}, nil
}

// Play asks the agent for its move at the given seat.
func (a *Agent) Play(game *domain.Game, seat string) (Move, error) {
	if _, ok := game.Hands[seat]; !ok {
		return Move{Pass: true}, nil
	}
	move, err := a.Strategy.CalculateMove(game, seat)
	if err != nil {
		return Move{Pass: true}, err
	}
	return move, nil
}
