package domain

import "fmt"

// Status represents the lifecycle stage of a single round.
type Status string

const (
	// StatusFirstTurn is the initial state: the opening seat must play and
	// may not pass.
	StatusFirstTurn Status = "first-turn"
	// StatusInProgress is the normal play state.
	StatusInProgress Status = "in-progress"
	// StatusOver is terminal: one seat emptied its hand. A new Game must be
	// created for the next round.
	StatusOver Status = "over"
)

// SeatIDs are the four fixed seat identifiers of a table.
var SeatIDs = [4]string{"seat-1", "seat-2", "seat-3", "seat-4"}

// Game holds the authoritative state of one Big Two round. It is a plain
// state value: all mutation goes through the app service, and callers must
// serialize actions against the same instance.
type Game struct {
	Status      Status
	CurrentTurn string
	Rotation    []string // seat ids in deal order, fixed for the round
	LastPlayed  []Card
	LastPlayer  string
	Hands       map[string][]Card
	Log         []string
}

func (g *Game) seatIndex(seat string) int {
	for i, s := range g.Rotation {
		if s == seat {
			return i
		}
	}
	return -1
}

// nextSeat returns the seat after the given one in the fixed rotation.
func (g *Game) nextSeat(seat string) string {
	i := g.seatIndex(seat)
	if i < 0 {
		return seat
	}
	return g.Rotation[(i+1)%len(g.Rotation)]
}

// NextTurnSeat computes the seat that acts after the current one, honoring
// the fast-forward rules:
//   - a single Spade 2 on the table keeps the turn with its player, since no
//     card can beat it;
//   - after a multi-card play, seats whose hands are shorter than the play
//     cannot match its length and are skipped; if the scan comes back around
//     to the play's owner, the trick is uncontested and the owner leads
//     again;
//   - after a single-card play the turn simply advances.
//
// The function is pure: it never mutates the game.
func NextTurnSeat(g *Game) string {
	if len(g.LastPlayed) == 1 && g.LastPlayed[0] == BigTwoCard {
		return g.CurrentTurn
	}

	next := g.nextSeat(g.CurrentTurn)
	if len(g.LastPlayed) > 1 {
		for len(g.Hands[next]) < len(g.LastPlayed) {
			if next == g.LastPlayer {
				return g.LastPlayer
			}
			next = g.nextSeat(next)
		}
	}
	return next
}

// FindOpeningSeat returns the seat that must make the opening play: the
// holder of the Diamond 3, or if that card was not dealt in (short-handed
// tables) the holder of the lowest dealt card.
func FindOpeningSeat(rotation []string, hands map[string][]Card) string {
	diamond3 := Card{Suit: SuitDiamond, Value: Value3}
	lowestSeat := ""
	var lowest Card
	for _, seat := range rotation {
		for _, c := range hands[seat] {
			if c == diamond3 {
				return seat
			}
			if lowestSeat == "" || lowerCard(c, lowest) {
				lowest = c
				lowestSeat = seat
			}
		}
	}
	return lowestSeat
}

func lowerCard(a, b Card) bool {
	if a.Value != b.Value {
		return a.Value < b.Value
	}
	return a.Suit < b.Suit
}

// ViewerData is a redacted projection safe for every observer: it exposes
// hand sizes, never hand contents.
type ViewerData struct {
	CurrentTurn string         `json:"current_turn"`
	LastPlayed  []Card         `json:"last_played"`
	Status      Status         `json:"status"`
	CardCounts  map[string]int `json:"card_counts"`
	Log         []string       `json:"log"`
}

// PlayerData is the per-seat projection exposing only that seat's own hand.
type PlayerData struct {
	YourTurn bool   `json:"your_turn"`
	MustLead bool   `json:"must_lead"`
	Hand     []Card `json:"hand"`
}

// Viewer returns the observer projection of the game.
func (g *Game) Viewer() ViewerData {
	counts := make(map[string]int, len(g.Hands))
	for seat, hand := range g.Hands {
		counts[seat] = len(hand)
	}
	return ViewerData{
		CurrentTurn: g.CurrentTurn,
		LastPlayed:  g.LastPlayed,
		Status:      g.Status,
		CardCounts:  counts,
		Log:         g.Log,
	}
}

// Player returns the projection for one seat.
func (g *Game) Player(seat string) PlayerData {
	return PlayerData{
		YourTurn: g.CurrentTurn == seat,
		MustLead: g.LastPlayer == seat || g.Status == StatusFirstTurn,
		Hand:     g.Hands[seat],
	}
}

// Logf appends a formatted line to the game log.
func (g *Game) Logf(format string, args ...interface{}) {
	g.Log = append(g.Log, fmt.Sprintf(format, args...))
}
