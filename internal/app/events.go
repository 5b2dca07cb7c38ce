package app

import "bigtwo/internal/domain"

// EventKind identifies emitted game events for transport dispatch.
type EventKind string

const (
	EventGameStarted EventKind = "game_started"
	EventHandDealt   EventKind = "hand_dealt"
	EventCardPlayed  EventKind = "card_played"
	EventTurnPassed  EventKind = "turn_passed"
	EventGameEnded   EventKind = "game_ended"
)

// Event is a game event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // seat ids; empty means broadcast
}

type GameStartedPayload struct {
	GameID        string
	FirstTurnSeat string
	Rotation      []string
}

type HandDealtPayload struct {
	Seat string
	Hand []domain.Card
}

type CardPlayedPayload struct {
	Seat         string
	Cards        []domain.Card
	NextTurnSeat string
}

type TurnPassedPayload struct {
	Seat         string
	NextTurnSeat string
}

type GameEndedPayload struct {
	WinnerSeat string
}
