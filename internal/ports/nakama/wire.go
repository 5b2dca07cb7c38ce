package nakama

import "bigtwo/internal/domain"

// Wire types for the JSON payloads carried over match data. Suits travel as
// single letters, values as rest-order ranks (0 = three .. 12 = two).

type wireCard struct {
	Suit  string `json:"suit"`
	Value int32  `json:"value"`
}

type startGameRequest struct{}

type playCardsRequest struct {
	Cards []wireCard `json:"cards"`
}

type matchSnapshot struct {
	Seats     []string        `json:"seats"`
	OwnerSeat int             `json:"owner_seat"`
	Tick      int64           `json:"tick"`
	Players   []playerSummary `json:"players"`
	Game      *viewerSnapshot `json:"game,omitempty"`
}

type playerSummary struct {
	UserID         string `json:"user_id"`
	Seat           int    `json:"seat"`
	IsOwner        bool   `json:"is_owner"`
	CardsRemaining int    `json:"cards_remaining"`
	DisplayName    string `json:"display_name"`
}

type viewerSnapshot struct {
	CurrentTurn string         `json:"current_turn"`
	LastPlayed  []wireCard     `json:"last_played"`
	Status      string         `json:"status"`
	CardCounts  map[string]int `json:"card_counts"`
	Log         []string       `json:"log"`
}

type gameStartedEvent struct {
	FirstTurnSeat string   `json:"first_turn_seat"`
	Rotation      []string `json:"rotation"`
}

type handDealtEvent struct {
	Seat string     `json:"seat"`
	Hand []wireCard `json:"hand"`
}

type cardPlayedEvent struct {
	Seat         string     `json:"seat"`
	Cards        []wireCard `json:"cards"`
	NextTurnSeat string     `json:"next_turn_seat"`
}

type turnPassedEvent struct {
	Seat         string `json:"seat"`
	NextTurnSeat string `json:"next_turn_seat"`
}

type gameEndedEvent struct {
	WinnerSeat string `json:"winner_seat"`
}

type gameErrorEvent struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

type playerStateEvent struct {
	Seat     string     `json:"seat"`
	YourTurn bool       `json:"your_turn"`
	MustLead bool       `json:"must_lead"`
	Hand     []wireCard `json:"hand"`
}

func cardToWire(c domain.Card) wireCard {
	return wireCard{Suit: suitToWire(c.Suit), Value: int32(c.Value)}
}

func cardsToWire(cards []domain.Card) []wireCard {
	out := make([]wireCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardToWire(c))
	}
	return out
}

func cardsFromWire(cards []wireCard) []domain.Card {
	out := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, domain.Card{
			Suit:  suitFromWire(c.Suit),
			Value: domain.Value(c.Value),
		})
	}
	return out
}

func suitToWire(s domain.Suit) string {
	switch s {
	case domain.SuitSpade:
		return "S"
	case domain.SuitHeart:
		return "H"
	case domain.SuitClub:
		return "C"
	case domain.SuitDiamond:
		return "D"
	default:
		return ""
	}
}

func suitFromWire(s string) domain.Suit {
	switch s {
	case "S":
		return domain.SuitSpade
	case "H":
		return domain.SuitHeart
	case "C":
		return domain.SuitClub
	case "D":
		return domain.SuitDiamond
	default:
		return -1
	}
}
