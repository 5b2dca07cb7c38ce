package app

import (
	"errors"
	"math/rand"
	"time"

	"bigtwo/internal/domain"
	"bigtwo/internal/ports"
)

// Rejection reasons reported to the caller. Every one is a deterministic
// validation failure: a rejected action performs no mutation and the caller
// may retry with a corrected action.
var (
	ErrNoCardsSubmitted   = errors.New("no cards in your play")
	ErrCardsNotInHand     = errors.New("you do not hold all of these cards")
	ErrInvalidPlay        = errors.New("not a valid play")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrCannotPassNow      = errors.New("you cannot pass now")
	ErrInvalidPlayerCount = errors.New("invalid number of players")
	ErrGameOver           = errors.New("game is over")
	ErrUnknownSeat        = errors.New("seat not in this game")
	ErrGameNotFound       = errors.New("game not found")
)

// Service contains the Big Two use-cases operating on game state held in an
// injected store.
type Service struct {
	store ports.GameStore
	rng   *rand.Rand
}

// NewService constructs a Service with the given store and rng, or a
// time-seeded default rng when nil.
func NewService(store ports.GameStore, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{store: store, rng: rng}
}

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func (s *Service) newGameID() string {
	id := make([]byte, 8)
	for i := range id {
		id[i] = gameIDAlphabet[s.rng.Intn(len(gameIDAlphabet))]
	}
	return string(id)
}

// CreateGame deals a fresh round for playerCount seats, stores it and
// returns its id. All four seats receive 13 cards each; with fewer than four
// players the seats not named in seatsToKeep are removed and their cards
// stay out of the round. The opening seat is the Diamond 3 holder, or the
// holder of the lowest dealt card on short-handed tables.
func (s *Service) CreateGame(playerCount int, seatsToKeep []string) (string, *domain.Game, []Event, error) {
	if playerCount < 2 || playerCount > 4 {
		return "", nil, nil, ErrInvalidPlayerCount
	}

	deck := domain.NewDeck()
	s.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	game := &domain.Game{
		Status: domain.StatusFirstTurn,
		Hands:  make(map[string][]domain.Card, playerCount),
	}

	keep := make(map[string]bool, len(seatsToKeep))
	for _, seat := range seatsToKeep {
		keep[seat] = true
	}

	dropped := 0
	idx := 0
	for _, seat := range domain.SeatIDs {
		hand := append([]domain.Card{}, deck[idx:idx+13]...)
		idx += 13
		if dropped < 4-playerCount && !keep[seat] {
			dropped++
			continue
		}
		domain.SortForRest(hand)
		game.Hands[seat] = hand
		game.Rotation = append(game.Rotation, seat)
	}
	if len(game.Rotation) != playerCount {
		return "", nil, nil, ErrInvalidPlayerCount
	}

	game.CurrentTurn = domain.FindOpeningSeat(game.Rotation, game.Hands)
	game.Logf("A new game was started")
	game.Logf("%s goes first", game.CurrentTurn)

	id := s.newGameID()
	if err := s.store.Save(id, game); err != nil {
		return "", nil, nil, err
	}

	events := make([]Event, 0, len(game.Rotation)+1)
	for _, seat := range game.Rotation {
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Seat: seat, Hand: game.Hands[seat]},
			Recipients: []string{seat},
		})
	}
	events = append(events, Event{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			GameID:        id,
			FirstTurnSeat: game.CurrentTurn,
			Rotation:      game.Rotation,
		},
	})

	return id, game, events, nil
}

// PlayCards validates and applies a play action for the given seat.
// Validation strictly precedes mutation: on any rejection the game state is
// untouched.
func (s *Service) PlayCards(gameID, seat string, cards []domain.Card) ([]Event, error) {
	game, ok := s.store.Get(gameID)
	if !ok {
		return nil, ErrGameNotFound
	}
	if game.Status == domain.StatusOver {
		return nil, ErrGameOver
	}
	if len(cards) == 0 {
		return nil, ErrNoCardsSubmitted
	}
	hand, ok := game.Hands[seat]
	if !ok {
		return nil, ErrUnknownSeat
	}
	if game.CurrentTurn != seat {
		return nil, ErrNotYourTurn
	}
	if !domain.HandContains(hand, cards) {
		return nil, ErrCardsNotInHand
	}

	// The opening seat, and the owner of an uncontested trick, lead a fresh
	// trick and only need a legal shape; everyone else must beat the table.
	leading := game.Status == domain.StatusFirstTurn ||
		game.LastPlayer == seat ||
		len(game.LastPlayed) == 0
	if leading {
		if !domain.ValidPlay(nil, cards) {
			return nil, ErrInvalidPlay
		}
	} else if !domain.ValidPlay(game.LastPlayed, cards) {
		return nil, ErrInvalidPlay
	}

	game.Status = domain.StatusInProgress
	game.LastPlayed = append([]domain.Card{}, cards...)
	game.LastPlayer = seat
	game.Hands[seat] = domain.RemoveCards(hand, cards)
	game.Logf("%s played %v", seat, cards)

	events := []Event{{
		Kind:    EventCardPlayed,
		Payload: CardPlayedPayload{Seat: seat, Cards: game.LastPlayed},
	}}

	if len(game.Hands[seat]) == 0 {
		game.Status = domain.StatusOver
		game.Logf("Game over, %s won", seat)
		events = append(events, Event{
			Kind:    EventGameEnded,
			Payload: GameEndedPayload{WinnerSeat: seat},
		})
	} else {
		game.CurrentTurn = domain.NextTurnSeat(game)
		payload := events[0].Payload.(CardPlayedPayload)
		payload.NextTurnSeat = game.CurrentTurn
		events[0].Payload = payload
		if game.CurrentTurn == seat {
			game.Logf("%s keeps the turn", seat)
		} else {
			game.Logf("It is now %s's turn", game.CurrentTurn)
		}
	}

	if err := s.store.Save(gameID, game); err != nil {
		return nil, err
	}
	return events, nil
}

// PassTurn validates and applies a pass action for the given seat. Passing
// is never legal on the opening trick, and the owner of the current trick
// cannot pass on their own play.
func (s *Service) PassTurn(gameID, seat string) ([]Event, error) {
	game, ok := s.store.Get(gameID)
	if !ok {
		return nil, ErrGameNotFound
	}
	if game.Status == domain.StatusOver {
		return nil, ErrGameOver
	}
	if _, ok := game.Hands[seat]; !ok {
		return nil, ErrUnknownSeat
	}
	if game.CurrentTurn != seat {
		return nil, ErrNotYourTurn
	}
	if game.Status == domain.StatusFirstTurn {
		return nil, ErrCannotPassNow
	}
	if game.LastPlayer == seat {
		return nil, ErrCannotPassNow
	}

	game.CurrentTurn = domain.NextTurnSeat(game)
	game.Logf("%s passed, it is now %s's turn", seat, game.CurrentTurn)

	if err := s.store.Save(gameID, game); err != nil {
		return nil, err
	}
	return []Event{{
		Kind:    EventTurnPassed,
		Payload: TurnPassedPayload{Seat: seat, NextTurnSeat: game.CurrentTurn},
	}}, nil
}

// Viewer returns the redacted observer projection for a stored game.
func (s *Service) Viewer(gameID string) (domain.ViewerData, error) {
	game, ok := s.store.Get(gameID)
	if !ok {
		return domain.ViewerData{}, ErrGameNotFound
	}
	return game.Viewer(), nil
}

// Player returns the per-seat projection for a stored game.
func (s *Service) Player(gameID, seat string) (domain.PlayerData, error) {
	game, ok := s.store.Get(gameID)
	if !ok {
		return domain.PlayerData{}, ErrGameNotFound
	}
	if _, ok := game.Hands[seat]; !ok {
		return domain.PlayerData{}, ErrUnknownSeat
	}
	return game.Player(seat), nil
}

// Game returns the stored game for read-only inspection by the room layer.
func (s *Service) Game(gameID string) (*domain.Game, bool) {
	return s.store.Get(gameID)
}

// Delete removes a finished game from the store.
func (s *Service) Delete(gameID string) {
	s.store.Delete(gameID)
}
