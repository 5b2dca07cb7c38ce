package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	"bigtwo/internal/app"
	"bigtwo/internal/bot"
	"bigtwo/internal/config"
	"bigtwo/internal/domain"
	"bigtwo/internal/ports/memory"

	"github.com/heroiclabs/nakama-common/runtime"
)

// MatchState holds the authoritative runtime state for one room.
type MatchState struct {
	Seats     [4]string `json:"seats"`      // user IDs, empty string means seat is empty
	OwnerSeat int       `json:"owner_seat"` // seat index of the room owner
	Tick      int64     `json:"tick"`

	Presences map[string]runtime.Presence `json:"-"`
	App       *app.Service                `json:"-"`
	GameID    string                      `json:"game_id"` // empty while in lobby

	BotsEnabled          bool                  `json:"bots_enabled"`
	BotMinDelay          int                   `json:"bot_min_delay"`
	BotMaxDelay          int                   `json:"bot_max_delay"`
	BotAutoFillDelay     int                   `json:"bot_auto_fill_delay"`
	BotWaitUntil         int64                 `json:"bot_wait_until"`
	LastSinglePlayerTick int64                 `json:"last_single_player_tick"`
	Bots                 map[string]*bot.Agent `json:"-"`
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetOccupiedSeatCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !bot.IsBot(seat) {
			count++
		}
	}
	return count
}

// seatIndexOfUser returns the seat index occupied by the user, or -1.
func seatIndexOfUser(seats []string, userID string) int {
	for i, id := range seats {
		if id == userID && id != "" {
			return i
		}
	}
	return -1
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userID := seats[seatIndex]
	return userID != "" && !bot.IsBot(userID)
}

// findFirstHumanSeat returns the first seat index with a human occupant or
// -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userID := range seats {
		if userID != "" && !bot.IsBot(userID) {
			return i
		}
	}
	return -1
}

// shouldTerminateNoHumans returns true when there are no humans in the room.
func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing room.")

	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}

	gameCfg := config.GetGameConfig()
	state := &MatchState{
		Tick:             time.Now().Unix(),
		Presences:        make(map[string]runtime.Presence),
		App:              app.NewService(memory.NewStore(), nil),
		OwnerSeat:        -1,
		BotMinDelay:      gameCfg.BotMinDelaySeconds,
		BotMaxDelay:      gameCfg.BotMaxDelaySeconds,
		BotAutoFillDelay: gameCfg.BotAutoFillDelaySeconds,
		Bots:             make(map[string]*bot.Agent),
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["bigtwo_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["bigtwo_bot_min_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMinDelay = i
		}
	}
	if val, ok := env["bigtwo_bot_max_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMaxDelay = i
		}
	}
	if val, ok := env["bigtwo_bot_auto_fill_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotAutoFillDelay = i
		}
	}

	if state.BotMinDelay == 0 {
		state.BotMinDelay = 1
	}
	if state.BotMaxDelay == 0 {
		state.BotMaxDelay = 3
	}
	if state.BotAutoFillDelay == 0 {
		state.BotAutoFillDelay = 5
	}

	labelBytes, err := json.Marshal(labelFor(state))
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Allow join if there is an empty seat OR a bot to replace before the
	// game has started.
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		if matchState.GameID == "" {
			for _, seat := range matchState.Seats {
				if bot.IsBot(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "Room full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		assigned := false
		for i, seatUserID := range matchState.Seats {
			if seatUserID == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}

		if !assigned && matchState.GameID == "" {
			for i, seatUserID := range matchState.Seats {
				if bot.IsBot(seatUserID) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserID, p.GetUserId(), i)
					delete(matchState.Bots, seatUserID)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}

		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat was available.", p.GetUserId())
		}
	}

	// The owner seat always belongs to a human player.
	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSnapshot(matchState, dispatcher, logger)

	return matchState
}

// MatchLeave is called when one or more players leave the room.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		for i, seatUserID := range matchState.Seats {
			if seatUserID == p.GetUserId() {
				matchState.Seats[i] = ""
				logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), i)
				break
			}
		}
	}

	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
	}

	if shouldTerminateNoHumans(matchState.Seats[:]) {
		logger.Info("MatchLeave: Terminating room with no humans.")
		if matchState.GameID != "" {
			matchState.App.Delete(matchState.GameID)
		}
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSnapshot(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case domain.OpCodeStartGame:
			mh.handleStartGame(matchState, dispatcher, logger, msg)
		case domain.OpCodePlayCards:
			mh.handlePlayCards(matchState, dispatcher, logger, msg)
		case domain.OpCodePassTurn:
			mh.handlePassTurn(matchState, dispatcher, logger, msg)
		case domain.OpCodePlayPowerup:
			mh.sendError(matchState, dispatcher, logger, msg.GetUserId(), 501, "powerups are not implemented")
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(matchState, dispatcher, logger)
	}

	return matchState
}

func (mh *matchHandler) handleStartGame(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := seatIndexOfUser(state.Seats[:], senderID)

	logger.Info("StartGame: Request from %s (seat=%d, owner_seat=%d, occupied=%d)", senderID, senderSeat, state.OwnerSeat, state.GetOccupiedSeatCount())

	// Validate the payload even though it is currently empty; this catches
	// client mismatches early.
	var request startGameRequest
	if len(msg.GetData()) > 0 {
		if err := json.Unmarshal(msg.GetData(), &request); err != nil {
			logger.Warn("StartGame: Invalid request from %s: %v", senderID, err)
			return
		}
	}

	if senderSeat != state.OwnerSeat {
		logger.Warn("StartGame: User %s tried to start game but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		return
	}

	if state.GameID != "" {
		logger.Warn("StartGame: Game already in progress.")
		return
	}

	seatsToKeep := make([]string, 0, 4)
	for i, userID := range state.Seats {
		if userID != "" {
			seatsToKeep = append(seatsToKeep, domain.SeatIDs[i])
		}
	}

	gameID, _, events, err := state.App.CreateGame(len(seatsToKeep), seatsToKeep)
	if err != nil {
		logger.Error("StartGame: Failed to start game: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	state.GameID = gameID
	mh.updateLabel(state, dispatcher, logger)

	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
	mh.broadcastSnapshot(state, dispatcher, logger)

	logger.Info("StartGame: Game %s started with %d players.", gameID, len(seatsToKeep))
}

func (mh *matchHandler) handlePlayCards(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := seatIndexOfUser(state.Seats[:], senderID)

	if state.GameID == "" || senderSeat < 0 {
		logger.Warn("handlePlayCards: No active game or unseated sender %s.", senderID)
		return
	}

	var request playCardsRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Error("handlePlayCards: Failed to unmarshal request: %v", err)
		return
	}

	cards := cardsFromWire(request.Cards)
	events, err := state.App.PlayCards(state.GameID, domain.SeatIDs[senderSeat], cards)
	if err != nil {
		logger.Warn("handlePlayCards: User %s (seat %d) rejected: %v. Requested: %+v", senderID, senderSeat, err, cards)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	mh.afterAction(state, dispatcher, logger, events)
}

func (mh *matchHandler) handlePassTurn(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := seatIndexOfUser(state.Seats[:], senderID)

	if state.GameID == "" || senderSeat < 0 {
		logger.Warn("handlePassTurn: No active game or unseated sender %s.", senderID)
		return
	}

	events, err := state.App.PassTurn(state.GameID, domain.SeatIDs[senderSeat])
	if err != nil {
		logger.Warn("handlePassTurn: User %s (seat %d) rejected: %v", senderID, senderSeat, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	mh.afterAction(state, dispatcher, logger, events)
}

// afterAction broadcasts the committed transition: the resulting events,
// fresh per-seat projections and the redacted room snapshot. State is read
// only after the mutation completed.
func (mh *matchHandler) afterAction(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	gameOver := false
	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
		if ev.Kind == app.EventGameEnded {
			gameOver = true
		}
	}

	mh.sendPlayerStates(state, dispatcher, logger)
	mh.broadcastSnapshot(state, dispatcher, logger)

	if gameOver {
		state.App.Delete(state.GameID)
		state.GameID = ""
		mh.updateLabel(state, dispatcher, logger)
	}
}

func (mh *matchHandler) processBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// Auto-fill the lobby with bots when a single human has waited alone.
	if state.GameID == "" {
		humanCount := state.GetHumanPlayerCount()
		if humanCount == 1 {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
				logger.Debug("processBots: Single player detected, starting auto-fill timer.")
			}

			if state.Tick-state.LastSinglePlayerTick >= int64(state.BotAutoFillDelay) {
				added := false
				for i, seat := range state.Seats {
					if seat == "" {
						identity := bot.GetIdentity(i)
						agent, err := bot.NewAgent(identity.UserID)
						if err != nil {
							logger.Error("processBots: Failed to create bot agent for %s: %v", identity.UserID, err)
							continue
						}
						state.Seats[i] = identity.UserID
						state.Bots[identity.UserID] = agent
						logger.Info("processBots: Added bot %s (%s) to seat %d", identity.Username, identity.UserID, i)
						added = true
					}
				}
				if added {
					mh.updateLabel(state, dispatcher, logger)
					mh.broadcastSnapshot(state, dispatcher, logger)
				}
				state.LastSinglePlayerTick = 0
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
		return
	}

	// Play bot turns in-game after a humanizing delay.
	game, ok := state.App.Game(state.GameID)
	if !ok || game.Status == domain.StatusOver {
		return
	}

	currentSeat := seatIndexOfDomainSeat(game.CurrentTurn)
	if currentSeat < 0 {
		return
	}
	currentUserID := state.Seats[currentSeat]
	if !bot.IsBot(currentUserID) {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := rand.Intn(state.BotMaxDelay-state.BotMinDelay+1) + state.BotMinDelay
		state.BotWaitUntil = state.Tick + int64(delay)
		logger.Debug("processBots: Bot %s (seat %d) will act at tick %d", currentUserID, currentSeat, state.BotWaitUntil)
		return
	}

	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	agent, exists := state.Bots[currentUserID]
	if !exists {
		var err error
		agent, err = bot.NewAgent(currentUserID)
		if err != nil {
			logger.Error("processBots: Failed to create fallback agent: %v", err)
			return
		}
		state.Bots[currentUserID] = agent
	}

	move, err := agent.Play(game, game.CurrentTurn)
	if err != nil {
		logger.Error("processBots: Bot %s failed to calculate move: %v", currentUserID, err)
		return
	}

	var events []app.Event
	if move.Pass {
		events, err = state.App.PassTurn(state.GameID, game.CurrentTurn)
	} else {
		events, err = state.App.PlayCards(state.GameID, game.CurrentTurn, move.Cards)
	}
	if err != nil {
		logger.Error("processBots: Bot %s action rejected: %v", currentUserID, err)
		return
	}
	mh.afterAction(state, dispatcher, logger, events)
}

// seatIndexOfDomainSeat maps a domain seat id back onto its seat index.
func seatIndexOfDomainSeat(seatID string) int {
	for i, id := range domain.SeatIDs {
		if id == seatID {
			return i
		}
	}
	return -1
}

// broadcastEvent converts an app event to its wire form and dispatches it.
func (mh *matchHandler) broadcastEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var opCode int64
	var payload any

	switch ev.Kind {
	case app.EventGameStarted:
		opCode = domain.OpCodeGameStarted
		p := ev.Payload.(app.GameStartedPayload)
		logger.Debug("Event: game_started (firstTurnSeat=%s)", p.FirstTurnSeat)
		payload = gameStartedEvent{FirstTurnSeat: p.FirstTurnSeat, Rotation: p.Rotation}
	case app.EventHandDealt:
		opCode = domain.OpCodeHandDealt
		p := ev.Payload.(app.HandDealtPayload)
		payload = handDealtEvent{Seat: p.Seat, Hand: cardsToWire(p.Hand)}
	case app.EventCardPlayed:
		opCode = domain.OpCodeCardPlayed
		p := ev.Payload.(app.CardPlayedPayload)
		payload = cardPlayedEvent{Seat: p.Seat, Cards: cardsToWire(p.Cards), NextTurnSeat: p.NextTurnSeat}
	case app.EventTurnPassed:
		opCode = domain.OpCodeTurnPassed
		p := ev.Payload.(app.TurnPassedPayload)
		payload = turnPassedEvent{Seat: p.Seat, NextTurnSeat: p.NextTurnSeat}
	case app.EventGameEnded:
		opCode = domain.OpCodeGameEnded
		p := ev.Payload.(app.GameEndedPayload)
		payload = gameEndedEvent{WinnerSeat: p.WinnerSeat}
	default:
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	bytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	// Targeted events name seats; resolve them to connected presences. If
	// every intended recipient is a bot or disconnected we must not fall
	// back to broadcasting.
	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, seatID := range ev.Recipients {
			idx := seatIndexOfDomainSeat(seatID)
			if idx < 0 {
				continue
			}
			if p, ok := state.Presences[state.Seats[idx]]; ok {
				recipients = append(recipients, p)
			}
		}
		if len(recipients) == 0 {
			return
		}
	}

	dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)
}

// sendPlayerStates sends each seated human its private projection.
func (mh *matchHandler) sendPlayerStates(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.GameID == "" {
		return
	}
	for i, userID := range state.Seats {
		if userID == "" || bot.IsBot(userID) {
			continue
		}
		presence, ok := state.Presences[userID]
		if !ok {
			continue
		}
		data, err := state.App.Player(state.GameID, domain.SeatIDs[i])
		if err != nil {
			continue
		}
		payload := playerStateEvent{
			Seat:     domain.SeatIDs[i],
			YourTurn: data.YourTurn,
			MustLead: data.MustLead,
			Hand:     cardsToWire(data.Hand),
		}
		bytes, err := json.Marshal(payload)
		if err != nil {
			logger.Error("Failed to marshal player state: %v", err)
			continue
		}
		dispatcher.BroadcastMessage(domain.OpCodePlayerState, bytes, []runtime.Presence{presence}, nil, true)
	}
}

// broadcastSnapshot sends the redacted room snapshot to everyone.
func (mh *matchHandler) broadcastSnapshot(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	var players []playerSummary
	for i, userID := range state.Seats {
		if userID == "" {
			continue
		}

		displayName := userID
		if p, exists := state.Presences[userID]; exists {
			displayName = p.GetUsername()
		} else if name := bot.Username(userID); name != "" {
			displayName = name
		}

		cardsRemaining := 0
		if state.GameID != "" {
			if game, ok := state.App.Game(state.GameID); ok {
				cardsRemaining = len(game.Hands[domain.SeatIDs[i]])
			}
		}

		players = append(players, playerSummary{
			UserID:         userID,
			Seat:           i,
			IsOwner:        i == state.OwnerSeat,
			CardsRemaining: cardsRemaining,
			DisplayName:    displayName,
		})
	}

	snapshot := matchSnapshot{
		Seats:     state.Seats[:],
		OwnerSeat: state.OwnerSeat,
		Tick:      state.Tick,
		Players:   players,
	}
	if state.GameID != "" {
		if viewer, err := state.App.Viewer(state.GameID); err == nil {
			snapshot.Game = &viewerSnapshot{
				CurrentTurn: viewer.CurrentTurn,
				LastPlayed:  cardsToWire(viewer.LastPlayed),
				Status:      string(viewer.Status),
				CardCounts:  viewer.CardCounts,
				Log:         viewer.Log,
			}
		}
	}

	bytes, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("Failed to marshal snapshot: %v", err)
		return
	}
	dispatcher.BroadcastMessage(domain.OpCodeMatchSnapshot, bytes, nil, nil, true)
}

// sendError sends a gameErrorEvent to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int32, message string) {
	payload := gameErrorEvent{Code: code, Message: message}
	bytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal gameErrorEvent: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	dispatcher.BroadcastMessage(domain.OpCodeGameError, bytes, []runtime.Presence{presence}, nil, true)
}

type matchLabel struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	State string `json:"state"`
}

func labelFor(state *MatchState) matchLabel {
	roomState := "lobby"
	if state.GameID != "" {
		roomState = "playing"
	}
	return matchLabel{
		Open:  state.GetOpenSeatsCount(),
		Game:  MatchNameBigTwo,
		State: roomState,
	}
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	labelBytes, err := json.Marshal(labelFor(state))
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Room terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
