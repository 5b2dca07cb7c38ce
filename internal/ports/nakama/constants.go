package nakama

const (
	// MatchNameBigTwo is the authoritative match handler name registered
	// with the runtime. One match is one room.
	MatchNameBigTwo = "bigtwo"

	// MatchLabelKey_OpenSeats is the key for open seats in the match label.
	MatchLabelKey_OpenSeats = "open"
)
