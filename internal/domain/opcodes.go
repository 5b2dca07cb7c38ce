package domain

// Opcodes for client -> server actions and server -> client events carried
// over the realtime channel.
const (
	OpCodeStartGame int64 = 1
	OpCodePlayCards int64 = 2
	OpCodePassTurn  int64 = 3
	// OpCodePlayPowerup is reserved; no powerup exists yet.
	OpCodePlayPowerup int64 = 4

	OpCodeMatchSnapshot int64 = 100
	OpCodeGameStarted   int64 = 101
	OpCodeHandDealt     int64 = 102
	OpCodeCardPlayed    int64 = 103
	OpCodeTurnPassed    int64 = 104
	OpCodeGameEnded     int64 = 105
	OpCodeGameError     int64 = 106
	OpCodePlayerState   int64 = 107
)
