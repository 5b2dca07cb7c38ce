package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

const botIDPrefix = "bot-"

// Identity describes one bot profile.
type Identity struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarIndex int    `json:"avatar_index"`
}

var defaultIdentities = []Identity{
	{UserID: "bot-1", Username: "bot_linh", DisplayName: "Linh", AvatarIndex: 1},
	{UserID: "bot-2", Username: "bot_minh", DisplayName: "Minh", AvatarIndex: 2},
	{UserID: "bot-3", Username: "bot_thao", DisplayName: "Thao", AvatarIndex: 3},
	{UserID: "bot-4", Username: "bot_quan", DisplayName: "Quan", AvatarIndex: 4},
}

var (
	identities = defaultIdentities
	loadOnce   sync.Once
	loadErr    error
)

// LoadIdentities optionally replaces the built-in bot profiles from a JSON
// file. Missing files are not an error; the defaults stay in place.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return
			}
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}

		var loaded []Identity
		if err := json.Unmarshal(data, &loaded); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			return
		}
		if len(loaded) > 0 {
			identities = loaded
		}
	})
	return loadErr
}

// IsBot reports whether the given user id represents a bot seat.
func IsBot(userID string) bool {
	return strings.HasPrefix(userID, botIDPrefix)
}

// GetIdentity returns a bot profile for the given seat index.
func GetIdentity(seatIndex int) Identity {
	return identities[seatIndex%len(identities)]
}

// Username returns the bot username for a bot user id, or "" for non-bots.
func Username(userID string) string {
	for _, id := range identities {
		if id.UserID == userID {
			return id.Username
		}
	}
	return ""
}
