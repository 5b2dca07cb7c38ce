package app

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

// ChannelTokenService issues the signed tokens clients present when
// subscribing to a room's realtime channel.
type ChannelTokenService struct {
	secret string
	issuer string
}

const channelTokenTTL = time.Hour

// NewChannelTokenService constructs a token service for the given signing
// secret and issuer name.
func NewChannelTokenService(secret, issuer string) *ChannelTokenService {
	return &ChannelTokenService{secret: secret, issuer: issuer}
}

// GenerateToken returns an HS256 token binding the user to one room channel.
func (s *ChannelTokenService) GenerateToken(userID, roomCode string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("channel token service is nil")
	}
	if userID == "" {
		return "", fmt.Errorf("user id is required")
	}
	if roomCode == "" {
		return "", fmt.Errorf("room code is required")
	}
	if s.secret == "" || s.issuer == "" {
		return "", fmt.Errorf("channel token config is incomplete")
	}

	claims := jwt.MapClaims{
		"iss": s.issuer,
		"sub": userID,
		"exp": time.Now().Add(channelTokenTTL).Unix(),
		"chn": s.ChannelName(roomCode),
		"jti": fmt.Sprintf("%d-%d", time.Now().UnixNano(), rand.Int63()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// ChannelName returns the realtime channel a room broadcasts on.
func (s *ChannelTokenService) ChannelName(roomCode string) string {
	return "room." + roomCode
}
