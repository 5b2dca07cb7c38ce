package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"bigtwo/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

// RpcChannelToken issues a signed channel token for the calling user.
// Payload: {"roomCode": "..."}
func RpcChannelToken(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("user id missing from context", 16) // UNAUTHENTICATED
	}

	var req struct {
		RoomCode string `json:"roomCode"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("invalid payload", 3) // INVALID_ARGUMENT
	}
	if req.RoomCode == "" {
		return "", runtime.NewError("roomCode required", 3)
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	secret := env["bigtwo_token_secret"]
	issuer := env["bigtwo_token_issuer"]
	if secret == "" || issuer == "" {
		secret = "test-secret"
		issuer = "test-issuer"
		logger.Warn("Channel token credentials missing from env, using test defaults.")
	}

	svc := app.NewChannelTokenService(secret, issuer)
	token, err := svc.GenerateToken(userID, req.RoomCode)
	if err != nil {
		logger.Error("Failed to generate channel token: %v", err)
		return "", runtime.NewError("internal error", 13) // INTERNAL
	}

	res := map[string]string{
		"token":   token,
		"channel": svc.ChannelName(req.RoomCode),
	}
	resBytes, _ := json.Marshal(res)
	return string(resBytes), nil
}
