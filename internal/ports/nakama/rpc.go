package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"
)

// FindMatchResponse is the payload returned to clients requesting a room.
type FindMatchResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// RpcFindMatch searches for a room with open seats. If one exists its ID is
// returned; otherwise a new room is created.
func RpcFindMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	limit := 1
	authoritative := true
	labelQuery := fmt.Sprintf("+label.%s:>=1 +label.game:%s", MatchLabelKey_OpenSeats, MatchNameBigTwo)
	minSize := 0
	maxSize := 4

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, labelQuery)
	if err != nil {
		logger.Error("RpcFindMatch [User:%s]: Failed to list matches: %v", userID, err)
		return "", runtime.NewError("failed to list matches", 13) // INTERNAL
	}

	if len(matches) > 0 {
		matchID := matches[0].MatchId
		logger.Info("RpcFindMatch [User:%s]: Found existing match %s", userID, matchID)
		return marshalFindMatch(FindMatchResponse{MatchID: matchID, IsNew: false})
	}

	matchID, err := nk.MatchCreate(ctx, MatchNameBigTwo, nil)
	if err != nil {
		logger.Error("RpcFindMatch [User:%s]: Failed to create match: %v", userID, err)
		return "", runtime.NewError("failed to create match", 13)
	}

	logger.Info("RpcFindMatch [User:%s]: Created new match %s", userID, matchID)
	return marshalFindMatch(FindMatchResponse{MatchID: matchID, IsNew: true})
}

func marshalFindMatch(res FindMatchResponse) (string, error) {
	bytes, err := json.Marshal(res)
	if err != nil {
		return "", runtime.NewError("failed to marshal response", 13)
	}
	return string(bytes), nil
}
