package nakama

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/form3tech-oss/jwt-go"
	"github.com/heroiclabs/nakama-common/runtime"
)

type channelTokenResponse struct {
	Token   string `json:"token"`
	Channel string `json:"channel"`
}

func TestRpcChannelToken(t *testing.T) {
	ctx := context.WithValue(context.Background(), runtime.RUNTIME_CTX_USER_ID, "user123")
	ctx = context.WithValue(ctx, runtime.RUNTIME_CTX_ENV, map[string]string{
		"bigtwo_token_secret": "test-secret",
		"bigtwo_token_issuer": "issuer",
	})

	raw, err := RpcChannelToken(ctx, noopLogger{}, nil, nil, `{"roomCode":"ROOM42"}`)
	if err != nil {
		t.Fatalf("RpcChannelToken error: %v", err)
	}

	var resp channelTokenResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Channel != "room.ROOM42" {
		t.Errorf("channel = %s, want room.ROOM42", resp.Channel)
	}
	if resp.Token == "" {
		t.Fatal("expected token in response")
	}

	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("parse token error: %v", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		t.Fatal("token claims invalid")
	}
	if claims["sub"] != "user123" {
		t.Errorf("sub = %v, want user123", claims["sub"])
	}
	if claims["chn"] != "room.ROOM42" {
		t.Errorf("chn = %v, want room.ROOM42", claims["chn"])
	}
}

func TestRpcChannelTokenRejectsBadRequests(t *testing.T) {
	ctx := context.WithValue(context.Background(), runtime.RUNTIME_CTX_USER_ID, "user123")

	if _, err := RpcChannelToken(ctx, noopLogger{}, nil, nil, `not-json`); err == nil {
		t.Error("expected an error for malformed payload")
	}
	if _, err := RpcChannelToken(ctx, noopLogger{}, nil, nil, `{}`); err == nil {
		t.Error("expected an error for missing room code")
	}
	if _, err := RpcChannelToken(context.Background(), noopLogger{}, nil, nil, `{"roomCode":"X"}`); err == nil {
		t.Error("expected an error without an authenticated user")
	}
}
