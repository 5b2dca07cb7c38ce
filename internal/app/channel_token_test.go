package app

import (
	"fmt"
	"testing"

	"github.com/form3tech-oss/jwt-go"
)

func TestGenerateTokenClaims(t *testing.T) {
	svc := NewChannelTokenService("test-secret", "issuer")

	token1, err := svc.GenerateToken("user123", "ROOM42")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	token2, err := svc.GenerateToken("user123", "ROOM42")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims1 := parseChannelClaims(t, token1, "test-secret")
	claims2 := parseChannelClaims(t, token2, "test-secret")

	assertClaim(t, claims1, "iss", "issuer")
	assertClaim(t, claims1, "sub", "user123")
	assertClaim(t, claims1, "chn", "room.ROOM42")

	// jti is a nonce and must differ per token.
	jti1, ok1 := claims1["jti"]
	jti2, ok2 := claims2["jti"]
	if !ok1 || !ok2 {
		t.Fatal("jti claim missing")
	}
	if jti1 == jti2 {
		t.Errorf("jti claim must be unique per token. Got %v for both.", jti1)
	}
}

func TestGenerateTokenRejectsBadInput(t *testing.T) {
	svc := NewChannelTokenService("test-secret", "issuer")

	if _, err := svc.GenerateToken("", "ROOM42"); err == nil {
		t.Error("expected error for empty user id")
	}
	if _, err := svc.GenerateToken("user123", ""); err == nil {
		t.Error("expected error for empty room code")
	}

	incomplete := NewChannelTokenService("", "issuer")
	if _, err := incomplete.GenerateToken("user123", "ROOM42"); err == nil {
		t.Error("expected error for missing secret")
	}
}

func TestChannelName(t *testing.T) {
	svc := NewChannelTokenService("s", "i")
	if got := svc.ChannelName("AB12"); got != "room.AB12" {
		t.Errorf("expected room.AB12, got %s", got)
	}
}

func parseChannelClaims(t *testing.T, tokenString, secret string) jwt.MapClaims {
	t.Helper()

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		t.Fatalf("parse token error: %v", err)
	}
	if !token.Valid {
		t.Fatal("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not map claims")
	}
	return claims
}

func assertClaim(t *testing.T, claims jwt.MapClaims, key, expected string) {
	t.Helper()
	val, ok := claims[key]
	if !ok {
		t.Errorf("missing claim: %s", key)
		return
	}
	str, ok := val.(string)
	if !ok {
		t.Errorf("claim %s is not a string: %v", key, val)
		return
	}
	if str != expected {
		t.Errorf("claim %s = %s, want %s", key, str, expected)
	}
}
