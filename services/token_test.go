package services

import (
	"testing"

	"brf/models"
)

func TestTokenRoundTrip(t *testing.T) {
	user := models.User{ID: "demo-user-7", Role: "user"}

	accessToken, refreshToken, err := GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if accessToken == "" || refreshToken == "" || accessToken == refreshToken {
		t.Fatal("expected two distinct non-empty tokens")
	}

	for _, token := range []string{accessToken, refreshToken} {
		id, err := GetUserIDFromToken(token)
		if err != nil {
			t.Fatalf("GetUserIDFromToken: %v", err)
		}
		if id != "demo-user-7" {
			t.Fatalf("got user id %q", id)
		}
	}
}

func TestGetUserIDFromTokenRejectsGarbage(t *testing.T) {
	for _, token := range []string{"", "abc", "a.b", "a.!!!.c"} {
		if _, err := GetUserIDFromToken(token); err == nil {
			t.Fatalf("no error for token %q", token)
		}
	}
}
