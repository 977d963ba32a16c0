package session

import (
	"context"
	"testing"

	"brf/models"
	"brf/store"
)

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	sess := New(st)

	if _, ok := sess.User(ctx); ok {
		t.Fatal("fresh session reported a user")
	}
	if sess.AccessToken(ctx) != "" {
		t.Fatal("fresh session reported a token")
	}

	user := models.User{ID: "demo-user-1", Email: "a@b.c", Password: "hash"}
	sess.SetUserAndTokens(ctx, user, "access", "refresh")

	got, ok := sess.User(ctx)
	if !ok {
		t.Fatal("no user after SetUserAndTokens")
	}
	if got.ID != "demo-user-1" || got.Email != "a@b.c" {
		t.Fatalf("unexpected session user %+v", got)
	}
	if got.Password != "" {
		t.Fatal("password hash leaked into the session user")
	}
	if sess.AccessToken(ctx) != "access" || sess.RefreshToken(ctx) != "refresh" {
		t.Fatal("tokens not stored")
	}
}

func TestSessionSetUserKeepsTokens(t *testing.T) {
	ctx := context.Background()
	sess := New(store.NewMemoryStore())

	sess.SetUserAndTokens(ctx, models.User{ID: "u1"}, "access", "refresh")
	sess.SetUser(ctx, models.User{ID: "u1", FullName: "Renamed"})

	got, _ := sess.User(ctx)
	if got.FullName != "Renamed" {
		t.Fatalf("user not replaced: %+v", got)
	}
	if sess.AccessToken(ctx) != "access" {
		t.Fatal("SetUser dropped the access token")
	}
}

func TestSessionSurvivesReload(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	New(st).SetUserAndTokens(ctx, models.User{ID: "u1"}, "access", "refresh")

	// A new Session over the same store sees the persisted state.
	if _, ok := New(st).User(ctx); !ok {
		t.Fatal("session state did not survive a reload")
	}
}

func TestLogoutClearsAndFiresHook(t *testing.T) {
	ctx := context.Background()
	sess := New(store.NewMemoryStore())
	sess.SetUserAndTokens(ctx, models.User{ID: "u1"}, "access", "refresh")

	fired := false
	sess.OnLogout(func() { fired = true })
	sess.Logout(ctx)

	if _, ok := sess.User(ctx); ok {
		t.Fatal("user still present after logout")
	}
	if sess.AccessToken(ctx) != "" {
		t.Fatal("token still present after logout")
	}
	if !fired {
		t.Fatal("logout hook did not fire")
	}
}
