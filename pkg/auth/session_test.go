package auth

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestSessionRoundTrip(t *testing.T) {
	store, err := NewJWTSessionStore("test-secret", time.Hour, NewMemoryTokenRevoker())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	token, err := store.NewSession("user-1")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	userID, ok, err := store.GetUserIDByToken(token)
	if err != nil || !ok {
		t.Fatalf("validate: ok=%v err=%v", ok, err)
	}
	if userID != "user-1" {
		t.Fatalf("expected user-1, got %s", userID)
	}
}

func TestSessionRequiresSecret(t *testing.T) {
	if _, err := NewJWTSessionStore("   ", time.Hour, nil); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestDeleteSessionRevokesToken(t *testing.T) {
	store, err := NewJWTSessionStore("test-secret", time.Hour, NewMemoryTokenRevoker())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	token, err := store.NewSession("user-1")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := store.DeleteSession(token); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, _, err := store.GetUserIDByToken(token); err == nil {
		t.Fatalf("expected revoked token to be rejected")
	}
}

func TestLogoutDoesNotAffectOtherSessions(t *testing.T) {
	store, err := NewJWTSessionStore("test-secret", time.Hour, NewMemoryTokenRevoker())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	first, _ := store.NewSession("user-1")
	second, _ := store.NewSession("user-1")
	if err := store.DeleteSession(first); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, ok, err := store.GetUserIDByToken(second); err != nil || !ok {
		t.Fatalf("second session should survive, ok=%v err=%v", ok, err)
	}
}

func TestTokenSignedWithOtherSecretRejected(t *testing.T) {
	issuer, _ := NewJWTSessionStore("secret-a", time.Hour, nil)
	verifier, _ := NewJWTSessionStore("secret-b", time.Hour, nil)
	token, err := issuer.NewSession("user-1")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if _, _, err := verifier.GetUserIDByToken(token); err == nil {
		t.Fatalf("expected signature mismatch to be rejected")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	store, _ := NewJWTSessionStore("test-secret", time.Hour, nil)
	for _, token := range []string{"", "   ", "not-a-jwt", "a.b.c"} {
		if _, _, err := store.GetUserIDByToken(token); err == nil {
			t.Fatalf("token %q should be rejected", token)
		}
	}
}

func TestRedisRevoker(t *testing.T) {
	srv := miniredis.RunT(t)
	revoker := NewRedisTokenRevoker(srv.Addr(), "")

	if err := revoker.Revoke("jti-1", time.Minute); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	revoked, err := revoker.IsRevoked("jti-1")
	if err != nil || !revoked {
		t.Fatalf("expected jti-1 revoked, got revoked=%v err=%v", revoked, err)
	}
	revoked, err = revoker.IsRevoked("jti-2")
	if err != nil || revoked {
		t.Fatalf("expected jti-2 not revoked, got revoked=%v err=%v", revoked, err)
	}

	srv.FastForward(2 * time.Minute)
	revoked, err = revoker.IsRevoked("jti-1")
	if err != nil || revoked {
		t.Fatalf("expired revocation should clear, got revoked=%v err=%v", revoked, err)
	}
}

func TestMemoryRevokerExpiry(t *testing.T) {
	revoker := NewMemoryTokenRevoker()
	if err := revoker.Revoke("jti-1", -time.Minute); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	revoked, err := revoker.IsRevoked("jti-1")
	if err != nil || revoked {
		t.Fatalf("non-positive ttl should be a no-op, got revoked=%v err=%v", revoked, err)
	}
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(4)
	hash, err := hasher.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !hasher.Check("s3cret", hash) {
		t.Fatalf("correct password should verify")
	}
	if hasher.Check("wrong", hash) {
		t.Fatalf("wrong password should not verify")
	}
	if hasher.Check("s3cret", "not-a-hash") {
		t.Fatalf("malformed stored hash should not verify")
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("Str0ng#Password!"); err != nil {
		t.Fatalf("expected valid password, got: %v", err)
	}
	for _, bad := range []string{"short1!A", "alllowercase123!", "ALLUPPERCASE123!", "NoDigitsHere!!!", "NoSpecials1234"} {
		if err := ValidatePassword(bad); err == nil {
			t.Fatalf("password %q should fail validation", bad)
		}
	}
}
