package auth

import (
	"testing"
	"time"

	"github.com/spec-kit/job-portal/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, exp, err := tm.GenerateToken("user-1", domain.RoleStudent)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if time.Until(exp) < 55*time.Minute {
		t.Fatalf("expiry %v too soon for a 60 minute ttl", exp)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != domain.RoleStudent {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestTokenDefaultTTLIsThirtyDays(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)

	_, exp, err := tm.GenerateToken("user-1", domain.RoleHR)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	until := time.Until(exp)
	if until < 29*24*time.Hour || until > 31*24*time.Hour {
		t.Fatalf("expiry window %v, want about 30 days", until)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", 60).GenerateToken("user-1", domain.RoleStudent)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := NewTokenManager("secret-b", 60).ParseToken(token); err == nil {
		t.Fatal("expected signature mismatch to fail")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	if _, err := tm.ParseToken("not-a-token"); err == nil {
		t.Fatal("expected parse failure")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret1", 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := ComparePassword(hash, "secret1"); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch to fail")
	}
}
