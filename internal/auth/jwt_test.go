package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

const testSecret = "test-secret-at-least-32-chars-long-for-security"

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	manager := NewTokenManager(testSecret, "didivui-test", 15*time.Minute)
	userID := uuid.New()

	token, err := manager.GenerateAccessToken(userID, "business_owner")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	validatedID, role, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}
	if validatedID != userID {
		t.Errorf("expected userID %s, got %s", userID, validatedID)
	}
	if role != "business_owner" {
		t.Errorf("expected role 'business_owner', got %q", role)
	}
}

func TestTokenManager_RoleClaimRoundTrip(t *testing.T) {
	manager := NewTokenManager(testSecret, "didivui-test", 15*time.Minute)

	for _, role := range []string{"viewer", "business_owner", "admin"} {
		token, err := manager.GenerateAccessToken(uuid.New(), role)
		if err != nil {
			t.Fatalf("GenerateAccessToken(%s) failed: %v", role, err)
		}
		_, got, err := manager.ValidateAccessToken(token)
		if err != nil {
			t.Fatalf("ValidateAccessToken(%s) failed: %v", role, err)
		}
		if got != role {
			t.Errorf("role = %q, want %q", got, role)
		}
	}
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	manager := NewTokenManager(testSecret, "didivui-test", -1*time.Minute)

	token, err := manager.GenerateAccessToken(uuid.New(), "viewer")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, _, err := manager.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	manager := NewTokenManager(testSecret, "didivui-test", 15*time.Minute)
	other := NewTokenManager("another-secret-also-32-chars-long-xx", "didivui-test", 15*time.Minute)

	token, err := manager.GenerateAccessToken(uuid.New(), "viewer")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, _, err := other.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestTokenManager_WrongIssuer(t *testing.T) {
	manager := NewTokenManager(testSecret, "didivui-test", 15*time.Minute)
	other := NewTokenManager(testSecret, "someone-else", 15*time.Minute)

	token, err := manager.GenerateAccessToken(uuid.New(), "viewer")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, _, err := other.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for token with unexpected issuer")
	}
}

func TestTokenManager_EmptyAndGarbageTokens(t *testing.T) {
	manager := NewTokenManager(testSecret, "didivui-test", 15*time.Minute)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, _, err := manager.ValidateAccessToken(tok); err == nil {
			t.Errorf("expected error for token %q", tok)
		}
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	manager := NewTokenManager(testSecret, "didivui-test", 15*time.Minute)

	raw, hash, err := manager.GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}
	if raw == "" || hash == "" {
		t.Fatal("expected non-empty raw token and hash")
	}
	if strings.Contains(raw, "=") {
		t.Error("raw token should use unpadded base64url encoding")
	}
	if HashToken(raw) != hash {
		t.Error("hash does not match HashToken(raw)")
	}

	raw2, hash2, err := manager.GenerateRefreshToken()
	if err != nil {
		t.Fatalf("second GenerateRefreshToken failed: %v", err)
	}
	if raw == raw2 || hash == hash2 {
		t.Error("two generated tokens should differ")
	}
}
