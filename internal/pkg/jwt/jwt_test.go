package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()
	id := uuid.New()

	tok, err := svc.GenerateAccessToken(id, "ana@example.com", "recruiter")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != id {
		t.Errorf("UserID = %s, want %s", claims.UserID, id)
	}
	if claims.Email != "ana@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Role != "recruiter" {
		t.Errorf("Role = %q, want recruiter", claims.Role)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("TokenType = %q", claims.TokenType)
	}
	if svc.IsRefreshToken(claims) {
		t.Error("access token reported as refresh")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := newTestService()
	id := uuid.New()

	tok, err := svc.GenerateRefreshToken(id)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if !svc.IsRefreshToken(claims) {
		t.Error("refresh token not reported as refresh")
	}
	if claims.UserID != id {
		t.Errorf("UserID = %s, want %s", claims.UserID, id)
	}
}

func TestExpiredToken(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	tok, err := svc.GenerateAccessToken(uuid.New(), "", "user")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("ValidateToken = %v, want ErrTokenExpired", err)
	}
}

func TestTokenSignedWithOtherSecret(t *testing.T) {
	svc := newTestService()
	other := NewHMACService("different", "secrets", 15*time.Minute, 24*time.Hour)

	tok, err := other.GenerateAccessToken(uuid.New(), "", "user")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("ValidateToken = %v, want ErrTokenInvalid", err)
	}
}

func TestGarbageToken(t *testing.T) {
	svc := newTestService()
	if _, err := svc.ValidateToken("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("ValidateToken = %v, want ErrTokenInvalid", err)
	}
}
