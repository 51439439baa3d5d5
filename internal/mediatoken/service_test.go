package mediatoken

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestMint_ClaimsAndExpiry(t *testing.T) {
	svc := NewService(nil, "vk_test", "secret-key", 0)

	raw, err := svc.Mint("standup-room", "dana")
	if err != nil {
		t.Fatalf("Mint returned error: %v", err)
	}

	var claims Claims
	parsed, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		return []byte("secret-key"), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if !parsed.Valid {
		t.Fatal("token not valid")
	}
	if claims.Issuer != "vk_test" {
		t.Errorf("iss = %q", claims.Issuer)
	}
	if claims.Subject != "dana" || claims.Identity != "dana" {
		t.Errorf("subject = %q identity = %q", claims.Subject, claims.Identity)
	}
	if claims.Video.Room != "standup-room" || !claims.Video.RoomJoin {
		t.Errorf("video grant = %+v", claims.Video)
	}
	if claims.ExpiresAt == nil {
		t.Fatal("missing exp")
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 9*time.Minute || remaining > 10*time.Minute {
		t.Errorf("expiry window = %v, want ~10 minutes", remaining)
	}
}

func TestMint_MissingCredentials(t *testing.T) {
	svc := NewService(nil, "", "", 0)
	if svc.Configured() {
		t.Fatal("Configured() = true without credentials")
	}
	if _, err := svc.Mint("room", "p"); err != ErrNotConfigured {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}

func TestMint_MissingNames(t *testing.T) {
	svc := NewService(nil, "k", "s", 0)
	if _, err := svc.Mint("", "p"); err == nil {
		t.Error("expected error for empty room")
	}
	if _, err := svc.Mint("room", ""); err == nil {
		t.Error("expected error for empty participant")
	}
}
