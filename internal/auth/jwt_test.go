package auth

import (
	"testing"
	"time"

	"rently-backend/internal/config"
	"rently-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

func testConfig(secret string, expirationHours int) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpirationHours = expirationHours
	cfg.JWT.Issuer = "rently-backend"
	return cfg
}

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := NewJWTManager(testConfig("test-secret", 24))

	user := &models.User{
		ID:       7,
		Email:    "renter@example.com",
		Role:     models.RoleRenter,
		IsActive: true,
	}

	token, err := manager.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("user_id = %d, want %d", claims.UserID, user.ID)
	}
	if claims.Email != user.Email {
		t.Errorf("email = %q, want %q", claims.Email, user.Email)
	}
	if claims.Role != models.RoleRenter {
		t.Errorf("role = %q, want %q", claims.Role, models.RoleRenter)
	}
	if claims.Issuer != "rently-backend" {
		t.Errorf("issuer = %q, want rently-backend", claims.Issuer)
	}
}

func TestJWTManager_WrongSecret(t *testing.T) {
	manager := NewJWTManager(testConfig("right-secret", 24))
	other := NewJWTManager(testConfig("wrong-secret", 24))

	token, err := manager.GenerateToken(&models.User{ID: 1, Role: models.RoleLandlord})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted a token signed with a different secret")
	}
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	manager := NewJWTManager(testConfig("test-secret", 24))

	claims := &Claims{
		UserID: 1,
		Role:   models.RoleRenter,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	if _, err := manager.ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted an expired token")
	}
}

func TestJWTManager_GarbageToken(t *testing.T) {
	manager := NewJWTManager(testConfig("test-secret", 24))
	if _, err := manager.ValidateToken("not.a.token"); err == nil {
		t.Error("ValidateToken() accepted garbage input")
	}
}
