package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dealpage/dealpage/pkg/cache"
)

// Claims are the JWT claims carried by DealPage tokens.
type Claims struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateJWT issues a signed token for the user.
func GenerateJWT(userID int, email, secret string, expirationHours int) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expirationHours) * time.Hour)),
			Issuer:    "dealpage",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateJWT parses and verifies a token.
func ValidateJWT(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// ValidateJWTWithBlacklist verifies a token and additionally rejects tokens
// revoked by logout. blacklist may be nil.
func ValidateJWTWithBlacklist(ctx context.Context, tokenString, secret string, blacklist *TokenBlacklist) (*Claims, error) {
	claims, err := ValidateJWT(tokenString, secret)
	if err != nil {
		return nil, err
	}

	if blacklist != nil {
		revoked, err := blacklist.IsRevoked(ctx, tokenString)
		if err != nil {
			return nil, fmt.Errorf("blacklist check failed: %w", err)
		}
		if revoked {
			return nil, errors.New("token has been revoked")
		}
	}
	return claims, nil
}

// TokenBlacklist stores revoked tokens in redis until their natural expiry.
type TokenBlacklist struct {
	cache *cache.Client
}

// NewTokenBlacklist creates a blacklist backed by the redis cache.
func NewTokenBlacklist(cacheClient *cache.Client) *TokenBlacklist {
	return &TokenBlacklist{cache: cacheClient}
}

func blacklistKey(token string) string {
	return "auth:revoked:" + HashResetToken(token)
}

// Add marks a token as invalid for ttl, which should match the token's
// remaining lifetime.
func (b *TokenBlacklist) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return b.cache.Set(ctx, blacklistKey(token), "1", ttl)
}

// IsRevoked reports whether a token was revoked.
func (b *TokenBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	return b.cache.Exists(ctx, blacklistKey(token))
}
