package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/quizarena/internal/pkg/models"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrMissingUserID  = errors.New("invalid token: missing user_id claim")
	ErrMissingRole    = errors.New("invalid token: missing role claim")
	ErrUnexpectedAlgo = errors.New("unexpected signing method")
)

// Claims are the identity fields carried by an access token
type Claims struct {
	UserID    string
	Role      string
	ExpiresAt int64
}

// GenerateToken signs an HS256 access token for the given user
func GenerateToken(userID, role string, cfg models.JWTConfig) (string, int64, error) {
	expiresAt := time.Now().Add(cfg.Expiration).Unix()

	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     expiresAt,
		"iss":     cfg.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateToken verifies signature, expiry and issuer and returns the identity claims
func ValidateToken(tokenString string, cfg models.JWTConfig) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedAlgo, token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if cfg.Issuer != "" && !mapClaims.VerifyIssuer(cfg.Issuer, true) {
		return nil, ErrInvalidToken
	}

	userID, _ := mapClaims["user_id"].(string)
	if userID == "" {
		return nil, ErrMissingUserID
	}
	role, _ := mapClaims["role"].(string)
	if role == "" {
		return nil, ErrMissingRole
	}

	claims := &Claims{UserID: userID, Role: role}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.ExpiresAt = int64(exp)
	}
	return claims, nil
}
