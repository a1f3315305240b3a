// Package auth contains token helpers that are independent of the HTTP layer.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/travelmate-app/travelmate-backend/errors"
)

// ShareClaims are embedded in itinerary share-link tokens. The token grants
// read-only access to one plan's itinerary and nothing else.
type ShareClaims struct {
	PlanID string `json:"planId"`
	jwt.RegisteredClaims
}

// GenerateShareToken signs a share-link token for a plan.
func GenerateShareToken(planID, secret string, ttl time.Duration) (string, error) {
	claims := ShareClaims{
		PlanID: planID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateShareToken parses a share-link token and returns its claims.
func ValidateShareToken(tokenString, secret string) (*ShareClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ShareClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})

	if err != nil || !token.Valid {
		return nil, apperrors.Unauthorized("invalid_token", "Invalid share link")
	}

	claims, ok := token.Claims.(*ShareClaims)
	if !ok || claims.PlanID == "" {
		return nil, apperrors.Unauthorized("invalid_claims", "Invalid token structure")
	}

	return claims, nil
}
