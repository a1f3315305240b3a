package middleware

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"

	apperrors "github.com/travelmate-app/travelmate-backend/errors"
	"github.com/travelmate-app/travelmate-backend/logger"
)

// AuthMiddleware validates the Supabase-issued Bearer token and puts the
// subject ID (and email, when present) on the context. Websocket upgrade
// requests may carry the token as a query parameter instead, since browser
// websocket clients cannot set headers.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.GetLogger()

		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization required",
			})
			return
		}

		claims, err := validateJWT(token, jwtSecret)
		if err != nil {
			log.Warnw("Invalid JWT token",
				"error", err,
				"request_path", c.Request.URL.Path,
				"request_method", c.Request.Method,
				"client_ip", c.ClientIP())

			if strings.Contains(err.Error(), "exp") || strings.Contains(err.Error(), "expired") {
				if err := c.Error(apperrors.Unauthorized("token_expired", "Your session has expired")); err != nil {
					log.Errorw("Failed to set error in context", "error", err)
				}
				c.Abort()
				return
			}

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authentication token",
			})
			return
		}

		c.Set(ContextKeyUserID, claims.Subject)
		if claims.Email != "" {
			c.Set(ContextKeyUserEmail, claims.Email)
		}
		c.Next()
	}
}

// TokenClaims is the subset of Supabase JWT claims the app consumes.
type TokenClaims struct {
	Subject string
	Email   string
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	isWebSocketUpgrade := strings.EqualFold(c.GetHeader("Connection"), "upgrade") &&
		strings.EqualFold(c.GetHeader("Upgrade"), "websocket")
	if isWebSocketUpgrade {
		return c.Query("token")
	}

	return ""
}

// validateJWT verifies an HS256 token against the shared secret. Supabase
// projects have historically delivered the secret raw or base64 encoded, so
// both decodings are attempted before giving up.
func validateJWT(tokenString, rawSecret string) (*TokenClaims, error) {
	if rawSecret == "" {
		return nil, fmt.Errorf("JWT secret is not configured")
	}

	secrets := [][]byte{[]byte(rawSecret)}
	if decoded, err := base64.StdEncoding.DecodeString(rawSecret); err == nil {
		secrets = append(secrets, decoded)
	}
	if decoded, err := base64.RawURLEncoding.DecodeString(rawSecret); err == nil {
		secrets = append(secrets, decoded)
	}

	var lastErr error
	for _, secret := range secrets {
		validToken, err := jwt.Parse([]byte(tokenString),
			jwt.WithVerify(true),
			jwt.WithKey(jwa.HS256, secret),
			jwt.WithValidate(true),
			jwt.WithAcceptableSkew(30*time.Second),
		)
		if err != nil {
			lastErr = err
			continue
		}

		sub := validToken.Subject()
		if sub == "" {
			return nil, fmt.Errorf("missing subject claim in token")
		}

		claims := &TokenClaims{Subject: sub}
		if email, ok := validToken.PrivateClaims()["email"].(string); ok {
			claims.Email = email
		}
		return claims, nil
	}

	return nil, lastErr
}

// ValidateTokenWithoutAbort validates a raw token outside the middleware
// flow, for callers like the websocket handshake.
func ValidateTokenWithoutAbort(token, jwtSecret string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("empty token")
	}

	claims, err := validateJWT(token, jwtSecret)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	return claims.Subject, nil
}
