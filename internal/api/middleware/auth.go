package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lojatricolor/storefront/internal/errors"
	"github.com/lojatricolor/storefront/internal/identity"
	"github.com/lojatricolor/storefront/internal/models"
	"github.com/lojatricolor/storefront/internal/utils/response"
)

type contextKey string

// UserContextKey carries the authenticated principal's claims.
var UserContextKey = contextKey("user")

// AuthMiddleware verifies the bearer token and re-resolves the admin
// access flag from the gate on every request. A valid token whose subject
// lost access (or whose user record was deleted) is rejected.
type AuthMiddleware struct {
	jwtKey []byte
	gate   *identity.Gate
}

func NewAuthMiddleware(jwtKey []byte, gate *identity.Gate) *AuthMiddleware {
	return &AuthMiddleware{jwtKey: jwtKey, gate: gate}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, errors.UnauthorizedError("Authorization header is required"))

			return
		}

		// Token is of format : "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")

		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			logger.Warn("Invalid authorization header format")
			response.Error(w, errors.UnauthorizedError("Invalid authorization format"))

			return
		}

		claims := &models.Claims{}

		token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				logger.Error("Unexpected signing method used in JWT", slog.Any("alg", t.Header["alg"]))

				return nil, errors.BadRequestError("unexpected signing method")
			}

			return m.jwtKey, nil
		})

		if err != nil {
			logger.Warn("JWT parsing failed", slog.String("error", err.Error()))
			response.Error(w, errors.UnauthorizedError("Invalid or expired token"))

			return
		}

		if !token.Valid {
			logger.Warn("Invalid token")
			response.Error(w, errors.UnauthorizedError("Invalid token"))

			return
		}

		if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
			logger.Warn("Expired token", slog.String("uid", claims.UID))
			response.Error(w, errors.UnauthorizedError("Token expired"))

			return
		}

		hasAccess, err := m.gate.CheckAccess(r.Context(), claims.UID)
		if err != nil {
			logger.Error("Access check failed", slog.String("uid", claims.UID), slog.String("error", err.Error()))
			response.Error(w, errors.StoreUnavailableError("Could not verify access"))

			return
		}

		if !hasAccess {
			logger.Warn("Principal without access", slog.String("uid", claims.UID))
			response.Error(w, errors.AccessDeniedError("Access denied"))

			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)

		requestScopedLogger := logger.With(slog.String("uid", claims.UID))
		ctx = context.WithValue(ctx, LoggerKey, requestScopedLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
