package common

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"proapp/internal/i18n"
)

// ActorLoader resolves a token subject to a live, non-banned user.
type ActorLoader interface {
	LoadActor(ctx context.Context, userID uint64) (*Actor, error)
}

// RevocationChecker reports tokens revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// BearerToken extracts the token of an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", false
	}
	return parts[1], true
}

// AuthMiddleware validates the bearer token and injects the Actor into the
// request context.
func AuthMiddleware(jwtm *JWTManager, revoked RevocationChecker, actors ActorLoader, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := i18n.DetectLanguage(r.Header.Get("Accept-Language"))

			tokenString, ok := BearerToken(r)
			if !ok {
				JSONMessage(w, http.StatusUnauthorized, i18n.T(lang, "auth.unauthorized"))
				return
			}

			claims, err := jwtm.ValidToken(tokenString)
			if err != nil {
				JSONMessage(w, http.StatusUnauthorized, i18n.T(lang, "auth.unauthorized"))
				return
			}

			if revoked != nil {
				isRevoked, err := revoked.IsRevoked(r.Context(), claims.ID)
				if err != nil {
					// fail open when the cache is unavailable
					log.Warn("revocation lookup failed", zap.Error(err))
				} else if isRevoked {
					JSONMessage(w, http.StatusUnauthorized, i18n.T(lang, "auth.unauthorized"))
					return
				}
			}

			actor, err := actors.LoadActor(r.Context(), claims.UserID)
			if err != nil || actor == nil {
				JSONMessage(w, http.StatusUnauthorized, i18n.T(lang, "auth.unauthorized"))
				return
			}
			actor.TokenID = claims.ID

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), *actor)))
		})
	}
}

// RequireRole rejects actors missing role. It must run after AuthMiddleware.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok {
				JSONMessage(w, http.StatusUnauthorized, i18n.T(i18n.DetectLanguage(r.Header.Get("Accept-Language")), "auth.unauthorized"))
				return
			}
			if !actor.HasRole(role) {
				JSONMessage(w, http.StatusForbidden, i18n.T(actor.Language, "auth.forbidden"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
