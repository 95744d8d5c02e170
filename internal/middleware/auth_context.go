package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"smartpill/internal/platform/respond"
	"smartpill/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// MsgUnauthorized es el cuerpo que espera el cliente web ante 401.
const MsgUnauthorized = "Invalid or missing token"

// AuthContext:
// - Si verifier != nil y viene Bearer token => intenta Verify() y setea claims.
// - Si verifier == nil => modo dev: si viene header X-Debug-User-ID numérico => setea claims.
// - Si no hay claims, el request sigue igual; RequireAuth decide si corta.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Dev mode: permitir inyectar user sin verifier
			if verifier == nil {
				raw := strings.TrimSpace(r.Header.Get("X-Debug-User-ID"))
				if uid, err := strconv.ParseInt(raw, 10, 64); err == nil && uid > 0 {
					next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), auth.Claims{UserID: uid})))
					return
				}

				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireAuth corta con 401 cuando AuthContext no dejó claims válidos.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserID(r.Context()); !ok {
			respond.Error(w, http.StatusUnauthorized, MsgUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

// UserID es el atajo que usan los handlers detrás de RequireAuth.
func UserID(ctx context.Context) (int64, bool) {
	c, ok := GetClaims(ctx)
	if !ok || c.UserID <= 0 {
		return 0, false
	}
	return c.UserID, true
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
