package middleware

import (
	"context"
	"net/http"
	"strings"

	"hrcore/internal/domain/auth"
	"hrcore/internal/transport/http/api"
)

type ctxKey string

const ctxKeySubject ctxKey = "auth_subject"

// Auth validates the bearer credential on every request: a JWT signed with
// jwtSecret, or the static service token whose bcrypt digest is
// apiTokenHash. The core never issues tokens.
func Auth(jwtSecret, apiTokenHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "missing bearer credential", GetRequestID(r.Context()))
				return
			}

			if jwtSecret != "" {
				if claims, err := auth.ParseToken(jwtSecret, token); err == nil {
					ctx := context.WithValue(r.Context(), ctxKeySubject, claims.Subject)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			if apiTokenHash != "" {
				if err := auth.CheckServiceToken(apiTokenHash, token); err == nil {
					ctx := context.WithValue(r.Context(), ctxKeySubject, "service")
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			api.Fail(w, http.StatusUnauthorized, "unauthorized", "invalid bearer credential", GetRequestID(r.Context()))
		})
	}
}

func GetSubject(ctx context.Context) string {
	if value, ok := ctx.Value(ctxKeySubject).(string); ok {
		return value
	}
	return ""
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
