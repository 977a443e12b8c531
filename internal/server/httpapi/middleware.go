package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/godsapp/freizeit-server/internal/common"
	"github.com/godsapp/freizeit-server/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// UserIDFromContext returns the authenticated user id placed in the request
// context by the authenticate middleware.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// authenticate extracts the bearer token. A missing token is 401, a token
// that does not verify is 403.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, http.StatusUnauthorized, "token required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			writeError(w, http.StatusUnauthorized, "token required")
			return
		}

		userID, err := auth.GetUserIDFromToken(parts[1], s.jwtSecret)
		if err != nil {
			writeError(w, http.StatusForbidden, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireLeader re-checks the role against the database on every request so
// a demoted leader loses access before their token expires.
func (s *Server) requireLeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "token required")
			return
		}

		if err := s.auth.RequireLeader(r.Context(), userID); err != nil {
			if errors.Is(err, common.ErrForbidden) {
				writeError(w, http.StatusForbidden, "leader role required")
				return
			}
			s.logger.Error(r.Context(), "leader check failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		next.ServeHTTP(w, r)
	})
}
