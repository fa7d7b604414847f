package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pinpin/travel-backend/internal/domain"
	"github.com/pinpin/travel-backend/internal/logger"
	"github.com/pinpin/travel-backend/internal/repository"
	"github.com/pinpin/travel-backend/internal/token"
	"go.uber.org/zap"
)

type contextKey string

const accountKey contextKey = "account"

// Session authenticates requests by the access-token cookie. The token is
// verified, then the account is re-resolved from storage with its profile and
// avatar so handlers always see current data, not the claims snapshot. A
// verified token whose account no longer exists is rejected.
func Session(issuer *token.Issuer, accounts repository.AccountRepository, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				unauthorized(w)
				return
			}

			claims, err := issuer.Verify(cookie.Value)
			if err != nil {
				unauthorized(w)
				return
			}

			accountID, err := claims.AccountID()
			if err != nil {
				unauthorized(w)
				return
			}

			account, err := accounts.GetByIDWithProfileAndAvatar(r.Context(), nil, accountID)
			if err != nil {
				logger.Error("session account lookup failed", zap.Error(err))
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			if account == nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), accountKey, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "unauthorized")
}

// writeError emits the same {statusCode, message, error} envelope the
// handlers use, so guard rejections are indistinguishable in shape.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"statusCode": status,
		"message":    message,
		"error":      http.StatusText(status),
	})
}

// CurrentAccount returns the authenticated account placed by Session.
func CurrentAccount(ctx context.Context) (*domain.Account, bool) {
	account, ok := ctx.Value(accountKey).(*domain.Account)
	return account, ok
}
