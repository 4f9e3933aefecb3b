package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

const (
	SessionCookie = "sid"
	SessionHeader = "X-Session-ID"

	sessionKey = contextKey("session")
)

var validSessionID = regexp.MustCompile(`^[A-Za-z0-9_-]{8,64}$`)

// Session resolves the shopper session from the sid cookie or the
// X-Session-ID header and issues a new one when neither is usable.
func Session(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid := r.Header.Get(SessionHeader)

			if c, err := r.Cookie(SessionCookie); sid == "" && err == nil {
				sid = c.Value
			}

			if !validSessionID.MatchString(sid) {
				sid = uuid.NewString()

				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    sid,
					Path:     "/",
					MaxAge:   365 * 24 * 60 * 60,
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			w.Header().Set(SessionHeader, sid)

			ctx := context.WithValue(r.Context(), sessionKey, sid)
			ctx = WithLogger(ctx, LoggerFromContext(ctx).With(slog.String("session_id", sid)))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithSessionID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, sessionKey, sid)
}

func SessionIDFromContext(ctx context.Context) string {
	sid, _ := ctx.Value(sessionKey).(string)

	return sid
}
