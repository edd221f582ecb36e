package httphandler

import (
	"context"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/niksmo/storefront/internal/core/service"
)

func AllowJSON(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mt != "application/json" {
			http.Error(w, "invalid media type", http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}

type sessionKey struct{}

// SessionConfig configures the session cookie.
type SessionConfig struct {
	CookieName string
	MaxAge     time.Duration
	Secure     bool
}

// Sessions attaches the shopper's session id to the request context. A
// request without a valid session cookie starts a new session.
func Sessions(config SessionConfig) func(http.Handler) http.Handler {
	if config.CookieName == "" {
		panic("httphandler.Sessions: empty cookie name") // develop mistake
	}

	return func(next http.Handler) http.Handler {
		hf := func(w http.ResponseWriter, r *http.Request) {
			var sid string
			if c, err := r.Cookie(config.CookieName); err == nil &&
				service.ValidSessionID(c.Value) {
				sid = c.Value
			} else {
				sid = service.NewSessionID()
				slog.Debug("session started", "op", "Sessions")
			}

			http.SetCookie(w, &http.Cookie{
				Name:     config.CookieName,
				Value:    sid,
				Path:     "/",
				MaxAge:   int(config.MaxAge.Seconds()),
				HttpOnly: true,
				Secure:   config.Secure,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := context.WithValue(r.Context(), sessionKey{}, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hf)
	}
}

// SessionID returns the session id set by [Sessions].
func SessionID(ctx context.Context) string {
	sid, _ := ctx.Value(sessionKey{}).(string)
	return sid
}
