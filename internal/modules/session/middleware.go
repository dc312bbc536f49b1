package session

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const cookieName = "verdant_session"

// Middleware attaches a shopper session id to every request. A missing,
// expired or tampered cookie silently becomes a fresh session rather than
// an error.
func Middleware(svc Service, log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sessionID string

			if cookie, err := r.Cookie(cookieName); err == nil {
				if id, parseErr := svc.Parse(cookie.Value); parseErr == nil {
					sessionID = id
				} else {
					log.WithError(parseErr).Debug("rejecting session cookie, issuing a new one")
				}
			}

			if sessionID == "" {
				id, token, err := svc.Issue()
				if err != nil {
					log.WithError(err).Error("failed to issue session token")
					http.Error(w, "internal error", http.StatusInternalServerError)
					return
				}
				sessionID = id
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    token,
					Path:     "/",
					Expires:  time.Now().Add(sessionTTL),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), sessionID)))
		})
	}
}
