package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"employeeform/internal/domain/employee"
	"employeeform/internal/platform/metrics"
	"employeeform/internal/requestctx"
	"employeeform/internal/transport/http/api"
)

const SessionCookieName = "employee_session"

// Session attaches the caller's form session to the request context,
// starting a new one and setting the cookie when none is presented.
func Session(sessions *employee.Sessions, secure bool, log *zap.Logger, collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if cookie, err := r.Cookie(SessionCookieName); err == nil {
				id = cookie.Value
			}

			sess, created := sessions.Open(id)
			if created {
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    sess.ID,
					Path:     "/",
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
				collector.SetSessions(sessions.Len())
				log.Debug("session started",
					zap.String("sessionId", sess.ID),
					zap.String("requestId", GetRequestID(r.Context())),
				)
			}

			next.ServeHTTP(w, r.WithContext(requestctx.WithSession(r.Context(), sess)))
		})
	}
}

// GetSession returns the session attached by Session. Handlers behind the
// middleware can rely on it being present.
func GetSession(r *http.Request) (*employee.Session, bool) {
	return requestctx.GetSession(r.Context())
}

// RequireSession fails the request with 500 when Session did not run.
func RequireSession(w http.ResponseWriter, r *http.Request) (*employee.Session, bool) {
	sess, ok := GetSession(r)
	if !ok {
		api.Fail(w, http.StatusInternalServerError, "session_missing", "session not available", GetRequestID(r.Context()))
	}
	return sess, ok
}
