// Package auth owns the browser session for the authenticated area.
//
// The cookie session carries the client-side state: the bearer token
// issued by the backend, the last-known role, and a working-set id.
// All three are written together on login and cleared together on
// logout or when the backend answers 401. Nothing here verifies the
// token; the backend does that on every request it receives.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/userhub/userhub/internal/app/system/claims"
)

const (
	tokenKey = "jwt_token"
	roleKey  = "user_role"
	setKey   = "set_id"
)

// GuestName is the display fallback when the token carries no subject.
const GuestName = "Guest"

// SessionUser is what LoadSessionUser injects into r.Context() for a
// signed-in request. Name and Role come from unverified display
// claims; Token is what actually authenticates calls to the backend.
type SessionUser struct {
	Name   string // subject name (the username), or GuestName
	Role   string // display role; gates rendering only
	UserID int64  // backend user id, zero when the token omits it
	Token  string // bearer token for backend calls
	SetID  string // working-set id for this login
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the session user and a found flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// SessionManager wraps the cookie store. It is constructed once in
// bootstrap and passed explicitly to every feature that needs it; no
// package-level store exists.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewSessionManager builds a cookie-backed session manager. The secure
// flag controls Secure cookies and the SameSite mode: None for HTTPS
// deployments, Lax for local dev over http.
func NewSessionManager(sessionKey, name, domain string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide 32+ random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &SessionManager{store: store, name: name, log: logger}, nil
}

// Store exposes the underlying cookie store (used by logout to build a
// deletion cookie with matching options).
func (sm *SessionManager) Store() *sessions.CookieStore { return sm.store }

// GetSession returns the request's session, creating an empty one if
// the cookie is absent or undecodable. A decode failure (rotated key,
// tampered cookie) is not an error; the visitor is simply signed out.
func (sm *SessionManager) GetSession(r *http.Request) (*sessions.Session, error) {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		if scErr, ok := err.(securecookie.Error); ok && scErr.IsDecode() {
			sm.log.Debug("session cookie undecodable; starting fresh", zap.Error(err))
			return sess, nil
		}
	}
	return sess, err
}

// SetSession persists the token, role, and working-set id together.
func (sm *SessionManager) SetSession(w http.ResponseWriter, r *http.Request, token, role, setID string) error {
	sess, _ := sm.store.Get(r, sm.name)
	sess.Values[tokenKey] = token
	sess.Values[roleKey] = role
	sess.Values[setKey] = setID
	return sess.Save(r, w)
}

// Clear removes the token, role, and working-set id and expires the
// cookie. Called on logout and whenever the backend answers 401.
func (sm *SessionManager) Clear(w http.ResponseWriter, r *http.Request) {
	sess, _ := sm.store.Get(r, sm.name)
	delete(sess.Values, tokenKey)
	delete(sess.Values, roleKey)
	delete(sess.Values, setKey)
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		sm.log.Error("clear session: save", zap.Error(err))
	}
}

// LoadSessionUser injects a SessionUser into context when the session
// holds a token. The subject name and role come from the token's
// display claims; an undecodable token degrades to GuestName and the
// role cached at login rather than failing the request.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := sm.GetSession(r)

		token, _ := sess.Values[tokenKey].(string)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		cachedRole, _ := sess.Values[roleKey].(string)
		setID, _ := sess.Values[setKey].(string)

		dc := claims.Decode(token)
		u := &SessionUser{
			Name:   dc.SubjectName,
			Role:   dc.Role,
			UserID: dc.UserID,
			Token:  token,
			SetID:  setID,
		}
		if u.Name == "" {
			u.Name = GuestName
		}
		if u.Role == "" {
			u.Role = cachedRole
		}

		next.ServeHTTP(w, withUser(r, u))
	})
}

// RequireSignedIn ensures there is a user in context (set by
// LoadSessionUser). If not signed in:
//   - HTMX: sends HX-Redirect to /login?return=...
//   - HTML: 303 redirect to /login?return=...
//   - API:  401 Unauthorized with a plain error body.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}

		ret := url.QueryEscape(currentURI(r))

		if r.Header.Get("HX-Request") == "true" {
			w.Header().Set("HX-Redirect", "/login?return="+ret)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if wantsHTML(r) {
			http.Redirect(w, r, "/login?return="+ret, http.StatusSeeOther)
			return
		}

		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
}

// RequireRole ensures the context user has one of the allowed roles.
// Role names are compared case-insensitively. Unauthorized requests
// get 401 semantics, wrong-role requests get 403 semantics, both with
// HTML/HTMX-aware redirects.
func (sm *SessionManager) RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToUpper(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)

			if !ok {
				ret := url.QueryEscape(currentURI(r))

				if r.Header.Get("HX-Request") == "true" {
					w.Header().Set("HX-Redirect", "/login?return="+ret)
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				if wantsHTML(r) {
					http.Redirect(w, r, "/login?return="+ret, http.StatusSeeOther)
					return
				}
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			if _, has := set[strings.ToUpper(u.Role)]; !has {
				if r.Header.Get("HX-Request") == "true" {
					w.Header().Set("HX-Redirect", "/forbidden")
					w.WriteHeader(http.StatusForbidden)
					return
				}
				if wantsHTML(r) {
					http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
					return
				}
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// WithTestUser injects a SessionUser directly into the request
// context. Test helper; production requests go through LoadSessionUser.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

// helpers

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

func wantsHTML(r *http.Request) bool {
	if r.Header.Get("HX-Request") == "true" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func currentURI(r *http.Request) string {
	u := *r.URL
	return u.RequestURI()
}
