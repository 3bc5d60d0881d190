package context

import (
	"encoding/gob"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	keySession   ContextKey = "web_session"
	keySessionID ContextKey = "session_id"
	keyTokens    ContextKey = "tokens"
	keyIdentity  ContextKey = "identity"
	keyNotices   ContextKey = "notices"

	// SessionIDValue is the cookie value holding the console session id.
	SessionIDValue = "sid"
)

// Flash levels.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// Flash is a dismissible notification shown on the next rendered page.
type Flash struct {
	Level   string
	Message string
}

func init() {
	gob.Register(Flash{})
}

// SetSession stores the cookie session with its console session id and token storage.
func SetSession(c echo.Context, sess *sessions.Session, id string, tokens service.TokenStore) {
	c.Set(string(keySession), sess)
	c.Set(string(keySessionID), id)
	c.Set(string(keyTokens), tokens)
}

// GetSessionID returns the console session id, empty outside the session middleware.
func GetSessionID(c echo.Context) string {
	id, _ := c.Get(string(keySessionID)).(string)

	return id
}

// GetTokens returns the token storage of the request's session.
func GetTokens(c echo.Context) service.TokenStore {
	tokens, _ := c.Get(string(keyTokens)).(service.TokenStore)

	return tokens
}

// SetIdentity stores the signed-in admin shown in the topbar.
func SetIdentity(c echo.Context, identity entity.Identity) {
	c.Set(string(keyIdentity), identity)
}

// GetIdentity returns the signed-in admin, zero when unknown.
func GetIdentity(c echo.Context) entity.Identity {
	identity, _ := c.Get(string(keyIdentity)).(entity.Identity)

	return identity
}

// SignedIn reports whether the auth gate admitted the request.
func SignedIn(c echo.Context) bool {
	_, ok := c.Get(string(keyIdentity)).(entity.Identity)

	return ok
}

// AddFlash queues a notification and writes the session cookie.
func AddFlash(c echo.Context, level, message string) error {
	sess, ok := c.Get(string(keySession)).(*sessions.Session)
	if !ok {
		return nil
	}

	sess.AddFlash(Flash{Level: level, Message: message})

	return errors.Wrap(sess.Save(c.Request(), c.Response()), "save session")
}

// Notify shows a notification on the page rendered by this request.
func Notify(c echo.Context, level, message string) {
	notices, _ := c.Get(string(keyNotices)).([]Flash)
	c.Set(string(keyNotices), append(notices, Flash{Level: level, Message: message}))
}

// PopFlashes returns the queued notifications followed by this request's
// notices and clears the queue. It must run before the body is written.
func PopFlashes(c echo.Context) []Flash {
	notices, _ := c.Get(string(keyNotices)).([]Flash)

	sess, ok := c.Get(string(keySession)).(*sessions.Session)
	if !ok {
		return notices
	}

	raw := sess.Flashes()
	if len(raw) == 0 {
		return notices
	}

	flashes := make([]Flash, 0, len(raw)+len(notices))
	for _, f := range raw {
		if flash, ok := f.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	_ = sess.Save(c.Request(), c.Response())

	return append(flashes, notices...)
}

// RotateSession binds the cookie to a fresh console session id.
func RotateSession(c echo.Context, id string, tokens service.TokenStore) error {
	sess, ok := c.Get(string(keySession)).(*sessions.Session)
	if !ok {
		return errors.New("no session in context")
	}

	sess.Values[SessionIDValue] = id
	SetSession(c, sess, id, tokens)

	return errors.Wrap(sess.Save(c.Request(), c.Response()), "save session")
}
