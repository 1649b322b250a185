package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const (
	sessionName     = "orderladder"
	sessionAdminKey = "admin_email"
)

// SessionMiddleware installs a cookie-backed session store.
func SessionMiddleware(secret string, secure bool) gin.HandlerFunc {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		MaxAge:   int(AdminTokenTTL.Seconds()),
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(sessionName, store)
}

// SetAdminSession remembers the logged in admin in the session cookie.
func SetAdminSession(c *gin.Context, email string) error {
	session := sessions.Default(c)
	session.Set(sessionAdminKey, email)
	if err := session.Save(); err != nil {
		return fmt.Errorf("failed to save session: %v", err)
	}
	return nil
}

// AdminFromSession returns the admin email stored in the session, if any.
func AdminFromSession(c *gin.Context) (string, bool) {
	email, ok := sessions.Default(c).Get(sessionAdminKey).(string)
	return email, ok && email != ""
}

// ClearAdminSession drops the admin from the session.
func ClearAdminSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(sessionAdminKey)
	return session.Save()
}
