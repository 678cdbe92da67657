package middleware

import (
	"net/http"
	"net/url"
	"strings"
	"yanews/internal/models"
	"yanews/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CurrentUserKey = "user"

// SessionUserKey is the session field holding the logged-in user's id.
const SessionUserKey = "user_id"

// LoadUser retrieves user from session and sets to context
func LoadUser(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := session.Get(SessionUserKey).(uint)

		if ok {
			user, err := auth.GetUser(c.Request.Context(), userID)
			if err == nil {
				c.Set(CurrentUserKey, user)
			} else {
				// stale cookie, the account is gone
				session.Delete(SessionUserKey)
				session.Save()
			}
		}
		c.Next()
	}
}

// CurrentUser returns the logged-in user or nil for an anonymous visitor.
func CurrentUser(c *gin.Context) *models.User {
	if v, exists := c.Get(CurrentUserKey); exists {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

// LoginRequired redirects anonymous users to loginURL?next=<requested path>.
// It expects LoadUser to run before it.
func LoginRequired(loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.Redirect(http.StatusFound, LoginRedirectURL(loginURL, c.Request.URL.Path))
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoginRedirectURL builds the login address with next, keeping slashes readable:
// /auth/login/?next=/comments/1/edit/
func LoginRedirectURL(loginURL, next string) string {
	return loginURL + "?next=" + strings.ReplaceAll(url.QueryEscape(next), "%2F", "/")
}
