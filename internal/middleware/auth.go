package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/luxstyle-booking/internal/session"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextIdentity = "identity"
)

const msgForbidden = "No tienes permiso para acceder aquí."

// LoadIdentity reads the session cookie, when present, and puts the caller into the gin context.
// Requests without a valid session continue anonymously.
func LoadIdentity(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := sessions.FromRequest(c)
		if err != nil {
			if !errors.Is(err, http.ErrNoCookie) && !errors.Is(err, session.ErrRevoked) {
				zap.L().Debug("ignoring session cookie", zap.Error(err))
			}
			c.Next()
			return
		}

		c.Set(ContextIdentity, id)
		c.Set(ContextUserID, id.UserID)
		c.Set(ContextUserRole, id.Role)

		c.Next()
	}
}

// CurrentIdentity returns the authenticated caller or nil.
func CurrentIdentity(c *gin.Context) *session.Identity {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return nil
	}
	id, _ := v.(*session.Identity)
	return id
}

// RequireUser sends anonymous callers to the login page with the given warning.
func RequireUser(flash *session.FlashStore, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentIdentity(c) == nil {
			_ = flash.Add(c, session.FlashWarning, message)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin sends everyone but admins back to the home page.
func RequireAdmin(flash *session.FlashStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentIdentity(c).IsAdmin() {
			_ = flash.Add(c, session.FlashDanger, msgForbidden)
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
