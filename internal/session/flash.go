package session

import (
	"encoding/gob"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// Flash categories, as used by the page styles.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

const flashSessionName = "luxstyle_flash"

type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register(Flash{})
}

// FlashStore keeps one-shot messages in a signed cookie until the next rendered page.
type FlashStore struct {
	store sessions.Store
}

func NewFlashStore(secret string, secure bool) *FlashStore {
	cs := sessions.NewCookieStore([]byte(secret))
	cs.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &FlashStore{store: cs}
}

func (f *FlashStore) Add(c *gin.Context, category, message string) error {
	// a tampered or stale cookie still yields a fresh session
	sess, _ := f.store.Get(c.Request, flashSessionName)
	sess.AddFlash(Flash{Category: category, Message: message})
	return sess.Save(c.Request, c.Writer)
}

// Reset drops every pending message and leaves only the given one.
func (f *FlashStore) Reset(c *gin.Context, category, message string) error {
	sess, _ := f.store.Get(c.Request, flashSessionName)
	sess.Values = map[interface{}]interface{}{}
	sess.AddFlash(Flash{Category: category, Message: message})
	return sess.Save(c.Request, c.Writer)
}

// Pop returns and consumes the pending messages.
func (f *FlashStore) Pop(c *gin.Context) []Flash {
	sess, _ := f.store.Get(c.Request, flashSessionName)

	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save(c.Request, c.Writer)

	out := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if fl, ok := v.(Flash); ok {
			out = append(out, fl)
		}
	}
	return out
}
