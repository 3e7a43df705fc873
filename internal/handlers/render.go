package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/luxstyle-booking/internal/httperr"
	"github.com/BruksfildServices01/luxstyle-booking/internal/middleware"
	"github.com/BruksfildServices01/luxstyle-booking/internal/session"
)

const msgUnexpected = "Ocurrió un error inesperado."

// flashes maps business error codes to the message shown for them on one screen.
type flashes map[string]session.Flash

func warning(msg string) session.Flash { return session.Flash{Category: session.FlashWarning, Message: msg} }
func danger(msg string) session.Flash  { return session.Flash{Category: session.FlashDanger, Message: msg} }

// Renderer renders pages through the "base" layout and redirects with flash messages.
type Renderer struct {
	flash *session.FlashStore
}

func NewRenderer(flash *session.FlashStore) *Renderer {
	return &Renderer{flash: flash}
}

func (r *Renderer) HTML(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Page"] = page
	data["Identity"] = middleware.CurrentIdentity(c)
	// popping rewrites the flash cookie, so it has to happen before the body
	data["Flashes"] = r.flash.Pop(c)

	c.HTML(status, "base", data)
}

func (r *Renderer) Redirect(c *gin.Context, target, category, message string) {
	if err := r.flash.Add(c, category, message); err != nil {
		zap.L().Warn("flash not saved", zap.Error(err))
	}
	c.Redirect(http.StatusFound, target)
}

func (r *Renderer) NotFound(c *gin.Context) {
	r.HTML(c, http.StatusNotFound, "not_found", nil)
}

// Fail reports err on the next page: known codes get their flash, missing records
// a 404 page, anything else is logged and shown as a generic error.
func (r *Renderer) Fail(c *gin.Context, err error, target string, known flashes) {
	if fl, ok := known[httperr.CodeOf(err)]; ok {
		r.Redirect(c, target, fl.Category, fl.Message)
		return
	}

	if httperr.IsNotFound(err) {
		r.NotFound(c)
		return
	}

	_ = c.Error(err)
	zap.L().Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	r.Redirect(c, target, session.FlashDanger, msgUnexpected)
}

// pathID reads a positive numeric route parameter.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func currentUserID(c *gin.Context) uint {
	if id := middleware.CurrentIdentity(c); id != nil {
		return id.UserID
	}
	return 0
}
