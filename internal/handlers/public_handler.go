package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ucCatalog "github.com/BruksfildServices01/luxstyle-booking/internal/usecase/catalog"
)

type PublicHandler struct {
	services *ucCatalog.Services
	render   *Renderer
}

func NewPublicHandler(services *ucCatalog.Services, render *Renderer) *PublicHandler {
	return &PublicHandler{services: services, render: render}
}

// Index shows the active services only.
func (h *PublicHandler) Index(c *gin.Context) {
	services, err := h.services.ListActive(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, msgUnexpected)
		return
	}

	h.render.HTML(c, http.StatusOK, "index", gin.H{"Services": services})
}

func (h *PublicHandler) Services(c *gin.Context) {
	services, err := h.services.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, msgUnexpected)
		return
	}

	h.render.HTML(c, http.StatusOK, "services", gin.H{"Services": services})
}

func (h *PublicHandler) NotFound(c *gin.Context) {
	h.render.NotFound(c)
}
