package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/luxstyle-booking/internal/httperr"
	"github.com/BruksfildServices01/luxstyle-booking/internal/session"
	ucCatalog "github.com/BruksfildServices01/luxstyle-booking/internal/usecase/catalog"
)

type AdminServiceHandler struct {
	services *ucCatalog.Services
	render   *Renderer
}

func NewAdminServiceHandler(services *ucCatalog.Services, render *Renderer) *AdminServiceHandler {
	return &AdminServiceHandler{services: services, render: render}
}

// --------- Requests ---------

type ServiceForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Duration    string `form:"duration"`
	Price       string `form:"price"`
}

func (f ServiceForm) input() ucCatalog.ServiceInput {
	return ucCatalog.ServiceInput{
		Name:        f.Name,
		Description: f.Description,
		Duration:    f.Duration,
		Price:       f.Price,
	}
}

var serviceFormFlashes = flashes{
	httperr.CodeMissingFields: warning("Completa los campos obligatorios."),
	httperr.CodeValidation:    warning("La duración y el precio deben ser números válidos."),
	httperr.CodeTooLong:       warning("El nombre o la descripción son demasiado largos."),
}

var serviceDeleteFlashes = flashes{
	httperr.CodeHasAppointments: warning("No puedes eliminar un servicio con citas registradas. Desactívalo."),
}

// --------- Handlers ---------

func (h *AdminServiceHandler) List(c *gin.Context) {
	services, err := h.services.List(c.Request.Context())
	if err != nil {
		h.render.Fail(c, err, "/", nil)
		return
	}

	h.render.HTML(c, http.StatusOK, "admin_services", gin.H{"Services": services})
}

func (h *AdminServiceHandler) CreatePage(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "admin_service_form", gin.H{
		"Action": "/admin/services/create",
	})
}

func (h *AdminServiceHandler) Create(c *gin.Context) {
	var form ServiceForm
	_ = c.ShouldBind(&form)

	if _, err := h.services.Create(c.Request.Context(), currentUserID(c), form.input()); err != nil {
		h.render.Fail(c, err, "/admin/services/create", serviceFormFlashes)
		return
	}

	h.render.Redirect(c, "/admin/services", session.FlashSuccess, "Servicio creado correctamente")
}

func (h *AdminServiceHandler) EditPage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.render.NotFound(c)
		return
	}

	service, err := h.services.Get(c.Request.Context(), id)
	if err != nil {
		h.render.Fail(c, err, "/admin/services", nil)
		return
	}

	h.render.HTML(c, http.StatusOK, "admin_service_form", gin.H{
		"Action":  fmt.Sprintf("/admin/services/edit/%d", service.ID),
		"Service": service,
	})
}

func (h *AdminServiceHandler) Edit(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.render.NotFound(c)
		return
	}

	var form ServiceForm
	_ = c.ShouldBind(&form)

	if _, err := h.services.Update(c.Request.Context(), currentUserID(c), id, form.input()); err != nil {
		h.render.Fail(c, err, fmt.Sprintf("/admin/services/edit/%d", id), serviceFormFlashes)
		return
	}

	h.render.Redirect(c, "/admin/services", session.FlashSuccess, "Servicio actualizado")
}

func (h *AdminServiceHandler) Toggle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.render.NotFound(c)
		return
	}

	if _, err := h.services.Toggle(c.Request.Context(), currentUserID(c), id); err != nil {
		h.render.Fail(c, err, "/admin/services", nil)
		return
	}

	h.render.Redirect(c, "/admin/services", session.FlashInfo, "Estado actualizado")
}

func (h *AdminServiceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.render.NotFound(c)
		return
	}

	if err := h.services.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		h.render.Fail(c, err, "/admin/services", serviceDeleteFlashes)
		return
	}

	h.render.Redirect(c, "/admin/services", session.FlashSuccess, "Servicio eliminado")
}
