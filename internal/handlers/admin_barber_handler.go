package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/luxstyle-booking/internal/httperr"
	"github.com/BruksfildServices01/luxstyle-booking/internal/session"
	ucCatalog "github.com/BruksfildServices01/luxstyle-booking/internal/usecase/catalog"
)

type AdminBarberHandler struct {
	barbers *ucCatalog.Barbers
	render  *Renderer
}

func NewAdminBarberHandler(barbers *ucCatalog.Barbers, render *Renderer) *AdminBarberHandler {
	return &AdminBarberHandler{barbers: barbers, render: render}
}

type BarberForm struct {
	Name      string `form:"name"`
	Specialty string `form:"specialty"`
}

func (f BarberForm) input() ucCatalog.BarberInput {
	return ucCatalog.BarberInput{Name: f.Name, Specialty: f.Specialty}
}

var barberFormFlashes = flashes{
	httperr.CodeMissingFields: warning("El nombre es obligatorio"),
	httperr.CodeTooLong:       warning("El nombre y la especialidad admiten hasta 120 caracteres."),
}

var barberDeleteFlashes = flashes{
	httperr.CodeHasAppointments: warning("No puedes eliminar un barbero con citas registradas."),
}

func (h *AdminBarberHandler) List(c *gin.Context) {
	barbers, err := h.barbers.List(c.Request.Context())
	if err != nil {
		h.render.Fail(c, err, "/", nil)
		return
	}

	h.render.HTML(c, http.StatusOK, "admin_barbers", gin.H{"Barbers": barbers})
}

func (h *AdminBarberHandler) AddPage(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "admin_barber_form", gin.H{
		"Action": "/admin/barbers/add",
	})
}

func (h *AdminBarberHandler) Add(c *gin.Context) {
	var form BarberForm
	_ = c.ShouldBind(&form)

	if _, err := h.barbers.Create(c.Request.Context(), currentUserID(c), form.input()); err != nil {
		h.render.Fail(c, err, "/admin/barbers/add", barberFormFlashes)
		return
	}

	h.render.Redirect(c, "/admin/barbers", session.FlashSuccess, "Barbero agregado")
}

func (h *AdminBarberHandler) EditPage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.render.NotFound(c)
		return
	}

	barber, err := h.barbers.Get(c.Request.Context(), id)
	if err != nil {
		h.render.Fail(c, err, "/admin/barbers", nil)
		return
	}

	h.render.HTML(c, http.StatusOK, "admin_barber_form", gin.H{
		"Action": fmt.Sprintf("/admin/barbers/edit/%d", barber.ID),
		"Barber": barber,
	})
}

func (h *AdminBarberHandler) Edit(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.render.NotFound(c)
		return
	}

	var form BarberForm
	_ = c.ShouldBind(&form)

	if _, err := h.barbers.Update(c.Request.Context(), currentUserID(c), id, form.input()); err != nil {
		h.render.Fail(c, err, fmt.Sprintf("/admin/barbers/edit/%d", id), barberFormFlashes)
		return
	}

	h.render.Redirect(c, "/admin/barbers", session.FlashSuccess, "Barbero actualizado")
}

func (h *AdminBarberHandler) Toggle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.render.NotFound(c)
		return
	}

	if _, err := h.barbers.Toggle(c.Request.Context(), currentUserID(c), id); err != nil {
		h.render.Fail(c, err, "/admin/barbers", nil)
		return
	}

	h.render.Redirect(c, "/admin/barbers", session.FlashInfo, "Estado actualizado")
}

func (h *AdminBarberHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.render.NotFound(c)
		return
	}

	if err := h.barbers.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		h.render.Fail(c, err, "/admin/barbers", barberDeleteFlashes)
		return
	}

	h.render.Redirect(c, "/admin/barbers", session.FlashSuccess, "Barbero eliminado")
}
