package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/luxstyle-booking/internal/httperr"
	"github.com/BruksfildServices01/luxstyle-booking/internal/session"
	ucAppointment "github.com/BruksfildServices01/luxstyle-booking/internal/usecase/appointment"
)

type AdminAppointmentHandler struct {
	list         *ucAppointment.ListAppointments
	updateStatus *ucAppointment.UpdateAppointmentStatus
	render       *Renderer
}

func NewAdminAppointmentHandler(
	list *ucAppointment.ListAppointments,
	updateStatus *ucAppointment.UpdateAppointmentStatus,
	render *Renderer,
) *AdminAppointmentHandler {
	return &AdminAppointmentHandler{
		list:         list,
		updateStatus: updateStatus,
		render:       render,
	}
}

var statusFlashes = flashes{
	httperr.CodeInvalidStatus: warning("Estado no válido."),
	httperr.CodeSlotConflict:  warning("Ese horario ya está ocupado con ese profesional."),
}

func (h *AdminAppointmentHandler) List(c *gin.Context) {
	appointments, err := h.list.Execute(c.Request.Context())
	if err != nil {
		h.render.Fail(c, err, "/", nil)
		return
	}

	h.render.HTML(c, http.StatusOK, "admin_appointments", gin.H{
		"Appointments": appointments,
	})
}

// SetStatus stores whatever status the link carries.
func (h *AdminAppointmentHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.render.NotFound(c)
		return
	}

	_, err := h.updateStatus.Execute(
		c.Request.Context(),
		currentUserID(c),
		id,
		c.Param("status"),
	)
	if err != nil {
		h.render.Fail(c, err, "/admin/appointments", statusFlashes)
		return
	}

	h.render.Redirect(c, "/admin/appointments", session.FlashSuccess, "Estado de la cita actualizado.")
}
