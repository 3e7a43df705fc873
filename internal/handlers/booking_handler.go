package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/luxstyle-booking/internal/httperr"
	"github.com/BruksfildServices01/luxstyle-booking/internal/session"
	ucAppointment "github.com/BruksfildServices01/luxstyle-booking/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/luxstyle-booking/internal/usecase/catalog"
)

// BookingHandler serves the client side: booking form and "mis citas".
type BookingHandler struct {
	book     *ucAppointment.BookAppointment
	cancel   *ucAppointment.CancelOwnAppointment
	listMine *ucAppointment.ListClientAppointments
	services *ucCatalog.Services
	barbers  *ucCatalog.Barbers
	render   *Renderer
}

func NewBookingHandler(
	book *ucAppointment.BookAppointment,
	cancel *ucAppointment.CancelOwnAppointment,
	listMine *ucAppointment.ListClientAppointments,
	services *ucCatalog.Services,
	barbers *ucCatalog.Barbers,
	render *Renderer,
) *BookingHandler {
	return &BookingHandler{
		book:     book,
		cancel:   cancel,
		listMine: listMine,
		services: services,
		barbers:  barbers,
		render:   render,
	}
}

// --------- Requests ---------

type BookingForm struct {
	FullName  string `form:"full_name"`
	Phone     string `form:"phone"`
	Email     string `form:"email"`
	ServiceID string `form:"service_id"`
	BarberID  string `form:"barber_id"`
	Date      string `form:"date"`
	Time      string `form:"time"`
	Notes     string `form:"notes"`
}

var bookingFlashes = flashes{
	httperr.CodeMissingFields:   warning("Por favor completa todos los campos obligatorios."),
	httperr.CodeTooLong:         warning("Algún campo es demasiado largo."),
	httperr.CodeNotFound:        danger("Servicio o profesional no válido."),
	httperr.CodeInvalidDateTime: danger("Fecha u hora inválida."),
	httperr.CodePastDate:        warning("No puedes reservar una cita en el pasado."),
	httperr.CodeSlotConflict:    warning("Ese horario ya está ocupado con ese profesional. Elige otra hora."),
}

var cancelFlashes = flashes{
	httperr.CodeNoClientProfile:   danger("No tienes permiso para cancelar esta cita."),
	httperr.CodeNotOwner:          danger("No puedes cancelar una cita que no es tuya."),
	httperr.CodeAppointmentInPast: warning("No puedes cancelar una cita que ya pasó."),
}

// --------- Handlers ---------

// BookPage lists only active services and barbers.
func (h *BookingHandler) BookPage(c *gin.Context) {
	ctx := c.Request.Context()

	services, err := h.services.ListActive(ctx)
	if err != nil {
		h.render.Fail(c, err, "/", nil)
		return
	}
	barbers, err := h.barbers.ListActive(ctx)
	if err != nil {
		h.render.Fail(c, err, "/", nil)
		return
	}

	h.render.HTML(c, http.StatusOK, "book", gin.H{
		"Services": services,
		"Barbers":  barbers,
	})
}

func (h *BookingHandler) Book(c *gin.Context) {
	var form BookingForm
	_ = c.ShouldBind(&form)

	_, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		UserID:    currentUserID(c),
		FullName:  form.FullName,
		Phone:     form.Phone,
		Email:     form.Email,
		ServiceID: form.ServiceID,
		BarberID:  form.BarberID,
		Date:      form.Date,
		Time:      form.Time,
		Notes:     form.Notes,
	})
	if err != nil {
		h.render.Fail(c, err, "/book", bookingFlashes)
		return
	}

	h.render.Redirect(c, "/", session.FlashSuccess, "Tu cita ha sido registrada con éxito.")
}

func (h *BookingHandler) MyAppointments(c *gin.Context) {
	appointments, err := h.listMine.Execute(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.render.Fail(c, err, "/", nil)
		return
	}

	h.render.HTML(c, http.StatusOK, "my_appointments", gin.H{
		"Appointments": appointments,
	})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.render.NotFound(c)
		return
	}

	if _, err := h.cancel.Execute(c.Request.Context(), currentUserID(c), id); err != nil {
		h.render.Fail(c, err, "/mis-citas", cancelFlashes)
		return
	}

	h.render.Redirect(c, "/mis-citas", session.FlashSuccess, "Cita cancelada correctamente.")
}
