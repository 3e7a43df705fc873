package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/luxstyle-booking/internal/httperr"
	"github.com/BruksfildServices01/luxstyle-booking/internal/session"
	ucAuth "github.com/BruksfildServices01/luxstyle-booking/internal/usecase/auth"
)

type AuthHandler struct {
	register *ucAuth.Register
	login    *ucAuth.Login
	sessions *session.Manager
	flash    *session.FlashStore
	render   *Renderer
}

func NewAuthHandler(
	register *ucAuth.Register,
	login *ucAuth.Login,
	sessions *session.Manager,
	flash *session.FlashStore,
	render *Renderer,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		sessions: sessions,
		flash:    flash,
		render:   render,
	}
}

// --------- Requests ---------

type CredentialsForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

var registerFlashes = flashes{
	httperr.CodeMissingCredentials: warning("Todos los campos son obligatorios."),
	httperr.CodeUsernameTooShort:   warning("El usuario debe tener al menos 3 caracteres."),
	httperr.CodeUsernameTooLong:    warning("El usuario no puede superar los 80 caracteres."),
	httperr.CodePasswordTooShort:   warning("La contraseña debe tener al menos 6 caracteres."),
	httperr.CodeUsernameTaken:      danger("Ese usuario ya existe."),
}

var loginFlashes = flashes{
	httperr.CodeMissingCredentials: warning("Completa todos los campos."),
	httperr.CodeInvalidCredentials: danger("Credenciales incorrectas."),
}

// --------- Handlers ---------

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "register", nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form CredentialsForm
	_ = c.ShouldBind(&form)

	_, err := h.register.Execute(c.Request.Context(), ucAuth.RegisterInput{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		h.render.Fail(c, err, "/register", registerFlashes)
		return
	}

	h.render.Redirect(c, "/login", session.FlashSuccess, "Registro exitoso.")
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "login", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form CredentialsForm
	_ = c.ShouldBind(&form)

	user, err := h.login.Execute(c.Request.Context(), ucAuth.LoginInput{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		h.render.Fail(c, err, "/login", loginFlashes)
		return
	}

	if _, err := h.sessions.Login(c, user); err != nil {
		h.render.Fail(c, err, "/login", nil)
		return
	}

	h.render.Redirect(c, "/", session.FlashSuccess, "Bienvenido "+user.Username)
}

// Logout always ends in a clean, anonymous session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c); err != nil {
		zap.L().Warn("session revoke failed", zap.Error(err))
	}

	if err := h.flash.Reset(c, session.FlashInfo, "Sesión cerrada."); err != nil {
		zap.L().Warn("flash not saved", zap.Error(err))
	}
	c.Redirect(http.StatusFound, "/")
}
