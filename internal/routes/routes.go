package routes

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/luxstyle-booking/internal/audit"
	"github.com/BruksfildServices01/luxstyle-booking/internal/config"
	"github.com/BruksfildServices01/luxstyle-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/luxstyle-booking/internal/infra/repository"
	"github.com/BruksfildServices01/luxstyle-booking/internal/middleware"
	"github.com/BruksfildServices01/luxstyle-booking/internal/session"
	"github.com/BruksfildServices01/luxstyle-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/luxstyle-booking/internal/usecase/appointment"
	ucAuth "github.com/BruksfildServices01/luxstyle-booking/internal/usecase/auth"
	ucCatalog "github.com/BruksfildServices01/luxstyle-booking/internal/usecase/catalog"
	"github.com/BruksfildServices01/luxstyle-booking/internal/web"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	revoker session.Revoker,
	auditLogger *audit.Logger,
	auditDispatcher *audit.Dispatcher,
) {

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)
	accountRepo := infraRepo.NewAccountGormRepository(db)

	sessions := session.NewManager(cfg.SecretKey, cfg.SessionTTL, cfg.SecureCookies, revoker)
	flash := session.NewFlashStore(cfg.SecretKey, cfg.SecureCookies)

	r.SetHTMLTemplate(template.Must(web.Templates(loc)))

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.LoadIdentity(sessions))

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	registerUC := ucAuth.NewRegister(accountRepo, auditDispatcher)
	loginUC := ucAuth.NewLogin(accountRepo, auditDispatcher)

	servicesUC := ucCatalog.NewServices(catalogRepo, auditDispatcher)
	barbersUC := ucCatalog.NewBarbers(catalogRepo, auditDispatcher)

	bookUC := ucAppointment.NewBookAppointment(appointmentRepo, auditDispatcher, loc)
	cancelUC := ucAppointment.NewCancelOwnAppointment(appointmentRepo, auditDispatcher)
	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(appointmentRepo, auditDispatcher)
	listAllUC := ucAppointment.NewListAppointments(appointmentRepo, loc)
	listMineUC := ucAppointment.NewListClientAppointments(appointmentRepo, loc)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	render := handlers.NewRenderer(flash)

	publicHandler := handlers.NewPublicHandler(servicesUC, render)
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, sessions, flash, render)
	bookingHandler := handlers.NewBookingHandler(bookUC, cancelUC, listMineUC, servicesUC, barbersUC, render)

	adminAppointmentHandler := handlers.NewAdminAppointmentHandler(listAllUC, updateStatusUC, render)
	adminServiceHandler := handlers.NewAdminServiceHandler(servicesUC, render)
	adminBarberHandler := handlers.NewAdminBarberHandler(barbersUC, render)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger, loc, render)

	// ======================================================
	// 🌍 PÚBLICO
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", publicHandler.Index)
	r.GET("/services", publicHandler.Services)

	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	r.NoRoute(publicHandler.NotFound)

	// ======================================================
	// 🔐 CLIENTE
	// ======================================================
	book := r.Group("/book", middleware.RequireUser(flash, "Debes iniciar sesión para reservar una cita."))
	{
		book.GET("", bookingHandler.BookPage)
		book.POST("", bookingHandler.Book)
	}

	r.GET("/mis-citas",
		middleware.RequireUser(flash, "Debes iniciar sesión para ver tus citas."),
		bookingHandler.MyAppointments,
	)
	r.GET("/mis-citas/cancel/:id",
		middleware.RequireUser(flash, "Debes iniciar sesión."),
		bookingHandler.Cancel,
	)

	// ======================================================
	// 🔐 ADMIN
	// ======================================================
	admin := r.Group("/admin", middleware.RequireAdmin(flash))
	{
		admin.GET("/appointments", adminAppointmentHandler.List)
		admin.GET("/appointment/:id/:status", adminAppointmentHandler.SetStatus)

		admin.GET("/services", adminServiceHandler.List)
		admin.GET("/services/create", adminServiceHandler.CreatePage)
		admin.POST("/services/create", adminServiceHandler.Create)
		admin.GET("/services/edit/:id", adminServiceHandler.EditPage)
		admin.POST("/services/edit/:id", adminServiceHandler.Edit)
		admin.GET("/services/toggle/:id", adminServiceHandler.Toggle)
		admin.GET("/services/delete/:id", adminServiceHandler.Delete)

		admin.GET("/barbers", adminBarberHandler.List)
		admin.GET("/barbers/add", adminBarberHandler.AddPage)
		admin.POST("/barbers/add", adminBarberHandler.Add)
		admin.GET("/barbers/edit/:id", adminBarberHandler.EditPage)
		admin.POST("/barbers/edit/:id", adminBarberHandler.Edit)
		admin.GET("/barbers/toggle/:id", adminBarberHandler.Toggle)
		admin.GET("/barbers/delete/:id", adminBarberHandler.Delete)

		admin.GET("/audit-logs", auditLogsHandler.List)
	}
}
