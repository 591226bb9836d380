package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"studio-booking/internal/domain/admin"
	"studio-booking/internal/handler/api"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Health   *api.HealthHandler
	Auth     *api.AuthHandler
	Booking  *api.BookingHandler
	Schedule *api.ScheduleHandler
	File     *api.FileHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// outermost, so panics in any later middleware are recovered
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
	engine.MaxMultipartMemory = cfg.Storage.MaxUploadBytes
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", h.Health.Live)
	engine.GET("/health/ready", h.Health.Ready)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(admin.RoleAdmin)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodPost, Path: "/with-proof", Handler: h.Booking.CreateWithProof},
				{Method: http.MethodGet, Path: "/conflicts", Handler: h.Booking.Conflicts},
				{Method: http.MethodGet, Path: "/booked-slots", Handler: h.Booking.BookedSlots},
				{Method: http.MethodGet, Path: "/calendar/date/:date", Handler: h.Booking.CalendarDate},
				{Method: http.MethodGet, Path: "/calendar/month/:year/:month", Handler: h.Booking.CalendarMonth},
				{Method: http.MethodGet, Path: "/reference/:reference", Handler: h.Booking.GetByReference},
				{Method: http.MethodPost, Path: "/:id/payment-proof", Handler: h.Booking.AttachProof},

				{Method: http.MethodPost, Path: "/manual", Handler: h.Booking.CreateManual, Mw: adminOnly},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List, Mw: adminOnly},
				{Method: http.MethodGet, Path: "/pending", Handler: h.Booking.ListPending, Mw: adminOnly},
				{Method: http.MethodGet, Path: "/email/:email", Handler: h.Booking.ListByEmail, Mw: adminOnly},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Booking.UpdateDetails, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id/time-range", Handler: h.Booking.UpdateTimeRange, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id/approve", Handler: h.Booking.Approve, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id/reject", Handler: h.Booking.Reject, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id/status", Handler: h.Booking.SetStatus, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Delete, Mw: adminOnly},
			})
		}

		payments := apiGroup.Group("/payments")
		addRoutes(payments, []route{
			{Method: http.MethodGet, Path: "/orphans", Handler: h.Booking.OrphanedPayments, Mw: adminOnly},
		})

		schedules := apiGroup.Group("/schedules/unavailable")
		addRoutes(schedules, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Schedule.Replace, Mw: adminOnly},
			{Method: http.MethodGet, Path: "/:date", Handler: h.Schedule.ByDate},
			{Method: http.MethodGet, Path: "/month/:year/:month", Handler: h.Schedule.ByMonth},
		})

		apiGroup.GET("/files/view/:ref", h.File.View)
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		chain := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		chain = append(chain, r.Mw...)
		g.Handle(r.Method, r.Path, append(chain, r.Handler)...)
	}
}
