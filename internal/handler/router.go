package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"oasis-backend/internal/handler/api"
	"oasis-backend/internal/handler/middleware"
	"oasis-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	tabHandler *api.TabHandler,
	walletHandler *api.WalletHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, bookingHandler, tabHandler, walletHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	tabHandler *api.TabHandler,
	walletHandler *api.WalletHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodGet, Path: "/check", Handler: bookingHandler.CheckConflict},
				{Method: http.MethodPut, Path: "/:id", Handler: bookingHandler.RescheduleBooking},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.CancelBooking},
			})
		}

		tab := apiGroup.Group("/tab")
		tab.Use(authMiddleware.RequireAuth())
		{
			addRoutes(tab, []route{
				{Method: http.MethodPost, Path: "/open", Handler: tabHandler.OpenTab},
				{Method: http.MethodPost, Path: "/add", Handler: tabHandler.AddItem},
				{Method: http.MethodPost, Path: "/close", Handler: tabHandler.CloseTab},
				{Method: http.MethodGet, Path: "", Handler: tabHandler.GetOpenTab},
				{Method: http.MethodGet, Path: "/status/:id", Handler: tabHandler.GetTabStatus},
				{Method: http.MethodGet, Path: "/history", Handler: tabHandler.TabHistory},
			})
		}

		wallet := apiGroup.Group("/wallet")
		wallet.Use(authMiddleware.RequireAuth())
		{
			addRoutes(wallet, []route{
				{Method: http.MethodGet, Path: "", Handler: walletHandler.GetBalance},
				{Method: http.MethodPost, Path: "/topup", Handler: walletHandler.TopUp},
				{Method: http.MethodGet, Path: "/history", Handler: walletHandler.History},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
