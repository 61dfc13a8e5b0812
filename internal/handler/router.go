package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tavola-api/internal/handler/api"
	"tavola-api/internal/handler/middleware"
	"tavola-api/internal/pkg/config"
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
	reservationHandler *api.ReservationHandler,
	menuHandler *api.MenuHandler,
	contentHandler *api.ContentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, reservationHandler, menuHandler, contentHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	reservationHandler *api.ReservationHandler,
	menuHandler *api.MenuHandler,
	contentHandler *api.ContentHandler,
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
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		// Public surface consumed by the marketing site.
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/reservations", Handler: reservationHandler.Submit},
			{Method: http.MethodGet, Path: "/menu", Handler: menuHandler.GetMenu},
			{Method: http.MethodGet, Path: "/content", Handler: contentHandler.ListSections},
			{Method: http.MethodGet, Path: "/content/:key", Handler: contentHandler.GetSection},
			{Method: http.MethodGet, Path: "/settings", Handler: contentHandler.GetSettings},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: reservationHandler.List},
				{Method: http.MethodPost, Path: "/reservations/:id/respond", Handler: reservationHandler.Respond},

				{Method: http.MethodPost, Path: "/menu/categories", Handler: menuHandler.CreateCategory},
				{Method: http.MethodPut, Path: "/menu/categories/:id", Handler: menuHandler.UpdateCategory},
				{Method: http.MethodDelete, Path: "/menu/categories/:id", Handler: menuHandler.DeleteCategory},
				{Method: http.MethodPost, Path: "/menu/items", Handler: menuHandler.CreateItem},
				{Method: http.MethodPut, Path: "/menu/items/:id", Handler: menuHandler.UpdateItem},
				{Method: http.MethodDelete, Path: "/menu/items/:id", Handler: menuHandler.DeleteItem},

				{Method: http.MethodPut, Path: "/content/:key", Handler: contentHandler.UpsertSection},
				{Method: http.MethodPut, Path: "/settings", Handler: contentHandler.UpdateSettings},
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
