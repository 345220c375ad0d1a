package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-engine/internal/handler/api"
	"storefront-engine/internal/handler/middleware"
	"storefront-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Catalog  *api.CatalogHandler
	Cart     *api.CartHandler
	Checkout *api.CheckoutHandler
	Session  *api.SessionHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, sessionMiddleware *middleware.SessionMiddleware) {
	setupMiddleware(engine, cfg, logger, sessionMiddleware)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, sessionMiddleware *middleware.SessionMiddleware) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.Use(sessionMiddleware.Attach())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		session := apiGroup.Group("/session")
		addRoutes(session, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Session.Get},
			{Method: http.MethodPut, Path: "/token", Handler: h.Session.SetToken},
			{Method: http.MethodDelete, Path: "/token", Handler: h.Session.ClearToken},
		})

		catalog := apiGroup.Group("/catalog")
		addRoutes(catalog, []route{
			{Method: http.MethodPost, Path: "/criteria", Handler: h.Catalog.SubmitCriteria},
			{Method: http.MethodPost, Path: "/refresh", Handler: h.Catalog.Refresh},
			{Method: http.MethodGet, Path: "/results", Handler: h.Catalog.Latest},
			{Method: http.MethodGet, Path: "/results/stream", Handler: h.Catalog.Stream},
			{Method: http.MethodGet, Path: "/categories", Handler: h.Catalog.Categories},
		})

		cart := apiGroup.Group("/cart")
		addRoutes(cart, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
			{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear},
			{Method: http.MethodPost, Path: "/lines", Handler: h.Cart.AddLine},
			{Method: http.MethodPut, Path: "/lines/:itemId", Handler: h.Cart.SetQuantity},
			{Method: http.MethodDelete, Path: "/lines/:itemId", Handler: h.Cart.RemoveLine},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/checkout", Handler: h.Checkout.Checkout},
		})
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
