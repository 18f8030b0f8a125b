package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront-api/internal/handler/api"
	"storefront-api/internal/handler/middleware"
	"storefront-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Session  *api.SessionHandler
	Cart     *api.CartHandler
	Wishlist *api.ShortlistHandler
	Compare  *api.ShortlistHandler
	Checkout *api.CheckoutHandler
	Webhook  *api.WebhookHandler
	Catalog  *api.CatalogHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, sessionMiddleware *middleware.SessionMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, handlers, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, sessionMiddleware *middleware.SessionMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/session", Handler: h.Session.Create},
			{Method: http.MethodDelete, Path: "/session", Handler: h.Session.Delete},
			{Method: http.MethodGet, Path: "/products/:handle", Handler: h.Catalog.GetProduct},
			{Method: http.MethodGet, Path: "/collections/:handle", Handler: h.Catalog.GetCollection},
		})

		webhooks := apiGroup.Group("/webhooks")
		webhooks.Use(middleware.VerifyWebhookSignature(cfg.Webhook))
		{
			addRoutes(webhooks, []route{
				{Method: http.MethodPost, Path: "/orders", Handler: h.Webhook.ReceiveOrder},
			})
		}

		sessionScoped := apiGroup.Group("")
		sessionScoped.Use(sessionMiddleware.RequireSession())
		{
			addRoutes(sessionScoped, []route{
				{Method: http.MethodGet, Path: "/cart", Handler: h.Cart.Get},
				{Method: http.MethodPost, Path: "/cart", Handler: h.Cart.Add},
				{Method: http.MethodDelete, Path: "/cart", Handler: h.Cart.Clear},
				{Method: http.MethodPatch, Path: "/cart/items/:variantId", Handler: h.Cart.Update},
				{Method: http.MethodDelete, Path: "/cart/items/:variantId", Handler: h.Cart.Remove},

				{Method: http.MethodGet, Path: "/wishlist", Handler: h.Wishlist.Get},
				{Method: http.MethodPost, Path: "/wishlist", Handler: h.Wishlist.Add},
				{Method: http.MethodDelete, Path: "/wishlist/:productId", Handler: h.Wishlist.Remove},

				{Method: http.MethodGet, Path: "/compare", Handler: h.Compare.Get},
				{Method: http.MethodPost, Path: "/compare", Handler: h.Compare.Add},
				{Method: http.MethodDelete, Path: "/compare/:productId", Handler: h.Compare.Remove},

				{Method: http.MethodPost, Path: "/checkout", Handler: h.Checkout.Create},
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
