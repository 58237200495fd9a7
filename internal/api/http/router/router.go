// Package router wires handlers and middleware into the gin engine.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/tradehub/tradehub-server/internal/api/http/handler"
	"github.com/tradehub/tradehub-server/internal/api/http/middleware"
	"github.com/tradehub/tradehub-server/internal/logger"
	"github.com/tradehub/tradehub-server/internal/model"
	"github.com/tradehub/tradehub-server/internal/service"
)

// Router registers the admin HTTP surface.
type Router struct {
	invoiceService *service.Invoice
	userService    *service.User
	authService    *service.Auth
	tokenManager   model.TokenManager
	pageCache      middleware.Cache
	db             handler.Pinger
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	invoiceService *service.Invoice,
	userService *service.User,
	authService *service.Auth,
	tokenManager model.TokenManager,
	pageCache middleware.Cache,
	db handler.Pinger,
	logger *logger.Logger,
) *Router {
	return &Router{
		invoiceService: invoiceService,
		userService:    userService,
		authService:    authService,
		tokenManager:   tokenManager,
		pageCache:      pageCache,
		db:             db,
		logger:         logger,
	}
}

// Register sets up middleware and routes and returns the engine.
func (r *Router) Register() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	logging := middleware.NewLogging(r.logger)
	engine.Use(logging.Handle)

	authenticate := middleware.NewAuthenticate(r.tokenManager, r.logger)
	pageCache := middleware.NewPageCache(r.pageCache, r.logger)

	invoiceHandler := handler.NewInvoice(r.invoiceService, r.logger)
	userHandler := handler.NewUser(r.userService, r.logger)
	authHandler := handler.NewAuth(r.authService, r.logger)
	pageHandler := handler.NewPage()
	healthHandler := handler.NewHealth(r.db)

	engine.GET("/healthz", healthHandler.Handle)
	engine.POST("/login", authHandler.Login)
	engine.GET("/adduser", pageHandler.AddUser)
	engine.POST("/adduser", userHandler.AddUser)

	dashboard := engine.Group("/dashboard", authenticate.Handle)
	dashboard.GET("/invoices", pageCache.Handle, invoiceHandler.List)
	dashboard.POST("/invoices", invoiceHandler.Create)
	dashboard.POST("/invoices/:id", invoiceHandler.Update)
	dashboard.DELETE("/invoices/:id", invoiceHandler.Delete)

	return engine
}
