package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/secure"
	limits "github.com/gin-contrib/size"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spiceroutes/spiceroutes-api/internal/config"
	"github.com/spiceroutes/spiceroutes-api/internal/controllers"
	"github.com/spiceroutes/spiceroutes-api/internal/middleware"
	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"github.com/spiceroutes/spiceroutes-api/internal/services"
	"github.com/spiceroutes/spiceroutes-api/internal/session"
	"gorm.io/gorm"
)

// maxBodySize caps JSON and form payloads, matching the 10mb limit the
// frontend was built against.
const maxBodySize = 10 << 20

// Deps are the process-wide resource handles. They are passed in explicitly
// so tests can substitute an in-memory database or session store.
type Deps struct {
	DB       *gorm.DB
	Sessions *session.Manager
}

// Server wires the middleware pipeline, the routers and the listener
// lifecycle together.
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	deps   Deps
}

// New builds the full request pipeline. The middleware order is a
// correctness contract: body parsing precedes handlers, session resolution
// precedes the auth gate, and the error handler wraps everything.
func New(cfg *config.Config, deps Deps) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(secure.New(secure.Config{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))
	engine.Use(gin.Logger())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(limits.RequestSizeLimiter(maxBodySize))
	engine.Use(deps.Sessions.Middleware())

	limiter := middleware.NewRateLimiter(cfg.RateLimitMax,
		time.Duration(cfg.RateLimitWindowMinutes)*time.Minute)
	engine.Use(limiter.Middleware())

	engine.Use(middleware.RequestLogger(log.StandardLogger()))
	engine.Use(middleware.ErrorHandler())

	s := &Server{cfg: cfg, engine: engine, deps: deps}
	s.setupRoutes()
	return s
}

// Engine exposes the router, mainly for httptest.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// setupRoutes mounts the public auth boundary and the authenticated route
// groups. Every protected group runs the auth gate before its router.
func (s *Server) setupRoutes() {
	api := s.engine.Group("/api")

	api.GET("/health", s.healthCheckHandler)
	api.GET("/security-check", s.securityCheckHandler)

	userService := services.NewUserService(s.deps.DB)
	authController := controllers.NewAuthController(userService, s.deps.Sessions)

	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.GET("/me", authController.Me)
	}

	spiceController := controllers.NewSpiceController(services.NewSpiceService(s.deps.DB))
	spices := api.Group("/spices", middleware.RequireAuth())
	{
		spices.GET("", spiceController.GetAllSpices)
		spices.GET("/:id", spiceController.GetSpiceByID)
		spices.POST("", spiceController.CreateSpice)
		spices.PUT("/:id", spiceController.UpdateSpice)
		spices.DELETE("/:id", spiceController.DeleteSpice)
		spices.POST("/:id/medicinal-properties", spiceController.AddMedicinalProperty)
		spices.POST("/:id/nutritional-info", spiceController.AddNutritionalInfo)
	}

	articleController := controllers.NewArticleController(services.NewArticleService(s.deps.DB))
	articles := api.Group("/articles", middleware.RequireAuth())
	{
		articles.GET("", articleController.GetAllArticles)
		articles.GET("/:id", articleController.GetArticle)
		articles.POST("", articleController.CreateArticle)
		articles.PUT("/:id", articleController.UpdateArticle)
		articles.DELETE("/:id", articleController.DeleteArticle)
	}

	collectionController := controllers.NewCollectionController(services.NewCollectionService(s.deps.DB))
	collections := api.Group("/collections", middleware.RequireAuth())
	{
		collections.GET("", collectionController.GetCollections)
		collections.GET("/:id", collectionController.GetCollection)
		collections.POST("", collectionController.CreateCollection)
		collections.DELETE("/:id", collectionController.DeleteCollection)
		collections.POST("/:id/recipes", collectionController.AddRecipe)
		collections.DELETE("/:id/recipes/:recipeId", collectionController.RemoveRecipe)
	}

	searchController := controllers.NewSearchController(services.NewSearchService(s.deps.DB))
	search := api.Group("/search", middleware.RequireAuth())
	{
		search.GET("", searchController.Search)
	}

	commentController := controllers.NewCommentController(services.NewCommentService(s.deps.DB))
	comments := api.Group("/comments", middleware.RequireAuth())
	{
		comments.GET("", commentController.GetComments)
		comments.POST("", commentController.CreateComment)
		comments.DELETE("/:id", commentController.DeleteComment)
	}

	ratingController := controllers.NewRatingController(services.NewRatingService(s.deps.DB))
	ratings := api.Group("/ratings", middleware.RequireAuth())
	{
		ratings.GET("", ratingController.GetRatings)
		ratings.POST("", ratingController.CreateRating)
		ratings.DELETE("/:id", ratingController.DeleteRating)
	}

	userController := controllers.NewUserController(userService)
	users := api.Group("/users", middleware.RequireAuth())
	{
		users.GET("/:id", userController.GetUser)
		users.PUT("/me", userController.UpdateMe)
		users.DELETE("/me", userController.DeactivateMe)
	}

	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound,
			models.NewAPIError(models.ErrNotFound, "Route not found"))
	})
}

// healthCheckHandler reports liveness. It never touches the stores, so it
// keeps answering 200 even when the cache store is down.
func (s *Server) healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   s.cfg.Version,
	})
}

// securityCheckHandler is a diagnostic endpoint echoing the request headers
// and the security headers the pipeline attached to the response.
func (s *Server) securityCheckHandler(c *gin.Context) {
	header := c.Writer.Header()
	c.JSON(http.StatusOK, gin.H{
		"headers": c.Request.Header,
		"security": gin.H{
			"contentSecurityPolicy":   header.Get("Content-Security-Policy"),
			"xFrameOptions":           header.Get("X-Frame-Options"),
			"xContentTypeOptions":     header.Get("X-Content-Type-Options"),
			"strictTransportSecurity": header.Get("Strict-Transport-Security"),
		},
	})
}

// Run binds the listener and serves until ctx is cancelled, then drains
// in-flight requests. A bind failure is returned immediately so the caller
// can close resources and exit non-zero.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Port),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Server running on port %d in %s mode", s.cfg.Port, s.cfg.Environment)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("Shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}
