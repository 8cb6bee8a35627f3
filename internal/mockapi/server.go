package mockapi

import (
	"github.com/gin-gonic/gin"

	"github.com/wadoud17/maktabati-pos/internal/config"
	"github.com/wadoud17/maktabati-pos/pkg/utils"
)

// Setup creates the Gin router for the development backend and registers
// the routes the client consumes.
func Setup(cfg *config.Config, store *Store) *gin.Engine {
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	handlers := NewHandlers(store, jwtManager)

	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	api := router.Group("/api")
	{
		signin := api.Group("/Auth")
		signin.Use(NewIPRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Duration))
		signin.POST("/signin", handlers.SignIn)

		protected := api.Group("")
		protected.Use(AuthMiddleware(jwtManager))
		protected.GET("/produits", handlers.ListProducts)
		protected.POST("/produits", handlers.CreateProduct)
		protected.GET("/clients", handlers.ListClients)
		protected.GET("/analytics", handlers.Analytics)
	}

	return router
}
