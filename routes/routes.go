package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"postboard/auth"
	"postboard/handlers"
	"postboard/middleware"
)

// SetupRouter assembles the Gin engine. The token service is shared between
// the login handler and the auth middleware so both see the same secret.
func SetupRouter(tokens *auth.TokenService, allowedOrigins []string) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public routes (no auth required)
	authGroup := router.Group("/auth")
	authGroup.POST("/signup", handlers.Signup)
	authGroup.POST("/login", handlers.Login)

	// Protected routes group
	posts := router.Group("/posts")
	posts.Use(middleware.JWTAuthMiddleware(tokens))
	posts.POST("/addpost", handlers.AddPost)
	posts.GET("/posts", handlers.GetPosts)
	posts.DELETE("/deletepost/:post_id", handlers.DeletePost)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error": "Endpoint not found",
			"path":  c.Request.URL.Path,
		})
	})

	return router
}
