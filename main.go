package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"revista-editorial-api/config"
	"revista-editorial-api/handlers"
	"revista-editorial-api/middleware"
	"revista-editorial-api/repositories"
	"revista-editorial-api/services"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Println("Sentry init failed:", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	// Initialize database
	db := config.InitMongo()

	// Initialize repositories
	articleRepo := repositories.NewArticleRepository(db)
	editorialRepo := repositories.NewEditorialRepository(db)
	historyRepo := repositories.NewArticleHistoryRepository(db)
	authorRepo := repositories.NewAuthorRepository(db)
	staffRepo := repositories.NewStaffRepository(db)
	interactionRepo := repositories.NewInteractionRepository(db)
	pendingRepo := repositories.NewPendingRepository(db)
	volumeRepo := repositories.NewVolumeRepository(db)

	// Initialize services
	articleService := services.NewArticleService(articleRepo, editorialRepo, historyRepo, authorRepo, staffRepo, volumeRepo, interactionRepo)
	pendingService := services.NewPendingService(pendingRepo, staffRepo, articleService)
	interactionService := services.NewInteractionService(interactionRepo, articleRepo, editorialRepo, staffRepo)
	staffService := services.NewStaffService(staffRepo)
	volumeService := services.NewVolumeService(volumeRepo, staffRepo)
	authorService := services.NewAuthorService(authorRepo)
	userService := services.NewUserService(os.Getenv("USER_SERVICE_URL"))

	// Counter reconciliation job
	reconcileMinutes := 10
	if v := os.Getenv("RECONCILE_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			reconcileMinutes = n
		}
	}
	reconcile := services.NewReconcileService(articleRepo, interactionRepo, time.Duration(reconcileMinutes)*time.Minute)
	reconcile.Start()
	defer reconcile.Stop()

	// Initialize handlers
	articleHandler := handlers.NewArticleHandler(articleService, userService)
	interactionHandler := handlers.NewInteractionHandler(interactionService, userService)
	pendingHandler := handlers.NewPendingHandler(pendingService)
	staffHandler := handlers.NewStaffHandler(staffService)
	volumeHandler := handlers.NewVolumeHandler(volumeService)
	authorHandler := handlers.NewAuthorHandler(authorService, userService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (published content only)
		public := v1.Group("/public")
		{
			public.GET("/articles", articleHandler.GetPublicArticles)
			public.GET("/articles/:id", articleHandler.GetPublicArticle)
			public.GET("/articles/:id/comments", interactionHandler.ListPublicComments)
			public.POST("/articles/:id/comments", interactionHandler.CreatePublicComment)
			public.GET("/volumes", volumeHandler.List)
			public.GET("/volumes/:id", volumeHandler.Get)
			public.GET("/authors", authorHandler.List)
			public.GET("/authors/:id", authorHandler.Get)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", staffHandler.Profile)

			// Articles
			articles := protected.Group("/articles")
			{
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("", articleHandler.GetArticles)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.DELETE("/:id", articleHandler.DeleteArticle)
				articles.POST("/:id/revisions", articleHandler.ReviseContent)
				articles.PUT("/:id/status", articleHandler.UpdateStatus)
				articles.PUT("/:id/position", articleHandler.AdvancePosition)
				articles.POST("/:id/team", articleHandler.AddTeamMember)
				articles.POST("/:id/volume", articleHandler.AssignVolume)
				articles.GET("/:id/editorial", articleHandler.GetEditorial)
				articles.GET("/:id/history", articleHandler.ListHistory)
				articles.GET("/:id/history/:history_id", articleHandler.GetHistory)
				articles.GET("/:id/editorial-comments", interactionHandler.ListEditorialComments)
				articles.POST("/:id/editorial-comments", interactionHandler.CreateEditorialComment)
			}

			// Comments
			comments := protected.Group("/comments")
			{
				comments.PUT("/:comment_id", interactionHandler.UpdateComment)
				comments.DELETE("/:comment_id", interactionHandler.DeleteComment)
			}

			// Pending requests
			pending := protected.Group("/pending")
			{
				pending.POST("", pendingHandler.Create)
				pending.GET("", pendingHandler.List)
				pending.GET("/:id", pendingHandler.Get)
				pending.PUT("/:id/resolve", pendingHandler.Resolve)
			}

			// Staff
			staff := protected.Group("/staff")
			{
				staff.POST("", staffHandler.Create)
				staff.GET("", staffHandler.List)
				staff.GET("/:id", staffHandler.Get)
				staff.PUT("/:id", staffHandler.Update)
			}

			// Volumes
			volumes := protected.Group("/volumes")
			{
				volumes.POST("", volumeHandler.Create)
				volumes.PUT("/:id", volumeHandler.Update)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
