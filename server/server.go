package server

import (
	"net/http"

	"bookstore-api/confs"
	"bookstore-api/db"
	"bookstore-api/docs"
	"bookstore-api/handlers"
	httpHandler "bookstore-api/handlers/http"
	"bookstore-api/middleware"
	"bookstore-api/repositories"
	"bookstore-api/usecases"
	"bookstore-api/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
	cfg *confs.Config
}

func NewServer(database db.Database, cfg *confs.Config) *Server {
	if cfg.Env == confs.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	return &Server{
		app: gin.Default(),
		db:  database,
		cfg: cfg,
	}
}

func (s *Server) Start() error {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	s.app.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":     "Bookstore API is running",
			"environment": s.cfg.Env,
		})
	})

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})

	// API documentation
	s.app.GET("/api-docs", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", docs.OpenAPI)
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	bookRepo := repositories.NewBookPgRepository(s.db)

	// Initialize use cases
	authUseCase := usecases.NewAuthUseCase(userRepo, []byte(s.cfg.JWTSecret), s.cfg.JWTTTL)
	bookUseCase := usecases.NewBookUseCase(bookRepo)

	// WebSocket manager for the catalog change feed
	manager := ws.NewManager()
	eventsHandler := handlers.NewEventsHandler(manager)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUseCase)
	bookHandler := httpHandler.NewBookHandler(bookUseCase, manager)

	authRequired := middleware.RequireAuth(userRepo, []byte(s.cfg.JWTSecret))

	// Setup API routes
	api := s.app.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/signup", authHandler.Signup)
			users.POST("/login", authHandler.Login)
		}

		// Book routes require a valid bearer token
		books := api.Group("/books")
		books.Use(authRequired)
		{
			books.POST("", bookHandler.CreateBook)
			books.GET("", bookHandler.GetAllBooks)
			books.GET("/:id", bookHandler.GetBook)
			books.PUT("/:id", bookHandler.UpdateBook)
			books.DELETE("/:id", bookHandler.DeleteBook)
		}

		api.GET("/events/subscribers", authRequired, eventsHandler.Subscribers)
	}

	s.app.GET("/ws", eventsHandler.HandleEventsWS)

	return s.app.Run("0.0.0.0:" + s.cfg.Port)
}
