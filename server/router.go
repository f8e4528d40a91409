package server

import (
	"ideaboard/config"
	_ "ideaboard/docs"
	"ideaboard/handler"
	"ideaboard/middleware"
	"ideaboard/services"
	"ideaboard/usecase"
	"ideaboard/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps are the services the routes are wired to.
type Deps struct {
	Users     *usecase.UserService
	Boards    *usecase.BoardService
	Ideas     *usecase.IdeaService
	Sessions  *middleware.Sessions
	Tokens    *services.TokenService
	Blacklist *services.TokenBlacklist
	DB        handler.Pinger
}

func NewRouter(cfg *config.Config, d Deps) *gin.Engine {
	utils.InitValidator()

	router := gin.New()
	router.Use(
		gin.Logger(),
		middleware.EnhancedRecoveryMiddleware(),
		middleware.RequestTracingMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.SecurityHeaders(),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	// Operational endpoints
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if d.DB != nil {
		router.GET("/healthz", func(c *gin.Context) {
			handler.HealthHandler(c, d.DB)
		})
	}

	api := router.Group("/api")
	api.Use(middleware.NoStore())
	if cfg.MaxBodyBytes > 0 {
		api.Use(middleware.RequestSizeLimiter(cfg.MaxBodyBytes))
	}
	api.Use(d.Sessions.Middleware(), middleware.BearerAuth(d.Tokens, d.Blacklist))

	// Public routes, anonymous participants included
	{
		api.POST("/register", func(c *gin.Context) {
			handler.RegistrationHandler(c, d.Users, d.Sessions)
		})
		api.POST("/login", func(c *gin.Context) {
			handler.LoginHandler(c, d.Users, d.Sessions, d.Tokens)
		})
		api.POST("/logout", func(c *gin.Context) {
			handler.LogoutHandler(c, d.Sessions, d.Blacklist)
		})
		api.GET("/session", handler.SessionHandler)

		api.GET("/board/:boardId", func(c *gin.Context) {
			handler.GetBoardHandler(c, d.Boards)
		})
		api.GET("/board/:boardId/ideas", func(c *gin.Context) {
			handler.GetBoardIdeasHandler(c, d.Boards)
		})
		api.POST("/board/:boardId/ideas", func(c *gin.Context) {
			handler.AddIdeaHandler(c, d.Boards)
		})

		api.GET("/ideas/:ideaId", func(c *gin.Context) {
			handler.GetIdeaHandler(c, d.Ideas)
		})
		api.POST("/ideas/:ideaId/upvote", func(c *gin.Context) {
			handler.UpvoteHandler(c, d.Ideas)
		})
		api.DELETE("/ideas/:ideaId/upvote", func(c *gin.Context) {
			handler.RemoveUpvoteHandler(c, d.Ideas)
		})
		api.PUT("/ideas/:ideaId/flag", func(c *gin.Context) {
			handler.FlagHandler(c, d.Ideas)
		})
	}

	// Routes that need a logged-in user
	account := api.Group("")
	account.Use(middleware.RequireUser())
	{
		account.GET("/boards", func(c *gin.Context) {
			handler.GetSavedBoardsHandler(c, d.Users)
		})
		account.PUT("/boards", func(c *gin.Context) {
			handler.SaveBoardHandler(c, d.Users)
		})
		account.DELETE("/boards/:boardId", func(c *gin.Context) {
			handler.UnsaveBoardHandler(c, d.Users)
		})

		account.POST("/board", func(c *gin.Context) {
			handler.CreateBoardHandler(c, d.Boards)
		})
		account.GET("/board", func(c *gin.Context) {
			handler.ListBoardsHandler(c, d.Boards)
		})
		account.DELETE("/board/:boardId", func(c *gin.Context) {
			handler.DeleteBoardHandler(c, d.Boards)
		})
		account.DELETE("/board/:boardId/ideas/:ideaId", func(c *gin.Context) {
			handler.RemoveIdeaHandler(c, d.Boards)
		})
	}

	return router
}
