package main

import (
	"context"
	"log"

	"ideaboard/config"
	"ideaboard/middleware"
	"ideaboard/repository"
	"ideaboard/server"
	"ideaboard/services"
	"ideaboard/usecase"

	"github.com/gin-gonic/gin"
)

// @title        Idea Board API
// @version      1.0
// @description  Boards where participants collect, upvote and flag short ideas.
// @BasePath     /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token from /login.
func main() {
	if err := run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	client, err := repository.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	if err := repository.SetupIndexes(ctx, client.Database(cfg.Database.DatabaseName), cfg.Database); err != nil {
		return err
	}

	var (
		cache     *services.SessionCache
		blacklist *services.TokenBlacklist
	)
	if cfg.RedisURL != "" {
		redisClient, err := services.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: running without Redis: %v", err)
		} else {
			defer redisClient.Close()
			cache = services.NewSessionCache(redisClient)
			blacklist = services.NewTokenBlacklist(redisClient)
		}
	}

	boardRepo := repository.GetBoardRepo(client, cfg.Database)
	userRepo := repository.GetUserRepo(client, cfg.Database)
	sessionRepo := repository.GetSessionRepo(client, cfg.Database, cache)

	deps := server.Deps{
		Users:  usecase.NewUserService(userRepo, boardRepo),
		Boards: usecase.NewBoardService(boardRepo, boardRepo.Ideas),
		Ideas:  usecase.NewIdeaService(boardRepo.Ideas),
		Sessions: middleware.NewSessions(sessionRepo, middleware.SessionOptions{
			Duration:      cfg.SessionDuration,
			IdleLimit:     cfg.SessionIdleLimit,
			MaxActive:     cfg.MaxActiveSessions,
			SecureCookies: cfg.SecureCookies,
		}),
		Tokens:    services.NewTokenService(cfg.JWTSecretKey, cfg.JWTExpirationTime),
		Blacklist: blacklist,
		DB:        client,
	}

	return server.New(cfg, server.NewRouter(cfg, deps)).Run(ctx)
}
