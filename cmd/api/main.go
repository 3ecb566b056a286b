package main

import (
	"context"
	"errors"
	"log"

	"techhive-users/config"
	"techhive-users/internal/domain/user"
	"techhive-users/internal/events"
	"techhive-users/internal/handler"
	"techhive-users/internal/redis"
	"techhive-users/internal/repository"
	"techhive-users/internal/server"
	"techhive-users/internal/services"
	"techhive-users/internal/websocket"
	"techhive-users/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	l := logger.New(cfg.LogMode)
	logger.SetGlobalLogger(l)
	defer l.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var seed []user.User
	if cfg.SeedUsers {
		seed = []user.User{
			{ID: 1, Name: "Alice", Email: "alice@techhive.com"},
			{ID: 2, Name: "Bob", Email: "bob@techhive.com"},
		}
	}
	userRepo := repository.NewUserRepository(seed...)

	hub := websocket.NewHub()
	go hub.Run(ctx)

	var (
		publisher events.Publisher = websocket.NewHubPublisher(hub)
		ping      handler.PingFunc
	)
	if cfg.RedisEnabled() {
		client := redis.NewClient(redis.Config{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()

		if err := redis.Ping(ctx, client); err != nil {
			l.Warnf("Redis at %s:%s is not reachable yet: %v", cfg.RedisHost, cfg.RedisPort, err)
		}

		// every instance publishes to Redis and relays the channel into its own hub
		publisher = redis.NewPublisher(client, cfg.EventsChannel)
		bridge := websocket.NewRedisBridge(redis.NewSubscriber(client), hub)
		go func() {
			if err := bridge.Run(ctx, []string{cfg.EventsChannel}); err != nil && !errors.Is(err, context.Canceled) {
				l.Errorf("Event bridge stopped: %v", err)
			}
		}()
		ping = func(ctx context.Context) error { return redis.Ping(ctx, client) }
	}

	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry())
	userService := services.NewUserService(userRepo, publisher, l)

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Users:  handler.NewUserHandler(userService),
		Health: handler.NewHealthHandler(userRepo, ping),
		Events: websocket.NewHandler(hub, l),
	}, tokenService)

	if err := srv.Start(ctx); err != nil {
		l.Errorf("Server exited: %v", err)
	}
}
