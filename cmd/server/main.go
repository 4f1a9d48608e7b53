package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tareas-backend/internal/config"
	appdb "tareas-backend/internal/db"
	"tareas-backend/internal/handler"
	"tareas-backend/internal/httpserver"
	"tareas-backend/internal/mq"
	"tareas-backend/internal/repository"
	"tareas-backend/internal/service/auth"
	"tareas-backend/internal/service/status"
	"tareas-backend/internal/service/task"
	"tareas-backend/pkg/db"
	"tareas-backend/pkg/logger"
	redisclient "tareas-backend/pkg/redis"
)

func main() {
	// Load config
	cfg := config.Load()

	logger := logger.NewLogger()
	defer logger.Sync()

	// Init DB
	dbConn, err := db.NewConnection(cfg.DB, logger)
	if err != nil {
		logger.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	// Bootstrap schema; failure aborts startup
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := appdb.InitSchema(ctx, dbConn, logger); err != nil {
		cancel()
		logger.Fatal("Schema bootstrap failed", zap.Error(err))
	}
	cancel()

	// Optional status cache
	var statusCache status.Cache
	if cfg.Redis.Addr != "" {
		rdb := redisclient.NewClient(cfg.Redis)
		defer rdb.Close()
		statusCache = status.NewRedisCache(rdb)
		logger.Info("Status cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	// Optional event publisher
	var eventPublisher task.EventPublisher
	if cfg.MQ.URL != "" {
		publisher, err := mq.NewPublisher(cfg.MQ.URL)
		if err != nil {
			logger.Fatal("failed to init publisher", zap.Error(err))
		}
		defer publisher.Close()
		eventPublisher = publisher
		logger.Info("Event publisher enabled")
	}

	// Init Repositories
	tareaRepo := repository.NewTareaRepository(dbConn, logger)
	notaRepo := repository.NewNotaRepository(dbConn, logger)
	estadoRepo := repository.NewEstadoRepository(dbConn, logger)
	usuarioRepo := repository.NewUsuarioRepository(dbConn, logger)

	// Init Services
	taskService := task.NewService(tareaRepo, eventPublisher, logger)
	statusService := status.NewService(estadoRepo, statusCache, logger)
	authService := auth.NewService(usuarioRepo, cfg.JWT.Secret, logger)

	// Init Handlers
	tareaHandler := handler.NewTareaHandler(tareaRepo, taskService, logger)
	notaHandler := handler.NewNotaHandler(notaRepo, logger)
	estadoHandler := handler.NewEstadoHandler(statusService, logger)
	authHandler := handler.NewAuthHandler(authService, logger)

	// Router
	router := httpserver.NewRouter(tareaHandler, notaHandler, estadoHandler, authHandler, cfg, logger, dbConn)

	// Start server
	logger.Info("Starting tareas backend", zap.String("port", cfg.Server.Port))
	if err := router.Run(cfg.Server.Port); err != nil {
		logger.Fatal("server start failed", zap.Error(err))
	}
}
