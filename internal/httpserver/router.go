package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"tareas-backend/internal/config"
	"tareas-backend/internal/handler"
)

// requestTimeout bounds every datastore-backed request.
const requestTimeout = 5 * time.Second

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	tareaHandler *handler.TareaHandler,
	notaHandler *handler.NotaHandler,
	estadoHandler *handler.EstadoHandler,
	authHandler *handler.AuthHandler,
	cfg *config.Config,
	logger *zap.Logger,
	db *pgxpool.Pool,
) *Router {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))
	r.Use(CORSMiddleware(cfg.CORS.AllowedOrigins))

	// Health endpoints first
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(200)
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/health", func(c *gin.Context) {
		c.Status(200)
	})

	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(500, gin.H{"status": "db_not_ready", "error": err.Error()})
			return
		}

		c.JSON(200, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "API de Dashboard de Tareas funcionando"})
	})

	api := r.Group("/api/tareas")
	api.Use(RequestTimeout(requestTimeout))

	// Public reads and login
	api.GET("", tareaHandler.ListTareas)
	api.GET("/estados", estadoHandler.ListEstados)
	api.GET("/buscar/:codigo", tareaHandler.GetByCodigo)
	api.GET("/search", tareaHandler.SearchTareas)
	api.GET("/:id", tareaHandler.GetByID)
	api.GET("/:id/notas", notaHandler.ListNotas)
	api.POST("/login", authHandler.Login)

	// Mutations; a Bearer token is demanded only when auth.required is
	// set, so the default contract stays fully public.
	writes := api.Group("")
	if cfg.Auth.Required {
		writes.Use(AuthMiddleware(cfg.JWT.Secret))
	}
	writes.POST("", tareaHandler.CreateTarea)
	writes.PUT("/:codigo", tareaHandler.UpdateTarea)
	writes.DELETE("/:codigo", tareaHandler.DeleteTarea)
	writes.POST("/:id/notas", notaHandler.UpsertNota)

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
