package main

import (
	"log/slog"
	"net"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/modelboard/modelboard/internal/middleware"
	"github.com/modelboard/modelboard/internal/routes/models"
	"github.com/modelboard/modelboard/internal/routes/pages"
	"github.com/modelboard/modelboard/internal/routes/pipelines"
	"github.com/modelboard/modelboard/internal/routes/system"
	"github.com/modelboard/modelboard/internal/routes/users"
	"github.com/modelboard/modelboard/internal/service"
	"github.com/modelboard/modelboard/internal/storage/sqlite"
	"github.com/modelboard/modelboard/pkg/logging"
)

const defaultPort = "4000"

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	logging.Setup()

	port := getEnv("PORT", defaultPort)
	dbPath := getEnv("DB_PATH", sqlite.MemoryPath)

	store, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", dbPath)

	gin.SetMode(getEnv("GIN_MODE", gin.ReleaseMode))

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Metrics(),
		middleware.CORS(),
	)

	users.RegisterRoutes(r, &users.Dependencies{
		Store: store,
	})
	models.RegisterRoutes(r, &models.Dependencies{
		Registry: service.NewRegistryService(store),
	})
	pipelines.RegisterRoutes(r, &pipelines.Dependencies{
		Pipelines: service.NewPipelineService(store),
	})
	pages.RegisterRoutes(r)
	system.RegisterRoutes(r)

	// Bind first, then announce: the startup line must mean the port is
	// actually held.
	ln, err := net.Listen("tcp", ":"+port)
	if err != nil {
		slog.Error("Failed to bind listener", "port", port, "error", err)
		os.Exit(1)
	}
	slog.Info("Server listening", "port", port, "url", "http://localhost:"+port)

	if err := http.Serve(ln, r); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
