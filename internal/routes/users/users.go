// Package users serves the seeded user collection.
package users

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modelboard/modelboard/internal/storage"
)

type Dependencies struct {
	Store storage.Store
}

func RegisterRoutes(r *gin.Engine, deps *Dependencies) {
	r.GET("/api/users", listUsers(deps))
}

func listUsers(deps *Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := deps.Store.ListUsers(c.Request.Context())
		if err != nil {
			slog.Error("Failed to list users", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, users)
	}
}
