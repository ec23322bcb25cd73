// Package models serves the model registry: listing and registration.
package models

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modelboard/modelboard/internal/service"
)

// errMissingFields is the wire-format body for a rejected registration.
const errMissingFields = "Missing fields"

type Dependencies struct {
	Registry *service.RegistryService
}

func RegisterRoutes(r *gin.Engine, deps *Dependencies) {
	r.GET("/api/models", listModels(deps))
	r.POST("/api/models", registerModel(deps))
}

func listModels(deps *Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		registered, err := deps.Registry.List(c.Request.Context())
		if err != nil {
			slog.Error("Failed to list models", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, registered)
	}
}

func registerModel(deps *Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in service.RegisterModelInput
		// A missing or malformed body is the same failure as missing
		// fields: nothing usable was supplied.
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errMissingFields})
			return
		}

		model, err := deps.Registry.Register(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, service.ErrMissingFields) {
				c.JSON(http.StatusBadRequest, gin.H{"error": errMissingFields})
				return
			}
			slog.Error("Failed to register model", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusCreated, model)
	}
}
