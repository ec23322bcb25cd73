// Package pipelines serves the pipeline catalog and the run-trigger stub.
package pipelines

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modelboard/modelboard/internal/service"
)

// errMissingPipelineID is the wire-format body for a rejected trigger.
const errMissingPipelineID = "Missing pipelineId"

type Dependencies struct {
	Pipelines *service.PipelineService
}

func RegisterRoutes(r *gin.Engine, deps *Dependencies) {
	r.GET("/api/pipelines", listPipelines(deps))
	r.POST("/api/pipelines/run", triggerPipeline(deps))
}

func listPipelines(deps *Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		catalog, err := deps.Pipelines.List(c.Request.Context())
		if err != nil {
			slog.Error("Failed to list pipelines", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, catalog)
	}
}

// triggerRequest leaves PipelineID untyped: callers send numbers and strings
// interchangeably, and the acknowledgment echoes whatever arrived.
type triggerRequest struct {
	PipelineID any `json:"pipelineId"`
}

func triggerPipeline(deps *Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req triggerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errMissingPipelineID})
			return
		}

		message, err := deps.Pipelines.Trigger(c.Request.Context(), req.PipelineID)
		if err != nil {
			if errors.Is(err, service.ErrMissingPipelineID) {
				c.JSON(http.StatusBadRequest, gin.H{"error": errMissingPipelineID})
				return
			}
			slog.Error("Failed to trigger pipeline", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": message})
	}
}
