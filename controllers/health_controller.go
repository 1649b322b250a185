package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Govind-619/OrderLadder/services"
	"github.com/Govind-619/OrderLadder/utils"
)

// HealthController reports whether the store is reachable.
type HealthController struct {
	store services.Store
}

func NewHealthController(store services.Store) *HealthController {
	return &HealthController{store: store}
}

// GET /health
func (hc *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := hc.store.Ping(ctx); err != nil {
		utils.LogError("Health check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
