package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	telegramConfigured func() bool
	geminiConfigured   func() bool
}

func NewHealthHandler(telegramConfigured, geminiConfigured func() bool) *HealthHandler {
	return &HealthHandler{
		telegramConfigured: telegramConfigured,
		geminiConfigured:   geminiConfigured,
	}
}

// Healthcheck reports liveness plus which outbound integrations are
// configured. Missing credentials do not fail the check: the site keeps
// serving while an integration is being set up.
func (h *HealthHandler) Healthcheck(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")

	c.JSON(http.StatusOK, gin.H{
		"status":              "ok",
		"telegram_configured": h.telegramConfigured(),
		"gemini_configured":   h.geminiConfigured(),
	})
}
