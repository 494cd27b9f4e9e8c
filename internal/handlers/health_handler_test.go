package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fitpro-warsaw/fitpro-api/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthcheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		telegram bool
		gemini   bool
	}{
		{name: "both integrations configured", telegram: true, gemini: true},
		{name: "nothing configured", telegram: false, gemini: false},
		{name: "telegram only", telegram: true, gemini: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := handlers.NewHealthHandler(
				func() bool { return tt.telegram },
				func() bool { return tt.gemini },
			)
			router := gin.New()
			router.GET("/healthcheck", handler.Healthcheck)

			req := httptest.NewRequest("GET", "/healthcheck", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			// Missing credentials degrade features but never fail liveness
			assert.Equal(t, http.StatusOK, w.Code)

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "ok", resp["status"])
			assert.Equal(t, tt.telegram, resp["telegram_configured"])
			assert.Equal(t, tt.gemini, resp["gemini_configured"])
		})
	}
}
