package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fitpro-warsaw/fitpro-api/internal/handlers"
	"github.com/fitpro-warsaw/fitpro-api/internal/models"
	"github.com/fitpro-warsaw/fitpro-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intakeRouter(service *MockIntakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewIntakeHandler(service)
	router := gin.New()
	router.POST("/send-questionnaire", handler.SendQuestionnaire)
	return router
}

func TestSendQuestionnaire_Success(t *testing.T) {
	mockService := new(MockIntakeService)
	router := intakeRouter(mockService)

	mockService.On("SubmitQuestionnaire", mock.Anything, mock.MatchedBy(func(rec *models.IntakeRecord) bool {
		return rec.Name == "Иван Петров" && rec.Lang == "ru"
	})).Return(nil)

	w := postJSON(t, router, "/send-questionnaire", models.IntakeRecord{Name: "Иван Петров", Lang: "ru"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.IntakeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	mockService.AssertExpectations(t)
}

func TestSendQuestionnaire_ConfigErrorStaysGeneric(t *testing.T) {
	mockService := new(MockIntakeService)
	router := intakeRouter(mockService)

	mockService.On("SubmitQuestionnaire", mock.Anything, mock.Anything).
		Return(&services.ConfigError{Err: errors.New("telegram credentials not configured")})

	w := postJSON(t, router, "/send-questionnaire", models.IntakeRecord{Name: "x"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Server configuration error", resp["error"])
	assert.NotContains(t, w.Body.String(), "telegram", "credential details must not leak to the client")
}

func TestSendQuestionnaire_DeliveryFailure(t *testing.T) {
	mockService := new(MockIntakeService)
	router := intakeRouter(mockService)

	mockService.On("SubmitQuestionnaire", mock.Anything, mock.Anything).
		Return(&services.DeliveryError{Message: "Failed to send message", Err: errors.New("status 502")})

	w := postJSON(t, router, "/send-questionnaire", models.IntakeRecord{Name: "x"})

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to send message", resp["error"])
	assert.Contains(t, resp, "details")
}

func TestSendQuestionnaire_MalformedJSON(t *testing.T) {
	mockService := new(MockIntakeService)
	router := intakeRouter(mockService)

	req := httptest.NewRequest("POST", "/send-questionnaire", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "SubmitQuestionnaire")
}
