package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/fitpro-warsaw/fitpro-api/internal/handlers"
	"github.com/fitpro-warsaw/fitpro-api/internal/models"
	"github.com/fitpro-warsaw/fitpro-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func bookingRouter(service *MockBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewBookingHandler(service)
	router := gin.New()
	router.POST("/send-booking", handler.SendBooking)
	return router
}

func validBookingBody() models.BookingRequest {
	return models.BookingRequest{
		Name:          "Anna Kowalska",
		Phone:         "123 456 789",
		PaymentMethod: "cash",
		PackageName:   "Miesięczny",
		PackagePrice:  "600 zł",
	}
}

func TestSendBooking_Success(t *testing.T) {
	mockService := new(MockBookingService)
	router := bookingRouter(mockService)

	mockService.On("SubmitBooking", mock.Anything, mock.MatchedBy(func(req *models.BookingRequest) bool {
		return req.PackageName == "Miesięczny" && req.PaymentMethod == "cash"
	})).Return(nil)

	w := postJSON(t, router, "/send-booking", validBookingBody())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Error)

	mockService.AssertExpectations(t)
}

func TestSendBooking_BindingValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.BookingRequest)
	}{
		{name: "missing name", mutate: func(r *models.BookingRequest) { r.Name = "" }},
		{name: "missing phone", mutate: func(r *models.BookingRequest) { r.Phone = "" }},
		{name: "unknown payment method", mutate: func(r *models.BookingRequest) { r.PaymentMethod = "paypal" }},
		{name: "invalid email", mutate: func(r *models.BookingRequest) { r.Email = "not-an-email" }},
		{name: "missing package", mutate: func(r *models.BookingRequest) { r.PackageName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockBookingService)
			router := bookingRouter(mockService)

			body := validBookingBody()
			tt.mutate(&body)

			w := postJSON(t, router, "/send-booking", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp models.BookingResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Error)
			mockService.AssertNotCalled(t, "SubmitBooking")
		})
	}
}

func TestSendBooking_InvalidPhoneFromService(t *testing.T) {
	mockService := new(MockBookingService)
	router := bookingRouter(mockService)

	mockService.On("SubmitBooking", mock.Anything, mock.Anything).
		Return(&services.ValidationError{Message: "Invalid phone number"})

	body := validBookingBody()
	body.Phone = "12345"

	w := postJSON(t, router, "/send-booking", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid phone number", resp.Error)
}

func TestSendBooking_DeliveryFailureReported(t *testing.T) {
	mockService := new(MockBookingService)
	router := bookingRouter(mockService)

	mockService.On("SubmitBooking", mock.Anything, mock.Anything).
		Return(&services.DeliveryError{Message: "Failed to send message", Err: errors.New("status 502")})

	w := postJSON(t, router, "/send-booking", validBookingBody())

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Failed to send message", resp.Error)
}

func TestSendBooking_NotConfigured(t *testing.T) {
	mockService := new(MockBookingService)
	router := bookingRouter(mockService)

	mockService.On("SubmitBooking", mock.Anything, mock.Anything).
		Return(&services.ConfigError{Err: errors.New("telegram credentials not configured")})

	w := postJSON(t, router, "/send-booking", validBookingBody())

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Bot not configured", resp.Error)
}
