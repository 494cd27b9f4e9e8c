package models

// BookingRequest is one package-reservation submission. PackageName and
// PackagePrice are a display snapshot of the package the client picked,
// taken client-side so the notification matches what they saw.
type BookingRequest struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Email         string `json:"email" binding:"omitempty,email"`
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=contact blik cash"`
	Message       string `json:"message"`
	PackageName   string `json:"packageName" binding:"required"`
	PackagePrice  string `json:"packagePrice" binding:"required"`
}

// BookingResponse is the wire response of the booking endpoint.
type BookingResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
