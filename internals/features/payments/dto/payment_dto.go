package dto

import "time"

/* ===================== Create payment ===================== */

type StudentInfoRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	ID    string `json:"id" validate:"required,max=64"`
	Email string `json:"email" validate:"required,email"`
}

type CreatePaymentRequest struct {
	SchoolID      string             `json:"school_id" validate:"required,max=64"`
	TrusteeID     string             `json:"trustee_id" validate:"required,max=64"`
	StudentInfo   StudentInfoRequest `json:"student_info" validate:"required"`
	GatewayName   string             `json:"gateway_name" validate:"required,max=32"`
	OrderAmount   float64            `json:"order_amount" validate:"required,gt=0"`
	CustomOrderID string             `json:"custom_order_id" validate:"omitempty,max=128"`
}

type CreatePaymentResponse struct {
	Success          bool   `json:"success"`
	OrderID          string `json:"order_id"`
	CollectRequestID string `json:"collect_request_id"`
	PaymentURL       string `json:"payment_url"`
	Message          string `json:"message"`
}

/* ===================== Payment status ===================== */

// PaymentStatusResponse is the merged local+gateway view returned by
// GET /payment/status/:customOrderId.
type PaymentStatusResponse struct {
	OrderID          string     `json:"order_id"`
	CollectRequestID string     `json:"collect_request_id,omitempty"`
	Status           string     `json:"status"`
	Amount           float64    `json:"amount,omitempty"`
	PaymentMode      string     `json:"payment_mode,omitempty"`
	PaymentDetails   string     `json:"payment_details,omitempty"`
	PaymentMessage   string     `json:"payment_message,omitempty"`
	BankReference    string     `json:"bank_reference,omitempty"`
	PaymentTime      *time.Time `json:"payment_time,omitempty"`
}
