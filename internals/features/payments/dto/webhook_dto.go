package dto

/* ===================== Inbound webhook ===================== */

// OrderInfo carries the payment facts for one order. Every field is
// written to the stored status record as-is; payment_time is parsed as
// RFC3339 and preserved exactly, never defaulted to now. Amounts may be
// zero (a failed payment captures nothing), so they are range-checked,
// not required.
type OrderInfo struct {
	OrderID           string  `json:"order_id" validate:"required"`
	OrderAmount       float64 `json:"order_amount" validate:"gte=0"`
	TransactionAmount float64 `json:"transaction_amount" validate:"gte=0"`
	Gateway           string  `json:"gateway"`
	BankReference     string  `json:"bank_reference" validate:"required"`
	Status            string  `json:"status" validate:"required"`
	PaymentMode       string  `json:"payment_mode" validate:"required"`
	PaymentDetails    string  `json:"payment_details"`
	PaymentMessage    string  `json:"payment_message"`
	PaymentTime       string  `json:"payment_time" validate:"required"`
	ErrorMessage      string  `json:"error_message"`
}

type WebhookRequest struct {
	Status    int       `json:"status"`
	OrderInfo OrderInfo `json:"order_info" validate:"required"`
}

type WebhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}
