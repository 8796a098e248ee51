package dto

import (
	"time"

	helper "schoolpay_backend/internals/helpers"
)

/* ===================== Reporting ===================== */

// TransactionView is the denormalized projection of an order
// left-joined with its (optional) status row. Status fields are null
// for orders the gateway never reported on.
type TransactionView struct {
	CollectID         string     `json:"collect_id"`
	SchoolID          string     `json:"school_id"`
	Gateway           string     `json:"gateway"`
	OrderAmount       *float64   `json:"order_amount"`
	TransactionAmount *float64   `json:"transaction_amount"`
	Status            *string    `json:"status"`
	CustomOrderID     string     `json:"custom_order_id"`
	PaymentTime       *time.Time `json:"payment_time"`
	PaymentMode       *string    `json:"payment_mode"`
	BankReference     *string    `json:"bank_reference"`
	PaymentMessage    *string    `json:"payment_message,omitempty"`
	ErrorMessage      *string    `json:"error_message,omitempty"`
	StudentName       string     `json:"student_name"`
	StudentID         string     `json:"student_id"`
	StudentEmail      string     `json:"student_email"`
}

type TransactionListResponse struct {
	Transactions []TransactionView `json:"transactions"`
	Pagination   helper.Meta       `json:"pagination"`
}
