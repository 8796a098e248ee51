package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== Status vocabulary ===================== */
/* Canonical casing everywhere internally. Upstream vocabularies are
   normalized by the reconciliation logic before anything is stored. */

const (
	StatusPending = "Pending"
	StatusSuccess = "Success"
	StatusFailed  = "Failed"
)

// OrderStatusModel is the mutable payment lifecycle record, one logical
// row per order (keyed by collect_id = orders.order_id). Created with
// status=Pending at initiation, then overwritten by gateway polling or
// by inbound webhooks.
type OrderStatusModel struct {
	OrderStatusID uuid.UUID `gorm:"column:order_status_id;type:uuid;default:gen_random_uuid();primaryKey" json:"order_status_id"`

	CollectID uuid.UUID `gorm:"column:collect_id;type:uuid;not null;index" json:"collect_id"`

	OrderAmount       float64 `gorm:"column:order_amount;not null;default:0" json:"order_amount"`
	TransactionAmount float64 `gorm:"column:transaction_amount;not null;default:0" json:"transaction_amount"`

	PaymentMode    string `gorm:"column:payment_mode;size:64" json:"payment_mode"`
	PaymentDetails string `gorm:"column:payment_details;size:255" json:"payment_details"`
	BankReference  string `gorm:"column:bank_reference;size:128" json:"bank_reference"`
	PaymentMessage string `gorm:"column:payment_message;size:255" json:"payment_message"`

	Status       string `gorm:"column:status;size:32;not null;default:'Pending';index" json:"status"`
	ErrorMessage string `gorm:"column:error_message;size:255" json:"error_message"`

	PaymentTime *time.Time `gorm:"column:payment_time" json:"payment_time,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OrderStatusModel) TableName() string {
	return "order_statuses"
}
