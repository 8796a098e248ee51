package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ===================== Webhook log status ===================== */

const (
	WebhookStatusReceived  = "received"
	WebhookStatusProcessed = "processed"
	WebhookStatusFailed    = "failed"
)

// WebhookLogModel is an append-only log of inbound webhook deliveries,
// one row per delivery. The raw payload is kept as jsonb for debugging
// and replay. The gateway supplies no delivery id, so rows are not
// deduplicated.
type WebhookLogModel struct {
	WebhookLogID uuid.UUID `gorm:"column:webhook_log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"webhook_log_id"`

	OrderID        string         `gorm:"column:order_id;size:128;not null;index" json:"order_id"`
	WebhookPayload datatypes.JSON `gorm:"column:webhook_payload;type:jsonb" json:"webhook_payload"`

	Status       string     `gorm:"column:status;size:16;not null;default:'received';index" json:"status"`
	ProcessedAt  *time.Time `gorm:"column:processed_at" json:"processed_at,omitempty"`
	ErrorMessage *string    `gorm:"column:error_message;size:255" json:"error_message,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (WebhookLogModel) TableName() string {
	return "webhook_logs"
}
