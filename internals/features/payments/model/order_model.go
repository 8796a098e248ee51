package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== Gateways ===================== */

const (
	GatewayEdviron  = "edviron"
	GatewayMidtrans = "midtrans"
)

type StudentInfo struct {
	Name  string `gorm:"column:student_name;size:255;not null" json:"name"`
	ID    string `gorm:"column:student_id;size:64;not null" json:"id"`
	Email string `gorm:"column:student_email;size:255;not null" json:"email"`
}

// OrderModel represents the orders table. An order is created once at
// payment initiation and never deleted; collect_request_id is filled in
// after the gateway accepts the collection request.
type OrderModel struct {
	OrderID uuid.UUID `gorm:"column:order_id;type:uuid;default:gen_random_uuid();primaryKey" json:"order_id"`

	SchoolID  string `gorm:"column:school_id;size:64;not null;index" json:"school_id"`
	TrusteeID string `gorm:"column:trustee_id;size:64;not null;index" json:"trustee_id"`

	StudentInfo StudentInfo `gorm:"embedded" json:"student_info"`

	GatewayName   string `gorm:"column:gateway_name;size:32;not null" json:"gateway_name"`
	CustomOrderID string `gorm:"column:custom_order_id;size:128;uniqueIndex;not null" json:"custom_order_id"`

	CollectRequestID *string `gorm:"column:collect_request_id;size:128" json:"collect_request_id,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OrderModel) TableName() string {
	return "orders"
}
