package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolpay_backend/internals/features/payments/dto"
	"schoolpay_backend/internals/features/payments/model"
	helper "schoolpay_backend/internals/helpers"
)

/* ===================== Orders ===================== */

type gormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &gormOrderRepository{db: db}
}

func (r *gormOrderRepository) Create(order *model.OrderModel) error {
	return r.db.Create(order).Error
}

func (r *gormOrderRepository) FindByCustomOrderID(customOrderID string) (*model.OrderModel, error) {
	var m model.OrderModel
	if err := r.db.Where("custom_order_id = ?", customOrderID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormOrderRepository) SetCollectRequestID(orderID uuid.UUID, collectRequestID string) error {
	return r.db.Model(&model.OrderModel{}).
		Where("order_id = ?", orderID).
		Update("collect_request_id", collectRequestID).Error
}

/* ===================== Order statuses ===================== */

type gormOrderStatusRepository struct {
	db *gorm.DB
}

func NewGormOrderStatusRepository(db *gorm.DB) OrderStatusRepository {
	return &gormOrderStatusRepository{db: db}
}

func (r *gormOrderStatusRepository) Create(status *model.OrderStatusModel) error {
	return r.db.Create(status).Error
}

func (r *gormOrderStatusRepository) FindByCollectID(collectID uuid.UUID) (*model.OrderStatusModel, error) {
	var m model.OrderStatusModel
	if err := r.db.Where("collect_id = ?", collectID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormOrderStatusRepository) Save(status *model.OrderStatusModel) error {
	return r.db.Save(status).Error
}

/* ===================== Webhook logs ===================== */

type gormWebhookLogRepository struct {
	db *gorm.DB
}

func NewGormWebhookLogRepository(db *gorm.DB) WebhookLogRepository {
	return &gormWebhookLogRepository{db: db}
}

func (r *gormWebhookLogRepository) Create(entry *model.WebhookLogModel) error {
	return r.db.Create(entry).Error
}

func (r *gormWebhookLogRepository) Save(entry *model.WebhookLogModel) error {
	return r.db.Save(entry).Error
}

func (r *gormWebhookLogRepository) FindLatestByOrderID(orderID string) (*model.WebhookLogModel, error) {
	var m model.WebhookLogModel
	if err := r.db.Where("order_id = ?", orderID).
		Order("created_at DESC").
		Limit(1).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

/* ===================== Transactions (reporting) ===================== */

// Whitelisted sort keys for the denormalized projection. An unknown
// sortBy falls back to payment_time.
var transactionSortColumns = map[string]string{
	"collect_id":         "o.order_id",
	"school_id":          "o.school_id",
	"gateway":            "o.gateway_name",
	"order_amount":       "os.order_amount",
	"transaction_amount": "os.transaction_amount",
	"status":             "os.status",
	"custom_order_id":    "o.custom_order_id",
	"payment_time":       "os.payment_time",
	"payment_mode":       "os.payment_mode",
	"bank_reference":     "os.bank_reference",
}

const transactionProjection = `
	o.order_id AS collect_id,
	o.school_id,
	o.gateway_name AS gateway,
	os.order_amount,
	os.transaction_amount,
	os.status,
	o.custom_order_id,
	os.payment_time,
	os.payment_mode,
	os.bank_reference,
	os.payment_message,
	os.error_message,
	o.student_name,
	o.student_id,
	o.student_email`

type gormTransactionRepository struct {
	db *gorm.DB
}

func NewGormTransactionRepository(db *gorm.DB) TransactionRepository {
	return &gormTransactionRepository{db: db}
}

func (r *gormTransactionRepository) base() *gorm.DB {
	return r.db.Table("orders AS o").
		Joins("LEFT JOIN order_statuses AS os ON os.collect_id = o.order_id")
}

func (r *gormTransactionRepository) List(p helper.Params) ([]dto.TransactionView, int64, error) {
	return r.list(r.base(), p)
}

func (r *gormTransactionRepository) ListBySchool(schoolID string, p helper.Params) ([]dto.TransactionView, int64, error) {
	return r.list(r.base().Where("o.school_id = ?", schoolID), p)
}

func (r *gormTransactionRepository) list(q *gorm.DB, p helper.Params) ([]dto.TransactionView, int64, error) {
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, err := p.SafeOrderClause(transactionSortColumns, "payment_time")
	if err != nil {
		return nil, 0, err
	}

	var rows []dto.TransactionView
	if err := q.Select(transactionProjection).
		Order(order).
		Limit(p.Limit).
		Offset(p.Offset()).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *gormTransactionRepository) FindByCustomOrderID(customOrderID string) (*dto.TransactionView, error) {
	var row dto.TransactionView
	res := r.base().
		Select(transactionProjection).
		Where("o.custom_order_id = ?", customOrderID).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}
