package repository

import (
	"github.com/google/uuid"

	"schoolpay_backend/internals/features/payments/dto"
	"schoolpay_backend/internals/features/payments/model"
	helper "schoolpay_backend/internals/helpers"
)

/* =======================================================================
   Narrow per-entity contracts, independent of the storage engine, so
   the reconciliation and reporting logic can run against in-memory
   fakes in tests.
======================================================================= */

type OrderRepository interface {
	Create(order *model.OrderModel) error
	FindByCustomOrderID(customOrderID string) (*model.OrderModel, error)
	SetCollectRequestID(orderID uuid.UUID, collectRequestID string) error
}

type OrderStatusRepository interface {
	Create(status *model.OrderStatusModel) error
	FindByCollectID(collectID uuid.UUID) (*model.OrderStatusModel, error)
	Save(status *model.OrderStatusModel) error
}

type WebhookLogRepository interface {
	Create(entry *model.WebhookLogModel) error
	Save(entry *model.WebhookLogModel) error
	FindLatestByOrderID(orderID string) (*model.WebhookLogModel, error)
}

// TransactionRepository serves the reporting views: left-outer join of
// orders with order_statuses, sorted on the joined set, then paginated.
type TransactionRepository interface {
	List(p helper.Params) ([]dto.TransactionView, int64, error)
	ListBySchool(schoolID string, p helper.Params) ([]dto.TransactionView, int64, error)
	FindByCustomOrderID(customOrderID string) (*dto.TransactionView, error)
}
