package service

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"schoolpay_backend/internals/features/payments/dto"
	"schoolpay_backend/internals/features/payments/model"
	"schoolpay_backend/internals/features/payments/repository"
)

type WebhookService struct {
	Orders   repository.OrderRepository
	Statuses repository.OrderStatusRepository
	Logs     repository.WebhookLogRepository

	Now func() time.Time
}

func NewWebhookService(
	orders repository.OrderRepository,
	statuses repository.OrderStatusRepository,
	logs repository.WebhookLogRepository,
) *WebhookService {
	return &WebhookService{
		Orders:   orders,
		Statuses: statuses,
		Logs:     logs,
		Now:      time.Now,
	}
}

// ProcessWebhook logs the delivery, resolves the order from the
// payload's order_id (the custom order id), and overwrites or inserts
// the status record with the payload's fields. Every delivery ends up
// logged as processed or failed, never silently dropped. The log repair
// on failure is best effort, not a transaction: the status write may
// have partially applied.
//
// There is no per-order serialization: two concurrent deliveries for
// the same order id can race on the find-or-create step. Known
// limitation inherited from the upstream contract (no delivery id).
func (s *WebhookService) ProcessWebhook(req dto.WebhookRequest) (*dto.WebhookResponse, error) {
	payload, _ := json.Marshal(req)
	entry := &model.WebhookLogModel{
		OrderID:        req.OrderInfo.OrderID,
		WebhookPayload: datatypes.JSON(payload),
		Status:         model.WebhookStatusReceived,
	}
	if err := s.Logs.Create(entry); err != nil {
		return nil, err
	}

	order, err := s.Orders.FindByCustomOrderID(req.OrderInfo.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.failLog(entry, ErrOrderNotFound.Error())
			return nil, ErrOrderNotFound
		}
		s.repairLog(req.OrderInfo.OrderID, err.Error())
		return nil, err
	}

	existing, err := s.Statuses.FindByCollectID(order.OrderID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.repairLog(req.OrderInfo.OrderID, err.Error())
		return nil, err
	}

	st, err := ApplyWebhook(existing, order.OrderID, req.OrderInfo)
	if err != nil {
		s.repairLog(req.OrderInfo.OrderID, err.Error())
		return nil, err
	}

	if existing == nil {
		err = s.Statuses.Create(st)
	} else {
		err = s.Statuses.Save(st)
	}
	if err != nil {
		s.repairLog(req.OrderInfo.OrderID, err.Error())
		return nil, err
	}

	now := s.Now()
	entry.Status = model.WebhookStatusProcessed
	entry.ProcessedAt = &now
	if err := s.Logs.Save(entry); err != nil {
		return nil, err
	}

	return &dto.WebhookResponse{
		Success: true,
		Message: "Webhook processed successfully",
		OrderID: req.OrderInfo.OrderID,
	}, nil
}

// failLog flips the in-hand log row to failed.
func (s *WebhookService) failLog(entry *model.WebhookLogModel, msg string) {
	now := s.Now()
	entry.Status = model.WebhookStatusFailed
	entry.ErrorMessage = &msg
	entry.ProcessedAt = &now
	_ = s.Logs.Save(entry)
}

// repairLog refetches the latest log row for the order and marks it
// failed. Best effort only.
func (s *WebhookService) repairLog(orderID, msg string) {
	entry, err := s.Logs.FindLatestByOrderID(orderID)
	if err != nil {
		return
	}
	s.failLog(entry, msg)
}
