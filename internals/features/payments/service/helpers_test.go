package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolpay_backend/internals/configs"
	"schoolpay_backend/internals/features/payments/gateway"
	"schoolpay_backend/internals/features/payments/model"
)

/* =======================================================================
   In-memory fakes for the repository contracts
======================================================================= */

type fakeOrderRepo struct {
	orders    map[string]*model.OrderModel // keyed by custom_order_id
	createErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*model.OrderModel{}}
}

func (f *fakeOrderRepo) Create(order *model.OrderModel) error {
	if f.createErr != nil {
		return f.createErr
	}
	if order.OrderID == uuid.Nil {
		order.OrderID = uuid.New()
	}
	f.orders[order.CustomOrderID] = order
	return nil
}

func (f *fakeOrderRepo) FindByCustomOrderID(customOrderID string) (*model.OrderModel, error) {
	o, ok := f.orders[customOrderID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) SetCollectRequestID(orderID uuid.UUID, collectRequestID string) error {
	for _, o := range f.orders {
		if o.OrderID == orderID {
			cid := collectRequestID
			o.CollectRequestID = &cid
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeStatusRepo struct {
	statuses  map[uuid.UUID]*model.OrderStatusModel // keyed by collect_id
	createErr error
	saveErr   error
}

func newFakeStatusRepo() *fakeStatusRepo {
	return &fakeStatusRepo{statuses: map[uuid.UUID]*model.OrderStatusModel{}}
}

func (f *fakeStatusRepo) Create(status *model.OrderStatusModel) error {
	if f.createErr != nil {
		return f.createErr
	}
	if status.OrderStatusID == uuid.Nil {
		status.OrderStatusID = uuid.New()
	}
	f.statuses[status.CollectID] = status
	return nil
}

func (f *fakeStatusRepo) FindByCollectID(collectID uuid.UUID) (*model.OrderStatusModel, error) {
	st, ok := f.statuses[collectID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return st, nil
}

func (f *fakeStatusRepo) Save(status *model.OrderStatusModel) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.statuses[status.CollectID] = status
	return nil
}

type fakeLogRepo struct {
	entries   []*model.WebhookLogModel
	createErr error
}

func newFakeLogRepo() *fakeLogRepo {
	return &fakeLogRepo{}
}

func (f *fakeLogRepo) Create(entry *model.WebhookLogModel) error {
	if f.createErr != nil {
		return f.createErr
	}
	if entry.WebhookLogID == uuid.Nil {
		entry.WebhookLogID = uuid.New()
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeLogRepo) Save(entry *model.WebhookLogModel) error {
	return nil // entries are pointers, mutation is visible already
}

func (f *fakeLogRepo) FindLatestByOrderID(orderID string) (*model.WebhookLogModel, error) {
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].OrderID == orderID {
			return f.entries[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

/* =======================================================================
   Fake gateway client
======================================================================= */

type fakeGateway struct {
	createRes  *gateway.CreateCollectResult
	createErr  error
	statusRes  *gateway.StatusResult
	statusErr  error
	lastCreate gateway.CreateCollectInput
}

func (f *fakeGateway) CreateCollectRequest(ctx context.Context, in gateway.CreateCollectInput) (*gateway.CreateCollectResult, error) {
	f.lastCreate = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createRes, nil
}

func (f *fakeGateway) PollStatus(ctx context.Context, collectRequestID, schoolID string) (*gateway.StatusResult, error) {
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return f.statusRes, nil
}

func testConfig() *configs.Config {
	return &configs.Config{
		BaseURL:   "http://localhost:3000",
		JWTSecret: "test-secret",
	}
}

func testGateways(gw gateway.Client) map[string]gateway.Client {
	return map[string]gateway.Client{model.GatewayEdviron: gw}
}
