package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolpay_backend/internals/features/payments/dto"
	"schoolpay_backend/internals/features/payments/model"
)

func webhookFixture(orderID string) dto.WebhookRequest {
	return dto.WebhookRequest{
		Status: 200,
		OrderInfo: dto.OrderInfo{
			OrderID:           orderID,
			OrderAmount:       2000,
			TransactionAmount: 2200,
			Gateway:           "PhonePe",
			BankReference:     "YESBNK222",
			Status:            "SUCCESS",
			PaymentMode:       "upi",
			PaymentDetails:    "success@ybl",
			PaymentMessage:    "payment success",
			PaymentTime:       "2024-01-01T00:00:00Z",
			ErrorMessage:      "NA",
		},
	}
}

func TestProcessWebhook_ExistingOrder(t *testing.T) {
	orders := newFakeOrderRepo()
	statuses := newFakeStatusRepo()
	logs := newFakeLogRepo()

	order := &model.OrderModel{CustomOrderID: "ORDER_001", SchoolID: "SCHOOL_1"}
	require.NoError(t, orders.Create(order))

	svc := NewWebhookService(orders, statuses, logs)

	res, err := svc.ProcessWebhook(webhookFixture("ORDER_001"))
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "ORDER_001", res.OrderID)

	// OrderStatus equals the payload field-for-field.
	st, err := statuses.FindByCollectID(order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, float64(2000), st.OrderAmount)
	assert.Equal(t, float64(2200), st.TransactionAmount)
	assert.Equal(t, "upi", st.PaymentMode)
	assert.Equal(t, "success@ybl", st.PaymentDetails)
	assert.Equal(t, "YESBNK222", st.BankReference)
	assert.Equal(t, model.StatusSuccess, st.Status)
	require.NotNil(t, st.PaymentTime)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), st.PaymentTime.UTC())

	// Log transitions received -> processed.
	require.Len(t, logs.entries, 1)
	assert.Equal(t, model.WebhookStatusProcessed, logs.entries[0].Status)
	assert.NotNil(t, logs.entries[0].ProcessedAt)
	assert.Nil(t, logs.entries[0].ErrorMessage)
}

func TestProcessWebhook_ZeroAmountFailedPayment(t *testing.T) {
	orders := newFakeOrderRepo()
	statuses := newFakeStatusRepo()
	logs := newFakeLogRepo()

	order := &model.OrderModel{CustomOrderID: "ORDER_001", SchoolID: "SCHOOL_1"}
	require.NoError(t, orders.Create(order))

	svc := NewWebhookService(orders, statuses, logs)

	req := webhookFixture("ORDER_001")
	req.OrderInfo.OrderAmount = 0
	req.OrderInfo.TransactionAmount = 0
	req.OrderInfo.Status = "FAILED"
	req.OrderInfo.ErrorMessage = "payment declined"

	res, err := svc.ProcessWebhook(req)
	require.NoError(t, err)
	assert.True(t, res.Success)

	st, err := statuses.FindByCollectID(order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, float64(0), st.OrderAmount)
	assert.Equal(t, float64(0), st.TransactionAmount)
	assert.Equal(t, model.StatusFailed, st.Status)
	assert.Equal(t, "payment declined", st.ErrorMessage)

	require.Len(t, logs.entries, 1)
	assert.Equal(t, model.WebhookStatusProcessed, logs.entries[0].Status)
}

func TestProcessWebhook_UpdatesInPlace(t *testing.T) {
	orders := newFakeOrderRepo()
	statuses := newFakeStatusRepo()
	logs := newFakeLogRepo()

	order := &model.OrderModel{CustomOrderID: "ORDER_001"}
	require.NoError(t, orders.Create(order))
	require.NoError(t, statuses.Create(&model.OrderStatusModel{
		CollectID:      order.OrderID,
		PaymentMode:    "pending",
		PaymentDetails: "Payment initiated",
		Status:         model.StatusPending,
	}))

	svc := NewWebhookService(orders, statuses, logs)
	_, err := svc.ProcessWebhook(webhookFixture("ORDER_001"))
	require.NoError(t, err)

	// Still one logical record, fully overwritten.
	assert.Len(t, statuses.statuses, 1)
	st, _ := statuses.FindByCollectID(order.OrderID)
	assert.Equal(t, model.StatusSuccess, st.Status)
	assert.Equal(t, "success@ybl", st.PaymentDetails)
}

func TestProcessWebhook_UnknownOrder(t *testing.T) {
	orders := newFakeOrderRepo()
	statuses := newFakeStatusRepo()
	logs := newFakeLogRepo()

	svc := NewWebhookService(orders, statuses, logs)

	_, err := svc.ProcessWebhook(webhookFixture("ORDER_MISSING"))
	assert.ErrorIs(t, err, ErrOrderNotFound)

	// Delivery is logged and ends in failed, never silently dropped.
	require.Len(t, logs.entries, 1)
	entry := logs.entries[0]
	assert.Equal(t, model.WebhookStatusFailed, entry.Status)
	require.NotNil(t, entry.ErrorMessage)
	assert.Equal(t, "Order not found", *entry.ErrorMessage)
}

func TestProcessWebhook_LogRepairOnStatusWriteFailure(t *testing.T) {
	orders := newFakeOrderRepo()
	statuses := newFakeStatusRepo()
	logs := newFakeLogRepo()

	order := &model.OrderModel{CustomOrderID: "ORDER_001"}
	require.NoError(t, orders.Create(order))
	statuses.createErr = errors.New("disk full")

	svc := NewWebhookService(orders, statuses, logs)
	_, err := svc.ProcessWebhook(webhookFixture("ORDER_001"))
	require.Error(t, err)

	require.Len(t, logs.entries, 1)
	entry := logs.entries[0]
	assert.Equal(t, model.WebhookStatusFailed, entry.Status)
	require.NotNil(t, entry.ErrorMessage)
	assert.Contains(t, *entry.ErrorMessage, "disk full")
}

func TestProcessWebhook_BadTimestampFailsLog(t *testing.T) {
	orders := newFakeOrderRepo()
	statuses := newFakeStatusRepo()
	logs := newFakeLogRepo()

	order := &model.OrderModel{CustomOrderID: "ORDER_001"}
	require.NoError(t, orders.Create(order))

	req := webhookFixture("ORDER_001")
	req.OrderInfo.PaymentTime = "not-a-timestamp"

	svc := NewWebhookService(orders, statuses, logs)
	_, err := svc.ProcessWebhook(req)
	require.Error(t, err)

	// No status row was written.
	assert.Empty(t, statuses.statuses)
	require.Len(t, logs.entries, 1)
	assert.Equal(t, model.WebhookStatusFailed, logs.entries[0].Status)
}
