package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolpay_backend/internals/features/payments/dto"
	"schoolpay_backend/internals/features/payments/gateway"
	"schoolpay_backend/internals/features/payments/model"
)

func createPaymentFixture() dto.CreatePaymentRequest {
	return dto.CreatePaymentRequest{
		SchoolID:  "65b0e6293e9f76a9694d84b4",
		TrusteeID: "65b0e552dd31950a9b41c5ba",
		StudentInfo: dto.StudentInfoRequest{
			Name:  "John Doe",
			ID:    "STU001",
			Email: "john.doe@school.com",
		},
		GatewayName:   "edviron",
		OrderAmount:   2000,
		CustomOrderID: "ORDER_001",
	}
}

func TestCreatePayment(t *testing.T) {
	orders := newFakeOrderRepo()
	statuses := newFakeStatusRepo()
	gw := &fakeGateway{
		createRes: &gateway.CreateCollectResult{
			CollectRequestID:  "COLLECT_123",
			CollectRequestURL: "https://pay.example.com/COLLECT_123",
		},
	}

	svc := NewPaymentService(orders, statuses, testGateways(gw), testConfig())

	res, err := svc.CreatePayment(context.Background(), createPaymentFixture())
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "ORDER_001", res.OrderID)
	assert.Equal(t, "COLLECT_123", res.CollectRequestID)
	assert.Equal(t, "https://pay.example.com/COLLECT_123", res.PaymentURL)

	// Order persisted with the gateway's collect id.
	order, err := orders.FindByCustomOrderID("ORDER_001")
	require.NoError(t, err)
	require.NotNil(t, order.CollectRequestID)
	assert.Equal(t, "COLLECT_123", *order.CollectRequestID)

	// Initial lifecycle record: Pending / "Payment initiated".
	st, err := statuses.FindByCollectID(order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, st.Status)
	assert.Equal(t, "Payment initiated", st.PaymentDetails)
	assert.Equal(t, "Payment initiated", st.PaymentMessage)
	assert.Equal(t, "N/A", st.BankReference)
	assert.Equal(t, float64(2000), st.OrderAmount)

	// The signed request carried the callback URL.
	assert.Equal(t, "http://localhost:3000/payment/callback", gw.lastCreate.CallbackURL)
	assert.Equal(t, float64(2000), gw.lastCreate.Amount)
}

func TestCreatePayment_GeneratesCustomOrderID(t *testing.T) {
	orders := newFakeOrderRepo()
	statuses := newFakeStatusRepo()
	gw := &fakeGateway{createRes: &gateway.CreateCollectResult{CollectRequestID: "C1", CollectRequestURL: "u"}}

	svc := NewPaymentService(orders, statuses, testGateways(gw), testConfig())

	req := createPaymentFixture()
	req.CustomOrderID = ""

	res, err := svc.CreatePayment(context.Background(), req)
	require.NoError(t, err)
	assert.Regexp(t, `^ORDER_\d+_[0-9a-f-]{8}$`, res.OrderID)
}

func TestCreatePayment_GatewayFailure(t *testing.T) {
	orders := newFakeOrderRepo()
	statuses := newFakeStatusRepo()
	gw := &fakeGateway{
		createErr: &gateway.GatewayError{Op: "create-collect-request", StatusCode: 400, Message: "school not onboarded"},
	}

	svc := NewPaymentService(orders, statuses, testGateways(gw), testConfig())

	_, err := svc.CreatePayment(context.Background(), createPaymentFixture())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "school not onboarded")

	// Order exists but without a collect id; no rollback is attempted.
	order, findErr := orders.FindByCustomOrderID("ORDER_001")
	require.NoError(t, findErr)
	assert.Nil(t, order.CollectRequestID)
}

func TestGetPaymentStatus_LocalFallback(t *testing.T) {
	orders := newFakeOrderRepo()
	statuses := newFakeStatusRepo()
	gw := &fakeGateway{}

	order := &model.OrderModel{CustomOrderID: "ORDER_001", SchoolID: "S1", GatewayName: "edviron"}
	require.NoError(t, orders.Create(order))
	require.NoError(t, statuses.Create(&model.OrderStatusModel{
		CollectID:      order.OrderID,
		Status:         model.StatusPending,
		PaymentDetails: "Payment initiated",
	}))

	svc := NewPaymentService(orders, statuses, testGateways(gw), testConfig())

	// No collect_request_id yet: local record answers, no gateway call.
	res, err := svc.GetPaymentStatus(context.Background(), "ORDER_001")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, res.Status)
	assert.Equal(t, "Payment initiated", res.PaymentDetails)
}

func TestGetPaymentStatus_PendingPollKeepsInitialRecord(t *testing.T) {
	orders := newFakeOrderRepo()
	statuses := newFakeStatusRepo()
	gw := &fakeGateway{statusRes: &gateway.StatusResult{Status: "PENDING"}}

	order := &model.OrderModel{CustomOrderID: "ORDER_001", SchoolID: "S1", GatewayName: "edviron"}
	require.NoError(t, orders.Create(order))
	require.NoError(t, orders.SetCollectRequestID(order.OrderID, "COLLECT_123"))
	require.NoError(t, statuses.Create(&model.OrderStatusModel{
		CollectID:      order.OrderID,
		Status:         model.StatusPending,
		PaymentDetails: "Payment initiated",
	}))

	svc := NewPaymentService(orders, statuses, testGateways(gw), testConfig())

	res, err := svc.GetPaymentStatus(context.Background(), "ORDER_001")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, res.Status)
	assert.Equal(t, "Payment initiated", res.PaymentDetails)
}

func TestGetPaymentStatus_SuccessPollReconciles(t *testing.T) {
	orders := newFakeOrderRepo()
	statuses := newFakeStatusRepo()
	gw := &fakeGateway{statusRes: &gateway.StatusResult{
		Status: "SUCCESS",
		Amount: 2200,
		Details: &gateway.CollectDetails{
			PaymentMode: "upi",
			BankRef:     "YESBNK222",
		},
	}}

	order := &model.OrderModel{CustomOrderID: "ORDER_001", SchoolID: "S1", GatewayName: "edviron"}
	require.NoError(t, orders.Create(order))
	require.NoError(t, orders.SetCollectRequestID(order.OrderID, "COLLECT_123"))
	require.NoError(t, statuses.Create(&model.OrderStatusModel{
		CollectID: order.OrderID,
		Status:    model.StatusPending,
	}))

	svc := NewPaymentService(orders, statuses, testGateways(gw), testConfig())
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return fixed }

	res, err := svc.GetPaymentStatus(context.Background(), "ORDER_001")
	require.NoError(t, err)

	assert.Equal(t, model.StatusSuccess, res.Status)
	assert.Equal(t, "upi", res.PaymentMode)
	assert.Equal(t, "YESBNK222", res.BankReference)
	require.NotNil(t, res.PaymentTime)
	assert.Equal(t, fixed, *res.PaymentTime)

	st, _ := statuses.FindByCollectID(order.OrderID)
	assert.Equal(t, model.StatusSuccess, st.Status)
}

func TestGetPaymentStatus_UnknownOrder(t *testing.T) {
	svc := NewPaymentService(newFakeOrderRepo(), newFakeStatusRepo(), testGateways(&fakeGateway{}), testConfig())

	_, err := svc.GetPaymentStatus(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
