package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func webhookRequest(mutate func(*OrderInfo)) WebhookRequest {
	info := OrderInfo{
		OrderID:           "ORDER_001",
		OrderAmount:       2000,
		TransactionAmount: 2200,
		Gateway:           "PhonePe",
		BankReference:     "YESBNK222",
		Status:            "SUCCESS",
		PaymentMode:       "upi",
		PaymentTime:       "2024-01-01T00:00:00Z",
	}
	if mutate != nil {
		mutate(&info)
	}
	return WebhookRequest{Status: 200, OrderInfo: info}
}

func TestWebhookRequestValidation(t *testing.T) {
	v := validator.New()

	t.Run("full payload", func(t *testing.T) {
		assert.NoError(t, v.Struct(webhookRequest(nil)))
	})

	// A failed payment captures nothing; zero amounts are legitimate and
	// must reach processing so the delivery gets logged.
	t.Run("zero amounts", func(t *testing.T) {
		assert.NoError(t, v.Struct(webhookRequest(func(i *OrderInfo) {
			i.OrderAmount = 0
			i.TransactionAmount = 0
			i.Status = "FAILED"
			i.ErrorMessage = "payment declined"
		})))
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		assert.Error(t, v.Struct(webhookRequest(func(i *OrderInfo) {
			i.TransactionAmount = -1
		})))
	})

	t.Run("missing order_id rejected", func(t *testing.T) {
		assert.Error(t, v.Struct(webhookRequest(func(i *OrderInfo) {
			i.OrderID = ""
		})))
	})

	t.Run("missing payment_time rejected", func(t *testing.T) {
		assert.Error(t, v.Struct(webhookRequest(func(i *OrderInfo) {
			i.PaymentTime = ""
		})))
	})
}
