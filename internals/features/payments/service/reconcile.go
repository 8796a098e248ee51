package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolpay_backend/internals/features/payments/dto"
	"schoolpay_backend/internals/features/payments/gateway"
	"schoolpay_backend/internals/features/payments/model"
)

/* =======================================================================
   Reconciliation
   - merges gateway- or webhook-reported payment facts into the stored
     OrderStatus record. Pure functions over models, no storage here.
======================================================================= */

// NormalizeStatus maps the upstream status vocabulary onto the internal
// one. The mapping is total: anything that is not SUCCESS or FAILED
// (case-insensitive), including empty or unknown values, is Pending.
func NormalizeStatus(upstream string) string {
	switch strings.ToUpper(strings.TrimSpace(upstream)) {
	case "SUCCESS":
		return model.StatusSuccess
	case "FAILED":
		return model.StatusFailed
	default:
		return model.StatusPending
	}
}

// ReconcilePoll folds a polled gateway status into the status record.
// existing may be nil, in which case a fresh record for collectID is
// produced. payment_time is always the reconciliation wall clock, never
// a gateway-supplied timestamp.
func ReconcilePoll(existing *model.OrderStatusModel, collectID uuid.UUID, res *gateway.StatusResult, now time.Time) *model.OrderStatusModel {
	st := existing
	if st == nil {
		st = &model.OrderStatusModel{CollectID: collectID}
	}

	st.Status = NormalizeStatus(res.Status)
	if res.Amount > 0 {
		st.TransactionAmount = res.Amount
		if st.OrderAmount == 0 {
			st.OrderAmount = res.Amount
		}
	}

	mode := "unknown"
	bankRef := "N/A"
	message := "Payment " + st.Status
	details := message

	if d := res.Details; d != nil {
		if d.PaymentMode != "" {
			mode = d.PaymentMode
		}
		if d.BankRef != "" {
			bankRef = d.BankRef
		}
		if d.Card != nil {
			message = fmt.Sprintf("Payment via %s (%s) - %s", d.Card.CardType, d.Card.CardNetwork, d.Card.BankName)
			details = fmt.Sprintf("Card ending in %s - %s", lastFour(d.Card.CardNumber), d.Card.BankName)
		}
	}

	st.PaymentMode = mode
	st.BankReference = bankRef
	st.PaymentMessage = message
	st.PaymentDetails = details

	t := now
	st.PaymentTime = &t
	return st
}

// ApplyWebhook overwrites the status record with the webhook payload's
// order_info, field for field. Unlike the poll path, payment_time comes
// from the payload and is preserved exactly.
func ApplyWebhook(existing *model.OrderStatusModel, collectID uuid.UUID, info dto.OrderInfo) (*model.OrderStatusModel, error) {
	paymentTime, err := ParsePaymentTime(info.PaymentTime)
	if err != nil {
		return nil, fmt.Errorf("invalid payment_time %q: %w", info.PaymentTime, err)
	}

	st := existing
	if st == nil {
		st = &model.OrderStatusModel{CollectID: collectID}
	}

	st.OrderAmount = info.OrderAmount
	st.TransactionAmount = info.TransactionAmount
	st.PaymentMode = info.PaymentMode
	st.PaymentDetails = info.PaymentDetails
	st.BankReference = info.BankReference
	st.PaymentMessage = info.PaymentMessage
	st.Status = NormalizeStatus(info.Status)
	st.ErrorMessage = info.ErrorMessage
	st.PaymentTime = &paymentTime
	return st, nil
}

// ParsePaymentTime accepts RFC3339, with or without sub-second digits.
func ParsePaymentTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, strings.TrimSpace(s))
}

func lastFour(cardNumber string) string {
	digits := strings.ReplaceAll(strings.TrimSpace(cardNumber), " ", "")
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
