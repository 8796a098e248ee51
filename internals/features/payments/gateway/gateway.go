package gateway

import (
	"context"
	"fmt"
)

/* =======================================================================
   Client contract
======================================================================= */

type CreateCollectInput struct {
	SchoolID    string
	Amount      float64
	CallbackURL string
	OrderID     string // caller-facing order id, required by some providers
}

type CreateCollectResult struct {
	CollectRequestID  string `json:"collect_request_id"`
	CollectRequestURL string `json:"collect_request_url"`
}

// CardDetails is present when the upstream payment method was a card.
type CardDetails struct {
	CardType    string `json:"card_type"`
	CardNetwork string `json:"card_network"`
	BankName    string `json:"bank_name"`
	CardNumber  string `json:"card_number"`
}

// CollectDetails is the provider's details object on a status poll.
type CollectDetails struct {
	PaymentMode string       `json:"payment_mode"`
	BankRef     string       `json:"bank_ref"`
	Card        *CardDetails `json:"card,omitempty"`
}

type StatusResult struct {
	Status   string          `json:"status"` // upstream vocabulary (SUCCESS/FAILED/PENDING/...)
	Amount   float64         `json:"amount"`
	Details  *CollectDetails `json:"details,omitempty"`
	RawToken string          `json:"jwt,omitempty"`
}

// Client is the outbound payment-gateway contract. Calls are blocking
// request/response with no retry; a failure surfaces immediately as a
// *GatewayError.
type Client interface {
	CreateCollectRequest(ctx context.Context, in CreateCollectInput) (*CreateCollectResult, error)
	PollStatus(ctx context.Context, collectRequestID, schoolID string) (*StatusResult, error)
}

/* =======================================================================
   GatewayError
======================================================================= */

// GatewayError wraps an upstream HTTP failure or non-success payload,
// carrying the upstream message for the caller.
type GatewayError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *GatewayError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gateway %s failed: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("gateway %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("gateway %s failed", e.Op)
}

func (e *GatewayError) Unwrap() error { return e.Err }
