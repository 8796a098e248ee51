package gateway

import (
	"context"
	"strconv"
	"strings"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"

	"schoolpay_backend/internals/configs"
)

/* =======================================================================
   Midtrans provider
   - secondary gateway behind the same Client contract: Snap checkout
     for collection requests, Core API CheckTransaction for polling.
======================================================================= */

type MidtransClient struct {
	snap snap.Client
	core coreapi.Client
}

func NewMidtransClient(cfg *configs.Config) *MidtransClient {
	env := midtrans.Sandbox
	if cfg.MidtransProdEnv {
		env = midtrans.Production
	}
	mc := &MidtransClient{}
	mc.snap.New(cfg.MidtransServerKey, env)
	mc.core.New(cfg.MidtransServerKey, env)
	return mc
}

func (mc *MidtransClient) CreateCollectRequest(ctx context.Context, in CreateCollectInput) (*CreateCollectResult, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  in.OrderID,
			GrossAmt: int64(in.Amount),
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       in.OrderID,
				Price:    int64(in.Amount),
				Qty:      1,
				Name:     "School fee payment",
				Category: "FEES",
			},
		},
	}

	resp, err := mc.snap.CreateTransaction(req)
	if err != nil {
		return nil, &GatewayError{Op: "create-collect-request", Message: err.GetMessage(), Err: err.GetRawError()}
	}

	return &CreateCollectResult{
		CollectRequestID:  in.OrderID,
		CollectRequestURL: resp.RedirectURL,
	}, nil
}

func (mc *MidtransClient) PollStatus(ctx context.Context, collectRequestID, schoolID string) (*StatusResult, error) {
	resp, err := mc.core.CheckTransaction(collectRequestID)
	if err != nil {
		return nil, &GatewayError{Op: "collect-request-status", Message: err.GetMessage(), Err: err.GetRawError()}
	}

	amount, _ := strconv.ParseFloat(resp.GrossAmount, 64)

	return &StatusResult{
		Status: mapTransactionStatus(resp.TransactionStatus),
		Amount: amount,
		Details: &CollectDetails{
			PaymentMode: resp.PaymentType,
			BankRef:     resp.TransactionID,
		},
	}, nil
}

// mapTransactionStatus lifts Midtrans transaction_status into the
// collect API vocabulary the reconciliation logic understands.
func mapTransactionStatus(ts string) string {
	switch strings.ToLower(ts) {
	case "settlement", "capture":
		return "SUCCESS"
	case "deny", "cancel", "expire", "failure":
		return "FAILED"
	case "pending":
		return "PENDING"
	default:
		return strings.ToUpper(ts)
	}
}
