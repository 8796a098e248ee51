package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"schoolpay_backend/internals/configs"
	"schoolpay_backend/internals/features/payments/dto"
	"schoolpay_backend/internals/features/payments/gateway"
	"schoolpay_backend/internals/features/payments/model"
	"schoolpay_backend/internals/features/payments/repository"
)

/* ==========================
   Errors
========================== */

var ErrOrderNotFound = errors.New("Order not found")

type PaymentService struct {
	Orders   repository.OrderRepository
	Statuses repository.OrderStatusRepository
	Gateways map[string]gateway.Client
	Cfg      *configs.Config

	// Now is swappable in tests; defaults to time.Now.
	Now func() time.Time
}

func NewPaymentService(
	orders repository.OrderRepository,
	statuses repository.OrderStatusRepository,
	gateways map[string]gateway.Client,
	cfg *configs.Config,
) *PaymentService {
	return &PaymentService{
		Orders:   orders,
		Statuses: statuses,
		Gateways: gateways,
		Cfg:      cfg,
		Now:      time.Now,
	}
}

// gatewayFor picks the provider by gateway_name; anything unrecognized
// goes to the default collect API.
func (s *PaymentService) gatewayFor(name string) gateway.Client {
	if gc, ok := s.Gateways[strings.ToLower(strings.TrimSpace(name))]; ok {
		return gc
	}
	return s.Gateways[model.GatewayEdviron]
}

/* ==========================
   Create payment
========================== */

func (s *PaymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*dto.CreatePaymentResponse, error) {
	customOrderID := req.CustomOrderID
	if customOrderID == "" {
		customOrderID = generateCustomOrderID(s.Now())
	}

	order := &model.OrderModel{
		SchoolID:  req.SchoolID,
		TrusteeID: req.TrusteeID,
		StudentInfo: model.StudentInfo{
			Name:  req.StudentInfo.Name,
			ID:    req.StudentInfo.ID,
			Email: req.StudentInfo.Email,
		},
		GatewayName:   req.GatewayName,
		CustomOrderID: customOrderID,
	}
	if err := s.Orders.Create(order); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("custom_order_id %s already exists", customOrderID)
		}
		return nil, err
	}

	// Initial lifecycle record; overwritten later by polling or webhook.
	now := s.Now()
	initial := &model.OrderStatusModel{
		CollectID:         order.OrderID,
		OrderAmount:       req.OrderAmount,
		TransactionAmount: req.OrderAmount,
		PaymentMode:       "pending",
		PaymentDetails:    "Payment initiated",
		BankReference:     "N/A",
		PaymentMessage:    "Payment initiated",
		Status:            model.StatusPending,
		ErrorMessage:      "NA",
		PaymentTime:       &now,
	}
	if err := s.Statuses.Create(initial); err != nil {
		return nil, err
	}

	res, err := s.gatewayFor(req.GatewayName).CreateCollectRequest(ctx, gateway.CreateCollectInput{
		SchoolID:    req.SchoolID,
		Amount:      req.OrderAmount,
		CallbackURL: s.Cfg.BaseURL + "/payment/callback",
		OrderID:     customOrderID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.Orders.SetCollectRequestID(order.OrderID, res.CollectRequestID); err != nil {
		return nil, err
	}

	return &dto.CreatePaymentResponse{
		Success:          true,
		OrderID:          customOrderID,
		CollectRequestID: res.CollectRequestID,
		PaymentURL:       res.CollectRequestURL,
		Message:          "Payment initiated successfully",
	}, nil
}

/* ==========================
   Payment status
========================== */

// GetPaymentStatus returns the merged local+gateway view. When a
// collect_request_id exists the gateway is polled and the local record
// reconciled before responding; otherwise the local record answers.
func (s *PaymentService) GetPaymentStatus(ctx context.Context, customOrderID string) (*dto.PaymentStatusResponse, error) {
	order, err := s.Orders.FindByCustomOrderID(customOrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if order.CollectRequestID == nil || *order.CollectRequestID == "" {
		return s.localStatus(order)
	}

	res, err := s.gatewayFor(order.GatewayName).PollStatus(ctx, *order.CollectRequestID, order.SchoolID)
	if err != nil {
		return nil, err
	}

	existing, err := s.Statuses.FindByCollectID(order.OrderID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var st *model.OrderStatusModel
	if existing != nil && res.Details == nil && NormalizeStatus(res.Status) == model.StatusPending {
		// A Pending poll with no details carries no new facts; keep the
		// stored record instead of overwriting it.
		st = existing
	} else {
		st = ReconcilePoll(existing, order.OrderID, res, s.Now())
		if existing == nil {
			err = s.Statuses.Create(st)
		} else {
			err = s.Statuses.Save(st)
		}
		if err != nil {
			return nil, err
		}
	}

	return &dto.PaymentStatusResponse{
		OrderID:          customOrderID,
		CollectRequestID: *order.CollectRequestID,
		Status:           st.Status,
		Amount:           st.TransactionAmount,
		PaymentMode:      st.PaymentMode,
		PaymentDetails:   st.PaymentDetails,
		PaymentMessage:   st.PaymentMessage,
		BankReference:    st.BankReference,
		PaymentTime:      st.PaymentTime,
	}, nil
}

func (s *PaymentService) localStatus(order *model.OrderModel) (*dto.PaymentStatusResponse, error) {
	st, err := s.Statuses.FindByCollectID(order.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.PaymentStatusResponse{
				OrderID: order.CustomOrderID,
				Status:  model.StatusPending,
			}, nil
		}
		return nil, err
	}

	return &dto.PaymentStatusResponse{
		OrderID:        order.CustomOrderID,
		Status:         st.Status,
		Amount:         st.TransactionAmount,
		PaymentMode:    st.PaymentMode,
		PaymentDetails: st.PaymentDetails,
		PaymentMessage: st.PaymentMessage,
		BankReference:  st.BankReference,
		PaymentTime:    st.PaymentTime,
	}, nil
}

/* ==========================
   Helpers
========================== */

func generateCustomOrderID(now time.Time) string {
	return fmt.Sprintf("ORDER_%d_%s", now.UnixMilli(), uuid.NewString()[:8])
}
