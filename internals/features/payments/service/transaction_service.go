package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"schoolpay_backend/internals/features/payments/dto"
	"schoolpay_backend/internals/features/payments/model"
	"schoolpay_backend/internals/features/payments/repository"
	helper "schoolpay_backend/internals/helpers"
)

type TransactionService struct {
	Transactions repository.TransactionRepository
	Orders       repository.OrderRepository
	Statuses     repository.OrderStatusRepository
}

func NewTransactionService(
	transactions repository.TransactionRepository,
	orders repository.OrderRepository,
	statuses repository.OrderStatusRepository,
) *TransactionService {
	return &TransactionService{
		Transactions: transactions,
		Orders:       orders,
		Statuses:     statuses,
	}
}

func (s *TransactionService) List(p helper.Params) (*dto.TransactionListResponse, error) {
	rows, total, err := s.Transactions.List(p)
	if err != nil {
		return nil, err
	}
	return &dto.TransactionListResponse{
		Transactions: rows,
		Pagination:   helper.BuildMeta(total, p),
	}, nil
}

func (s *TransactionService) ListBySchool(schoolID string, p helper.Params) (*dto.TransactionListResponse, error) {
	rows, total, err := s.Transactions.ListBySchool(schoolID, p)
	if err != nil {
		return nil, err
	}
	return &dto.TransactionListResponse{
		Transactions: rows,
		Pagination:   helper.BuildMeta(total, p),
	}, nil
}

func (s *TransactionService) StatusByCustomOrderID(customOrderID string) (*dto.TransactionView, error) {
	row, err := s.Transactions.FindByCustomOrderID(customOrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return row, nil
}

/* ==========================
   Dummy data (manual testing)
========================== */

func (s *TransactionService) CreateDummyData() error {
	now := time.Now()

	orders := []model.OrderModel{
		{
			SchoolID:  "65b0e6293e9f76a9694d84b4",
			TrusteeID: "65b0e552dd31950a9b41c5ba",
			StudentInfo: model.StudentInfo{
				Name:  "John Doe",
				ID:    "STU001",
				Email: "john.doe@school.com",
			},
			GatewayName:   "PhonePe",
			CustomOrderID: "ORDER_001",
		},
		{
			SchoolID:  "65b0e6293e9f76a9694d84b4",
			TrusteeID: "65b0e552dd31950a9b41c5ba",
			StudentInfo: model.StudentInfo{
				Name:  "Jane Smith",
				ID:    "STU002",
				Email: "jane.smith@school.com",
			},
			GatewayName:   "Razorpay",
			CustomOrderID: "ORDER_002",
		},
	}

	statuses := []model.OrderStatusModel{
		{
			OrderAmount:       2000,
			TransactionAmount: 2200,
			PaymentMode:       "upi",
			PaymentDetails:    "success@ybl",
			BankReference:     "YESBNK222",
			PaymentMessage:    "payment success",
			Status:            model.StatusSuccess,
			ErrorMessage:      "NA",
			PaymentTime:       &now,
		},
		{
			OrderAmount:       1500,
			TransactionAmount: 1500,
			PaymentMode:       "card",
			PaymentDetails:    "Card ending in 1234",
			BankReference:     "HDFC123",
			PaymentMessage:    "payment success",
			Status:            model.StatusSuccess,
			ErrorMessage:      "NA",
			PaymentTime:       &now,
		},
	}

	for i := range orders {
		if err := s.Orders.Create(&orders[i]); err != nil {
			return err
		}
		statuses[i].CollectID = orders[i].OrderID
		if err := s.Statuses.Create(&statuses[i]); err != nil {
			return err
		}
	}
	return nil
}
