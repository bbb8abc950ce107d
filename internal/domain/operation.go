package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OperationStatus string

const (
	OperationPending   OperationStatus = "pending"
	OperationCompleted OperationStatus = "completed"
	OperationCancelled OperationStatus = "cancelled"
)

type Operation struct {
	ID              string
	UserID          string
	SourceCurrency  Currency
	TargetCurrency  Currency
	SourceAmount    decimal.Decimal
	TargetAmount    decimal.Decimal
	ExchangeRate    decimal.Decimal
	SourceAccountID string
	TargetAccountID string
	TransferNumber  string
	Status          OperationStatus
	CreatedAt       time.Time
	CompletedAt     *time.Time
}
