package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AlertDirection string

const (
	DirectionAbove AlertDirection = "above"
	DirectionBelow AlertDirection = "below"
)

type Alert struct {
	ID         string
	UserID     string
	TargetRate decimal.Decimal
	Direction  AlertDirection
	IsActive   bool
	NotifiedAt *time.Time
	CreatedAt  time.Time
}

// Reached reports whether the current rate satisfies the alert condition.
func (a Alert) Reached(current decimal.Decimal) bool {
	if a.Direction == DirectionBelow {
		return current.LessThanOrEqual(a.TargetRate)
	}
	return current.GreaterThanOrEqual(a.TargetRate)
}
