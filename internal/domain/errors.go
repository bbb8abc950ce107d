package domain

import "errors"

var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateAccount    = errors.New("bank account already registered")
	ErrUnsupportedCurrency = errors.New("currency not supported")
)
