package currency

import "errors"

var (
	ErrUnknownCurrency = errors.New("unknown currency")
	ErrInvalidRate     = errors.New("exchange rate must be positive")
)
