package chips

import "errors"

var (
	ErrNoDenominations        = errors.New("chip table has no denominations")
	ErrInvalidDenomination    = errors.New("denomination must be positive")
	ErrDuplicateDenomination  = errors.New("duplicate denomination")
	ErrNegativeAmount         = errors.New("amount cannot be negative")
	ErrAmountNotRepresentable = errors.New("amount cannot be represented with available chips")
	ErrInvalidQuantity        = errors.New("quantity must be at least one chip")
	ErrInsufficientChips      = errors.New("not enough chips in pile")
)
