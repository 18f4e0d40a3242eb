package entity

import "errors"

var (
	ErrInvalidSaleTotal   = errors.New("total_amount must be greater than or equal to 0")
	ErrMethodRequired     = errors.New("payment method is required")
	ErrAmountNotPositive  = errors.New("amount must be greater than 0")
	ErrNothingToAllocate  = errors.New("sale is already covered, nothing left to allocate")
	ErrTenderNotFound     = errors.New("tender not found at given index")
	ErrDuplicateMethod    = errors.New("payment method already added to this sale")
	ErrNonCashChange      = errors.New("only cash can generate change")
	ErrSaleNotFullyPaid   = errors.New("sale is not fully paid")
	ErrUnknownMethodCode  = errors.New("payment method code not registered in backend")
	ErrPaymentInProgress  = errors.New("a payment submission is already in progress")
	ErrStaleSubmission    = errors.New("payment response discarded: tender split was reset")
	ErrNoSplitOpen        = errors.New("no tender split open for a sale")
)
