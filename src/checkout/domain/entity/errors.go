package entity

import "errors"

var (
	ErrDescriptionRequired = errors.New("item description is required")
	ErrInvalidUnitPrice    = errors.New("unit_price must be greater than or equal to 0")
	ErrInvalidQuantity     = errors.New("quantity must be greater than 0")
	ErrItemReference       = errors.New("item must reference a product or an embroidery")
	ErrItemNotFound        = errors.New("cart item not found at given index")
	ErrInvalidDiscount     = errors.New("discount value must be greater than or equal to 0")
	ErrInvalidDiscountType = errors.New("discount type must be FIXED or PERCENTAGE")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrCustomerRequired    = errors.New("a customer must be selected before checkout")
	ErrNoCashSession       = errors.New("no open cash session found")
)
