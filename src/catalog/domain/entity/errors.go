package entity

import "errors"

var (
	// ErrEmbroideryNotFound se retorna cuando la orden no existe
	ErrEmbroideryNotFound = errors.New("embroidery order not found")

	// ErrEmbroideryCustomerRequired se retorna al crear una orden sin cliente
	ErrEmbroideryCustomerRequired = errors.New("embroidery customer name is required")

	// ErrEmbroideryValueInvalid se retorna cuando el valor de la orden no es positivo
	ErrEmbroideryValueInvalid = errors.New("embroidery value must be greater than zero")
)
