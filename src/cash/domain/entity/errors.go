package entity

import "errors"

var (
	// ErrSessionAlreadyOpen se retorna al intentar abrir caja con una sesión vigente
	ErrSessionAlreadyOpen = errors.New("cash session already open")

	// ErrNoOpenSession se retorna al operar sin caja abierta
	ErrNoOpenSession = errors.New("no open cash session")

	// ErrInvalidInitialValue se retorna cuando el fondo de apertura es negativo
	ErrInvalidInitialValue = errors.New("initial value must not be negative")

	// ErrInvalidTransactionAmount se retorna cuando el monto del movimiento no es positivo
	ErrInvalidTransactionAmount = errors.New("transaction amount must be greater than zero")

	// ErrInvalidTransactionType se retorna cuando el tipo de movimiento no es manual
	ErrInvalidTransactionType = errors.New("transaction type must be SUPPLEMENT or WITHDRAWAL")

	// ErrCountRequired se retorna al cerrar caja sin conteo de valores
	ErrCountRequired = errors.New("at least one counted amount is required to close")
)
