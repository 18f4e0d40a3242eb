package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TenderAllocation representa un pago parcial dentro del split de una venta.
// Amount positivo = pago aplicado; negativo = vuelto devuelto al cliente.
type TenderAllocation struct {
	Method   string          `json:"method"`
	Amount   decimal.Decimal `json:"amount"`
	IsChange bool            `json:"isChange"`
}

// TenderSplit es el aggregate que mantiene la lista de pagos parciales de
// una venta y deriva los totales que alimentan la UI y la sumisión final.
// Invariantes:
//   - Existe a lo sumo una entrada de vuelto, siempre con método CASH
//   - El saldo restante nunca se muestra negativo (se recorta en cero)
//   - Solo el efectivo puede sobrepagar; el exceso se convierte en vuelto
//
// No es thread-safe: el dueño del split sincroniza el acceso.
type TenderSplit struct {
	saleID        int64
	totalAmount   decimal.Decimal
	customerName  string
	allocations   []TenderAllocation
	currentMethod string
	currentAmount decimal.Decimal
	attemptID     uuid.UUID
}

// NewTenderSplit crea un split vacío para una venta. El monto actual se
// precarga con el total para que el primer pago no requiera tipearlo.
func NewTenderSplit(saleID int64, totalAmount decimal.Decimal, customerName string) (*TenderSplit, error) {
	if totalAmount.LessThan(decimal.Zero) {
		return nil, ErrInvalidSaleTotal
	}

	return &TenderSplit{
		saleID:        saleID,
		totalAmount:   totalAmount,
		customerName:  customerName,
		allocations:   []TenderAllocation{},
		currentMethod: MethodCash,
		currentAmount: totalAmount,
		attemptID:     uuid.New(),
	}, nil
}

// SelectMethod cambia el método que se está configurando. Para métodos no
// efectivo se sugiere el saldo restante; el efectivo conserva el monto ya
// tipeado salvo que sea cero.
func (ts *TenderSplit) SelectMethod(method string) error {
	if method == "" {
		return ErrMethodRequired
	}

	ts.currentMethod = method
	if method != MethodCash || ts.currentAmount.IsZero() {
		ts.currentAmount = ts.RemainingBalance()
	}
	return nil
}

// SetCurrentAmount fija el monto en edición; valores negativos se recortan a cero
func (ts *TenderSplit) SetCurrentAmount(amount decimal.Decimal) {
	if amount.LessThan(decimal.Zero) {
		amount = decimal.Zero
	}
	ts.currentAmount = amount
}

// AddTender registra el monto actual como un pago del método actual.
// Métodos no efectivo se recortan al saldo restante; el efectivo entra
// completo y el exceso genera la entrada de vuelto.
func (ts *TenderSplit) AddTender() error {
	if ts.currentAmount.LessThanOrEqual(decimal.Zero) {
		return ErrAmountNotPositive
	}

	amount := ts.currentAmount
	if ts.currentMethod != MethodCash {
		if remaining := ts.RemainingBalance(); amount.GreaterThan(remaining) {
			amount = remaining
		}
		if amount.LessThanOrEqual(decimal.Zero) {
			return ErrNothingToAllocate
		}
	}

	ts.allocations = append(ts.allocations, TenderAllocation{
		Method:   ts.currentMethod,
		Amount:   amount,
		IsChange: false,
	})

	// Sincronizar la entrada de vuelto con el sobrepago en efectivo
	if ts.currentMethod == MethodCash {
		ts.syncChange()
	}

	// Preparar el próximo pago
	ts.currentAmount = ts.RemainingBalance()
	return nil
}

// RemoveTender elimina el pago en la posición dada. Si era un pago en
// efectivo se recalcula el vuelto con los efectivos que quedan.
func (ts *TenderSplit) RemoveTender(index int) error {
	if index < 0 || index >= len(ts.allocations) {
		return ErrTenderNotFound
	}

	removed := ts.allocations[index]
	ts.allocations = append(ts.allocations[:index], ts.allocations[index+1:]...)

	if removed.Method == MethodCash && !removed.IsChange {
		ts.syncChange()
	}

	ts.currentAmount = ts.RemainingBalance()
	return nil
}

// syncChange elimina la entrada de vuelto existente y, si el efectivo
// todavía sobrepaga, agrega una nueva por el monto requerido. Garantiza
// que exista a lo sumo una entrada de vuelto.
func (ts *TenderSplit) syncChange() {
	kept := ts.allocations[:0]
	for _, a := range ts.allocations {
		if !a.IsChange {
			kept = append(kept, a)
		}
	}
	ts.allocations = kept

	if change := ts.RequiredChange(); change.GreaterThan(decimal.Zero) {
		ts.allocations = append(ts.allocations, TenderAllocation{
			Method:   MethodCash,
			Amount:   change.Neg(),
			IsChange: true,
		})
	}
}

// TotalPaid suma los pagos reales (excluye entradas de vuelto)
func (ts *TenderSplit) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, a := range ts.allocations {
		if !a.IsChange {
			total = total.Add(a.Amount)
		}
	}
	return total
}

// TotalChange suma el vuelto en valor absoluto
func (ts *TenderSplit) TotalChange() decimal.Decimal {
	total := decimal.Zero
	for _, a := range ts.allocations {
		if a.IsChange {
			total = total.Add(a.Amount.Abs())
		}
	}
	return total
}

// RemainingBalance retorna el saldo pendiente, recortado en cero
func (ts *TenderSplit) RemainingBalance() decimal.Decimal {
	remaining := ts.totalAmount.Sub(ts.TotalPaid())
	if remaining.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return remaining
}

// IsFullyPaid indica si los pagos cubren el total de la venta
func (ts *TenderSplit) IsFullyPaid() bool {
	return ts.TotalPaid().GreaterThanOrEqual(ts.totalAmount)
}

// RequiredChange calcula el vuelto: el efectivo entregado por encima de lo
// que falta cubrir una vez descontados los pagos no efectivo
func (ts *TenderSplit) RequiredChange() decimal.Decimal {
	cash := decimal.Zero
	nonCash := decimal.Zero
	for _, a := range ts.allocations {
		if a.IsChange {
			continue
		}
		if a.Method == MethodCash {
			cash = cash.Add(a.Amount)
		} else {
			nonCash = nonCash.Add(a.Amount)
		}
	}

	cashRequired := ts.totalAmount.Sub(nonCash)
	if cashRequired.LessThan(decimal.Zero) {
		cashRequired = decimal.Zero
	}

	change := cash.Sub(cashRequired)
	if change.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return change
}

// Validate verifica el split antes de la sumisión. Es pura: no muta estado.
func (ts *TenderSplit) Validate() error {
	seen := make(map[string]bool)
	for _, a := range ts.allocations {
		if a.IsChange {
			if a.Method != MethodCash {
				return ErrNonCashChange
			}
			continue
		}
		if seen[a.Method] {
			return ErrDuplicateMethod
		}
		seen[a.Method] = true
	}
	return nil
}

// CanSubmit indica si el split está listo para enviarse al back-office
func (ts *TenderSplit) CanSubmit() bool {
	return ts.IsFullyPaid() && ts.Validate() == nil
}

// Reset descarta todos los pagos y genera un nuevo attempt ID, invalidando
// cualquier respuesta en vuelo de una sumisión anterior
func (ts *TenderSplit) Reset() {
	ts.allocations = []TenderAllocation{}
	ts.currentMethod = MethodCash
	ts.currentAmount = decimal.Zero
	ts.attemptID = uuid.New()
}

// Allocations retorna una copia de los pagos registrados
func (ts *TenderSplit) Allocations() []TenderAllocation {
	out := make([]TenderAllocation, len(ts.allocations))
	copy(out, ts.allocations)
	return out
}

// SaleID retorna la venta asociada al split
func (ts *TenderSplit) SaleID() int64 {
	return ts.saleID
}

// TotalAmount retorna el total de la venta
func (ts *TenderSplit) TotalAmount() decimal.Decimal {
	return ts.totalAmount
}

// CustomerName retorna el nombre del cliente de la venta
func (ts *TenderSplit) CustomerName() string {
	return ts.customerName
}

// CurrentMethod retorna el método en edición
func (ts *TenderSplit) CurrentMethod() string {
	return ts.currentMethod
}

// CurrentAmount retorna el monto en edición
func (ts *TenderSplit) CurrentAmount() decimal.Decimal {
	return ts.currentAmount
}

// AttemptID identifica la generación actual del split
func (ts *TenderSplit) AttemptID() uuid.UUID {
	return ts.attemptID
}
