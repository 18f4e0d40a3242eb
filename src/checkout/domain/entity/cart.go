package entity

import (
	"github.com/shopspring/decimal"
)

// DiscountType es el tipo de descuento que entiende el back-office
type DiscountType string

const (
	DiscountFixed      DiscountType = "FIXED"
	DiscountPercentage DiscountType = "PERCENTAGE"
)

// CartItem representa una línea del carrito. Referencia un producto del
// catálogo o una orden de bordado, nunca ambos.
type CartItem struct {
	ProductID    int64           `json:"productId,omitempty"`
	EmbroideryID int64           `json:"embroideryId,omitempty"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Quantity     int             `json:"quantity"`
	IsEmbroidery bool            `json:"isEmbroidery"`
}

// Total retorna el total de la línea
func (i CartItem) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// NewCartItem crea una línea de carrito validada
func NewCartItem(productID, embroideryID int64, description string, unitPrice decimal.Decimal, quantity int, isEmbroidery bool) (*CartItem, error) {
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	if unitPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidUnitPrice
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if productID == 0 && embroideryID == 0 {
		return nil, ErrItemReference
	}

	return &CartItem{
		ProductID:    productID,
		EmbroideryID: embroideryID,
		Description:  description,
		UnitPrice:    unitPrice,
		Quantity:     quantity,
		IsEmbroidery: isEmbroidery,
	}, nil
}

// Cart es el carrito de la frente de caixa: líneas más el descuento de la
// venta. No es thread-safe: el controlador dueño sincroniza.
type Cart struct {
	items         []CartItem
	discountType  DiscountType
	discountValue decimal.Decimal
}

// NewCart crea un carrito vacío con descuento fijo en cero
func NewCart() *Cart {
	return &Cart{
		items:        []CartItem{},
		discountType: DiscountFixed,
	}
}

// AddItem agrega una línea. Si ya existe una línea para la misma referencia
// se acumula la cantidad en vez de duplicar la línea.
func (c *Cart) AddItem(item CartItem) {
	for idx, existing := range c.items {
		if existing.ProductID == item.ProductID &&
			existing.EmbroideryID == item.EmbroideryID &&
			existing.IsEmbroidery == item.IsEmbroidery {
			c.items[idx].Quantity += item.Quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// UpdateQuantity ajusta la cantidad de una línea por delta, con piso en 1
func (c *Cart) UpdateQuantity(index, delta int) error {
	if index < 0 || index >= len(c.items) {
		return ErrItemNotFound
	}

	newQty := c.items[index].Quantity + delta
	if newQty < 1 {
		newQty = 1
	}
	c.items[index].Quantity = newQty
	return nil
}

// RemoveItem elimina la línea en la posición dada
func (c *Cart) RemoveItem(index int) error {
	if index < 0 || index >= len(c.items) {
		return ErrItemNotFound
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return nil
}

// SetDiscount define el descuento de la venta
func (c *Cart) SetDiscount(discountType DiscountType, value decimal.Decimal) error {
	if discountType != DiscountFixed && discountType != DiscountPercentage {
		return ErrInvalidDiscountType
	}
	if value.LessThan(decimal.Zero) {
		return ErrInvalidDiscount
	}

	c.discountType = discountType
	c.discountValue = value
	return nil
}

// Subtotal suma los totales de línea
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.items {
		subtotal = subtotal.Add(item.Total())
	}
	return subtotal
}

// DiscountAmount calcula el descuento aplicado sobre el subtotal
func (c *Cart) DiscountAmount() decimal.Decimal {
	if c.discountType == DiscountPercentage {
		return c.Subtotal().Mul(c.discountValue).Div(decimal.NewFromInt(100))
	}
	return c.discountValue
}

// Total retorna subtotal menos descuento, recortado en cero
func (c *Cart) Total() decimal.Decimal {
	total := c.Subtotal().Sub(c.DiscountAmount())
	if total.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return total
}

// Clear vacía el carrito y resetea el descuento
func (c *Cart) Clear() {
	c.items = []CartItem{}
	c.discountType = DiscountFixed
	c.discountValue = decimal.Zero
}

// IsEmpty indica si el carrito no tiene líneas
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items retorna una copia de las líneas
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// DiscountType retorna el tipo de descuento vigente
func (c *Cart) DiscountType() DiscountType {
	return c.discountType
}

// DiscountValue retorna el valor de descuento vigente
func (c *Cart) DiscountValue() decimal.Decimal {
	return c.discountValue
}

// Replace reemplaza el contenido completo del carrito (recuperación de una
// venta existente para edición)
func (c *Cart) Replace(items []CartItem, discountType DiscountType, discountValue decimal.Decimal) {
	c.items = make([]CartItem, len(items))
	copy(c.items, items)
	c.discountType = discountType
	c.discountValue = discountValue
}
