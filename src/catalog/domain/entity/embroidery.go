package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmbroideryStatus es el estado de una orden de bordado
type EmbroideryStatus string

const (
	EmbroideryPending   EmbroideryStatus = "PENDING"
	EmbroideryDelivered EmbroideryStatus = "DELIVERED"
)

// Embroidery es una orden de bordado registrada en el back-office
type Embroidery struct {
	ID           int64            `json:"id"`
	CustomerName string           `json:"customerName"`
	Phone        string           `json:"phone"`
	Description  string           `json:"description"`
	Value        decimal.Decimal  `json:"value"`
	EntryDate    time.Time        `json:"entryDate"`
	DeliveryDate time.Time        `json:"deliveryDate"`
	Status       EmbroideryStatus `json:"status"`
	HasImage     bool             `json:"hasImage"`
}

// IsOverdue indica si la orden pendiente ya pasó su fecha de entrega
func (e *Embroidery) IsOverdue(now time.Time) bool {
	return e.Status == EmbroideryPending && now.After(e.DeliveryDate)
}

// EmbroideryDraft es el borrador para crear una orden de bordado
type EmbroideryDraft struct {
	CustomerName string          `json:"customerName"`
	Phone        string          `json:"phone"`
	Description  string          `json:"description"`
	Value        decimal.Decimal `json:"value"`
	DeliveryDate time.Time       `json:"deliveryDate"`
}

// EmbroideryPage es una página de órdenes con el total del back-office
type EmbroideryPage struct {
	Content       []Embroidery `json:"content"`
	TotalElements int64        `json:"totalElements"`
}
