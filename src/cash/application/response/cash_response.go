package response

import (
	"github.com/shopspring/decimal"

	"pdv/src/cash/domain/entity"
)

// MethodComparison confronta lo esperado contra lo contado por método
type MethodComparison struct {
	MethodCode string          `json:"methodCode"`
	Expected   decimal.Decimal `json:"expected"`
	Counted    decimal.Decimal `json:"counted"`
	Difference decimal.Decimal `json:"difference"`
}

// CloseSessionResponse es el resultado del cierre de caja
type CloseSessionResponse struct {
	Session     entity.CashSession `json:"session"`
	Comparisons []MethodComparison `json:"comparisons"`
	Balanced    bool               `json:"balanced"`
}
