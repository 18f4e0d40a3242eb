package request

// OpenSessionRequest abre la caja con el fondo inicial
type OpenSessionRequest struct {
	InitialValue string `json:"initialValue" binding:"required"`
}

// TransactionRequest registra un suprimento o una sangria
type TransactionRequest struct {
	Type        string `json:"type" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description"`
}

// MethodCount es el conteo de valores por método al cierre
type MethodCount struct {
	MethodCode    string `json:"methodCode" binding:"required"`
	CountedAmount string `json:"countedAmount" binding:"required"`
}

// CloseSessionRequest cierra la caja con el conteo por método
type CloseSessionRequest struct {
	Counts []MethodCount `json:"counts" binding:"required"`
}
