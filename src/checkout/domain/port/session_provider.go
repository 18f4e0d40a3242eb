package port

// CashSessionProvider expone la sesión de caja activa del terminal.
// Retorna cero cuando no hay caja abierta.
type CashSessionProvider interface {
	ActiveSessionID(authToken string) (int64, error)
}
