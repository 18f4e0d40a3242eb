package port

import "pdv/src/auth/domain/entity"

// AuthGateway define el contrato contra el API de autenticación del back-office
type AuthGateway interface {
	// Login autentica al operador y retorna el token con sus datos
	Login(username, password string) (*entity.LoginResult, error)
}

// TokenStore guarda la sesión del terminal entre reinicios
type TokenStore interface {
	// Save persiste el token y el usuario de la sesión
	Save(result *entity.LoginResult) error

	// Token retorna el token vigente. Falla con ErrNotAuthenticated o
	// ErrSessionExpired según corresponda.
	Token() (string, error)

	// User retorna el operador de la sesión vigente
	User() (*entity.User, error)

	// Clear elimina la sesión del terminal
	Clear() error
}
