package entity

import "errors"

var (
	// ErrInvalidCredentials se retorna cuando el login es rechazado
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAuthenticated se retorna cuando el terminal no tiene sesión
	ErrNotAuthenticated = errors.New("terminal is not authenticated")

	// ErrSessionExpired se retorna cuando el token guardado ya venció
	ErrSessionExpired = errors.New("session expired, please login again")
)

// User es el operador autenticado en el terminal
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResult es la respuesta de autenticación del back-office
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
