package usecase

import (
	"fmt"
	"log"

	"pdv/src/auth/domain/entity"
	"pdv/src/auth/domain/port"
)

// LoginUseCase autentica al operador y deja la sesión del terminal activa
type LoginUseCase struct {
	gateway port.AuthGateway
	store   port.TokenStore
}

// NewLoginUseCase crea una nueva instancia del caso de uso
func NewLoginUseCase(gateway port.AuthGateway, store port.TokenStore) *LoginUseCase {
	return &LoginUseCase{gateway: gateway, store: store}
}

// Execute autentica contra el back-office y persiste la sesión
func (uc *LoginUseCase) Execute(username, password string) (*entity.User, error) {
	result, err := uc.gateway.Login(username, password)
	if err != nil {
		return nil, err
	}

	if err := uc.store.Save(result); err != nil {
		return nil, fmt.Errorf("error persisting session: %w", err)
	}

	log.Printf("✅ User %s logged in", result.User.Username)
	return &result.User, nil
}
