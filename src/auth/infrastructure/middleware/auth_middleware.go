package middleware

import (
	"errors"
	"net/http"

	"pdv/src/auth/domain/entity"
	"pdv/src/auth/domain/port"

	"github.com/gin-gonic/gin"
)

// RequireSession carga el token de la sesión del terminal y lo deja en el
// contexto para los clientes del back-office. Sin sesión vigente corta
// con 401.
func RequireSession(store port.TokenStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := store.Token()
		if err != nil {
			status := http.StatusUnauthorized
			if !errors.Is(err, entity.ErrNotAuthenticated) && !errors.Is(err, entity.ErrSessionExpired) {
				status = http.StatusBadGateway
			}
			ctx.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
			return
		}

		ctx.Set("authToken", "Bearer "+token)
		ctx.Next()
	}
}
