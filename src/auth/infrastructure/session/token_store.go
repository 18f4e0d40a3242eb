package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"pdv/src/auth/domain/entity"
)

// defaultTokenTTL aplica cuando el token no trae claim de expiración
const defaultTokenTTL = 8 * time.Hour

// TokenStore guarda la sesión del terminal en Redis para sobrevivir
// reinicios del proceso sin pedir login de nuevo
type TokenStore struct {
	rdb        *redis.Client
	terminalID string
	parser     *jwt.Parser
}

// NewTokenStore crea una nueva instancia del store
func NewTokenStore(rdb *redis.Client) *TokenStore {
	terminalID := os.Getenv("TERMINAL_ID")
	if terminalID == "" {
		terminalID = "pdv-01"
	}

	return &TokenStore{
		rdb:        rdb,
		terminalID: terminalID,
		parser:     jwt.NewParser(),
	}
}

func (s *TokenStore) tokenKey() string {
	return fmt.Sprintf("pdv:%s:auth_token", s.terminalID)
}

func (s *TokenStore) userKey() string {
	return fmt.Sprintf("pdv:%s:auth_user", s.terminalID)
}

// Save persiste el token y el usuario. El TTL en Redis se alinea con la
// expiración del propio JWT.
func (s *TokenStore) Save(result *entity.LoginResult) error {
	ctx := context.Background()

	ttl := defaultTokenTTL
	if expiry, ok := s.tokenExpiry(result.Token); ok {
		remaining := time.Until(expiry)
		if remaining <= 0 {
			return entity.ErrSessionExpired
		}
		ttl = remaining
	}

	userData, err := json.Marshal(result.User)
	if err != nil {
		return fmt.Errorf("error marshalling user: %w", err)
	}

	if err := s.rdb.Set(ctx, s.tokenKey(), result.Token, ttl).Err(); err != nil {
		return fmt.Errorf("error writing token to redis: %w", err)
	}
	if err := s.rdb.Set(ctx, s.userKey(), userData, ttl).Err(); err != nil {
		return fmt.Errorf("error writing user to redis: %w", err)
	}

	return nil
}

// Token retorna el token vigente del terminal
func (s *TokenStore) Token() (string, error) {
	ctx := context.Background()

	token, err := s.rdb.Get(ctx, s.tokenKey()).Result()
	if errors.Is(err, redis.Nil) {
		return "", entity.ErrNotAuthenticated
	}
	if err != nil {
		return "", fmt.Errorf("error reading token from redis: %w", err)
	}

	if expiry, ok := s.tokenExpiry(token); ok && time.Now().After(expiry) {
		// El TTL de Redis puede quedar detrás del claim; se limpia acá
		_ = s.Clear()
		return "", entity.ErrSessionExpired
	}

	return token, nil
}

// User retorna el operador de la sesión vigente
func (s *TokenStore) User() (*entity.User, error) {
	ctx := context.Background()

	data, err := s.rdb.Get(ctx, s.userKey()).Result()
	if errors.Is(err, redis.Nil) {
		return nil, entity.ErrNotAuthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("error reading user from redis: %w", err)
	}

	var user entity.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("error unmarshalling user: %w", err)
	}

	return &user, nil
}

// Clear elimina la sesión del terminal
func (s *TokenStore) Clear() error {
	ctx := context.Background()
	if err := s.rdb.Del(ctx, s.tokenKey(), s.userKey()).Err(); err != nil {
		return fmt.Errorf("error deleting session from redis: %w", err)
	}
	return nil
}

// tokenExpiry lee el claim exp sin verificar la firma: la validación real
// la hace el back-office en cada petición
func (s *TokenStore) tokenExpiry(raw string) (time.Time, bool) {
	token, _, err := s.parser.ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	expiry, err := token.Claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}, false
	}

	return expiry.Time, true
}
