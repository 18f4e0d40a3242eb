package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"pdv/src/cash/domain/port"
)

// sessionTTL limita cuánto vive la referencia local; una jornada de caja
// nunca debería superarla
const sessionTTL = 16 * time.Hour

// ActiveSessionStore guarda en Redis la sesión de caja activa del terminal
// para sobrevivir reinicios sin reconsultar el back-office en cada venta
type ActiveSessionStore struct {
	rdb        *redis.Client
	gateway    port.CashGateway
	terminalID string
}

// NewActiveSessionStore crea una nueva instancia del store
func NewActiveSessionStore(rdb *redis.Client, gateway port.CashGateway) *ActiveSessionStore {
	terminalID := os.Getenv("TERMINAL_ID")
	if terminalID == "" {
		terminalID = "pdv-01"
	}

	return &ActiveSessionStore{
		rdb:        rdb,
		gateway:    gateway,
		terminalID: terminalID,
	}
}

func (s *ActiveSessionStore) key() string {
	return fmt.Sprintf("pdv:%s:active_cash_session", s.terminalID)
}

// ActiveSessionID retorna la sesión activa, resolviendo primero contra
// Redis y recién ante un miss contra el back-office. Retorna cero cuando
// no hay caja abierta.
func (s *ActiveSessionStore) ActiveSessionID(authToken string) (int64, error) {
	ctx := context.Background()

	value, err := s.rdb.Get(ctx, s.key()).Result()
	if err == nil {
		sessionID, parseErr := strconv.ParseInt(value, 10, 64)
		if parseErr == nil {
			return sessionID, nil
		}
		// Valor corrupto: se descarta y se reconsulta
		s.rdb.Del(ctx, s.key())
	} else if !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("error reading session from redis: %w", err)
	}

	session, err := s.gateway.ActiveSession(authToken)
	if err != nil {
		return 0, err
	}
	if session == nil || !session.IsOpen() {
		return 0, nil
	}

	if err := s.Remember(session.ID); err != nil {
		log.Printf("⚠️ Could not cache cash session in redis: %v", err)
	}
	return session.ID, nil
}

// Remember guarda la sesión activa en Redis
func (s *ActiveSessionStore) Remember(sessionID int64) error {
	ctx := context.Background()
	if err := s.rdb.Set(ctx, s.key(), strconv.FormatInt(sessionID, 10), sessionTTL).Err(); err != nil {
		return fmt.Errorf("error writing session to redis: %w", err)
	}
	return nil
}

// Forget limpia la referencia local (cierre de caja)
func (s *ActiveSessionStore) Forget() error {
	ctx := context.Background()
	if err := s.rdb.Del(ctx, s.key()).Err(); err != nil {
		return fmt.Errorf("error deleting session from redis: %w", err)
	}
	return nil
}

// Revalidate confronta la referencia local contra el back-office. La corre
// el scheduler para detectar cierres hechos desde otro puesto.
func (s *ActiveSessionStore) Revalidate(authToken string) {
	session, err := s.gateway.ActiveSession(authToken)
	if err != nil {
		log.Printf("⚠️ Could not revalidate cash session: %v", err)
		return
	}

	if session == nil || !session.IsOpen() {
		if err := s.Forget(); err != nil {
			log.Printf("⚠️ Could not clear cash session: %v", err)
		}
		return
	}

	if err := s.Remember(session.ID); err != nil {
		log.Printf("⚠️ Could not refresh cash session: %v", err)
	}
}
