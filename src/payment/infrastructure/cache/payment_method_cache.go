package cache

import (
	"log"
	"sync"

	"pdv/src/payment/domain/entity"
	"pdv/src/payment/domain/port"
)

// PaymentMethodCache cache en memoria de los métodos de pago del back-office.
// Es read-through: ante un código desconocido recarga desde el API antes de
// fallar. El cron del bootstrap lo refresca periódicamente.
type PaymentMethodCache struct {
	gateway port.PaymentGateway
	byCode  map[string]entity.PaymentMethod
	mu      sync.RWMutex
}

// NewPaymentMethodCache crea un nuevo cache de métodos de pago
func NewPaymentMethodCache(gateway port.PaymentGateway) *PaymentMethodCache {
	return &PaymentMethodCache{
		gateway: gateway,
		byCode:  make(map[string]entity.PaymentMethod),
	}
}

// Refresh recarga los métodos de pago desde el API de pagos
func (c *PaymentMethodCache) Refresh(authToken string) error {
	log.Println("🔄 Loading payment methods into cache...")

	methods, err := c.gateway.ListPaymentMethods(authToken)
	if err != nil {
		log.Printf("⚠️  Warning: Could not load payment methods: %v", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.byCode = make(map[string]entity.PaymentMethod, len(methods))
	for _, pm := range methods {
		if !pm.Active {
			continue
		}
		c.byCode[pm.Code] = pm
	}

	log.Printf("✅ Loaded %d payment methods into cache", len(c.byCode))
	for _, pm := range c.byCode {
		log.Printf("   - %d: %s (%s)", pm.ID, pm.DisplayName, pm.Code)
	}

	return nil
}

// Get obtiene un método de pago por código, sin recargar
func (c *PaymentMethodCache) Get(code string) (entity.PaymentMethod, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pm, ok := c.byCode[code]
	return pm, ok
}

// IDByCode resuelve el identificador numérico del back-office para un
// código de método. Ante un miss recarga el cache una vez.
func (c *PaymentMethodCache) IDByCode(authToken, code string) (int64, error) {
	if pm, ok := c.Get(code); ok {
		return pm.ID, nil
	}

	// Miss: puede ser un método dado de alta después del último refresh
	if err := c.Refresh(authToken); err != nil {
		return 0, err
	}

	pm, ok := c.Get(code)
	if !ok {
		return 0, entity.ErrUnknownMethodCode
	}
	return pm.ID, nil
}

// Methods retorna todos los métodos activos cacheados
func (c *PaymentMethodCache) Methods() []entity.PaymentMethod {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]entity.PaymentMethod, 0, len(c.byCode))
	for _, pm := range c.byCode {
		out = append(out, pm)
	}
	return out
}
