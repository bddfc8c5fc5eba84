package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jpmanalo/bakepos-counter/internal/domain/entity"
	domainRepo "github.com/jpmanalo/bakepos-counter/internal/domain/repository"
)

type cartEntry struct {
	cart     *entity.Cart
	lastSeen time.Time
}

// memoryCartRepository keeps carts in memory keyed by session id. Carts are
// working state for a single counter session, so process-local storage with a
// TTL sweep is enough; a restart simply starts cashiers with empty carts.
type memoryCartRepository struct {
	carts       map[uuid.UUID]*cartEntry
	mu          sync.RWMutex
	cleanupTick time.Duration
	entryTTL    time.Duration
}

// NewMemoryCartRepository creates an in-memory cart store. Carts idle longer
// than ttl are swept by a background goroutine.
func NewMemoryCartRepository(ttl time.Duration) domainRepo.CartRepository {
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	r := &memoryCartRepository{
		carts:       make(map[uuid.UUID]*cartEntry),
		cleanupTick: 10 * time.Minute,
		entryTTL:    ttl,
	}
	go r.cleanupLoop()
	return r
}

func (r *memoryCartRepository) GetOrCreate(ctx context.Context, sessionID uuid.UUID, username string) (*entity.Cart, error) {
	r.mu.RLock()
	entry, exists := r.carts[sessionID]
	r.mu.RUnlock()

	if exists {
		r.mu.Lock()
		entry.lastSeen = time.Now()
		r.mu.Unlock()
		return entry.cart, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double check after acquiring write lock
	if entry, exists := r.carts[sessionID]; exists {
		entry.lastSeen = time.Now()
		return entry.cart, nil
	}

	cart := entity.NewCart(sessionID, username)
	r.carts[sessionID] = &cartEntry{cart: cart, lastSeen: time.Now()}
	return cart, nil
}

func (r *memoryCartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart.UpdatedAt = time.Now()
	r.carts[cart.SessionID] = &cartEntry{cart: cart, lastSeen: time.Now()}
	return nil
}

func (r *memoryCartRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
	return nil
}

func (r *memoryCartRepository) cleanupLoop() {
	ticker := time.NewTicker(r.cleanupTick)
	defer ticker.Stop()

	for range ticker.C {
		r.cleanup()
	}
}

func (r *memoryCartRepository) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-r.entryTTL)
	for sessionID, entry := range r.carts {
		if entry.lastSeen.Before(cutoff) {
			delete(r.carts, sessionID)
		}
	}
}
