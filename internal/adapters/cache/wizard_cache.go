package cache

import (
	"fmt"
	"time"

	"cambio/internal/exchange"

	"github.com/dgraph-io/ristretto"
)

const defaultWizardTTL = 30 * time.Minute

// RistrettoWizardStore keeps live exchange wizards until they expire.
type RistrettoWizardStore struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewWizardStore(maxItems int64, ttl time.Duration) (*RistrettoWizardStore, error) {
	if maxItems <= 0 {
		maxItems = 10_000
	}
	if ttl <= 0 {
		ttl = defaultWizardTTL
	}
	// Every wizard costs 1, so MaxCost is the wizard count.
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        10 * maxItems,
		MaxCost:            maxItems,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create wizard store failed: %w", err)
	}
	return &RistrettoWizardStore{cache: c, ttl: ttl}, nil
}

func (s *RistrettoWizardStore) Get(id string) (*exchange.Wizard, bool) {
	if v, ok := s.cache.Get(id); ok {
		w, ok := v.(*exchange.Wizard)
		return w, ok
	}
	return nil, false
}

// Set waits for the write to be applied so the wizard is readable by the
// next request. It reports false when ristretto dropped or refused it.
func (s *RistrettoWizardStore) Set(w *exchange.Wizard) bool {
	if !s.cache.SetWithTTL(w.ID(), w, 1, s.ttl) {
		return false
	}
	s.cache.Wait()
	_, ok := s.cache.Get(w.ID())
	return ok
}

func (s *RistrettoWizardStore) Delete(id string) { s.cache.Del(id) }

func (s *RistrettoWizardStore) Close() { s.cache.Close() }
