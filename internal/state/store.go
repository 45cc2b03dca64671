package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/showcase/internal/content"
)

// Snapshot is the latest content available to the UI.
type Snapshot struct {
	Homepage            content.HomepageConfig
	HasHomepage         bool
	Product             content.ProductConfig
	HasProduct          bool
	LastUpdated         time.Time
	LastSuccess         time.Time
	LastError           error
	ConsecutiveFailures int
	Refreshes           int
}

// IsOffline reports whether the CMS has failed on the last two refreshes.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Ready reports whether any content has arrived yet.
func (s Snapshot) Ready() bool {
	return s.HasHomepage || s.HasProduct
}

// Store shares content between the poller and the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records the outcome of one refresh. Non-nil records replace the
// stored ones; nil records keep what was there. A non-nil err is recorded
// and counted as a failure even when one of the records arrived.
func (s *Store) Update(home *content.HomepageConfig, product *content.ProductConfig, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.snapshot.LastUpdated = now
	s.snapshot.Refreshes++

	if home != nil {
		s.snapshot.Homepage = home.Clone()
		s.snapshot.HasHomepage = true
	}
	if product != nil {
		s.snapshot.Product = product.Clone()
		s.snapshot.HasProduct = true
	}

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}
	s.snapshot.LastError = nil
	s.snapshot.LastSuccess = now
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy that does not share slices with the store.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Homepage = s.snapshot.Homepage.Clone()
	snap.Product = s.snapshot.Product.Clone()
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
