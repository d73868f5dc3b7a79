// Package store owns the authoritative in-memory order collection. The whole
// collection is the unit of persistence: it is loaded once at startup and
// rewritten in full through the blob store after every mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/darji-master/orders-service/internal/catalog"
	"github.com/darji-master/orders-service/internal/domain"
	"github.com/darji-master/orders-service/internal/logger"
	"github.com/darji-master/orders-service/internal/repository"
)

var ErrNotFound = errors.New("order not found")

type Store struct {
	blobs repository.BlobStore
	key   string

	mu     sync.RWMutex
	orders []domain.Order

	now func() time.Time
}

func New(blobs repository.BlobStore, key string) *Store {
	return &Store{
		blobs: blobs,
		key:   key,
		now:   time.Now,
	}
}

// Intake carries the fields the presentation layer collects for a new order.
// Name/mobile presence and enum membership are checked before this reaches
// the store; amounts are still coerced defensively here.
type Intake struct {
	CustomerName  string
	Mobile        string
	GarmentType   catalog.GarmentType
	Measurements  map[catalog.MeasurementField]float64
	MaterialNotes string
	MaterialImage string
	DeliveryDate  time.Time
	AmountTotal   float64
	AmountPaid    float64
	PaymentMethod catalog.PaymentMethod
}

// Load reads the persisted snapshot. A missing or corrupt blob falls back to
// the seed dataset; neither case is an error to the caller.
func (s *Store) Load(ctx context.Context) {
	raw, ok, err := s.blobs.Get(ctx, s.key)
	if err != nil {
		logger.Warn("blob read failed, using seed data", "key", s.key, "err", err)
		s.reset(domain.SeedOrders(s.now()))
		return
	}
	if !ok {
		logger.Info("no persisted orders, using seed data", "key", s.key)
		s.reset(domain.SeedOrders(s.now()))
		return
	}

	var orders []domain.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		logger.Warn("persisted orders corrupt, using seed data", "key", s.key, "err", err)
		s.reset(domain.SeedOrders(s.now()))
		return
	}
	s.reset(orders)
	logger.Info("orders restored", "count", len(orders))
}

func (s *Store) reset(orders []domain.Order) {
	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
}

// Create builds a fully formed order from intake data, prepends it to the
// collection (newest first) and persists the full set. Status always starts
// at Measured.
func (s *Store) Create(ctx context.Context, in Intake) domain.Order {
	o := domain.Order{
		CustomerID:    "CUST-" + idSuffix(4),
		CustomerName:  in.CustomerName,
		Mobile:        in.Mobile,
		GarmentType:   in.GarmentType,
		Measurements:  copyMeasurements(in.Measurements),
		MaterialNotes: in.MaterialNotes,
		MaterialImage: in.MaterialImage,
		OrderDate:     s.now(),
		DeliveryDate:  in.DeliveryDate,
		Status:        catalog.StatusMeasured,
		AmountTotal:   sanitizeAmount(in.AmountTotal),
		AmountPaid:    sanitizeAmount(in.AmountPaid),
		PaymentMethod: in.PaymentMethod,
		TrackingToken: newTrackingToken(),
	}

	s.mu.Lock()
	o.ID = s.uniqueIDLocked()
	s.orders = append([]domain.Order{o}, s.orders...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.save(ctx, snapshot)
	return o
}

// UpdateStatus replaces the status of the identified order with a fresh record
// value. Any status from the enumeration is accepted regardless of the order's
// current stage; the canonical flow is advisory only. Unknown ids leave the
// collection untouched and report ErrNotFound.
func (s *Store) UpdateStatus(ctx context.Context, id string, status catalog.Status) error {
	s.mu.Lock()
	idx := -1
	for i := range s.orders {
		if s.orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	updated := s.orders[idx]
	updated.Status = status
	s.orders[idx] = updated
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.save(ctx, snapshot)
	return nil
}

// List returns a snapshot of the collection, newest first. Callers own the
// returned slice; mutations must go through Create/UpdateStatus.
func (s *Store) List() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Get looks up a single order by id.
func (s *Store) Get(id string) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Order{}, false
}

// FindByToken resolves a customer-facing tracking token to its order.
func (s *Store) FindByToken(token string) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.TrackingToken == token {
			return o, true
		}
	}
	return domain.Order{}, false
}

func (s *Store) snapshotLocked() []domain.Order {
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// save serializes the whole collection under the configured key. Write
// failures are logged, never surfaced: the in-memory state stays
// authoritative and the next mutation rewrites the blob anyway.
func (s *Store) save(ctx context.Context, orders []domain.Order) {
	raw, err := json.Marshal(orders)
	if err != nil {
		logger.Warn("marshal orders failed", "err", err)
		return
	}
	if err := s.blobs.Set(ctx, s.key, string(raw)); err != nil {
		logger.Warn("blob write failed", "key", s.key, "err", err)
	}
}

func (s *Store) uniqueIDLocked() string {
	for {
		id := "ORD-" + idSuffix(6)
		taken := false
		for i := range s.orders {
			if s.orders[i].ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}

func idSuffix(n int) string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return raw[:n]
}

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// newTrackingToken builds the opaque customer-facing lookup string. Low
// entropy on purpose: it is a convenience handle, not a credential.
func newTrackingToken() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = tokenAlphabet[rand.Intn(len(tokenAlphabet))]
	}
	return string(b)
}

func sanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func copyMeasurements(m map[catalog.MeasurementField]float64) map[catalog.MeasurementField]float64 {
	out := make(map[catalog.MeasurementField]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
