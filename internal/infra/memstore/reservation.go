// Package memstore keeps the reservation ledger in process memory.
package memstore

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"mall-space-booking/internal/domain/reservation"
	"mall-space-booking/internal/infra"
	"mall-space-booking/internal/usecase/shared"
)

// ReservationStore hands out clones so callers never share state with the ledger.
type ReservationStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*reservation.Reservation
	bySpace map[string][]uuid.UUID
}

func NewReservationStore() *ReservationStore {
	return &ReservationStore{
		byID:    make(map[uuid.UUID]*reservation.Reservation),
		bySpace: make(map[string][]uuid.UUID),
	}
}

func (s *ReservationStore) Create(ctx context.Context, r *reservation.Reservation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[r.ID()]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "reservation already exists")
	}
	s.byID[r.ID()] = r.Clone()
	s.bySpace[r.SpaceID()] = append(s.bySpace[r.SpaceID()], r.ID())
	return nil
}

func (s *ReservationStore) Update(ctx context.Context, r *reservation.Reservation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[r.ID()]; !exists {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	s.byID[r.ID()] = r.Clone()
	return nil
}

func (s *ReservationStore) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.byID[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return r.Clone(), nil
}

func (s *ReservationStore) ListActiveBySpace(ctx context.Context, spaceID string) ([]*reservation.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*reservation.Reservation
	for _, id := range s.bySpace[spaceID] {
		if r := s.byID[id]; r.IsActive() {
			out = append(out, r.Clone())
		}
	}
	return out, nil
}

// List returns matches ordered by start date, then creation time.
func (s *ReservationStore) List(ctx context.Context, filter shared.ListFilter) ([]*reservation.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	out := make([]*reservation.Reservation, 0, len(s.byID))
	for _, r := range s.byID {
		if filter.Matches(r) {
			out = append(out, r.Clone())
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b *reservation.Reservation) int {
		if c := a.Interval().StartDate().Compare(b.Interval().StartDate()); c != 0 {
			return c
		}
		return a.CreatedAt().Compare(b.CreatedAt())
	})
	return out, nil
}
