package bookingstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/schedfy/dashboard-service/internal/domain"
	"github.com/schedfy/dashboard-service/internal/integrations/bookingapi"
)

// Store maintains an in-memory, scope-filtered collection of bookings
// fetched from the remote booking API and reconciles it after every
// mutation: loads replace the collection wholesale, create appends the
// server-returned booking, update-like operations replace the single
// matching element in place, delete removes it. No speculative change
// is ever applied before the server confirms success, so on any error
// the collection is exactly what the server last acknowledged.
//
// The server remains the single source of truth: the collection is not
// persisted and a fresh Load is required per view session. Mutations on
// the same booking id are intentionally not serialized; the last
// response to arrive wins the replace step.
type Store struct {
	api BookingAPIClient
	log Logger

	mu       sync.RWMutex
	bookings []domain.Booking
	loading  bool
	lastErr  error
}

// NewStore creates a booking store backed by the given API client.
func NewStore(api BookingAPIClient, log Logger) *Store {
	return &Store{
		api: api,
		log: log,
	}
}

// Load fetches bookings for the given scope and replaces the collection
// wholesale. An empty scope yields an empty collection without any
// network call: no scope, no data. This guards against an accidental
// unscoped fetch across tenants and is deliberately not an error.
func (s *Store) Load(ctx context.Context, scope domain.BookingScope) ([]domain.Booking, error) {
	if scope.IsEmpty() {
		s.log.Info("Load: empty scope, clearing collection without fetch")
		s.mu.Lock()
		s.bookings = []domain.Booking{}
		s.lastErr = nil
		s.mu.Unlock()
		return []domain.Booking{}, nil
	}

	s.setLoading(true)
	defer s.setLoading(false)

	var (
		bookings []domain.Booking
		err      error
	)

	switch {
	case scope.EntityID != "":
		s.log.Info("Load: fetching bookings for entity=%s", scope.EntityID)
		bookings, err = s.api.ListByEntity(ctx, scope.EntityID)
	case scope.ClientID != "":
		s.log.Info("Load: fetching bookings for client=%s", scope.ClientID)
		bookings, err = s.api.ListByClient(ctx, scope.ClientID)
	case scope.ProfessionalID != "":
		s.log.Info("Load: fetching bookings for professional=%s", scope.ProfessionalID)
		bookings, err = s.api.ListByProfessional(ctx, scope.ProfessionalID)
	default:
		s.log.Info("Load: fetching bookings for service=%s", scope.ServiceID)
		bookings, err = s.api.ListByService(ctx, scope.ServiceID)
	}

	if err != nil {
		s.log.Error("Load: fetch failed: %v", err)
		return nil, s.fail(fmt.Errorf("%w: load: %v", ErrOperationFailed, err))
	}

	if bookings == nil {
		bookings = []domain.Booking{}
	}

	s.replaceAll(bookings)
	s.log.Info("Load: collection replaced, %d bookings", len(bookings))
	return bookings, nil
}

// LoadByDateRange fetches an entity's bookings within the given range
// and replaces the collection wholesale. Unlike Load, a missing entity
// id fails loudly.
func (s *Store) LoadByDateRange(ctx context.Context, entityID string, startDate, endDate time.Time) ([]domain.Booking, error) {
	if entityID == "" {
		s.log.Warn("LoadByDateRange: called without entityId")
		return nil, s.fail(ErrMissingEntityID)
	}

	s.setLoading(true)
	defer s.setLoading(false)

	s.log.Info("LoadByDateRange: entity=%s, period=%s to %s",
		entityID, startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))

	bookings, err := s.api.ListByDateRange(ctx, entityID, startDate, endDate)
	if err != nil {
		s.log.Error("LoadByDateRange: fetch failed for entity=%s: %v", entityID, err)
		return nil, s.fail(fmt.Errorf("%w: loadByDateRange: %v", ErrOperationFailed, err))
	}

	if bookings == nil {
		bookings = []domain.Booking{}
	}

	s.replaceAll(bookings)
	s.log.Info("LoadByDateRange: collection replaced, %d bookings", len(bookings))
	return bookings, nil
}

// Create posts a new booking and appends the server-returned booking to
// the collection. The append is intentional low-latency feedback, not a
// full reload. A 409 from the server surfaces as *ConflictError with
// the conflicting slots; any other failure as ErrOperationFailed. In
// both cases the collection is unchanged.
func (s *Store) Create(ctx context.Context, req *bookingapi.CreateBookingRequest) (*domain.Booking, error) {
	s.log.Info("Create: posting booking for entity=%s", req.EntityID)

	booking, err := s.api.Create(ctx, req)
	if err != nil {
		var conflict *bookingapi.ConflictError
		if errors.As(err, &conflict) {
			s.log.Warn("Create: conflict for entity=%s, %d conflicting bookings", req.EntityID, len(conflict.Conflicts))
			return nil, s.fail(&ConflictError{
				Message:   conflict.Message,
				Conflicts: conflict.Conflicts,
			})
		}

		s.log.Error("Create: failed for entity=%s: %v", req.EntityID, err)
		return nil, s.fail(fmt.Errorf("%w: create: %v", ErrOperationFailed, err))
	}

	s.mu.Lock()
	s.bookings = append(s.bookings, *booking)
	s.lastErr = nil
	s.mu.Unlock()

	s.log.Info("Create: booking id=%s appended to collection", booking.ID)
	return booking, nil
}

// Update patches a booking and replaces the matching collection element
// with the server's version, leaving order and all other elements
// untouched.
func (s *Store) Update(ctx context.Context, id string, req *bookingapi.UpdateBookingRequest) (*domain.Booking, error) {
	s.log.Info("Update: patching booking id=%s", id)
	return s.mutate(ctx, "update", id, func(ctx context.Context) (*domain.Booking, error) {
		return s.api.Update(ctx, id, req)
	})
}

// Confirm transitions a booking to confirmed.
func (s *Store) Confirm(ctx context.Context, id string) (*domain.Booking, error) {
	s.log.Info("Confirm: booking id=%s", id)
	return s.mutate(ctx, "confirm", id, func(ctx context.Context) (*domain.Booking, error) {
		return s.api.Confirm(ctx, id)
	})
}

// Complete transitions a booking to completed.
func (s *Store) Complete(ctx context.Context, id string) (*domain.Booking, error) {
	s.log.Info("Complete: booking id=%s", id)
	return s.mutate(ctx, "complete", id, func(ctx context.Context) (*domain.Booking, error) {
		return s.api.Complete(ctx, id)
	})
}

// Cancel transitions a booking to cancelled with an optional reason.
func (s *Store) Cancel(ctx context.Context, id string, reason *string) (*domain.Booking, error) {
	s.log.Info("Cancel: booking id=%s", id)
	return s.mutate(ctx, "cancel", id, func(ctx context.Context) (*domain.Booking, error) {
		return s.api.Cancel(ctx, id, reason)
	})
}

// MarkNoShow transitions a booking to no_show.
func (s *Store) MarkNoShow(ctx context.Context, id string) (*domain.Booking, error) {
	s.log.Info("MarkNoShow: booking id=%s", id)
	return s.mutate(ctx, "no-show", id, func(ctx context.Context) (*domain.Booking, error) {
		return s.api.MarkNoShow(ctx, id)
	})
}

// Delete removes a booking remotely and drops the matching element from
// the collection.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.log.Info("Delete: booking id=%s", id)

	if err := s.api.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingapi.ErrBookingNotFound) {
			s.log.Warn("Delete: booking id=%s not found", id)
			return s.fail(ErrBookingNotFound)
		}
		s.log.Error("Delete: failed for booking id=%s: %v", id, err)
		return s.fail(fmt.Errorf("%w: delete: %v", ErrOperationFailed, err))
	}

	s.mu.Lock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			break
		}
	}
	s.lastErr = nil
	s.mu.Unlock()

	s.log.Info("Delete: booking id=%s removed from collection", id)
	return nil
}

// CheckAvailability proxies the server-side availability check. A pure
// read: never touches the collection or the recorded error.
func (s *Store) CheckAvailability(ctx context.Context, req *bookingapi.AvailabilityRequest) (*domain.AvailabilityResult, error) {
	result, err := s.api.CheckAvailability(ctx, req)
	if err != nil {
		s.log.Error("CheckAvailability: failed for service=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: checkAvailability: %v", ErrOperationFailed, err)
	}
	return result, nil
}

// Bookings returns a snapshot copy of the collection.
func (s *Store) Bookings() []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]domain.Booking, len(s.bookings))
	copy(snapshot, s.bookings)
	return snapshot
}

// Len returns the collection size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}

// IsLoading reports whether a load is in flight.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the error recorded by the most recent failed
// operation, or nil after a success.
func (s *Store) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Internal helpers

// mutate runs a remote mutation and on success replaces the matching
// element by id. A booking absent from the collection (e.g. mutated
// from a view that never loaded it) leaves the collection as is.
func (s *Store) mutate(ctx context.Context, op, id string, call func(ctx context.Context) (*domain.Booking, error)) (*domain.Booking, error) {
	booking, err := call(ctx)
	if err != nil {
		if errors.Is(err, bookingapi.ErrBookingNotFound) {
			s.log.Warn("%s: booking id=%s not found", op, id)
			return nil, s.fail(ErrBookingNotFound)
		}
		s.log.Error("%s: failed for booking id=%s: %v", op, id, err)
		return nil, s.fail(fmt.Errorf("%w: %s: %v", ErrOperationFailed, op, err))
	}

	s.mu.Lock()
	for i := range s.bookings {
		if s.bookings[i].ID == booking.ID {
			s.bookings[i] = *booking
			break
		}
	}
	s.lastErr = nil
	s.mu.Unlock()

	s.log.Info("%s: booking id=%s reconciled in collection", op, booking.ID)
	return booking, nil
}

func (s *Store) replaceAll(bookings []domain.Booking) {
	s.mu.Lock()
	s.bookings = bookings
	s.lastErr = nil
	s.mu.Unlock()
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// fail records the error for the UI and returns it unchanged so the
// caller can implement operation-specific recovery.
func (s *Store) fail(err error) error {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
	return err
}
