// README: Recent-places service validates identity before touching the store.
package recent

import (
	"context"
	"errors"
	"time"

	"rumbo/internal/places"
	"rumbo/internal/types"
)

var (
	ErrUnauthenticated = errors.New("no authenticated user")
	ErrBadRequest      = errors.New("bad request")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Record stores a viewed place for the user. Re-recording the same place id
// refreshes its position in the list rather than duplicating it. An empty
// user id fails before any store call.
func (s *Service) Record(ctx context.Context, userID types.ID, p places.Place) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if p.ID == "" {
		return ErrBadRequest
	}
	p = p.Sanitize()
	return s.store.Record(ctx, &Entry{
		UserID:   userID,
		PlaceID:  p.ID,
		Name:     p.Name,
		Address:  p.Address,
		Category: p.Category,
		Position: p.Position,
		Rating:   p.Rating,
		PhotoRef: p.PhotoRef,
		ViewedAt: time.Now(),
	})
}

// List returns the user's recently viewed places, newest first.
func (s *Service) List(ctx context.Context, userID types.ID) ([]Entry, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	return s.store.List(ctx, userID)
}

// Remove deletes a single entry from the user's list.
func (s *Service) Remove(ctx context.Context, userID types.ID, placeID types.ID) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if placeID == "" {
		return ErrBadRequest
	}
	_, err := s.store.Remove(ctx, userID, placeID)
	return err
}

// Clear wipes the user's list.
func (s *Service) Clear(ctx context.Context, userID types.ID) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	return s.store.Clear(ctx, userID)
}
