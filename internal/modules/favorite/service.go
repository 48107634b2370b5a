// README: Favorite-places service with add/remove toggle semantics.
package favorite

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

// Toggle flips the favorite state of a place and reports the new state:
// true when the place is now a favorite, false when it was removed.
func (s *Service) Toggle(ctx context.Context, userID types.ID, p places.Place) (bool, error) {
	if userID == "" {
		return false, ErrUnauthenticated
	}
	if p.ID == "" {
		return false, ErrBadRequest
	}

	removed, err := s.store.Remove(ctx, userID, p.ID)
	if err != nil {
		return false, err
	}
	if removed {
		return false, nil
	}

	p = p.Sanitize()
	err = s.store.Add(ctx, &Entry{
		UserID:   userID,
		PlaceID:  p.ID,
		Name:     p.Name,
		Address:  p.Address,
		Category: p.Category,
		Position: p.Position,
		Rating:   p.Rating,
		PhotoRef: p.PhotoRef,
		SavedAt:  time.Now(),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns the user's favorites, newest first.
func (s *Service) List(ctx context.Context, userID types.ID) ([]Entry, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	return s.store.List(ctx, userID)
}
