package quota

import "context"

// Service orchestrates the free-generation allowance.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Consume deducts one generation from the user's monthly allowance.
// If the user row does not exist yet it is initialised and the generation is
// immediately consumed. Returns ErrQuotaExhausted when the quota for the
// current month is used up.
func (s *Service) Consume(ctx context.Context, uid string) error {
	err := s.store.UseGeneration(ctx, uid)
	if err != ErrQuotaExhausted {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureUser(ctx, uid); initErr != nil {
		return initErr
	}
	return s.store.UseGeneration(ctx, uid)
}
