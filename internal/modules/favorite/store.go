// README: Favorite-places store backed by PostgreSQL.
package favorite

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"rumbo/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Remove deletes the favorite and reports whether a row existed.
func (s *Store) Remove(ctx context.Context, userID, placeID types.ID) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM favorite_places WHERE uid = $1 AND place_id = $2`,
		string(userID), string(placeID))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Add upserts the favorite and evicts rows beyond the newest MaxEntries.
func (s *Store) Add(ctx context.Context, e *Entry) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO favorite_places (
			uid, place_id, name, address, category, lat, lng, rating, photo_ref, saved_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (uid, place_id) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			category = EXCLUDED.category,
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			rating = EXCLUDED.rating,
			photo_ref = EXCLUDED.photo_ref,
			saved_at = EXCLUDED.saved_at`,
		string(e.UserID), string(e.PlaceID), e.Name, e.Address, e.Category,
		e.Position.Lat, e.Position.Lng, e.Rating, e.PhotoRef, e.SavedAt,
	)
	if err != nil {
		return err
	}
	return s.evict(ctx, e.UserID)
}

func (s *Store) evict(ctx context.Context, userID types.ID) error {
	_, err := s.db.Exec(ctx, `
		DELETE FROM favorite_places
		WHERE uid = $1 AND place_id NOT IN (
			SELECT place_id FROM favorite_places
			WHERE uid = $1
			ORDER BY saved_at DESC
			LIMIT $2
		)`, string(userID), MaxEntries)
	return err
}

// List returns the user's favorites newest first, at most MaxEntries.
func (s *Store) List(ctx context.Context, userID types.ID) ([]Entry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT uid, place_id, name, address, category, lat, lng, rating, photo_ref, saved_at
		FROM favorite_places
		WHERE uid = $1
		ORDER BY saved_at DESC
		LIMIT $2`, string(userID), MaxEntries)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.UserID, &e.PlaceID, &e.Name, &e.Address, &e.Category,
			&e.Position.Lat, &e.Position.Lng, &e.Rating, &e.PhotoRef, &e.SavedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
