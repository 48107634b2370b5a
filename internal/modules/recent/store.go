// README: Recent-places store backed by PostgreSQL.
package recent

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

// Record upserts the entry keyed by (uid, place_id) and then deletes every
// row beyond the newest MaxEntries for the user. Eviction runs after every
// insert so the list self-heals from concurrent overshoot.
func (s *Store) Record(ctx context.Context, e *Entry) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO recent_places (
			uid, place_id, name, address, category, lat, lng, rating, photo_ref, viewed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (uid, place_id) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			category = EXCLUDED.category,
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			rating = EXCLUDED.rating,
			photo_ref = EXCLUDED.photo_ref,
			viewed_at = EXCLUDED.viewed_at`,
		string(e.UserID), string(e.PlaceID), e.Name, e.Address, e.Category,
		e.Position.Lat, e.Position.Lng, e.Rating, e.PhotoRef, e.ViewedAt,
	)
	if err != nil {
		return err
	}
	return s.evict(ctx, e.UserID)
}

func (s *Store) evict(ctx context.Context, userID types.ID) error {
	_, err := s.db.Exec(ctx, `
		DELETE FROM recent_places
		WHERE uid = $1 AND place_id NOT IN (
			SELECT place_id FROM recent_places
			WHERE uid = $1
			ORDER BY viewed_at DESC
			LIMIT $2
		)`, string(userID), MaxEntries)
	return err
}

// List returns the user's entries newest first, at most MaxEntries.
func (s *Store) List(ctx context.Context, userID types.ID) ([]Entry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT uid, place_id, name, address, category, lat, lng, rating, photo_ref, viewed_at
		FROM recent_places
		WHERE uid = $1
		ORDER BY viewed_at DESC
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
			&e.Position.Lat, &e.Position.Lng, &e.Rating, &e.PhotoRef, &e.ViewedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Remove deletes one entry by place id. Returns whether a row existed.
func (s *Store) Remove(ctx context.Context, userID types.ID, placeID types.ID) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM recent_places WHERE uid = $1 AND place_id = $2`,
		string(userID), string(placeID))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Clear removes every entry for the user.
func (s *Store) Clear(ctx context.Context, userID types.ID) error {
	_, err := s.db.Exec(ctx, `DELETE FROM recent_places WHERE uid = $1`, string(userID))
	return err
}
