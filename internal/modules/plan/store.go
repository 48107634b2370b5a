// README: Travel plan store backed by PostgreSQL, day activities as JSONB.
package plan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rumbo/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Save(ctx context.Context, p *TravelPlan) error {
	actividades, err := json.Marshal(p.Actividades)
	if err != nil {
		return fmt.Errorf("encoding actividades: %w", err)
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO travel_plans (
			id, uid, titulo, destino, fecha_inicio, fecha_fin,
			duracion, itinerario, actividades, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		string(p.ID),
		string(p.UserID),
		p.Titulo,
		p.Destino,
		p.FechaInicio,
		p.FechaFin,
		p.Duracion,
		p.Itinerario,
		actividades,
		p.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*TravelPlan, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, uid, titulo, destino, fecha_inicio, fecha_fin,
		       duracion, itinerario, actividades, created_at
		FROM travel_plans
		WHERE id = $1`, string(id),
	)

	var p TravelPlan
	var actividades []byte
	err := row.Scan(
		&p.ID, &p.UserID, &p.Titulo, &p.Destino, &p.FechaInicio, &p.FechaFin,
		&p.Duracion, &p.Itinerario, &actividades, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(actividades, &p.Actividades); err != nil {
		return nil, fmt.Errorf("decoding actividades: %w", err)
	}
	return &p, nil
}

// ListByUser returns the user's plans, newest first.
func (s *Store) ListByUser(ctx context.Context, userID types.ID) ([]TravelPlan, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, uid, titulo, destino, fecha_inicio, fecha_fin,
		       duracion, itinerario, actividades, created_at
		FROM travel_plans
		WHERE uid = $1
		ORDER BY created_at DESC`, string(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []TravelPlan{}
	for rows.Next() {
		var p TravelPlan
		var actividades []byte
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Titulo, &p.Destino, &p.FechaInicio, &p.FechaFin,
			&p.Duracion, &p.Itinerario, &actividades, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(actividades, &p.Actividades); err != nil {
			return nil, fmt.Errorf("decoding actividades: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SaveReferencedPlaces inserts one row per place. Failures do not abort the
// loop; the number of failed rows is returned so the caller can surface a
// warning without rolling back the plan itself.
func (s *Store) SaveReferencedPlaces(ctx context.Context, refs []ReferencedPlace) int {
	failed := 0
	for _, r := range refs {
		_, err := s.db.Exec(ctx, `
			INSERT INTO plan_places (plan_id, place_id, name, address, category, lat, lng, rating)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (plan_id, place_id) DO NOTHING`,
			string(r.PlanID), string(r.PlaceID), r.Name, r.Address, r.Category,
			r.Position.Lat, r.Position.Lng, r.Rating,
		)
		if err != nil {
			failed++
		}
	}
	return failed
}
