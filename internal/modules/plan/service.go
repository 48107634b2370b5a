// README: Plan service orchestrates quota, generation, assembly, and persistence.
package plan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rumbo/internal/itinerary"
	"rumbo/internal/notify"
	"rumbo/internal/recommend"
	"rumbo/internal/types"
)

var (
	ErrNotFound        = errors.New("plan not found")
	ErrUnauthenticated = errors.New("no authenticated user")
	ErrBadRequest      = errors.New("bad request")
)

// QuotaConsumer deducts one free generation; exhaustion is its own error.
type QuotaConsumer interface {
	Consume(ctx context.Context, uid string) error
}

// Generator produces narrative content. A failing generator degrades to
// placeholder content rather than failing plan creation.
type Generator interface {
	Generate(ctx context.Context, req itinerary.Request, placeNames []string) (*itinerary.GeneratedContent, error)
}

type Service struct {
	store    *Store
	quota    QuotaConsumer
	gen      Generator
	notifier notify.Notifier
	log      *zap.Logger
}

// NewService wires the plan service. quota, gen, and notifier may be nil;
// each degrades gracefully when absent.
func NewService(store *Store, quota QuotaConsumer, gen Generator, notifier notify.Notifier, log *zap.Logger) *Service {
	return &Service{store: store, quota: quota, gen: gen, notifier: notifier, log: log}
}

type CreateCommand struct {
	UserID      types.ID
	Request     itinerary.Request
	Ranked      []recommend.Recommendation
	DeviceToken string
}

// CreateResult carries the persisted plan plus the assembled response and any
// warning accumulated from degraded steps.
type CreateResult struct {
	Plan     *TravelPlan
	Response itinerary.Response
	Warning  string
}

// Create builds and persists a travel plan. Quota exhaustion and plan-row
// write failures are hard errors; generator failures and partial referenced
// place writes degrade into warnings.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*CreateResult, error) {
	if cmd.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if cmd.Request.Destination == "" {
		return nil, ErrBadRequest
	}

	if s.quota != nil {
		if err := s.quota.Consume(ctx, string(cmd.UserID)); err != nil {
			return nil, err
		}
	}

	var generated *itinerary.GeneratedContent
	if s.gen != nil {
		g, err := s.gen.Generate(ctx, cmd.Request, topPlaceNames(cmd.Ranked))
		if err != nil {
			s.log.Warn("itinerary generation failed, using placeholder content",
				zap.String("uid", string(cmd.UserID)), zap.Error(err))
		} else {
			generated = g
		}
	}

	resp := itinerary.Assemble(cmd.Request, cmd.Ranked, generated, time.Now())

	p := fromResponse(cmd.UserID, cmd.Request, resp)
	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}

	warning := resp.Warning
	if failed := s.store.SaveReferencedPlaces(ctx, referencedPlaces(p.ID, cmd.Ranked)); failed > 0 {
		s.log.Warn("some referenced places were not saved",
			zap.String("plan_id", string(p.ID)), zap.Int("failed", failed))
		if warning != "" {
			warning += "; "
		}
		warning += fmt.Sprintf("%d referenced places were not saved", failed)
	}

	if s.notifier != nil && cmd.DeviceToken != "" {
		if err := s.notifier.NotifyPlanReady(ctx, cmd.DeviceToken, notify.PlanInfo{
			PlanID:      p.ID,
			Title:       p.Titulo,
			Destination: p.Destino,
			Duration:    p.Duracion,
		}); err != nil {
			s.log.Warn("plan-ready push failed", zap.String("plan_id", string(p.ID)), zap.Error(err))
		}
	}

	return &CreateResult{Plan: p, Response: resp, Warning: warning}, nil
}

// Get returns a plan owned by the caller. Plans belonging to other users are
// reported as not found rather than forbidden.
func (s *Service) Get(ctx context.Context, userID, id types.ID) (*TravelPlan, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrNotFound
	}
	return p, nil
}

// List returns the caller's plans, newest first.
func (s *Service) List(ctx context.Context, userID types.ID) ([]TravelPlan, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	return s.store.ListByUser(ctx, userID)
}

// fromResponse maps the assembled response into the persisted wire schema.
func fromResponse(userID types.ID, req itinerary.Request, resp itinerary.Response) *TravelPlan {
	groups := make([]DayGroup, len(resp.Days))
	for i, d := range resp.Days {
		g := DayGroup{Dia: d.Day, Fecha: d.Date, Actividades: []PlanActivity{}}
		for _, a := range d.Activities {
			g.Actividades = append(g.Actividades, PlanActivity{
				Hora:        string(a.Slot),
				Titulo:      a.Name,
				Descripcion: a.Description,
				Lugar:       a.Location,
				Tipo:        string(a.Kind),
			})
		}
		groups[i] = g
	}

	return &TravelPlan{
		ID:          types.ID(uuid.NewString()),
		UserID:      userID,
		Titulo:      "Viaje a " + req.Destination,
		Destino:     req.Destination,
		FechaInicio: req.StartDate,
		FechaFin:    req.EndDate,
		Duracion:    resp.Duration,
		Itinerario:  resp.Narrative,
		Actividades: groups,
		CreatedAt:   resp.GeneratedAt,
	}
}

func referencedPlaces(planID types.ID, ranked []recommend.Recommendation) []ReferencedPlace {
	refs := make([]ReferencedPlace, 0, len(ranked))
	for _, r := range ranked {
		refs = append(refs, ReferencedPlace{
			PlanID:   planID,
			PlaceID:  r.Place.ID,
			Name:     r.Place.Name,
			Address:  r.Place.Address,
			Category: r.Place.Category,
			Position: r.Place.Position,
			Rating:   r.Place.Rating,
		})
	}
	return refs
}

func topPlaceNames(ranked []recommend.Recommendation) []string {
	names := make([]string, 0, len(ranked))
	for _, r := range ranked {
		names = append(names, r.Place.Name)
	}
	return names
}
