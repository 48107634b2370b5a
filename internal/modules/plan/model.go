// README: Travel plan aggregate persisted with the mobile app's wire schema.
package plan

import (
	"time"

	"rumbo/internal/types"
)

// TravelPlan is an immutable snapshot of a generated trip. The JSON tags are
// the Spanish field names the mobile client persists and reads; they are the
// wire schema, not a style choice, and must not be renamed.
type TravelPlan struct {
	ID          types.ID   `json:"id"`
	UserID      types.ID   `json:"userId"`
	Titulo      string     `json:"titulo"`
	Destino     string     `json:"destino"`
	FechaInicio string     `json:"fechaInicio"`
	FechaFin    string     `json:"fechaFin"`
	Duracion    int        `json:"duracion"`
	Itinerario  string     `json:"itinerario"`
	Actividades []DayGroup `json:"actividades"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// DayGroup is one day's activities inside the persisted plan.
type DayGroup struct {
	Dia         int            `json:"dia"`
	Fecha       string         `json:"fecha"`
	Actividades []PlanActivity `json:"actividades"`
}

// PlanActivity is one scheduled item in the persisted schema.
type PlanActivity struct {
	Hora        string `json:"hora"` // morning, afternoon, evening
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Lugar       string `json:"lugar"`
	Tipo        string `json:"tipo"` // activity, meal
}

// ReferencedPlace is a place row linked to a plan, written best-effort after
// the plan itself.
type ReferencedPlace struct {
	PlanID   types.ID
	PlaceID  types.ID
	Name     string
	Address  string
	Category string
	Position types.Point
	Rating   float64
}
