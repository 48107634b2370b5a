// README: Favorite toggle tests (identity checks + DB-backed toggle/eviction).
package favorite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"rumbo/internal/places"
	"rumbo/internal/testdb"
	"rumbo/internal/types"
)

func testPlace(id string) places.Place {
	return places.Place{
		ID:       types.ID(id),
		Name:     "Place " + id,
		Category: "park",
		Position: types.Point{Lat: 40.41, Lng: -3.68},
		Rating:   4.5,
	}
}

func TestToggleRequiresUser(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, "", testPlace("p1")); err != ErrUnauthenticated {
		t.Errorf("Toggle without user: got %v, want ErrUnauthenticated", err)
	}
	if _, err := svc.List(ctx, ""); err != ErrUnauthenticated {
		t.Errorf("List without user: got %v, want ErrUnauthenticated", err)
	}
	if _, err := svc.Toggle(ctx, "u1", places.Place{}); err != ErrBadRequest {
		t.Errorf("Toggle without place id: got %v, want ErrBadRequest", err)
	}
}

func TestToggleOnOff(t *testing.T) {
	db := testdb.Setup(t, "favorite_places")
	svc := NewService(NewStore(db))
	ctx := context.Background()

	on, err := svc.Toggle(ctx, "u1", testPlace("a"))
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if !on {
		t.Fatal("first toggle should favorite the place")
	}

	got, err := svc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].PlaceID != "a" {
		t.Fatalf("list after toggle on = %+v", got)
	}

	off, err := svc.Toggle(ctx, "u1", testPlace("a"))
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if off {
		t.Fatal("second toggle should remove the favorite")
	}

	got, err = svc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("list after toggle off = %+v", got)
	}
}

func TestToggleEvictsBeyondCap(t *testing.T) {
	db := testdb.Setup(t, "favorite_places")
	svc := NewService(NewStore(db))
	ctx := context.Background()

	for i := 0; i < MaxEntries+3; i++ {
		on, err := svc.Toggle(ctx, "u1", testPlace(fmt.Sprintf("p%02d", i)))
		if err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
		if !on {
			t.Fatalf("toggle %d removed instead of adding", i)
		}
		time.Sleep(2 * time.Millisecond)
	}

	got, err := svc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != MaxEntries {
		t.Fatalf("len = %d, want %d", len(got), MaxEntries)
	}
	if got[0].PlaceID != "p12" {
		t.Errorf("head = %v, want p12", got[0].PlaceID)
	}
}
