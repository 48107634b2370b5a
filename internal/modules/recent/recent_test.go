// README: Recent-places service tests (identity checks + DB-backed eviction).
package recent

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
		Address:  "Gran Vía 1",
		Category: "restaurant",
		Position: types.Point{Lat: 40.42, Lng: -3.70},
		Rating:   4.2,
	}
}

func TestRecordRequiresUser(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	if err := svc.Record(ctx, "", testPlace("p1")); err != ErrUnauthenticated {
		t.Errorf("Record without user: got %v, want ErrUnauthenticated", err)
	}
	if _, err := svc.List(ctx, ""); err != ErrUnauthenticated {
		t.Errorf("List without user: got %v, want ErrUnauthenticated", err)
	}
	if err := svc.Clear(ctx, ""); err != ErrUnauthenticated {
		t.Errorf("Clear without user: got %v, want ErrUnauthenticated", err)
	}
}

func TestRecordRequiresPlaceID(t *testing.T) {
	svc := NewService(nil)
	if err := svc.Record(context.Background(), "u1", places.Place{}); err != ErrBadRequest {
		t.Errorf("Record without place id: got %v, want ErrBadRequest", err)
	}
}

func TestRecordUpsertAndOrder(t *testing.T) {
	db := testdb.Setup(t, "recent_places")
	svc := NewService(NewStore(db))
	ctx := context.Background()

	if err := svc.Record(ctx, "u1", testPlace("a")); err != nil {
		t.Fatalf("record a: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if err := svc.Record(ctx, "u1", testPlace("b")); err != nil {
		t.Fatalf("record b: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	// Re-recording "a" moves it back to the front without duplicating.
	if err := svc.Record(ctx, "u1", testPlace("a")); err != nil {
		t.Fatalf("re-record a: %v", err)
	}

	got, err := svc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].PlaceID != "a" || got[1].PlaceID != "b" {
		t.Errorf("order = %v, %v, want a, b", got[0].PlaceID, got[1].PlaceID)
	}
}

func TestRecordEvictsBeyondCap(t *testing.T) {
	db := testdb.Setup(t, "recent_places")
	svc := NewService(NewStore(db))
	ctx := context.Background()

	for i := 0; i < MaxEntries+5; i++ {
		if err := svc.Record(ctx, "u1", testPlace(fmt.Sprintf("p%02d", i))); err != nil {
			t.Fatalf("record %d: %v", i, err)
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
	// Newest first: the last recorded place leads, the first five are gone.
	if got[0].PlaceID != "p14" {
		t.Errorf("head = %v, want p14", got[0].PlaceID)
	}
	for _, e := range got {
		if e.PlaceID < "p05" {
			t.Errorf("evicted entry %v still present", e.PlaceID)
		}
	}
}

func TestRemoveSingleEntry(t *testing.T) {
	db := testdb.Setup(t, "recent_places")
	svc := NewService(NewStore(db))
	ctx := context.Background()

	if err := svc.Remove(ctx, "", "a"); err != ErrUnauthenticated {
		t.Errorf("Remove without user: got %v, want ErrUnauthenticated", err)
	}
	if err := svc.Remove(ctx, "u1", ""); err != ErrBadRequest {
		t.Errorf("Remove without place id: got %v, want ErrBadRequest", err)
	}

	if err := svc.Record(ctx, "u1", testPlace("a")); err != nil {
		t.Fatalf("record a: %v", err)
	}
	if err := svc.Record(ctx, "u1", testPlace("b")); err != nil {
		t.Fatalf("record b: %v", err)
	}

	if err := svc.Remove(ctx, "u1", "a"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	got, err := svc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].PlaceID != "b" {
		t.Errorf("list after remove = %v, want just b", got)
	}

	// Removing a missing id is a no-op, not an error.
	if err := svc.Remove(ctx, "u1", "zzz"); err != nil {
		t.Errorf("remove missing: %v", err)
	}
}

func TestClearIsolatedPerUser(t *testing.T) {
	db := testdb.Setup(t, "recent_places")
	svc := NewService(NewStore(db))
	ctx := context.Background()

	if err := svc.Record(ctx, "u1", testPlace("a")); err != nil {
		t.Fatalf("record u1: %v", err)
	}
	if err := svc.Record(ctx, "u2", testPlace("a")); err != nil {
		t.Fatalf("record u2: %v", err)
	}

	if err := svc.Clear(ctx, "u1"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	u1, _ := svc.List(ctx, "u1")
	u2, _ := svc.List(ctx, "u2")
	if len(u1) != 0 {
		t.Errorf("u1 still has %d entries", len(u1))
	}
	if len(u2) != 1 {
		t.Errorf("u2 lost entries, has %d", len(u2))
	}
}
