package places

import (
	"testing"

	"rumbo/internal/types"
)

func mk(id string) Place {
	return Place{ID: types.ID(id), Name: "Place " + id, Category: "restaurant"}
}

func ids(in []Place) []string {
	out := make([]string, len(in))
	for i, p := range in {
		out[i] = string(p.ID)
	}
	return out
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name  string
		lists [][]Place
		max   int
		want  []string
	}{
		{
			name:  "dedup across lists keeps first occurrence",
			lists: [][]Place{{mk("a"), mk("b")}, {mk("b"), mk("c")}},
			max:   0,
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "dedup within one list",
			lists: [][]Place{{mk("a"), mk("a"), mk("b")}},
			max:   0,
			want:  []string{"a", "b"},
		},
		{
			name:  "truncates at max",
			lists: [][]Place{{mk("a"), mk("b"), mk("c"), mk("d")}},
			max:   2,
			want:  []string{"a", "b"},
		},
		{
			name:  "empty input",
			lists: nil,
			max:   10,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Aggregate(tt.lists, tt.max))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestAggregateIdempotent(t *testing.T) {
	in := [][]Place{{mk("a"), mk("b"), mk("c")}}
	once := Aggregate(in, 0)
	twice := Aggregate([][]Place{once}, 0)
	if len(once) != len(twice) {
		t.Fatalf("len changed: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("order changed at %d: %v vs %v", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestAggregateSanitizes(t *testing.T) {
	in := [][]Place{{{ID: "x", Rating: 7.2, PriceLevel: 9}}}
	got := Aggregate(in, 0)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Rating != 5 || got[0].PriceLevel != 4 {
		t.Errorf("place not sanitized: %+v", got[0])
	}
	if got[0].Tags == nil || got[0].WeatherSuitable == nil {
		t.Error("nil slices not replaced")
	}
}
