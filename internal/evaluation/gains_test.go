package evaluation

import (
	"testing"

	"github.com/smarttask/typeval/internal/hierarchy"
)

// smallTree is the three-node tree used throughout: A at depth 1 under the
// root boundary, B and C both under A. Max depth 2.
func smallTree(t *testing.T) *hierarchy.Hierarchy {
	t.Helper()
	h, err := hierarchy.Load([]hierarchy.Row{
		{Name: "A", Depth: 1, Parent: "Thing"},
		{Name: "B", Depth: 2, Parent: "A"},
		{Name: "C", Depth: 2, Parent: "A"},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return h
}

func TestTypeGains(t *testing.T) {
	h := smallTree(t)

	tests := []struct {
		name      string
		predicted []string
		gold      []string
		want      []float64
	}{
		{
			name:      "exact match then children",
			predicted: []string{"A", "B", "C"},
			gold:      []string{"A"},
			// B and C are one hop from A: 1 - 1/2.
			want: []float64{1, 0.5, 0.5},
		},
		{
			name:      "gold leaf scores parent and sibling",
			predicted: []string{"B", "A", "C"},
			gold:      []string{"B"},
			// expand({B}) is {A, B}: the sibling C is off-topic and
			// gains 0.
			want: []float64{1, 0.5, 0},
		},
		{
			name:      "off-topic prediction gains zero",
			predicted: []string{"D"},
			gold:      []string{"A"},
			want:      []float64{0},
		},
		{
			name:      "closest gold type wins",
			predicted: []string{"B"},
			gold:      []string{"A", "B"},
			want:      []float64{1},
		},
		{
			name:      "empty prediction",
			predicted: nil,
			gold:      []string{"A"},
			want:      []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TypeGains(h, tt.predicted, tt.gold)
			if len(got) != len(tt.want) {
				t.Fatalf("TypeGains() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !almostEqual(got[i], tt.want[i]) {
					t.Errorf("TypeGains()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTypeGains_AlwaysInUnitInterval(t *testing.T) {
	h := smallTree(t)

	gains := TypeGains(h, []string{"A", "B", "C", "D"}, []string{"B", "C"})
	for i, g := range gains {
		if g < 0 || g > 1 {
			t.Errorf("gain[%d] = %v, want in [0, 1]", i, g)
		}
	}
	// Exact gold matches gain exactly 1.
	if !almostEqual(gains[1], 1) || !almostEqual(gains[2], 1) {
		t.Errorf("gold-type gains = %v, %v, want 1, 1", gains[1], gains[2])
	}
}

func TestIdealTypeGains(t *testing.T) {
	h := smallTree(t)

	// expand({A}) = {A, B, C}; scored against {A} that is [1, 0.5, 0.5]
	// after descending sort.
	got := IdealTypeGains(h, []string{"A"})
	want := []float64{1, 0.5, 0.5}

	if len(got) != len(want) {
		t.Fatalf("IdealTypeGains() = %v, want %v", got, want)
	}
	for i := range got {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("IdealTypeGains()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestIdealTypeGains_SortedDescending(t *testing.T) {
	h := smallTree(t)

	got := IdealTypeGains(h, []string{"B"})
	for i := 1; i < len(got); i++ {
		if got[i] > got[i-1] {
			t.Fatalf("IdealTypeGains() not sorted descending: %v", got)
		}
	}
}
