package components

import "testing"

func TestLayoutRowSumsExactly(t *testing.T) {
	tests := []struct {
		total, n int
	}{
		{120, 4},
		{121, 4},
		{123, 4},
		{80, 3},
		{7, 2},
	}
	for _, tt := range tests {
		widths := LayoutRow(tt.total, tt.n)
		if len(widths) != tt.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tt.total, tt.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
		// Widths differ by at most one column
		for _, w := range widths {
			if w < widths[len(widths)-1] || w > widths[0] {
				t.Errorf("LayoutRow(%d, %d) uneven widths %v", tt.total, tt.n, widths)
			}
		}
	}
}

func TestLayoutRowDegenerate(t *testing.T) {
	if got := LayoutRow(100, 0); got != nil {
		t.Errorf("LayoutRow(100, 0) = %v, want nil", got)
	}
}

func TestSparklineShiftsToMinimum(t *testing.T) {
	out := Sparkline([]float64{-200, -100, 0, 100}, "")
	if out == "" {
		t.Fatal("empty sparkline for non-empty series")
	}
}

func TestTabIdxByKey(t *testing.T) {
	if idx := TabIdxByKey('p'); idx != 1 {
		t.Errorf("TabIdxByKey('p') = %d, want 1", idx)
	}
	if idx := TabIdxByKey('z'); idx != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", idx)
	}
}
