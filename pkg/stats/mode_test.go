package stats

import "testing"

func TestModes(t *testing.T) {
	first, second, ok := Modes([]float64{1, 1, 1, 2, 2, 3})
	if !ok {
		t.Fatal("expected a second mode")
	}
	if first.Value != 1 || first.Count != 3 {
		t.Fatalf("first mode = %v, want value 1 count 3", first)
	}
	if second.Value != 2 || second.Count != 2 {
		t.Fatalf("second mode = %v, want value 2 count 2", second)
	}
}

func TestModesNoSecondMode(t *testing.T) {
	cases := map[string][]float64{
		"constant":   {5, 5, 5, 5},
		"singletons": {1, 1, 2, 3, 4},
		"all unique": {1, 2, 3, 4},
	}
	for name, x := range cases {
		if _, _, ok := Modes(x); ok {
			t.Fatalf("%s: unexpected second mode", name)
		}
	}
}

func TestModesTieBreaksByEncounterOrder(t *testing.T) {
	first, second, ok := Modes([]float64{7, 3, 7, 3, 9, 9})
	if !ok {
		t.Fatal("expected a second mode")
	}
	if first.Value != 7 {
		t.Fatalf("first mode = %g, want 7 (first encountered)", first.Value)
	}
	if second.Value != 3 {
		t.Fatalf("second mode = %g, want 3 (first encountered)", second.Value)
	}
}

func TestMode(t *testing.T) {
	if got := Mode([]float64{4, 4, 2, 1}); got != 4 {
		t.Fatalf("Mode = %g, want 4", got)
	}
}

func TestStringModes(t *testing.T) {
	first, second, ok := StringModes([]string{"RENAL", "RENAL", "COLON", "COLON", "BREAST"})
	if !ok {
		t.Fatal("expected a second mode")
	}
	if first.Value != "RENAL" || first.Count != 2 {
		t.Fatalf("first mode = %v", first)
	}
	if second.Value != "COLON" || second.Count != 2 {
		t.Fatalf("second mode = %v", second)
	}

	if _, _, ok := StringModes([]string{"A", "B", "B"}); ok {
		// B is the first mode; only the singleton A remains.
		t.Fatal("unexpected second mode")
	}
}
