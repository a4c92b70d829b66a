package stream

import (
	"strings"
	"testing"
)

func TestGenerator(t *testing.T) {
	t.Run("Element Shape", func(t *testing.T) {
		gen := NewGenerator(1)
		for i := 0; i < 1000; i++ {
			e := gen.String()
			if len(e) < 5 || len(e) > 30 {
				t.Fatalf("element length %d outside [5, 30]", len(e))
			}
			for _, c := range e {
				if !strings.ContainsRune(alphabet, c) {
					t.Fatalf("element %q contains %q outside the alphabet", e, c)
				}
			}
		}
	})

	t.Run("Repeatable For Same Seed", func(t *testing.T) {
		a := NewGenerator(42).Strings(500)
		b := NewGenerator(42).Strings(500)
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("streams diverge at %d: %q vs %q", i, a[i], b[i])
			}
		}
	})

	t.Run("Different Seeds Differ", func(t *testing.T) {
		a := NewGenerator(1).Strings(100)
		b := NewGenerator(2).Strings(100)
		same := 0
		for i := range a {
			if a[i] == b[i] {
				same++
			}
		}
		if same == len(a) {
			t.Error("different seeds produced identical streams")
		}
	})
}

func TestSplitByPercent(t *testing.T) {
	gen := NewGenerator(3)
	elements := gen.Strings(1000)

	percents := []int{10, 25, 50, 100}
	parts := SplitByPercent(elements, percents)

	if len(parts) != len(percents) {
		t.Fatalf("got %d parts, want %d", len(parts), len(percents))
	}
	for i, p := range percents {
		want := len(elements) * p / 100
		if len(parts[i]) != want {
			t.Errorf("part %d has %d elements, want %d", i, len(parts[i]), want)
		}
	}

	// Later parts extend earlier ones
	for i := 1; i < len(parts); i++ {
		prev := parts[i-1]
		for j := range prev {
			if parts[i][j] != prev[j] {
				t.Fatalf("part %d is not a prefix extension of part %d", i, i-1)
			}
		}
	}
}

func TestCountUnique(t *testing.T) {
	cases := []struct {
		name     string
		elements []string
		want     int
	}{
		{"Empty", nil, 0},
		{"All Distinct", []string{"a", "b", "c"}, 3},
		{"With Duplicates", []string{"a", "b", "a", "c", "b", "a"}, 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CountUnique(c.elements); got != c.want {
				t.Errorf("CountUnique = %d, want %d", got, c.want)
			}
		})
	}
}
