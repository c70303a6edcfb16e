package nutrition_test

import (
	"testing"

	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/nutrition"
)

func TestMultiplier(t *testing.T) {
	t.Parallel()
	cases := []struct {
		line string
		want float64
	}{
		{line: "1kg de peixe (badejo ou robalo)", want: 5},
		{line: "meio quilo de carne", want: 5},
		{line: "250g de frango", want: 2.5},
		{line: "250 g de frango", want: 2.5},
		{line: "10 gemas", want: 0.1},
		{line: "2 ovos e 50g de manteiga", want: 0.5},
		{line: "1 xícara de goma de tapioca", want: 1.2},
		{line: "1 colher de sopa de manteiga", want: 0.15},
		{line: "2 latas de leite (use a lata de leite condensado)", want: 2},
		{line: "3 ovos", want: 0.5},
		{line: "manteiga", want: 0.5},
		{line: "g", want: 0.5},
		{line: "", want: 0.5},
	}
	for _, tc := range cases {
		if got := nutrition.Multiplier(tc.line); got != tc.want {
			t.Fatalf("Multiplier(%q): expected %v, got %v", tc.line, tc.want, got)
		}
	}
}

func TestMultiplierKiloWinsOverGrams(t *testing.T) {
	t.Parallel()
	if got := nutrition.Multiplier("1kg ou 300g de carne"); got != 5 {
		t.Fatalf("expected kg rule to win, got %v", got)
	}
}

func TestMultiplierLongDigitRunDoesNotFail(t *testing.T) {
	t.Parallel()
	got := nutrition.Multiplier("99999999999999999999999g de arroz")
	if got <= 0 {
		t.Fatalf("expected a positive multiplier, got %v", got)
	}
}

func TestReferenceTable(t *testing.T) {
	t.Parallel()
	keys := nutrition.Keywords()
	if len(keys) != 24 {
		t.Fatalf("expected 24 reference keywords, got %d", len(keys))
	}
	for _, k := range keys {
		if _, ok := nutrition.Lookup(k); !ok {
			t.Fatalf("keyword %q missing from lookup", k)
		}
	}
	p, ok := nutrition.Lookup("farinha")
	if !ok || p.Calories != 364 || p.CarbsG != 76 {
		t.Fatalf("unexpected farinha profile: %+v", p)
	}
	if _, ok := nutrition.Lookup("tofu"); ok {
		t.Fatalf("expected unknown keyword lookup to miss")
	}

	keys[0] = "mutated"
	if nutrition.Keywords()[0] == "mutated" {
		t.Fatalf("expected Keywords to return a copy")
	}
}
