package receitas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEstimateFromArgs(t *testing.T) {
	out, err := runCLI(t, nil, "estimate", "1 xícara de farinha")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	want := "Calorias: 437 kcal\nProteínas: 12g\nCarboidratos: 91.2g\nGorduras: 1.2g\nFibras: 3.2g\n"
	if out != want {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestEstimateFromStdinJSON(t *testing.T) {
	stdin := strings.NewReader("100g de arroz\n\nsal a gosto\n")
	out, err := runCLI(t, stdin, "estimate", "--json")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	var got estimateOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode json %q: %v", out, err)
	}
	if got.Nutrition.Calories != 130 || got.Nutrition.CarbsG != 28 {
		t.Fatalf("unexpected nutrition %+v", got.Nutrition)
	}
	if len(got.Contributions) != 0 {
		t.Fatalf("expected no contributions without --explain")
	}
}

func TestEstimateEmptyInputIsZero(t *testing.T) {
	out, err := runCLI(t, strings.NewReader(""), "estimate", "--json")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if !strings.Contains(out, `"calories": 0`) {
		t.Fatalf("expected zero calories, got %s", out)
	}
}

func TestEstimateFileExplain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ingredientes.txt")
	if err := os.WriteFile(path, []byte("queijo e manteiga\n"), 0o644); err != nil {
		t.Fatalf("write ingredients: %v", err)
	}
	out, err := runCLI(t, nil, "estimate", "--file", path, "--explain")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	for _, want := range []string{"manteiga", "queijo", "0.50", "Calorias: 560 kcal"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestEstimateMissingFile(t *testing.T) {
	if _, err := runCLI(t, nil, "estimate", "--file", filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected missing file to fail")
	}
}
