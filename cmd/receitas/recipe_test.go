package receitas

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRecipeLifecycle(t *testing.T) {
	path := testDBPath(t)

	out, err := runCLI(t, nil, "--db", path, "recipe", "add",
		"--title", "Omelete",
		"--ingredient", "3 ovos",
		"--ingredient", "100g de queijo",
		"--instructions", "Bata e frite",
		"--category", "Café da Manhã",
	)
	if err != nil {
		t.Fatalf("recipe add: %v", err)
	}
	if !strings.Contains(out, "Created recipe 1") {
		t.Fatalf("unexpected add output %q", out)
	}

	out, err = runCLI(t, nil, "--db", path, "recipe", "show", "omelete")
	if err != nil {
		t.Fatalf("recipe show: %v", err)
	}
	for _, want := range []string{"Title: Omelete", "  - 3 ovos", "  - 100g de queijo", "Calorias: 480 kcal"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in show output:\n%s", want, out)
		}
	}

	if _, err := runCLI(t, nil, "--db", path, "recipe", "favorite", "1"); err != nil {
		t.Fatalf("recipe favorite: %v", err)
	}
	out, err = runCLI(t, nil, "--db", path, "recipe", "list", "--favorites")
	if err != nil {
		t.Fatalf("recipe list: %v", err)
	}
	if !strings.Contains(out, "Omelete") {
		t.Fatalf("expected favorite in list:\n%s", out)
	}

	out, err = runCLI(t, nil, "--db", path, "recipe", "list", "--category", "almoço")
	if err != nil {
		t.Fatalf("recipe list by category: %v", err)
	}
	if strings.Contains(out, "Omelete") {
		t.Fatalf("expected category filter to exclude Omelete:\n%s", out)
	}

	if _, err := runCLI(t, nil, "--db", path, "recipe", "update", "Omelete",
		"--title", "Omelete simples",
		"--ingredient", "3 ovos",
		"--instructions", "Bata e frite",
	); err != nil {
		t.Fatalf("recipe update: %v", err)
	}
	out, err = runCLI(t, nil, "--db", path, "recipe", "recalc", "omelete simples")
	if err != nil {
		t.Fatalf("recipe recalc: %v", err)
	}
	if !strings.Contains(out, "Calorias: 78 kcal") {
		t.Fatalf("expected recalculated calories, got:\n%s", out)
	}

	if _, err := runCLI(t, nil, "--db", path, "doctor"); err != nil {
		t.Fatalf("doctor: %v", err)
	}

	if _, err := runCLI(t, nil, "--db", path, "recipe", "delete", "omelete simples"); err != nil {
		t.Fatalf("recipe delete: %v", err)
	}
	if _, err := runCLI(t, nil, "--db", path, "recipe", "show", "omelete simples"); err == nil {
		t.Fatalf("expected deleted recipe lookup to fail")
	}
}

func TestRecipeAddRequiresIngredients(t *testing.T) {
	path := testDBPath(t)
	_, err := runCLI(t, nil, "--db", path, "recipe", "add", "--title", "Vazio", "--instructions", "Nada")
	if err == nil {
		t.Fatalf("expected recipe without ingredients to fail")
	}
}

func TestRecipeAddIngredientsFromStdin(t *testing.T) {
	path := testDBPath(t)
	stdin := strings.NewReader("500g de feijão preto\n4 dentes de alho\n")
	if _, err := runCLI(t, stdin, "--db", path, "recipe", "add",
		"--title", "Feijão",
		"--ingredients-file", "-",
		"--instructions", "Cozinhe",
	); err != nil {
		t.Fatalf("recipe add: %v", err)
	}
	out, err := runCLI(t, nil, "--db", path, "recipe", "show", "feijão")
	if err != nil {
		t.Fatalf("recipe show: %v", err)
	}
	if !strings.Contains(out, "  - 4 dentes de alho") {
		t.Fatalf("expected stdin lines to be stored:\n%s", out)
	}
}

func TestRecipeSeedExportImport(t *testing.T) {
	src := testDBPath(t)
	out, err := runCLI(t, nil, "--db", src, "recipe", "seed")
	if err != nil {
		t.Fatalf("recipe seed: %v", err)
	}
	if !strings.Contains(out, "Seeded 6 recipe(s)") {
		t.Fatalf("unexpected seed output %q", out)
	}

	exportPath := filepath.Join(t.TempDir(), "receitas.json")
	if _, err := runCLI(t, nil, "--db", src, "recipe", "export", "--out", exportPath); err != nil {
		t.Fatalf("recipe export: %v", err)
	}
	if _, err := os.Stat(exportPath); err != nil {
		t.Fatalf("expected export file: %v", err)
	}

	dst := testDBPath(t)
	out, err = runCLI(t, nil, "--db", dst, "recipe", "import", "--in", exportPath)
	if err != nil {
		t.Fatalf("recipe import: %v", err)
	}
	if !strings.Contains(out, "created=6") {
		t.Fatalf("unexpected import output %q", out)
	}
	if _, err := runCLI(t, nil, "--db", dst, "recipe", "import", "--in", exportPath); err == nil {
		t.Fatalf("expected default fail mode to reject duplicates")
	}
	out, err = runCLI(t, nil, "--db", dst, "recipe", "import", "--in", exportPath, "--mode", "skip")
	if err != nil {
		t.Fatalf("recipe import skip: %v", err)
	}
	if !strings.Contains(out, "skipped=6") {
		t.Fatalf("unexpected skip output %q", out)
	}
}

func TestRecipeImportTranscriptionFromStdin(t *testing.T) {
	path := testDBPath(t)
	stdin := strings.NewReader(`{"title":"Receita Importada","ingredients":"1 lata de leite condensado\n2 colheres de sopa de chocolate em pó","text":"Mexa até desgrudar"}`)
	if _, err := runCLI(t, stdin, "--db", path, "recipe", "import", "--in", "-"); err != nil {
		t.Fatalf("recipe import: %v", err)
	}
	out, err := runCLI(t, nil, "--db", path, "recipe", "show", "receita importada")
	if err != nil {
		t.Fatalf("recipe show: %v", err)
	}
	if !strings.Contains(out, "Mexa até desgrudar") || !strings.Contains(out, "Category: Diversos") {
		t.Fatalf("unexpected imported recipe:\n%s", out)
	}
}

func TestCategoryAndSearchCommands(t *testing.T) {
	path := testDBPath(t)
	if _, err := runCLI(t, nil, "--db", path, "recipe", "seed"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := runCLI(t, nil, "--db", path, "category", "add", "Festa Junina"); err != nil {
		t.Fatalf("category add: %v", err)
	}
	if _, err := runCLI(t, nil, "--db", path, "category", "add", "festa junina"); err == nil {
		t.Fatalf("expected duplicate category to fail")
	}
	out, err := runCLI(t, nil, "--db", path, "category", "toggle", "Pão de Queijo Mineiro", "Festa Junina")
	if err != nil {
		t.Fatalf("category toggle: %v", err)
	}
	if !strings.Contains(out, "Added") {
		t.Fatalf("unexpected toggle output %q", out)
	}

	out, err = runCLI(t, nil, "--db", path, "category", "list")
	if err != nil {
		t.Fatalf("category list: %v", err)
	}
	if !strings.Contains(out, "Festa Junina") || !strings.Contains(out, "1") {
		t.Fatalf("unexpected category list:\n%s", out)
	}

	out, err = runCLI(t, nil, "--db", path, "recipe", "list", "--in", "festa junina")
	if err != nil {
		t.Fatalf("recipe list --in: %v", err)
	}
	if !strings.Contains(out, "Pão de Queijo Mineiro") || strings.Contains(out, "Feijoada") {
		t.Fatalf("unexpected user category listing:\n%s", out)
	}

	out, err = runCLI(t, nil, "--db", path, "recipe", "search", "carne", "seca")
	if err != nil {
		t.Fatalf("recipe search: %v", err)
	}
	if !strings.Contains(out, "Feijoada Completa") || !strings.Contains(out, "Arroz de Carreteiro") || strings.Contains(out, "Brigadeiro") {
		t.Fatalf("unexpected search output:\n%s", out)
	}
	out, err = runCLI(t, nil, "--db", path, "recipe", "search", "lagosta")
	if err != nil {
		t.Fatalf("recipe search without hits: %v", err)
	}
	if !strings.Contains(out, "No recipes found") {
		t.Fatalf("unexpected empty search output %q", out)
	}

	out, err = runCLI(t, nil, "--db", path, "recipe", "show", "Pão de Queijo Mineiro")
	if err != nil {
		t.Fatalf("recipe show: %v", err)
	}
	if !strings.Contains(out, "My categories: Festa Junina") {
		t.Fatalf("expected user categories in show output:\n%s", out)
	}
}
