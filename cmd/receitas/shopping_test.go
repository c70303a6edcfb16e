package receitas

import (
	"strings"
	"testing"
)

func TestShoppingCommands(t *testing.T) {
	path := testDBPath(t)
	if _, err := runCLI(t, nil, "--db", path, "recipe", "add",
		"--title", "Pudim", "--ingredient", "1 lata de leite condensado", "--ingredient", "3 ovos", "--instructions", "Asse"); err != nil {
		t.Fatalf("recipe add: %v", err)
	}

	if _, err := runCLI(t, nil, "--db", path, "shopping", "add"); err == nil {
		t.Fatalf("expected shopping add without items to fail")
	}
	out, err := runCLI(t, nil, "--db", path, "shopping", "add", "--recipe", "pudim", "Detergente")
	if err != nil {
		t.Fatalf("shopping add: %v", err)
	}
	if !strings.Contains(out, "Added 3 item(s)") {
		t.Fatalf("unexpected shopping add output %q", out)
	}

	if _, err := runCLI(t, nil, "--db", path, "shopping", "toggle", "1"); err != nil {
		t.Fatalf("shopping toggle: %v", err)
	}
	out, err = runCLI(t, nil, "--db", path, "shopping", "list")
	if err != nil {
		t.Fatalf("shopping list: %v", err)
	}
	for _, want := range []string{"[x]", "1 lata de leite condensado", "Pudim", "Detergente", "2 pending item(s)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in shopping list:\n%s", want, out)
		}
	}

	out, err = runCLI(t, nil, "--db", path, "shopping", "clear")
	if err != nil {
		t.Fatalf("shopping clear: %v", err)
	}
	if !strings.Contains(out, "Removed 1 checked item(s)") {
		t.Fatalf("unexpected clear output %q", out)
	}
	if _, err := runCLI(t, nil, "--db", path, "shopping", "delete", "3"); err != nil {
		t.Fatalf("shopping delete: %v", err)
	}
	out, err = runCLI(t, nil, "--db", path, "shopping", "list", "--pending")
	if err != nil {
		t.Fatalf("shopping list pending: %v", err)
	}
	if strings.Contains(out, "Detergente") || !strings.Contains(out, "3 ovos") {
		t.Fatalf("unexpected pending list:\n%s", out)
	}
}
