package db_test

import (
	"path/filepath"
	"testing"

	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/db"
)

func TestApplyMigrationsIdempotent(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "receitas.db")
	sqldb, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()

	if v, err := db.SchemaVersion(sqldb); err != nil || v != 0 {
		t.Fatalf("expected fresh database at schema v0, got %d %v", v, err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("first apply migrations: %v", err)
	}
	if v, err := db.SchemaVersion(sqldb); err != nil || v != 6 {
		t.Fatalf("expected schema v6, got %d %v", v, err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("second apply migrations: %v", err)
	}

	var migrationCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&migrationCount); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if migrationCount != 6 {
		t.Fatalf("expected 6 migration versions, got %d", migrationCount)
	}

	for _, table := range []string{"recipes", "recipe_ingredients", "app_config", "categories", "recipe_categories", "meal_plans", "shopping_items"} {
		var n int
		if err := sqldb.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&n); err != nil {
			t.Fatalf("check %s table: %v", table, err)
		}
		if n != 1 {
			t.Fatalf("expected %s table to exist", table)
		}
	}

	var favoriteColCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM pragma_table_info('recipes') WHERE name = 'is_favorite'`).Scan(&favoriteColCount); err != nil {
		t.Fatalf("check recipes favorite column: %v", err)
	}
	if favoriteColCount != 1 {
		t.Fatalf("expected is_favorite column in recipes table")
	}
}

func TestIngredientLinesCascadeOnRecipeDelete(t *testing.T) {
	t.Parallel()

	sqldb, err := db.Open(filepath.Join(t.TempDir(), "receitas.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	res, err := sqldb.Exec(`INSERT INTO recipes(title, title_norm, instructions) VALUES('Pudim', 'pudim', 'Asse')`)
	if err != nil {
		t.Fatalf("insert recipe: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("recipe id: %v", err)
	}
	if _, err := sqldb.Exec(`INSERT INTO recipe_ingredients(recipe_id, position, line) VALUES(?, 0, '3 ovos')`, id); err != nil {
		t.Fatalf("insert ingredient: %v", err)
	}
	if _, err := sqldb.Exec(`DELETE FROM recipes WHERE id = ?`, id); err != nil {
		t.Fatalf("delete recipe: %v", err)
	}

	var remaining int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM recipe_ingredients`).Scan(&remaining); err != nil {
		t.Fatalf("count ingredients: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("expected ingredient lines to cascade, %d remain", remaining)
	}
}

func TestRecipeDeleteClearsPlansAndDetachesShoppingItems(t *testing.T) {
	t.Parallel()

	sqldb, err := db.Open(filepath.Join(t.TempDir(), "receitas.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	res, err := sqldb.Exec(`INSERT INTO recipes(title, title_norm, instructions) VALUES('Pudim', 'pudim', 'Asse')`)
	if err != nil {
		t.Fatalf("insert recipe: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("recipe id: %v", err)
	}
	if _, err := sqldb.Exec(`INSERT INTO meal_plans(plan_date, meal, recipe_id) VALUES('2026-10-15', 'jantar', ?)`, id); err != nil {
		t.Fatalf("insert meal plan: %v", err)
	}
	if _, err := sqldb.Exec(`INSERT INTO shopping_items(name, recipe_id) VALUES('3 ovos', ?)`, id); err != nil {
		t.Fatalf("insert shopping item: %v", err)
	}
	if _, err := sqldb.Exec(`DELETE FROM recipes WHERE id = ?`, id); err != nil {
		t.Fatalf("delete recipe: %v", err)
	}

	var plans int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM meal_plans`).Scan(&plans); err != nil {
		t.Fatalf("count meal plans: %v", err)
	}
	if plans != 0 {
		t.Fatalf("expected meal plans to cascade, %d remain", plans)
	}
	var items, linked int
	if err := sqldb.QueryRow(`SELECT COUNT(1), COUNT(recipe_id) FROM shopping_items`).Scan(&items, &linked); err != nil {
		t.Fatalf("count shopping items: %v", err)
	}
	if items != 1 || linked != 0 {
		t.Fatalf("expected shopping item kept without recipe link, got items=%d linked=%d", items, linked)
	}
}
