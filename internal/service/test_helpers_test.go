package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/db"
	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "receitas.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })
	return sqldb
}

func mustCreateRecipe(t *testing.T, sqldb *sql.DB, in service.RecipeInput) int64 {
	t.Helper()
	id, err := service.CreateRecipe(sqldb, in)
	if err != nil {
		t.Fatalf("create recipe %q: %v", in.Title, err)
	}
	return id
}
