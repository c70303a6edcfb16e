package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/model"
)

const defaultShoppingCategory = "Ingredientes"

// AddShoppingItems appends one unchecked item per non-blank name.
func AddShoppingItems(db *sql.DB, names []string, category string) (int, error) {
	names = cleanLines(names)
	if len(names) == 0 {
		return 0, fmt.Errorf("at least one shopping item is required")
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = defaultShoppingCategory
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin shopping tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	if err := insertShoppingItems(tx, names, category, nil); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit shopping tx: %w", err)
	}
	return len(names), nil
}

// AddRecipeToShoppingList copies every ingredient line of a recipe into the
// list. Lines already on the list are added again.
func AddRecipeToShoppingList(db *sql.DB, idOrTitle string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin shopping tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	recipe, err := resolveRecipe(tx, idOrTitle)
	if err != nil {
		return 0, err
	}
	if err := insertShoppingItems(tx, recipe.Ingredients, defaultShoppingCategory, &recipe.ID); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit shopping tx: %w", err)
	}
	return len(recipe.Ingredients), nil
}

func insertShoppingItems(q sqlExecutor, names []string, category string, recipeID *int64) error {
	for _, name := range names {
		if _, err := q.Exec(`INSERT INTO shopping_items(name, category, recipe_id) VALUES(?, ?, ?)`, name, category, recipeID); err != nil {
			return fmt.Errorf("add shopping item %q: %w", name, err)
		}
	}
	return nil
}

type ShoppingFilter struct {
	Pending bool
}

func ListShoppingItems(db *sql.DB, f ShoppingFilter) ([]model.ShoppingItem, error) {
	query := `
SELECT s.id, s.name, s.category, s.checked, s.recipe_id, IFNULL(r.title, ''), s.created_at
FROM shopping_items s
LEFT JOIN recipes r ON r.id = s.recipe_id`
	if f.Pending {
		query += ` WHERE s.checked = 0`
	}
	query += ` ORDER BY s.id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list shopping items: %w", err)
	}
	defer rows.Close()

	items := make([]model.ShoppingItem, 0)
	for rows.Next() {
		var item model.ShoppingItem
		var checked int
		var recipeID sql.NullInt64
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &checked, &recipeID, &item.RecipeTitle, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan shopping item: %w", err)
		}
		item.Checked = checked == 1
		if recipeID.Valid {
			id := recipeID.Int64
			item.RecipeID = &id
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shopping items: %w", err)
	}
	return items, nil
}

// ToggleShoppingItem flips the checked flag and returns the new state.
func ToggleShoppingItem(db *sql.DB, id int64) (bool, error) {
	res, err := db.Exec(`UPDATE shopping_items SET checked = 1 - checked WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("toggle shopping item %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read rows affected for toggle: %w", err)
	}
	if affected == 0 {
		return false, fmt.Errorf("shopping item %d not found", id)
	}
	var checked int
	if err := db.QueryRow(`SELECT checked FROM shopping_items WHERE id = ?`, id).Scan(&checked); err != nil {
		return false, fmt.Errorf("read shopping item %d: %w", id, err)
	}
	return checked == 1, nil
}

func DeleteShoppingItem(db *sql.DB, id int64) error {
	res, err := db.Exec(`DELETE FROM shopping_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete shopping item %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for delete: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("shopping item %d not found", id)
	}
	return nil
}

// ClearCheckedShoppingItems removes every checked item.
func ClearCheckedShoppingItems(db *sql.DB) (int64, error) {
	res, err := db.Exec(`DELETE FROM shopping_items WHERE checked = 1`)
	if err != nil {
		return 0, fmt.Errorf("clear checked shopping items: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read rows affected for clear: %w", err)
	}
	return n, nil
}
