package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/model"
)

func AddCategory(db *sql.DB, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("category name is required")
	}
	if _, err := categoryIDByName(db, name); err == nil {
		return fmt.Errorf("category %q already exists", name)
	} else if err != sql.ErrNoRows {
		return err
	}
	if _, err := db.Exec(`INSERT INTO categories(name, name_norm) VALUES(?, ?)`, name, normalizeName(name)); err != nil {
		return fmt.Errorf("add category %q: %w", name, err)
	}
	return nil
}

func ListCategories(db *sql.DB) ([]model.Category, error) {
	rows, err := db.Query(`
SELECT c.id, c.name, (SELECT COUNT(1) FROM recipe_categories rc WHERE rc.category_id = c.id), c.created_at
FROM categories c
ORDER BY c.name_norm
`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]model.Category, 0)
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.RecipeCount, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

func RenameCategory(db *sql.DB, oldName, newName string) error {
	oldName = strings.TrimSpace(oldName)
	newName = strings.TrimSpace(newName)
	if oldName == "" || newName == "" {
		return fmt.Errorf("old and new category names are required")
	}
	id, err := categoryIDByName(db, oldName)
	if err == sql.ErrNoRows {
		return fmt.Errorf("category %q not found", oldName)
	}
	if err != nil {
		return err
	}
	if otherID, err := categoryIDByName(db, newName); err == nil && otherID != id {
		return fmt.Errorf("category %q already exists", newName)
	} else if err != nil && err != sql.ErrNoRows {
		return err
	}
	if _, err := db.Exec(`UPDATE categories SET name = ?, name_norm = ? WHERE id = ?`, newName, normalizeName(newName), id); err != nil {
		return fmt.Errorf("rename category %q to %q: %w", oldName, newName, err)
	}
	return nil
}

// DeleteCategory removes the category; recipes in it are only unlinked.
func DeleteCategory(db *sql.DB, name string) error {
	id, err := categoryIDByName(db, name)
	if err == sql.ErrNoRows {
		return fmt.Errorf("category %q not found", strings.TrimSpace(name))
	}
	if err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM categories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete category %q: %w", name, err)
	}
	return nil
}

// ToggleRecipeCategory adds the recipe to the category, or removes it when
// it is already there. It reports whether the recipe is now in the category.
func ToggleRecipeCategory(db *sql.DB, idOrTitle, category string) (bool, error) {
	tx, err := db.Begin()
	if err != nil {
		return false, fmt.Errorf("begin toggle category tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	recipe, err := resolveRecipe(tx, idOrTitle)
	if err != nil {
		return false, err
	}
	categoryID, err := categoryIDByName(tx, category)
	if err == sql.ErrNoRows {
		return false, fmt.Errorf("category %q not found", strings.TrimSpace(category))
	}
	if err != nil {
		return false, err
	}

	res, err := tx.Exec(`DELETE FROM recipe_categories WHERE recipe_id = ? AND category_id = ?`, recipe.ID, categoryID)
	if err != nil {
		return false, fmt.Errorf("unlink recipe category: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read rows affected for toggle: %w", err)
	}
	if removed == 0 {
		if _, err := tx.Exec(`INSERT INTO recipe_categories(recipe_id, category_id) VALUES(?, ?)`, recipe.ID, categoryID); err != nil {
			return false, fmt.Errorf("link recipe category: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit toggle category tx: %w", err)
	}
	return removed == 0, nil
}

// categoryIDByName returns sql.ErrNoRows unwrapped when the name is free.
func categoryIDByName(db sqlExecutor, name string) (int64, error) {
	norm := normalizeName(name)
	if norm == "" {
		return 0, fmt.Errorf("category name is required")
	}
	var id int64
	err := db.QueryRow(`SELECT id FROM categories WHERE name_norm = ?`, norm).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, err
	}
	if err != nil {
		return 0, fmt.Errorf("lookup category %q: %w", name, err)
	}
	return id, nil
}

// linkRecipeCategories creates missing categories and links recipeID to
// each of them. Existing links are kept.
func linkRecipeCategories(q sqlExecutor, recipeID int64, names []string) error {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, err := q.Exec(`INSERT OR IGNORE INTO categories(name, name_norm) VALUES(?, ?)`, name, normalizeName(name)); err != nil {
			return fmt.Errorf("ensure category %q: %w", name, err)
		}
		id, err := categoryIDByName(q, name)
		if err != nil {
			return err
		}
		if _, err := q.Exec(`INSERT OR IGNORE INTO recipe_categories(recipe_id, category_id) VALUES(?, ?)`, recipeID, id); err != nil {
			return fmt.Errorf("link recipe category %q: %w", name, err)
		}
	}
	return nil
}

func recipeCategoryNames(q sqlExecutor, recipeID int64) ([]string, error) {
	rows, err := q.Query(`
SELECT c.name FROM recipe_categories rc
JOIN categories c ON c.id = rc.category_id
WHERE rc.recipe_id = ?
ORDER BY c.name_norm
`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("list recipe categories: %w", err)
	}
	defer rows.Close()
	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan recipe category: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipe categories: %w", err)
	}
	return names, nil
}

func categoriesByRecipe(q sqlExecutor) (map[int64][]string, error) {
	rows, err := q.Query(`
SELECT rc.recipe_id, c.name FROM recipe_categories rc
JOIN categories c ON c.id = rc.category_id
ORDER BY rc.recipe_id, c.name_norm
`)
	if err != nil {
		return nil, fmt.Errorf("list recipe categories: %w", err)
	}
	defer rows.Close()
	out := map[int64][]string{}
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan recipe category: %w", err)
		}
		out[id] = append(out[id], name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipe categories: %w", err)
	}
	return out, nil
}
