package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/model"
	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/nutrition"
)

const (
	defaultPrepTime = "30 min"
	defaultServings = "4 porções"
	defaultCategory = "Diversos"
	defaultSource   = "Minha receita"
)

type RecipeInput struct {
	Title        string
	Ingredients  []string
	Instructions string
	PrepTime     string
	Servings     string
	Category     string
	ImageURL     string
	Source       string
}

type ListRecipesFilter struct {
	Category     string
	UserCategory string
	Favorites    bool
	// Query matches title, category, ingredient lines and user categories.
	Query string
}

// SplitIngredientLines turns a pasted ingredient block into one line per
// ingredient, dropping blank lines.
func SplitIngredientLines(text string) []string {
	return cleanLines(strings.Split(text, "\n"))
}

func cleanLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

// CreateRecipe stores a finalized recipe together with its nutrition
// estimate.
func CreateRecipe(db *sql.DB, in RecipeInput) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin create recipe tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	id, err := createRecipe(tx, in)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit create recipe: %w", err)
	}
	return id, nil
}

func createRecipe(q sqlExecutor, in RecipeInput) (int64, error) {
	in, err := prepareRecipeInput(q, in)
	if err != nil {
		return 0, err
	}
	if _, err := recipeIDByTitle(q, in.Title); err == nil {
		return 0, fmt.Errorf("recipe %q already exists", in.Title)
	} else if err != sql.ErrNoRows {
		return 0, err
	}

	est := nutrition.Estimate(in.Ingredients)
	res, err := q.Exec(`
INSERT INTO recipes(title, title_norm, instructions, prep_time, servings, category, image_url, source, calories, protein_g, carbs_g, fat_g, fiber_g)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, in.Title, normalizeName(in.Title), in.Instructions, in.PrepTime, in.Servings, in.Category, in.ImageURL, in.Source,
		est.Calories, est.ProteinG, est.CarbsG, est.FatG, est.FiberG)
	if err != nil {
		return 0, fmt.Errorf("create recipe: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve recipe id: %w", err)
	}
	if err := insertIngredientLines(q, id, in.Ingredients); err != nil {
		return 0, err
	}
	return id, nil
}

const recipeColumns = `id, title, instructions, prep_time, servings, category, image_url, source, is_favorite,
  calories, protein_g, carbs_g, fat_g, fiber_g, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (model.Recipe, error) {
	var r model.Recipe
	var favorite int
	err := row.Scan(&r.ID, &r.Title, &r.Instructions, &r.PrepTime, &r.Servings, &r.Category, &r.ImageURL, &r.Source, &favorite,
		&r.Nutrition.Calories, &r.Nutrition.ProteinG, &r.Nutrition.CarbsG, &r.Nutrition.FatG, &r.Nutrition.FiberG,
		&r.CreatedAt, &r.UpdatedAt)
	r.IsFavorite = favorite == 1
	return r, err
}

func ListRecipes(db *sql.DB, filter ListRecipesFilter) ([]model.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes`
	if filter.Favorites {
		query += ` WHERE is_favorite = 1`
	}
	query += ` ORDER BY title_norm`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	all := make([]model.Recipe, 0)
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		all = append(all, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}

	lines, err := ingredientLinesByRecipe(db)
	if err != nil {
		return nil, err
	}
	userCategories, err := categoriesByRecipe(db)
	if err != nil {
		return nil, err
	}
	items := make([]model.Recipe, 0, len(all))
	for _, r := range all {
		r.Ingredients = nonNil(lines[r.ID])
		r.UserCategories = nonNil(userCategories[r.ID])
		if !filter.matches(r) {
			continue
		}
		items = append(items, r)
	}
	return items, nil
}

// SQLite's LOWER only folds ASCII, so text filters like "Almoço" are
// matched in Go.
func (f ListRecipesFilter) matches(r model.Recipe) bool {
	if c := strings.TrimSpace(f.Category); c != "" && !strings.EqualFold(r.Category, c) {
		return false
	}
	if c := strings.TrimSpace(f.UserCategory); c != "" && !containsFold(r.UserCategories, c) {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(f.Query))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Title), term) || strings.Contains(strings.ToLower(r.Category), term) {
		return true
	}
	for _, line := range r.Ingredients {
		if strings.Contains(strings.ToLower(line), term) {
			return true
		}
	}
	for _, c := range r.UserCategories {
		if strings.Contains(strings.ToLower(c), term) {
			return true
		}
	}
	return false
}

// SearchRecipes returns recipes whose title, category, ingredient lines or
// user categories contain term.
func SearchRecipes(db *sql.DB, term string) ([]model.Recipe, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("search term is required")
	}
	return ListRecipes(db, ListRecipesFilter{Query: term})
}

// ResolveRecipe accepts a numeric id or a case-insensitive title.
func ResolveRecipe(db *sql.DB, idOrTitle string) (*model.Recipe, error) {
	return resolveRecipe(db, idOrTitle)
}

func resolveRecipe(q sqlExecutor, idOrTitle string) (*model.Recipe, error) {
	idOrTitle = strings.TrimSpace(idOrTitle)
	if idOrTitle == "" {
		return nil, fmt.Errorf("recipe identifier is required")
	}
	var row *sql.Row
	if id, ok := parseIDLoose(idOrTitle); ok {
		row = q.QueryRow(`SELECT `+recipeColumns+` FROM recipes WHERE id = ?`, id)
	} else {
		row = q.QueryRow(`SELECT `+recipeColumns+` FROM recipes WHERE title_norm = ?`, normalizeName(idOrTitle))
	}
	r, err := scanRecipe(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("recipe %q not found", idOrTitle)
		}
		return nil, fmt.Errorf("resolve recipe %q: %w", idOrTitle, err)
	}
	if r.Ingredients, err = ingredientLines(q, r.ID); err != nil {
		return nil, err
	}
	if r.UserCategories, err = recipeCategoryNames(q, r.ID); err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateRecipe replaces every field and ingredient line and re-estimates
// nutrition. The favorite flag and user categories are kept.
func UpdateRecipe(db *sql.DB, idOrTitle string, in RecipeInput) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin update recipe tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := updateRecipe(tx, idOrTitle, in); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update recipe: %w", err)
	}
	return nil
}

func updateRecipe(q sqlExecutor, idOrTitle string, in RecipeInput) error {
	recipe, err := resolveRecipe(q, idOrTitle)
	if err != nil {
		return err
	}
	in, err = prepareRecipeInput(q, in)
	if err != nil {
		return err
	}
	if otherID, err := recipeIDByTitle(q, in.Title); err == nil && otherID != recipe.ID {
		return fmt.Errorf("recipe %q already exists", in.Title)
	} else if err != nil && err != sql.ErrNoRows {
		return err
	}

	est := nutrition.Estimate(in.Ingredients)
	_, err = q.Exec(`
UPDATE recipes SET
  title = ?, title_norm = ?, instructions = ?, prep_time = ?, servings = ?, category = ?, image_url = ?, source = ?,
  calories = ?, protein_g = ?, carbs_g = ?, fat_g = ?, fiber_g = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, in.Title, normalizeName(in.Title), in.Instructions, in.PrepTime, in.Servings, in.Category, in.ImageURL, in.Source,
		est.Calories, est.ProteinG, est.CarbsG, est.FatG, est.FiberG, recipe.ID)
	if err != nil {
		return fmt.Errorf("update recipe %q: %w", idOrTitle, err)
	}
	if _, err := q.Exec(`DELETE FROM recipe_ingredients WHERE recipe_id = ?`, recipe.ID); err != nil {
		return fmt.Errorf("clear ingredient lines for %q: %w", idOrTitle, err)
	}
	return insertIngredientLines(q, recipe.ID, in.Ingredients)
}

func DeleteRecipe(db *sql.DB, idOrTitle string) error {
	recipe, err := ResolveRecipe(db, idOrTitle)
	if err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM recipes WHERE id = ?`, recipe.ID); err != nil {
		return fmt.Errorf("delete recipe %q: %w", idOrTitle, err)
	}
	return nil
}

func SetFavorite(db *sql.DB, idOrTitle string, favorite bool) error {
	return setFavorite(db, idOrTitle, favorite)
}

func setFavorite(q sqlExecutor, idOrTitle string, favorite bool) error {
	recipe, err := resolveRecipe(q, idOrTitle)
	if err != nil {
		return err
	}
	if _, err := q.Exec(`UPDATE recipes SET is_favorite = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, boolToInt(favorite), recipe.ID); err != nil {
		return fmt.Errorf("set favorite for %q: %w", idOrTitle, err)
	}
	return nil
}

// RecalculateRecipeNutrition re-runs the estimator over the stored
// ingredient lines and persists the result.
func RecalculateRecipeNutrition(db *sql.DB, idOrTitle string) (nutrition.Nutrition, error) {
	recipe, err := ResolveRecipe(db, idOrTitle)
	if err != nil {
		return nutrition.Nutrition{}, err
	}
	est := nutrition.Estimate(recipe.Ingredients)
	if err := storeNutrition(db, recipe.ID, est); err != nil {
		return nutrition.Nutrition{}, fmt.Errorf("recalculate recipe %q: %w", idOrTitle, err)
	}
	return est, nil
}

func storeNutrition(db sqlExecutor, recipeID int64, n nutrition.Nutrition) error {
	_, err := db.Exec(`
UPDATE recipes SET calories = ?, protein_g = ?, carbs_g = ?, fat_g = ?, fiber_g = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, n.Calories, n.ProteinG, n.CarbsG, n.FatG, n.FiberG, recipeID)
	return err
}

func prepareRecipeInput(db sqlExecutor, in RecipeInput) (RecipeInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Ingredients = cleanLines(in.Ingredients)
	in.Instructions = strings.TrimSpace(in.Instructions)
	in.PrepTime = strings.TrimSpace(in.PrepTime)
	in.Servings = strings.TrimSpace(in.Servings)
	in.Category = strings.TrimSpace(in.Category)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	in.Source = strings.TrimSpace(in.Source)

	if in.Title == "" {
		return in, fmt.Errorf("recipe title is required")
	}
	if len(in.Ingredients) == 0 {
		return in, fmt.Errorf("at least one ingredient line is required")
	}
	if in.Instructions == "" {
		return in, fmt.Errorf("recipe instructions are required")
	}

	if in.PrepTime == "" {
		in.PrepTime = defaultPrepTime
	}
	if in.Servings == "" {
		in.Servings = defaultServings
	}
	var err error
	if in.Category == "" {
		if in.Category, err = configOrDefault(db, ConfigDefaultCategory, defaultCategory); err != nil {
			return in, err
		}
	}
	if in.Source == "" {
		if in.Source, err = configOrDefault(db, ConfigDefaultSource, defaultSource); err != nil {
			return in, err
		}
	}
	return in, nil
}

// recipeIDByTitle returns sql.ErrNoRows unwrapped when the title is free.
func recipeIDByTitle(db sqlExecutor, title string) (int64, error) {
	var id int64
	err := db.QueryRow(`SELECT id FROM recipes WHERE title_norm = ?`, normalizeName(title)).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, err
	}
	if err != nil {
		return 0, fmt.Errorf("lookup recipe %q: %w", title, err)
	}
	return id, nil
}

func insertIngredientLines(tx sqlExecutor, recipeID int64, lines []string) error {
	for i, line := range lines {
		if _, err := tx.Exec(`INSERT INTO recipe_ingredients(recipe_id, position, line) VALUES(?, ?, ?)`, recipeID, i, line); err != nil {
			return fmt.Errorf("insert ingredient line %d: %w", i+1, err)
		}
	}
	return nil
}

func ingredientLines(db sqlExecutor, recipeID int64) ([]string, error) {
	rows, err := db.Query(`SELECT line FROM recipe_ingredients WHERE recipe_id = ? ORDER BY position`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("list ingredient lines: %w", err)
	}
	defer rows.Close()
	lines := make([]string, 0)
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("scan ingredient line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ingredient lines: %w", err)
	}
	return lines, nil
}

func ingredientLinesByRecipe(db sqlExecutor) (map[int64][]string, error) {
	rows, err := db.Query(`SELECT recipe_id, line FROM recipe_ingredients ORDER BY recipe_id, position`)
	if err != nil {
		return nil, fmt.Errorf("list ingredient lines: %w", err)
	}
	defer rows.Close()
	out := map[int64][]string{}
	for rows.Next() {
		var id int64
		var line string
		if err := rows.Scan(&id, &line); err != nil {
			return nil, fmt.Errorf("scan ingredient line: %w", err)
		}
		out[id] = append(out[id], line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ingredient lines: %w", err)
	}
	return out, nil
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
