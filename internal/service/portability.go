package service

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/nutrition"
)

const exportVersion = 1

// IngredientList decodes either a JSON array of lines or a single
// newline-separated string, which is what the transcription flows emit.
type IngredientList []string

func (l *IngredientList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var text string
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
		*l = SplitIngredientLines(text)
		return nil
	}
	var lines []string
	if err := json.Unmarshal(b, &lines); err != nil {
		return fmt.Errorf("ingredients must be a string or a list of strings: %w", err)
	}
	*l = lines
	return nil
}

type ExportRecipe struct {
	Title        string               `json:"title"`
	Ingredients  IngredientList       `json:"ingredients"`
	Instructions string               `json:"instructions"`
	Text         string               `json:"text,omitempty"`
	PrepTime     string               `json:"prep_time,omitempty"`
	Servings     string               `json:"servings,omitempty"`
	Category     string               `json:"category,omitempty"`
	ImageURL     string               `json:"image_url,omitempty"`
	Source       string               `json:"source,omitempty"`
	IsFavorite   bool                 `json:"is_favorite,omitempty"`
	Categories   []string             `json:"categories,omitempty"`
	Nutrition    *nutrition.Nutrition `json:"nutrition,omitempty"`
}

type ExportData struct {
	Version    int            `json:"version"`
	ExportedAt string         `json:"exported_at"`
	Recipes    []ExportRecipe `json:"recipes"`
}

type ImportMode string

const (
	ImportModeFail    ImportMode = "fail"
	ImportModeSkip    ImportMode = "skip"
	ImportModeReplace ImportMode = "replace"
)

func ParseImportMode(v string) (ImportMode, error) {
	switch ImportMode(strings.ToLower(strings.TrimSpace(v))) {
	case "", ImportModeFail:
		return ImportModeFail, nil
	case ImportModeSkip:
		return ImportModeSkip, nil
	case ImportModeReplace:
		return ImportModeReplace, nil
	default:
		return "", fmt.Errorf("invalid import mode %q (expected fail, skip, or replace)", v)
	}
}

type ImportReport struct {
	Created  int `json:"created"`
	Replaced int `json:"replaced"`
	Skipped  int `json:"skipped"`
}

func ExportRecipes(db *sql.DB) (ExportData, error) {
	recipes, err := ListRecipes(db, ListRecipesFilter{})
	if err != nil {
		return ExportData{}, err
	}
	out := ExportData{
		Version:    exportVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Recipes:    make([]ExportRecipe, 0, len(recipes)),
	}
	for _, r := range recipes {
		n := r.Nutrition
		out.Recipes = append(out.Recipes, ExportRecipe{
			Title:        r.Title,
			Ingredients:  IngredientList(r.Ingredients),
			Instructions: r.Instructions,
			PrepTime:     r.PrepTime,
			Servings:     r.Servings,
			Category:     r.Category,
			ImageURL:     r.ImageURL,
			Source:       r.Source,
			IsFavorite:   r.IsFavorite,
			Categories:   r.UserCategories,
			Nutrition:    &n,
		})
	}
	return out, nil
}

// DecodeImport reads an export document, a bare array of recipes, or a
// single recipe object.
func DecodeImport(r io.Reader) (ExportData, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return ExportData{}, fmt.Errorf("read import data: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ExportData{}, fmt.Errorf("import data is empty")
	}
	if raw[0] == '[' {
		var recipes []ExportRecipe
		if err := json.Unmarshal(raw, &recipes); err != nil {
			return ExportData{}, fmt.Errorf("decode recipe list: %w", err)
		}
		return ExportData{Version: exportVersion, Recipes: recipes}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return ExportData{}, fmt.Errorf("decode import data: %w", err)
	}
	if _, ok := fields["recipes"]; ok {
		var data ExportData
		if err := json.Unmarshal(raw, &data); err != nil {
			return ExportData{}, fmt.Errorf("decode export document: %w", err)
		}
		return data, nil
	}
	var single ExportRecipe
	if err := json.Unmarshal(raw, &single); err != nil {
		return ExportData{}, fmt.Errorf("decode recipe: %w", err)
	}
	return ExportData{Version: exportVersion, Recipes: []ExportRecipe{single}}, nil
}

// ImportRecipes stores every recipe in data inside one transaction, so a
// failure leaves the database untouched. Nutrition carried in the file is
// ignored and re-estimated from the ingredient lines.
func ImportRecipes(db *sql.DB, data ExportData, mode ImportMode) (ImportReport, error) {
	var report ImportReport
	tx, err := db.Begin()
	if err != nil {
		return report, fmt.Errorf("begin import tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if mode == ImportModeFail {
		if err := checkImportConflicts(tx, data); err != nil {
			return ImportReport{}, err
		}
	}
	for _, rec := range data.Recipes {
		in := rec.input()
		id, err := recipeIDByTitle(tx, in.Title)
		switch {
		case err == sql.ErrNoRows:
			if id, err = createRecipe(tx, in); err != nil {
				return ImportReport{}, fmt.Errorf("import recipe %q: %w", in.Title, err)
			}
			report.Created++
		case err != nil:
			return ImportReport{}, err
		case mode == ImportModeSkip:
			report.Skipped++
			continue
		case mode == ImportModeReplace:
			if err := updateRecipe(tx, strconv.FormatInt(id, 10), in); err != nil {
				return ImportReport{}, fmt.Errorf("replace recipe %q: %w", in.Title, err)
			}
			report.Replaced++
		default:
			return ImportReport{}, fmt.Errorf("recipe %q already exists", in.Title)
		}
		if rec.IsFavorite {
			if err := setFavorite(tx, strconv.FormatInt(id, 10), true); err != nil {
				return ImportReport{}, err
			}
		}
		if err := linkRecipeCategories(tx, id, rec.Categories); err != nil {
			return ImportReport{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return ImportReport{}, fmt.Errorf("commit import tx: %w", err)
	}
	return report, nil
}

func (r ExportRecipe) input() RecipeInput {
	instructions := r.Instructions
	if strings.TrimSpace(instructions) == "" {
		instructions = r.Text
	}
	return RecipeInput{
		Title:        strings.TrimSpace(r.Title),
		Ingredients:  []string(r.Ingredients),
		Instructions: instructions,
		PrepTime:     r.PrepTime,
		Servings:     r.Servings,
		Category:     r.Category,
		ImageURL:     r.ImageURL,
		Source:       r.Source,
	}
}

func checkImportConflicts(db sqlExecutor, data ExportData) error {
	seen := map[string]bool{}
	for _, rec := range data.Recipes {
		norm := normalizeName(rec.Title)
		if norm == "" {
			return fmt.Errorf("recipe title is required")
		}
		if seen[norm] {
			return fmt.Errorf("recipe %q appears more than once in import data", rec.Title)
		}
		seen[norm] = true
		if _, err := recipeIDByTitle(db, rec.Title); err == nil {
			return fmt.Errorf("recipe %q already exists", strings.TrimSpace(rec.Title))
		} else if err != sql.ErrNoRows {
			return err
		}
	}
	return nil
}
