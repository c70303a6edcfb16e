package model

import (
	"time"

	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/nutrition"
)

type Recipe struct {
	ID             int64               `json:"id"`
	Title          string              `json:"title"`
	Ingredients    []string            `json:"ingredients"`
	Instructions   string              `json:"instructions"`
	PrepTime       string              `json:"prep_time"`
	Servings       string              `json:"servings"`
	Category       string              `json:"category"`
	UserCategories []string            `json:"user_categories"`
	ImageURL       string              `json:"image_url,omitempty"`
	Source         string              `json:"source"`
	IsFavorite     bool                `json:"is_favorite"`
	Nutrition      nutrition.Nutrition `json:"nutrition"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// Category is a user-defined grouping; a recipe may belong to several.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	RecipeCount int       `json:"recipe_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type MealPlan struct {
	ID          int64               `json:"id"`
	Date        string              `json:"date"`
	Meal        string              `json:"meal"`
	MealLabel   string              `json:"meal_label"`
	RecipeID    int64               `json:"recipe_id"`
	RecipeTitle string              `json:"recipe_title"`
	Nutrition   nutrition.Nutrition `json:"nutrition"`
	CreatedAt   time.Time           `json:"created_at"`
}

type ShoppingItem struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Checked     bool      `json:"checked"`
	RecipeID    *int64    `json:"recipe_id,omitempty"`
	RecipeTitle string    `json:"recipe_title,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
