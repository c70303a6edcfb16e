package service

import (
	"database/sql"
	"fmt"

	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/nutrition"
)

type DoctorReport struct {
	RecipesChecked     int      `json:"recipes_checked"`
	EmptyRecipes       int      `json:"empty_recipes"`
	StaleNutrition     int      `json:"stale_nutrition"`
	StaleTitles        []string `json:"stale_titles,omitempty"`
	FixedNutritionRows int      `json:"fixed_nutrition_rows,omitempty"`
}

func (r DoctorReport) Healthy() bool {
	return r.EmptyRecipes == 0 && r.StaleNutrition == 0
}

// RunDoctor compares each stored nutrition snapshot with a fresh estimate of
// its ingredient lines. With fix set, stale snapshots are rewritten.
func RunDoctor(db *sql.DB, fix bool) (DoctorReport, error) {
	var report DoctorReport
	recipes, err := ListRecipes(db, ListRecipesFilter{})
	if err != nil {
		return report, err
	}
	report.RecipesChecked = len(recipes)
	for _, r := range recipes {
		if len(r.Ingredients) == 0 {
			report.EmptyRecipes++
		}
		fresh := nutrition.Estimate(r.Ingredients)
		if fresh == r.Nutrition {
			continue
		}
		report.StaleNutrition++
		report.StaleTitles = append(report.StaleTitles, r.Title)
		if fix {
			if err := storeNutrition(db, r.ID, fresh); err != nil {
				return report, fmt.Errorf("fix nutrition for %q: %w", r.Title, err)
			}
			report.FixedNutritionRows++
		}
	}
	return report, nil
}
