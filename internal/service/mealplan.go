package service

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/model"
	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/nutrition"
)

const (
	planDateLayout  = "2006-01-02"
	defaultPlanDays = 7
	maxPlanDays     = 92
)

type MealSlot struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// mealSlots are listed in the order meals happen during a day.
var mealSlots = []MealSlot{
	{Key: "cafe", Label: "Café da manhã"},
	{Key: "almoco", Label: "Almoço"},
	{Key: "lanche", Label: "Lanche"},
	{Key: "jantar", Label: "Jantar"},
}

func MealSlots() []MealSlot {
	out := make([]MealSlot, len(mealSlots))
	copy(out, mealSlots)
	return out
}

// ParseMeal accepts a slot key or its label, case-insensitively, and
// returns the key.
func ParseMeal(v string) (string, error) {
	v = strings.TrimSpace(v)
	for _, s := range mealSlots {
		if strings.EqualFold(v, s.Key) || strings.EqualFold(v, s.Label) {
			return s.Key, nil
		}
	}
	return "", fmt.Errorf("invalid meal %q (expected cafe, almoco, lanche, or jantar)", v)
}

func mealRank(key string) int {
	for i, s := range mealSlots {
		if s.Key == key {
			return i
		}
	}
	return len(mealSlots)
}

func mealLabel(key string) string {
	for _, s := range mealSlots {
		if s.Key == key {
			return s.Label
		}
	}
	return key
}

func parsePlanDate(v string) (string, error) {
	t, err := time.ParseInLocation(planDateLayout, strings.TrimSpace(v), time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", v)
	}
	return t.Format(planDateLayout), nil
}

type MealPlanInput struct {
	Recipe string
	Date   string
	Meal   string
}

// AddMealPlan schedules a recipe for a meal on a date. The same recipe may
// be planned more than once.
func AddMealPlan(db *sql.DB, in MealPlanInput) (int64, error) {
	date, err := parsePlanDate(in.Date)
	if err != nil {
		return 0, err
	}
	meal, err := ParseMeal(in.Meal)
	if err != nil {
		return 0, err
	}
	recipe, err := ResolveRecipe(db, in.Recipe)
	if err != nil {
		return 0, err
	}
	res, err := db.Exec(`INSERT INTO meal_plans(plan_date, meal, recipe_id) VALUES(?, ?, ?)`, date, meal, recipe.ID)
	if err != nil {
		return 0, fmt.Errorf("add meal plan: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve meal plan id: %w", err)
	}
	return id, nil
}

// MealPlanFilter bounds are inclusive dates in YYYY-MM-DD form.
type MealPlanFilter struct {
	FromDate string
	ToDate   string
}

func ListMealPlans(db *sql.DB, f MealPlanFilter) ([]model.MealPlan, error) {
	query := `
SELECT mp.id, mp.plan_date, mp.meal, r.id, r.title, r.calories, r.protein_g, r.carbs_g, r.fat_g, r.fiber_g, mp.created_at
FROM meal_plans mp
JOIN recipes r ON r.id = mp.recipe_id
WHERE 1=1`
	args := make([]any, 0)
	var from, to string
	var err error
	if strings.TrimSpace(f.FromDate) != "" {
		if from, err = parsePlanDate(f.FromDate); err != nil {
			return nil, err
		}
		query += ` AND mp.plan_date >= ?`
		args = append(args, from)
	}
	if strings.TrimSpace(f.ToDate) != "" {
		if to, err = parsePlanDate(f.ToDate); err != nil {
			return nil, err
		}
		query += ` AND mp.plan_date <= ?`
		args = append(args, to)
	}
	if from != "" && to != "" && from > to {
		return nil, fmt.Errorf("from date %s is after to date %s", from, to)
	}
	query += ` ORDER BY mp.plan_date, mp.id`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list meal plans: %w", err)
	}
	defer rows.Close()

	items := make([]model.MealPlan, 0)
	for rows.Next() {
		var p model.MealPlan
		n := &p.Nutrition
		if err := rows.Scan(&p.ID, &p.Date, &p.Meal, &p.RecipeID, &p.RecipeTitle, &n.Calories, &n.ProteinG, &n.CarbsG, &n.FatG, &n.FiberG, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan meal plan: %w", err)
		}
		p.MealLabel = mealLabel(p.Meal)
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meal plans: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date < items[j].Date
		}
		return mealRank(items[i].Meal) < mealRank(items[j].Meal)
	})
	return items, nil
}

func DeleteMealPlan(db *sql.DB, id int64) error {
	res, err := db.Exec(`DELETE FROM meal_plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete meal plan %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for meal plan delete: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("meal plan %d not found", id)
	}
	return nil
}

type PlanDay struct {
	Date      string              `json:"date"`
	Meals     []model.MealPlan    `json:"meals"`
	Nutrition nutrition.Nutrition `json:"nutrition"`
}

// PlanWeek returns one PlanDay per calendar day starting at start, including
// days with nothing planned. A day's nutrition is the estimate over the
// combined ingredient lines of every recipe planned that day.
func PlanWeek(db *sql.DB, start time.Time, days int) ([]PlanDay, error) {
	if days == 0 {
		days = defaultPlanDays
	}
	if days < 0 || days > maxPlanDays {
		return nil, fmt.Errorf("days must be between 1 and %d", maxPlanDays)
	}
	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	last := first.AddDate(0, 0, days-1)

	plans, err := ListMealPlans(db, MealPlanFilter{FromDate: first.Format(planDateLayout), ToDate: last.Format(planDateLayout)})
	if err != nil {
		return nil, err
	}
	lines, err := ingredientLinesByRecipe(db)
	if err != nil {
		return nil, err
	}

	out := make([]PlanDay, days)
	index := make(map[string]int, days)
	for i := range out {
		date := first.AddDate(0, 0, i).Format(planDateLayout)
		out[i] = PlanDay{Date: date, Meals: []model.MealPlan{}}
		index[date] = i
	}
	dayLines := make([][]string, days)
	for _, p := range plans {
		i, ok := index[p.Date]
		if !ok {
			continue
		}
		out[i].Meals = append(out[i].Meals, p)
		dayLines[i] = append(dayLines[i], lines[p.RecipeID]...)
	}
	for i := range out {
		out[i].Nutrition = nutrition.Estimate(dayLines[i])
	}
	return out, nil
}
