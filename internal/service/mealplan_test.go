package service_test

import (
	"testing"
	"time"

	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/nutrition"
	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/service"
)

func TestParseMeal(t *testing.T) {
	t.Parallel()
	cases := map[string]string{"jantar": "jantar", "ALMOCO": "almoco", "Almoço": "almoco", " café da manhã ": "cafe"}
	for in, want := range cases {
		got, err := service.ParseMeal(in)
		if err != nil || got != want {
			t.Fatalf("ParseMeal(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := service.ParseMeal("ceia"); err == nil {
		t.Fatalf("expected unknown meal to fail")
	}
}

func TestMealPlanLifecycle(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	mustCreateRecipe(t, db, service.RecipeInput{Title: "Omelete", Ingredients: []string{"3 ovos"}, Instructions: "Bata"})
	mustCreateRecipe(t, db, service.RecipeInput{Title: "Arroz", Ingredients: []string{"100g de arroz"}, Instructions: "Cozinhe"})

	jantar, err := service.AddMealPlan(db, service.MealPlanInput{Recipe: "Omelete", Date: "2026-10-15", Meal: "jantar"})
	if err != nil {
		t.Fatalf("add jantar: %v", err)
	}
	if _, err := service.AddMealPlan(db, service.MealPlanInput{Recipe: "arroz", Date: "2026-10-15", Meal: "almoco"}); err != nil {
		t.Fatalf("add almoco: %v", err)
	}
	if _, err := service.AddMealPlan(db, service.MealPlanInput{Recipe: "Arroz", Date: "2026-10-17", Meal: "cafe"}); err != nil {
		t.Fatalf("add later day: %v", err)
	}
	for _, bad := range []service.MealPlanInput{
		{Recipe: "Omelete", Date: "15/10/2026", Meal: "jantar"},
		{Recipe: "Omelete", Date: "2026-10-15", Meal: "ceia"},
		{Recipe: "Feijoada", Date: "2026-10-15", Meal: "jantar"},
	} {
		if _, err := service.AddMealPlan(db, bad); err == nil {
			t.Fatalf("expected %+v to fail", bad)
		}
	}

	plans, err := service.ListMealPlans(db, service.MealPlanFilter{FromDate: "2026-10-15", ToDate: "2026-10-15"})
	if err != nil {
		t.Fatalf("list plans: %v", err)
	}
	if len(plans) != 2 || plans[0].Meal != "almoco" || plans[1].Meal != "jantar" {
		t.Fatalf("expected lunch before dinner, got %+v", plans)
	}
	if plans[1].MealLabel != "Jantar" || plans[1].RecipeTitle != "Omelete" {
		t.Fatalf("unexpected plan %+v", plans[1])
	}
	if _, err := service.ListMealPlans(db, service.MealPlanFilter{FromDate: "2026-10-16", ToDate: "2026-10-15"}); err == nil {
		t.Fatalf("expected inverted range to fail")
	}

	if err := service.DeleteMealPlan(db, jantar); err != nil {
		t.Fatalf("delete plan: %v", err)
	}
	if err := service.DeleteMealPlan(db, jantar); err == nil {
		t.Fatalf("expected second delete to fail")
	}
}

func TestPlanWeekTotalsEachDay(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	mustCreateRecipe(t, db, service.RecipeInput{Title: "Omelete", Ingredients: []string{"3 ovos", "100g de queijo"}, Instructions: "Bata"})
	mustCreateRecipe(t, db, service.RecipeInput{Title: "Arroz", Ingredients: []string{"100g de arroz"}, Instructions: "Cozinhe"})
	for _, in := range []service.MealPlanInput{
		{Recipe: "Omelete", Date: "2026-10-15", Meal: "jantar"},
		{Recipe: "Arroz", Date: "2026-10-15", Meal: "almoco"},
		{Recipe: "Arroz", Date: "2026-10-21", Meal: "almoco"},
		{Recipe: "Arroz", Date: "2026-10-22", Meal: "almoco"},
	} {
		if _, err := service.AddMealPlan(db, in); err != nil {
			t.Fatalf("add plan %+v: %v", in, err)
		}
	}

	start := time.Date(2026, 10, 15, 18, 30, 0, 0, time.Local)
	days, err := service.PlanWeek(db, start, 0)
	if err != nil {
		t.Fatalf("plan week: %v", err)
	}
	if len(days) != 7 || days[0].Date != "2026-10-15" || days[6].Date != "2026-10-21" {
		t.Fatalf("expected seven days from 2026-10-15, got %+v", days)
	}
	want := nutrition.Estimate([]string{"100g de arroz", "3 ovos", "100g de queijo"})
	if days[0].Nutrition != want {
		t.Fatalf("expected day total %+v, got %+v", want, days[0].Nutrition)
	}
	if len(days[1].Meals) != 0 || days[1].Nutrition != (nutrition.Nutrition{}) {
		t.Fatalf("expected empty second day, got %+v", days[1])
	}
	if days[6].Nutrition.Calories != 130 {
		t.Fatalf("expected last day to count arroz only, got %+v", days[6].Nutrition)
	}
	if _, err := service.PlanWeek(db, start, -1); err == nil {
		t.Fatalf("expected negative day count to fail")
	}
}

func TestMealPlansRemovedWithRecipe(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	mustCreateRecipe(t, db, service.RecipeInput{Title: "Omelete", Ingredients: []string{"3 ovos"}, Instructions: "Bata"})
	if _, err := service.AddMealPlan(db, service.MealPlanInput{Recipe: "Omelete", Date: "2026-10-15", Meal: "jantar"}); err != nil {
		t.Fatalf("add plan: %v", err)
	}
	if err := service.DeleteRecipe(db, "Omelete"); err != nil {
		t.Fatalf("delete recipe: %v", err)
	}
	plans, err := service.ListMealPlans(db, service.MealPlanFilter{})
	if err != nil {
		t.Fatalf("list plans: %v", err)
	}
	if len(plans) != 0 {
		t.Fatalf("expected plans to go with the recipe, got %+v", plans)
	}
}
