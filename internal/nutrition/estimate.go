// Package nutrition estimates recipe macro-nutrients from free-text
// ingredient lines using a fixed per-100 g reference table and a coarse
// quantity heuristic. Every function here is pure and safe for concurrent
// use.
package nutrition

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Nutrition is the rounded aggregate for a list of ingredient lines.
type Nutrition struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein"`
	CarbsG   float64 `json:"carbs"`
	FatG     float64 `json:"fat"`
	FiberG   float64 `json:"fiber"`
}

// Contribution is the unrounded share one keyword match adds to the total.
type Contribution struct {
	Line       string  `json:"line"`
	Keyword    string  `json:"keyword"`
	Multiplier float64 `json:"multiplier"`
	Nutrients  Profile `json:"nutrients"`
}

// Explain lists every keyword match, line by line and then by keyword.
// Overlapping keywords ("leite" inside "leite condensado") each match.
func Explain(lines []string) []Contribution {
	out := make([]Contribution, 0)
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, key := range referenceKeys {
			if !strings.Contains(lower, key) {
				continue
			}
			m := Multiplier(lower)
			out = append(out, Contribution{
				Line:       line,
				Keyword:    key,
				Multiplier: m,
				Nutrients:  referenceTable[key].scale(m),
			})
		}
	}
	return out
}

// Estimate folds all ingredient lines into one rounded nutrition total.
// An empty list, or lines that match nothing, yield the zero value.
//
// Matches are summed in keyword then multiplier order, so the total does
// not depend on the order of lines.
func Estimate(lines []string) Nutrition {
	contribs := Explain(lines)
	sort.Slice(contribs, func(i, j int) bool {
		if contribs[i].Keyword != contribs[j].Keyword {
			return contribs[i].Keyword < contribs[j].Keyword
		}
		return contribs[i].Multiplier < contribs[j].Multiplier
	})
	var total Profile
	for _, c := range contribs {
		total = total.add(c.Nutrients)
	}
	return round(total)
}

// round uses math.Round, which rounds halves away from zero. Totals are
// never negative, so 559.5 kcal becomes 560.
func round(p Profile) Nutrition {
	return Nutrition{
		Calories: int(math.Round(p.Calories)),
		ProteinG: roundTenth(p.ProteinG),
		CarbsG:   roundTenth(p.CarbsG),
		FatG:     roundTenth(p.FatG),
		FiberG:   roundTenth(p.FiberG),
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// Format renders the summary shown under a recipe.
func Format(n Nutrition) string {
	return fmt.Sprintf("Calorias: %d kcal\nProteínas: %sg\nCarboidratos: %sg\nGorduras: %sg\nFibras: %sg",
		n.Calories, formatGrams(n.ProteinG), formatGrams(n.CarbsG), formatGrams(n.FatG), formatGrams(n.FiberG))
}

func formatGrams(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
