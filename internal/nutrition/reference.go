package nutrition

import "sort"

// Profile holds nutrient values per 100 g of a food.
type Profile struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein"`
	CarbsG   float64 `json:"carbs"`
	FatG     float64 `json:"fat"`
	FiberG   float64 `json:"fiber"`
}

// The explicit conversions keep each product from being fused with a later
// addition.
func (p Profile) scale(factor float64) Profile {
	return Profile{
		Calories: float64(p.Calories * factor),
		ProteinG: float64(p.ProteinG * factor),
		CarbsG:   float64(p.CarbsG * factor),
		FatG:     float64(p.FatG * factor),
		FiberG:   float64(p.FiberG * factor),
	}
}

func (p Profile) add(o Profile) Profile {
	return Profile{
		Calories: p.Calories + o.Calories,
		ProteinG: p.ProteinG + o.ProteinG,
		CarbsG:   p.CarbsG + o.CarbsG,
		FatG:     p.FatG + o.FatG,
		FiberG:   p.FiberG + o.FiberG,
	}
}

var referenceTable = map[string]Profile{
	// meats
	"frango":   {Calories: 165, ProteinG: 31, CarbsG: 0, FatG: 3.6, FiberG: 0},
	"carne":    {Calories: 250, ProteinG: 26, CarbsG: 0, FatG: 17, FiberG: 0},
	"peixe":    {Calories: 206, ProteinG: 22, CarbsG: 0, FatG: 12, FiberG: 0},
	"camarão":  {Calories: 99, ProteinG: 24, CarbsG: 0.2, FatG: 0.3, FiberG: 0},
	"bacon":    {Calories: 541, ProteinG: 37, CarbsG: 1.4, FatG: 42, FiberG: 0},
	"linguiça": {Calories: 301, ProteinG: 13, CarbsG: 1.5, FatG: 27, FiberG: 0},

	// grains
	"arroz":    {Calories: 130, ProteinG: 2.7, CarbsG: 28, FatG: 0.3, FiberG: 0.4},
	"feijão":   {Calories: 127, ProteinG: 8.7, CarbsG: 23, FatG: 0.5, FiberG: 7.6},
	"farinha":  {Calories: 364, ProteinG: 10, CarbsG: 76, FatG: 1, FiberG: 2.7},
	"macarrão": {Calories: 131, ProteinG: 5, CarbsG: 25, FatG: 1.1, FiberG: 1.8},

	// dairy
	"leite":          {Calories: 61, ProteinG: 3.2, CarbsG: 4.8, FatG: 3.3, FiberG: 0},
	"queijo":         {Calories: 402, ProteinG: 25, CarbsG: 1.3, FatG: 33, FiberG: 0},
	"manteiga":       {Calories: 717, ProteinG: 0.9, CarbsG: 0.1, FatG: 81, FiberG: 0},
	"creme de leite": {Calories: 345, ProteinG: 2.1, CarbsG: 2.8, FatG: 37, FiberG: 0},

	// vegetables
	"tomate":  {Calories: 18, ProteinG: 0.9, CarbsG: 3.9, FatG: 0.2, FiberG: 1.2},
	"cebola":  {Calories: 40, ProteinG: 1.1, CarbsG: 9.3, FatG: 0.1, FiberG: 1.7},
	"alho":    {Calories: 149, ProteinG: 6.4, CarbsG: 33, FatG: 0.5, FiberG: 2.1},
	"cenoura": {Calories: 41, ProteinG: 0.9, CarbsG: 10, FatG: 0.2, FiberG: 2.8},
	"batata":  {Calories: 77, ProteinG: 2, CarbsG: 17, FatG: 0.1, FiberG: 2.1},

	// misc
	"ovo":              {Calories: 155, ProteinG: 13, CarbsG: 1.1, FatG: 11, FiberG: 0},
	"açúcar":           {Calories: 387, ProteinG: 0, CarbsG: 100, FatG: 0, FiberG: 0},
	"óleo":             {Calories: 884, ProteinG: 0, CarbsG: 0, FatG: 100, FiberG: 0},
	"chocolate":        {Calories: 546, ProteinG: 4.9, CarbsG: 61, FatG: 31, FiberG: 7},
	"leite condensado": {Calories: 321, ProteinG: 7.9, CarbsG: 54, FatG: 8.4, FiberG: 0},
}

// referenceKeys fixes the order in which a line's matches are reported.
var referenceKeys = sortedKeys(referenceTable)

func sortedKeys(table map[string]Profile) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the per-100 g profile for a reference keyword.
func Lookup(keyword string) (Profile, bool) {
	p, ok := referenceTable[keyword]
	return p, ok
}

// Keywords returns the reference keywords in lexical order.
func Keywords() []string {
	out := make([]string, len(referenceKeys))
	copy(out, referenceKeys)
	return out
}
