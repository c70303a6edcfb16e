package service

import (
	"database/sql"
	"fmt"
)

const seedSource = "Receitas Brasileiras"

var seedCatalog = []RecipeInput{
	{
		Title: "Feijoada Completa",
		Ingredients: []string{
			"500g de feijão preto",
			"300g de carne seca",
			"200g de linguiça calabresa",
			"200g de bacon",
			"150g de costela de porco",
			"2 folhas de louro",
			"4 dentes de alho",
			"1 cebola grande",
			"Sal a gosto",
		},
		Instructions: "Deixe o feijão de molho na véspera. Cozinhe as carnes separadamente. Refogue alho e cebola, adicione o feijão e as carnes. Cozinhe por 2 horas em fogo baixo. Sirva com arroz, couve e laranja.",
		PrepTime:     "3 horas",
		Servings:     "8 porções",
		Category:     "Almoço",
	},
	{
		Title: "Brigadeiro Tradicional",
		Ingredients: []string{
			"1 lata de leite condensado",
			"2 colheres de sopa de chocolate em pó",
			"1 colher de sopa de manteiga",
			"Chocolate granulado para decorar",
		},
		Instructions: "Em uma panela, misture o leite condensado, chocolate em pó e manteiga. Cozinhe em fogo médio, mexendo sempre até desgrudar do fundo. Deixe esfriar, faça bolinhas e passe no granulado.",
		PrepTime:     "30 minutos",
		Servings:     "30 unidades",
		Category:     "Sobremesa",
	},
	{
		Title: "Pão de Queijo Mineiro",
		Ingredients: []string{
			"500g de polvilho azedo",
			"1 xícara de leite",
			"1/2 xícara de óleo",
			"2 ovos",
			"200g de queijo minas ralado",
			"1 colher de chá de sal",
		},
		Instructions: "Ferva o leite com óleo e sal. Despeje sobre o polvilho e misture. Adicione os ovos e o queijo. Faça bolinhas e asse em forno pré-aquecido a 180°C por 25 minutos.",
		PrepTime:     "45 minutos",
		Servings:     "20 unidades",
		Category:     "Lanche",
	},
	{
		Title: "Arroz de Carreteiro",
		Ingredients: []string{
			"500g de carne seca",
			"3 xícaras de arroz",
			"1 cebola grande",
			"3 dentes de alho",
			"2 tomates",
			"Cebolinha verde",
			"Sal e pimenta",
		},
		Instructions: "Dessalgue e cozinhe a carne seca. Desfie e reserve. Refogue alho, cebola e tomate. Adicione a carne e o arroz. Acrescente água e cozinhe até secar. Finalize com cebolinha.",
		PrepTime:     "1 hora",
		Servings:     "6 porções",
		Category:     "Almoço",
	},
	{
		Title: "Pudim de Leite Condensado",
		Ingredients: []string{
			"1 lata de leite condensado",
			"2 latas de leite (use a lata de leite condensado)",
			"3 ovos",
			"1 xícara de açúcar para a calda",
		},
		Instructions: "Faça a calda com açúcar até caramelizar. Bata no liquidificador leite condensado, leite e ovos. Despeje na forma caramelizada. Asse em banho-maria por 1 hora a 180°C.",
		PrepTime:     "1 hora 30 minutos",
		Servings:     "10 porções",
		Category:     "Sobremesa",
	},
	{
		Title: "Bolo de Cenoura com Cobertura de Chocolate",
		Ingredients: []string{
			"3 cenouras médias",
			"4 ovos",
			"2 xícaras de açúcar",
			"1 xícara de óleo",
			"2 xícaras de farinha de trigo",
			"1 colher de sopa de fermento",
			"200g de chocolate meio amargo",
			"1 caixa de creme de leite",
		},
		Instructions: "Bata no liquidificador cenoura, ovos, açúcar e óleo. Misture farinha e fermento. Asse a 180°C por 40 minutos. Para a cobertura, derreta chocolate com creme de leite e cubra o bolo.",
		PrepTime:     "1 hora",
		Servings:     "12 porções",
		Category:     "Sobremesa",
	},
}

// SeedRecipes inserts the built-in catalog, skipping titles already present.
func SeedRecipes(db *sql.DB) (int, error) {
	inserted := 0
	for _, in := range seedCatalog {
		if _, err := recipeIDByTitle(db, in.Title); err == nil {
			continue
		} else if err != sql.ErrNoRows {
			return inserted, err
		}
		in.Source = seedSource
		if _, err := CreateRecipe(db, in); err != nil {
			return inserted, fmt.Errorf("seed recipe %q: %w", in.Title, err)
		}
		inserted++
	}
	return inserted, nil
}
