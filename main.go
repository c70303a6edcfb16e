package main

import "github.com/maarcelaoliveiira/app-receitas-favoritas/cmd/receitas"

func main() {
	receitas.Execute()
}
