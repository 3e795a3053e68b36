package provision

import "github.com/shopspring/decimal"

type seedProduct struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int64
	Category    string
}

var seedCategories = []string{"Eletrônicos", "Livros", "Roupas"}

var seedProducts = []seedProduct{
	{Name: "Mouse", Description: "Mouse óptico", Price: decimal.RequireFromString("59.90"), Stock: 100, Category: "Eletrônicos"},
	{Name: "Teclado", Description: "Teclado mecânico", Price: decimal.RequireFromString("199.90"), Stock: 50, Category: "Eletrônicos"},
	{Name: "Livro A", Description: "Romance", Price: decimal.RequireFromString("39.90"), Stock: 200, Category: "Livros"},
}
