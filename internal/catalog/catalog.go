// Package catalog holds the built-in product list used to seed the shop.
package catalog

import (
	"time"

	"kickshop/internal/models"
)

var seed = []models.Product{
	{
		Name:        "Nike Air Force 1",
		Description: "Chaussures de basketball iconiques avec un style intemporel",
		Price:       89.99,
		Brand:       models.BrandNike,
		Category:    models.CategorySneakers,
		Sizes:       []float64{36, 37, 38, 39, 40, 41, 42, 43, 44, 45},
		ImageURL:    "https://images.unsplash.com/photo-1542291026-7eec264c27ff?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1Nzh8MHwxfHNlYXJjaHwxfHxzaG9lc3xlbnwwfHx8fDE3NTg2Mjg2NTR8MA&ixlib=rb-4.1.0&q=85",
	},
	{
		Name:        "Baskets Athlétiques Blanches",
		Description: "Baskets sport moderne pour un look décontracté",
		Price:       65.99,
		Brand:       models.BrandNike,
		Category:    models.CategoryAthletic,
		Sizes:       []float64{36, 37, 38, 39, 40, 41, 42, 43, 44},
		ImageURL:    "https://images.unsplash.com/photo-1560769629-975ec94e6a86?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1Nzh8MHwxfHNlYXJjaHwyfHxzaG9lc3xlbnwwfHx8fDE3NTg2Mjg2NTR8MA&ixlib=rb-4.1.0&q=85",
	},
	{
		Name:        "Nike Air Force Colorées",
		Description: "Version colorée des célèbres Air Force avec design moderne",
		Price:       95.99,
		Brand:       models.BrandNike,
		Category:    models.CategorySneakers,
		Sizes:       []float64{37, 38, 39, 40, 41, 42, 43, 44, 45},
		ImageURL:    "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Nzd8MHwxfHNlYXJjaHwxfHxzbmVha2Vyc3xlbnwwfHx8fDE3NTg2Mjg2NjB8MA&ixlib=rb-4.1.0&q=85",
	},
	{
		Name:        "Nike High-Top Blanches",
		Description: "Baskets montantes premium avec finition soignée",
		Price:       79.99,
		Brand:       models.BrandNike,
		Category:    models.CategorySneakers,
		Sizes:       []float64{36, 37, 38, 39, 40, 41, 42, 43, 44},
		ImageURL:    "https://images.unsplash.com/photo-1512374382149-233c42b6a83b?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Nzd8MHwxfHNlYXJjaHwzfHxzbmVha2Vyc3xlbnwwfHx8fDE3NTg2Mjg2NjB8MA&ixlib=rb-4.1.0&q=85",
	},
	{
		Name:        "Air Jordan 1",
		Description: "Baskets légendaires avec l'héritage Jordan",
		Price:       149.99,
		Brand:       models.BrandNike,
		Category:    models.CategorySneakers,
		Sizes:       []float64{38, 39, 40, 41, 42, 43, 44, 45},
		ImageURL:    "https://images.unsplash.com/photo-1552346154-21d32810aba3?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Nzd8MHwxfHNlYXJjaHw0fHxzbmVha2Vyc3xlbnwwfHx8fDE3NTg2Mjg2NjB8MA&ixlib=rb-4.1.0&q=85",
	},
	{
		Name:        "Chaussures Décontractées Bordeaux",
		Description: "Style décontracté parfait pour le quotidien",
		Price:       55.99,
		Brand:       models.BrandVans,
		Category:    models.CategoryCasual,
		Sizes:       []float64{36, 37, 38, 39, 40, 41, 42, 43},
		ImageURL:    "https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1Nzh8MHwxfHNlYXJjaHwzfHxzaG9lc3xlbnwwfHx8fDE3NTg2Mjg2NTR8MA&ixlib=rb-4.1.0&q=85",
	},
	{
		Name:        "Bottes en Cuir Marron",
		Description: "Bottes robustes en cuir véritable avec lacets",
		Price:       129.99,
		Brand:       models.BrandTimberland,
		Category:    models.CategoryBoots,
		Sizes:       []float64{38, 39, 40, 41, 42, 43, 44, 45},
		ImageURL:    "https://images.unsplash.com/photo-1605812860427-4024433a70fd?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Njl8MHwxfHNlYXJjaHwxfHxib290c3xlbnwwfHx8fDE3NTg2Mjg2NjR8MA&ixlib=rb-4.1.0&q=85",
	},
	{
		Name:        "Bottes Classiques Cuir",
		Description: "Bottes élégantes pour toutes les occasions",
		Price:       159.99,
		Brand:       models.BrandTimberland,
		Category:    models.CategoryBoots,
		Sizes:       []float64{39, 40, 41, 42, 43, 44, 45},
		ImageURL:    "https://images.unsplash.com/photo-1608256246200-53e635b5b65f?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Njl8MHwxfHNlYXJjaHwyfHxib290c3xlbnwwfHx8fDE3NTg2Mjg2NjR8MA&ixlib=rb-4.1.0&q=85",
	},
}

// Products returns a fresh copy of the built-in list, stamped with now.
// IDs are left empty for the repository to assign.
func Products(now time.Time) []models.Product {
	out := make([]models.Product, len(seed))
	for i, p := range seed {
		p.Sizes = append([]float64(nil), p.Sizes...)
		p.Stock = models.DefaultStock
		p.CreatedAt = now
		out[i] = p
	}
	return out
}
