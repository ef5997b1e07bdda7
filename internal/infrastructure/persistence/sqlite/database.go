// Package sqlite provides SQLite database setup for local development
package sqlite

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormModels "github.com/platewise/backend/internal/infrastructure/persistence/gorm"
)

// SetupDatabase creates and configures the SQLite database
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	// Use in-memory database if no path provided
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(gormModels.AllModels()...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// SeedDatabase populates the corpus with a starter set of rated recipes
// so the daily recommendation has a candidate pool in development
func SeedDatabase(db *gorm.DB) error {
	var recipeCount int64
	db.Model(&gormModels.RecipeModel{}).Count(&recipeCount)
	if recipeCount > 0 {
		return nil // Already seeded
	}

	seedRecipes := []gormModels.RecipeModel{
		{
			Name:               "Classic Spaghetti Carbonara",
			Description:        "A traditional Italian pasta dish with eggs, cheese, pancetta, and pepper",
			Cuisine:            "italian",
			Category:           "pasta",
			Difficulty:         "medium",
			CookingTimeMinutes: 25,
			Rating:             4.8,
			ReviewCount:        156,
			Tags:               gormModels.StringSlice{"pasta", "traditional", "quick"},
			Ingredients:        gormModels.StringSlice{"spaghetti", "pancetta", "eggs", "pecorino romano", "black pepper"},
			Instructions: gormModels.StringSlice{
				"Bring a large pot of salted water to boil and cook spaghetti",
				"Cook pancetta in a large skillet until crispy",
				"Whisk together eggs and grated cheese",
				"Drain pasta and toss with pancetta and egg mixture off heat",
			},
			Nutrition: gormModels.JSONField{"calories": 650, "protein": 28.0, "carbs": 72.0, "fat": 26.0},
		},
		{
			Name:               "Vegan Buddha Bowl",
			Description:        "A nutritious bowl with quinoa, roasted sweet potato, chickpeas, and tahini dressing",
			Cuisine:            "american",
			Category:           "bowl",
			Difficulty:         "easy",
			CookingTimeMinutes: 30,
			Rating:             4.6,
			ReviewCount:        89,
			Tags:               gormModels.StringSlice{"vegan", "vegetarian", "healthy"},
			Ingredients:        gormModels.StringSlice{"quinoa", "sweet potato", "chickpeas", "avocado", "tahini"},
			Instructions: gormModels.StringSlice{
				"Cook quinoa according to package instructions",
				"Roast sweet potato cubes at 200C for 25 minutes",
				"Mix tahini, lemon juice, and water into a dressing",
				"Assemble bowl with quinoa, vegetables, and dressing",
			},
			Nutrition: gormModels.JSONField{"calories": 480, "protein": 16.0, "carbs": 64.0, "fat": 18.0},
		},
		{
			Name:               "Overnight Oats with Berries",
			Description:        "Make-ahead breakfast oats soaked in milk with fresh berries and honey",
			Cuisine:            "american",
			Category:           "breakfast",
			Difficulty:         "easy",
			CookingTimeMinutes: 10,
			Rating:             4.5,
			ReviewCount:        212,
			Tags:               gormModels.StringSlice{"breakfast", "vegetarian", "healthy", "quick"},
			Ingredients:        gormModels.StringSlice{"rolled oats", "milk", "mixed berries", "honey", "chia seeds"},
			Instructions: gormModels.StringSlice{
				"Combine oats, milk, and chia seeds in a jar",
				"Refrigerate overnight",
				"Top with berries and honey before serving",
			},
			Nutrition: gormModels.JSONField{"calories": 320, "protein": 12.0, "carbs": 54.0, "fat": 8.0},
		},
		{
			Name:               "Chicken Tikka Masala",
			Description:        "Tender chicken in a creamy spiced tomato sauce, served with rice",
			Cuisine:            "indian",
			Category:           "curry",
			Difficulty:         "medium",
			CookingTimeMinutes: 50,
			Rating:             4.7,
			ReviewCount:        134,
			Tags:               gormModels.StringSlice{"curry", "spicy", "comfort"},
			Ingredients:        gormModels.StringSlice{"chicken thighs", "yogurt", "tomato puree", "cream", "garam masala", "ginger", "garlic"},
			Instructions: gormModels.StringSlice{
				"Marinate chicken in yogurt and spices for 30 minutes",
				"Grill chicken until charred at the edges",
				"Simmer tomato puree with cream and garam masala",
				"Fold chicken into the sauce and simmer 10 minutes",
			},
			Nutrition: gormModels.JSONField{"calories": 560, "protein": 38.0, "carbs": 22.0, "fat": 34.0},
		},
		{
			Name:               "Miso Ramen",
			Description:        "Rich miso broth with noodles, soft egg, corn, and spring onion",
			Cuisine:            "japanese",
			Category:           "soup",
			Difficulty:         "hard",
			CookingTimeMinutes: 75,
			Rating:             4.6,
			ReviewCount:        98,
			Tags:               gormModels.StringSlice{"soup", "comfort", "noodles"},
			Ingredients:        gormModels.StringSlice{"ramen noodles", "miso paste", "chicken stock", "eggs", "corn", "spring onion"},
			Instructions: gormModels.StringSlice{
				"Simmer stock with miso paste and aromatics",
				"Soft-boil the eggs for 6.5 minutes",
				"Cook noodles and divide between bowls",
				"Ladle broth over noodles and add toppings",
			},
			Nutrition: gormModels.JSONField{"calories": 610, "protein": 30.0, "carbs": 78.0, "fat": 20.0},
		},
		{
			Name:               "Shakshuka",
			Description:        "Eggs poached in a spiced tomato and pepper sauce",
			Cuisine:            "middle eastern",
			Category:           "breakfast",
			Difficulty:         "easy",
			CookingTimeMinutes: 30,
			Rating:             4.4,
			ReviewCount:        76,
			Tags:               gormModels.StringSlice{"breakfast", "vegetarian", "spicy"},
			Ingredients:        gormModels.StringSlice{"eggs", "tomatoes", "red pepper", "onion", "cumin", "paprika"},
			Instructions: gormModels.StringSlice{
				"Soften onion and pepper in a skillet",
				"Add tomatoes and spices, simmer 10 minutes",
				"Make wells in the sauce and crack in the eggs",
				"Cover and cook until the whites are set",
			},
			Nutrition: gormModels.JSONField{"calories": 380, "protein": 20.0, "carbs": 24.0, "fat": 22.0},
		},
	}

	for i := range seedRecipes {
		if err := db.Create(&seedRecipes[i]).Error; err != nil {
			return fmt.Errorf("failed to create seed recipe: %w", err)
		}
	}

	return nil
}
