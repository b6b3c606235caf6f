package services

import (
	"testing"

	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	user := &models.User{
		Email:    "author@spiceroutes.wiki",
		Password: "irrelevant-hash",
		Name:     "Author",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestCreateRecipeNormalizesOrdering(t *testing.T) {
	db := setupTestDB(t)
	service := NewRecipeService(db)
	user := createTestUser(t, db)

	recipe := &models.Recipe{
		Title:    "Test Curry",
		AuthorID: user.ID,
		Ingredients: []models.Ingredient{
			{Name: "Onion", Order: 9},
			{Name: "Oil", Order: 2},
			{Name: "Garlic", Order: 5},
		},
		Instructions: []models.Instruction{
			{Content: "Serve.", StepNumber: 30},
			{Content: "Heat oil.", StepNumber: 3},
			{Content: "Fry onion and garlic.", StepNumber: 12},
		},
	}
	require.NoError(t, service.CreateRecipe(recipe))

	stored, err := service.GetRecipeByID(recipe.ID)
	require.NoError(t, err)

	require.Len(t, stored.Ingredients, 3)
	for i, ingredient := range stored.Ingredients {
		assert.Equal(t, i+1, ingredient.Order)
	}
	assert.Equal(t, "Oil", stored.Ingredients[0].Name)
	assert.Equal(t, "Garlic", stored.Ingredients[1].Name)
	assert.Equal(t, "Onion", stored.Ingredients[2].Name)

	require.Len(t, stored.Instructions, 3)
	for i, instruction := range stored.Instructions {
		assert.Equal(t, i+1, instruction.StepNumber)
	}
	assert.Equal(t, "Heat oil.", stored.Instructions[0].Content)
	assert.Equal(t, "Serve.", stored.Instructions[2].Content)
}

func TestCreateRecipeWithSpiceLinks(t *testing.T) {
	db := setupTestDB(t)
	recipes := NewRecipeService(db)
	spices := NewSpiceService(db)
	user := createTestUser(t, db)

	turmeric := testSpice("Turmeric", 0)
	require.NoError(t, spices.CreateSpice(turmeric))

	recipe := &models.Recipe{
		Title:    "Golden Milk",
		AuthorID: user.ID,
		SpiceLinks: []models.RecipeSpice{
			{SpiceID: turmeric.ID, Quantity: "1", Unit: "teaspoon", Notes: "Fresh works too"},
		},
	}
	require.NoError(t, recipes.CreateRecipe(recipe))

	stored, err := recipes.GetRecipeByID(recipe.ID)
	require.NoError(t, err)
	require.Len(t, stored.SpiceLinks, 1)
	assert.Equal(t, turmeric.ID, stored.SpiceLinks[0].SpiceID)
	require.NotNil(t, stored.SpiceLinks[0].Spice)
	assert.Equal(t, "Turmeric", stored.SpiceLinks[0].Spice.Name)
}

func TestDeleteRecipeCascadesToChildren(t *testing.T) {
	db := setupTestDB(t)
	recipes := NewRecipeService(db)
	spices := NewSpiceService(db)
	ratings := NewRatingService(db)
	user := createTestUser(t, db)

	pepper := testSpice("Black Pepper", 3)
	require.NoError(t, spices.CreateSpice(pepper))

	recipe := &models.Recipe{
		Title:    "Peppery Soup",
		AuthorID: user.ID,
		Ingredients: []models.Ingredient{
			{Name: "Stock", Order: 1},
			{Name: "Pepper", Order: 2},
		},
		Instructions: []models.Instruction{
			{Content: "Simmer.", StepNumber: 1},
		},
		SpiceLinks: []models.RecipeSpice{
			{SpiceID: pepper.ID, Quantity: "1", Unit: "teaspoon"},
		},
	}
	require.NoError(t, recipes.CreateRecipe(recipe))
	require.NoError(t, ratings.CreateRating(&models.Rating{
		UserID: user.ID, RecipeID: recipe.ID, Value: 4,
	}))

	require.NoError(t, recipes.DeleteRecipe(recipe.ID))

	for _, model := range []interface{}{
		&models.Ingredient{}, &models.Instruction{}, &models.RecipeSpice{}, &models.Rating{},
	} {
		var count int64
		db.Model(model).Where("recipe_id = ?", recipe.ID).Count(&count)
		assert.Zero(t, count)
	}

	_, err := recipes.GetRecipeByID(recipe.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetAllRecipesFilters(t *testing.T) {
	db := setupTestDB(t)
	service := NewRecipeService(db)
	user := createTestUser(t, db)

	require.NoError(t, service.CreateRecipe(&models.Recipe{
		Title: "Featured Indian", AuthorID: user.ID, Cuisine: "Indian", IsFeatured: true,
	}))
	require.NoError(t, service.CreateRecipe(&models.Recipe{
		Title: "Plain Thai", AuthorID: user.ID, Cuisine: "Thai",
	}))

	featured, err := service.GetAllRecipes(RecipeFilter{FeaturedOnly: true})
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Featured Indian", featured[0].Title)

	thai, err := service.GetAllRecipes(RecipeFilter{Cuisine: "Thai"})
	require.NoError(t, err)
	require.Len(t, thai, 1)
	assert.Equal(t, "Plain Thai", thai[0].Title)
}

func TestRatingAverage(t *testing.T) {
	db := setupTestDB(t)
	recipes := NewRecipeService(db)
	ratings := NewRatingService(db)
	user := createTestUser(t, db)

	recipe := &models.Recipe{Title: "Rated Dish", AuthorID: user.ID}
	require.NoError(t, recipes.CreateRecipe(recipe))

	avg, err := ratings.AverageForRecipe(recipe.ID)
	require.NoError(t, err)
	assert.Zero(t, avg)

	require.NoError(t, ratings.CreateRating(&models.Rating{UserID: user.ID, RecipeID: recipe.ID, Value: 5}))
	require.NoError(t, ratings.CreateRating(&models.Rating{UserID: user.ID, RecipeID: recipe.ID, Value: 3}))

	avg, err = ratings.AverageForRecipe(recipe.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, avg, 0.001)
}
