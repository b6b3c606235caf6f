package seed

import (
	"math/rand"
	"testing"

	"github.com/spiceroutes/spiceroutes-api/internal/database"
	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func runSeed(t *testing.T, db *gorm.DB) {
	loader := NewLoader(db, rand.New(rand.NewSource(1)))
	require.NoError(t, loader.Run())
}

func TestSeedProducesExpectedCounts(t *testing.T) {
	db := setupTestDB(t)
	runSeed(t, db)

	counts := map[string]int64{}
	for name, model := range map[string]interface{}{
		"users":       &models.User{},
		"spices":      &models.Spice{},
		"recipes":     &models.Recipe{},
		"ratings":     &models.Rating{},
		"collections": &models.Collection{},
		"tags":        &models.Tag{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		counts[name] = count
	}

	assert.EqualValues(t, 1, counts["users"])
	assert.EqualValues(t, 6, counts["spices"])
	assert.EqualValues(t, 1, counts["recipes"])
	assert.EqualValues(t, 1, counts["ratings"])
	assert.EqualValues(t, 1, counts["collections"])
	assert.EqualValues(t, 5, counts["tags"])
}

func TestSeedDemoUserCredentials(t *testing.T) {
	db := setupTestDB(t)
	runSeed(t, db)

	var user models.User
	require.NoError(t, db.Where("email = ?", "demo@spiceroutes.wiki").First(&user).Error)

	assert.True(t, user.IsActive)
	assert.True(t, user.IsEmailVerified)
	assert.True(t, user.CheckPassword("TestPassword123!"))
	assert.Equal(t, "intermediate", user.Preferences.SkillLevel)
	assert.Contains(t, user.Preferences.FavoriteSpices, "turmeric")
}

func TestSeedGoldenTurmericLatteScenario(t *testing.T) {
	db := setupTestDB(t)
	runSeed(t, db)

	var recipe models.Recipe
	err := db.Preload("Ingredients").Preload("Instructions").Preload("SpiceLinks.Spice").
		Where("title = ?", "Golden Turmeric Latte").First(&recipe).Error
	require.NoError(t, err)

	require.Len(t, recipe.Ingredients, 4)
	for i, ingredient := range recipe.Ingredients {
		assert.Equal(t, i+1, ingredient.Order)
	}

	require.Len(t, recipe.Instructions, 4)
	for i, instruction := range recipe.Instructions {
		assert.Equal(t, i+1, instruction.StepNumber)
	}

	require.Len(t, recipe.SpiceLinks, 2)
	linked := map[string]models.RecipeSpice{}
	for _, link := range recipe.SpiceLinks {
		require.NotNil(t, link.Spice)
		linked[link.Spice.Name] = link
	}

	turmeric, ok := linked["Turmeric"]
	require.True(t, ok)
	assert.Equal(t, "1", turmeric.Quantity)
	assert.Equal(t, "teaspoon", turmeric.Unit)
	assert.Equal(t, "Fresh turmeric can be used for stronger flavor", turmeric.Notes)

	pepper, ok := linked["Black Pepper"]
	require.True(t, ok)
	assert.Equal(t, "1/4", pepper.Quantity)
	assert.Equal(t, "teaspoon", pepper.Unit)
	assert.Equal(t, "Enhances turmeric absorption", pepper.Notes)
}

func TestSeedSpiceFacts(t *testing.T) {
	db := setupTestDB(t)
	runSeed(t, db)

	// Turmeric is the only spice with a medicinal property.
	var medicinal []models.MedicinalProperty
	require.NoError(t, db.Find(&medicinal).Error)
	require.Len(t, medicinal, 1)
	assert.Equal(t, "Anti-inflammatory", medicinal[0].Property)

	var turmeric models.Spice
	require.NoError(t, db.Where("name = ?", "Turmeric").First(&turmeric).Error)
	assert.Equal(t, turmeric.ID, medicinal[0].SpiceID)

	// Every spice gets exactly one nutritional row within the fixed ranges.
	var nutritional []models.NutritionalInfo
	require.NoError(t, db.Find(&nutritional).Error)
	require.Len(t, nutritional, 6)
	for _, info := range nutritional {
		assert.Equal(t, "Dietary Fiber", info.Nutrient)
		assert.GreaterOrEqual(t, info.Amount, 5.0)
		assert.Less(t, info.Amount, 15.0)
		assert.GreaterOrEqual(t, info.DailyValue, 10.0)
		assert.Less(t, info.DailyValue, 30.0)
	}
}

func TestSeedHeatLevelsConsistent(t *testing.T) {
	db := setupTestDB(t)
	runSeed(t, db)

	var spices []models.Spice
	require.NoError(t, db.Find(&spices).Error)
	require.Len(t, spices, 6)
	for _, spice := range spices {
		assert.Equalf(t, spice.FlavorProfile.HeatLevel, spice.HeatLevel,
			"heat level out of sync for %s", spice.Name)
	}
}

func TestSeedFixedSeedIsReproducible(t *testing.T) {
	amounts := func() []float64 {
		db := setupTestDB(t)
		loader := NewLoader(db, rand.New(rand.NewSource(7)))
		require.NoError(t, loader.Run())

		var nutritional []models.NutritionalInfo
		require.NoError(t, db.Order("spice_id").Find(&nutritional).Error)
		values := make([]float64, 0, len(nutritional))
		for _, info := range nutritional {
			values = append(values, info.Amount, info.DailyValue)
		}
		return values
	}

	assert.Equal(t, amounts(), amounts())
}

func TestSeedCollectionContainsRecipe(t *testing.T) {
	db := setupTestDB(t)
	runSeed(t, db)

	var collection models.Collection
	require.NoError(t, db.Preload("Recipes").Where("name = ?", "Favorite Beverages").First(&collection).Error)
	assert.True(t, collection.IsPublic)
	require.Len(t, collection.Recipes, 1)

	var rating models.Rating
	require.NoError(t, db.First(&rating).Error)
	assert.Equal(t, 5, rating.Value)
	assert.Equal(t, collection.Recipes[0].RecipeID, rating.RecipeID)
}
