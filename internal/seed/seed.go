package seed

import (
	"fmt"
	"math/rand"

	log "github.com/sirupsen/logrus"
	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"gorm.io/gorm"
)

// Loader populates the store with the baseline dataset: one demo user, six
// spices with nested facts, one recipe with its children, one rating, one
// collection and five tags. Steps run strictly in order because later steps
// need ids produced by earlier ones. There is no cross-step rollback; each
// multi-row write is individually transactional.
type Loader struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewLoader builds a loader. The random source feeds the nutritional
// amounts; pass a fixed-seed source for reproducible fixtures.
func NewLoader(db *gorm.DB, rng *rand.Rand) *Loader {
	return &Loader{db: db, rng: rng}
}

// Run executes the full seed sequence. The first failing step aborts the
// run and is returned to the caller.
func (l *Loader) Run() error {
	log.Info("Starting database seed")

	user, err := l.createDemoUser()
	if err != nil {
		return fmt.Errorf("create demo user: %w", err)
	}

	if err := l.createSpices(); err != nil {
		return fmt.Errorf("create spices: %w", err)
	}

	recipe, err := l.createSampleRecipe(user)
	if err != nil {
		return fmt.Errorf("create sample recipe: %w", err)
	}

	if recipe != nil {
		if err := l.createRating(user, recipe); err != nil {
			return fmt.Errorf("create rating: %w", err)
		}
		if err := l.createCollection(user, recipe); err != nil {
			return fmt.Errorf("create collection: %w", err)
		}
	}

	if err := l.createTags(); err != nil {
		return fmt.Errorf("create tags: %w", err)
	}

	log.Info("Database seed complete")
	return nil
}

func (l *Loader) createDemoUser() (*models.User, error) {
	user := &models.User{
		Email:           "demo@spiceroutes.wiki",
		Password:        "TestPassword123!",
		Name:            "Demo User",
		IsActive:        true,
		IsEmailVerified: true,
		Bio:             "A passionate spice enthusiast and home chef.",
		Preferences: models.Preferences{
			FavoriteSpices:      []string{"black-pepper", "cinnamon", "turmeric"},
			DietaryRestrictions: []string{},
			SkillLevel:          "intermediate",
		},
	}
	if err := user.HashPassword(); err != nil {
		return nil, err
	}
	if err := l.db.Create(user).Error; err != nil {
		return nil, err
	}

	log.WithField("email", user.Email).Info("Created demo user")
	return user, nil
}

func (l *Loader) createSpices() error {
	for _, definition := range spiceDefinitions() {
		spice := definition
		if err := l.db.Create(&spice).Error; err != nil {
			return err
		}
		log.WithField("name", spice.Name).Info("Created spice")

		if spice.Name == "Turmeric" {
			prop := models.MedicinalProperty{
				SpiceID:     spice.ID,
				Property:    "Anti-inflammatory",
				Description: "Curcumin in turmeric has powerful anti-inflammatory effects and is a very strong antioxidant.",
				Evidence:    "Multiple clinical studies",
			}
			if err := l.db.Create(&prop).Error; err != nil {
				return err
			}
		}

		info := models.NutritionalInfo{
			SpiceID:    spice.ID,
			Nutrient:   "Dietary Fiber",
			Amount:     l.rng.Float64()*10 + 5,
			Unit:       "g per 100g",
			DailyValue: l.rng.Float64()*20 + 10,
		}
		if err := l.db.Create(&info).Error; err != nil {
			return err
		}
	}
	return nil
}

// createSampleRecipe builds the Golden Turmeric Latte, linking the two
// spices it depends on. If either spice is missing the step is skipped
// rather than failed, matching the guarded behavior of the fixture data.
func (l *Loader) createSampleRecipe(user *models.User) (*models.Recipe, error) {
	var blackPepper, turmeric models.Spice
	if err := l.db.Where("name = ?", "Black Pepper").First(&blackPepper).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	if err := l.db.Where("name = ?", "Turmeric").First(&turmeric).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	recipe := &models.Recipe{
		Title:       "Golden Turmeric Latte",
		Description: "A warming, anti-inflammatory beverage perfect for cold evenings. This golden milk combines the healing properties of turmeric with creamy coconut milk.",
		AuthorID:    user.ID,
		ImageURL:    "/images/recipes/golden-latte.jpg",
		Cuisine:     "Indian",
		Difficulty:  "Easy",
		PrepTime:    5,
		CookTime:    10,
		Servings:    2,
		Calories:    120,
		IsFeatured:  true,
		Ingredients: []models.Ingredient{
			{Name: "Coconut milk", Quantity: "2", Unit: "cups", Order: 1},
			{Name: "Fresh ginger", Quantity: "1", Unit: "inch piece", Order: 2},
			{Name: "Honey", Quantity: "2", Unit: "tablespoons", Order: 3},
			{Name: "Coconut oil", Quantity: "1", Unit: "teaspoon", Order: 4},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Content: "In a saucepan, combine coconut milk, grated ginger, turmeric, and black pepper.", Duration: 2},
			{StepNumber: 2, Content: "Heat over medium heat, whisking frequently, until hot but not boiling.", Duration: 5},
			{StepNumber: 3, Content: "Strain through a fine mesh sieve to remove ginger pieces.", Duration: 1},
			{StepNumber: 4, Content: "Stir in honey and coconut oil until dissolved. Serve warm.", Duration: 2},
		},
		SpiceLinks: []models.RecipeSpice{
			{SpiceID: turmeric.ID, Quantity: "1", Unit: "teaspoon", Notes: "Fresh turmeric can be used for stronger flavor"},
			{SpiceID: blackPepper.ID, Quantity: "1/4", Unit: "teaspoon", Notes: "Enhances turmeric absorption"},
		},
	}

	// One Create inserts the recipe and every child in a single
	// transaction, so a midway failure leaves no partial recipe.
	if err := l.db.Create(recipe).Error; err != nil {
		return nil, err
	}

	log.WithField("title", recipe.Title).Info("Created recipe")
	return recipe, nil
}

func (l *Loader) createRating(user *models.User, recipe *models.Recipe) error {
	rating := models.Rating{
		UserID:   user.ID,
		RecipeID: recipe.ID,
		Value:    5,
		Review:   "Delicious and healthy! I make this every morning now.",
	}
	return l.db.Create(&rating).Error
}

func (l *Loader) createCollection(user *models.User, recipe *models.Recipe) error {
	collection := models.Collection{
		UserID:      user.ID,
		Name:        "Favorite Beverages",
		Description: "My go-to drink recipes",
		IsPublic:    true,
		Recipes: []models.CollectionRecipe{
			{RecipeID: recipe.ID},
		},
	}
	if err := l.db.Create(&collection).Error; err != nil {
		return err
	}

	log.WithField("name", collection.Name).Info("Created collection")
	return nil
}

func (l *Loader) createTags() error {
	for _, name := range []string{"Vegan", "Gluten-Free", "Quick", "Healthy", "Comfort Food"} {
		if err := l.db.Create(&models.Tag{Name: name}).Error; err != nil {
			return err
		}
		log.WithField("name", name).Info("Created tag")
	}
	return nil
}
