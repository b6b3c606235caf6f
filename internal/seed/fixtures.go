package seed

import "github.com/spiceroutes/spiceroutes-api/internal/models"

// spiceDefinitions is the fixed, ordered baseline spice list. The order is
// part of the fixture: the recipe step looks up entries created here.
func spiceDefinitions() []models.Spice {
	return []models.Spice{
		{
			Name:           "Black Pepper",
			ScientificName: "Piper nigrum",
			Description:    "Known as the \"king of spices,\" black pepper is one of the most widely used spices in the world. Native to the Western Ghats of India, it adds a sharp, pungent flavor to dishes.",
			Origin:         []string{"India", "Vietnam", "Indonesia", "Brazil"},
			ImageURL:       "/images/spices/black-pepper.jpg",
			FlavorProfile: models.FlavorProfile{
				Sweet: 1, Savory: 8, Bitter: 3, Sour: 0, Umami: 2, Pungent: 9, HeatLevel: 3,
			},
			HeatLevel:    3,
			CulinaryUses: []string{"Seasoning", "Marinades", "Sauces", "Preservation"},
			Substitutes:  []string{"White pepper", "Green pepper", "Pink pepper"},
			Pairings:     []string{"Salt", "Garlic", "Thyme", "Rosemary"},
			Seasonality:  "Year-round",
			IsPopular:    true,
		},
		{
			Name:           "Cinnamon",
			ScientificName: "Cinnamomum verum",
			Description:    "A warm, sweet spice obtained from the inner bark of cinnamon trees. Ceylon cinnamon is considered \"true cinnamon\" and is prized for its delicate flavor.",
			Origin:         []string{"Sri Lanka", "India", "Madagascar", "Brazil"},
			ImageURL:       "/images/spices/cinnamon.jpg",
			FlavorProfile: models.FlavorProfile{
				Sweet: 9, Savory: 2, Bitter: 1, Sour: 0, Umami: 0, Pungent: 4, HeatLevel: 1,
			},
			HeatLevel:    1,
			CulinaryUses: []string{"Baking", "Desserts", "Beverages", "Curries"},
			Substitutes:  []string{"Cassia", "Nutmeg", "Allspice"},
			Pairings:     []string{"Cloves", "Nutmeg", "Cardamom", "Ginger"},
			Seasonality:  "Year-round",
			IsPopular:    true,
		},
		{
			Name:           "Turmeric",
			ScientificName: "Curcuma longa",
			Description:    "A vibrant yellow spice that is a key ingredient in curry powder. Known for its earthy, slightly bitter flavor and numerous health benefits.",
			Origin:         []string{"India", "Indonesia", "China", "Thailand"},
			ImageURL:       "/images/spices/turmeric.jpg",
			FlavorProfile: models.FlavorProfile{
				Sweet: 2, Savory: 6, Bitter: 5, Sour: 1, Umami: 3, Pungent: 4, HeatLevel: 0,
			},
			HeatLevel:    0,
			CulinaryUses: []string{"Curries", "Rice dishes", "Marinades", "Golden milk"},
			Substitutes:  []string{"Saffron", "Curry powder", "Mustard powder"},
			Pairings:     []string{"Black pepper", "Ginger", "Cumin", "Coriander"},
			Seasonality:  "Year-round",
			IsPopular:    true,
		},
		{
			Name:           "Saffron",
			ScientificName: "Crocus sativus",
			Description:    "The world's most expensive spice by weight, saffron consists of the dried stigmas of the saffron crocus. It imparts a golden color and unique flavor to dishes.",
			Origin:         []string{"Iran", "Kashmir", "Spain", "Greece"},
			ImageURL:       "/images/spices/saffron.jpg",
			FlavorProfile: models.FlavorProfile{
				Sweet: 5, Savory: 4, Bitter: 3, Sour: 1, Umami: 2, Pungent: 2, HeatLevel: 0,
			},
			HeatLevel:    0,
			CulinaryUses: []string{"Rice dishes", "Desserts", "Beverages", "Breads"},
			Substitutes:  []string{"Turmeric", "Safflower", "Annatto"},
			Pairings:     []string{"Rose", "Cardamom", "Vanilla", "Honey"},
			Seasonality:  "Fall harvest",
			IsPopular:    true,
		},
		{
			Name:           "Cardamom",
			ScientificName: "Elettaria cardamomum",
			Description:    "Known as the \"queen of spices,\" cardamom has a complex flavor that is sweet, floral, and slightly citrusy. It's the third most expensive spice after saffron and vanilla.",
			Origin:         []string{"India", "Guatemala", "Sri Lanka", "Tanzania"},
			ImageURL:       "/images/spices/cardamom.jpg",
			FlavorProfile: models.FlavorProfile{
				Sweet: 7, Savory: 3, Bitter: 2, Sour: 2, Umami: 1, Pungent: 5, HeatLevel: 1,
			},
			HeatLevel:    1,
			CulinaryUses: []string{"Coffee", "Tea", "Desserts", "Curries"},
			Substitutes:  []string{"Cinnamon", "Nutmeg", "Ginger"},
			Pairings:     []string{"Rose", "Saffron", "Cinnamon", "Cloves"},
			Seasonality:  "Year-round",
			IsPopular:    true,
		},
		{
			Name:           "Star Anise",
			ScientificName: "Illicium verum",
			Description:    "A star-shaped spice with a strong licorice flavor. It's a key ingredient in Chinese five-spice powder and Vietnamese pho.",
			Origin:         []string{"China", "Vietnam", "India", "Japan"},
			ImageURL:       "/images/spices/star-anise.jpg",
			FlavorProfile: models.FlavorProfile{
				Sweet: 8, Savory: 2, Bitter: 3, Sour: 0, Umami: 1, Pungent: 6, HeatLevel: 0,
			},
			HeatLevel:    0,
			CulinaryUses: []string{"Broths", "Marinades", "Baking", "Beverages"},
			Substitutes:  []string{"Anise seed", "Fennel seed", "Chinese five-spice"},
			Pairings:     []string{"Cinnamon", "Cloves", "Ginger", "Sichuan pepper"},
			Seasonality:  "Fall harvest",
			IsPopular:    true,
		},
	}
}
