package services

import (
	"testing"

	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"The King of Spices":      "the-king-of-spices",
		"  Saffron: worth it?  ":  "saffron-worth-it",
		"Already-slugged":         "already-slugged",
		"Chili 101: The Basics!":  "chili-101-the-basics",
	}
	for input, expected := range cases {
		assert.Equal(t, expected, Slugify(input))
	}
}

func TestCreateArticleGeneratesSlug(t *testing.T) {
	db := setupTestDB(t)
	service := NewArticleService(db)
	user := createTestUser(t, db)

	article := &models.Article{
		Title:       "A History of Black Pepper",
		Content:     "Long before refrigeration...",
		AuthorID:    user.ID,
		IsPublished: true,
	}
	require.NoError(t, service.CreateArticle(article))
	assert.Equal(t, "a-history-of-black-pepper", article.Slug)

	bySlug, err := service.GetArticleBySlug("a-history-of-black-pepper")
	require.NoError(t, err)
	assert.Equal(t, article.ID, bySlug.ID)
}

func TestDeleteArticleCascadesToComments(t *testing.T) {
	db := setupTestDB(t)
	articles := NewArticleService(db)
	comments := NewCommentService(db)
	user := createTestUser(t, db)

	article := &models.Article{Title: "Short-lived", AuthorID: user.ID}
	require.NoError(t, articles.CreateArticle(article))
	require.NoError(t, comments.CreateComment(&models.Comment{
		UserID: user.ID, ArticleID: article.ID, Content: "First!",
	}))

	require.NoError(t, articles.DeleteArticle(article.ID))

	var count int64
	db.Model(&models.Comment{}).Where("article_id = ?", article.ID).Count(&count)
	assert.Zero(t, count)
}

func TestDeleteCommentRequiresOwnership(t *testing.T) {
	db := setupTestDB(t)
	articles := NewArticleService(db)
	comments := NewCommentService(db)
	user := createTestUser(t, db)

	other := &models.User{Email: "other@spiceroutes.wiki", Password: "hash"}
	require.NoError(t, db.Create(other).Error)

	article := &models.Article{Title: "Contested", AuthorID: user.ID}
	require.NoError(t, articles.CreateArticle(article))

	comment := &models.Comment{UserID: user.ID, ArticleID: article.ID, Content: "Mine."}
	require.NoError(t, comments.CreateComment(comment))

	assert.ErrorIs(t, comments.DeleteComment(comment.ID, other.ID), ErrNotOwner)
	assert.NoError(t, comments.DeleteComment(comment.ID, user.ID))
	assert.ErrorIs(t, comments.DeleteComment(comment.ID, user.ID), gorm.ErrRecordNotFound)
}

func TestCollectionVisibilityAndOwnership(t *testing.T) {
	db := setupTestDB(t)
	collections := NewCollectionService(db)
	recipes := NewRecipeService(db)
	user := createTestUser(t, db)

	other := &models.User{Email: "viewer@spiceroutes.wiki", Password: "hash"}
	require.NoError(t, db.Create(other).Error)

	private := &models.Collection{UserID: user.ID, Name: "Secret Stash"}
	require.NoError(t, collections.CreateCollection(private))

	public := &models.Collection{UserID: user.ID, Name: "Shared Favorites", IsPublic: true}
	require.NoError(t, collections.CreateCollection(public))

	// The owner sees both; a stranger only the public one.
	mine, err := collections.GetCollectionsForUser(user.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := collections.GetCollectionsForUser(other.ID)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, "Shared Favorites", theirs[0].Name)

	_, err = collections.GetCollectionByID(private.ID, other.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	recipe := &models.Recipe{Title: "Collectible", AuthorID: user.ID}
	require.NoError(t, recipes.CreateRecipe(recipe))

	assert.ErrorIs(t, collections.AddRecipe(public.ID, recipe.ID, other.ID), ErrNotOwner)
	require.NoError(t, collections.AddRecipe(public.ID, recipe.ID, user.ID))

	loaded, err := collections.GetCollectionByID(public.ID, other.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Recipes, 1)
	assert.Equal(t, recipe.ID, loaded.Recipes[0].RecipeID)
}

func TestSearchAcrossEntities(t *testing.T) {
	db := setupTestDB(t)
	search := NewSearchService(db)
	spices := NewSpiceService(db)
	recipes := NewRecipeService(db)
	articles := NewArticleService(db)
	user := createTestUser(t, db)

	require.NoError(t, spices.CreateSpice(testSpice("Turmeric", 0)))
	require.NoError(t, recipes.CreateRecipe(&models.Recipe{Title: "Golden Turmeric Latte", AuthorID: user.ID}))
	require.NoError(t, articles.CreateArticle(&models.Article{
		Title: "Turmeric in Ayurveda", AuthorID: user.ID, IsPublished: true,
	}))
	require.NoError(t, articles.CreateArticle(&models.Article{
		Title: "Turmeric draft", AuthorID: user.ID, IsPublished: false,
	}))

	results, err := search.Search("Turmeric")
	require.NoError(t, err)
	assert.Len(t, results.Spices, 1)
	assert.Len(t, results.Recipes, 1)
	// Unpublished articles stay out of search.
	assert.Len(t, results.Articles, 1)
}
