package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"github.com/spiceroutes/spiceroutes-api/internal/services"
)

// SearchController handles cross-entity search.
type SearchController struct {
	service services.SearchService
}

func NewSearchController(service services.SearchService) *SearchController {
	return &SearchController{service: service}
}

func (sc *SearchController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest,
			models.NewAPIError(models.ErrBadRequest, "q query parameter is required"))
		return
	}

	results, err := sc.service.Search(query)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, results)
}
