package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spiceroutes/spiceroutes-api/internal/models"
	"github.com/spiceroutes/spiceroutes-api/internal/services"
)

// SpiceController handles HTTP requests for the spice catalog
type SpiceController interface {
	// GetAllSpices retrieves all spices, with optional name/popular filters
	GetAllSpices(c *gin.Context)
	// GetSpiceByID retrieves one spice with its medicinal and nutritional facts
	GetSpiceByID(c *gin.Context)
	// CreateSpice creates a new spice
	CreateSpice(c *gin.Context)
	// UpdateSpice updates an existing spice
	UpdateSpice(c *gin.Context)
	// DeleteSpice deletes a spice and its owned children
	DeleteSpice(c *gin.Context)
	// AddMedicinalProperty attaches a medicinal property to a spice
	AddMedicinalProperty(c *gin.Context)
	// AddNutritionalInfo attaches a nutritional row to a spice
	AddNutritionalInfo(c *gin.Context)
}

type spiceController struct {
	service services.SpiceService
}

// NewSpiceController creates a new instance of SpiceController
func NewSpiceController(service services.SpiceService) SpiceController {
	return &spiceController{service: service}
}

// paramID parses the :id path parameter.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest,
			models.NewAPIError(models.ErrBadRequest, "Invalid id format"))
		return 0, false
	}
	return uint(id), true
}

func (sc *spiceController) GetAllSpices(c *gin.Context) {
	name := c.Query("name")
	popularOnly := c.Query("popular") == "true"

	spices, err := sc.service.GetAllSpices(name, popularOnly)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, spices)
}

func (sc *spiceController) GetSpiceByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	spice, err := sc.service.GetSpiceByID(id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, spice)
}

func (sc *spiceController) CreateSpice(c *gin.Context) {
	var spice models.Spice
	if err := c.ShouldBindJSON(&spice); err != nil {
		c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	if err := sc.service.CreateSpice(&spice); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, spice)
}

func (sc *spiceController) UpdateSpice(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	existing, err := sc.service.GetSpiceByID(id)
	if err != nil {
		c.Error(err)
		return
	}

	var spice models.Spice
	if err := c.ShouldBindJSON(&spice); err != nil {
		c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	// The URL wins over any id in the payload.
	spice.ID = existing.ID
	if err := sc.service.UpdateSpice(&spice); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, spice)
}

func (sc *spiceController) DeleteSpice(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := sc.service.DeleteSpice(id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (sc *spiceController) AddMedicinalProperty(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var prop models.MedicinalProperty
	if err := c.ShouldBindJSON(&prop); err != nil {
		c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}
	prop.SpiceID = id

	if err := sc.service.AddMedicinalProperty(&prop); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, prop)
}

func (sc *spiceController) AddNutritionalInfo(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var info models.NutritionalInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}
	info.SpiceID = id

	if err := sc.service.AddNutritionalInfo(&info); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, info)
}
