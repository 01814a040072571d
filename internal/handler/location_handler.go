package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/priyanshuKshk/dealer-info-api/internal/locations"
)

// LocationHandler serves the static State→District→City lookup table used
// by the cascading form selectors.
type LocationHandler struct{}

// NewLocationHandler constructs a LocationHandler.
func NewLocationHandler() *LocationHandler {
	return &LocationHandler{}
}

// GetStates handles GET /locations/states
func (h *LocationHandler) GetStates(c *gin.Context) {
	c.JSON(200, locations.States())
}

// GetDistricts handles GET /locations/states/:state/districts
func (h *LocationHandler) GetDistricts(c *gin.Context) {
	c.JSON(200, locations.Districts(c.Param("state")))
}

// GetCities handles GET /locations/states/:state/districts/:district/cities
func (h *LocationHandler) GetCities(c *gin.Context) {
	c.JSON(200, locations.Cities(c.Param("state"), c.Param("district")))
}
