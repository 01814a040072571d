package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewLocationHandler()
	router.GET("/locations/states", h.GetStates)
	router.GET("/locations/states/:state/districts", h.GetDistricts)
	router.GET("/locations/states/:state/districts/:district/cities", h.GetCities)
	return router
}

func TestGetStates(t *testing.T) {
	router := newLocationRouter()

	w := doJSON(router, http.MethodGet, "/locations/states", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var states []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &states))
	assert.Contains(t, states, "Maharashtra")
}

func TestGetDistricts(t *testing.T) {
	router := newLocationRouter()

	w := doJSON(router, http.MethodGet, "/locations/states/Maharashtra/districts", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var districts []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &districts))
	assert.Contains(t, districts, "Pune")
}

func TestGetDistricts_UnknownStateYieldsEmptyList(t *testing.T) {
	router := newLocationRouter()

	w := doJSON(router, http.MethodGet, "/locations/states/Atlantis/districts", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetCities(t *testing.T) {
	router := newLocationRouter()

	w := doJSON(router, http.MethodGet, "/locations/states/Maharashtra/districts/Pune/cities", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var cities []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cities))
	assert.Contains(t, cities, "Pune")
}
