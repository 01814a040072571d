package locations

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStates_SortedAndComplete(t *testing.T) {
	states := States()

	require.NotEmpty(t, states)
	assert.True(t, sort.StringsAreSorted(states))
	assert.Len(t, states, len(table))
	assert.Contains(t, states, "Maharashtra")
}

func TestDistricts(t *testing.T) {
	districts := Districts("Maharashtra")

	require.NotEmpty(t, districts)
	assert.True(t, sort.StringsAreSorted(districts))
	assert.Contains(t, districts, "Pune")
}

func TestDistricts_UnknownState(t *testing.T) {
	assert.Empty(t, Districts("Atlantis"))
	assert.Empty(t, Districts(""))
}

func TestCities_ExactSetForPair(t *testing.T) {
	cities := Cities("Maharashtra", "Pune")

	assert.Equal(t, []string{"Baramati", "Lonavala", "Pune"}, cities)
}

func TestCities_RequiresBothParents(t *testing.T) {
	// A district queried without its state yields nothing.
	assert.Empty(t, Cities("", "Pune"))
	assert.Empty(t, Cities("Maharashtra", ""))
	assert.Empty(t, Cities("Maharashtra", "Chennai"))
	assert.Empty(t, Cities("Atlantis", "Pune"))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("Maharashtra", "Pune", "Lonavala"))
	assert.False(t, Valid("Maharashtra", "Pune", "Chennai"))
	assert.False(t, Valid("Maharashtra", "Chennai", "Chennai"))
	assert.False(t, Valid("Tamil Nadu", "Pune", "Pune"))
	assert.False(t, Valid("", "", ""))
}

func TestCities_ReturnsCopy(t *testing.T) {
	cities := Cities("Gujarat", "Surat")
	cities[0] = "mutated"

	assert.Equal(t, []string{"Bardoli", "Mandvi", "Surat"}, Cities("Gujarat", "Surat"))
}
