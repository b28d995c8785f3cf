package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// RESOLUTION TESTS
// ============================================================================

func TestResolveExactBeatsCaseInsensitive(t *testing.T) {
	// "City" would case-insensitively match "CITY" (first position) and
	// sits earlier in the candidate list, but the exact match "city" must
	// win: the exact pass runs to completion before the fallback starts.
	columns := []string{"CITY", "city"}
	candidates := []string{"City", "city"}

	col, ok := Resolve(columns, candidates)
	require.True(t, ok)
	assert.Equal(t, "city", col)
}

func TestResolveCandidateOrderIsPriority(t *testing.T) {
	columns := []string{"Area", "City"}

	col, ok := Resolve(columns, []string{"City", "city", "Area"})
	require.True(t, ok)
	assert.Equal(t, "City", col)

	col, ok = Resolve(columns, []string{"Area", "City"})
	require.True(t, ok)
	assert.Equal(t, "Area", col)
}

func TestResolveCaseInsensitiveFallback(t *testing.T) {
	columns := []string{"Delivery_Person_ID", "Rating"}

	col, ok := Resolve(columns, []string{"Delivery_person_ID", "ID"})
	require.True(t, ok)
	assert.Equal(t, "Delivery_Person_ID", col)
}

func TestResolveDuplicateCaseColumnsFirstPositionWins(t *testing.T) {
	// Two columns differing only in case: the fallback maps to the first
	// positional occurrence.
	columns := []string{"Time_Taken", "time_taken"}

	col, ok := Resolve(columns, []string{"TIME_TAKEN"})
	require.True(t, ok)
	assert.Equal(t, "Time_Taken", col)
}

func TestResolveAbsent(t *testing.T) {
	col, ok := Resolve([]string{"City", "Rating"}, []string{"Weather_conditions", "Weather"})
	assert.False(t, ok)
	assert.Empty(t, col)

	col, ok = Resolve(nil, []string{"City"})
	assert.False(t, ok)
	assert.Empty(t, col)
}

func TestResolveAllDeliveryHeader(t *testing.T) {
	columns := []string{
		"Delivery_person_ID", "Delivery_person_Age", "Delivery_person_Ratings",
		"Restaurant_latitude", "Restaurant_longitude",
		"Delivery_location_latitude", "Delivery_location_longitude",
		"Weather_conditions", "Road_traffic_density", "Vehicle_condition",
		"Type_of_order", "Type_of_vehicle", "multiple_deliveries",
		"Festival", "City", "Time_taken (min)",
	}

	binds := ResolveAll(columns)
	for _, role := range AllRoles {
		_, ok := binds.Column(role)
		assert.True(t, ok, "role %s should resolve", role)
	}
	assert.Equal(t, "Time_taken (min)", binds[RoleTime])
	assert.Equal(t, "City", binds[RoleCity])
}

func TestResolveAllPartialHeader(t *testing.T) {
	binds := ResolveAll([]string{"Delivery_person_ID", "Delivery_person_Ratings"})

	assert.True(t, binds.Has(RoleCourierID, RoleRating))
	assert.False(t, binds.Has(RoleTraffic))
	assert.False(t, binds.Has(RoleCity, RoleTime))
	assert.Len(t, binds, 2)
}

func TestResolveAllDeterministic(t *testing.T) {
	columns := []string{"City", "Time_taken (min)", "Festival"}
	assert.Equal(t, ResolveAll(columns), ResolveAll(columns))
}

func TestResolveAllWithAliases(t *testing.T) {
	columns := []string{"Zone", "City"}
	aliases := map[Role][]string{RoleCity: {"Zone"}}

	// Alias spellings take priority over the defaults.
	binds := ResolveAll(columns, WithAliases(aliases))
	assert.Equal(t, "Zone", binds[RoleCity])

	// Without aliases the default candidate matches.
	binds = ResolveAll(columns)
	assert.Equal(t, "City", binds[RoleCity])
}
