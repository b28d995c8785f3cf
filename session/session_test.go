package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fleetlens/fleetlens/engine"
	"github.com/fleetlens/fleetlens/helpers"
	"github.com/fleetlens/fleetlens/schema"
	"github.com/fleetlens/fleetlens/table"
)

// ============================================================================
// SESSION TESTS
// ============================================================================

var deliveryCSV = []byte(`Delivery_person_ID,Delivery_person_Age,Delivery_person_Ratings,Restaurant_latitude,Restaurant_longitude,Delivery_location_latitude,Delivery_location_longitude,Road_traffic_density,City,Time_taken (min)
D1,25,4.2,22.745049,75.892471,22.765049,75.912471,High,Indore,30
D2,32,4.8,22.745049,75.892471,22.755049,75.902471,Low,Indore,15
D3,28,4.5,12.914264,77.678400,12.934264,77.698400,Medium,Bangalore,25
D4,40,4.1,12.914264,77.678400,12.924264,77.688400,Low,Bangalore,20
`)

func openSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	tbl, err := helpers.ReadCSV(deliveryCSV)
	require.NoError(t, err)
	return New(tbl, opts...)
}

func TestSessionResolvesOnceAtConstruction(t *testing.T) {
	sess := openSession(t)

	assert.NotEqual(t, uuid.Nil, sess.ID())
	assert.True(t, sess.Bindings().Has(
		schema.RoleCourierID, schema.RoleRating, schema.RoleCity,
		schema.RoleTime, schema.RoleTraffic,
		schema.RolePickupLat, schema.RolePickupLon,
		schema.RoleDropLat, schema.RoleDropLon,
	))
}

func TestSessionAskHighestRating(t *testing.T) {
	sess := openSession(t, WithLogger(zap.NewNop()))

	result := sess.Ask("Which delivery person has the highest rating?")
	require.NotNil(t, result)
	assert.Equal(t, engine.KindText, result.Kind)
	assert.Contains(t, result.Reply, "D2")
	assert.Contains(t, result.Reply, "4.8")
}

func TestSessionAskGroupedTable(t *testing.T) {
	sess := openSession(t)

	result := sess.Ask("What is the average delivery time per city?")
	require.NotNil(t, result)
	require.Equal(t, engine.KindTable, result.Kind)
	require.Len(t, result.Table.Rows, 2)
	// Both cities average 22.50; the stable sort keeps first-appearance
	// order, so Indore stays first.
	assert.Equal(t, []string{"Indore", "22.50", "2"}, result.Table.Rows[0])
	assert.Equal(t, []string{"Bangalore", "22.50", "2"}, result.Table.Rows[1])
}

func TestSessionAskRepeatedIsStable(t *testing.T) {
	sess := openSession(t)

	first := sess.Ask("How does traffic density impact delivery time?")
	second := sess.Ask("How does traffic density impact delivery time?")
	assert.Equal(t, first, second)
}

func TestSessionAskUnrecognized(t *testing.T) {
	sess := openSession(t)

	result := sess.Ask("asdkjasd random text")
	require.NotNil(t, result)
	assert.Equal(t, engine.KindText, result.Kind)
	assert.Contains(t, result.Reply, "Which delivery person has the highest rating?")
}

func TestSessionAnnotatesDerivedColumnsOnce(t *testing.T) {
	tbl, err := helpers.ReadCSV(deliveryCSV)
	require.NoError(t, err)

	New(tbl)

	dist, ok := tbl.Derived(engine.DerivedDistanceKm)
	require.True(t, ok)
	require.Len(t, dist, 4)
	assert.False(t, table.AllNaN(dist))

	timeMin, ok := tbl.Derived(engine.DerivedTimeMin)
	require.True(t, ok)
	assert.Equal(t, 30.0, timeMin[0])
}

func TestSessionWithAliases(t *testing.T) {
	csv := []byte("courier,Zone,duration\nD1,North,12\nD2,South,18\n")
	tbl, err := helpers.ReadCSV(csv)
	require.NoError(t, err)

	sess := New(tbl, WithAliases(map[schema.Role][]string{
		schema.RoleCourierID: {"courier"},
		schema.RoleCity:      {"Zone"},
		schema.RoleTime:      {"duration"},
	}))

	result := sess.Ask("What is the average delivery time per city?")
	require.Equal(t, engine.KindTable, result.Kind)
	require.Len(t, result.Table.Rows, 2)
	assert.Equal(t, []string{"North", "12.00", "1"}, result.Table.Rows[0])
}

func TestSessionMissingColumnDegradesGracefully(t *testing.T) {
	csv := []byte("Delivery_person_ID,Time_taken (min)\nD1,12\n")
	tbl, err := helpers.ReadCSV(csv)
	require.NoError(t, err)
	sess := New(tbl)

	result := sess.Ask("How does traffic density impact delivery time?")
	require.NotNil(t, result)
	assert.Equal(t, "Traffic density column not found.", result.Reply)
}

func TestSessionsAreIndependent(t *testing.T) {
	a := openSession(t)
	b := openSession(t)
	assert.NotEqual(t, a.ID(), b.ID())
}
