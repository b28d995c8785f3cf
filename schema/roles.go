package schema

// ============================================================================
// ROLES — Canonical semantic meanings, independent of column spelling
// ============================================================================
// Delivery datasets name their columns inconsistently ("Time_taken (min)",
// "time_taken_minutes", "Area" vs "City"). A Role is the stable handle the
// engine works with; the candidate lists below map each role to the
// spellings seen in the wild, in priority order.
//
// The candidate table is data, not code — extend it per dataset with an
// alias file (see aliases.go) instead of editing resolution logic.
// ============================================================================

// Role identifies one canonical column meaning.
type Role string

const (
	RoleCourierID        Role = "courier_id"
	RoleRating           Role = "rating"
	RoleTime             Role = "time_taken"
	RoleCity             Role = "city"
	RoleMultipleDelivery Role = "multiple_deliveries"
	RoleVehicleType      Role = "vehicle_type"
	RoleOrderType        Role = "order_type"
	RoleWeather          Role = "weather"
	RoleTraffic          Role = "traffic_density"
	RoleFestival         Role = "festival"
	RolePickupLat        Role = "pickup_latitude"
	RolePickupLon        Role = "pickup_longitude"
	RoleDropLat          Role = "drop_latitude"
	RoleDropLon          Role = "drop_longitude"
	RoleAge              Role = "age"
	RoleVehicleCondition Role = "vehicle_condition"
)

// AllRoles lists every canonical role in a stable order.
var AllRoles = []Role{
	RoleCourierID,
	RoleRating,
	RoleTime,
	RoleCity,
	RoleMultipleDelivery,
	RoleVehicleType,
	RoleOrderType,
	RoleWeather,
	RoleTraffic,
	RoleFestival,
	RolePickupLat,
	RolePickupLon,
	RoleDropLat,
	RoleDropLon,
	RoleAge,
	RoleVehicleCondition,
}

// defaultCandidates maps each role to accepted column spellings.
// Order is a priority list, not just an allowlist: the first match wins.
var defaultCandidates = map[Role][]string{
	RoleCourierID:        {"Delivery_person_ID", "delivery_person_id", "Delivery ID", "ID"},
	RoleRating:           {"Delivery_person_Ratings", "Delivery_person_Rating"},
	RoleTime:             {"Time_taken (min)", "Time_taken_min", "Time_taken", "Time_taken_minutes"},
	RoleCity:             {"City", "city", "Area"},
	RoleMultipleDelivery: {"multiple_deliveries", "Multiple_deliveries"},
	RoleVehicleType:      {"Type_of_vehicle", "vehicle_type"},
	RoleOrderType:        {"Type_of_order", "type_of_order", "Order_Type"},
	RoleWeather:          {"Weather_conditions", "Weather"},
	RoleTraffic:          {"Road_traffic_density", "Traffic"},
	RoleFestival:         {"Festival", "festival"},
	RolePickupLat:        {"Restaurant_latitude", "restaurant_latitude"},
	RolePickupLon:        {"Restaurant_longitude", "restaurant_longitude"},
	RoleDropLat:          {"Delivery_location_latitude", "delivery_location_latitude"},
	RoleDropLon:          {"Delivery_location_longitude", "delivery_location_longitude"},
	RoleAge:              {"Delivery_person_Age", "Delivery_person_age", "Age"},
	RoleVehicleCondition: {"Vehicle_condition", "vehicle_condition"},
}

// displayNames are the human-readable labels used in messages and tables.
var displayNames = map[Role]string{
	RoleCourierID:        "Delivery person ID",
	RoleRating:           "Rating",
	RoleTime:             "Time taken",
	RoleCity:             "City",
	RoleMultipleDelivery: "Multiple deliveries",
	RoleVehicleType:      "Vehicle type",
	RoleOrderType:        "Order type",
	RoleWeather:          "Weather conditions",
	RoleTraffic:          "Traffic density",
	RoleFestival:         "Festival",
	RolePickupLat:        "Pickup latitude",
	RolePickupLon:        "Pickup longitude",
	RoleDropLat:          "Drop-off latitude",
	RoleDropLon:          "Drop-off longitude",
	RoleAge:              "Delivery person age",
	RoleVehicleCondition: "Vehicle condition",
}

// DisplayName returns the human-readable label for a role.
func (r Role) DisplayName() string {
	if name, ok := displayNames[r]; ok {
		return name
	}
	return string(r)
}

// Candidates returns the default candidate spellings for a role.
// The returned slice is shared; callers must not mutate it.
func (r Role) Candidates() []string {
	return defaultCandidates[r]
}
