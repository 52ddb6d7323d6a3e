package api

// RouteRequest is the JSON body for POST /api/v1/route. Both fields are
// building queries: an abbreviation or part of the full name.
type RouteRequest struct {
	Start       string `json:"start"`
	Destination string `json:"destination"`
}

// LatLngJSON represents a lat/lng pair in JSON.
type LatLngJSON struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BuildingJSON represents a building in the response.
type BuildingJSON struct {
	Name     string     `json:"name"`
	Abbrev   string     `json:"abbrev,omitempty"`
	Location LatLngJSON `json:"location"`
}

// NodeJSON represents the footway node nearest to a building.
type NodeJSON struct {
	ID             int64      `json:"id"`
	Location       LatLngJSON `json:"location"`
	DistanceMeters float64    `json:"distance_meters"`
}

// RouteResponse is the JSON response for a successful route query.
type RouteResponse struct {
	Start               BuildingJSON `json:"start"`
	Destination         BuildingJSON `json:"destination"`
	StartNode           NodeJSON     `json:"start_node"`
	DestinationNode     NodeJSON     `json:"destination_node"`
	TotalDistanceMeters float64      `json:"total_distance_meters"`
	TotalDistanceMiles  float64      `json:"total_distance_miles"`
	Path                []int64      `json:"path"`
	Geometry            []LatLngJSON `json:"geometry"`
}

// ErrorResponse is the JSON response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// StatsResponse is the JSON response for GET /api/v1/stats.
type StatsResponse struct {
	NumNodes         int `json:"num_nodes"`
	NumFootways      int `json:"num_footways"`
	NumBuildings     int `json:"num_buildings"`
	NumVertices      int `json:"num_vertices"`
	NumEdges         int `json:"num_edges"`
	LargestComponent int `json:"largest_component"`
}

// BuildingsResponse is the JSON response for GET /api/v1/buildings.
type BuildingsResponse struct {
	Buildings []BuildingJSON `json:"buildings"`
}

// HealthResponse is the JSON response for GET /api/v1/health.
type HealthResponse struct {
	Status string `json:"status"`
}
