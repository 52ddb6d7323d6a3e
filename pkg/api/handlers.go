package api

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strings"
	"time"

	"walk_router/pkg/buildings"
	osmparser "walk_router/pkg/osm"
	"walk_router/pkg/routing"
)

// maxQueryLen bounds a single building query.
const maxQueryLen = 256

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	router    routing.Router
	directory *buildings.Directory
	stats     StatsResponse
}

// NewHandlers creates handlers with the given router.
func NewHandlers(router routing.Router, directory *buildings.Directory, stats StatsResponse) *Handlers {
	return &Handlers{
		router:    router,
		directory: directory,
		stats:     stats,
	}
}

// HandleRoute handles POST /api/v1/route.
func (h *Handlers) HandleRoute(w http.ResponseWriter, r *http.Request) {
	// Enforce Content-Type.
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		h.routeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}

	// Parse request.
	var req RouteRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1024)).Decode(&req); err != nil {
		h.routeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}

	// Validate queries.
	if err := validateQuery(req.Start); err != nil {
		h.routeError(w, http.StatusBadRequest, "invalid_request", "start")
		return
	}
	if err := validateQuery(req.Destination); err != nil {
		h.routeError(w, http.StatusBadRequest, "invalid_request", "destination")
		return
	}

	// Route.
	start := time.Now()
	result, err := h.router.Route(r.Context(), req.Start, req.Destination)
	RouteDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		switch {
		case errors.Is(err, routing.ErrStartNotFound):
			h.routeError(w, http.StatusNotFound, "start_not_found", "start")
		case errors.Is(err, routing.ErrDestinationNotFound):
			h.routeError(w, http.StatusNotFound, "destination_not_found", "destination")
		case errors.Is(err, routing.ErrPointTooFar):
			h.routeError(w, http.StatusUnprocessableEntity, "point_too_far_from_footway", "")
		case errors.Is(err, routing.ErrNoRoute):
			h.routeError(w, http.StatusNotFound, "no_route_found", "")
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			h.routeError(w, http.StatusServiceUnavailable, "request_timeout", "")
		default:
			h.routeError(w, http.StatusInternalServerError, "internal_error", "")
		}
		return
	}

	RouteSettledVertices.Observe(float64(result.Settled))
	RouteRequestsTotal.WithLabelValues("ok").Inc()

	// Build response.
	p := result.Plan
	resp := RouteResponse{
		Start:               buildingJSON(p.Start),
		Destination:         buildingJSON(p.Destination),
		StartNode:           nodeJSON(p.StartNode),
		DestinationNode:     nodeJSON(p.DestNode),
		TotalDistanceMeters: result.TotalDistanceMeters,
		TotalDistanceMiles:  result.TotalDistanceMiles,
		Path:                make([]int64, len(result.Path)),
		Geometry:            make([]LatLngJSON, len(result.Geometry)),
	}
	for i, id := range result.Path {
		resp.Path[i] = int64(id)
	}
	for i, ll := range result.Geometry {
		resp.Geometry[i] = LatLngJSON{Lat: ll.Lat, Lng: ll.Lng}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleHealth handles GET /api/v1/health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
}

// HandleStats handles GET /api/v1/stats.
func (h *Handlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.stats)
}

// HandleBuildings handles GET /api/v1/buildings.
func (h *Handlers) HandleBuildings(w http.ResponseWriter, r *http.Request) {
	all := h.directory.All()
	resp := BuildingsResponse{Buildings: make([]BuildingJSON, len(all))}
	for i, b := range all {
		resp.Buildings[i] = buildingJSON(b)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func buildingJSON(b osmparser.Building) BuildingJSON {
	return BuildingJSON{
		Name:     b.Fullname,
		Abbrev:   b.Abbrev,
		Location: LatLngJSON{Lat: b.Lat, Lng: b.Lon},
	}
}

func nodeJSON(n routing.Node) NodeJSON {
	return NodeJSON{
		ID:             int64(n.ID),
		Location:       LatLngJSON{Lat: n.Lat, Lng: n.Lon},
		DistanceMeters: n.Dist,
	}
}

func validateQuery(q string) error {
	q = strings.TrimSpace(q)
	if q == "" {
		return errors.New("query must not be empty")
	}
	if len(q) > maxQueryLen {
		return errors.New("query too long")
	}
	return nil
}

// routeError writes an error response and counts it against the route metrics.
func (h *Handlers) routeError(w http.ResponseWriter, status int, code, field string) {
	RouteRequestsTotal.WithLabelValues(code).Inc()
	writeError(w, status, code, field)
}

func writeError(w http.ResponseWriter, status int, code, field string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: code, Field: field})
}
