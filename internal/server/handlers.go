package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// point is a [row, col] pair on the wire.
type point = [2]int

// SearchRequest is the body of POST /v1/search. Start and End override
// the map's S and E cells; when omitted, the map must contain both.
type SearchRequest struct {
	Grid  string `json:"grid"`
	Start *point `json:"start,omitempty"`
	End   *point `json:"end,omitempty"`
}

// SearchResponse reports one search. Grid is the map with the search's
// Open, Closed and Path marks applied.
type SearchResponse struct {
	ID       string  `json:"id"`
	Found    bool    `json:"found"`
	Cost     int     `json:"cost"`
	Path     []point `json:"path"`
	Expanded int     `json:"expanded"`
	Grid     string  `json:"grid"`
}

// ErrorResponse is returned with every 4xx/5xx status.
type ErrorResponse struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	id := requestIDFrom(r.Context())

	var req SearchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.fail(w, id, http.StatusBadRequest, fmt.Errorf("decode body: %w", err))
		return
	}

	g, start, end, err := s.prepare(req)
	if err != nil {
		s.fail(w, id, http.StatusBadRequest, err)
		return
	}

	res, err := astar.Search(g, start, end, astar.WithContext(r.Context()))
	switch {
	case err == nil, errors.Is(err, astar.ErrNoPath):
		status := http.StatusOK
		if err != nil {
			status = http.StatusUnprocessableEntity
		}
		s.logger.Debug("search", "id", id, "size", g.Size(), "found", res.Found,
			"cost", res.Cost, "expanded", len(res.Expanded))
		writeJSON(w, status, SearchResponse{
			ID:       id,
			Found:    res.Found,
			Cost:     res.Cost,
			Path:     toPoints(res.Path),
			Expanded: len(res.Expanded),
			Grid:     g.Format(),
		})
	case errors.Is(err, astar.ErrInvalidEndpoint):
		s.fail(w, id, http.StatusBadRequest, err)
	case errors.Is(err, astar.ErrCancelled):
		s.fail(w, id, http.StatusServiceUnavailable, err)
	default:
		s.fail(w, id, http.StatusInternalServerError, err)
	}
}

// prepare parses the map, resolves the endpoints and computes adjacency.
func (s *Server) prepare(req SearchRequest) (*gridgraph.Grid, gridgraph.Position, gridgraph.Position, error) {
	var zero gridgraph.Position
	if strings.TrimSpace(req.Grid) == "" {
		return nil, zero, zero, errors.New("grid is empty")
	}
	g, err := gridgraph.ParseString(req.Grid)
	if err != nil {
		return nil, zero, zero, err
	}
	if g.Size() > s.cfg.MaxGridSize {
		return nil, zero, zero, fmt.Errorf("grid side %d exceeds limit %d", g.Size(), s.cfg.MaxGridSize)
	}

	starts, ends := g.Find(gridgraph.Start), g.Find(gridgraph.End)
	var start, end gridgraph.Position
	switch {
	case req.Start != nil:
		start = fromPoint(*req.Start)
	case len(starts) > 0:
		start = starts[0]
	default:
		return nil, zero, zero, errors.New("start not given and map has no S")
	}
	switch {
	case req.End != nil:
		end = fromPoint(*req.End)
	case len(ends) > 0:
		end = ends[0]
	default:
		return nil, zero, zero, errors.New("end not given and map has no E")
	}

	// Overridden endpoints take the Start/End marks so the returned map
	// shows them.
	if req.Start != nil || req.End != nil {
		for _, p := range append(starts, ends...) {
			g.At(p).Reset()
		}
		markEndpoint(g, start, gridgraph.Start)
		markEndpoint(g, end, gridgraph.End)
	}

	g.RecomputeAdjacency()
	return g, start, end, nil
}

// markEndpoint sets st on p when p is an in-bounds non-barrier cell.
// Invalid endpoints are left for the search to reject.
func markEndpoint(g *gridgraph.Grid, p gridgraph.Position, st gridgraph.State) {
	c, err := g.Cell(p)
	if err != nil || c.Is(gridgraph.Barrier) {
		return
	}
	c.SetState(st)
}

func (s *Server) fail(w http.ResponseWriter, id string, status int, err error) {
	s.logger.Warn("search failed", "id", id, "status", status, "err", err)
	writeJSON(w, status, ErrorResponse{ID: id, Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func toPoints(ps []gridgraph.Position) []point {
	out := make([]point, len(ps))
	for i, p := range ps {
		out[i] = point{p.Row, p.Col}
	}
	return out
}

func fromPoint(p point) gridgraph.Position {
	return gridgraph.Position{Row: p[0], Col: p[1]}
}
