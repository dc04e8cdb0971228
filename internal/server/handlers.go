package server

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ChicagoDave/solaris/pkg/atlas"
	"github.com/ChicagoDave/solaris/pkg/geo"
	"github.com/ChicagoDave/solaris/pkg/mapview"
	"github.com/ChicagoDave/solaris/pkg/render"
	"github.com/ChicagoDave/solaris/pkg/validation"
	"github.com/ChicagoDave/solaris/pkg/viewport"
)

//go:embed static/index.html
var indexHTML []byte

const maxPNGSide = 4096

// regionInfo is the JSON view of one region.
type regionInfo struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Capital      string        `json:"capital"`
	Role         string        `json:"role"`
	Population   int           `json:"population"`
	Share        float64       `json:"share"`
	Bounds       geo.Rect      `json:"bounds"`
	Centroid     geo.Point2D   `json:"centroid"`
	Displacement geo.Point2D   `json:"displacement"`
	Panel        mapview.Panel `json:"panel"`
}

func newRegionInfo(a *atlas.Atlas, r *atlas.Region) regionInfo {
	return regionInfo{
		ID:           r.ID,
		Name:         r.Name,
		Capital:      r.Capital,
		Role:         r.Role,
		Population:   r.Population.Population,
		Share:        r.Population.Share,
		Bounds:       r.Bounds,
		Centroid:     r.Centroid,
		Displacement: r.Displacement,
		Panel:        mapview.Describe(a, viewport.Region(r.ID)),
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sel := viewport.ParseSelection(q.Get("selected"))
	g := mapview.Snapshot(s.atlas, sel)

	var buf bytes.Buffer
	opts := render.SVGOptions{
		Title:       s.atlas.Catalog().Name,
		Interactive: q.Get("interactive") != "",
	}
	if err := render.SVG(&buf, g, opts); err != nil {
		s.error(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(buf.Bytes())
}

func (s *Server) handlePNG(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	canvas := s.atlas.Canvas()
	width, ok := sizeParam(q.Get("width"), int(canvas.Width()))
	if !ok {
		http.Error(w, "invalid width", http.StatusBadRequest)
		return
	}
	height, ok := sizeParam(q.Get("height"), int(canvas.Height()))
	if !ok {
		http.Error(w, "invalid height", http.StatusBadRequest)
		return
	}

	g := mapview.Snapshot(s.atlas, viewport.ParseSelection(q.Get("selected")))
	var buf bytes.Buffer
	if err := render.PNG(&buf, g, width, height); err != nil {
		s.error(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func sizeParam(v string, def int) (int, bool) {
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 || n > maxPNGSide {
		return 0, false
	}
	return n, true
}

func (s *Server) handleRegions(w http.ResponseWriter, _ *http.Request) {
	regions := s.atlas.Regions()
	out := make([]regionInfo, 0, len(regions))
	for _, r := range regions {
		out = append(out, newRegionInfo(s.atlas, r))
	}
	s.json(w, map[string]any{
		"name":             s.atlas.Catalog().Name,
		"total_population": s.atlas.Catalog().TotalPopulation,
		"capital":          s.atlas.Capital(),
		"regions":          out,
	})
}

func (s *Server) handleRegion(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	reg, ok := s.atlas.Region(id)
	if !ok {
		http.Error(w, "unknown region "+strconv.Quote(id), http.StatusNotFound)
		return
	}
	s.json(w, newRegionInfo(s.atlas, reg))
}

func (s *Server) handleGeoJSON(w http.ResponseWriter, _ *http.Request) {
	data, err := render.GeoJSON(s.atlas)
	if err != nil {
		s.error(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.Write(data)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	r := validation.NewReport()
	r.Merge(s.report)
	r.Merge(mapview.CheckFrames(s.atlas))
	s.json(w, r)
}

func (s *Server) json(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warnw("encoding response", "error", err)
	}
}

func (s *Server) error(w http.ResponseWriter, code int, err error) {
	s.log.Errorw("request failed", "status", code, "error", err)
	http.Error(w, err.Error(), code)
}
