// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/hooplytics/hooplytics/internal/domain/view"
)

const (
	chartWidth  = 900
	chartHeight = 420

	minDotWidth = 4
	maxDotWidth = 16
)

var (
	barColor      = drawing.ColorFromHex("667eea")
	championColor = drawing.ColorFromHex("a78bfa")
	leagueColor   = drawing.ColorFromHex("667eea")
)

// ChartsHandler renders dashboard views as PNG images.
type ChartsHandler struct {
	deps Dependencies
}

// NewChartsHandler creates a new charts handler.
func NewChartsHandler(deps Dependencies) *ChartsHandler {
	return &ChartsHandler{deps: deps}
}

// HandleGetChart handles GET /api/charts/{top,scatter,evolution}.png
// requests. Filter parameters match the dataset route; evolution ignores
// them.
func (h *ChartsHandler) HandleGetChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/api/charts/")
	switch name {
	case "top.png":
		h.renderTop(w, r)
	case "scatter.png":
		h.renderScatter(w, r)
	case "evolution.png":
		h.renderEvolution(w, r)
	default:
		writeError(w, http.StatusNotFound, "not_found", ErrUnknownChart)
	}
}

func (h *ChartsHandler) renderTop(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	records, err := h.deps.TopThrees(r.Context(), f, view.DefaultTopLimit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if len(records) == 0 {
		renderEmptyState(w, "3PT Made Per Game")
		return
	}

	bars := make([]chart.Value, 0, len(records))
	for _, rec := range records {
		color := barColor
		if rec.IsChampion {
			color = championColor
		}
		bars = append(bars, chart.Value{
			Value: rec.ThreesPerGame,
			Label: shortLabel(rec.TeamName),
			Style: chart.Style{FillColor: color, StrokeColor: color},
		})
	}

	bc := chart.BarChart{
		Title:      "3PT Made Per Game",
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   56,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Bars:       bars,
	}
	writePNG(w, func() error { return bc.Render(chart.PNG, w) })
}

func (h *ChartsHandler) renderScatter(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	records, err := h.deps.Records(r.Context(), f)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if len(records) == 0 {
		renderEmptyState(w, "3PT % vs Attempts Per Game")
		return
	}

	xs := make([]float64, len(records))
	ys := make([]float64, len(records))
	wins := make([]float64, len(records))
	minWins, maxWins := float64(records[0].Wins), float64(records[0].Wins)
	for i, rec := range records {
		xs[i] = rec.AttemptsPerGame
		ys[i] = rec.ThreePct
		wins[i] = float64(rec.Wins)
		if wins[i] < minWins {
			minWins = wins[i]
		}
		if wins[i] > maxWins {
			maxWins = wins[i]
		}
	}

	// Dot area tracks wins so strong teams stand out.
	dotWidth := func(_, _ chart.Range, index int, _, _ float64) float64 {
		if maxWins == minWins {
			return minDotWidth
		}
		scale := (wins[index] - minWins) / (maxWins - minWins)
		return minDotWidth + scale*(maxDotWidth-minDotWidth)
	}

	sc := chart.Chart{
		Title:      "3PT % vs Attempts Per Game",
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "3PT Attempts / Game"},
		YAxis:      chart.YAxis{Name: "3PT %"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Teams",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth:      0,
					DotColor:         barColor,
					DotWidthProvider: dotWidth,
				},
			},
		},
	}
	writePNG(w, func() error { return sc.Render(chart.PNG, w) })
}

func (h *ChartsHandler) renderEvolution(w http.ResponseWriter, r *http.Request) {
	points, err := h.deps.Evolution(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if len(points) == 0 {
		renderEmptyState(w, "3PT Attempts Per Game Over Time")
		return
	}

	leagueXs := make([]float64, len(points))
	leagueYs := make([]float64, len(points))
	ticks := make([]chart.Tick, len(points))
	var champXs, champYs []float64
	for i, p := range points {
		x := float64(i)
		leagueXs[i] = x
		leagueYs[i] = p.LeagueAvgAttempts
		ticks[i] = chart.Tick{Value: x, Label: p.Season}
		if p.ChampionAttempts != nil {
			champXs = append(champXs, x)
			champYs = append(champYs, *p.ChampionAttempts)
		}
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "League Average",
			XValues: leagueXs,
			YValues: leagueYs,
			Style:   chart.Style{StrokeColor: leagueColor, StrokeWidth: 3},
		},
	}
	if len(champXs) > 0 {
		series = append(series, chart.ContinuousSeries{
			Name:    "Champion",
			XValues: champXs,
			YValues: champYs,
			Style:   chart.Style{StrokeColor: championColor, StrokeWidth: 3, StrokeDashArray: []float64{5, 5}},
		})
	}

	ec := chart.Chart{
		Title:      "3PT Attempts Per Game Over Time",
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 24}},
		XAxis:      chart.XAxis{Ticks: ticks},
		YAxis:      chart.YAxis{Name: "Attempts / Game"},
		Series:     series,
	}
	ec.Elements = []chart.Renderable{chart.Legend(&ec)}
	writePNG(w, func() error { return ec.Render(chart.PNG, w) })
}

// renderEmptyState draws a titled frame with no visible data, so an image
// element pointed at a chart route still resolves when the active filter
// leaves nothing to plot.
func renderEmptyState(w http.ResponseWriter, title string) {
	ec := chart.Chart{
		Title:      title + " — no data for this filter",
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Style: chart.Hidden()},
		YAxis:      chart.YAxis{Style: chart.Hidden()},
		Series: []chart.Series{
			// Renderers need at least one series; keep it invisible.
			chart.ContinuousSeries{
				XValues: []float64{0, 1},
				YValues: []float64{0, 0},
				Style: chart.Style{
					StrokeColor: drawing.ColorTransparent,
					DotColor:    drawing.ColorTransparent,
				},
			},
		},
	}
	writePNG(w, func() error { return ec.Render(chart.PNG, w) })
}

// writePNG sets the content type before rendering; render errors after the
// header is out can only be logged by the caller's middleware status.
func writePNG(w http.ResponseWriter, render func() error) {
	w.Header().Set("Content-Type", "image/png")
	if err := render(); err != nil {
		// Headers already sent; nothing more to do.
		return
	}
}

// shortLabel compresses a full team name to fit under a bar.
func shortLabel(team string) string {
	const maxLabel = 12
	if len(team) <= maxLabel {
		return team
	}
	words := strings.Fields(team)
	if len(words) == 0 {
		return team
	}
	return words[len(words)-1]
}
