package dashboard

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/Masterminds/sprig/v3"
	"github.com/de-tools/retail-dashboard/pkg/runtime/chart"
	"github.com/de-tools/retail-dashboard/pkg/services/dashboard"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Handler struct {
	loader *dashboard.Loader
	chart  *chart.Renderer
	page   *template.Template
}

func NewHandler(loader *dashboard.Loader, renderer *chart.Renderer) (*Handler, error) {
	page, err := template.New("index.html").
		Funcs(sprig.HtmlFuncMap()).
		ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, err
	}

	if renderer == nil {
		renderer = chart.NewRenderer(chart.DefaultConfig())
	}

	return &Handler{
		loader: loader,
		chart:  renderer,
		page:   page,
	}, nil
}

type indexData struct {
	Page           dashboard.Page
	Chart          template.HTML
	SaleSeries     string
	QuantitySeries string
}

// Index serves the dashboard page. Every request is a new display session.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	page := h.loader.NewSession().Page(ctx)

	var svg bytes.Buffer
	if err := h.chart.RenderSVG(&svg, page.Chart); err != nil {
		logger.Error().
			Err(err).
			Str("session_id", page.SessionID).
			Msg("failed to render chart")
		http.Error(w, "failed to render chart", http.StatusInternalServerError)
		return
	}

	var out bytes.Buffer
	err := h.page.Execute(&out, indexData{
		Page:           page,
		Chart:          template.HTML(svg.String()),
		SaleSeries:     dashboard.SaleSeriesName,
		QuantitySeries: dashboard.QuantitySeriesName,
	})
	if err != nil {
		logger.Error().
			Err(err).
			Str("session_id", page.SessionID).
			Msg("failed to render dashboard page")
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := out.WriteTo(w); err != nil {
		logger.Error().Err(err).Msg("failed to write dashboard page")
	}
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	page := h.loader.NewSession().Page(ctx)

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(toResponse(page))
	if err != nil {
		logger.Error().
			Err(err).
			Str("session_id", page.SessionID).
			Msg("failed to encode dashboard")
	}
}
