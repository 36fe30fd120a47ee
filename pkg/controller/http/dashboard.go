package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/interfaces"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

// maxUpdateBody bounds the size of an update request body
const maxUpdateBody = 64 << 10

// DashboardHandler serves the dashboard API
type DashboardHandler struct {
	dashboard interfaces.Dashboard
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard interfaces.Dashboard) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// UpdateRequest is the body of POST /api/update
type UpdateRequest struct {
	Changed []types.ControlID `json:"changed"`
	State   model.Selection   `json:"state"`
}

// UpdateResponse holds the figures replacing the chart contents
type UpdateResponse struct {
	Outputs map[types.OutputID]model.Figure `json:"outputs"`
}

// HandleLayout returns the declarative page layout
func (h *DashboardHandler) HandleLayout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.dashboard.Layout(r.Context()))
}

// HandleUpdate recomputes the charts bound to the changed controls
func (h *DashboardHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUpdateBody)).Decode(&req); err != nil {
		writeError(w, r, goerr.Wrap(model.ErrInvalidSelection, "malformed update request",
			goerr.V("cause", err.Error())))
		return
	}

	outputs, err := h.dashboard.Update(r.Context(), req.Changed, req.State)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, &UpdateResponse{Outputs: outputs})
}

// HandleDataset returns a summary of the loaded dataset
func (h *DashboardHandler) HandleDataset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.dashboard.Dataset(r.Context()))
}

// HandleExport downloads the launches of the scatter selection as xlsx. Missing
// query parameters default to the initial selection.
func (h *DashboardHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	sel, err := h.selectionFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	data, err := h.dashboard.Export(r.Context(), sel)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="launches.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *DashboardHandler) selectionFromQuery(r *http.Request) (model.Selection, error) {
	summary := h.dashboard.Dataset(r.Context())
	sel := model.Selection{
		Site:         types.AllSites,
		PayloadRange: model.ClampToSlider(summary.MinPayload, summary.MaxPayload),
	}

	q := r.URL.Query()
	if site := q.Get("site"); site != "" {
		sel.Site = types.SiteID(site)
	}
	for i, key := range []string{"low", "high"} {
		v := q.Get(key)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return sel, goerr.Wrap(model.ErrInvalidSelection, "payload bound is not a number",
				goerr.V(key, v))
		}
		sel.PayloadRange[i] = f
	}
	return sel, nil
}
