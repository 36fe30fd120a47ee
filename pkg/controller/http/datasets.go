package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/interfaces"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

const (
	defaultDatasetListLimit = 20
	maxDatasetListLimit     = 100
)

// DatasetsHandler serves the stored dataset snapshots
type DatasetsHandler struct {
	repo interfaces.Repository
}

// NewDatasetsHandler creates a new snapshot handler
func NewDatasetsHandler(repo interfaces.Repository) *DatasetsHandler {
	return &DatasetsHandler{repo: repo}
}

// DatasetListResponse is the body of GET /api/datasets
type DatasetListResponse struct {
	Datasets []*model.DatasetSummary `json:"datasets"`
}

// HandleList lists stored snapshots, newest first
func (h *DatasetsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := defaultDatasetListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxDatasetListLimit {
			writeError(w, r, goerr.Wrap(model.ErrInvalidQuery, "limit must be between 1 and 100",
				goerr.V("limit", v)))
			return
		}
		limit = n
	}

	summaries, err := h.repo.ListDatasets(r.Context(), limit)
	if err != nil {
		writeError(w, r, goerr.Wrap(err, "failed to list datasets"))
		return
	}
	if summaries == nil {
		summaries = []*model.DatasetSummary{}
	}

	writeJSON(w, r, http.StatusOK, &DatasetListResponse{Datasets: summaries})
}

// HandleGet returns the summary of one stored snapshot
func (h *DatasetsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := types.DatasetID(chi.URLParam(r, "datasetID"))

	ds, err := h.repo.GetDataset(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, ds.Summary())
}
