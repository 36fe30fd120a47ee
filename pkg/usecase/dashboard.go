package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

// Dashboard implements interfaces.Dashboard over one loaded dataset
type Dashboard struct {
	dataset *model.Dataset
	layout  *model.LayoutConfig
	binder  *Binder
}

// DashboardOption configures a Dashboard
type DashboardOption func(*Dashboard)

// WithLayoutConfig overrides the built-in title and site list
func WithLayoutConfig(cfg *model.LayoutConfig) DashboardOption {
	return func(d *Dashboard) {
		if cfg != nil {
			d.layout = cfg
		}
	}
}

// WithEdges replaces the reactive edges of the dashboard
func WithEdges(edges []Edge) DashboardOption {
	return func(d *Dashboard) {
		d.binder = NewBinder(d.dataset, edges)
	}
}

// NewDashboard creates a dashboard use case for ds
func NewDashboard(ds *model.Dataset, opts ...DashboardOption) (*Dashboard, error) {
	if ds == nil {
		return nil, goerr.New("dataset is nil")
	}

	d := &Dashboard{
		dataset: ds,
		layout:  model.DefaultLayoutConfig(),
		binder:  NewBinder(ds, DashboardEdges()),
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := d.layout.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid layout configuration")
	}
	return d, nil
}

// Layout returns the page description seeded with the dataset's payload bounds
func (d *Dashboard) Layout(ctx context.Context) *model.Layout {
	return d.layout.Build(model.DefaultSelection(d.dataset))
}

// Update recomputes the charts bound to the changed controls
func (d *Dashboard) Update(ctx context.Context, changed []types.ControlID, sel model.Selection) (map[types.OutputID]model.Figure, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	outputs, err := d.binder.Dispatch(ctx, changed, sel)
	if err != nil {
		return nil, err
	}
	return outputs, nil
}

// Dataset returns a summary of the loaded dataset
func (d *Dashboard) Dataset(ctx context.Context) model.DatasetSummary {
	return d.dataset.Summary()
}

// Export writes the launches matching the scatter selection to an xlsx workbook
func (d *Dashboard) Export(ctx context.Context, sel model.Selection) ([]byte, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	series := ComputeScatterPoints(d.dataset, sel.Site, sel.PayloadRange)
	data, err := WriteScatterXLSX(series)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to export launches",
			goerr.V("site", sel.Site),
			goerr.V("payload_range", sel.PayloadRange))
	}

	ctxlog.From(ctx).Info("Exported launches",
		"site", sel.Site,
		"payload_range", sel.PayloadRange,
		"rows", len(series.Points),
	)
	return data, nil
}
