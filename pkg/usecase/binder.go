package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

// Handler computes the figure of one output from the current selection
type Handler func(ds *model.Dataset, sel model.Selection) model.Figure

// Edge binds the input controls that trigger a handler to the output it replaces
type Edge struct {
	Inputs  []types.ControlID
	Output  types.OutputID
	Handler Handler
}

// triggeredBy reports whether any of the changed controls is an input of the edge
func (e *Edge) triggeredBy(changed map[types.ControlID]bool) bool {
	for _, in := range e.Inputs {
		if changed[in] {
			return true
		}
	}
	return false
}

// DashboardEdges returns the two reactive edges of the launch dashboard
func DashboardEdges() []Edge {
	return []Edge{
		{
			Inputs: []types.ControlID{types.ControlSiteDropdown},
			Output: types.OutputSuccessPie,
			Handler: func(ds *model.Dataset, sel model.Selection) model.Figure {
				return PieFigure(ComputeSuccessSeries(ds, sel.Site))
			},
		},
		{
			Inputs: []types.ControlID{types.ControlSiteDropdown, types.ControlPayloadSlider},
			Output: types.OutputPayloadScatter,
			Handler: func(ds *model.Dataset, sel model.Selection) model.Figure {
				return ScatterFigure(ComputeScatterPoints(ds, sel.Site, sel.PayloadRange))
			},
		},
	}
}

// Binder is the dispatch table routing control changes to chart outputs
type Binder struct {
	dataset  *model.Dataset
	edges    []Edge
	controls map[types.ControlID]bool
}

// NewBinder creates a binder over an immutable dataset
func NewBinder(ds *model.Dataset, edges []Edge) *Binder {
	controls := make(map[types.ControlID]bool)
	for _, e := range edges {
		for _, in := range e.Inputs {
			controls[in] = true
		}
	}

	return &Binder{
		dataset:  ds,
		edges:    edges,
		controls: controls,
	}
}

// Dispatch runs every edge with an input among changed and returns the new
// figures keyed by output. An empty changed set runs all edges, which is how
// the initial render is produced.
func (b *Binder) Dispatch(ctx context.Context, changed []types.ControlID, sel model.Selection) (map[types.OutputID]model.Figure, error) {
	set := make(map[types.ControlID]bool, len(changed))
	for _, c := range changed {
		if !b.controls[c] {
			return nil, goerr.Wrap(model.ErrUnknownControl, "control is not bound to any output",
				goerr.V("control", c))
		}
		set[c] = true
	}

	outputs := make(map[types.OutputID]model.Figure)
	for i := range b.edges {
		e := &b.edges[i]
		if len(set) > 0 && !e.triggeredBy(set) {
			continue
		}
		outputs[e.Output] = e.Handler(b.dataset, sel)
	}

	ctxlog.From(ctx).Debug("Dispatched control change",
		"changed", changed,
		"site", sel.Site,
		"payload_range", sel.PayloadRange,
		"outputs", len(outputs),
	)
	return outputs, nil
}
