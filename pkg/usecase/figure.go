package usecase

import (
	"github.com/secmon-lab/launchdash/pkg/domain/model"
)

// PieFigure renders a success pie series as a plotly figure. Slices keep the
// series order because plotly's own value sorting is disabled.
func PieFigure(series model.PieSeries) model.Figure {
	trace := model.Trace{
		Type:   "pie",
		Labels: make([]string, 0, len(series.Slices)),
		Values: make([]int, 0, len(series.Slices)),
		Sort:   boolPtr(false),
	}

	var colors []string
	for _, s := range series.Slices {
		trace.Labels = append(trace.Labels, s.Label)
		trace.Values = append(trace.Values, s.Value)
		if s.Color != "" {
			colors = append(colors, s.Color)
		}
	}
	if len(colors) > 0 && len(colors) == len(series.Slices) {
		trace.Marker = &model.Marker{Colors: colors}
	}

	fig := model.Figure{
		Data:   []model.Trace{trace},
		Layout: model.FigureLayout{Title: model.Text{Text: series.Title}},
	}
	if series.Legend != "" {
		fig.Layout.Legend = &model.Legend{Title: model.Text{Text: series.Legend}}
	}
	return fig
}

// ScatterFigure renders scatter points as a plotly figure with one marker trace
// per booster version category
func ScatterFigure(series model.ScatterSeries) model.Figure {
	categories := series.Categories()
	traces := make([]model.Trace, len(categories))
	pos := make(map[string]int, len(categories))
	for i, c := range categories {
		pos[c] = i
		traces[i] = model.Trace{
			Type: "scatter",
			Name: c,
			Mode: "markers",
			X:    []float64{},
			Y:    []int{},
		}
	}

	for _, p := range series.Points {
		t := &traces[pos[p.BoosterVersionCategory]]
		t.X = append(t.X, p.PayloadMass)
		t.Y = append(t.Y, int(p.Class))
	}

	return model.Figure{
		Data: traces,
		Layout: model.FigureLayout{
			Title:  model.Text{Text: series.Title},
			XAxis:  &model.Axis{Title: model.Text{Text: "Payload Mass (kg)"}},
			YAxis:  &model.Axis{Title: model.Text{Text: "class"}},
			Legend: &model.Legend{Title: model.Text{Text: "Booster Version Category"}},
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}
