package usecase_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
	"github.com/secmon-lab/launchdash/pkg/usecase"
)

func TestPieFigure(t *testing.T) {
	t.Run("All sites pie keeps order and has no colors", func(t *testing.T) {
		ds := launchDataset(t)

		fig := usecase.PieFigure(usecase.ComputeSuccessSeries(ds, types.AllSites))

		gt.Equal(t, len(fig.Data), 1)
		trace := fig.Data[0]
		gt.Equal(t, trace.Type, "pie")
		if diff := cmp.Diff([]string{"CCAFS LC-40", "VAFB SLC-4E", "KSC LC-39A", "CCAFS SLC-40"}, trace.Labels); diff != "" {
			t.Errorf("labels mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]int{2, 1, 3, 2}, trace.Values); diff != "" {
			t.Errorf("values mismatch (-want +got):\n%s", diff)
		}
		gt.V(t, trace.Sort).NotNil()
		gt.False(t, *trace.Sort)
		gt.Nil(t, trace.Marker)
		gt.Nil(t, fig.Layout.Legend)
		gt.Equal(t, fig.Layout.Title.Text, "Total Successful Launches by Site")
	})

	t.Run("Site pie carries outcome colors", func(t *testing.T) {
		ds := launchDataset(t)

		fig := usecase.PieFigure(usecase.ComputeSuccessSeries(ds, "KSC LC-39A"))

		trace := fig.Data[0]
		if diff := cmp.Diff([]string{"1", "0"}, trace.Labels); diff != "" {
			t.Errorf("labels mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]int{3, 1}, trace.Values); diff != "" {
			t.Errorf("values mismatch (-want +got):\n%s", diff)
		}
		gt.V(t, trace.Marker).NotNil()
		if diff := cmp.Diff([]string{"green", "red"}, trace.Marker.Colors); diff != "" {
			t.Errorf("colors mismatch (-want +got):\n%s", diff)
		}
		gt.V(t, fig.Layout.Legend).NotNil()
		gt.Equal(t, fig.Layout.Legend.Title.Text, "Outcome")
	})
}

func TestScatterFigure(t *testing.T) {
	t.Run("One trace per booster category", func(t *testing.T) {
		ds := launchDataset(t)

		fig := usecase.ScatterFigure(usecase.ComputeScatterPoints(ds, types.AllSites, model.PayloadRange{0, 10000}))

		names := make([]string, 0, len(fig.Data))
		total := 0
		for _, trace := range fig.Data {
			names = append(names, trace.Name)
			gt.Equal(t, trace.Type, "scatter")
			gt.Equal(t, trace.Mode, "markers")
			gt.Equal(t, len(trace.X), len(trace.Y))
			total += len(trace.X)
		}
		if diff := cmp.Diff([]string{"v1.0", "v1.1", "FT", "B4", "B5"}, names); diff != "" {
			t.Errorf("trace names mismatch (-want +got):\n%s", diff)
		}
		gt.Equal(t, total, ds.Len())
		gt.Equal(t, fig.Layout.XAxis.Title.Text, "Payload Mass (kg)")
		gt.Equal(t, fig.Layout.YAxis.Title.Text, "class")
		gt.Equal(t, fig.Layout.Legend.Title.Text, "Booster Version Category")
	})

	t.Run("Points land in their category trace", func(t *testing.T) {
		ds := scenarioDataset(t)

		fig := usecase.ScatterFigure(usecase.ComputeScatterPoints(ds, "siteA", model.PayloadRange{0, 10000}))

		gt.Equal(t, len(fig.Data), 2)
		gt.Equal(t, fig.Data[0].Name, "v1.0")
		if diff := cmp.Diff([]float64{500}, fig.Data[0].X); diff != "" {
			t.Errorf("x mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]int{1}, fig.Data[0].Y); diff != "" {
			t.Errorf("y mismatch (-want +got):\n%s", diff)
		}
		gt.Equal(t, fig.Data[1].Name, "v1.1")
		if diff := cmp.Diff([]int{0}, fig.Data[1].Y); diff != "" {
			t.Errorf("y mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Empty selection has no traces", func(t *testing.T) {
		ds := scenarioDataset(t)

		fig := usecase.ScatterFigure(usecase.ComputeScatterPoints(ds, "nowhere", model.PayloadRange{0, 10000}))

		gt.Equal(t, len(fig.Data), 0)
		gt.Equal(t, fig.Layout.Title.Text, "Correlation between Payload and Success for nowhere")
	})
}
