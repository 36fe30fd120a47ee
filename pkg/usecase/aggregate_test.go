package usecase_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
	"github.com/secmon-lab/launchdash/pkg/usecase"
)

func TestComputeSuccessSeries(t *testing.T) {
	t.Run("All sites counts successes per site", func(t *testing.T) {
		ds := scenarioDataset(t)

		series := usecase.ComputeSuccessSeries(ds, types.AllSites)

		want := []model.PieSlice{
			{Label: "siteA", Value: 1},
			{Label: "siteB", Value: 1},
		}
		if diff := cmp.Diff(want, series.Slices); diff != "" {
			t.Errorf("slices mismatch (-want +got):\n%s", diff)
		}
		gt.Equal(t, series.Title, "Total Successful Launches by Site")
	})

	t.Run("Specific site shows success before failure", func(t *testing.T) {
		ds := scenarioDataset(t)

		series := usecase.ComputeSuccessSeries(ds, "siteA")

		want := []model.PieSlice{
			{Label: "1", Value: 1, Color: model.ColorSuccess},
			{Label: "0", Value: 1, Color: model.ColorFailure},
		}
		if diff := cmp.Diff(want, series.Slices); diff != "" {
			t.Errorf("slices mismatch (-want +got):\n%s", diff)
		}
		gt.Equal(t, series.Title, "Success vs. Failed Launches for siteA")
		gt.Equal(t, series.Legend, "Outcome")
	})

	t.Run("Order follows first success not first launch", func(t *testing.T) {
		ds := newDataset(t,
			rec("siteA", 100, types.OutcomeFailure, "x"),
			rec("siteB", 100, types.OutcomeSuccess, "x"),
			rec("siteA", 100, types.OutcomeSuccess, "x"),
			rec("siteB", 100, types.OutcomeSuccess, "x"),
		)

		series := usecase.ComputeSuccessSeries(ds, types.AllSites)

		gt.Equal(t, len(series.Slices), 2)
		gt.Equal(t, series.Slices[0], model.PieSlice{Label: "siteB", Value: 2})
		gt.Equal(t, series.Slices[1], model.PieSlice{Label: "siteA", Value: 1})
	})

	t.Run("Site with only failures has a single red slice", func(t *testing.T) {
		ds := newDataset(t, rec("siteA", 1, types.OutcomeFailure, "x"))

		series := usecase.ComputeSuccessSeries(ds, "siteA")

		gt.Equal(t, len(series.Slices), 1)
		gt.Equal(t, series.Slices[0].Label, "0")
		gt.Equal(t, series.Slices[0].Color, model.ColorFailure)
	})

	t.Run("Unknown site yields an empty series", func(t *testing.T) {
		ds := launchDataset(t)

		series := usecase.ComputeSuccessSeries(ds, "nowhere")

		gt.NotNil(t, series.Slices)
		gt.Equal(t, len(series.Slices), 0)
	})

	t.Run("No global success yields an empty series", func(t *testing.T) {
		ds := newDataset(t,
			rec("siteA", 1, types.OutcomeFailure, "x"),
			rec("siteB", 2, types.OutcomeFailure, "x"),
		)

		series := usecase.ComputeSuccessSeries(ds, types.AllSites)

		gt.Equal(t, len(series.Slices), 0)
		gt.Equal(t, series.Total(), 0)
	})

	t.Run("All sites total equals number of successes", func(t *testing.T) {
		ds := launchDataset(t)

		successes := 0
		for _, r := range ds.Records() {
			if r.Class == types.OutcomeSuccess {
				successes++
			}
		}

		series := usecase.ComputeSuccessSeries(ds, types.AllSites)
		gt.Equal(t, series.Total(), successes)
	})

	t.Run("Site total equals number of site launches", func(t *testing.T) {
		ds := launchDataset(t)

		for _, site := range ds.Sites() {
			launches := 0
			for _, r := range ds.Records() {
				if r.LaunchSite == site {
					launches++
				}
			}

			series := usecase.ComputeSuccessSeries(ds, site)
			gt.Equal(t, series.Total(), launches)
		}
	})

	t.Run("Repeated calls give identical series", func(t *testing.T) {
		ds := launchDataset(t)

		for _, site := range append([]types.SiteID{types.AllSites}, ds.Sites()...) {
			first := usecase.ComputeSuccessSeries(ds, site)
			second := usecase.ComputeSuccessSeries(ds, site)
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("series for %s differ:\n%s", site, diff)
			}
		}
	})
}

func TestComputeScatterPoints(t *testing.T) {
	t.Run("All sites filters by payload only", func(t *testing.T) {
		ds := scenarioDataset(t)

		series := usecase.ComputeScatterPoints(ds, types.AllSites, model.PayloadRange{0, 1000})

		want := []model.ScatterPoint{
			{LaunchSite: "siteA", PayloadMass: 500, Class: types.OutcomeSuccess, BoosterVersionCategory: "v1.0"},
		}
		if diff := cmp.Diff(want, series.Points); diff != "" {
			t.Errorf("points mismatch (-want +got):\n%s", diff)
		}
		gt.Equal(t, series.Title, "Correlation between Payload and Success for All Sites")
	})

	t.Run("Range bounds are inclusive", func(t *testing.T) {
		ds := scenarioDataset(t)

		series := usecase.ComputeScatterPoints(ds, types.AllSites, model.PayloadRange{500, 2000})

		gt.Equal(t, len(series.Points), 3)
		gt.Equal(t, series.Points[0].PayloadMass, 500.0)
		gt.Equal(t, series.Points[2].PayloadMass, 2000.0)
	})

	t.Run("Specific site applies both predicates", func(t *testing.T) {
		ds := scenarioDataset(t)

		series := usecase.ComputeScatterPoints(ds, "siteA", model.PayloadRange{0, 10000})

		gt.Equal(t, len(series.Points), 2)
		for _, p := range series.Points {
			gt.Equal(t, p.LaunchSite, types.SiteID("siteA"))
		}
		gt.Equal(t, series.Title, "Correlation between Payload and Success for siteA")
	})

	t.Run("Zero width range at zero keeps only zero payloads", func(t *testing.T) {
		ds := launchDataset(t)

		series := usecase.ComputeScatterPoints(ds, types.AllSites, model.PayloadRange{0, 0})

		gt.Equal(t, len(series.Points), 2)
		for _, p := range series.Points {
			gt.Equal(t, p.PayloadMass, 0.0)
		}
	})

	t.Run("Zero width range without matches is empty", func(t *testing.T) {
		ds := scenarioDataset(t)

		series := usecase.ComputeScatterPoints(ds, types.AllSites, model.PayloadRange{0, 0})

		gt.NotNil(t, series.Points)
		gt.Equal(t, len(series.Points), 0)
	})

	t.Run("Inverted range selects nothing", func(t *testing.T) {
		ds := launchDataset(t)

		series := usecase.ComputeScatterPoints(ds, types.AllSites, model.PayloadRange{5000, 1000})

		gt.Equal(t, len(series.Points), 0)
	})

	t.Run("Every point satisfies the predicates", func(t *testing.T) {
		ds := launchDataset(t)
		ranges := []model.PayloadRange{{0, 10000}, {0, 2500}, {2500, 5000}, {3325, 3325}, {5000, 10000}}

		for _, site := range append([]types.SiteID{types.AllSites}, ds.Sites()...) {
			for _, rng := range ranges {
				series := usecase.ComputeScatterPoints(ds, site, rng)
				for _, p := range series.Points {
					gt.True(t, p.PayloadMass >= rng.Low() && p.PayloadMass <= rng.High())
					if !site.IsAll() {
						gt.Equal(t, p.LaunchSite, site)
					}
				}
			}
		}
	})

	t.Run("Points keep dataset order", func(t *testing.T) {
		ds := launchDataset(t)

		series := usecase.ComputeScatterPoints(ds, types.AllSites, model.PayloadRange{0, 10000})

		gt.Equal(t, len(series.Points), ds.Len())
		for i, r := range ds.Records() {
			gt.Equal(t, series.Points[i].PayloadMass, r.PayloadMass)
			gt.Equal(t, series.Points[i].LaunchSite, r.LaunchSite)
		}
	})

	t.Run("Repeated calls give identical points", func(t *testing.T) {
		ds := launchDataset(t)
		rng := model.PayloadRange{1000, 6000}

		first := usecase.ComputeScatterPoints(ds, "KSC LC-39A", rng)
		second := usecase.ComputeScatterPoints(ds, "KSC LC-39A", rng)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("points differ:\n%s", diff)
		}
	})
}
