package usecase

import (
	"fmt"

	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

// outcomeOrder is the presentation order of the per-site pie
var outcomeOrder = []types.OutcomeClass{types.OutcomeSuccess, types.OutcomeFailure}

var outcomeColors = map[types.OutcomeClass]string{
	types.OutcomeSuccess: model.ColorSuccess,
	types.OutcomeFailure: model.ColorFailure,
}

// ComputeSuccessSeries returns the success pie for the selected site.
//
// For the ALL sentinel the pie counts successful launches per site, in order of
// each site's first successful launch. For a concrete site it counts that site's
// launches per outcome, success before failure. Only failures are excluded from
// the ALL view; this asymmetry is intended.
func ComputeSuccessSeries(ds *model.Dataset, site types.SiteID) model.PieSeries {
	if site.IsAll() {
		return successBySite(ds)
	}
	return outcomesForSite(ds, site)
}

func successBySite(ds *model.Dataset) model.PieSeries {
	series := model.PieSeries{
		Title:  "Total Successful Launches by Site",
		Slices: []model.PieSlice{},
	}

	pos := make(map[types.SiteID]int)
	for _, r := range ds.Records() {
		if r.Class != types.OutcomeSuccess {
			continue
		}
		i, ok := pos[r.LaunchSite]
		if !ok {
			i = len(series.Slices)
			pos[r.LaunchSite] = i
			series.Slices = append(series.Slices, model.PieSlice{Label: r.LaunchSite.String()})
		}
		series.Slices[i].Value++
	}

	return series
}

func outcomesForSite(ds *model.Dataset, site types.SiteID) model.PieSeries {
	series := model.PieSeries{
		Title:  fmt.Sprintf("Success vs. Failed Launches for %s", site),
		Legend: "Outcome",
		Slices: []model.PieSlice{},
	}

	counts := make(map[types.OutcomeClass]int)
	for _, r := range ds.Records() {
		if r.LaunchSite == site {
			counts[r.Class]++
		}
	}

	for _, class := range outcomeOrder {
		if n := counts[class]; n > 0 {
			series.Slices = append(series.Slices, model.PieSlice{
				Label: class.String(),
				Value: n,
				Color: outcomeColors[class],
			})
		}
	}

	return series
}

// ComputeScatterPoints returns the launches of the selected site whose payload
// mass lies within rng, both ends inclusive, in dataset order. rng is assumed
// to satisfy Low <= High; an inverted range selects nothing.
func ComputeScatterPoints(ds *model.Dataset, site types.SiteID, rng model.PayloadRange) model.ScatterSeries {
	series := model.ScatterSeries{
		Title:  "Correlation between Payload and Success for All Sites",
		Points: []model.ScatterPoint{},
	}
	if !site.IsAll() {
		series.Title = fmt.Sprintf("Correlation between Payload and Success for %s", site)
	}

	for _, r := range ds.Records() {
		if !rng.Contains(r.PayloadMass) {
			continue
		}
		if !site.IsAll() && r.LaunchSite != site {
			continue
		}
		series.Points = append(series.Points, model.ScatterPoint{
			FlightNumber:           r.FlightNumber,
			LaunchSite:             r.LaunchSite,
			PayloadMass:            r.PayloadMass,
			Class:                  r.Class,
			BoosterVersionCategory: r.BoosterVersionCategory,
		})
	}

	return series
}
