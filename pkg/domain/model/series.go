package model

import "github.com/secmon-lab/launchdash/pkg/domain/types"

// Colors used by the per-site outcome pie
const (
	ColorSuccess = "green"
	ColorFailure = "red"
)

// PieSlice is one category of the success pie
type PieSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color,omitempty"`
}

// PieSeries is the render-ready input of the success pie chart
type PieSeries struct {
	Title  string     `json:"title"`
	Legend string     `json:"legend,omitempty"`
	Slices []PieSlice `json:"slices"`
}

// Total returns the sum of all slice values
func (s *PieSeries) Total() int {
	total := 0
	for _, slice := range s.Slices {
		total += slice.Value
	}
	return total
}

// ScatterPoint is one launch plotted on the payload/outcome chart
type ScatterPoint struct {
	FlightNumber           int                `json:"flight_number,omitempty"`
	LaunchSite             types.SiteID       `json:"launch_site"`
	PayloadMass            float64            `json:"payload_mass"`
	Class                  types.OutcomeClass `json:"class"`
	BoosterVersionCategory string             `json:"booster_version_category"`
}

// ScatterSeries is the render-ready input of the payload/outcome scatter chart
type ScatterSeries struct {
	Title  string         `json:"title"`
	Points []ScatterPoint `json:"points"`
}

// Categories returns the distinct booster version categories in order of first appearance
func (s *ScatterSeries) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range s.Points {
		if !seen[p.BoosterVersionCategory] {
			seen[p.BoosterVersionCategory] = true
			categories = append(categories, p.BoosterVersionCategory)
		}
	}
	return categories
}
