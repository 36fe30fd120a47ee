package model

import (
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

const (
	DefaultDashboardTitle = "SpaceX Launch Records Dashboard"

	payloadSliderStep     = 1000.0
	payloadSliderMarkStep = 2500.0
)

// SiteOption is one launch site entry in the site dropdown
type SiteOption struct {
	Label string       `yaml:"label" json:"label"`
	Value types.SiteID `yaml:"value" json:"value"`
}

// Validate validates the site option
func (o *SiteOption) Validate() error {
	if o.Value == "" {
		return goerr.New("site value is required")
	}
	if o.Value.IsAll() {
		return goerr.New("site value must not be the ALL sentinel", goerr.V("value", o.Value))
	}
	if o.Label == "" {
		return goerr.New("site label is required", goerr.V("value", o.Value))
	}
	return nil
}

// LayoutConfig holds the configurable parts of the dashboard page
type LayoutConfig struct {
	Title string       `yaml:"title"`
	Sites []SiteOption `yaml:"sites"`
}

// DefaultLayoutConfig returns the dashboard's built-in title and launch sites
func DefaultLayoutConfig() *LayoutConfig {
	return &LayoutConfig{
		Title: DefaultDashboardTitle,
		Sites: []SiteOption{
			{Label: "CCAFS LC-40", Value: "CCAFS LC-40"},
			{Label: "VAFB SLC-4E", Value: "VAFB SLC-4E"},
			{Label: "KSC LC-39A", Value: "KSC LC-39A"},
			{Label: "CCAFS SLC-40", Value: "CCAFS SLC-40"},
		},
	}
}

// Validate validates the layout configuration
func (c *LayoutConfig) Validate() error {
	if c.Title == "" {
		return goerr.New("title is required")
	}
	if len(c.Sites) == 0 {
		return goerr.New("at least one site is required")
	}

	seen := make(map[types.SiteID]bool)
	for i, site := range c.Sites {
		if err := site.Validate(); err != nil {
			return goerr.Wrap(err, "invalid site at index", goerr.V("index", i))
		}
		if seen[site.Value] {
			return goerr.New("duplicate site", goerr.V("value", site.Value))
		}
		seen[site.Value] = true
	}

	return nil
}

// Layout is the declarative description of the dashboard page
type Layout struct {
	Title        string      `json:"title"`
	TitleStyle   TitleStyle  `json:"title_style"`
	Dropdown     Dropdown    `json:"dropdown"`
	PieChart     Graph       `json:"pie_chart"`
	SliderLabel  string      `json:"slider_label"`
	Slider       RangeSlider `json:"slider"`
	ScatterChart Graph       `json:"scatter_chart"`
}

// TitleStyle is the styling of the page heading
type TitleStyle struct {
	TextAlign string `json:"text_align"`
	Color     string `json:"color"`
	FontSize  int    `json:"font_size"`
}

// Dropdown is the site selection control
type Dropdown struct {
	ID          types.ControlID `json:"id"`
	Options     []SiteOption    `json:"options"`
	Value       types.SiteID    `json:"value"`
	Placeholder string          `json:"placeholder"`
	Searchable  bool            `json:"searchable"`
}

// RangeSlider is the payload range control
type RangeSlider struct {
	ID    types.ControlID `json:"id"`
	Min   float64         `json:"min"`
	Max   float64         `json:"max"`
	Step  float64         `json:"step"`
	Marks []SliderMark    `json:"marks"`
	Value PayloadRange    `json:"value"`
}

// SliderMark is a labeled tick on the range slider
type SliderMark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// Graph is a chart placeholder filled by the reactive binder
type Graph struct {
	ID types.OutputID `json:"id"`
}

// Build returns the page layout with controls seeded from the initial selection
func (c *LayoutConfig) Build(initial Selection) *Layout {
	options := make([]SiteOption, 0, len(c.Sites)+1)
	options = append(options, SiteOption{Label: "All Sites", Value: types.AllSites})
	options = append(options, c.Sites...)

	var marks []SliderMark
	for v := PayloadSliderMin; v <= PayloadSliderMax; v += payloadSliderMarkStep {
		marks = append(marks, SliderMark{Value: v, Label: formatMark(v)})
	}

	return &Layout{
		Title: c.Title,
		TitleStyle: TitleStyle{
			TextAlign: "center",
			Color:     "#503D36",
			FontSize:  40,
		},
		Dropdown: Dropdown{
			ID:          types.ControlSiteDropdown,
			Options:     options,
			Value:       initial.Site,
			Placeholder: "Select a Launch Site here",
			Searchable:  true,
		},
		PieChart:    Graph{ID: types.OutputSuccessPie},
		SliderLabel: "Payload range (Kg):",
		Slider: RangeSlider{
			ID:    types.ControlPayloadSlider,
			Min:   PayloadSliderMin,
			Max:   PayloadSliderMax,
			Step:  payloadSliderStep,
			Marks: marks,
			Value: initial.PayloadRange,
		},
		ScatterChart: Graph{ID: types.OutputPayloadScatter},
	}
}

func formatMark(v float64) string {
	return strconv.Itoa(int(v))
}
