package model

// Figure is a chart description in the shape plotly.js consumes
type Figure struct {
	Data   []Trace      `json:"data"`
	Layout FigureLayout `json:"layout"`
}

// Trace is one plotly trace. Only the fields used by the dashboard are modeled.
type Trace struct {
	Type   string    `json:"type"`
	Name   string    `json:"name,omitempty"`
	Mode   string    `json:"mode,omitempty"`
	Labels []string  `json:"labels,omitempty"`
	Values []int     `json:"values,omitempty"`
	X      []float64 `json:"x,omitempty"`
	Y      []int     `json:"y,omitempty"`
	Sort   *bool     `json:"sort,omitempty"`
	Marker *Marker   `json:"marker,omitempty"`
}

// Marker holds trace coloring
type Marker struct {
	Colors []string `json:"colors,omitempty"`
}

// FigureLayout holds the figure title, axes and legend
type FigureLayout struct {
	Title  Text    `json:"title"`
	XAxis  *Axis   `json:"xaxis,omitempty"`
	YAxis  *Axis   `json:"yaxis,omitempty"`
	Legend *Legend `json:"legend,omitempty"`
}

// Text is a plotly text block
type Text struct {
	Text string `json:"text"`
}

// Axis is a plotly axis definition
type Axis struct {
	Title Text `json:"title"`
}

// Legend is a plotly legend definition
type Legend struct {
	Title Text `json:"title"`
}
