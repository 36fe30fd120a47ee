package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

const (
	// PayloadSliderMin and PayloadSliderMax bound the payload range control
	PayloadSliderMin = 0.0
	PayloadSliderMax = 10000.0
)

// PayloadRange is an inclusive [Low, High] payload mass bound in kilograms
type PayloadRange [2]float64

// Low returns the lower bound
func (r PayloadRange) Low() float64 { return r[0] }

// High returns the upper bound
func (r PayloadRange) High() float64 { return r[1] }

// Contains reports whether mass lies within the range, both ends inclusive
func (r PayloadRange) Contains(mass float64) bool {
	return mass >= r[0] && mass <= r[1]
}

// Selection is the transient state of the dashboard controls
type Selection struct {
	Site         types.SiteID `json:"site"`
	PayloadRange PayloadRange `json:"payload_range"`
}

// ClampToSlider limits a payload span to the bounds of the range control
func ClampToSlider(low, high float64) PayloadRange {
	clamp := func(v float64) float64 {
		return min(max(v, PayloadSliderMin), PayloadSliderMax)
	}
	return PayloadRange{clamp(low), clamp(high)}
}

// DefaultSelection returns the initial selection for a dataset: all sites and
// the dataset's payload span, clamped to the range control
func DefaultSelection(ds *Dataset) Selection {
	return Selection{
		Site:         types.AllSites,
		PayloadRange: ClampToSlider(ds.MinPayload(), ds.MaxPayload()),
	}
}

// Validate checks the constraints the range control enforces. The site is not
// checked against the dataset; an unknown site yields empty charts.
func (s *Selection) Validate() error {
	if s.Site == "" {
		return goerr.Wrap(ErrInvalidSelection, "site is empty")
	}
	low, high := s.PayloadRange.Low(), s.PayloadRange.High()
	if low > high {
		return goerr.Wrap(ErrInvalidSelection, "payload range is inverted",
			goerr.V("low", low),
			goerr.V("high", high))
	}
	if low < PayloadSliderMin || high > PayloadSliderMax {
		return goerr.Wrap(ErrInvalidSelection, "payload range is out of bounds",
			goerr.V("low", low),
			goerr.V("high", high))
	}
	return nil
}
