package types

import (
	"fmt"

	"github.com/google/uuid"
)

// SiteID represents a launch site identifier such as "CCAFS LC-40"
type SiteID string

// AllSites is the sentinel selecting every launch site
const AllSites SiteID = "ALL"

// String returns the string representation
func (id SiteID) String() string {
	return string(id)
}

// IsAll returns true if the site is the "all sites" sentinel
func (id SiteID) IsAll() bool {
	return id == AllSites
}

// OutcomeClass is the binary launch outcome
type OutcomeClass int

const (
	OutcomeFailure OutcomeClass = 0
	OutcomeSuccess OutcomeClass = 1
)

// IsValid returns true if the class is either success or failure
func (c OutcomeClass) IsValid() bool {
	return c == OutcomeFailure || c == OutcomeSuccess
}

// String returns the class as it appears in the dataset ("1" or "0")
func (c OutcomeClass) String() string {
	return fmt.Sprintf("%d", int(c))
}

// DatasetID identifies one loaded dataset snapshot
type DatasetID string

// String returns the string representation
func (id DatasetID) String() string {
	return string(id)
}

// NewDatasetID creates a new DatasetID
func NewDatasetID() DatasetID {
	return DatasetID(uuid.New().String())
}

// ControlID identifies a user input control on the dashboard page
type ControlID string

const (
	ControlSiteDropdown  ControlID = "site-dropdown"
	ControlPayloadSlider ControlID = "payload-slider"
)

// String returns the string representation
func (id ControlID) String() string {
	return string(id)
}

// OutputID identifies a chart placeholder on the dashboard page
type OutputID string

const (
	OutputSuccessPie     OutputID = "success-pie-chart"
	OutputPayloadScatter OutputID = "success-payload-scatter-chart"
)

// String returns the string representation
func (id OutputID) String() string {
	return string(id)
}
