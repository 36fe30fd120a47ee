package model

import (
	"math"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

// LaunchRecord is one historical launch entry
type LaunchRecord struct {
	FlightNumber           int                `json:"flight_number,omitempty" firestore:"flight_number"`
	LaunchSite             types.SiteID       `json:"launch_site" firestore:"launch_site"`
	MissionOutcome         string             `json:"mission_outcome,omitempty" firestore:"mission_outcome"`
	Class                  types.OutcomeClass `json:"class" firestore:"class"`
	PayloadMass            float64            `json:"payload_mass" firestore:"payload_mass"`
	BoosterVersion         string             `json:"booster_version,omitempty" firestore:"booster_version"`
	BoosterVersionCategory string             `json:"booster_version_category" firestore:"booster_version_category"`
}

// Validate checks the per-record dataset invariant
func (r *LaunchRecord) Validate() error {
	if math.IsNaN(r.PayloadMass) || math.IsInf(r.PayloadMass, 0) {
		return goerr.New("payload mass must be a finite number",
			goerr.V("payload_mass", r.PayloadMass))
	}
	if r.PayloadMass < 0 {
		return goerr.New("payload mass must not be negative",
			goerr.V("payload_mass", r.PayloadMass))
	}
	if !r.Class.IsValid() {
		return goerr.New("class must be 0 or 1", goerr.V("class", r.Class))
	}
	return nil
}

// Dataset is an ordered, immutable set of launch records loaded once per process
type Dataset struct {
	id         types.DatasetID
	source     string
	loadedAt   time.Time
	records    []LaunchRecord
	minPayload float64
	maxPayload float64
}

// DatasetSummary is the serializable description of a dataset
type DatasetSummary struct {
	ID          types.DatasetID `json:"id"`
	Source      string          `json:"source"`
	LoadedAt    time.Time       `json:"loaded_at"`
	RecordCount int             `json:"record_count"`
	MinPayload  float64         `json:"min_payload"`
	MaxPayload  float64         `json:"max_payload"`
	Sites       []types.SiteID  `json:"sites"`
}

// NewDataset builds a dataset from records. The records slice is copied so the
// caller cannot mutate the dataset afterwards. minPayload and maxPayload must be
// the bounds of the records' payload masses.
func NewDataset(id types.DatasetID, source string, loadedAt time.Time, records []LaunchRecord, minPayload, maxPayload float64) (*Dataset, error) {
	if id == "" {
		return nil, goerr.New("dataset ID is empty")
	}
	if minPayload > maxPayload {
		return nil, goerr.New("min payload exceeds max payload",
			goerr.V("min", minPayload),
			goerr.V("max", maxPayload))
	}

	copied := make([]LaunchRecord, len(records))
	copy(copied, records)
	for i := range copied {
		if err := copied[i].Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid launch record", goerr.V("index", i))
		}
	}

	return &Dataset{
		id:         id,
		source:     source,
		loadedAt:   loadedAt,
		records:    copied,
		minPayload: minPayload,
		maxPayload: maxPayload,
	}, nil
}

// ID returns the snapshot identifier
func (d *Dataset) ID() types.DatasetID { return d.id }

// Source returns the URL or path the dataset was read from
func (d *Dataset) Source() string { return d.source }

// LoadedAt returns the load time
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// MinPayload returns the smallest payload mass in the dataset
func (d *Dataset) MinPayload() float64 { return d.minPayload }

// MaxPayload returns the largest payload mass in the dataset
func (d *Dataset) MaxPayload() float64 { return d.maxPayload }

// Len returns the number of records
func (d *Dataset) Len() int { return len(d.records) }

// Records returns the records in load order. The returned slice is shared and
// must be treated as read-only.
func (d *Dataset) Records() []LaunchRecord { return d.records }

// Sites returns the distinct launch sites in order of first appearance
func (d *Dataset) Sites() []types.SiteID {
	seen := make(map[types.SiteID]bool)
	var sites []types.SiteID
	for _, r := range d.records {
		if !seen[r.LaunchSite] {
			seen[r.LaunchSite] = true
			sites = append(sites, r.LaunchSite)
		}
	}
	return sites
}

// Summary returns the serializable description of the dataset
func (d *Dataset) Summary() DatasetSummary {
	return DatasetSummary{
		ID:          d.id,
		Source:      d.source,
		LoadedAt:    d.loadedAt,
		RecordCount: len(d.records),
		MinPayload:  d.minPayload,
		MaxPayload:  d.maxPayload,
		Sites:       d.Sites(),
	}
}
