package model_test

import (
	"math"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

func TestLaunchRecordValidate(t *testing.T) {
	testCases := []struct {
		name    string
		record  model.LaunchRecord
		wantErr bool
	}{
		{
			name:   "valid success",
			record: model.LaunchRecord{LaunchSite: "KSC LC-39A", PayloadMass: 2490, Class: types.OutcomeSuccess},
		},
		{
			name:   "zero payload is valid",
			record: model.LaunchRecord{LaunchSite: "CCAFS LC-40", PayloadMass: 0, Class: types.OutcomeFailure},
		},
		{
			name:    "negative payload",
			record:  model.LaunchRecord{LaunchSite: "CCAFS LC-40", PayloadMass: -1, Class: types.OutcomeFailure},
			wantErr: true,
		},
		{
			name:    "NaN payload",
			record:  model.LaunchRecord{LaunchSite: "CCAFS LC-40", PayloadMass: math.NaN(), Class: types.OutcomeFailure},
			wantErr: true,
		},
		{
			name:    "infinite payload",
			record:  model.LaunchRecord{LaunchSite: "CCAFS LC-40", PayloadMass: math.Inf(1), Class: types.OutcomeFailure},
			wantErr: true,
		},
		{
			name:    "non binary class",
			record:  model.LaunchRecord{LaunchSite: "CCAFS LC-40", PayloadMass: 100, Class: 2},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.record.Validate()
			if tc.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestNewDataset(t *testing.T) {
	loadedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	records := []model.LaunchRecord{
		{LaunchSite: "CCAFS LC-40", PayloadMass: 0, Class: types.OutcomeFailure},
		{LaunchSite: "VAFB SLC-4E", PayloadMass: 500, Class: types.OutcomeFailure},
		{LaunchSite: "CCAFS LC-40", PayloadMass: 9600, Class: types.OutcomeSuccess},
	}

	t.Run("accessors", func(t *testing.T) {
		ds, err := model.NewDataset("ds-1", "launches.csv", loadedAt, records, 0, 9600)
		gt.NoError(t, err).Required()

		gt.Equal(t, ds.ID(), types.DatasetID("ds-1"))
		gt.Equal(t, ds.Source(), "launches.csv")
		gt.Equal(t, ds.LoadedAt(), loadedAt)
		gt.Equal(t, ds.MinPayload(), 0.0)
		gt.Equal(t, ds.MaxPayload(), 9600.0)
		gt.Equal(t, ds.Len(), 3)
		gt.Equal(t, ds.Sites(), []types.SiteID{"CCAFS LC-40", "VAFB SLC-4E"})

		summary := ds.Summary()
		gt.Equal(t, summary.RecordCount, 3)
		gt.Equal(t, summary.Sites, ds.Sites())
	})

	t.Run("records are copied", func(t *testing.T) {
		input := append([]model.LaunchRecord(nil), records...)
		ds, err := model.NewDataset("ds-1", "launches.csv", loadedAt, input, 0, 9600)
		gt.NoError(t, err).Required()

		input[0].LaunchSite = "mutated"
		gt.Equal(t, ds.Records()[0].LaunchSite, types.SiteID("CCAFS LC-40"))
	})

	t.Run("empty ID", func(t *testing.T) {
		_, err := model.NewDataset("", "launches.csv", loadedAt, records, 0, 9600)
		gt.Error(t, err)
	})

	t.Run("inverted bounds", func(t *testing.T) {
		_, err := model.NewDataset("ds-1", "launches.csv", loadedAt, records, 9600, 0)
		gt.Error(t, err)
	})

	t.Run("invalid record", func(t *testing.T) {
		bad := append([]model.LaunchRecord(nil), records...)
		bad[1].Class = 5
		_, err := model.NewDataset("ds-1", "launches.csv", loadedAt, bad, 0, 9600)
		gt.Error(t, err)
	})
}
