package usecase_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
	"github.com/secmon-lab/launchdash/pkg/service/dataset"
)

func rec(site types.SiteID, payload float64, class types.OutcomeClass, booster string) model.LaunchRecord {
	return model.LaunchRecord{
		LaunchSite:             site,
		PayloadMass:            payload,
		Class:                  class,
		BoosterVersionCategory: booster,
	}
}

func newDataset(t *testing.T, records ...model.LaunchRecord) *model.Dataset {
	t.Helper()
	ds, err := dataset.Build(types.NewDatasetID(), "test", time.Now(), records)
	gt.NoError(t, err).Required()
	return ds
}

// scenarioDataset is the three-launch dataset used by the scenario tests
func scenarioDataset(t *testing.T) *model.Dataset {
	return newDataset(t,
		rec("siteA", 500, types.OutcomeSuccess, "v1.0"),
		rec("siteA", 1500, types.OutcomeFailure, "v1.1"),
		rec("siteB", 2000, types.OutcomeSuccess, "FT"),
	)
}

// launchDataset resembles the shape of the real launch dataset
func launchDataset(t *testing.T) *model.Dataset {
	return newDataset(t,
		rec("CCAFS LC-40", 0, types.OutcomeFailure, "v1.0"),
		rec("CCAFS LC-40", 0, types.OutcomeFailure, "v1.0"),
		rec("CCAFS LC-40", 525, types.OutcomeFailure, "v1.0"),
		rec("CCAFS LC-40", 500, types.OutcomeFailure, "v1.0"),
		rec("CCAFS LC-40", 677, types.OutcomeFailure, "v1.0"),
		rec("VAFB SLC-4E", 500, types.OutcomeFailure, "v1.1"),
		rec("CCAFS LC-40", 3170, types.OutcomeFailure, "v1.1"),
		rec("CCAFS LC-40", 3325, types.OutcomeSuccess, "v1.1"),
		rec("CCAFS LC-40", 2296, types.OutcomeSuccess, "v1.1"),
		rec("VAFB SLC-4E", 9600, types.OutcomeSuccess, "FT"),
		rec("KSC LC-39A", 2490, types.OutcomeSuccess, "FT"),
		rec("KSC LC-39A", 5600, types.OutcomeSuccess, "FT"),
		rec("KSC LC-39A", 5300, types.OutcomeFailure, "FT"),
		rec("CCAFS SLC-40", 3669, types.OutcomeSuccess, "B4"),
		rec("CCAFS SLC-40", 6761, types.OutcomeFailure, "B4"),
		rec("KSC LC-39A", 3600, types.OutcomeSuccess, "B5"),
		rec("CCAFS SLC-40", 9600, types.OutcomeSuccess, "B5"),
	)
}
