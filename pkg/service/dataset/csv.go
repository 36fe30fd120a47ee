package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

// Column headers of the launch dataset
const (
	ColumnFlightNumber           = "Flight Number"
	ColumnLaunchSite             = "Launch Site"
	ColumnMissionOutcome         = "Mission Outcome"
	ColumnClass                  = "class"
	ColumnPayloadMass            = "Payload Mass (kg)"
	ColumnBoosterVersion         = "Booster Version"
	ColumnBoosterVersionCategory = "Booster Version Category"
)

var requiredColumns = []string{
	ColumnLaunchSite,
	ColumnPayloadMass,
	ColumnClass,
	ColumnBoosterVersionCategory,
}

// columnIndex maps header names to their position in a row
type columnIndex map[string]int

func newColumnIndex(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if name == "" {
			continue
		}
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}

	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, goerr.Wrap(model.ErrMissingColumn, "dataset header lacks a required column",
				goerr.V("column", col),
				goerr.V("header", header))
		}
	}
	return idx, nil
}

func (c columnIndex) get(row []string, name string) (string, bool) {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[i]), true
}

// ParseCSV reads launch records from CSV text with a header row. Columns are
// matched by header name so their order does not matter.
func ParseCSV(r io.Reader) ([]model.LaunchRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, goerr.New("dataset is empty")
		}
		return nil, goerr.Wrap(err, "failed to read dataset header")
	}

	idx, err := newColumnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []model.LaunchRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read dataset row", goerr.V("line", line))
		}

		record, err := parseRow(idx, row)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid dataset row", goerr.V("line", line))
		}
		records = append(records, record)
	}

	return records, nil
}

func parseRow(idx columnIndex, row []string) (model.LaunchRecord, error) {
	var record model.LaunchRecord

	site, _ := idx.get(row, ColumnLaunchSite)
	record.LaunchSite = types.SiteID(site)

	payload, _ := idx.get(row, ColumnPayloadMass)
	mass, err := strconv.ParseFloat(payload, 64)
	if err != nil {
		return record, goerr.Wrap(err, "payload mass is not a number", goerr.V("value", payload))
	}
	if math.IsNaN(mass) || math.IsInf(mass, 0) {
		return record, goerr.New("payload mass must be a finite number", goerr.V("value", payload))
	}
	record.PayloadMass = mass

	class, _ := idx.get(row, ColumnClass)
	c, err := parseClass(class)
	if err != nil {
		return record, err
	}
	record.Class = c

	record.BoosterVersionCategory, _ = idx.get(row, ColumnBoosterVersionCategory)
	record.BoosterVersion, _ = idx.get(row, ColumnBoosterVersion)
	record.MissionOutcome, _ = idx.get(row, ColumnMissionOutcome)

	if v, ok := idx.get(row, ColumnFlightNumber); ok && v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return record, goerr.Wrap(err, "flight number is not a number", goerr.V("value", v))
		}
		record.FlightNumber = int(n)
	}

	if err := record.Validate(); err != nil {
		return record, err
	}
	return record, nil
}

// parseClass accepts "1", "0" and their float spellings ("1.0")
func parseClass(v string) (types.OutcomeClass, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, goerr.Wrap(err, "class is not a number", goerr.V("value", v))
	}
	c := types.OutcomeClass(int(f))
	if float64(c) != f || !c.IsValid() {
		return 0, goerr.New("class must be 0 or 1", goerr.V("value", v))
	}
	return c, nil
}
