package usecase

import (
	"bytes"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/xuri/excelize/v2"
)

// ExportSheet is the worksheet holding exported launches
const ExportSheet = "Launches"

var exportHeader = []string{
	"Flight Number",
	"Launch Site",
	"Payload Mass (kg)",
	"class",
	"Booster Version Category",
}

// WriteScatterXLSX writes the points of a scatter series to an xlsx workbook
func WriteScatterXLSX(series model.ScatterSeries) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return nil, goerr.Wrap(err, "failed to name export sheet")
	}

	for i, h := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to resolve header cell", goerr.V("column", i+1))
		}
		if err := f.SetCellValue(ExportSheet, cell, h); err != nil {
			return nil, goerr.Wrap(err, "failed to write header cell", goerr.V("cell", cell))
		}
	}

	for r, p := range series.Points {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to resolve row cell", goerr.V("row", r+2))
		}
		row := []any{p.FlightNumber, p.LaunchSite.String(), p.PayloadMass, int(p.Class), p.BoosterVersionCategory}
		if err := f.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return nil, goerr.Wrap(err, "failed to write launch row", goerr.V("row", r+2))
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, goerr.Wrap(err, "failed to encode workbook")
	}
	return buf.Bytes(), nil
}
