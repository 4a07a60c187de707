package corpus

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/feedback-cli/internal/model"
)

// readXLSXRows reads the first sheet of an XLSX workbook as string rows.
// Some upstream exports arrive as workbooks rather than CSV.
func readXLSXRows(path string) ([][]string, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "corpus: open xlsx %s", path)
	}
	if len(f.Sheets) == 0 {
		return nil, eris.Errorf("corpus: xlsx %s has no sheets", path)
	}

	sheet := f.Sheets[0]
	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// ExportXLSX writes the enriched corpus as a single-sheet workbook for
// business consumers who work in spreadsheets rather than the dashboard.
func ExportXLSX(records []model.EnrichedRecord, path string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("feedback")
	if err != nil {
		return eris.Wrap(err, "corpus: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range enrichedColumns {
		header.AddCell().SetString(col)
	}

	for _, rec := range records {
		row := sheet.AddRow()
		for _, v := range enrichedRow(rec) {
			row.AddCell().SetString(v)
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "corpus: save xlsx %s", path)
	}
	return nil
}
