package ingest

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/examfinder/examfinder-backend/internal/model"
)

// ConvertFile reads one timetable workbook and returns its exam
// records in sheet order. It fails without side effects when the file
// cannot be opened, the papers sheet is missing, or the sheet has no
// data rows.
func (cv *Converter) ConvertFile(path, qualification string) ([]model.ExamRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	cv.log.Debug().Str("file", path).Strs("sheets", sheets).Msg("workbook opened")

	sheet := findPapersSheet(sheets)
	if sheet == "" {
		cv.log.Error().
			Str("qualification", qualification).
			Strs("sheets", sheets).
			Msg("papers sheet not found")
		if !cv.Strict && len(sheets) > 0 {
			cv.logSheetSample(f, sheets[0])
		}
		return nil, ErrSheetNotFound
	}

	rows, err := rawRows(f, sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, ErrNoRows
	}

	headers := rows[0]
	records := make([]model.ExamRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, cv.recordFromRow(qualification, keyByHeader(headers, row)))
	}

	cv.log.Info().
		Str("qualification", qualification).
		Str("sheet", sheet).
		Int("records", len(records)).
		Msg("workbook converted")
	return records, nil
}

// findPapersSheet returns the first sheet whose name contains
// "all papers" (or the no-space variant), case-insensitively.
func findPapersSheet(sheets []string) string {
	for _, name := range sheets {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "all papers") || strings.Contains(lower, "allpapers") {
			return name
		}
	}
	return ""
}

// rawRows reads a sheet with raw cell values so date cells come back
// as their underlying serial numbers rather than display strings.
func rawRows(f *excelize.File, sheet string) ([][]string, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		for i, cell := range row {
			row[i] = strings.TrimSpace(cell)
		}
	}
	return rows, nil
}

// keyByHeader maps one data row onto its header names. Cells past the
// header width are dropped.
func keyByHeader(headers, row []string) map[string]string {
	keyed := make(map[string]string, len(headers))
	for i, cell := range row {
		if i < len(headers) {
			keyed[headers[i]] = cell
		}
	}
	return keyed
}

// logSheetSample dumps the first data row of a sheet for diagnosing
// unrecognized workbooks. The sampled sheet is never converted.
func (cv *Converter) logSheetSample(f *excelize.File, sheet string) {
	rows, err := rawRows(f, sheet)
	if err != nil || len(rows) < 2 {
		return
	}
	cv.log.Warn().
		Str("fallback_sheet", sheet).
		Strs("headers", rows[0]).
		Strs("sample_row", rows[1]).
		Msg("sampling first sheet for diagnostics")
}
