package ingest

import (
	"path/filepath"

	"github.com/examfinder/examfinder-backend/internal/model"
)

// Failure records one qualification whose workbook could not be
// converted.
type Failure struct {
	Qualification string
	Err           error
}

// ConvertAll converts every known qualification's workbook under
// dataDir. A failing file never aborts the batch: its qualification
// is reported in the failure list and the rest keep their results.
// Qualifications are processed in their fixed presentation order.
func ConvertAll(dataDir string, cv *Converter) (map[string][]model.ExamRecord, []Failure) {
	results := make(map[string][]model.ExamRecord, len(model.Qualifications))
	var failures []Failure

	for _, qualification := range model.Qualifications {
		path := filepath.Join(dataDir, model.WorkbookFiles[qualification])
		records, err := cv.ConvertFile(path, qualification)
		if err != nil {
			cv.log.Error().
				Err(err).
				Str("qualification", qualification).
				Str("file", path).
				Msg("skipping qualification")
			failures = append(failures, Failure{Qualification: qualification, Err: err})
			continue
		}
		results[qualification] = records
	}

	return results, failures
}
