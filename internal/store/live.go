package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/examfinder/examfinder-backend/internal/ingest"
	"github.com/examfinder/examfinder-backend/internal/model"
)

// LiveStore re-reads and re-converts the source workbook on every
// call. Slower than the snapshot store but always reflects the files
// on disk, so timetable updates need no reconversion step.
type LiveStore struct {
	dataDir string
	cv      *ingest.Converter
	log     zerolog.Logger
}

// NewLiveStore returns a store reading workbooks under dataDir with
// long-form dates and strict sheet matching.
func NewLiveStore(dataDir string, log zerolog.Logger) *LiveStore {
	return &LiveStore{
		dataDir: dataDir,
		cv:      ingest.NewConverter(ingest.DateLong, true, log),
		log:     log.With().Str("component", "live_store").Logger(),
	}
}

func (s *LiveStore) Exams(_ context.Context, qualification string) ([]model.ExamRecord, error) {
	filename, ok := model.WorkbookFiles[qualification]
	if !ok {
		return nil, ErrUnknownQualification
	}

	path := filepath.Join(s.dataDir, filename)
	exams, err := s.cv.ConvertFile(path, qualification)
	if err != nil {
		s.log.Error().Err(err).Str("qualification", qualification).Msg("workbook read failed")
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if len(exams) == 0 {
		return nil, fmt.Errorf("%w: workbook has no exam rows", ErrSourceUnavailable)
	}
	return exams, nil
}

func (s *LiveStore) Qualifications() []string {
	return model.Qualifications
}
