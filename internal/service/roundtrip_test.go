package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/examfinder/examfinder-backend/internal/ingest"
	"github.com/examfinder/examfinder-backend/internal/model"
	"github.com/examfinder/examfinder-backend/internal/store"
)

// directSource serves a pre-converted record list without a snapshot.
type directSource struct {
	qualification string
	exams         []model.ExamRecord
}

func (s *directSource) Exams(_ context.Context, qualification string) ([]model.ExamRecord, error) {
	if qualification != s.qualification {
		return nil, store.ErrUnknownQualification
	}
	return s.exams, nil
}

func (s *directSource) Qualifications() []string {
	return []string{s.qualification}
}

// Searching through a persisted-and-reloaded snapshot must give the
// same results as searching the freshly converted records.
func TestSnapshotSearchMatchesDirectSearch(t *testing.T) {
	dir := t.TempDir()
	workbook := filepath.Join(dir, model.WorkbookFiles["GCSE"])

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "All Papers"))
	rows := [][]interface{}{
		{"Date", "Examination code", "Subject", "Title", "Time", "Duration"},
		{45810, "1MA1 1F", "Mathematics", "Paper 1: Non-Calculator", "Morning", "1.30"},
		{45812, "1EN0 01", "English Language", "Paper 1", "Afternoon", "1.45"},
		{45815, "1BI0 1H", "Biology", "Paper 1: Higher Tier", "Morning", "1.45"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("All Papers", cell, &row))
	}
	require.NoError(t, f.SaveAs(workbook))
	require.NoError(t, f.Close())

	cv := ingest.NewConverter(ingest.DateISO, true, zerolog.Nop())
	converted, err := cv.ConvertFile(workbook, "GCSE")
	require.NoError(t, err)

	snapshotPath := filepath.Join(dir, "exam-data.json")
	require.NoError(t, store.WriteSnapshot(snapshotPath, map[string][]model.ExamRecord{"GCSE": converted}))
	snapshotStore, err := store.NewSnapshotStore(snapshotPath, zerolog.Nop())
	require.NoError(t, err)

	direct := NewSearchService(&directSource{qualification: "GCSE", exams: converted}, zerolog.Nop())
	snapshotted := NewSearchService(snapshotStore, zerolog.Nop())

	for _, term := range []string{"", "paper 1", "MATH", "biology", "nomatch"} {
		wantExams, err := direct.Search(context.Background(), "GCSE", term)
		require.NoError(t, err)
		gotExams, err := snapshotted.Search(context.Background(), "GCSE", term)
		require.NoError(t, err)
		require.Equal(t, wantExams, gotExams, "term %q", term)
	}
}
